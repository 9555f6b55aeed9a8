package toolsmanager

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"

	"github.com/firebase/genkit/go/ai"
	"github.com/firebase/genkit/go/genkit"
)

// Tool is a callable unit exposed both over HTTP and to the Genkit
// runtime. Tools convert their own failures into caller-facing text;
// Execute returns an error only for malformed arguments.
type Tool interface {
	// Name returns the tool's unique identifier
	Name() string
	// Description returns a human-readable description of what the tool does
	Description() string
	// Execute runs the tool with the given arguments
	Execute(ctx context.Context, args any) (any, error)
	// GetGenkitTool returns the Genkit tool definition for AI integration
	GetGenkitTool(g *genkit.Genkit) ai.Tool
}

// ToolsManager manages tool registration and execution
type ToolsManager interface {
	AddTool(tool Tool) error
	ExecuteTool(ctx context.Context, toolName string, args any) (any, error)
	GetAvailableTools() []string
	HasTool(toolName string) bool
	// DefineGenkitTools registers every tool with the Genkit runtime.
	DefineGenkitTools(g *genkit.Genkit) []ai.Tool
}

// ToolExecutionResult is the HTTP response shape for tool execution.
type ToolExecutionResult struct {
	Success bool   `json:"success"`
	Result  any    `json:"result,omitempty"`
	Error   string `json:"error,omitempty"`
}

// ParseArgs converts loosely-typed tool arguments into the target struct.
func ParseArgs(args any, target any) error {
	buf := new(bytes.Buffer)
	if err := json.NewEncoder(buf).Encode(args); err != nil {
		return fmt.Errorf("encode args: %w", err)
	}
	if err := json.NewDecoder(buf).Decode(target); err != nil {
		return fmt.Errorf("decode args: %w", err)
	}
	return nil
}
