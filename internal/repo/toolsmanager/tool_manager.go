package toolsmanager

import (
	"context"
	"fmt"
	"sort"
	"sync"

	log "github.com/carousell/ct-go/pkg/logger/log_context"
	"github.com/firebase/genkit/go/ai"
	"github.com/firebase/genkit/go/genkit"
)

type toolsManager struct {
	tools map[string]Tool
	mutex sync.RWMutex
}

func NewToolsManager() ToolsManager {
	return &toolsManager{
		tools: make(map[string]Tool),
	}
}

func (tm *toolsManager) AddTool(tool Tool) error {
	tm.mutex.Lock()
	defer tm.mutex.Unlock()

	name := tool.Name()
	if name == "" {
		return fmt.Errorf("tool name cannot be empty")
	}
	if _, exists := tm.tools[name]; exists {
		return fmt.Errorf("tool with name %q is already registered", name)
	}

	tm.tools[name] = tool
	log.Infof(context.Background(), "Tool registered: %s - %s", name, tool.Description())
	return nil
}

func (tm *toolsManager) ExecuteTool(ctx context.Context, toolName string, args any) (any, error) {
	tm.mutex.RLock()
	tool, exists := tm.tools[toolName]
	tm.mutex.RUnlock()

	if !exists {
		return nil, fmt.Errorf("tool not found: %s", toolName)
	}

	result, err := tool.Execute(ctx, args)
	if err != nil {
		log.Errorw(ctx, "tool execution failed", "tool_name", toolName, "error", err)
		return nil, fmt.Errorf("tool execution failed: %w", err)
	}

	log.Infow(ctx, "tool executed", "tool_name", toolName)
	return result, nil
}

func (tm *toolsManager) GetAvailableTools() []string {
	tm.mutex.RLock()
	defer tm.mutex.RUnlock()

	names := make([]string, 0, len(tm.tools))
	for name := range tm.tools {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

func (tm *toolsManager) HasTool(toolName string) bool {
	tm.mutex.RLock()
	defer tm.mutex.RUnlock()

	_, exists := tm.tools[toolName]
	return exists
}

func (tm *toolsManager) DefineGenkitTools(g *genkit.Genkit) []ai.Tool {
	tm.mutex.RLock()
	defer tm.mutex.RUnlock()

	genkitTools := make([]ai.Tool, 0, len(tm.tools))
	for _, tool := range tm.tools {
		if gt := tool.GetGenkitTool(g); gt != nil {
			genkitTools = append(genkitTools, gt)
		}
	}
	return genkitTools
}
