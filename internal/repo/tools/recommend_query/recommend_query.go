package recommend_query

import (
	"context"
	"fmt"

	"github.com/firebase/genkit/go/ai"
	"github.com/firebase/genkit/go/genkit"
	"github.com/smartcart-labs/smartcart/internal/repo/toolsmanager"
	"github.com/smartcart-labs/smartcart/internal/usecase"
)

const (
	ToolName        = "recommend_items_from_query"
	ToolDescription = "Parse a natural language shopping query and recommend matching products"
)

// Input defines the arguments for the recommend_items_from_query tool
type Input struct {
	Query string `json:"query"`
}

type Tool interface {
	toolsmanager.Tool
}

type tool struct {
	recommender usecase.RecommendUsecase
}

func NewTool(recommender usecase.RecommendUsecase) Tool {
	return &tool{recommender: recommender}
}

func (t *tool) Name() string {
	return ToolName
}

func (t *tool) Description() string {
	return ToolDescription
}

func (t *tool) Execute(ctx context.Context, args any) (any, error) {
	var input Input
	if err := toolsmanager.ParseArgs(args, &input); err != nil {
		return nil, fmt.Errorf("failed to parse arguments: %w", err)
	}
	return t.run(ctx, input), nil
}

func (t *tool) GetGenkitTool(g *genkit.Genkit) ai.Tool {
	return genkit.DefineTool(g, ToolName, ToolDescription,
		func(toolCtx *ai.ToolContext, input Input) (string, error) {
			return t.run(toolCtx.Context, input), nil
		})
}

func (t *tool) run(ctx context.Context, input Input) string {
	out, err := t.recommender.RecommendFromQuery(ctx, input.Query)
	if err != nil {
		return fmt.Sprintf("Error: %s", err)
	}
	return out
}
