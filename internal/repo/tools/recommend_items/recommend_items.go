package recommend_items

import (
	"context"
	"fmt"

	"github.com/firebase/genkit/go/ai"
	"github.com/firebase/genkit/go/genkit"
	"github.com/smartcart-labs/smartcart/internal/repo/toolsmanager"
	"github.com/smartcart-labs/smartcart/internal/usecase"
)

const (
	ToolName        = "recommend_items"
	ToolDescription = "Recommend products for a topic, with optional [min, max] price range and result count"
)

// Input defines the arguments for the recommend_items tool
type Input struct {
	Topic      string    `json:"topic"`
	PriceRange []float64 `json:"price_range,omitempty"`
	Count      *int      `json:"count,omitempty"`
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

// run produces the tool output. Failures become caller-facing text, not
// structured errors: the calling model (or HTTP client) receives the
// upstream message as-is.
func (t *tool) run(ctx context.Context, input Input) string {
	out, err := t.recommender.RecommendItems(ctx, input.Topic, input.PriceRange, input.Count)
	if err != nil {
		return fmt.Sprintf("Error: %s", err)
	}
	return out
}
