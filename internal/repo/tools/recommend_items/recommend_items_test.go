package recommend_items

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeRecommender struct {
	out string
	err error

	gotTopic string
	gotRange []float64
	gotCount *int
	gotQuery string
}

func (f *fakeRecommender) RecommendItems(_ context.Context, topic string, priceRange []float64, count *int) (string, error) {
	f.gotTopic = topic
	f.gotRange = priceRange
	f.gotCount = count
	return f.out, f.err
}

func (f *fakeRecommender) RecommendFromQuery(_ context.Context, query string) (string, error) {
	f.gotQuery = query
	return f.out, f.err
}

func TestExecute(t *testing.T) {
	rec := &fakeRecommender{out: "Here are your recommended products (Session ID: s1):\n"}
	tool := NewTool(rec)

	result, err := tool.Execute(context.Background(), map[string]any{
		"topic":       "Nike shoes",
		"price_range": []float64{0, 150},
		"count":       10,
	})
	require.NoError(t, err)
	assert.Equal(t, rec.out, result)

	assert.Equal(t, "Nike shoes", rec.gotTopic)
	assert.Equal(t, []float64{0, 150}, rec.gotRange)
	require.NotNil(t, rec.gotCount)
	assert.Equal(t, 10, *rec.gotCount)
}

func TestExecuteReportsFailuresAsText(t *testing.T) {
	rec := &fakeRecommender{err: errors.New("query products: catalog returned 503")}
	tool := NewTool(rec)

	result, err := tool.Execute(context.Background(), map[string]any{"topic": "mugs"})
	require.NoError(t, err, "tool failures are text, not errors")
	assert.Equal(t, "Error: query products: catalog returned 503", result)
}

func TestExecuteRejectsMalformedArgs(t *testing.T) {
	tool := NewTool(&fakeRecommender{})

	_, err := tool.Execute(context.Background(), map[string]any{"count": "ten"})
	assert.ErrorContains(t, err, "failed to parse arguments")
}

func TestToolIdentity(t *testing.T) {
	tool := NewTool(&fakeRecommender{})
	assert.Equal(t, "recommend_items", tool.Name())
	assert.NotEmpty(t, tool.Description())
}
