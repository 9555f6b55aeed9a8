package catalog

import (
	"testing"

	"github.com/smartcart-labs/smartcart/internal/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func floatPtr(v float64) *float64 { return &v }
func intPtr(n int) *int           { return &n }

func TestBuildQuery(t *testing.T) {
	tests := []struct {
		name string
		spec FilterSpec
		want Query
	}{
		{
			name: "topic only",
			spec: FilterSpec{Topic: "Nike shoes"},
			want: Query{
				Columns: productColumns,
				Filters: []Filter{
					{Column: "title", Op: OpILike, Value: "%Nike shoes%"},
				},
				Orders: []Order{
					{Column: "rating", Desc: true},
					{Column: "price"},
				},
				Limit: 10,
			},
		},
		{
			name: "full spec",
			spec: FilterSpec{
				Topic:    "cameras",
				PriceMin: floatPtr(50),
				PriceMax: floatPtr(150),
				Limit:    intPtr(5),
			},
			want: Query{
				Columns: productColumns,
				Filters: []Filter{
					{Column: "title", Op: OpILike, Value: "%cameras%"},
					{Column: "price", Op: OpLte, Value: "150"},
					{Column: "price", Op: OpGte, Value: "50"},
				},
				Orders: []Order{
					{Column: "rating", Desc: true},
					{Column: "price"},
				},
				Limit: 5,
			},
		},
		{
			name: "zero price floor is dropped",
			spec: FilterSpec{Topic: "mugs", PriceMin: floatPtr(0), PriceMax: floatPtr(20)},
			want: Query{
				Columns: productColumns,
				Filters: []Filter{
					{Column: "title", Op: OpILike, Value: "%mugs%"},
					{Column: "price", Op: OpLte, Value: "20"},
				},
				Orders: []Order{
					{Column: "rating", Desc: true},
					{Column: "price"},
				},
				Limit: 10,
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := BuildQuery(tt.spec)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestBuildQueryRejectsInvalidSpecs(t *testing.T) {
	_, err := BuildQuery(FilterSpec{})
	assert.ErrorIs(t, err, models.ErrEmptyTopic)

	_, err = BuildQuery(FilterSpec{Topic: "mugs", Limit: intPtr(0)})
	assert.ErrorContains(t, err, "limit must be positive")

	_, err = BuildQuery(FilterSpec{Topic: "mugs", PriceMin: floatPtr(30), PriceMax: floatPtr(10)})
	assert.ErrorContains(t, err, "price range is inverted")
}

func TestBuildQuerySortIsDeterministic(t *testing.T) {
	q, err := BuildQuery(FilterSpec{Topic: "mugs"})
	require.NoError(t, err)
	require.Len(t, q.Orders, 2)
	assert.Equal(t, Order{Column: "rating", Desc: true}, q.Orders[0])
	assert.Equal(t, Order{Column: "price"}, q.Orders[1])
}
