package nlquery

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func intPtr(n int) *int { return &n }

func TestParse(t *testing.T) {
	tests := []struct {
		name  string
		query string
		want  Params
	}{
		{
			name:  "count price and topic",
			query: "Show me 10 Nike shoes under $150",
			want: Params{
				Topic:      "Nike shoes",
				PriceRange: []float64{0, 150},
				Count:      intPtr(10),
			},
		},
		{
			name:  "qualifier only",
			query: "best-rated cameras",
			want:  Params{Topic: "cameras"},
		},
		{
			name:  "count from noun fallback",
			query: "5 products for the kitchen",
			want: Params{
				Topic: "for the kitchen",
				Count: intPtr(5),
			},
		},
		{
			name:  "price floor uses distinct grammar",
			query: "recommend good headphones over $50",
			want: Params{
				Topic:      "headphones",
				PriceRange: []float64{50, 0},
			},
		},
		{
			name:  "floor and ceiling together",
			query: "display 2 gaming mice over $20 under $80",
			want: Params{
				Topic:      "gaming mice",
				PriceRange: []float64{20, 80},
				Count:      intPtr(2),
			},
		},
		{
			name:  "prefix and stacked qualifiers",
			query: "What are the best affordable laptops under 300",
			want: Params{
				Topic:      "laptops",
				PriceRange: []float64{0, 300},
			},
		},
		{
			name:  "qualifier inside a product name is still stripped",
			query: "Top Gear box set",
			want:  Params{Topic: "Gear box set"},
		},
		{
			name:  "first count pattern wins over later numbers",
			query: "show me 3 USB hubs with 7 ports",
			want: Params{
				Topic: "USB hubs with 7 ports",
				Count: intPtr(3),
			},
		},
		{
			name:  "price without dollar sign",
			query: "desk lamps under 40",
			want: Params{
				Topic:      "desk lamps",
				PriceRange: []float64{0, 40},
			},
		},
		{
			name:  "decimal price",
			query: "snacks under $9.99",
			want: Params{
				Topic:      "snacks",
				PriceRange: []float64{0, 9.99},
			},
		},
		{
			name:  "nothing recognizable leaves topic only",
			query: "wireless earbuds",
			want:  Params{Topic: "wireless earbuds"},
		},
		{
			name:  "everything stripped yields empty topic",
			query: "recommend the best",
			want:  Params{},
		},
		{
			name:  "empty query",
			query: "",
			want:  Params{},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Parse(tt.query))
		})
	}
}
