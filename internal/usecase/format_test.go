package usecase

import (
	"encoding/json"
	"strings"
	"testing"

	"github.com/smartcart-labs/smartcart/internal/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func record(t *testing.T, raw string) models.ProductRecord {
	t.Helper()
	var p models.ProductRecord
	require.NoError(t, json.Unmarshal([]byte(raw), &p))
	return p
}

func TestFormatProductResultsEmpty(t *testing.T) {
	got := FormatProductResults(nil, "sess-42")
	assert.Equal(t, "No products found matching your criteria. Session ID: sess-42", got)
	assert.Equal(t, 1, strings.Count(got, "\n")+1, "exactly one line")
}

func TestFormatProductResults(t *testing.T) {
	products := []models.ProductRecord{
		record(t, `{"productId":"p1","title":"Nike Air Zoom","price":120.5,"rating":4.25,"image":"https://cdn.example.com/p1.jpg"}`),
		record(t, `{"productId":"p2","title":"Nike Free Run","price":99}`),
	}

	got := FormatProductResults(products, "sess-1")

	want := "Here are your recommended products (Session ID: sess-1):\n\n" +
		"1. **Nike Air Zoom**\n" +
		"   Summary: Nike Air Zoom\n" +
		"   Price: $120.50 | Rating: 4.2/5\n" +
		"   [Image](https://cdn.example.com/p1.jpg)\n" +
		"\n" +
		"2. **Nike Free Run**\n" +
		"   Summary: Nike Free Run\n" +
		"   Price: $99.00\n" +
		"\n"
	assert.Equal(t, want, got)

	// byte-identical on repeat
	assert.Equal(t, got, FormatProductResults(products, "sess-1"))
}

func TestFormatProductResultsTruncatesLongTitles(t *testing.T) {
	long := strings.Repeat("x", 80)
	p := models.ProductRecord{Title: long, Price: models.NumberOf(10)}

	got := FormatProductResults([]models.ProductRecord{p}, "s")
	assert.Contains(t, got, "**"+long+"**")
	assert.Contains(t, got, "Summary: "+strings.Repeat("x", 57)+"...\n")
}

func TestFormatProductResultsDegradesPerField(t *testing.T) {
	tests := []struct {
		name string
		raw  string
		want []string
		not  []string
	}{
		{
			name: "non-numeric price",
			raw:  `{"title":"Broken","price":"N/A","rating":4}`,
			want: []string{"Price: unavailable | Rating: 4.0/5"},
		},
		{
			name: "non-numeric rating",
			raw:  `{"title":"Odd","price":5,"rating":"five stars"}`,
			want: []string{"Price: $5.00 | Rating: not available"},
		},
		{
			name: "absent rating has no suffix",
			raw:  `{"title":"Plain","price":5}`,
			want: []string{"Price: $5.00\n"},
			not:  []string{"Rating"},
		},
		{
			name: "missing title",
			raw:  `{"price":5}`,
			want: []string{"**Unknown Product**"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := FormatProductResults([]models.ProductRecord{record(t, tt.raw)}, "s")
			for _, w := range tt.want {
				assert.Contains(t, got, w)
			}
			for _, n := range tt.not {
				assert.NotContains(t, got, n)
			}
		})
	}
}

func TestRenderProtectedReplacesPanickedItem(t *testing.T) {
	out := renderProtected(2, func() string {
		panic("renderer blew up")
	})
	assert.Equal(t, "2. (this product could not be displayed)\n\n", out)

	// a healthy renderer passes through untouched
	assert.Equal(t, "3. ok", renderProtected(3, func() string { return "3. ok" }))
}
