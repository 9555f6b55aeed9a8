package usecase

import (
	"fmt"
	"strings"

	"github.com/smartcart-labs/smartcart/internal/models"
)

const (
	summaryLimit    = 60
	summaryTruncate = 57
)

// FormatProductResults renders a recommendation batch as deterministic
// multi-line text. One malformed record never aborts the listing; it is
// replaced by a placeholder line and formatting continues.
func FormatProductResults(products []models.ProductRecord, sessionID string) string {
	if len(products) == 0 {
		return fmt.Sprintf("No products found matching your criteria. Session ID: %s", sessionID)
	}

	var b strings.Builder
	fmt.Fprintf(&b, "Here are your recommended products (Session ID: %s):\n\n", sessionID)
	for i, p := range products {
		b.WriteString(formatItem(i+1, p))
	}
	return b.String()
}

func formatItem(position int, p models.ProductRecord) string {
	return renderProtected(position, func() string {
		return renderItem(position, p)
	})
}

// renderProtected turns a panic from a single item renderer into the
// placeholder line, so the rest of the listing still renders.
func renderProtected(position int, render func() string) (out string) {
	defer func() {
		if r := recover(); r != nil {
			out = fmt.Sprintf("%d. (this product could not be displayed)\n\n", position)
		}
	}()
	return render()
}

func renderItem(position int, p models.ProductRecord) string {
	title := p.Title
	if title == "" {
		title = "Unknown Product"
	}

	summary := title
	if runes := []rune(summary); len(runes) > summaryLimit {
		summary = string(runes[:summaryTruncate]) + "..."
	}

	price := "unavailable"
	if v, ok := p.Price.Float64(); ok {
		price = fmt.Sprintf("$%.2f", v)
	}

	rating := ""
	if v, ok := p.Rating.Float64(); ok {
		rating = fmt.Sprintf(" | Rating: %.1f/5", v)
	} else if p.Rating.Invalid() {
		rating = " | Rating: not available"
	}

	var b strings.Builder
	fmt.Fprintf(&b, "%d. **%s**\n", position, title)
	fmt.Fprintf(&b, "   Summary: %s\n", summary)
	fmt.Fprintf(&b, "   Price: %s%s\n", price, rating)
	if p.Image != "" {
		fmt.Fprintf(&b, "   [Image](%s)\n", p.Image)
	}
	b.WriteString("\n")
	return b.String()
}
