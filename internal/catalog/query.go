// Package catalog defines the product catalog boundary: a pure mapping
// from a FilterSpec to an ordered list of query directives, and the Store
// interface that adapters implement against a concrete backend.
package catalog

import (
	"fmt"

	"github.com/smartcart-labs/smartcart/internal/models"
)

// DefaultLimit caps result sets when the caller does not ask for a count.
const DefaultLimit = 10

// productColumns is the fixed field set every catalog query selects.
var productColumns = []string{"productId", "title", "price", "image", "link", "rating"}

// FilterSpec is the structured filter set for one recommendation request.
// It is built fresh per request and discarded after the query executes.
type FilterSpec struct {
	Topic    string
	PriceMin *float64
	PriceMax *float64
	Limit    *int
}

// Op is a filter comparison operator.
type Op string

const (
	OpILike Op = "ilike" // case-insensitive substring match
	OpLte   Op = "lte"
	OpGte   Op = "gte"
)

// Filter is one column comparison directive.
type Filter struct {
	Column string
	Op     Op
	Value  string
}

// Order is one sort directive.
type Order struct {
	Column string
	Desc   bool
}

// Query is the backend-independent description of a catalog lookup.
// Directive order is significant: adapters apply filters and sort keys
// exactly as listed.
type Query struct {
	Columns []string
	Filters []Filter
	Orders  []Order
	Limit   int
}

// BuildQuery maps a FilterSpec to query directives. It rejects specs that
// violate the FilterSpec invariants before any catalog access happens.
func BuildQuery(spec FilterSpec) (Query, error) {
	if spec.Topic == "" {
		return Query{}, models.ErrEmptyTopic
	}
	if spec.Limit != nil && *spec.Limit <= 0 {
		return Query{}, fmt.Errorf("limit must be positive, got %d", *spec.Limit)
	}
	if spec.PriceMin != nil && spec.PriceMax != nil && *spec.PriceMin > *spec.PriceMax {
		return Query{}, fmt.Errorf("price range is inverted: min %g > max %g", *spec.PriceMin, *spec.PriceMax)
	}

	q := Query{
		Columns: productColumns,
		Filters: []Filter{
			{Column: "title", Op: OpILike, Value: "%" + spec.Topic + "%"},
		},
		Orders: []Order{
			{Column: "rating", Desc: true},
			{Column: "price"},
		},
		Limit: DefaultLimit,
	}

	if spec.PriceMax != nil {
		q.Filters = append(q.Filters, Filter{
			Column: "price",
			Op:     OpLte,
			Value:  trimFloat(*spec.PriceMax),
		})
	}
	if spec.PriceMin != nil && *spec.PriceMin > 0 {
		q.Filters = append(q.Filters, Filter{
			Column: "price",
			Op:     OpGte,
			Value:  trimFloat(*spec.PriceMin),
		})
	}
	if spec.Limit != nil {
		q.Limit = *spec.Limit
	}

	return q, nil
}

func trimFloat(v float64) string {
	return fmt.Sprintf("%g", v)
}
