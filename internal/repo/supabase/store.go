// Package supabase implements the catalog store against the Supabase
// PostgREST API. Query directives translate one-to-one into PostgREST
// query parameters, so the adapter carries no filtering logic of its own.
package supabase

import (
	"context"
	"fmt"
	"net/url"
	"strconv"
	"strings"

	"github.com/go-resty/resty/v2"
	"github.com/smartcart-labs/smartcart/internal/catalog"
	"github.com/smartcart-labs/smartcart/internal/config"
	"github.com/smartcart-labs/smartcart/internal/models"
	"github.com/smartcart-labs/smartcart/pkg/util"
)

const (
	productsTable = "products"
	cartsTable    = "carts"
)

type Store interface {
	catalog.Store
}

type store struct {
	http *resty.Client
}

func NewStore(cfg *config.Config) Store {
	return newStore(cfg.Catalog.SupabaseURL, cfg.Catalog.SupabaseKey)
}

func newStore(baseURL, apiKey string) *store {
	client := util.NewRestyClient().
		SetBaseURL(strings.TrimRight(baseURL, "/") + "/rest/v1").
		SetHeader("apikey", apiKey).
		SetAuthToken(apiKey)
	return &store{http: client}
}

func (s *store) SearchProducts(ctx context.Context, q catalog.Query) ([]models.ProductRecord, error) {
	var products []models.ProductRecord
	resp, err := s.http.R().
		SetContext(ctx).
		SetQueryParamsFromValues(queryParams(q)).
		SetResult(&products).
		Get("/" + productsTable)
	if err != nil {
		return nil, fmt.Errorf("query products: %w", err)
	}
	if resp.IsError() {
		return nil, fmt.Errorf("query products: catalog returned %s: %s", resp.Status(), resp.String())
	}
	return products, nil
}

func (s *store) CreateCartSession(ctx context.Context, session models.CartSession) error {
	resp, err := s.http.R().
		SetContext(ctx).
		SetHeader("Prefer", "return=minimal").
		SetBody(session).
		Post("/" + cartsTable)
	if err != nil {
		return fmt.Errorf("create cart session: %w", err)
	}
	if resp.IsError() {
		return fmt.Errorf("create cart session: catalog returned %s: %s", resp.Status(), resp.String())
	}
	return nil
}

// queryParams renders directives in the PostgREST operator syntax, e.g.
// title=ilike.*topic*, price=lte.150, order=rating.desc,price.asc.
func queryParams(q catalog.Query) url.Values {
	params := url.Values{}
	params.Set("select", strings.Join(q.Columns, ","))

	for _, f := range q.Filters {
		value := f.Value
		if f.Op == catalog.OpILike {
			value = strings.ReplaceAll(value, "%", "*")
		}
		params.Add(f.Column, fmt.Sprintf("%s.%s", f.Op, value))
	}

	if len(q.Orders) > 0 {
		orders := make([]string, 0, len(q.Orders))
		for _, o := range q.Orders {
			direction := "asc"
			if o.Desc {
				direction = "desc"
			}
			orders = append(orders, o.Column+"."+direction)
		}
		params.Set("order", strings.Join(orders, ","))
	}

	if q.Limit > 0 {
		params.Set("limit", strconv.Itoa(q.Limit))
	}

	return params
}
