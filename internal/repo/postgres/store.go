// Package postgres implements the catalog store directly against a
// Postgres database, for deployments that skip the hosted REST layer.
package postgres

import (
	"context"
	"fmt"
	"strconv"
	"strings"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/smartcart-labs/smartcart/internal/catalog"
	"github.com/smartcart-labs/smartcart/internal/models"
)

// sqlColumns maps catalog column names onto the relational schema.
var sqlColumns = map[string]string{
	"productId": "product_id",
	"title":     "title",
	"price":     "price",
	"image":     "image",
	"link":      "link",
	"rating":    "rating",
}

type Store interface {
	catalog.Store
}

type store struct {
	pool *pgxpool.Pool
}

func NewStore(pool *pgxpool.Pool) Store {
	return &store{pool: pool}
}

func (s *store) SearchProducts(ctx context.Context, q catalog.Query) ([]models.ProductRecord, error) {
	sql, args, err := buildSQL(q)
	if err != nil {
		return nil, fmt.Errorf("query products: %w", err)
	}

	rows, err := s.pool.Query(ctx, sql, args...)
	if err != nil {
		return nil, fmt.Errorf("query products: %w", err)
	}
	defer rows.Close()

	var products []models.ProductRecord
	for rows.Next() {
		var (
			p             models.ProductRecord
			price, rating *float64
			image, link   *string
		)
		if err := rows.Scan(&p.ID, &p.Title, &price, &image, &link, &rating); err != nil {
			return nil, fmt.Errorf("query products: scan row: %w", err)
		}
		p.Price = models.NumberFromPtr(price)
		p.Rating = models.NumberFromPtr(rating)
		if image != nil {
			p.Image = *image
		}
		if link != nil {
			p.Link = *link
		}
		products = append(products, p)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("query products: %w", err)
	}
	return products, nil
}

func (s *store) CreateCartSession(ctx context.Context, session models.CartSession) error {
	_, err := s.pool.Exec(ctx,
		`INSERT INTO carts (session_id, created_at) VALUES ($1, $2)`,
		session.SessionID, session.CreatedAt,
	)
	if err != nil {
		return fmt.Errorf("create cart session: %w", err)
	}
	return nil
}

// buildSQL renders directives as a parameterized SELECT. Filters and sort
// keys are applied in directive order.
func buildSQL(q catalog.Query) (string, []any, error) {
	cols := make([]string, 0, len(q.Columns))
	for _, c := range q.Columns {
		sqlCol, ok := sqlColumns[c]
		if !ok {
			return "", nil, fmt.Errorf("unknown column %q", c)
		}
		cols = append(cols, sqlCol)
	}

	var b strings.Builder
	args := make([]any, 0, len(q.Filters))
	fmt.Fprintf(&b, "SELECT %s FROM products", strings.Join(cols, ", "))

	for i, f := range q.Filters {
		sqlCol, ok := sqlColumns[f.Column]
		if !ok {
			return "", nil, fmt.Errorf("unknown column %q", f.Column)
		}
		var op string
		var arg any = f.Value
		switch f.Op {
		case catalog.OpILike:
			op = "ILIKE"
		case catalog.OpLte, catalog.OpGte:
			op = "<="
			if f.Op == catalog.OpGte {
				op = ">="
			}
			v, err := strconv.ParseFloat(f.Value, 64)
			if err != nil {
				return "", nil, fmt.Errorf("non-numeric %s bound %q", f.Column, f.Value)
			}
			arg = v
		default:
			return "", nil, fmt.Errorf("unknown filter op %q", f.Op)
		}
		if i == 0 {
			b.WriteString(" WHERE ")
		} else {
			b.WriteString(" AND ")
		}
		args = append(args, arg)
		fmt.Fprintf(&b, "%s %s $%d", sqlCol, op, len(args))
	}

	if len(q.Orders) > 0 {
		orders := make([]string, 0, len(q.Orders))
		for _, o := range q.Orders {
			sqlCol, ok := sqlColumns[o.Column]
			if !ok {
				return "", nil, fmt.Errorf("unknown column %q", o.Column)
			}
			direction := "ASC"
			if o.Desc {
				direction = "DESC"
			}
			orders = append(orders, sqlCol+" "+direction)
		}
		b.WriteString(" ORDER BY " + strings.Join(orders, ", "))
	}

	if q.Limit > 0 {
		args = append(args, q.Limit)
		fmt.Fprintf(&b, " LIMIT $%d", len(args))
	}

	return b.String(), args, nil
}
