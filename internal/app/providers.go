package app

import (
	"context"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/smartcart-labs/smartcart/internal/config"
	"go.uber.org/fx"
)

// newPostgresPool builds the SQL connection pool when a DSN is configured.
// It returns nil otherwise so supabase-only deployments skip the dependency.
func newPostgresPool(lc fx.Lifecycle, cfg *config.Config) (*pgxpool.Pool, error) {
	if cfg.Catalog.PostgresDSN == "" {
		return nil, nil
	}

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	pool, err := pgxpool.New(ctx, cfg.Catalog.PostgresDSN)
	if err != nil {
		return nil, fmt.Errorf("init postgres pool: %w", err)
	}

	lc.Append(fx.Hook{
		OnStart: func(ctx context.Context) error {
			return pool.Ping(ctx)
		},
		OnStop: func(ctx context.Context) error {
			pool.Close()
			return nil
		},
	})

	return pool, nil
}
