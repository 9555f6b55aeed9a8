package app

import (
	"context"
	"fmt"

	"github.com/carousell/ct-go/pkg/logger"
	"github.com/firebase/genkit/go/genkit"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/smartcart-labs/smartcart/internal/catalog"
	"github.com/smartcart-labs/smartcart/internal/config"
	"github.com/smartcart-labs/smartcart/internal/repo/payments"
	"github.com/smartcart-labs/smartcart/internal/repo/postgres"
	"github.com/smartcart-labs/smartcart/internal/repo/supabase"
	"github.com/smartcart-labs/smartcart/internal/repo/tools/recommend_items"
	"github.com/smartcart-labs/smartcart/internal/repo/tools/recommend_query"
	"github.com/smartcart-labs/smartcart/internal/repo/toolsmanager"
	"github.com/smartcart-labs/smartcart/internal/server"
	"github.com/smartcart-labs/smartcart/internal/usecase"
	"go.uber.org/fx"
	"go.uber.org/fx/fxevent"
	"go.uber.org/zap/zapcore"
)

func Invoke(funcs ...any) *fx.App {
	log := logger.MustNamed("app")
	conf := config.MustLoad()
	log.Debugw("config loaded", log.Reflect("config", conf))
	return fx.New(
		fx.WithLogger(func() fxevent.Logger {
			l := &fxevent.ZapLogger{
				Logger: log.Unwrap().Desugar(),
			}
			l.UseLogLevel(zapcore.DebugLevel)
			return l
		}),
		fx.Provide(
			newGenkitClient,
			newPostgresPool,

			server.NewController,
			server.NewToolsController,

			usecase.NewPaymentUsecase,
			usecase.NewRecommendUsecase,

			catalog.NewRegistry,
			supabase.NewStore,
			payments.NewStripeClient,

			toolsmanager.NewToolsManager,

			recommend_items.NewTool,
			recommend_query.NewTool,
		),
		fx.Supply(conf),
		fx.Invoke(RegisterCatalogStores),
		fx.Invoke(RegisterTools),
		fx.Invoke(funcs...),
	)
}

func newGenkitClient() (*genkit.Genkit, error) {
	return genkit.Init(context.Background()), nil
}

// RegisterCatalogStores wires the configured catalog adapters into the
// registry on startup and fails fast when the selected backend has none.
func RegisterCatalogStores(
	lc fx.Lifecycle,
	cfg *config.Config,
	registry catalog.Registry,
	supabaseStore supabase.Store,
	pool *pgxpool.Pool,
) {
	lc.Append(fx.Hook{
		OnStart: func(ctx context.Context) error {
			if cfg.Catalog.SupabaseURL != "" {
				registry.RegisterStore("supabase", supabaseStore)
			}
			if pool != nil {
				registry.RegisterStore("postgres", postgres.NewStore(pool))
			}
			if _, ok := registry.GetStore(cfg.Catalog.Backend); !ok {
				return fmt.Errorf("catalog backend %q has no registered store", cfg.Catalog.Backend)
			}
			return nil
		},
	})
}

// RegisterTools adds every tool to the manager and defines them with the
// Genkit runtime on startup.
func RegisterTools(
	lc fx.Lifecycle,
	manager toolsmanager.ToolsManager,
	g *genkit.Genkit,
	recommendTool recommend_items.Tool,
	queryTool recommend_query.Tool,
) {
	lc.Append(fx.Hook{
		OnStart: func(ctx context.Context) error {
			if err := manager.AddTool(recommendTool); err != nil {
				return err
			}
			if err := manager.AddTool(queryTool); err != nil {
				return err
			}
			manager.DefineGenkitTools(g)
			return nil
		},
	})
}
