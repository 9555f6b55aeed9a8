package usecase

import (
	"context"
	"fmt"
	"time"

	log "github.com/carousell/ct-go/pkg/logger/log_context"
	"github.com/google/uuid"
	"github.com/smartcart-labs/smartcart/internal/catalog"
	"github.com/smartcart-labs/smartcart/internal/config"
	"github.com/smartcart-labs/smartcart/internal/models"
	"github.com/smartcart-labs/smartcart/internal/nlquery"
	"github.com/smartcart-labs/smartcart/pkg/util"
)

// RecommendUsecase produces formatted product recommendations. Both
// operations return caller-facing text; errors carry the upstream message
// unchanged so the tool surface can forward it verbatim.
type RecommendUsecase interface {
	RecommendItems(ctx context.Context, topic string, priceRange []float64, count *int) (string, error)
	RecommendFromQuery(ctx context.Context, query string) (string, error)
}

type recommendUsecase struct {
	conf     *config.Config
	registry catalog.Registry
}

func NewRecommendUsecase(cfg *config.Config, registry catalog.Registry) RecommendUsecase {
	return &recommendUsecase{
		conf:     cfg,
		registry: registry,
	}
}

func (u *recommendUsecase) RecommendItems(ctx context.Context, topic string, priceRange []float64, count *int) (string, error) {
	spec := catalog.FilterSpec{
		Topic: topic,
		Limit: count,
	}
	if len(priceRange) == 2 {
		if priceRange[1] > 0 {
			spec.PriceMax = util.Ptr(priceRange[1])
		}
		if priceRange[0] > 0 {
			spec.PriceMin = util.Ptr(priceRange[0])
		}
	}

	query, err := catalog.BuildQuery(spec)
	if err != nil {
		return "", err
	}

	store, ok := u.registry.GetStore(u.conf.Catalog.Backend)
	if !ok {
		return "", fmt.Errorf("catalog backend %q is not registered", u.conf.Catalog.Backend)
	}

	products, err := store.SearchProducts(ctx, query)
	if err != nil {
		return "", err
	}

	// one session row per recommendation request, even for empty results
	session := models.CartSession{
		SessionID: uuid.NewString(),
		CreatedAt: time.Now().UTC(),
	}
	if err := store.CreateCartSession(ctx, session); err != nil {
		return "", err
	}

	log.Infow(ctx, "recommendation batch ready",
		"session_id", session.SessionID,
		"topic", topic,
		"products_count", len(products))

	return FormatProductResults(products, session.SessionID), nil
}

func (u *recommendUsecase) RecommendFromQuery(ctx context.Context, query string) (string, error) {
	params := nlquery.Parse(query)
	log.Debugw(ctx, "parsed recommendation query",
		"topic", params.Topic,
		"price_range", params.PriceRange,
		"count", util.Val(params.Count))
	return u.RecommendItems(ctx, params.Topic, params.PriceRange, params.Count)
}
