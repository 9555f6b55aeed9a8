package catalog

import (
	"context"
	"sync"

	"github.com/smartcart-labs/smartcart/internal/models"
)

// Store is the catalog access boundary. SearchProducts applies a Query
// against the backend; CreateCartSession inserts one append-only session
// row keyed by a caller-generated identifier.
type Store interface {
	SearchProducts(ctx context.Context, q Query) ([]models.ProductRecord, error)
	CreateCartSession(ctx context.Context, session models.CartSession) error
}

// Registry holds the catalog adapters available to the service, keyed by
// backend name. Adapters register at startup; lookups are concurrent-safe.
type Registry interface {
	RegisterStore(backend string, store Store)
	GetStore(backend string) (Store, bool)
}

type registry struct {
	stores map[string]Store
	mu     sync.RWMutex
}

func NewRegistry() Registry {
	return &registry{stores: make(map[string]Store)}
}

func (r *registry) RegisterStore(backend string, store Store) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.stores[backend] = store
}

func (r *registry) GetStore(backend string) (Store, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	store, exists := r.stores[backend]
	return store, exists
}
