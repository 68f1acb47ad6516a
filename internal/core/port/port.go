package port

import (
	"context"

	"github.com/lefergusion/storefront/internal/core/domain"
)

// StateStore is the single authoritative state container: FIFO
// dispatch, read-only snapshots, versioned notifications.
type StateStore interface {
	Dispatch(domain.Action) (domain.State, error)
	Snapshot() domain.State
	Subscribe(fn func(domain.State)) (unsubscribe func())
}

// CatalogSeeder is what the catalog loader calls once the product list
// arrives.
type CatalogSeeder interface {
	SeedCatalog(context.Context, []domain.Product) error
}

// CatalogReader serves the browse surfaces.
type CatalogReader interface {
	VisibleProducts(context.Context) ([]domain.Product, error)
	ProductByID(context.Context, string) (domain.Product, error)
}

// CatalogSearcher narrows the visible product list.
type CatalogSearcher interface {
	SetSearchQuery(context.Context, string) error
}

// CartEditor mutates the cart through dispatched actions.
type CartEditor interface {
	AddToCart(ctx context.Context, productID string, quantity int) error
	UpdateQuantity(ctx context.Context, productID string, quantity int) error
	RemoveFromCart(ctx context.Context, productID string) error
	ClearCart(context.Context) error
}

// CartReader exposes the cart lines; totals are derived by the caller
// from the returned lines, never stored.
type CartReader interface {
	CartLines(context.Context) ([]domain.CartLine, error)
}

// CatalogLoader re-fetches the catalog; a later load supersedes the
// earlier one through a fresh SetProducts dispatch.
type CatalogLoader interface {
	Load(context.Context) error
}

// ClientEventsProducer forwards storefront interactions to the
// analytics pipeline.
type ClientEventsProducer interface {
	ProduceEvent(context.Context, domain.ClientEvent) error
	Close()
}
