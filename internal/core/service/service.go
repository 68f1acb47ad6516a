package service

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/lefergusion/storefront/internal/core/domain"
	"github.com/lefergusion/storefront/internal/core/port"
)

var _ port.CatalogSeeder = (*Storefront)(nil)
var _ port.CatalogReader = (*Storefront)(nil)
var _ port.CatalogSearcher = (*Storefront)(nil)
var _ port.CartEditor = (*Storefront)(nil)
var _ port.CartReader = (*Storefront)(nil)

const produceTimeout = 5 * time.Second

// Storefront is the operation facade over the state store used by the
// inbound adapters. Every mutation goes through Dispatch, so the FIFO
// and atomicity guarantees of the store carry over; successful
// mutations additionally emit a client event when an events producer
// is wired.
type Storefront struct {
	store  port.StateStore
	events port.ClientEventsProducer
}

// New constructs the service. events may be nil: analytics is optional
// and its absence changes nothing for the storefront operations.
func New(store port.StateStore, events port.ClientEventsProducer) Storefront {
	return Storefront{store: store, events: events}
}

func (s Storefront) SeedCatalog(ctx context.Context, ps []domain.Product) error {
	const op = "Storefront.SeedCatalog"

	if err := ctx.Err(); err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}

	if _, err := s.store.Dispatch(domain.SetProducts{Products: ps}); err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}

	s.emit(ctx, domain.ClientEvent{
		Type:     domain.EventCatalogLoaded,
		Quantity: len(ps),
	})
	return nil
}

func (s Storefront) SetSearchQuery(ctx context.Context, query string) error {
	const op = "Storefront.SetSearchQuery"

	if err := ctx.Err(); err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}

	if _, err := s.store.Dispatch(domain.SetSearchQuery{Query: query}); err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}

	s.emit(ctx, domain.ClientEvent{
		Type:  domain.EventSearchPerformed,
		Query: query,
	})
	return nil
}

func (s Storefront) VisibleProducts(ctx context.Context) ([]domain.Product, error) {
	const op = "Storefront.VisibleProducts"

	if err := ctx.Err(); err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	return s.store.Snapshot().Visible, nil
}

func (s Storefront) ProductByID(ctx context.Context, id string) (domain.Product, error) {
	const op = "Storefront.ProductByID"

	if err := ctx.Err(); err != nil {
		return domain.Product{}, fmt.Errorf("%s: %w", op, err)
	}

	p, ok := s.store.Snapshot().ProductByID(id)
	if !ok {
		return domain.Product{}, fmt.Errorf(
			"%s: %q: %w", op, id, domain.ErrProductNotFound,
		)
	}
	return p, nil
}

func (s Storefront) AddToCart(
	ctx context.Context, productID string, quantity int,
) error {
	const op = "Storefront.AddToCart"

	if err := ctx.Err(); err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}

	a := domain.AddToCart{ProductID: productID, Quantity: quantity}
	if _, err := s.store.Dispatch(a); err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}

	s.emit(ctx, domain.ClientEvent{
		Type:      domain.EventProductAdded,
		ProductID: productID,
		Quantity:  quantity,
	})
	return nil
}

func (s Storefront) UpdateQuantity(
	ctx context.Context, productID string, quantity int,
) error {
	const op = "Storefront.UpdateQuantity"

	if err := ctx.Err(); err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}

	a := domain.UpdateQuantity{ProductID: productID, Quantity: quantity}
	if _, err := s.store.Dispatch(a); err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}

	s.emit(ctx, domain.ClientEvent{
		Type:      domain.EventQuantityChanged,
		ProductID: productID,
		Quantity:  quantity,
	})
	return nil
}

func (s Storefront) RemoveFromCart(ctx context.Context, productID string) error {
	const op = "Storefront.RemoveFromCart"

	if err := ctx.Err(); err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}

	if _, err := s.store.Dispatch(domain.RemoveFromCart{ProductID: productID}); err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}

	s.emit(ctx, domain.ClientEvent{
		Type:      domain.EventProductRemoved,
		ProductID: productID,
	})
	return nil
}

func (s Storefront) ClearCart(ctx context.Context) error {
	const op = "Storefront.ClearCart"

	if err := ctx.Err(); err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}

	if _, err := s.store.Dispatch(domain.ClearCart{}); err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}

	s.emit(ctx, domain.ClientEvent{Type: domain.EventCartCleared})
	return nil
}

func (s Storefront) CartLines(ctx context.Context) ([]domain.CartLine, error) {
	const op = "Storefront.CartLines"

	if err := ctx.Err(); err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	return s.store.Snapshot().Cart, nil
}

// emit forwards a client event off the dispatching goroutine: a slow
// or unavailable analytics broker must never stall a storefront
// interaction, so failures are logged and dropped.
func (s Storefront) emit(ctx context.Context, ev domain.ClientEvent) {
	if s.events == nil {
		return
	}
	ev.At = time.Now().UTC()

	go func(ctx context.Context) {
		const op = "Storefront.emit"

		ctx, cancel := context.WithTimeout(ctx, produceTimeout)
		defer cancel()

		if err := s.events.ProduceEvent(ctx, ev); err != nil {
			slog.Warn("client event dropped",
				"op", op, "eventType", ev.Type, "err", err,
			)
		}
	}(context.WithoutCancel(ctx))
}
