package service_test

import (
	"context"
	"testing"
	"time"

	"github.com/lefergusion/storefront/internal/core/domain"
	"github.com/lefergusion/storefront/internal/core/service"
	"github.com/lefergusion/storefront/internal/core/state"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const eventWait = 2 * time.Second

// eventsRecorder captures emitted client events; emission happens off
// the dispatching goroutine, so delivery goes through a channel.
type eventsRecorder struct {
	events chan domain.ClientEvent
}

func newEventsRecorder() *eventsRecorder {
	return &eventsRecorder{events: make(chan domain.ClientEvent, 16)}
}

func (r *eventsRecorder) ProduceEvent(
	_ context.Context, ev domain.ClientEvent,
) error {
	r.events <- ev
	return nil
}

func (r *eventsRecorder) Close() {}

func (r *eventsRecorder) next(t *testing.T) domain.ClientEvent {
	t.Helper()
	select {
	case ev := <-r.events:
		return ev
	case <-time.After(eventWait):
		t.Fatal("no client event emitted")
		return domain.ClientEvent{}
	}
}

func testCatalog() []domain.Product {
	return []domain.Product{
		{ID: "A", Name: "Widget A", Price: 100, InStock: 3},
		{ID: "B", Name: "Widget B", Price: 50, InStock: 1},
	}
}

func newStorefront(t *testing.T) (service.Storefront, *eventsRecorder) {
	t.Helper()
	rec := newEventsRecorder()
	sf := service.New(state.NewStore(), rec)

	require.NoError(t, sf.SeedCatalog(t.Context(), testCatalog()))
	ev := rec.next(t)
	require.Equal(t, domain.EventCatalogLoaded, ev.Type)
	return sf, rec
}

func TestSeedCatalog(t *testing.T) {
	sf, _ := newStorefront(t)

	ps, err := sf.VisibleProducts(t.Context())
	require.NoError(t, err)
	assert.Equal(t, testCatalog(), ps)
}

func TestProductByID(t *testing.T) {
	t.Run("ResolvesAgainstCatalog", func(t *testing.T) {
		sf, _ := newStorefront(t)

		p, err := sf.ProductByID(t.Context(), "B")
		require.NoError(t, err)
		assert.Equal(t, "Widget B", p.Name)
	})

	t.Run("AbsentID", func(t *testing.T) {
		sf, _ := newStorefront(t)

		_, err := sf.ProductByID(t.Context(), "nope")
		require.Error(t, err)
		assert.ErrorIs(t, err, domain.ErrProductNotFound)
	})

	t.Run("IgnoresActiveSearch", func(t *testing.T) {
		sf, _ := newStorefront(t)
		require.NoError(t, sf.SetSearchQuery(t.Context(), "widget a"))

		p, err := sf.ProductByID(t.Context(), "B")
		require.NoError(t, err)
		assert.Equal(t, "B", p.ID)
	})
}

func TestSearchFlow(t *testing.T) {
	sf, rec := newStorefront(t)

	require.NoError(t, sf.SetSearchQuery(t.Context(), "b"))

	ps, err := sf.VisibleProducts(t.Context())
	require.NoError(t, err)
	require.Len(t, ps, 1)
	assert.Equal(t, "Widget B", ps[0].Name)

	ev := rec.next(t)
	assert.Equal(t, domain.EventSearchPerformed, ev.Type)
	assert.Equal(t, "b", ev.Query)
	assert.False(t, ev.At.IsZero())

	require.NoError(t, sf.SetSearchQuery(t.Context(), ""))
	ps, err = sf.VisibleProducts(t.Context())
	require.NoError(t, err)
	assert.Equal(t, testCatalog(), ps)
}

func TestCartFlow(t *testing.T) {
	sf, rec := newStorefront(t)
	ctx := t.Context()

	require.NoError(t, sf.AddToCart(ctx, "A", 2))
	ev := rec.next(t)
	assert.Equal(t, domain.EventProductAdded, ev.Type)
	assert.Equal(t, "A", ev.ProductID)
	assert.Equal(t, 2, ev.Quantity)

	lines, err := sf.CartLines(ctx)
	require.NoError(t, err)
	require.Len(t, lines, 1)
	assert.Equal(t, 2, lines[0].Quantity)
	assert.InDelta(t, 200, domain.Subtotal(lines), 1e-9)

	require.NoError(t, sf.UpdateQuantity(ctx, "A", 3))
	assert.Equal(t, domain.EventQuantityChanged, rec.next(t).Type)

	require.NoError(t, sf.RemoveFromCart(ctx, "A"))
	assert.Equal(t, domain.EventProductRemoved, rec.next(t).Type)

	lines, err = sf.CartLines(ctx)
	require.NoError(t, err)
	assert.Empty(t, lines)

	require.NoError(t, sf.AddToCart(ctx, "B", 1))
	rec.next(t)
	require.NoError(t, sf.ClearCart(ctx))
	assert.Equal(t, domain.EventCartCleared, rec.next(t).Type)

	lines, err = sf.CartLines(ctx)
	require.NoError(t, err)
	assert.Empty(t, lines)
}

func TestUnknownProductAddIsSilent(t *testing.T) {
	sf, _ := newStorefront(t)

	require.NoError(t, sf.AddToCart(t.Context(), "nope", 1))

	lines, err := sf.CartLines(t.Context())
	require.NoError(t, err)
	assert.Empty(t, lines)
}

func TestNilEventsProducer(t *testing.T) {
	sf := service.New(state.NewStore(), nil)

	require.NoError(t, sf.SeedCatalog(t.Context(), testCatalog()))
	require.NoError(t, sf.AddToCart(t.Context(), "A", 1))

	lines, err := sf.CartLines(t.Context())
	require.NoError(t, err)
	require.Len(t, lines, 1)
}

func TestCanceledContext(t *testing.T) {
	sf, _ := newStorefront(t)

	ctx, cancel := context.WithCancel(t.Context())
	cancel()

	assert.Error(t, sf.SetSearchQuery(ctx, "x"))
	assert.Error(t, sf.AddToCart(ctx, "A", 1))
	_, err := sf.VisibleProducts(ctx)
	assert.Error(t, err)
}
