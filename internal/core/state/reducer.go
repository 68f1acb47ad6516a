package state

import (
	"fmt"
	"log/slog"

	"github.com/lefergusion/storefront/internal/core/domain"
)

// Reduce applies one action to s and returns the next state value.
// It never mutates s: changed slices are rebuilt, untouched ones are
// shared between versions. Total over every state; the only error is
// an action outside the recognized set.
func Reduce(s domain.State, a domain.Action) (domain.State, error) {
	const op = "state.Reduce"

	switch a := a.(type) {
	case domain.SetProducts:
		s.Catalog = a.Products
		s.Visible = domain.FilterByName(s.Catalog, s.Query)
	case domain.SetSearchQuery:
		s.Query = a.Query
		s.Visible = domain.FilterByName(s.Catalog, s.Query)
	case domain.AddToCart:
		s.Cart = addToCart(s, a.ProductID, a.Quantity)
	case domain.UpdateQuantity:
		s.Cart = updateQuantity(s, a.ProductID, a.Quantity)
	case domain.RemoveFromCart:
		s.Cart = removeLine(s.Cart, s.CartLineIndex(a.ProductID))
	case domain.ClearCart:
		s.Cart = nil
	default:
		return s, fmt.Errorf("%s: %w: %T", op, domain.ErrUnknownAction, a)
	}

	return s, nil
}

// addToCart resolves the product against the unfiltered catalog so a
// product hidden by the active search is still addable. An unknown ID
// and an out-of-stock product both leave the cart as is.
func addToCart(s domain.State, productID string, quantity int) []domain.CartLine {
	p, ok := s.ProductByID(productID)
	if !ok {
		logNotFound("addToCart", productID)
		return s.Cart
	}

	if i := s.CartLineIndex(productID); i >= 0 {
		q := domain.ClampQuantity(p, s.Cart[i].Quantity+quantity)
		return setLineQuantity(s.Cart, i, q)
	}

	q := domain.ClampQuantity(p, quantity)
	if q < 1 {
		return s.Cart
	}
	lines := make([]domain.CartLine, len(s.Cart), len(s.Cart)+1)
	copy(lines, s.Cart)
	return append(lines, domain.CartLine{Product: p, Quantity: q})
}

// updateQuantity sets the line quantity directly, creating the line
// when absent; zero or below removes it, everything else is clamped to
// the product bound.
func updateQuantity(s domain.State, productID string, quantity int) []domain.CartLine {
	p, ok := s.ProductByID(productID)
	if !ok {
		logNotFound("updateQuantity", productID)
		return s.Cart
	}

	i := s.CartLineIndex(productID)
	if quantity <= 0 {
		return removeLine(s.Cart, i)
	}

	q := domain.ClampQuantity(p, quantity)
	if i >= 0 {
		return setLineQuantity(s.Cart, i, q)
	}
	if q < 1 {
		return s.Cart
	}
	lines := make([]domain.CartLine, len(s.Cart), len(s.Cart)+1)
	copy(lines, s.Cart)
	return append(lines, domain.CartLine{Product: p, Quantity: q})
}

func setLineQuantity(lines []domain.CartLine, i, q int) []domain.CartLine {
	if q < 1 {
		return removeLine(lines, i)
	}
	next := make([]domain.CartLine, len(lines))
	copy(next, lines)
	next[i].Quantity = q
	return next
}

func removeLine(lines []domain.CartLine, i int) []domain.CartLine {
	if i < 0 {
		return lines
	}
	next := make([]domain.CartLine, 0, len(lines)-1)
	next = append(next, lines[:i]...)
	return append(next, lines[i+1:]...)
}

func logNotFound(op, productID string) {
	slog.Debug("cart action dropped",
		"op", "state.Reduce."+op,
		"productID", productID,
		"reason", domain.ErrProductNotFound,
	)
}
