package domain

import "time"

// Client event types emitted after successful state transitions.
const (
	EventCatalogLoaded   = "catalog_loaded"
	EventSearchPerformed = "search_performed"
	EventProductAdded    = "product_added"
	EventQuantityChanged = "quantity_changed"
	EventProductRemoved  = "product_removed"
	EventCartCleared     = "cart_cleared"
)

// ClientEvent describes one storefront interaction for the analytics
// pipeline. Fields irrelevant to the event type stay zero.
type ClientEvent struct {
	Type      string
	ProductID string
	Quantity  int
	Query     string
	At        time.Time
}
