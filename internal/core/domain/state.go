package domain

// State is one immutable version of the storefront session state.
// The state store publishes a fresh value per transition; holders of a
// snapshot must never observe later mutations, so transitions copy any
// slice they change instead of writing in place.
type State struct {
	// Catalog is the full unfiltered product list, the source of truth.
	Catalog []Product
	// Visible is the filtered view of Catalog under Query:
	// always a stable-order subsequence of Catalog.
	Visible []Product
	// Query is the active search text producing Visible.
	Query string
	// Cart holds at most one line per distinct product ID.
	Cart []CartLine
	// Version increases by one per applied transition.
	Version uint64
}

// ProductByID resolves id against the unfiltered catalog.
func (s State) ProductByID(id string) (Product, bool) {
	for _, p := range s.Catalog {
		if p.ID == id {
			return p, true
		}
	}
	return Product{}, false
}

// CartLineIndex returns the index of the line holding productID, or -1.
func (s State) CartLineIndex(productID string) int {
	for i, l := range s.Cart {
		if l.Product.ID == productID {
			return i
		}
	}
	return -1
}
