package domain

// Action is a tagged request for a single state transition.
// The set of variants is closed; the reducer rejects anything else.
type Action interface {
	actionTag() string
}

type (
	// SetProducts replaces the catalog, usually once at startup.
	SetProducts struct {
		Products []Product
	}

	// SetSearchQuery replaces the filtered view of the catalog.
	SetSearchQuery struct {
		Query string
	}

	// AddToCart creates or grows the cart line for ProductID.
	AddToCart struct {
		ProductID string
		Quantity  int
	}

	// UpdateQuantity sets the cart line quantity directly.
	UpdateQuantity struct {
		ProductID string
		Quantity  int
	}

	// RemoveFromCart deletes the cart line for ProductID.
	RemoveFromCart struct {
		ProductID string
	}

	// ClearCart empties the cart.
	ClearCart struct{}
)

func (SetProducts) actionTag() string    { return "SetProducts" }
func (SetSearchQuery) actionTag() string { return "SetSearchQuery" }
func (AddToCart) actionTag() string      { return "AddToCart" }
func (UpdateQuantity) actionTag() string { return "UpdateQuantity" }
func (RemoveFromCart) actionTag() string { return "RemoveFromCart" }
func (ClearCart) actionTag() string      { return "ClearCart" }

// ActionTag reports the variant name, for logs and client events.
func ActionTag(a Action) string {
	if a == nil {
		return "nil"
	}
	return a.actionTag()
}
