package domain

// MaxLineQuantity bounds a single cart line regardless of stock.
const MaxLineQuantity = 10

type CartLine struct {
	Product  Product
	Quantity int
}

// MaxQuantity is the upper bound for a line holding p:
// the lesser of MaxLineQuantity and the available stock.
func MaxQuantity(p Product) int {
	if p.InStock < MaxLineQuantity {
		return p.InStock
	}
	return MaxLineQuantity
}

// ClampQuantity bounds q to [1, MaxQuantity(p)].
// A non-positive result means no valid quantity exists (out of stock).
func ClampQuantity(p Product, q int) int {
	if max := MaxQuantity(p); q > max {
		q = max
	}
	if q < 1 && MaxQuantity(p) >= 1 {
		q = 1
	}
	return q
}

// CartCount sums the quantities over all lines.
func CartCount(lines []CartLine) int {
	var n int
	for _, l := range lines {
		n += l.Quantity
	}
	return n
}

// Subtotal sums price times quantity over all lines.
func Subtotal(lines []CartLine) float64 {
	var sum float64
	for _, l := range lines {
		sum += l.Product.Price * float64(l.Quantity)
	}
	return sum
}
