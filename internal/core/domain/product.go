package domain

import "strings"

type Product struct {
	ID                string
	Name              string
	Price             float64
	OriginalPrice     float64 // 0 when the product was never discounted
	Image             string
	AdditionalImages  []string
	Ratings           float64
	RatingCount       int
	QuestionsAnswered int
	InStock           int
	FastDelivery      bool
	Brand             string
	Model             string
	Warranty          string
	Seller            string
	Description       string
}

// FilterByName returns the subsequence of ps whose Name contains query
// case-insensitively, preserving the original order.
// An empty query yields ps unchanged.
func FilterByName(ps []Product, query string) []Product {
	if query == "" {
		return ps
	}
	q := strings.ToLower(query)
	filtered := make([]Product, 0, len(ps))
	for _, p := range ps {
		if strings.Contains(strings.ToLower(p.Name), q) {
			filtered = append(filtered, p)
		}
	}
	return filtered
}
