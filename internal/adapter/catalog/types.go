package catalog

import "github.com/lefergusion/storefront/internal/core/domain"

// Product mirrors the catalog JSON document shape.
type Product struct {
	ID                 string   `json:"id"`
	ProductName        string   `json:"productName"`
	Price              float64  `json:"price"`
	OriginalPrice      float64  `json:"originalPrice"`
	Image              string   `json:"image"`
	AdditionalImages   []string `json:"additionalImages"`
	Ratings            float64  `json:"ratings"`
	RatingCount        int      `json:"ratingCount"`
	QuestionsAnswered  int      `json:"questionsAnswered"`
	InStock            int      `json:"inStock"`
	FastDelivery       bool     `json:"fastDelivery"`
	Brand              string   `json:"brand"`
	Model              string   `json:"model"`
	Warranty           string   `json:"warranty"`
	Seller             string   `json:"seller"`
	ProductDescription string   `json:"productDescription"`
}

func toDomain(ps []Product) (domainPs []domain.Product) {
	for _, p := range ps {
		domainPs = append(domainPs, domain.Product{
			ID:                p.ID,
			Name:              p.ProductName,
			Price:             p.Price,
			OriginalPrice:     p.OriginalPrice,
			Image:             p.Image,
			AdditionalImages:  p.AdditionalImages,
			Ratings:           p.Ratings,
			RatingCount:       p.RatingCount,
			QuestionsAnswered: p.QuestionsAnswered,
			InStock:           p.InStock,
			FastDelivery:      p.FastDelivery,
			Brand:             p.Brand,
			Model:             p.Model,
			Warranty:          p.Warranty,
			Seller:            p.Seller,
			Description:       p.ProductDescription,
		})
	}
	return domainPs
}
