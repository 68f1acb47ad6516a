package httphandler

type (
	Product struct {
		ID                 string   `json:"id"`
		ProductName        string   `json:"productName"`
		Price              float64  `json:"price"`
		OriginalPrice      float64  `json:"originalPrice,omitempty"`
		Image              string   `json:"image"`
		AdditionalImages   []string `json:"additionalImages,omitempty"`
		Ratings            float64  `json:"ratings"`
		RatingCount        int      `json:"ratingCount"`
		QuestionsAnswered  int      `json:"questionsAnswered"`
		InStock            int      `json:"inStock"`
		FastDelivery       bool     `json:"fastDelivery"`
		Brand              string   `json:"brand,omitempty"`
		Model              string   `json:"model,omitempty"`
		Warranty           string   `json:"warranty,omitempty"`
		Seller             string   `json:"seller,omitempty"`
		ProductDescription string   `json:"productDescription,omitempty"`
	}

	CartLine struct {
		Product  Product `json:"product"`
		Quantity int     `json:"quantity"`
	}

	Cart struct {
		Items    []CartLine `json:"items"`
		Count    int        `json:"count"`
		Subtotal float64    `json:"subtotal"`
	}
)

type SearchRequest struct {
	Query string `json:"query"`
}

type AddCartItemRequest struct {
	ProductID string `json:"product_id"`
	Quantity  int    `json:"quantity"`
}

type UpdateCartItemRequest struct {
	Quantity int `json:"quantity"`
}
