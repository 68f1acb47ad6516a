package httphandler

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"

	"github.com/lefergusion/storefront/internal/core/domain"
	"github.com/lefergusion/storefront/internal/core/port"
)

// GET v1/products (response 200 OK, filtered by the active search)
// GET v1/products/{id} (200 OK, 404 Not found)

type ProductsHandler struct {
	catalog port.CatalogReader
}

func RegisterProducts(mux *http.ServeMux, catalog port.CatalogReader) {
	h := ProductsHandler{catalog}
	mux.HandleFunc("GET /v1/products", h.GetProducts)
	mux.HandleFunc("GET /v1/products/{id}", h.GetProduct)
}

func (h ProductsHandler) GetProducts(w http.ResponseWriter, r *http.Request) {
	const op = "ProductsHandler.GetProducts"

	ps, err := h.catalog.VisibleProducts(r.Context())
	if err != nil {
		internalError(w, op, err)
		return
	}

	writeJSON(w, op, h.fromDomain(ps))
}

func (h ProductsHandler) GetProduct(w http.ResponseWriter, r *http.Request) {
	const op = "ProductsHandler.GetProduct"

	p, err := h.catalog.ProductByID(r.Context(), r.PathValue("id"))
	if err != nil {
		if errors.Is(err, domain.ErrProductNotFound) {
			http.Error(w, "no product found", http.StatusNotFound)
			return
		}
		internalError(w, op, err)
		return
	}

	writeJSON(w, op, productFromDomain(p))
}

func (h ProductsHandler) fromDomain(ps []domain.Product) []Product {
	views := make([]Product, 0, len(ps))
	for _, p := range ps {
		views = append(views, productFromDomain(p))
	}
	return views
}

// PUT v1/search JSON {"query" string} (response 200 OK, 400 Bad request)

type SearchHandler struct {
	searcher port.CatalogSearcher
}

func RegisterSearch(mux *http.ServeMux, searcher port.CatalogSearcher) {
	h := SearchHandler{searcher}
	mux.HandleFunc("PUT /v1/search", h.PutSearch)
}

func (h SearchHandler) PutSearch(w http.ResponseWriter, r *http.Request) {
	const op = "SearchHandler.PutSearch"
	log := slog.With("op", op)

	var req SearchRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "invalid JSON data", http.StatusBadRequest)
		log.Warn("failed to parse JSON", "err", err)
		return
	}

	// any query is valid, including empty and non-matching ones
	if err := h.searcher.SetSearchQuery(r.Context(), req.Query); err != nil {
		internalError(w, op, err)
		return
	}

	w.WriteHeader(http.StatusOK)
	log.Info("search applied", "query", req.Query)
}

// GET v1/cart (200 OK)
// POST v1/cart/items JSON {"product_id" string, "quantity" int} (202 Accepted, 400 Bad request)
// PUT v1/cart/items/{id} JSON {"quantity" int} (200 OK, 400 Bad request)
// DELETE v1/cart/items/{id} (204 No content)
// DELETE v1/cart (204 No content)

type CartHandler struct {
	editor port.CartEditor
	reader port.CartReader
}

func RegisterCart(
	mux *http.ServeMux, editor port.CartEditor, reader port.CartReader,
) {
	h := CartHandler{editor, reader}
	mux.HandleFunc("GET /v1/cart", h.GetCart)
	mux.HandleFunc("POST /v1/cart/items", h.PostItem)
	mux.HandleFunc("PUT /v1/cart/items/{id}", h.PutItem)
	mux.HandleFunc("DELETE /v1/cart/items/{id}", h.DeleteItem)
	mux.HandleFunc("DELETE /v1/cart", h.DeleteCart)
}

func (h CartHandler) GetCart(w http.ResponseWriter, r *http.Request) {
	const op = "CartHandler.GetCart"

	lines, err := h.reader.CartLines(r.Context())
	if err != nil {
		internalError(w, op, err)
		return
	}

	writeJSON(w, op, h.fromDomain(lines))
}

func (h CartHandler) PostItem(w http.ResponseWriter, r *http.Request) {
	const op = "CartHandler.PostItem"
	log := slog.With("op", op)

	var req AddCartItemRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "invalid JSON data", http.StatusBadRequest)
		log.Warn("failed to parse JSON", "err", err)
		return
	}
	if req.Quantity == 0 {
		req.Quantity = 1
	}

	// an unknown product ID is a silent no-op, still accepted
	err := h.editor.AddToCart(r.Context(), req.ProductID, req.Quantity)
	if err != nil {
		internalError(w, op, err)
		return
	}

	w.WriteHeader(http.StatusAccepted)
	log.Info("accepted", "productID", req.ProductID, "quantity", req.Quantity)
}

func (h CartHandler) PutItem(w http.ResponseWriter, r *http.Request) {
	const op = "CartHandler.PutItem"
	log := slog.With("op", op)

	var req UpdateCartItemRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "invalid JSON data", http.StatusBadRequest)
		log.Warn("failed to parse JSON", "err", err)
		return
	}

	id := r.PathValue("id")
	if err := h.editor.UpdateQuantity(r.Context(), id, req.Quantity); err != nil {
		internalError(w, op, err)
		return
	}

	w.WriteHeader(http.StatusOK)
	log.Info("quantity updated", "productID", id, "quantity", req.Quantity)
}

func (h CartHandler) DeleteItem(w http.ResponseWriter, r *http.Request) {
	const op = "CartHandler.DeleteItem"

	if err := h.editor.RemoveFromCart(r.Context(), r.PathValue("id")); err != nil {
		internalError(w, op, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

func (h CartHandler) DeleteCart(w http.ResponseWriter, r *http.Request) {
	const op = "CartHandler.DeleteCart"

	if err := h.editor.ClearCart(r.Context()); err != nil {
		internalError(w, op, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

func (h CartHandler) fromDomain(lines []domain.CartLine) Cart {
	items := make([]CartLine, 0, len(lines))
	for _, l := range lines {
		items = append(items, CartLine{
			Product:  productFromDomain(l.Product),
			Quantity: l.Quantity,
		})
	}
	return Cart{
		Items:    items,
		Count:    domain.CartCount(lines),
		Subtotal: domain.Subtotal(lines),
	}
}

// POST v1/catalog/reload (202 Accepted, 503 Service unavailable)

type CatalogHandler struct {
	loader port.CatalogLoader
}

func RegisterCatalog(mux *http.ServeMux, loader port.CatalogLoader) {
	h := CatalogHandler{loader}
	mux.HandleFunc("POST /v1/catalog/reload", h.PostReload)
}

func (h CatalogHandler) PostReload(w http.ResponseWriter, r *http.Request) {
	const op = "CatalogHandler.PostReload"
	log := slog.With("op", op)

	if err := h.loader.Load(r.Context()); err != nil {
		http.Error(
			w, "failed to reload catalog", http.StatusServiceUnavailable,
		)
		log.Error("failed to reload catalog", "err", err)
		return
	}

	w.WriteHeader(http.StatusAccepted)
	log.Info("catalog reloaded")
}

func productFromDomain(p domain.Product) Product {
	return Product{
		ID:                 p.ID,
		ProductName:        p.Name,
		Price:              p.Price,
		OriginalPrice:      p.OriginalPrice,
		Image:              p.Image,
		AdditionalImages:   p.AdditionalImages,
		Ratings:            p.Ratings,
		RatingCount:        p.RatingCount,
		QuestionsAnswered:  p.QuestionsAnswered,
		InStock:            p.InStock,
		FastDelivery:       p.FastDelivery,
		Brand:              p.Brand,
		Model:              p.Model,
		Warranty:           p.Warranty,
		Seller:             p.Seller,
		ProductDescription: p.Description,
	}
}

func writeJSON(w http.ResponseWriter, op string, v any) {
	w.Header().Set("Content-Type", "application/json")
	if err := json.NewEncoder(w).Encode(v); err != nil {
		slog.Error("failed to write response body", "op", op, "err", err)
	}
}

func internalError(w http.ResponseWriter, op string, err error) {
	http.Error(w, "internal error", http.StatusInternalServerError)
	slog.Error("unexpected failure", "op", op, "err", err)
}
