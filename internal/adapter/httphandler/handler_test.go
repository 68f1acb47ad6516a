package httphandler_test

import (
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/lefergusion/storefront/internal/adapter/httphandler"
	"github.com/lefergusion/storefront/internal/core/domain"
	"github.com/lefergusion/storefront/internal/core/service"
	"github.com/lefergusion/storefront/internal/core/state"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testCatalog() []domain.Product {
	return []domain.Product{
		{ID: "A", Name: "Widget A", Price: 100, InStock: 3},
		{ID: "B", Name: "Widget B", Price: 50, InStock: 1},
		{ID: "C", Name: "Gadget C", Price: 25, InStock: 20},
	}
}

func newTestServer(t *testing.T) *httptest.Server {
	t.Helper()

	sf := service.New(state.NewStore(), nil)
	require.NoError(t, sf.SeedCatalog(t.Context(), testCatalog()))

	mux := http.NewServeMux()
	httphandler.RegisterProducts(mux, sf)
	httphandler.RegisterSearch(mux, sf)
	httphandler.RegisterCart(mux, sf, sf)

	srv := httptest.NewServer(httphandler.AllowJSON(mux))
	t.Cleanup(srv.Close)
	return srv
}

func doJSON(
	t *testing.T, srv *httptest.Server, method, path, body string,
) *http.Response {
	t.Helper()

	var reader io.Reader
	if body != "" {
		reader = strings.NewReader(body)
	}
	req, err := http.NewRequestWithContext(
		t.Context(), method, srv.URL+path, reader,
	)
	require.NoError(t, err)
	if body != "" {
		req.Header.Set("Content-Type", "application/json")
	}

	res, err := srv.Client().Do(req)
	require.NoError(t, err)
	t.Cleanup(func() { _ = res.Body.Close() })
	return res
}

func decode[T any](t *testing.T, res *http.Response) T {
	t.Helper()
	var v T
	require.NoError(t, json.NewDecoder(res.Body).Decode(&v))
	return v
}

func TestGetProducts(t *testing.T) {
	srv := newTestServer(t)

	res := doJSON(t, srv, http.MethodGet, "/v1/products", "")
	require.Equal(t, http.StatusOK, res.StatusCode)

	ps := decode[[]httphandler.Product](t, res)
	require.Len(t, ps, 3)
	assert.Equal(t, "Widget A", ps[0].ProductName)
}

func TestGetProduct(t *testing.T) {
	t.Run("Found", func(t *testing.T) {
		srv := newTestServer(t)

		res := doJSON(t, srv, http.MethodGet, "/v1/products/B", "")
		require.Equal(t, http.StatusOK, res.StatusCode)

		p := decode[httphandler.Product](t, res)
		assert.Equal(t, "Widget B", p.ProductName)
		assert.Equal(t, 1, p.InStock)
	})

	t.Run("NotFound", func(t *testing.T) {
		srv := newTestServer(t)

		res := doJSON(t, srv, http.MethodGet, "/v1/products/nope", "")
		assert.Equal(t, http.StatusNotFound, res.StatusCode)
	})
}

func TestSearch(t *testing.T) {
	srv := newTestServer(t)

	res := doJSON(t, srv, http.MethodPut, "/v1/search", `{"query":"gadget"}`)
	require.Equal(t, http.StatusOK, res.StatusCode)

	res = doJSON(t, srv, http.MethodGet, "/v1/products", "")
	ps := decode[[]httphandler.Product](t, res)
	require.Len(t, ps, 1)
	assert.Equal(t, "C", ps[0].ID)

	// empty query restores the full list
	res = doJSON(t, srv, http.MethodPut, "/v1/search", `{"query":""}`)
	require.Equal(t, http.StatusOK, res.StatusCode)

	res = doJSON(t, srv, http.MethodGet, "/v1/products", "")
	assert.Len(t, decode[[]httphandler.Product](t, res), 3)
}

func TestSearchInvalidJSON(t *testing.T) {
	srv := newTestServer(t)

	res := doJSON(t, srv, http.MethodPut, "/v1/search", `{"query":`)
	assert.Equal(t, http.StatusBadRequest, res.StatusCode)
}

func TestCartFlow(t *testing.T) {
	srv := newTestServer(t)

	res := doJSON(t, srv, http.MethodPost, "/v1/cart/items",
		`{"product_id":"A","quantity":2}`)
	require.Equal(t, http.StatusAccepted, res.StatusCode)

	res = doJSON(t, srv, http.MethodGet, "/v1/cart", "")
	cart := decode[httphandler.Cart](t, res)
	require.Len(t, cart.Items, 1)
	assert.Equal(t, 2, cart.Count)
	assert.InDelta(t, 200, cart.Subtotal, 1e-9)

	// quantity above stock is clamped, not rejected
	res = doJSON(t, srv, http.MethodPost, "/v1/cart/items",
		`{"product_id":"A","quantity":5}`)
	require.Equal(t, http.StatusAccepted, res.StatusCode)

	res = doJSON(t, srv, http.MethodGet, "/v1/cart", "")
	cart = decode[httphandler.Cart](t, res)
	require.Len(t, cart.Items, 1)
	assert.Equal(t, 3, cart.Items[0].Quantity)
	assert.InDelta(t, 300, cart.Subtotal, 1e-9)

	res = doJSON(t, srv, http.MethodPut, "/v1/cart/items/B", `{"quantity":1}`)
	require.Equal(t, http.StatusOK, res.StatusCode)

	res = doJSON(t, srv, http.MethodGet, "/v1/cart", "")
	cart = decode[httphandler.Cart](t, res)
	require.Len(t, cart.Items, 2)
	assert.InDelta(t, 350, cart.Subtotal, 1e-9)

	res = doJSON(t, srv, http.MethodDelete, "/v1/cart/items/A", "")
	require.Equal(t, http.StatusNoContent, res.StatusCode)

	res = doJSON(t, srv, http.MethodGet, "/v1/cart", "")
	cart = decode[httphandler.Cart](t, res)
	require.Len(t, cart.Items, 1)
	assert.InDelta(t, 50, cart.Subtotal, 1e-9)

	res = doJSON(t, srv, http.MethodDelete, "/v1/cart", "")
	require.Equal(t, http.StatusNoContent, res.StatusCode)

	res = doJSON(t, srv, http.MethodGet, "/v1/cart", "")
	cart = decode[httphandler.Cart](t, res)
	assert.Empty(t, cart.Items)
	assert.Zero(t, cart.Count)
}

func TestAddUnknownProductIsAccepted(t *testing.T) {
	srv := newTestServer(t)

	res := doJSON(t, srv, http.MethodPost, "/v1/cart/items",
		`{"product_id":"nope","quantity":1}`)
	require.Equal(t, http.StatusAccepted, res.StatusCode)

	res = doJSON(t, srv, http.MethodGet, "/v1/cart", "")
	cart := decode[httphandler.Cart](t, res)
	assert.Empty(t, cart.Items)
}

func TestAddDefaultsQuantityToOne(t *testing.T) {
	srv := newTestServer(t)

	res := doJSON(t, srv, http.MethodPost, "/v1/cart/items",
		`{"product_id":"A"}`)
	require.Equal(t, http.StatusAccepted, res.StatusCode)

	res = doJSON(t, srv, http.MethodGet, "/v1/cart", "")
	cart := decode[httphandler.Cart](t, res)
	require.Len(t, cart.Items, 1)
	assert.Equal(t, 1, cart.Items[0].Quantity)
}

func TestAllowJSON(t *testing.T) {
	srv := newTestServer(t)

	req, err := http.NewRequestWithContext(
		t.Context(), http.MethodPut, srv.URL+"/v1/search",
		strings.NewReader(`{"query":"x"}`),
	)
	require.NoError(t, err)
	req.Header.Set("Content-Type", "text/plain")

	res, err := srv.Client().Do(req)
	require.NoError(t, err)
	defer res.Body.Close()

	assert.Equal(t, http.StatusUnsupportedMediaType, res.StatusCode)
}
