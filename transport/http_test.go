package transport_test

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	checkoutapp "github.com/muhammadheryan/cart-reservation/application/checkout"
	"github.com/muhammadheryan/cart-reservation/cmd/config"
	cartmocks "github.com/muhammadheryan/cart-reservation/mocks/application/cart"
	storemocks "github.com/muhammadheryan/cart-reservation/mocks/application/reservation"
	"github.com/muhammadheryan/cart-reservation/model"
	"github.com/muhammadheryan/cart-reservation/transport"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type envelope struct {
	Code    string          `json:"code"`
	Message string          `json:"message"`
	Data    json.RawMessage `json:"data"`
}

func testConfig() *config.Config {
	cfg := config.Load()
	cfg.Session.Secret = "test-secret"
	cfg.InternalAPIKey = "internal-key"
	return cfg
}

func newTestServer(t *testing.T) (http.Handler, *cartmocks.CartApp, *storemocks.ReservationStore) {
	t.Helper()
	cart := cartmocks.NewCartApp(t)
	store := storemocks.NewReservationStore(t)
	handler := transport.NewTransport(testConfig(), cart, store, checkoutapp.NewValidator(store, nil))
	return handler, cart, store
}

func createSession(t *testing.T, handler http.Handler) string {
	t.Helper()
	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, httptest.NewRequest(http.MethodPost, "/session", nil))
	require.Equal(t, http.StatusOK, rec.Code)

	var env envelope
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &env))
	var data struct {
		SessionID string `json:"session_id"`
		Token     string `json:"token"`
	}
	require.NoError(t, json.Unmarshal(env.Data, &data))
	require.NotEmpty(t, data.Token)
	return data.Token
}

func TestSessionFlow(t *testing.T) {
	handler, cart, _ := newTestServer(t)

	// No token, no cart
	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/cart", nil))
	assert.Equal(t, http.StatusUnauthorized, rec.Code)

	// Garbage token is rejected
	rec = httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/cart", nil)
	req.Header.Set("Authorization", "Bearer not-a-token")
	handler.ServeHTTP(rec, req)
	assert.Equal(t, http.StatusUnauthorized, rec.Code)

	// A minted session token opens the cart routes
	token := createSession(t, handler)
	cart.On("Lines", mock.AnythingOfType("string")).Return([]model.CartLine{}).Once()

	rec = httptest.NewRecorder()
	req = httptest.NewRequest(http.MethodGet, "/cart", nil)
	req.Header.Set("Authorization", "Bearer "+token)
	handler.ServeHTTP(rec, req)
	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestAddItem(t *testing.T) {
	handler, cart, _ := newTestServer(t)
	token := createSession(t, handler)

	// Malformed body
	rec := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/cart/items", strings.NewReader("{"))
	req.Header.Set("Authorization", "Bearer "+token)
	handler.ServeHTTP(rec, req)
	assert.Equal(t, http.StatusBadRequest, rec.Code)

	// Validation tags reject a zero quantity before the app is touched
	rec = httptest.NewRecorder()
	req = httptest.NewRequest(http.MethodPost, "/cart/items", strings.NewReader(`{"product_id":42,"quantity":0,"product_stock":10}`))
	req.Header.Set("Authorization", "Bearer "+token)
	handler.ServeHTTP(rec, req)
	assert.Equal(t, http.StatusBadRequest, rec.Code)

	// Happy path
	cart.On("AddItem", mock.Anything, mock.AnythingOfType("string"), &model.AddItemRequest{
		ProductID: 42, Quantity: 3, ProductStock: 10,
	}).Return(model.ValidResult(), &model.CartLine{ProductID: 42, Quantity: 3, ProductStock: 10}).Once()

	rec = httptest.NewRecorder()
	req = httptest.NewRequest(http.MethodPost, "/cart/items", strings.NewReader(`{"product_id":42,"quantity":3,"product_stock":10}`))
	req.Header.Set("Authorization", "Bearer "+token)
	handler.ServeHTTP(rec, req)
	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestProductAvailability(t *testing.T) {
	handler, _, store := newTestServer(t)
	token := createSession(t, handler)

	store.On("AvailableStock", mock.AnythingOfType("string"), uint64(42), int64(10)).Return(int64(7)).Once()
	store.On("ReservedQuantity", mock.AnythingOfType("string"), uint64(42)).Return(3).Once()

	rec := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/products/42/availability?stock=10", nil)
	req.Header.Set("Authorization", "Bearer "+token)
	handler.ServeHTTP(rec, req)
	require.Equal(t, http.StatusOK, rec.Code)

	var env envelope
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &env))
	var data struct {
		Available int64 `json:"available"`
		Reserved  int   `json:"reserved"`
	}
	require.NoError(t, json.Unmarshal(env.Data, &data))
	assert.Equal(t, int64(7), data.Available)
	assert.Equal(t, 3, data.Reserved)
}

func TestInternalSweep(t *testing.T) {
	handler, _, store := newTestServer(t)

	// Wrong key
	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, httptest.NewRequest(http.MethodPost, "/internal/sweep", nil))
	assert.Equal(t, http.StatusForbidden, rec.Code)

	// Right key triggers the sweep
	store.On("Sweep", mock.Anything).Once()
	rec = httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/internal/sweep", nil)
	req.Header.Set("Authorization", "Bearer internal-key")
	handler.ServeHTTP(rec, req)
	assert.Equal(t, http.StatusOK, rec.Code)
}
