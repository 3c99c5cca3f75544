package cart_test

import (
	"context"
	"testing"
	"time"

	cartapp "github.com/muhammadheryan/cart-reservation/application/cart"
	storemocks "github.com/muhammadheryan/cart-reservation/mocks/application/reservation"
	"github.com/muhammadheryan/cart-reservation/model"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

var holdExpiry = time.Date(2025, 6, 1, 12, 15, 0, 0, time.UTC)

func reservationFor(sessionID string, productID uint64, quantity int) *model.Reservation {
	return &model.Reservation{
		SessionID: sessionID,
		ProductID: productID,
		Quantity:  quantity,
		ExpiresAt: holdExpiry,
	}
}

// seedLine adds a line through the public API, arming the mock for the calls
// the add makes.
func seedLine(t *testing.T, cart cartapp.CartApp, store *storemocks.ReservationStore, sessionID string, productID uint64, qty int, stock int64) {
	t.Helper()
	store.On("AvailableStock", sessionID, productID, stock).Return(stock).Once()
	store.On("Reserve", mock.Anything, sessionID, productID, qty).Return(reservationFor(sessionID, productID, qty)).Once()

	result, line := cart.AddItem(context.Background(), sessionID, &model.AddItemRequest{
		ProductID:    productID,
		Quantity:     qty,
		ProductStock: stock,
	})
	require.True(t, result.Valid)
	require.NotNil(t, line)
}

func TestCartApp_AddItem_NewLine(t *testing.T) {
	store := storemocks.NewReservationStore(t)
	cart := cartapp.NewCartApp(store, nil, nil)

	store.On("AvailableStock", "s1", uint64(42), int64(10)).Return(int64(10)).Once()
	store.On("Reserve", mock.Anything, "s1", uint64(42), 3).Return(reservationFor("s1", 42, 3)).Once()

	result, line := cart.AddItem(context.Background(), "s1", &model.AddItemRequest{
		ProductID:    42,
		Quantity:     3,
		ProductStock: 10,
	})

	require.True(t, result.Valid)
	require.NotNil(t, line)
	assert.Equal(t, uint64(42), line.ProductID)
	assert.Equal(t, 3, line.Quantity)
	assert.Equal(t, int64(10), line.ProductStock)
	assert.Equal(t, holdExpiry, line.ExpiresAt)
	assert.Len(t, cart.Lines("s1"), 1)
}

func TestCartApp_AddItem_TopUpUsesUpdate(t *testing.T) {
	store := storemocks.NewReservationStore(t)
	cart := cartapp.NewCartApp(store, nil, nil)
	seedLine(t, cart, store, "s1", 42, 3, 10)

	// Topping up an existing line updates the hold, it does not re-reserve
	store.On("AvailableStock", "s1", uint64(42), int64(10)).Return(int64(10)).Once()
	store.On("Update", mock.Anything, "s1", uint64(42), 5).Return(reservationFor("s1", 42, 5)).Once()

	result, line := cart.AddItem(context.Background(), "s1", &model.AddItemRequest{
		ProductID:    42,
		Quantity:     2,
		ProductStock: 10,
	})

	require.True(t, result.Valid)
	assert.Equal(t, 5, line.Quantity)
	assert.Len(t, cart.Lines("s1"), 1)
}

func TestCartApp_AddItem_RejectsOverCeiling(t *testing.T) {
	store := storemocks.NewReservationStore(t)
	cart := cartapp.NewCartApp(store, nil, nil)
	seedLine(t, cart, store, "s1", 42, 8, 20)

	store.On("AvailableStock", "s1", uint64(42), int64(20)).Return(int64(20)).Once()

	result, line := cart.AddItem(context.Background(), "s1", &model.AddItemRequest{
		ProductID:    42,
		Quantity:     3,
		ProductStock: 20,
	})

	require.False(t, result.Valid)
	assert.Equal(t, model.SeverityWarning, result.Severity)
	assert.Nil(t, line)
	// No mutation happened
	require.Len(t, cart.Lines("s1"), 1)
	assert.Equal(t, 8, cart.Lines("s1")[0].Quantity)
}

func TestCartApp_AddItem_RejectsOverStock(t *testing.T) {
	store := storemocks.NewReservationStore(t)
	cart := cartapp.NewCartApp(store, nil, nil)
	seedLine(t, cart, store, "s1", 42, 5, 5)

	store.On("AvailableStock", "s1", uint64(42), int64(5)).Return(int64(5)).Once()

	result, line := cart.AddItem(context.Background(), "s1", &model.AddItemRequest{
		ProductID:    42,
		Quantity:     1,
		ProductStock: 5,
	})

	require.False(t, result.Valid)
	assert.Equal(t, model.SeverityError, result.Severity)
	assert.Nil(t, line)
	assert.Equal(t, 5, cart.Lines("s1")[0].Quantity)
}

func TestCartApp_UpdateQuantity_NotInCart(t *testing.T) {
	store := storemocks.NewReservationStore(t)
	cart := cartapp.NewCartApp(store, nil, nil)

	result, line := cart.UpdateQuantity(context.Background(), "s1", 42, 2)

	require.False(t, result.Valid)
	assert.Equal(t, model.SeverityError, result.Severity)
	assert.Nil(t, line)
}

func TestCartApp_UpdateQuantity_Success(t *testing.T) {
	store := storemocks.NewReservationStore(t)
	cart := cartapp.NewCartApp(store, nil, nil)
	seedLine(t, cart, store, "s1", 42, 2, 10)

	store.On("AvailableStock", "s1", uint64(42), int64(10)).Return(int64(10)).Once()
	store.On("Update", mock.Anything, "s1", uint64(42), 5).Return(reservationFor("s1", 42, 5)).Once()

	result, line := cart.UpdateQuantity(context.Background(), "s1", 42, 5)

	require.True(t, result.Valid)
	assert.Equal(t, 5, line.Quantity)
	assert.Equal(t, holdExpiry, line.ExpiresAt)
}

func TestCartApp_RemoveItem_AlwaysReleases(t *testing.T) {
	store := storemocks.NewReservationStore(t)
	cart := cartapp.NewCartApp(store, nil, nil)
	seedLine(t, cart, store, "s1", 42, 3, 10)

	store.On("Release", mock.Anything, "s1", uint64(42)).Twice()

	cart.RemoveItem(context.Background(), "s1", 42)
	assert.Empty(t, cart.Lines("s1"))

	// Removing an absent line still releases; release is idempotent
	cart.RemoveItem(context.Background(), "s1", 42)
}

func TestCartApp_Clear_ReleasesEachLine(t *testing.T) {
	store := storemocks.NewReservationStore(t)
	cart := cartapp.NewCartApp(store, nil, nil)
	seedLine(t, cart, store, "s1", 42, 3, 10)
	seedLine(t, cart, store, "s1", 43, 1, 4)

	store.On("Release", mock.Anything, "s1", uint64(42)).Once()
	store.On("Release", mock.Anything, "s1", uint64(43)).Once()

	cart.Clear(context.Background(), "s1")
	assert.Empty(t, cart.Lines("s1"))

	// Clearing an empty cart releases nothing
	cart.Clear(context.Background(), "s1")
}

func TestCartApp_DropExpiredLine(t *testing.T) {
	store := storemocks.NewReservationStore(t)
	cart := cartapp.NewCartApp(store, nil, nil)
	seedLine(t, cart, store, "s1", 42, 3, 10)

	assert.True(t, cart.DropExpiredLine("s1", 42))
	assert.Empty(t, cart.Lines("s1"))

	// Second arrival of the same expiry finds nothing to drop
	assert.False(t, cart.DropExpiredLine("s1", 42))
}

func TestCartApp_RenewHold(t *testing.T) {
	store := storemocks.NewReservationStore(t)
	cart := cartapp.NewCartApp(store, nil, nil)
	seedLine(t, cart, store, "s1", 42, 3, 10)

	later := holdExpiry.Add(10 * time.Minute)
	store.On("Renew", mock.Anything, "s1", uint64(42)).Return(&model.Reservation{
		SessionID: "s1", ProductID: 42, Quantity: 3, ExpiresAt: later,
	}).Once()

	rsv := cart.RenewHold(context.Background(), "s1", 42)
	require.NotNil(t, rsv)
	assert.Equal(t, 3, rsv.Quantity)
	assert.Equal(t, later, cart.Lines("s1")[0].ExpiresAt)
}

func TestCartApp_RenewHold_NothingLive(t *testing.T) {
	store := storemocks.NewReservationStore(t)
	cart := cartapp.NewCartApp(store, nil, nil)

	store.On("Renew", mock.Anything, "s1", uint64(42)).Return(nil).Once()
	assert.Nil(t, cart.RenewHold(context.Background(), "s1", 42))
}

func TestCartApp_RefreshStock_UpdatesLastKnownOnly(t *testing.T) {
	store := storemocks.NewReservationStore(t)
	cart := cartapp.NewCartApp(store, nil, nil)
	seedLine(t, cart, store, "s1", 42, 5, 10)
	seedLine(t, cart, store, "s2", 42, 2, 10)

	// Stock drops below an already-held quantity: figure updates, quantity
	// stays; checkout is where the shortfall gets flagged
	cart.RefreshStock(42, 3)

	assert.Equal(t, int64(3), cart.Lines("s1")[0].ProductStock)
	assert.Equal(t, 5, cart.Lines("s1")[0].Quantity)
	assert.Equal(t, int64(3), cart.Lines("s2")[0].ProductStock)
}
