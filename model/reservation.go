package model

import "time"

// Reservation is a time-bounded local claim on product stock held for one
// cart session. It lives in the reservation store; the persisted form is
// PersistedHold.
type Reservation struct {
	SessionID string    `json:"session_id"`
	ProductID uint64    `json:"product_id"`
	Quantity  int       `json:"quantity"`
	ExpiresAt time.Time `json:"expires_at"`
}

// PersistedHold is the stored mirror of a reservation. Expiry is kept as
// epoch milliseconds so the blob stays portable across clients.
type PersistedHold struct {
	Quantity  int   `json:"quantity"`
	ExpiresAt int64 `json:"expires_at"`
}

// ExpirationEvent is broadcast when a reservation leaves the store through
// expiry (timer, sweep, or lazy read-path release).
type ExpirationEvent struct {
	SessionID string `json:"session_id"`
	ProductID uint64 `json:"product_id"`
}
