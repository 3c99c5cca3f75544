package constant

import "time"

const (
	// MaxUnitsPerProduct is the hard per-product ceiling for a single cart.
	MaxUnitsPerProduct = 10

	// ReservationTTL is the lifetime of a stock hold. Fixed per reservation;
	// callers may renew, never pick a different TTL.
	ReservationTTL = 15 * time.Minute

	// SweepInterval is how often the wall-clock reconciliation pass runs. It
	// backstops the scheduler for deadlines missed while the process was
	// suspended.
	SweepInterval = time.Minute

	// CartHoldWindow is the "reserved for purchase" window quoted in user
	// notification copy. It is informational only; ReservationTTL is the sole
	// authoritative expiration mechanism.
	CartHoldWindow = 14 * 24 * time.Hour
)

type ReservationEvent string

const (
	ReservationCreated  ReservationEvent = "created"
	ReservationUpdated  ReservationEvent = "updated"
	ReservationRenewed  ReservationEvent = "renewed"
	ReservationReleased ReservationEvent = "released"
	ReservationExpired  ReservationEvent = "expired"

	// CheckoutFlagged records a cart line the checkout validator refused,
	// the signal vendors watch for stock shortfalls at purchase time.
	CheckoutFlagged ReservationEvent = "checkout_flagged"
)
