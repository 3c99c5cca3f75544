package model

import (
	"time"

	"github.com/muhammadheryan/cart-reservation/constant"
)

// ReservationEventRecord is one row of the reservation lifecycle journal,
// kept for vendor/admin hold-churn analytics. Writes are best-effort and
// never gate a cart operation.
type ReservationEventRecord struct {
	ID        string                    `db:"id"`
	SessionID string                    `db:"session_id"`
	ProductID uint64                    `db:"product_id"`
	Quantity  int                       `db:"quantity"`
	Event     constant.ReservationEvent `db:"event"`
	CreatedAt time.Time                 `db:"created_at"`
}
