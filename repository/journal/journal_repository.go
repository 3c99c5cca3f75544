package journal

import (
	"context"

	"github.com/jmoiron/sqlx"
	"github.com/muhammadheryan/cart-reservation/model"
	txrepo "github.com/muhammadheryan/cart-reservation/repository/tx"
)

// JournalRepository appends reservation lifecycle events to the analytics
// journal. Append-only; there is no read path in this service, reporting
// queries the table directly.
type JournalRepository interface {
	Append(ctx context.Context, record model.ReservationEventRecord) error
	AppendBatch(ctx context.Context, records []model.ReservationEventRecord) error
}

type SQL struct {
	conn   *sqlx.DB
	txRepo txrepo.TxRepository
}

func NewJournalRepository(conn *sqlx.DB, txRepo txrepo.TxRepository) JournalRepository {
	return &SQL{conn: conn, txRepo: txRepo}
}

const insertQuery = "INSERT INTO reservation_event (id, session_id, product_id, quantity, event, created_at) VALUES (?, ?, ?, ?, ?, ?)"

func (r *SQL) Append(ctx context.Context, record model.ReservationEventRecord) error {
	_, err := r.conn.ExecContext(ctx, insertQuery,
		record.ID, record.SessionID, record.ProductID, record.Quantity, string(record.Event), record.CreatedAt)
	return err
}

// AppendBatch writes a burst of events in one transaction, so a cart clear
// or a sweep shows up in the journal all-or-nothing.
func (r *SQL) AppendBatch(ctx context.Context, records []model.ReservationEventRecord) error {
	if len(records) == 0 {
		return nil
	}

	return r.txRepo.WithinTx(ctx, func(tx *sqlx.Tx) error {
		for _, record := range records {
			if _, err := tx.ExecContext(ctx, insertQuery,
				record.ID, record.SessionID, record.ProductID, record.Quantity, string(record.Event), record.CreatedAt); err != nil {
				return err
			}
		}
		return nil
	})
}
