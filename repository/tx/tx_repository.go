package tx

import (
	"context"

	"github.com/jmoiron/sqlx"
)

// TxRepository runs a unit of work inside a database transaction. The
// journal uses it so a burst of lifecycle events lands all-or-nothing.
type TxRepository interface {
	WithinTx(ctx context.Context, fn func(tx *sqlx.Tx) error) error
}

type txRepo struct {
	db *sqlx.DB
}

func NewTxRepository(db *sqlx.DB) TxRepository {
	return &txRepo{db: db}
}

func (r *txRepo) WithinTx(ctx context.Context, fn func(tx *sqlx.Tx) error) error {
	tx, err := r.db.BeginTxx(ctx, nil)
	if err != nil {
		return err
	}

	if err := fn(tx); err != nil {
		_ = tx.Rollback()
		return err
	}
	return tx.Commit()
}
