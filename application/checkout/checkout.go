package checkout

import (
	"context"
	"time"

	"github.com/google/uuid"
	reservationapp "github.com/muhammadheryan/cart-reservation/application/reservation"
	"github.com/muhammadheryan/cart-reservation/constant"
	"github.com/muhammadheryan/cart-reservation/model"
	journalrepo "github.com/muhammadheryan/cart-reservation/repository/journal"
	"github.com/muhammadheryan/cart-reservation/utils/logger"
	"go.uber.org/zap"
)

// Validator is the final gate before purchase commit: it cross-checks every
// cart line against its live hold and the last-known stock figure. Earlier
// checks are advisory; this is the only component allowed to block a
// purchase outright.
type Validator interface {
	ValidateCheckout(sessionID string, lines []model.CartLine) model.CheckoutReport
}

type validatorImpl struct {
	store   reservationapp.ReservationStore
	journal journalrepo.JournalRepository
}

func NewValidator(store reservationapp.ReservationStore, journal journalrepo.JournalRepository) Validator {
	return &validatorImpl{store: store, journal: journal}
}

func (v *validatorImpl) ValidateCheckout(sessionID string, lines []model.CartLine) model.CheckoutReport {
	report := model.CheckoutReport{
		AllValid: len(lines) > 0,
		PerLine:  make([]model.CheckoutLineReport, 0, len(lines)),
	}

	var flagged []model.ReservationEventRecord
	for _, line := range lines {
		reserved := v.store.ReservedQuantity(sessionID, line.ProductID)
		available := v.store.AvailableStock(sessionID, line.ProductID, line.ProductStock)
		ok := reserved >= line.Quantity && int64(line.Quantity) <= line.ProductStock
		if !ok {
			report.AllValid = false
			flagged = append(flagged, model.ReservationEventRecord{
				ID:        uuid.NewString(),
				SessionID: sessionID,
				ProductID: line.ProductID,
				Quantity:  line.Quantity,
				Event:     constant.CheckoutFlagged,
				CreatedAt: time.Now(),
			})
			logger.Info("[ValidateCheckout] line failed",
				zap.String("session_id", sessionID),
				zap.Uint64("product_id", line.ProductID),
				zap.Int("reserved", reserved),
				zap.Int("requested", line.Quantity),
				zap.Int64("stock", line.ProductStock))
		}
		report.PerLine = append(report.PerLine, model.CheckoutLineReport{
			ProductID:      line.ProductID,
			HasEnoughStock: ok,
			Reserved:       reserved,
			Requested:      line.Quantity,
			Available:      available,
		})
	}

	if len(flagged) > 0 && v.journal != nil {
		go func() {
			if err := v.journal.AppendBatch(context.Background(), flagged); err != nil {
				logger.Warn("[ValidateCheckout] journal append failed", zap.Error(err))
			}
		}()
	}
	return report
}
