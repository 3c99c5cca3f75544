package monitor

import (
	"fmt"

	cartapp "github.com/muhammadheryan/cart-reservation/application/cart"
	reservationapp "github.com/muhammadheryan/cart-reservation/application/reservation"
	"github.com/muhammadheryan/cart-reservation/model"
	"github.com/muhammadheryan/cart-reservation/utils/logger"
	"go.uber.org/zap"
)

// Notifier delivers user-facing notifications raised by the monitor. The
// rabbitmq publisher implements it in production.
type Notifier interface {
	NotifyExpired(event model.ExpirationEvent, message string) error
}

// Monitor glues reservation expiry to cart state: when a hold dies, the
// matching cart line goes with it and the user hears about it. This is the
// only path by which a cart line disappears without explicit user action.
type Monitor struct {
	cart     cartapp.CartApp
	notifier Notifier
	cancel   func()
}

func New(store reservationapp.ReservationStore, cart cartapp.CartApp, notifier Notifier) *Monitor {
	m := &Monitor{cart: cart, notifier: notifier}
	m.cancel = store.Subscribe(m.onExpired)
	return m
}

// Stop detaches the monitor from the store's expiration feed.
func (m *Monitor) Stop() {
	if m.cancel != nil {
		m.cancel()
	}
}

func (m *Monitor) onExpired(event model.ExpirationEvent) {
	// DropExpiredLine reports whether a line was actually removed, which is
	// what keeps timer-driven and sweep-driven expiry from double-notifying:
	// the second arrival finds no line and stays silent.
	if !m.cart.DropExpiredLine(event.SessionID, event.ProductID) {
		return
	}

	logger.Info("[onExpired] cart line removed",
		zap.String("session_id", event.SessionID),
		zap.Uint64("product_id", event.ProductID))

	if m.notifier == nil {
		return
	}
	message := fmt.Sprintf("Your reservation for product %d expired and it was removed from your cart", event.ProductID)
	if err := m.notifier.NotifyExpired(event, message); err != nil {
		logger.Warn("[onExpired] notify failed",
			zap.Uint64("product_id", event.ProductID),
			zap.Error(err))
	}
}
