package cart

import (
	"context"
	"sync"
	"time"

	"github.com/google/uuid"
	reservationapp "github.com/muhammadheryan/cart-reservation/application/reservation"
	"github.com/muhammadheryan/cart-reservation/constant"
	"github.com/muhammadheryan/cart-reservation/model"
	backendrepo "github.com/muhammadheryan/cart-reservation/repository/backend"
	journalrepo "github.com/muhammadheryan/cart-reservation/repository/journal"
	"github.com/muhammadheryan/cart-reservation/utils/logger"
	"go.uber.org/zap"
)

type CartApp interface {
	AddItem(ctx context.Context, sessionID string, req *model.AddItemRequest) (*model.ValidationResult, *model.CartLine)
	UpdateQuantity(ctx context.Context, sessionID string, productID uint64, quantity int) (*model.ValidationResult, *model.CartLine)
	RemoveItem(ctx context.Context, sessionID string, productID uint64)
	Clear(ctx context.Context, sessionID string)
	Lines(sessionID string) []model.CartLine
	RenewHold(ctx context.Context, sessionID string, productID uint64) *model.Reservation
	DropExpiredLine(sessionID string, productID uint64) bool
	RefreshStock(productID uint64, stock int64)
}

type cartAppImpl struct {
	mu    sync.Mutex
	lines map[string][]*model.CartLine

	store   reservationapp.ReservationStore
	backend backendrepo.Client
	journal journalrepo.JournalRepository
	now     func() time.Time
}

type Option func(*cartAppImpl)

// WithClock injects the time source, for deterministic tests.
func WithClock(now func() time.Time) Option {
	return func(c *cartAppImpl) { c.now = now }
}

// NewCartApp builds the cart layer. backend and journal may be nil; the cart
// then runs local-only, which is also its degraded mode when either
// collaborator is down.
func NewCartApp(store reservationapp.ReservationStore, backend backendrepo.Client, journal journalrepo.JournalRepository, opts ...Option) CartApp {
	c := &cartAppImpl{
		lines:   make(map[string][]*model.CartLine),
		store:   store,
		backend: backend,
		journal: journal,
		now:     time.Now,
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// Store reads can lazily expire holds, which dispatches expiration listeners
// synchronously, and the monitor's listener takes the cart lock. So every
// store call in this file happens outside the cart lock.

func (c *cartAppImpl) AddItem(ctx context.Context, sessionID string, req *model.AddItemRequest) (*model.ValidationResult, *model.CartLine) {
	existingQty := 0
	if line := c.getLine(sessionID, req.ProductID); line != nil {
		existingQty = line.Quantity
	}

	available := c.store.AvailableStock(sessionID, req.ProductID, req.ProductStock)
	result := CanAdd(available, req.Quantity, existingQty)
	if !result.Valid {
		logger.Info("[AddItem] rejected",
			zap.String("session_id", sessionID),
			zap.Uint64("product_id", req.ProductID),
			zap.String("reason", result.Message))
		return result, nil
	}

	newQty := existingQty + req.Quantity
	var rsv *model.Reservation
	if existingQty > 0 {
		// Quantity edits keep the existing hold window.
		rsv = c.store.Update(ctx, sessionID, req.ProductID, newQty)
	} else {
		rsv = c.store.Reserve(ctx, sessionID, req.ProductID, req.Quantity)
	}

	c.mu.Lock()
	line := c.findLocked(sessionID, req.ProductID)
	if line == nil {
		line = &model.CartLine{
			ProductID:  req.ProductID,
			ReservedAt: c.now(),
		}
		c.lines[sessionID] = append(c.lines[sessionID], line)
	}
	line.Quantity = newQty
	line.ProductStock = req.ProductStock
	line.ExpiresAt = rsv.ExpiresAt
	snapshot := *line
	c.mu.Unlock()

	event := constant.ReservationCreated
	if existingQty > 0 {
		event = constant.ReservationUpdated
	}
	c.syncLine(sessionID, snapshot, event)
	return model.ValidResult(), &snapshot
}

func (c *cartAppImpl) UpdateQuantity(ctx context.Context, sessionID string, productID uint64, quantity int) (*model.ValidationResult, *model.CartLine) {
	line := c.getLine(sessionID, productID)
	if line == nil {
		return model.InvalidResult(model.SeverityError, "product is not in the cart"), nil
	}

	available := c.store.AvailableStock(sessionID, productID, line.ProductStock)
	result := CanUpdateQuantity(line, quantity, available)
	if !result.Valid {
		logger.Info("[UpdateQuantity] rejected",
			zap.String("session_id", sessionID),
			zap.Uint64("product_id", productID),
			zap.String("reason", result.Message))
		return result, nil
	}

	rsv := c.store.Update(ctx, sessionID, productID, quantity)

	c.mu.Lock()
	current := c.findLocked(sessionID, productID)
	if current == nil {
		// The line expired out from under the edit; the hold the store just
		// (re)created must not outlive it.
		c.mu.Unlock()
		c.store.Release(ctx, sessionID, productID)
		return model.InvalidResult(model.SeverityError, "product is not in the cart"), nil
	}
	current.Quantity = quantity
	current.ExpiresAt = rsv.ExpiresAt
	snapshot := *current
	c.mu.Unlock()

	c.syncLine(sessionID, snapshot, constant.ReservationUpdated)
	return model.ValidResult(), &snapshot
}

// RemoveItem drops the line and always releases its hold, even when the hold
// already lapsed; Release is idempotent.
func (c *cartAppImpl) RemoveItem(ctx context.Context, sessionID string, productID uint64) {
	c.store.Release(ctx, sessionID, productID)

	c.mu.Lock()
	removed := c.removeLocked(sessionID, productID)
	c.mu.Unlock()

	if removed == nil {
		return
	}
	go func() {
		if c.backend != nil {
			if err := c.backend.MirrorCartDelete(context.Background(), sessionID, productID); err != nil {
				logger.Warn("[RemoveItem] backend mirror failed", zap.Uint64("product_id", productID), zap.Error(err))
			}
			if err := c.backend.ReleaseReservation(context.Background(), sessionID, productID); err != nil {
				logger.Warn("[RemoveItem] backend release failed", zap.Uint64("product_id", productID), zap.Error(err))
			}
		}
		c.appendJournal(sessionID, productID, removed.Quantity, constant.ReservationReleased)
	}()
}

// Clear releases each line's hold individually, never "all holds globally",
// so holds owned by other sessions are untouched.
func (c *cartAppImpl) Clear(ctx context.Context, sessionID string) {
	c.mu.Lock()
	cleared := c.lines[sessionID]
	delete(c.lines, sessionID)
	c.mu.Unlock()

	for _, line := range cleared {
		c.store.Release(ctx, sessionID, line.ProductID)
	}
	if len(cleared) == 0 {
		return
	}

	records := make([]model.ReservationEventRecord, 0, len(cleared))
	for _, line := range cleared {
		records = append(records, newEventRecord(sessionID, line.ProductID, line.Quantity, constant.ReservationReleased, c.now()))
	}
	go func() {
		if c.backend != nil {
			if err := c.backend.MirrorCartClear(context.Background(), sessionID); err != nil {
				logger.Warn("[Clear] backend mirror failed", zap.String("session_id", sessionID), zap.Error(err))
			}
		}
		if c.journal != nil {
			if err := c.journal.AppendBatch(context.Background(), records); err != nil {
				logger.Warn("[Clear] journal append failed", zap.Error(err))
			}
		}
	}()
}

func (c *cartAppImpl) Lines(sessionID string) []model.CartLine {
	c.mu.Lock()
	defer c.mu.Unlock()

	out := make([]model.CartLine, 0, len(c.lines[sessionID]))
	for _, line := range c.lines[sessionID] {
		out = append(out, *line)
	}
	return out
}

// RenewHold resets the hold window for a line, quantity untouched. Returns
// nil when there is nothing live to renew.
func (c *cartAppImpl) RenewHold(ctx context.Context, sessionID string, productID uint64) *model.Reservation {
	rsv := c.store.Renew(ctx, sessionID, productID)
	if rsv == nil {
		return nil
	}

	c.mu.Lock()
	if line := c.findLocked(sessionID, productID); line != nil {
		line.ExpiresAt = rsv.ExpiresAt
	}
	c.mu.Unlock()

	go c.appendJournal(sessionID, productID, rsv.Quantity, constant.ReservationRenewed)
	return rsv
}

// DropExpiredLine removes the cart line matching an expired hold. This is
// the only path by which a line disappears without explicit user action. The
// bool result lets the monitor notify at most once per expiry.
func (c *cartAppImpl) DropExpiredLine(sessionID string, productID uint64) bool {
	c.mu.Lock()
	removed := c.removeLocked(sessionID, productID)
	c.mu.Unlock()

	if removed == nil {
		return false
	}
	go func() {
		if c.backend != nil {
			if err := c.backend.MirrorCartDelete(context.Background(), sessionID, productID); err != nil {
				logger.Warn("[DropExpiredLine] backend mirror failed", zap.Uint64("product_id", productID), zap.Error(err))
			}
		}
		c.appendJournal(sessionID, productID, removed.Quantity, constant.ReservationExpired)
	}()
	return true
}

// RefreshStock records a new authoritative stock figure on every line that
// carries the product. It never clamps quantities or holds; a shortfall is
// flagged at checkout, not silently corrected mid-session.
func (c *cartAppImpl) RefreshStock(productID uint64, stock int64) {
	c.mu.Lock()
	defer c.mu.Unlock()

	for _, lines := range c.lines {
		for _, line := range lines {
			if line.ProductID == productID {
				line.ProductStock = stock
			}
		}
	}
}

func (c *cartAppImpl) getLine(sessionID string, productID uint64) *model.CartLine {
	c.mu.Lock()
	defer c.mu.Unlock()

	if line := c.findLocked(sessionID, productID); line != nil {
		snapshot := *line
		return &snapshot
	}
	return nil
}

func (c *cartAppImpl) findLocked(sessionID string, productID uint64) *model.CartLine {
	for _, line := range c.lines[sessionID] {
		if line.ProductID == productID {
			return line
		}
	}
	return nil
}

func (c *cartAppImpl) removeLocked(sessionID string, productID uint64) *model.CartLine {
	lines := c.lines[sessionID]
	for i, line := range lines {
		if line.ProductID == productID {
			c.lines[sessionID] = append(lines[:i], lines[i+1:]...)
			return line
		}
	}
	return nil
}

// syncLine mirrors an add/update to the backend and journals it. Fire and
// forget: the local cart is the source of truth for session decisions, a
// failed sync degrades to local-only.
func (c *cartAppImpl) syncLine(sessionID string, line model.CartLine, event constant.ReservationEvent) {
	go func() {
		if c.backend != nil {
			if event == constant.ReservationCreated {
				if err := c.backend.MirrorCartAdd(context.Background(), sessionID, line); err != nil {
					logger.Warn("[syncLine] backend cart add failed", zap.Uint64("product_id", line.ProductID), zap.Error(err))
				}
				if err := c.backend.MirrorReserve(context.Background(), sessionID, line.ProductID, line.Quantity); err != nil {
					logger.Warn("[syncLine] backend reserve failed", zap.Uint64("product_id", line.ProductID), zap.Error(err))
				}
				// Opportunistic refresh: the caller's stock figure came from
				// a possibly stale product page.
				if stock, err := c.backend.GetStock(context.Background(), line.ProductID); err == nil {
					c.RefreshStock(line.ProductID, stock)
				}
			} else {
				if err := c.backend.MirrorCartUpdate(context.Background(), sessionID, line); err != nil {
					logger.Warn("[syncLine] backend cart update failed", zap.Uint64("product_id", line.ProductID), zap.Error(err))
				}
				if err := c.backend.UpdateReservation(context.Background(), sessionID, line.ProductID, line.Quantity); err != nil {
					logger.Warn("[syncLine] backend reservation update failed", zap.Uint64("product_id", line.ProductID), zap.Error(err))
				}
			}
		}
		c.appendJournal(sessionID, line.ProductID, line.Quantity, event)
	}()
}

func (c *cartAppImpl) appendJournal(sessionID string, productID uint64, quantity int, event constant.ReservationEvent) {
	if c.journal == nil {
		return
	}
	record := newEventRecord(sessionID, productID, quantity, event, c.now())
	if err := c.journal.Append(context.Background(), record); err != nil {
		logger.Warn("[appendJournal] journal append failed", zap.String("event", string(event)), zap.Error(err))
	}
}

func newEventRecord(sessionID string, productID uint64, quantity int, event constant.ReservationEvent, at time.Time) model.ReservationEventRecord {
	return model.ReservationEventRecord{
		ID:        uuid.NewString(),
		SessionID: sessionID,
		ProductID: productID,
		Quantity:  quantity,
		Event:     event,
		CreatedAt: at,
	}
}
