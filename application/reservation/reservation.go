package reservation

import (
	"container/heap"
	"context"
	"sync"
	"time"

	"github.com/muhammadheryan/cart-reservation/constant"
	"github.com/muhammadheryan/cart-reservation/model"
	holdstaterepo "github.com/muhammadheryan/cart-reservation/repository/holdstate"
	"github.com/muhammadheryan/cart-reservation/utils/logger"
	"go.uber.org/zap"
)

// ReservationStore owns the set of active stock holds, keyed by session and
// product. It enforces exactly one live reservation per key; quantity and
// stock ceilings are the caller's concern. Expiry is a lifecycle event, not
// an error: no operation here fails.
type ReservationStore interface {
	Reserve(ctx context.Context, sessionID string, productID uint64, quantity int) *model.Reservation
	Update(ctx context.Context, sessionID string, productID uint64, quantity int) *model.Reservation
	Renew(ctx context.Context, sessionID string, productID uint64) *model.Reservation
	Release(ctx context.Context, sessionID string, productID uint64)
	ReservedQuantity(sessionID string, productID uint64) int
	TotalReserved(productID uint64) int
	AvailableStock(sessionID string, productID uint64, totalStock int64) int64
	All(sessionID string) []model.Reservation
	Subscribe(fn func(model.ExpirationEvent)) func()
	Sweep(ctx context.Context)
	Rehydrate(ctx context.Context) error
	Close()
}

type hold struct {
	quantity  int
	expiresAt time.Time
	gen       uint64
}

type storeImpl struct {
	mu      sync.Mutex
	holds   map[holdKey]*hold
	queue   expiryHeap
	nextGen uint64

	holdRepo      holdstaterepo.Repository
	now           func() time.Time
	ttl           time.Duration
	sweepInterval time.Duration

	subs      map[int]func(model.ExpirationEvent)
	nextSubID int

	wake      chan struct{}
	done      chan struct{}
	closeOnce sync.Once
}

type Option func(*storeImpl)

// WithClock injects the time source, for deterministic tests.
func WithClock(now func() time.Time) Option {
	return func(s *storeImpl) { s.now = now }
}

// WithTTL overrides the reservation TTL. Test hook only; callers of the
// store never choose a TTL per operation.
func WithTTL(ttl time.Duration) Option {
	return func(s *storeImpl) { s.ttl = ttl }
}

// WithSweepInterval overrides the reconciliation cadence. Test hook only.
func WithSweepInterval(interval time.Duration) Option {
	return func(s *storeImpl) { s.sweepInterval = interval }
}

// NewStore builds a reservation store and starts its scheduler goroutine.
// The caller owns the instance and must Close it.
func NewStore(holdRepo holdstaterepo.Repository, opts ...Option) ReservationStore {
	s := &storeImpl{
		holds:         make(map[holdKey]*hold),
		holdRepo:      holdRepo,
		now:           time.Now,
		ttl:           constant.ReservationTTL,
		sweepInterval: constant.SweepInterval,
		subs:          make(map[int]func(model.ExpirationEvent)),
		wake:          make(chan struct{}, 1),
		done:          make(chan struct{}),
	}
	for _, opt := range opts {
		opt(s)
	}
	heap.Init(&s.queue)
	go s.run()
	return s
}

func (s *storeImpl) Reserve(ctx context.Context, sessionID string, productID uint64, quantity int) *model.Reservation {
	key := holdKey{sessionID: sessionID, productID: productID}
	expiresAt := s.now().Add(s.ttl)

	s.mu.Lock()
	// Replacing an existing hold bumps the generation, which invalidates any
	// schedule entry armed for the old deadline.
	s.nextGen++
	h := &hold{quantity: quantity, expiresAt: expiresAt, gen: s.nextGen}
	s.holds[key] = h
	s.schedule(key, expiresAt, h.gen)
	s.mu.Unlock()

	s.kick()
	s.flush(ctx, sessionID)
	return &model.Reservation{SessionID: sessionID, ProductID: productID, Quantity: quantity, ExpiresAt: expiresAt}
}

// Update changes the held quantity without touching the expiry. Editing a
// quantity must not silently extend the hold window; extending is Renew's
// job. A missing or expired hold falls back to Reserve.
func (s *storeImpl) Update(ctx context.Context, sessionID string, productID uint64, quantity int) *model.Reservation {
	key := holdKey{sessionID: sessionID, productID: productID}

	s.mu.Lock()
	h, ok := s.holds[key]
	if !ok || !h.expiresAt.After(s.now()) {
		s.mu.Unlock()
		return s.Reserve(ctx, sessionID, productID, quantity)
	}
	h.quantity = quantity
	expiresAt := h.expiresAt
	s.mu.Unlock()

	s.flush(ctx, sessionID)
	return &model.Reservation{SessionID: sessionID, ProductID: productID, Quantity: quantity, ExpiresAt: expiresAt}
}

// Renew resets the hold's expiry to a fresh full TTL, quantity unchanged.
// Returns nil when no live hold exists.
func (s *storeImpl) Renew(ctx context.Context, sessionID string, productID uint64) *model.Reservation {
	key := holdKey{sessionID: sessionID, productID: productID}

	s.mu.Lock()
	h, ok := s.holds[key]
	if !ok || !h.expiresAt.After(s.now()) {
		s.mu.Unlock()
		return nil
	}
	s.nextGen++
	h.gen = s.nextGen
	h.expiresAt = s.now().Add(s.ttl)
	s.schedule(key, h.expiresAt, h.gen)
	quantity, expiresAt := h.quantity, h.expiresAt
	s.mu.Unlock()

	s.kick()
	s.flush(ctx, sessionID)
	return &model.Reservation{SessionID: sessionID, ProductID: productID, Quantity: quantity, ExpiresAt: expiresAt}
}

// Release drops the hold. Idempotent; releasing a missing key is a no-op.
func (s *storeImpl) Release(ctx context.Context, sessionID string, productID uint64) {
	key := holdKey{sessionID: sessionID, productID: productID}

	s.mu.Lock()
	_, ok := s.holds[key]
	delete(s.holds, key)
	s.mu.Unlock()

	if ok {
		s.flush(ctx, sessionID)
	}
}

// ReservedQuantity reports the live held quantity, 0 when absent. A hold
// whose deadline passed but whose timer has not surfaced yet is released on
// this read path, so no caller ever observes a logically-expired hold as
// live.
func (s *storeImpl) ReservedQuantity(sessionID string, productID uint64) int {
	key := holdKey{sessionID: sessionID, productID: productID}

	s.mu.Lock()
	h, ok := s.holds[key]
	if !ok {
		s.mu.Unlock()
		return 0
	}
	if !h.expiresAt.After(s.now()) {
		delete(s.holds, key)
		s.mu.Unlock()
		s.flush(context.Background(), sessionID)
		s.emit([]model.ExpirationEvent{{SessionID: sessionID, ProductID: productID}})
		return 0
	}
	quantity := h.quantity
	s.mu.Unlock()
	return quantity
}

// TotalReserved sums live holds for a product across every session.
func (s *storeImpl) TotalReserved(productID uint64) int {
	now := s.now()
	total := 0

	s.mu.Lock()
	for key, h := range s.holds {
		if key.productID == productID && h.expiresAt.After(now) {
			total += h.quantity
		}
	}
	s.mu.Unlock()
	return total
}

// AvailableStock is the total stock minus what other sessions hold. The own
// session's hold does not count against itself.
func (s *storeImpl) AvailableStock(sessionID string, productID uint64, totalStock int64) int64 {
	reservedByOthers := int64(s.TotalReserved(productID) - s.ReservedQuantity(sessionID, productID))
	available := totalStock - reservedByOthers
	if available < 0 {
		return 0
	}
	return available
}

// All returns the session's live holds, releasing any that lapsed.
func (s *storeImpl) All(sessionID string) []model.Reservation {
	now := s.now()

	s.mu.Lock()
	out := make([]model.Reservation, 0)
	var expired []model.ExpirationEvent
	for key, h := range s.holds {
		if key.sessionID != sessionID {
			continue
		}
		if !h.expiresAt.After(now) {
			delete(s.holds, key)
			expired = append(expired, model.ExpirationEvent{SessionID: key.sessionID, ProductID: key.productID})
			continue
		}
		out = append(out, model.Reservation{
			SessionID: key.sessionID,
			ProductID: key.productID,
			Quantity:  h.quantity,
			ExpiresAt: h.expiresAt,
		})
	}
	s.mu.Unlock()

	if len(expired) > 0 {
		s.flush(context.Background(), sessionID)
		s.emit(expired)
	}
	return out
}

// Subscribe registers an expiration listener. Delivery is synchronous and
// best-effort; a listener added after an event fired does not receive it.
// The returned func removes the subscription.
func (s *storeImpl) Subscribe(fn func(model.ExpirationEvent)) func() {
	s.mu.Lock()
	s.nextSubID++
	id := s.nextSubID
	s.subs[id] = fn
	s.mu.Unlock()

	return func() {
		s.mu.Lock()
		delete(s.subs, id)
		s.mu.Unlock()
	}
}

// Sweep releases every hold whose deadline has passed by wall clock. Safety
// net for deadlines the scheduler slept through; idempotent with timer
// expiry because removal under the lock happens at most once per hold.
func (s *storeImpl) Sweep(ctx context.Context) {
	now := s.now()

	s.mu.Lock()
	var expired []model.ExpirationEvent
	sessions := make(map[string]struct{})
	for key, h := range s.holds {
		if !h.expiresAt.After(now) {
			delete(s.holds, key)
			expired = append(expired, model.ExpirationEvent{SessionID: key.sessionID, ProductID: key.productID})
			sessions[key.sessionID] = struct{}{}
		}
	}
	s.mu.Unlock()

	for sessionID := range sessions {
		s.flush(ctx, sessionID)
	}
	s.emit(expired)
}

// Rehydrate loads persisted holds, drops the already-expired ones without
// signaling, and schedules the rest on their remaining TTL.
func (s *storeImpl) Rehydrate(ctx context.Context) error {
	stored, err := s.holdRepo.LoadAll(ctx)
	if err != nil {
		return err
	}
	now := s.now()

	dropped := make(map[string]struct{})
	s.mu.Lock()
	for sessionID, holds := range stored {
		for productID, ph := range holds {
			expiresAt := time.UnixMilli(ph.ExpiresAt)
			if !expiresAt.After(now) {
				dropped[sessionID] = struct{}{}
				continue
			}
			key := holdKey{sessionID: sessionID, productID: productID}
			s.nextGen++
			h := &hold{quantity: ph.Quantity, expiresAt: expiresAt, gen: s.nextGen}
			s.holds[key] = h
			s.schedule(key, expiresAt, h.gen)
		}
	}
	s.mu.Unlock()

	s.kick()
	for sessionID := range dropped {
		s.flush(ctx, sessionID)
	}
	return nil
}

// Close stops the scheduler goroutine. Holds stay persisted for the next
// process to rehydrate.
func (s *storeImpl) Close() {
	s.closeOnce.Do(func() { close(s.done) })
}

// run is the single scheduler goroutine: it arms one timer for the earliest
// deadline and runs the low-frequency sweep tick.
func (s *storeImpl) run() {
	timer := time.NewTimer(time.Hour)
	if !timer.Stop() {
		<-timer.C
	}
	sweep := time.NewTicker(s.sweepInterval)
	defer sweep.Stop()
	defer timer.Stop()

	for {
		s.mu.Lock()
		deadline, ok := s.nextDeadline()
		s.mu.Unlock()

		if ok {
			wait := deadline.Sub(s.now())
			if wait < 0 {
				wait = 0
			}
			timer.Reset(wait)
		}

		select {
		case <-s.done:
			return
		case <-s.wake:
			// Re-arm: a nearer deadline may have been scheduled.
		case <-sweep.C:
			s.Sweep(context.Background())
		case <-timer.C:
			s.expireDue()
			continue
		}
		if ok && !timer.Stop() {
			select {
			case <-timer.C:
			default:
			}
		}
	}
}

// expireDue pops every due schedule entry and releases the holds it still
// owns. A stale entry (generation mismatch) is discarded silently: the hold
// it was armed for was renewed, replaced, or released since.
func (s *storeImpl) expireDue() {
	now := s.now()

	s.mu.Lock()
	var expired []model.ExpirationEvent
	sessions := make(map[string]struct{})
	for s.queue.Len() > 0 {
		top := s.queue[0]
		if top.at.After(now) {
			break
		}
		heap.Pop(&s.queue)
		h, ok := s.holds[top.key]
		if !ok || h.gen != top.gen || h.expiresAt.After(now) {
			continue
		}
		delete(s.holds, top.key)
		expired = append(expired, model.ExpirationEvent{SessionID: top.key.sessionID, ProductID: top.key.productID})
		sessions[top.key.sessionID] = struct{}{}
	}
	s.mu.Unlock()

	for sessionID := range sessions {
		s.flush(context.Background(), sessionID)
	}
	s.emit(expired)
}

// kick nudges the scheduler to recompute its deadline.
func (s *storeImpl) kick() {
	select {
	case s.wake <- struct{}{}:
	default:
	}
}

// flush writes the session's snapshot through the persistence adapter.
// Failures degrade to local-only operation; they never surface to callers.
func (s *storeImpl) flush(ctx context.Context, sessionID string) {
	if s.holdRepo == nil {
		return
	}

	s.mu.Lock()
	snapshot := make(map[uint64]model.PersistedHold)
	for key, h := range s.holds {
		if key.sessionID == sessionID {
			snapshot[key.productID] = model.PersistedHold{Quantity: h.quantity, ExpiresAt: h.expiresAt.UnixMilli()}
		}
	}
	s.mu.Unlock()

	if err := s.holdRepo.Save(ctx, sessionID, snapshot); err != nil {
		logger.Warn("[flush] persist holds failed", zap.String("session_id", sessionID), zap.Error(err))
	}
}

// emit delivers expiration events to the current subscribers, outside the
// store lock so listeners may call back into the store.
func (s *storeImpl) emit(events []model.ExpirationEvent) {
	if len(events) == 0 {
		return
	}

	s.mu.Lock()
	subs := make([]func(model.ExpirationEvent), 0, len(s.subs))
	for _, fn := range s.subs {
		subs = append(subs, fn)
	}
	s.mu.Unlock()

	for _, event := range events {
		for _, fn := range subs {
			fn(event)
		}
	}
}
