package monitor_test

import (
	"context"
	"sync"
	"testing"
	"time"

	cartapp "github.com/muhammadheryan/cart-reservation/application/cart"
	monitorapp "github.com/muhammadheryan/cart-reservation/application/monitor"
	reservationapp "github.com/muhammadheryan/cart-reservation/application/reservation"
	cartmocks "github.com/muhammadheryan/cart-reservation/mocks/application/cart"
	"github.com/muhammadheryan/cart-reservation/model"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeNotifier struct {
	mu     sync.Mutex
	events []model.ExpirationEvent
}

func (f *fakeNotifier) NotifyExpired(event model.ExpirationEvent, _ string) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.events = append(f.events, event)
	return nil
}

func (f *fakeNotifier) count() int {
	f.mu.Lock()
	defer f.mu.Unlock()
	return len(f.events)
}

func (f *fakeNotifier) first() model.ExpirationEvent {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.events[0]
}

type fakeClock struct {
	mu sync.Mutex
	t  time.Time
}

func (c *fakeClock) Now() time.Time {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.t
}

func (c *fakeClock) Advance(d time.Duration) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.t = c.t.Add(d)
}

func TestMonitor_NotifiesWhenLineDropped(t *testing.T) {
	clock := &fakeClock{t: time.Now()}
	store := reservationapp.NewStore(nil,
		reservationapp.WithClock(clock.Now),
		reservationapp.WithSweepInterval(time.Hour),
	)
	defer store.Close()

	cart := cartmocks.NewCartApp(t)
	cart.On("DropExpiredLine", "s1", uint64(42)).Return(true).Once()

	notifier := &fakeNotifier{}
	m := monitorapp.New(store, cart, notifier)
	defer m.Stop()

	store.Reserve(context.Background(), "s1", 42, 2)
	clock.Advance(16 * time.Minute)
	store.Sweep(context.Background())

	require.Equal(t, 1, notifier.count())
	assert.Equal(t, model.ExpirationEvent{SessionID: "s1", ProductID: 42}, notifier.first())
}

func TestMonitor_SilentWhenNoLineMatched(t *testing.T) {
	clock := &fakeClock{t: time.Now()}
	store := reservationapp.NewStore(nil,
		reservationapp.WithClock(clock.Now),
		reservationapp.WithSweepInterval(time.Hour),
	)
	defer store.Close()

	cart := cartmocks.NewCartApp(t)
	cart.On("DropExpiredLine", "s1", uint64(42)).Return(false).Once()

	notifier := &fakeNotifier{}
	m := monitorapp.New(store, cart, notifier)
	defer m.Stop()

	store.Reserve(context.Background(), "s1", 42, 2)
	clock.Advance(16 * time.Minute)
	store.Sweep(context.Background())

	assert.Equal(t, 0, notifier.count())
}

// End to end: a hold expires under a real cart, the sweep removes exactly
// one line and raises exactly one notification.
func TestMonitor_ExpiryRemovesCartLineOnce(t *testing.T) {
	clock := &fakeClock{t: time.Now()}
	store := reservationapp.NewStore(nil,
		reservationapp.WithClock(clock.Now),
		reservationapp.WithSweepInterval(time.Hour),
	)
	defer store.Close()

	cart := cartapp.NewCartApp(store, nil, nil, cartapp.WithClock(clock.Now))
	notifier := &fakeNotifier{}
	m := monitorapp.New(store, cart, notifier)
	defer m.Stop()

	result, _ := cart.AddItem(context.Background(), "s1", &model.AddItemRequest{
		ProductID:    42,
		Quantity:     2,
		ProductStock: 10,
	})
	require.True(t, result.Valid)

	clock.Advance(16 * time.Minute)
	store.Sweep(context.Background())

	assert.Empty(t, cart.Lines("s1"))
	assert.Equal(t, 1, notifier.count())

	// A second sweep over the same expiry stays quiet
	store.Sweep(context.Background())
	assert.Equal(t, 1, notifier.count())
}
