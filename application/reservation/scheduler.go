package reservation

import (
	"container/heap"
	"time"
)

type holdKey struct {
	sessionID string
	productID uint64
}

// schedEntry is one pending expiry deadline. Entries are never removed from
// the heap on renew/release; instead the live hold's generation moves on and
// the stale entry is skipped when it surfaces.
type schedEntry struct {
	at  time.Time
	key holdKey
	gen uint64
}

type expiryHeap []schedEntry

func (h expiryHeap) Len() int            { return len(h) }
func (h expiryHeap) Less(i, j int) bool  { return h[i].at.Before(h[j].at) }
func (h expiryHeap) Swap(i, j int)       { h[i], h[j] = h[j], h[i] }
func (h *expiryHeap) Push(x interface{}) { *h = append(*h, x.(schedEntry)) }

func (h *expiryHeap) Pop() interface{} {
	old := *h
	n := len(old)
	entry := old[n-1]
	*h = old[:n-1]
	return entry
}

func (s *storeImpl) schedule(key holdKey, at time.Time, gen uint64) {
	heap.Push(&s.queue, schedEntry{at: at, key: key, gen: gen})
}

// nextDeadline returns the earliest live deadline, discarding superseded
// entries from the top of the heap as it goes.
func (s *storeImpl) nextDeadline() (time.Time, bool) {
	for s.queue.Len() > 0 {
		top := s.queue[0]
		h, ok := s.holds[top.key]
		if !ok || h.gen != top.gen {
			heap.Pop(&s.queue)
			continue
		}
		return top.at, true
	}
	return time.Time{}, false
}
