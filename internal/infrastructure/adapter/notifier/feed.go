package notifier

import (
	"sync"

	"pocket-wallet/internal/domain/port/core"
)

const defaultFeedCapacity = 50

// Feed keeps the most recent notifications in memory so the presentation
// layer can poll them, newest first. Older entries fall off once capacity is
// reached.
type Feed struct {
	mu    sync.RWMutex
	cap   int
	items []core.Notification
}

// NewFeed creates a feed holding up to capacity notifications. Non-positive
// capacities use the default.
func NewFeed(capacity int) *Feed {
	if capacity <= 0 {
		capacity = defaultFeedCapacity
	}
	return &Feed{cap: capacity}
}

// Notify prepends the notification, trimming the oldest entry if needed
func (f *Feed) Notify(n core.Notification) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.items = append([]core.Notification{n}, f.items...)
	if len(f.items) > f.cap {
		f.items = f.items[:f.cap]
	}
}

// Recent returns the retained notifications, newest first
func (f *Feed) Recent() []core.Notification {
	f.mu.RLock()
	defer f.mu.RUnlock()
	out := make([]core.Notification, len(f.items))
	copy(out, f.items)
	return out
}
