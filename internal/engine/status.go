package engine

import (
	"sync"

	"github.com/avilov/zonesync/models"
)

// StatusBroadcaster fans a status value out to any number of subscribers
// without ever blocking the publisher. Each subscriber channel buffers one
// value; when a subscriber lags, the stale value is dropped so the channel
// always holds the latest status.
type StatusBroadcaster struct {
	mu     sync.Mutex
	subs   map[int]chan models.SyncStatus
	nextID int
	closed bool
}

func NewStatusBroadcaster() *StatusBroadcaster {
	return &StatusBroadcaster{
		subs: make(map[int]chan models.SyncStatus),
	}
}

// Subscribe registers a new observer. The cancel func is idempotent and
// releases the subscription.
func (b *StatusBroadcaster) Subscribe() (<-chan models.SyncStatus, func()) {
	b.mu.Lock()
	defer b.mu.Unlock()

	ch := make(chan models.SyncStatus, 1)
	if b.closed {
		close(ch)
		return ch, func() {}
	}

	id := b.nextID
	b.nextID++
	b.subs[id] = ch

	cancel := func() {
		b.mu.Lock()
		defer b.mu.Unlock()
		if sub, ok := b.subs[id]; ok {
			delete(b.subs, id)
			close(sub)
		}
	}

	return ch, cancel
}

// Publish delivers status to every subscriber. Never blocks: a full
// subscriber buffer is drained first so the latest value wins.
func (b *StatusBroadcaster) Publish(status models.SyncStatus) {
	b.mu.Lock()
	defer b.mu.Unlock()

	for _, ch := range b.subs {
		select {
		case ch <- status:
		default:
			select {
			case <-ch:
			default:
			}
			select {
			case ch <- status:
			default:
			}
		}
	}
}

// Close closes all subscriber channels. Publish and Subscribe become no-ops.
func (b *StatusBroadcaster) Close() {
	b.mu.Lock()
	defer b.mu.Unlock()

	if b.closed {
		return
	}
	b.closed = true
	for id, ch := range b.subs {
		delete(b.subs, id)
		close(ch)
	}
}
