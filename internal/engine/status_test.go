package engine

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/avilov/zonesync/models"
)

func TestStatusBroadcaster_DeliversToAllSubscribers(t *testing.T) {
	b := NewStatusBroadcaster()
	defer b.Close()

	first, cancelFirst := b.Subscribe()
	defer cancelFirst()
	second, cancelSecond := b.Subscribe()
	defer cancelSecond()

	b.Publish(models.SyncRunning)

	assert.Equal(t, models.SyncRunning, <-first)
	assert.Equal(t, models.SyncRunning, <-second)
}

func TestStatusBroadcaster_LaggingSubscriberSeesLatestValue(t *testing.T) {
	b := NewStatusBroadcaster()
	defer b.Close()

	ch, cancel := b.Subscribe()
	defer cancel()

	// Nobody reads between publishes: the stale Running must be replaced.
	b.Publish(models.SyncRunning)
	b.Publish(models.SyncCompleted)

	assert.Equal(t, models.SyncCompleted, <-ch)

	select {
	case extra, ok := <-ch:
		if ok {
			t.Fatalf("unexpected extra value %v", extra)
		}
	default:
	}
}

func TestStatusBroadcaster_CancelStopsDeliveryAndIsIdempotent(t *testing.T) {
	b := NewStatusBroadcaster()
	defer b.Close()

	ch, cancel := b.Subscribe()

	cancel()
	cancel() // second call is a no-op

	b.Publish(models.SyncRunning)

	_, ok := <-ch
	assert.False(t, ok, "cancelled subscription channel should be closed")
}

func TestStatusBroadcaster_CloseClosesSubscribers(t *testing.T) {
	b := NewStatusBroadcaster()

	ch, cancel := b.Subscribe()
	defer cancel()

	b.Close()
	b.Close() // repeated close is a no-op

	_, ok := <-ch
	require.False(t, ok)

	// Publishing and subscribing after close must not panic.
	b.Publish(models.SyncCompleted)
	late, lateCancel := b.Subscribe()
	defer lateCancel()

	_, ok = <-late
	assert.False(t, ok, "post-close subscription should be closed immediately")
}
