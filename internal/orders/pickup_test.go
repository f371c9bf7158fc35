package orders

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestPickupTimeReached(t *testing.T) {
	now := time.Date(2025, 6, 10, 12, 0, 0, 0, time.Local)

	past := now.Add(-time.Hour)
	future := now.Add(time.Hour)

	assert.True(t, pickupTimeReachedAt(&past, now))
	assert.True(t, pickupTimeReachedAt(&now, now))
	assert.False(t, pickupTimeReachedAt(&future, now))
	assert.False(t, pickupTimeReachedAt(nil, now))

	// exported wrapper reads the clock at call time
	oneHourAgo := time.Now().Add(-time.Hour)
	inOneHour := time.Now().Add(time.Hour)
	assert.True(t, PickupTimeReached(&oneHourAgo))
	assert.False(t, PickupTimeReached(&inOneHour))
}

func TestTimeUntilPickup(t *testing.T) {
	now := time.Date(2025, 6, 10, 12, 0, 0, 0, time.Local)

	tests := []struct {
		name string
		in   time.Duration
		want string
	}{
		{name: "days bucket", in: 49*time.Hour + 10*time.Minute, want: "2 hari 1 jam lagi"},
		{name: "hours bucket", in: 3*time.Hour + 20*time.Minute, want: "3 jam 20 menit lagi"},
		{name: "minutes bucket", in: 45 * time.Minute, want: "45 menit lagi"},
		{name: "under a minute rounds down", in: 30 * time.Second, want: "0 menit lagi"},
		{name: "exact boundary has arrived", in: 0, want: MsgPickupArrived},
		{name: "past has arrived", in: -2 * time.Hour, want: MsgPickupArrived},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			at := now.Add(tt.in)
			assert.Equal(t, tt.want, timeUntilPickupAt(&at, now))
		})
	}

	assert.Empty(t, timeUntilPickupAt(nil, now))
}

func TestStatusMachine(t *testing.T) {
	legal := []struct{ from, to Status }{
		{StatusPending, StatusConfirmed},
		{StatusPending, StatusCancelled},
		{StatusConfirmed, StatusReady},
		{StatusReady, StatusCompleted},
	}
	for _, e := range legal {
		assert.True(t, CanTransition(e.from, e.to), "%s -> %s", e.from, e.to)
	}

	illegal := []struct{ from, to Status }{
		{StatusPending, StatusReady},
		{StatusPending, StatusCompleted},
		{StatusConfirmed, StatusCancelled},
		{StatusReady, StatusPending},
		{StatusCompleted, StatusPending},
		{StatusCancelled, StatusConfirmed},
		{StatusPending, StatusPending},
	}
	for _, e := range illegal {
		assert.False(t, CanTransition(e.from, e.to), "%s -> %s", e.from, e.to)
	}

	assert.True(t, StatusCompleted.Terminal())
	assert.True(t, StatusCancelled.Terminal())
	assert.False(t, StatusReady.Terminal())

	assert.True(t, StatusPending.Valid())
	assert.False(t, Status("shipped").Valid())
}
