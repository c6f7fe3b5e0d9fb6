package websocket

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBroadcastNeverBlocksWithoutRunningLoop(t *testing.T) {
	m := NewManager()

	// No Start: nothing drains the broadcast queue. Events past the
	// buffer must be dropped, not block the caller.
	done := make(chan struct{})
	go func() {
		for i := 0; i < 64; i++ {
			m.BroadcastSnapshotEvent("listing", i)
		}
		close(done)
	}()

	select {
	case <-done:
	case <-time.After(2 * time.Second):
		t.Fatal("BroadcastSnapshotEvent blocked with no manager loop running")
	}
}

func TestSnapshotEventEncoding(t *testing.T) {
	m := NewManager()
	m.BroadcastSnapshotEvent("vendor", 7)

	var event SnapshotEvent
	require.NoError(t, json.Unmarshal(<-m.broadcast, &event))
	assert.Equal(t, "vendor", event.Kind)
	assert.Equal(t, 7, event.Total)
	assert.False(t, event.UpdatedAt.IsZero())
}
