package publisher

import (
	"bytes"
	"context"
	"log/slog"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	id "dealerdesk/pkg/domain"
	"dealerdesk/pkg/platform/audit"
	"dealerdesk/pkg/platform/audit/store/memory"
	"dealerdesk/pkg/requestcontext"
)

func testLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(&bytes.Buffer{}, nil))
}

func TestPublisher_SyncMode(t *testing.T) {
	store := memory.NewInMemoryStore()
	pub := NewPublisher(store, testLogger())
	defer pub.Close()

	target := uuid.NewString()
	err := pub.Emit(context.Background(), audit.Event{
		ActorID:    id.UserID(uuid.New()),
		Action:     string(audit.EventEmailChanged),
		TargetType: "user",
		TargetID:   target,
	})
	require.NoError(t, err)

	events, err := store.ListByTarget(context.Background(), "user", target)
	require.NoError(t, err)
	require.Len(t, events, 1)
	assert.Equal(t, string(audit.EventEmailChanged), events[0].Action)
}

func TestPublisher_TimestampFromRequestClock(t *testing.T) {
	store := memory.NewInMemoryStore()
	pub := NewPublisher(store, testLogger())
	defer pub.Close()

	arrival := time.Date(2026, 8, 14, 9, 30, 0, 0, time.UTC)
	ctx := requestcontext.WithTime(context.Background(), arrival)

	target := uuid.NewString()
	err := pub.Emit(ctx, audit.Event{
		Action:     string(audit.EventEmailChanged),
		TargetType: "user",
		TargetID:   target,
	})
	require.NoError(t, err)

	events, err := store.ListByTarget(context.Background(), "user", target)
	require.NoError(t, err)
	require.Len(t, events, 1)
	assert.Equal(t, arrival, events[0].Timestamp)
}

func TestPublisher_StampsIDTimestampCategory(t *testing.T) {
	store := memory.NewInMemoryStore()
	pub := NewPublisher(store, testLogger())
	defer pub.Close()

	target := uuid.NewString()
	before := time.Now()
	err := pub.Emit(context.Background(), audit.Event{
		Action:     string(audit.EventPasswordReset),
		TargetType: "user",
		TargetID:   target,
	})
	require.NoError(t, err)

	events, err := store.ListByTarget(context.Background(), "user", target)
	require.NoError(t, err)
	require.Len(t, events, 1)
	assert.NotEqual(t, uuid.Nil, events[0].ID)
	assert.False(t, events[0].Timestamp.Before(before))
	assert.Equal(t, audit.CategorySecurity, events[0].Category)
}

func TestPublisher_AsyncDrainsOnClose(t *testing.T) {
	store := memory.NewInMemoryStore()
	pub := NewPublisher(store, testLogger(), WithAsyncBuffer(100))

	target := uuid.NewString()
	for range 10 {
		err := pub.Emit(context.Background(), audit.Event{
			Action:     string(audit.EventEmailChanged),
			TargetType: "user",
			TargetID:   target,
		})
		require.NoError(t, err)
	}

	pub.Close()

	events, err := store.ListByTarget(context.Background(), "user", target)
	require.NoError(t, err)
	assert.Len(t, events, 10, "all events should be drained on close")
}

func TestPublisher_BufferFull_DoesNotBlock(t *testing.T) {
	store := memory.NewInMemoryStore()
	pub := NewPublisher(store, testLogger(), WithAsyncBuffer(1))
	defer pub.Close()

	done := make(chan struct{})
	go func() {
		defer close(done)
		for range 50 {
			_ = pub.Emit(context.Background(), audit.Event{
				Action:     string(audit.EventEmailChanged),
				TargetType: "user",
				TargetID:   "t",
			})
		}
	}()

	select {
	case <-done:
	case <-time.After(2 * time.Second):
		t.Fatal("Emit blocked on a full buffer")
	}
}
