package audit

import (
	"bytes"
	"context"
	"errors"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type recordingStore struct {
	events []Event
	err    error
}

func (r *recordingStore) Append(_ context.Context, event Event) error {
	if r.err != nil {
		return r.err
	}
	r.events = append(r.events, event)
	return nil
}

func (r *recordingStore) ListByTarget(context.Context, string, string) ([]Event, error) {
	return r.events, nil
}

func (r *recordingStore) ListRecent(context.Context, int) ([]Event, error) {
	return r.events, nil
}

func TestTeeStore_MirrorFailureDoesNotPropagate(t *testing.T) {
	primary := &recordingStore{}
	mirror := &recordingStore{err: errors.New("broker unreachable")}
	logger := slog.New(slog.NewTextHandler(&bytes.Buffer{}, nil))

	tee := NewTeeStore(primary, mirror, logger)
	err := tee.Append(context.Background(), Event{Action: string(EventEmailChanged), TargetType: "user", TargetID: "u1"})

	require.NoError(t, err)
	assert.Len(t, primary.events, 1, "primary write must land despite mirror failure")
}

func TestTeeStore_PrimaryFailurePropagates(t *testing.T) {
	primary := &recordingStore{err: errors.New("insert failed")}
	mirror := &recordingStore{}
	logger := slog.New(slog.NewTextHandler(&bytes.Buffer{}, nil))

	tee := NewTeeStore(primary, mirror, logger)
	err := tee.Append(context.Background(), Event{Action: string(EventPasswordReset)})

	require.Error(t, err)
}

func TestTeeStore_NilMirror(t *testing.T) {
	primary := &recordingStore{}
	tee := NewTeeStore(primary, nil, slog.New(slog.NewTextHandler(&bytes.Buffer{}, nil)))

	require.NoError(t, tee.Append(context.Background(), Event{Action: string(EventEmailChanged)}))
	assert.Len(t, primary.events, 1)
}
