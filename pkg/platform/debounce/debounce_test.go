package debounce

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func newTestGuard(window time.Duration) (*Guard, *time.Time) {
	now := time.Date(2024, 6, 1, 12, 0, 0, 0, time.UTC)
	g := New(WithWindow(window), WithClock(func() time.Time { return now }))
	return g, &now
}

func TestGuard_SuppressesRepeatWithinWindow(t *testing.T) {
	g, now := newTestGuard(20 * time.Second)

	assert.False(t, g.ShouldSuppress("expense|fuel|42.50|2024-06-01"))
	g.RecordAttempt("expense|fuel|42.50|2024-06-01")

	*now = now.Add(3 * time.Second)
	assert.True(t, g.ShouldSuppress("expense|fuel|42.50|2024-06-01"))
}

func TestGuard_AllowsAfterWindowElapses(t *testing.T) {
	g, now := newTestGuard(20 * time.Second)

	g.RecordAttempt("reset-password")
	*now = now.Add(21 * time.Second)
	assert.False(t, g.ShouldSuppress("reset-password"))
}

func TestGuard_DifferentKeyNeverSuppresses(t *testing.T) {
	g, now := newTestGuard(20 * time.Second)

	g.RecordAttempt("change-email|user-a")
	*now = now.Add(time.Second)
	assert.False(t, g.ShouldSuppress("change-email|user-b"))
}

func TestGuard_NewKeyOverwritesSlot(t *testing.T) {
	g, now := newTestGuard(20 * time.Second)

	g.RecordAttempt("key-a")
	*now = now.Add(time.Second)
	g.RecordAttempt("key-b")
	*now = now.Add(time.Second)

	// key-a was displaced; only key-b occupies the single slot.
	assert.False(t, g.ShouldSuppress("key-a"))
	assert.True(t, g.ShouldSuppress("key-b"))
}

func TestGuard_ResetClearsSlot(t *testing.T) {
	g, _ := newTestGuard(20 * time.Second)

	g.RecordAttempt("key-a")
	g.Reset()
	assert.False(t, g.ShouldSuppress("key-a"))
}

func TestGuard_EmptyKeyNeverSuppresses(t *testing.T) {
	g, _ := newTestGuard(20 * time.Second)

	g.RecordAttempt("")
	assert.False(t, g.ShouldSuppress(""))
}
