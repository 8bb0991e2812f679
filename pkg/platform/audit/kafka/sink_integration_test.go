//go:build integration

package kafka

import (
	"context"
	"encoding/json"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/twmb/franz-go/pkg/kgo"

	id "dealerdesk/pkg/domain"
	"dealerdesk/pkg/platform/audit"
	"dealerdesk/pkg/testutil/containers"
)

func TestSink_PublishesAuditEvents(t *testing.T) {
	broker := containers.SetupRedpanda(t)
	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	sink, err := NewSink(ctx, []string{broker}, "dealerdesk.audit.events.test")
	require.NoError(t, err)
	defer sink.Close()

	event := audit.Event{
		ID:         uuid.New(),
		Category:   audit.CategorySecurity,
		Timestamp:  time.Now().UTC(),
		ActorID:    id.UserID(uuid.New()),
		ActorEmail: "admin@dealerdesk.test",
		Action:     string(audit.EventPasswordReset),
		TargetType: "user",
		TargetID:   uuid.NewString(),
		Details:    map[string]string{"changed_by": "admin@dealerdesk.test"},
		RequestID:  "req-kafka-1",
	}
	require.NoError(t, sink.Append(ctx, event))

	consumer, err := kgo.NewClient(
		kgo.SeedBrokers(broker),
		kgo.ConsumeTopics("dealerdesk.audit.events.test"),
		kgo.ConsumeResetOffset(kgo.NewOffset().AtStart()),
	)
	require.NoError(t, err)
	defer consumer.Close()

	fetches := consumer.PollFetches(ctx)
	require.NoError(t, fetches.Err())
	records := fetches.Records()
	require.NotEmpty(t, records)

	assert.Equal(t, event.TargetID, string(records[0].Key))

	var published map[string]any
	require.NoError(t, json.Unmarshal(records[0].Value, &published))
	assert.Equal(t, event.ID.String(), published["id"])
	assert.Equal(t, "password_reset", published["action"])
	assert.Equal(t, "security", published["category"])
	assert.Equal(t, "admin@dealerdesk.test", published["actor_email"])
}
