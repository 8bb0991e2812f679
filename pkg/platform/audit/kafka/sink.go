// Package kafka mirrors audit events to a Kafka topic so downstream
// consumers (SIEM, compliance archive) see the same stream the service
// persists. The mirror is best-effort; the relational store stays the
// source of truth for queries.
package kafka

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"github.com/twmb/franz-go/pkg/kadm"
	"github.com/twmb/franz-go/pkg/kgo"

	"dealerdesk/pkg/platform/audit"
)

// DefaultTopic is the audit stream topic.
const DefaultTopic = "dealerdesk.audit.events"

// Sink produces audit events to Kafka. It implements audit.Appender.
type Sink struct {
	client *kgo.Client
	topic  string
}

// NewSink connects to the given brokers and ensures the topic exists.
func NewSink(ctx context.Context, brokers []string, topic string) (*Sink, error) {
	if topic == "" {
		topic = DefaultTopic
	}

	client, err := kgo.NewClient(
		kgo.SeedBrokers(brokers...),
		kgo.DefaultProduceTopic(topic),
		kgo.ProducerLinger(5*time.Millisecond),
	)
	if err != nil {
		return nil, fmt.Errorf("create kafka client: %w", err)
	}

	if err := ensureTopic(ctx, client, topic); err != nil {
		client.Close()
		return nil, err
	}

	return &Sink{client: client, topic: topic}, nil
}

func ensureTopic(ctx context.Context, client *kgo.Client, topic string) error {
	admin := kadm.NewClient(client)
	_, err := admin.CreateTopic(ctx, 1, 1, nil, topic)
	if err != nil && !strings.Contains(err.Error(), "TOPIC_ALREADY_EXISTS") {
		return fmt.Errorf("create audit topic: %w", err)
	}
	return nil
}

// record is the wire shape published to the topic.
type record struct {
	ID         string            `json:"id"`
	Category   string            `json:"category"`
	Timestamp  string            `json:"timestamp"`
	ActorID    string            `json:"actor_id"`
	ActorEmail string            `json:"actor_email"`
	Action     string            `json:"action"`
	TargetType string            `json:"target_type"`
	TargetID   string            `json:"target_id"`
	Details    map[string]string `json:"details,omitempty"`
	IP         string            `json:"ip,omitempty"`
	RequestID  string            `json:"request_id,omitempty"`
}

// Append publishes one event, keyed by target so per-target ordering holds.
func (s *Sink) Append(ctx context.Context, event audit.Event) error {
	payload, err := json.Marshal(record{
		ID:         event.ID.String(),
		Category:   string(event.Category),
		Timestamp:  event.Timestamp.Format(time.RFC3339Nano),
		ActorID:    event.ActorID.String(),
		ActorEmail: event.ActorEmail,
		Action:     event.Action,
		TargetType: event.TargetType,
		TargetID:   event.TargetID,
		Details:    event.Details,
		IP:         event.IP,
		RequestID:  event.RequestID,
	})
	if err != nil {
		return fmt.Errorf("marshal audit record: %w", err)
	}

	result := s.client.ProduceSync(ctx, &kgo.Record{
		Topic: s.topic,
		Key:   []byte(event.TargetID),
		Value: payload,
	})
	if err := result.FirstErr(); err != nil {
		return fmt.Errorf("produce audit record: %w", err)
	}
	return nil
}

// Close flushes buffered records and releases the client.
func (s *Sink) Close() {
	s.client.Close()
}
