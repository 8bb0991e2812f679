//go:build integration

package postgres

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/suite"

	id "dealerdesk/pkg/domain"
	"dealerdesk/pkg/platform/audit"
	"dealerdesk/pkg/testutil/containers"
)

type PostgresStoreSuite struct {
	suite.Suite
	store *Store
	ctx   context.Context
}

func TestPostgresStoreSuite(t *testing.T) {
	pool := containers.SetupPostgres(t)
	s := &PostgresStoreSuite{store: New(pool), ctx: context.Background()}
	suite.Run(t, s)
}

func (s *PostgresStoreSuite) newEvent(targetID string) audit.Event {
	return audit.Event{
		ID:         uuid.New(),
		Category:   audit.CategoryCompliance,
		Timestamp:  time.Now().UTC().Truncate(time.Microsecond),
		ActorID:    id.UserID(uuid.New()),
		ActorEmail: "admin@dealerdesk.test",
		Action:     string(audit.EventEmailChanged),
		TargetType: "user",
		TargetID:   targetID,
		Details: map[string]string{
			"old_email":  "old@dealerdesk.test",
			"new_email":  "new@dealerdesk.test",
			"changed_by": "admin@dealerdesk.test",
		},
		IP:        "203.0.113.10",
		RequestID: "req-1",
	}
}

func (s *PostgresStoreSuite) TestAppendAndListByTarget() {
	targetID := uuid.NewString()
	event := s.newEvent(targetID)

	s.Require().NoError(s.store.Append(s.ctx, event))

	events, err := s.store.ListByTarget(s.ctx, "user", targetID)
	s.Require().NoError(err)
	s.Require().Len(events, 1)
	s.Equal(event.ID, events[0].ID)
	s.Equal(event.ActorID, events[0].ActorID)
	s.Equal(event.Details, events[0].Details)
	s.Equal("203.0.113.10", events[0].IP)
	s.WithinDuration(event.Timestamp, events[0].Timestamp, time.Millisecond)
}

func (s *PostgresStoreSuite) TestAppendIdempotentOnID() {
	targetID := uuid.NewString()
	event := s.newEvent(targetID)

	s.Require().NoError(s.store.Append(s.ctx, event))
	s.Require().NoError(s.store.Append(s.ctx, event))

	events, err := s.store.ListByTarget(s.ctx, "user", targetID)
	s.Require().NoError(err)
	s.Len(events, 1)
}

func (s *PostgresStoreSuite) TestNullableIP() {
	targetID := uuid.NewString()
	event := s.newEvent(targetID)
	event.IP = ""

	s.Require().NoError(s.store.Append(s.ctx, event))

	events, err := s.store.ListByTarget(s.ctx, "user", targetID)
	s.Require().NoError(err)
	s.Require().Len(events, 1)
	s.Empty(events[0].IP)
}

func (s *PostgresStoreSuite) TestListByTarget_MostRecentFirst() {
	targetID := uuid.NewString()

	older := s.newEvent(targetID)
	older.Timestamp = time.Now().UTC().Add(-time.Hour)
	newer := s.newEvent(targetID)

	s.Require().NoError(s.store.Append(s.ctx, older))
	s.Require().NoError(s.store.Append(s.ctx, newer))

	events, err := s.store.ListByTarget(s.ctx, "user", targetID)
	s.Require().NoError(err)
	s.Require().Len(events, 2)
	s.Equal(newer.ID, events[0].ID)
	s.Equal(older.ID, events[1].ID)
}

func (s *PostgresStoreSuite) TestListRecent() {
	for range 3 {
		s.Require().NoError(s.store.Append(s.ctx, s.newEvent(uuid.NewString())))
	}

	events, err := s.store.ListRecent(s.ctx, 2)
	s.Require().NoError(err)
	s.Len(events, 2)
}
