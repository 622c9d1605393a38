package auth

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/suite"

	"github.com/zindanrpg/zindan-go/internal/dependencies/mocks"
	"github.com/zindanrpg/zindan-go/internal/model"
	"github.com/zindanrpg/zindan-go/internal/storage/memory"
	"github.com/zindanrpg/zindan-go/internal/testutil"
)

type ServiceSuite struct {
	suite.Suite
	storage *memory.Storage
	clock   *mocks.MockClock
	service *Service
	ctx     context.Context
}

func TestServiceSuite(t *testing.T) {
	suite.Run(t, new(ServiceSuite))
}

func (s *ServiceSuite) SetupTest() {
	s.storage = memory.New()
	s.clock = mocks.NewMockClock(time.Date(2024, 1, 1, 12, 0, 0, 0, time.UTC))
	s.service = New(s.storage, s.clock, DefaultConfig(), testutil.NopLogger())
	s.ctx = context.Background()
}

// CreateSession tests

func (s *ServiceSuite) TestCreateSessionSucceeds() {
	session, err := s.service.CreateSession(s.ctx, "player-1")
	s.Require().NoError(err)

	s.NotEmpty(session.Token)
	s.Equal(model.PlayerID("player-1"), session.PlayerID)
	s.Equal(s.clock.Now().Add(24*time.Hour), session.ExpiresAt)
}

func (s *ServiceSuite) TestCreateSessionPersists() {
	session, _ := s.service.CreateSession(s.ctx, "player-1")

	stored, err := s.storage.GetSession(s.ctx, session.Token)
	s.Require().NoError(err)
	s.Equal(model.PlayerID("player-1"), stored.PlayerID)
}

// VerifyToken tests

func (s *ServiceSuite) TestVerifyTokenSucceeds() {
	session, _ := s.service.CreateSession(s.ctx, "player-1")

	verified, err := s.service.VerifyToken(s.ctx, session.Token)
	s.Require().NoError(err)
	s.Equal(model.PlayerID("player-1"), verified.PlayerID)
}

func (s *ServiceSuite) TestVerifyTokenFailsForUnknownToken() {
	_, err := s.service.VerifyToken(s.ctx, "sess_bogus")
	s.ErrorIs(err, ErrInvalidSession)
}

func (s *ServiceSuite) TestVerifyTokenFailsForExpiredSession() {
	session, _ := s.service.CreateSession(s.ctx, "player-1")

	s.clock.Advance(25 * time.Hour)

	_, err := s.service.VerifyToken(s.ctx, session.Token)
	s.ErrorIs(err, ErrInvalidSession)
}

func (s *ServiceSuite) TestVerifyTokenDeletesExpiredSession() {
	session, _ := s.service.CreateSession(s.ctx, "player-1")

	s.clock.Advance(25 * time.Hour)
	_, _ = s.service.VerifyToken(s.ctx, session.Token)

	_, err := s.storage.GetSession(s.ctx, session.Token)
	s.ErrorIs(err, model.ErrSessionNotFound)
}

// InvalidateSession tests

func (s *ServiceSuite) TestInvalidateSession() {
	session, _ := s.service.CreateSession(s.ctx, "player-1")

	err := s.service.InvalidateSession(s.ctx, session.Token)
	s.Require().NoError(err)

	_, err = s.service.VerifyToken(s.ctx, session.Token)
	s.ErrorIs(err, ErrInvalidSession)
}
