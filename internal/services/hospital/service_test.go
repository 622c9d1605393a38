package hospital

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
	s.service = New(s.storage, s.clock, testutil.NopLogger())
	s.ctx = context.Background()
}

func (s *ServiceSuite) createProfile(id string, gems int) {
	err := s.storage.SaveProfile(s.ctx, &model.Profile{
		PlayerID:  model.PlayerID(id),
		Energy:    50,
		MaxEnergy: 100,
		Gems:      gems,
		CreatedAt: s.clock.Now(),
		UpdatedAt: s.clock.Now(),
	})
	s.Require().NoError(err)
}

// Admit tests

func (s *ServiceSuite) TestAdmitSucceeds() {
	s.createProfile("player-1", 0)

	result, err := s.service.Admit(s.ctx, "player-1", AdmitParams{
		DurationMinutes: 30,
		Reason:          "Arena kaybı",
	})
	s.Require().NoError(err)

	s.Equal(s.clock.Now().Add(30*time.Minute), result.Until)
	s.Equal(30, result.DurationMinutes)
	s.Equal("Arena kaybı", result.Reason)
}

func (s *ServiceSuite) TestAdmitPersistsHospitalFields() {
	s.createProfile("player-1", 0)

	_, err := s.service.Admit(s.ctx, "player-1", DefaultAdmitParams())
	s.Require().NoError(err)

	profile, err := s.storage.GetProfile(s.ctx, "player-1")
	s.Require().NoError(err)
	s.Require().NotNil(profile.HospitalUntil)
	s.Equal(s.clock.Now().Add(120*time.Minute), *profile.HospitalUntil)
	s.Equal(DefaultReason, profile.HospitalReason)
}

func (s *ServiceSuite) TestAdmitDoesNotTouchGems() {
	s.createProfile("player-1", 500)

	_, err := s.service.Admit(s.ctx, "player-1", DefaultAdmitParams())
	s.Require().NoError(err)

	profile, _ := s.storage.GetProfile(s.ctx, "player-1")
	s.Equal(500, profile.Gems)
}

func (s *ServiceSuite) TestAdmitFailsForZeroDuration() {
	s.createProfile("player-1", 0)

	_, err := s.service.Admit(s.ctx, "player-1", AdmitParams{DurationMinutes: 0, Reason: "x"})
	s.ErrorIs(err, model.ErrInvalidDuration)

	// Nothing was written
	profile, _ := s.storage.GetProfile(s.ctx, "player-1")
	s.Nil(profile.HospitalUntil)
}

func (s *ServiceSuite) TestAdmitFailsForNegativeDuration() {
	s.createProfile("player-1", 0)

	_, err := s.service.Admit(s.ctx, "player-1", AdmitParams{DurationMinutes: -5, Reason: "x"})
	s.ErrorIs(err, model.ErrInvalidDuration)
}

func (s *ServiceSuite) TestAdmitOverwritesExistingConfinement() {
	s.createProfile("player-1", 0)

	_, err := s.service.Admit(s.ctx, "player-1", AdmitParams{DurationMinutes: 240, Reason: "first"})
	s.Require().NoError(err)

	// A second admission replaces the window even while the first is live,
	// including a shorter one
	_, err = s.service.Admit(s.ctx, "player-1", AdmitParams{DurationMinutes: 10, Reason: "second"})
	s.Require().NoError(err)

	profile, _ := s.storage.GetProfile(s.ctx, "player-1")
	s.Equal(s.clock.Now().Add(10*time.Minute), *profile.HospitalUntil)
	s.Equal("second", profile.HospitalReason)
}

func (s *ServiceSuite) TestAdmitFailsForMissingProfile() {
	_, err := s.service.Admit(s.ctx, "nobody", DefaultAdmitParams())
	s.ErrorIs(err, model.ErrProfileNotFound)
}

// Status tests

func (s *ServiceSuite) TestStatusFreePlayer() {
	s.createProfile("player-1", 0)

	status, err := s.service.Status(s.ctx, "player-1")
	s.Require().NoError(err)

	s.False(status.InHospital)
	s.Equal(int64(0), status.ReleaseTime)
	s.Empty(status.Reason)
}

func (s *ServiceSuite) TestStatusConfinedPlayer() {
	s.createProfile("player-1", 0)
	result, _ := s.service.Admit(s.ctx, "player-1", AdmitParams{DurationMinutes: 60, Reason: "Zindan"})

	status, err := s.service.Status(s.ctx, "player-1")
	s.Require().NoError(err)

	s.True(status.InHospital)
	s.Equal(result.Until.Unix(), status.ReleaseTime)
	s.Equal("Zindan", status.Reason)
}

func (s *ServiceSuite) TestStatusAfterExpiry() {
	s.createProfile("player-1", 0)
	result, _ := s.service.Admit(s.ctx, "player-1", AdmitParams{DurationMinutes: 60, Reason: "Zindan"})

	s.clock.Advance(61 * time.Minute)

	status, err := s.service.Status(s.ctx, "player-1")
	s.Require().NoError(err)

	// Free, but the stored expiry and reason still leak through: nothing
	// writes the transition back
	s.False(status.InHospital)
	s.Equal(result.Until.Unix(), status.ReleaseTime)
	s.Equal("Zindan", status.Reason)
}

func (s *ServiceSuite) TestStatusAtExactExpiryIsFree() {
	s.createProfile("player-1", 0)
	_, _ = s.service.Admit(s.ctx, "player-1", AdmitParams{DurationMinutes: 60, Reason: "Zindan"})

	s.clock.Advance(60 * time.Minute)

	status, err := s.service.Status(s.ctx, "player-1")
	s.Require().NoError(err)
	s.False(status.InHospital)
}

func (s *ServiceSuite) TestStatusDoesNotWrite() {
	s.createProfile("player-1", 0)
	_, _ = s.service.Admit(s.ctx, "player-1", AdmitParams{DurationMinutes: 60, Reason: "Zindan"})

	s.clock.Advance(2 * time.Hour)
	_, _ = s.service.Status(s.ctx, "player-1")

	profile, _ := s.storage.GetProfile(s.ctx, "player-1")
	s.NotNil(profile.HospitalUntil)
	s.Equal("Zindan", profile.HospitalReason)
}

func (s *ServiceSuite) TestStatusFailsForMissingProfile() {
	_, err := s.service.Status(s.ctx, "nobody")
	s.ErrorIs(err, model.ErrProfileNotFound)
}

// Release tests

func (s *ServiceSuite) TestReleaseFailsWhenNotConfined() {
	s.createProfile("player-1", 100)

	_, err := s.service.Release(s.ctx, "player-1", DefaultReleaseParams())
	s.ErrorIs(err, model.ErrNotInHospital)
}

func (s *ServiceSuite) TestReleaseFailsAfterNaturalExpiry() {
	s.createProfile("player-1", 100)
	_, _ = s.service.Admit(s.ctx, "player-1", AdmitParams{DurationMinutes: 30, Reason: "Zindan"})

	s.clock.Advance(31 * time.Minute)

	// Already free; there is nothing to release
	_, err := s.service.Release(s.ctx, "player-1", DefaultReleaseParams())
	s.ErrorIs(err, model.ErrNotInHospital)
}

func (s *ServiceSuite) TestReleaseWithGems() {
	s.createProfile("player-1", 100)
	_, _ = s.service.Admit(s.ctx, "player-1", AdmitParams{DurationMinutes: 30, Reason: "Zindan"})

	result, err := s.service.Release(s.ctx, "player-1", ReleaseParams{Method: MethodGems, Cost: 25})
	s.Require().NoError(err)

	s.Equal(MethodGems, result.Method)
	s.Equal(25, result.Cost)
	s.Require().NotNil(result.NewGems)
	s.Equal(75, *result.NewGems)

	profile, _ := s.storage.GetProfile(s.ctx, "player-1")
	s.Equal(75, profile.Gems)
	s.Nil(profile.HospitalUntil)
	s.Empty(profile.HospitalReason)
}

func (s *ServiceSuite) TestReleaseWithGemsExactBalance() {
	s.createProfile("player-1", 25)
	_, _ = s.service.Admit(s.ctx, "player-1", AdmitParams{DurationMinutes: 30, Reason: "Zindan"})

	result, err := s.service.Release(s.ctx, "player-1", ReleaseParams{Method: MethodGems, Cost: 25})
	s.Require().NoError(err)
	s.Equal(0, *result.NewGems)
}

func (s *ServiceSuite) TestReleaseWithGemsInsufficientBalance() {
	s.createProfile("player-1", 10)
	_, _ = s.service.Admit(s.ctx, "player-1", AdmitParams{DurationMinutes: 30, Reason: "Zindan"})

	_, err := s.service.Release(s.ctx, "player-1", ReleaseParams{Method: MethodGems, Cost: 25})
	s.ErrorIs(err, model.ErrInsufficientGems)

	// Still confined, balance untouched
	profile, _ := s.storage.GetProfile(s.ctx, "player-1")
	s.Equal(10, profile.Gems)
	s.NotNil(profile.HospitalUntil)
}

func (s *ServiceSuite) TestReleaseWithGemsZeroCost() {
	s.createProfile("player-1", 0)
	_, _ = s.service.Admit(s.ctx, "player-1", AdmitParams{DurationMinutes: 30, Reason: "Zindan"})

	result, err := s.service.Release(s.ctx, "player-1", ReleaseParams{Method: MethodGems, Cost: 0})
	s.Require().NoError(err)
	s.Equal(0, *result.NewGems)
}

func (s *ServiceSuite) TestReleaseFailsForNegativeCost() {
	s.createProfile("player-1", 100)
	_, _ = s.service.Admit(s.ctx, "player-1", AdmitParams{DurationMinutes: 30, Reason: "Zindan"})

	_, err := s.service.Release(s.ctx, "player-1", ReleaseParams{Method: MethodGems, Cost: -5})
	s.ErrorIs(err, model.ErrInvalidCost)
}

func (s *ServiceSuite) TestReleaseWithNaturalMethod() {
	s.createProfile("player-1", 100)
	_, _ = s.service.Admit(s.ctx, "player-1", AdmitParams{DurationMinutes: 30, Reason: "Zindan"})

	result, err := s.service.Release(s.ctx, "player-1", ReleaseParams{Method: MethodNatural})
	s.Require().NoError(err)

	s.Equal(MethodNatural, result.Method)
	s.Nil(result.NewGems)

	profile, _ := s.storage.GetProfile(s.ctx, "player-1")
	s.Equal(100, profile.Gems)
	s.Nil(profile.HospitalUntil)
}

func (s *ServiceSuite) TestReleaseEchoesUnknownMethod() {
	s.createProfile("player-1", 100)
	_, _ = s.service.Admit(s.ctx, "player-1", AdmitParams{DurationMinutes: 30, Reason: "Zindan"})

	// Any non-gems string clears the state free of charge and is echoed
	result, err := s.service.Release(s.ctx, "player-1", ReleaseParams{Method: "quest_item"})
	s.Require().NoError(err)

	s.Equal("quest_item", result.Method)
	s.Nil(result.NewGems)

	profile, _ := s.storage.GetProfile(s.ctx, "player-1")
	s.Equal(100, profile.Gems)
	s.Nil(profile.HospitalUntil)
}

func (s *ServiceSuite) TestReleaseNonGemsIgnoresCost() {
	s.createProfile("player-1", 5)
	_, _ = s.service.Admit(s.ctx, "player-1", AdmitParams{DurationMinutes: 30, Reason: "Zindan"})

	// Cost only matters for the gems method
	result, err := s.service.Release(s.ctx, "player-1", ReleaseParams{Method: "item", Cost: 9999})
	s.Require().NoError(err)
	s.Equal("item", result.Method)

	profile, _ := s.storage.GetProfile(s.ctx, "player-1")
	s.Equal(5, profile.Gems)
}

func (s *ServiceSuite) TestReleaseThenStatusIsFree() {
	s.createProfile("player-1", 100)
	_, _ = s.service.Admit(s.ctx, "player-1", AdmitParams{DurationMinutes: 30, Reason: "Zindan"})

	_, err := s.service.Release(s.ctx, "player-1", ReleaseParams{Method: MethodGems, Cost: 10})
	s.Require().NoError(err)

	status, err := s.service.Status(s.ctx, "player-1")
	s.Require().NoError(err)
	s.False(status.InHospital)
	s.Equal(int64(0), status.ReleaseTime)
	s.Empty(status.Reason)
}

func (s *ServiceSuite) TestReleaseFailsForMissingProfile() {
	_, err := s.service.Release(s.ctx, "nobody", DefaultReleaseParams())
	s.ErrorIs(err, model.ErrProfileNotFound)
}

// Admit after release round trip

func (s *ServiceSuite) TestReadmitAfterRelease() {
	s.createProfile("player-1", 100)

	_, _ = s.service.Admit(s.ctx, "player-1", AdmitParams{DurationMinutes: 30, Reason: "first"})
	_, err := s.service.Release(s.ctx, "player-1", ReleaseParams{Method: MethodNatural})
	s.Require().NoError(err)

	_, err = s.service.Admit(s.ctx, "player-1", AdmitParams{DurationMinutes: 45, Reason: "second"})
	s.Require().NoError(err)

	status, _ := s.service.Status(s.ctx, "player-1")
	s.True(status.InHospital)
	s.Equal("second", status.Reason)
}
