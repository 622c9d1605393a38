package factory

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/suite"

	"github.com/zindanrpg/zindan-go/internal/model"
	"github.com/zindanrpg/zindan-go/internal/services/hospital"
)

type IntegrationSuite struct {
	suite.Suite
	app *TestApp
	ctx context.Context
}

func TestIntegrationSuite(t *testing.T) {
	suite.Run(t, new(IntegrationSuite))
}

func (s *IntegrationSuite) SetupTest() {
	s.app = NewTestApp()
	s.ctx = context.Background()
}

func (s *IntegrationSuite) createProfile(id string, gems int) {
	err := s.app.Storage.SaveProfile(s.ctx, &model.Profile{
		PlayerID:  model.PlayerID(id),
		Energy:    80,
		MaxEnergy: 100,
		Gems:      gems,
		CreatedAt: s.app.MockClock.Now(),
		UpdatedAt: s.app.MockClock.Now(),
	})
	s.Require().NoError(err)
}

// Test: admit, wait out part of the window, pay out with gems
func (s *IntegrationSuite) TestAdmitAndPaidRelease() {
	s.createProfile("player-1", 200)

	// Step 1: Admit for two hours
	result, err := s.app.HospitalService.Admit(s.ctx, "player-1", hospital.AdmitParams{
		DurationMinutes: 120,
		Reason:          "Zindan başarısızlığı",
	})
	s.Require().NoError(err)
	s.Equal(s.app.MockClock.Now().Add(2*time.Hour), result.Until)

	// Step 2: Half an hour later the player is still confined
	s.app.MockClock.Advance(30 * time.Minute)
	status, err := s.app.HospitalService.Status(s.ctx, "player-1")
	s.Require().NoError(err)
	s.True(status.InHospital)

	// Step 3: Pay 50 gems to leave early
	release, err := s.app.HospitalService.Release(s.ctx, "player-1", hospital.ReleaseParams{
		Method: hospital.MethodGems,
		Cost:   50,
	})
	s.Require().NoError(err)
	s.Equal(150, *release.NewGems)

	// Step 4: Free, with the balance reflecting the charge
	status, err = s.app.HospitalService.Status(s.ctx, "player-1")
	s.Require().NoError(err)
	s.False(status.InHospital)

	energyStatus, err := s.app.EnergyService.Status(s.ctx, "player-1")
	s.Require().NoError(err)
	s.Equal(80, energyStatus.Current)

	profile, err := s.app.Storage.GetProfile(s.ctx, "player-1")
	s.Require().NoError(err)
	s.Equal(150, profile.Gems)
}

// Test: confinement lapses on its own once the window passes
func (s *IntegrationSuite) TestConfinementLapsesNaturally() {
	s.createProfile("player-1", 0)

	_, err := s.app.HospitalService.Admit(s.ctx, "player-1", hospital.DefaultAdmitParams())
	s.Require().NoError(err)

	s.app.MockClock.Advance(121 * time.Minute)

	status, err := s.app.HospitalService.Status(s.ctx, "player-1")
	s.Require().NoError(err)
	s.False(status.InHospital)

	// And a release attempt now fails: there is nothing to release
	_, err = s.app.HospitalService.Release(s.ctx, "player-1", hospital.DefaultReleaseParams())
	s.ErrorIs(err, model.ErrNotInHospital)
}

// Test: sessions issued by the auth service resolve to the right player
func (s *IntegrationSuite) TestSessionRoundTrip() {
	s.createProfile("player-1", 0)

	session, err := s.app.AuthService.CreateSession(s.ctx, "player-1")
	s.Require().NoError(err)

	verified, err := s.app.AuthService.VerifyToken(s.ctx, session.Token)
	s.Require().NoError(err)
	s.Equal(model.PlayerID("player-1"), verified.PlayerID)

	s.app.MockClock.Advance(25 * time.Hour)

	_, err = s.app.AuthService.VerifyToken(s.ctx, session.Token)
	s.Error(err)
}
