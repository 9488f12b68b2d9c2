//go:build integration
// +build integration

package repository

import (
	"testing"

	"band-scheduler-backend/internal/database/models"
	"band-scheduler-backend/internal/testutils"

	"github.com/google/uuid"
	"github.com/stretchr/testify/suite"
	"gorm.io/gorm"
)

// GigRepositoryTestSuite tests the GigRepository
type GigRepositoryTestSuite struct {
	suite.Suite
	baseTestSuite *testutils.BaseTestSuite
	repo          *GigRepository
	factories     *testutils.FactorySet
}

// SetupSuite runs before all tests in the suite
func (suite *GigRepositoryTestSuite) SetupSuite() {
	suite.baseTestSuite = testutils.SetupTestSuite(suite.T())
	suite.repo = NewGigRepository(suite.baseTestSuite.DB)
	suite.factories = testutils.NewFactorySet()
}

// TearDownSuite runs after all tests in the suite
func (suite *GigRepositoryTestSuite) TearDownSuite() {
	suite.baseTestSuite.TeardownTestSuite()
}

// SetupTest runs before each test
func (suite *GigRepositoryTestSuite) SetupTest() {
	suite.baseTestSuite.SetupTest()
}

// TearDownTest runs after each test
func (suite *GigRepositoryTestSuite) TearDownTest() {
	suite.baseTestSuite.TearDownTest()
}

// TestCreate tests creating a new gig
func (suite *GigRepositoryTestSuite) TestCreate() {
	gig := suite.factories.Gig.Create()

	err := suite.repo.Create(gig)

	suite.NoError(err)
	suite.NotEqual(uuid.Nil, gig.ID)
	suite.NotZero(gig.CreatedAt)
	suite.NotZero(gig.UpdatedAt)
}

// TestGetByID tests retrieving a gig by ID
func (suite *GigRepositoryTestSuite) TestGetByID() {
	gig := suite.factories.Gig.Create()
	suite.NoError(suite.repo.Create(gig))

	found, err := suite.repo.GetByID(gig.ID)

	suite.NoError(err)
	suite.Equal(gig.Name, found.Name)
	suite.Equal(gig.Date, found.Date)
	suite.NotNil(found.MemberAvailability)
}

// TestGetByIDNotFound tests retrieving a non-existent gig
func (suite *GigRepositoryTestSuite) TestGetByIDNotFound() {
	_, err := suite.repo.GetByID(uuid.New())

	suite.ErrorIs(err, gorm.ErrRecordNotFound)
}

// TestGetAllOrderedByDate tests that gigs come back in date order
func (suite *GigRepositoryTestSuite) TestGetAllOrderedByDate() {
	later := suite.factories.Gig.WithDate("2031-02-01")
	earlier := suite.factories.Gig.WithDate("2031-01-01")
	suite.NoError(suite.repo.Create(later))
	suite.NoError(suite.repo.Create(earlier))

	gigs, err := suite.repo.GetAll()

	suite.NoError(err)
	suite.Len(gigs, 2)
	suite.Equal("2031-01-01", gigs[0].Date)
	suite.Equal("2031-02-01", gigs[1].Date)
}

// TestUpdate tests saving a whole gig
func (suite *GigRepositoryTestSuite) TestUpdate() {
	gig := suite.factories.Gig.Create()
	suite.NoError(suite.repo.Create(gig))

	gig.Name = "Renamed Gig"
	gig.Status = models.GigStatusConfirmed
	suite.NoError(suite.repo.Update(gig))

	found, err := suite.repo.GetByID(gig.ID)
	suite.NoError(err)
	suite.Equal("Renamed Gig", found.Name)
	suite.Equal(models.GigStatusConfirmed, found.Status)
}

// TestUpdateStatus tests that only the status column changes
func (suite *GigRepositoryTestSuite) TestUpdateStatus() {
	gig := suite.factories.Gig.WithStatus(models.GigStatusConfirmed)
	suite.NoError(suite.repo.Create(gig))

	suite.NoError(suite.repo.UpdateStatus(gig.ID, models.GigStatusCompleted))

	found, err := suite.repo.GetByID(gig.ID)
	suite.NoError(err)
	suite.Equal(models.GigStatusCompleted, found.Status)
	suite.Equal(gig.Name, found.Name)
}

// TestSetAvailability tests the jsonb upsert for two distinct members
func (suite *GigRepositoryTestSuite) TestSetAvailability() {
	gig := suite.factories.Gig.Create()
	suite.NoError(suite.repo.Create(gig))

	first := uuid.New().String()
	second := uuid.New().String()
	note := "Can bring the PA"

	err := suite.repo.SetAvailability(gig.ID, first, models.AvailabilityRecord{
		Status:   models.AvailabilityAvailable,
		Note:     &note,
		CanDrive: true,
	})
	suite.NoError(err)

	err = suite.repo.SetAvailability(gig.ID, second, models.AvailabilityRecord{
		Status: models.AvailabilityUnavailable,
	})
	suite.NoError(err)

	found, err := suite.repo.GetByID(gig.ID)
	suite.NoError(err)
	suite.Len(found.MemberAvailability, 2)
	suite.Equal(models.AvailabilityAvailable, found.MemberAvailability[first].Status)
	suite.True(found.MemberAvailability[first].CanDrive)
	suite.Equal(models.AvailabilityUnavailable, found.MemberAvailability[second].Status)
}

// TestSetAvailabilityOverwritesSameMember tests that a second response replaces the first
func (suite *GigRepositoryTestSuite) TestSetAvailabilityOverwritesSameMember() {
	gig := suite.factories.Gig.Create()
	suite.NoError(suite.repo.Create(gig))

	member := uuid.New().String()
	suite.NoError(suite.repo.SetAvailability(gig.ID, member, models.AvailabilityRecord{
		Status: models.AvailabilityAvailable,
	}))
	suite.NoError(suite.repo.SetAvailability(gig.ID, member, models.AvailabilityRecord{
		Status: models.AvailabilityTentative,
	}))

	found, err := suite.repo.GetByID(gig.ID)
	suite.NoError(err)
	suite.Len(found.MemberAvailability, 1)
	suite.Equal(models.AvailabilityTentative, found.MemberAvailability[member].Status)
}

// TestSetAvailabilityGigNotFound tests the upsert against a missing gig
func (suite *GigRepositoryTestSuite) TestSetAvailabilityGigNotFound() {
	err := suite.repo.SetAvailability(uuid.New(), uuid.New().String(), models.AvailabilityRecord{
		Status: models.AvailabilityAvailable,
	})

	suite.ErrorIs(err, gorm.ErrRecordNotFound)
}

// TestGigRepositoryTestSuite runs the test suite
func TestGigRepositoryTestSuite(t *testing.T) {
	suite.Run(t, new(GigRepositoryTestSuite))
}
