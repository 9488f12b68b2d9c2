//go:build integration
// +build integration

package repository

import (
	"testing"

	"band-scheduler-backend/internal/testutils"

	"github.com/google/uuid"
	"github.com/stretchr/testify/suite"
	"gorm.io/gorm"
)

// BandMemberRepositoryTestSuite tests the BandMemberRepository
type BandMemberRepositoryTestSuite struct {
	suite.Suite
	baseTestSuite *testutils.BaseTestSuite
	repo          *BandMemberRepository
	factories     *testutils.FactorySet
}

// SetupSuite runs before all tests in the suite
func (suite *BandMemberRepositoryTestSuite) SetupSuite() {
	suite.baseTestSuite = testutils.SetupTestSuite(suite.T())
	suite.repo = NewBandMemberRepository(suite.baseTestSuite.DB)
	suite.factories = testutils.NewFactorySet()
}

// TearDownSuite runs after all tests in the suite
func (suite *BandMemberRepositoryTestSuite) TearDownSuite() {
	suite.baseTestSuite.TeardownTestSuite()
}

// SetupTest runs before each test
func (suite *BandMemberRepositoryTestSuite) SetupTest() {
	suite.baseTestSuite.SetupTest()
}

// TearDownTest runs after each test
func (suite *BandMemberRepositoryTestSuite) TearDownTest() {
	suite.baseTestSuite.TearDownTest()
}

// TestCreate tests creating a new band member
func (suite *BandMemberRepositoryTestSuite) TestCreate() {
	member := suite.factories.BandMember.Create()

	err := suite.repo.Create(member)

	suite.NoError(err)

	found, err := suite.repo.GetByID(member.ID)
	suite.NoError(err)
	suite.Equal(member.Name, found.Name)
	suite.Equal("Guitar", found.Instrument)
}

// TestGetAllOrderedByName tests that the roster comes back sorted
func (suite *BandMemberRepositoryTestSuite) TestGetAllOrderedByName() {
	suite.NoError(suite.repo.Create(suite.factories.BandMember.WithName("Zoe")))
	suite.NoError(suite.repo.Create(suite.factories.BandMember.WithName("Alice")))

	members, err := suite.repo.GetAll()

	suite.NoError(err)
	suite.Len(members, 2)
	suite.Equal("Alice", members[0].Name)
	suite.Equal("Zoe", members[1].Name)
}

// TestDelete tests removing a band member
func (suite *BandMemberRepositoryTestSuite) TestDelete() {
	member := suite.factories.BandMember.Create()
	suite.NoError(suite.repo.Create(member))

	suite.NoError(suite.repo.Delete(member.ID))

	_, err := suite.repo.GetByID(member.ID)
	suite.ErrorIs(err, gorm.ErrRecordNotFound)
}

// TestDeleteNotFound tests removing a missing member
func (suite *BandMemberRepositoryTestSuite) TestDeleteNotFound() {
	err := suite.repo.Delete(uuid.New())

	suite.ErrorIs(err, gorm.ErrRecordNotFound)
}

// TestUpsertNameCreates tests that an absent roster entry is created
func (suite *BandMemberRepositoryTestSuite) TestUpsertNameCreates() {
	id := uuid.New()

	suite.NoError(suite.repo.UpsertName(id, "Dave"))

	found, err := suite.repo.GetByID(id)
	suite.NoError(err)
	suite.Equal("Dave", found.Name)
	suite.Empty(found.Instrument)
}

// TestUpsertNameUpdates tests that an existing entry keeps its instrument
func (suite *BandMemberRepositoryTestSuite) TestUpsertNameUpdates() {
	member := suite.factories.BandMember.WithInstrument("Drums")
	suite.NoError(suite.repo.Create(member))

	suite.NoError(suite.repo.UpsertName(member.ID, "David"))

	found, err := suite.repo.GetByID(member.ID)
	suite.NoError(err)
	suite.Equal("David", found.Name)
	suite.Equal("Drums", found.Instrument)
}

// TestUpsertInstrument tests assigning an instrument with a fallback name
func (suite *BandMemberRepositoryTestSuite) TestUpsertInstrument() {
	id := uuid.New()

	suite.NoError(suite.repo.UpsertInstrument(id, "Dave", "Bass"))

	found, err := suite.repo.GetByID(id)
	suite.NoError(err)
	suite.Equal("Dave", found.Name)
	suite.Equal("Bass", found.Instrument)

	// A second upsert changes the instrument but not the name
	suite.NoError(suite.repo.UpsertInstrument(id, "Someone Else", "Drums"))

	found, err = suite.repo.GetByID(id)
	suite.NoError(err)
	suite.Equal("Dave", found.Name)
	suite.Equal("Drums", found.Instrument)
}

// TestCountByInstrument tests counting roster entries per instrument
func (suite *BandMemberRepositoryTestSuite) TestCountByInstrument() {
	suite.NoError(suite.repo.Create(suite.factories.BandMember.WithInstrument("Drums")))
	suite.NoError(suite.repo.Create(suite.factories.BandMember.WithInstrument("Drums")))
	suite.NoError(suite.repo.Create(suite.factories.BandMember.WithInstrument("Bass")))

	count, err := suite.repo.CountByInstrument("Drums")
	suite.NoError(err)
	suite.Equal(int64(2), count)

	count, err = suite.repo.CountByInstrument("Trumpet")
	suite.NoError(err)
	suite.Equal(int64(0), count)
}

// TestBandMemberRepositoryTestSuite runs the test suite
func TestBandMemberRepositoryTestSuite(t *testing.T) {
	suite.Run(t, new(BandMemberRepositoryTestSuite))
}
