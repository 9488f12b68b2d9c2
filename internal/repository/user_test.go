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

// UserRepositoryTestSuite tests the UserRepository
type UserRepositoryTestSuite struct {
	suite.Suite
	baseTestSuite *testutils.BaseTestSuite
	repo          *UserRepository
	factories     *testutils.FactorySet
}

// SetupSuite runs before all tests in the suite
func (suite *UserRepositoryTestSuite) SetupSuite() {
	suite.baseTestSuite = testutils.SetupTestSuite(suite.T())
	suite.repo = NewUserRepository(suite.baseTestSuite.DB)
	suite.factories = testutils.NewFactorySet()
}

// TearDownSuite runs after all tests in the suite
func (suite *UserRepositoryTestSuite) TearDownSuite() {
	suite.baseTestSuite.TeardownTestSuite()
}

// SetupTest runs before each test
func (suite *UserRepositoryTestSuite) SetupTest() {
	suite.baseTestSuite.SetupTest()
}

// TearDownTest runs after each test
func (suite *UserRepositoryTestSuite) TearDownTest() {
	suite.baseTestSuite.TearDownTest()
}

// TestCreateAndGetByID tests creating and looking up an account
func (suite *UserRepositoryTestSuite) TestCreateAndGetByID() {
	user := suite.factories.User.Create()

	suite.NoError(suite.repo.Create(user))

	found, err := suite.repo.GetByID(user.ID)
	suite.NoError(err)
	suite.Equal(user.Email, found.Email)
	suite.True(found.EmailVerified)
}

// TestCreateDuplicateEmail tests the unique index on the email
func (suite *UserRepositoryTestSuite) TestCreateDuplicateEmail() {
	first := suite.factories.User.Create()
	suite.NoError(suite.repo.Create(first))

	second := suite.factories.User.Create()
	second.Email = first.Email

	err := suite.repo.Create(second)
	suite.Error(err)
	suite.Contains(err.Error(), "duplicate key value")
}

// TestGetByEmail tests lookup by email
func (suite *UserRepositoryTestSuite) TestGetByEmail() {
	user := suite.factories.User.Create()
	suite.NoError(suite.repo.Create(user))

	found, err := suite.repo.GetByEmail(user.Email)
	suite.NoError(err)
	suite.Equal(user.ID, found.ID)

	_, err = suite.repo.GetByEmail("nobody@example.com")
	suite.ErrorIs(err, gorm.ErrRecordNotFound)
}

// TestUpdate tests saving account changes
func (suite *UserRepositoryTestSuite) TestUpdate() {
	user := suite.factories.User.Unverified()
	suite.NoError(suite.repo.Create(user))

	user.EmailVerified = true
	user.DisplayName = "Verified User"
	suite.NoError(suite.repo.Update(user))

	found, err := suite.repo.GetByID(user.ID)
	suite.NoError(err)
	suite.True(found.EmailVerified)
	suite.Equal("Verified User", found.DisplayName)
}

// TestGetByIDNotFound tests lookup of a missing account
func (suite *UserRepositoryTestSuite) TestGetByIDNotFound() {
	_, err := suite.repo.GetByID(uuid.New())

	suite.ErrorIs(err, gorm.ErrRecordNotFound)
}

// TestUserRepositoryTestSuite runs the test suite
func TestUserRepositoryTestSuite(t *testing.T) {
	suite.Run(t, new(UserRepositoryTestSuite))
}
