package service_test

import (
	"testing"

	"band-scheduler-backend/internal/database/models"
	apperrors "band-scheduler-backend/internal/errors"
	"band-scheduler-backend/internal/mocks"
	"band-scheduler-backend/internal/service"
	"band-scheduler-backend/internal/testutils"

	"github.com/google/uuid"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
	"gorm.io/gorm"
)

// PolicyServiceTestSuite defines the test suite for PolicyService
type PolicyServiceTestSuite struct {
	suite.Suite
	ctrl         *gomock.Controller
	mockBandRepo *mocks.MockBandMemberRepositoryInterface
	mockRoleRepo *mocks.MockRoleRepositoryInterface
	policy       *service.PolicyService
	factories    *testutils.FactorySet
}

// SetupTest sets up the test suite
func (suite *PolicyServiceTestSuite) SetupTest() {
	suite.ctrl = gomock.NewController(suite.T())
	suite.mockBandRepo = mocks.NewMockBandMemberRepositoryInterface(suite.ctrl)
	suite.mockRoleRepo = mocks.NewMockRoleRepositoryInterface(suite.ctrl)
	suite.policy = service.NewPolicyService(suite.mockBandRepo, suite.mockRoleRepo)
	suite.factories = testutils.NewFactorySet()
}

// TearDownTest cleans up after each test
func (suite *PolicyServiceTestSuite) TearDownTest() {
	suite.ctrl.Finish()
}

// TestRequireVerified tests the verification gate
func (suite *PolicyServiceTestSuite) TestRequireVerified() {
	suite.NoError(suite.policy.RequireVerified(suite.factories.User.Create()))
	suite.ErrorIs(suite.policy.RequireVerified(suite.factories.User.Unverified()), apperrors.ErrNotVerified)
	suite.ErrorIs(suite.policy.RequireVerified(nil), apperrors.ErrNotVerified)
}

// TestRequireGigOwner tests the creator-only edit gate
func (suite *PolicyServiceTestSuite) TestRequireGigOwner() {
	actor := suite.factories.User.Create()
	owned := suite.factories.Gig.Create()
	owned.CreatedBy = actor.ID
	foreign := suite.factories.Gig.Create()

	suite.NoError(suite.policy.RequireGigOwner(actor, owned))
	suite.ErrorIs(suite.policy.RequireGigOwner(actor, foreign), apperrors.ErrNotGigOwner)
}

// TestRequireNotSelf tests the self-removal gate
func (suite *PolicyServiceTestSuite) TestRequireNotSelf() {
	actor := suite.factories.User.Create()

	suite.NoError(suite.policy.RequireNotSelf(actor, uuid.New()))
	suite.ErrorIs(suite.policy.RequireNotSelf(actor, actor.ID), apperrors.ErrSelfRemoval)
}

// TestRequireInstrumentUnused tests the in-use instrument gate
func (suite *PolicyServiceTestSuite) TestRequireInstrumentUnused() {
	suite.mockBandRepo.EXPECT().CountByInstrument("Guitar").Return(int64(2), nil)
	suite.ErrorIs(suite.policy.RequireInstrumentUnused("Guitar"), apperrors.ErrInstrumentInUse)

	suite.mockBandRepo.EXPECT().CountByInstrument("Theremin").Return(int64(0), nil)
	suite.NoError(suite.policy.RequireInstrumentUnused("Theremin"))
}

// TestRequireAdmin tests the admin gate
func (suite *PolicyServiceTestSuite) TestRequireAdmin() {
	admin := suite.factories.User.Create()
	suite.mockRoleRepo.EXPECT().GetByMemberID(admin.ID).Return(&models.Role{MemberID: admin.ID, Admin: true}, nil)
	suite.NoError(suite.policy.RequireAdmin(admin))

	manager := suite.factories.User.Create()
	suite.mockRoleRepo.EXPECT().GetByMemberID(manager.ID).Return(&models.Role{MemberID: manager.ID, BandManager: true}, nil)
	suite.ErrorIs(suite.policy.RequireAdmin(manager), apperrors.ErrNotAdmin)

	noRole := suite.factories.User.Create()
	suite.mockRoleRepo.EXPECT().GetByMemberID(noRole.ID).Return(nil, gorm.ErrRecordNotFound)
	suite.ErrorIs(suite.policy.RequireAdmin(noRole), apperrors.ErrNotAdmin)

	suite.ErrorIs(suite.policy.RequireAdmin(nil), apperrors.ErrNotAdmin)
}

// TestPolicyServiceTestSuite runs the test suite
func TestPolicyServiceTestSuite(t *testing.T) {
	suite.Run(t, new(PolicyServiceTestSuite))
}
