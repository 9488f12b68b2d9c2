package auth

import (
	"strings"
	"testing"
	"time"

	"band-scheduler-backend/internal/database/models"
	apperrors "band-scheduler-backend/internal/errors"
	"band-scheduler-backend/internal/mocks"

	"github.com/google/uuid"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

// recordingMailer captures verification links instead of sending them
type recordingMailer struct {
	email string
	link  string
}

func (m *recordingMailer) SendVerificationEmail(email, link string) error {
	m.email = email
	m.link = link
	return nil
}

// recordingRoster captures roster sync calls
type recordingRoster struct {
	id   uuid.UUID
	name string
}

func (r *recordingRoster) SyncMemberName(id uuid.UUID, name string) error {
	r.id = id
	r.name = name
	return nil
}

// AuthServiceTestSuite defines the test suite for AuthService
type AuthServiceTestSuite struct {
	suite.Suite
	ctrl      *gomock.Controller
	mockUsers *mocks.MockUserRepositoryInterface
	mailer    *recordingMailer
	roster    *recordingRoster
	service   *AuthService
}

// SetupTest sets up the test suite
func (suite *AuthServiceTestSuite) SetupTest() {
	suite.ctrl = gomock.NewController(suite.T())
	suite.mockUsers = mocks.NewMockUserRepositoryInterface(suite.ctrl)
	suite.mailer = &recordingMailer{}
	suite.roster = &recordingRoster{}

	var err error
	suite.service, err = NewAuthService(suite.mockUsers, suite.roster, suite.mailer, Options{
		JWTSecret:           "test-secret",
		TokenTTL:            time.Hour,
		VerificationTTL:     time.Hour,
		VerificationBaseURL: "http://localhost:3000/verify",
	})
	suite.Require().NoError(err)
}

// TearDownTest cleans up after each test
func (suite *AuthServiceTestSuite) TearDownTest() {
	suite.ctrl.Finish()
}

func (suite *AuthServiceTestSuite) userWithPassword(password string) *models.User {
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	suite.Require().NoError(err)
	return &models.User{
		BaseModel:     models.BaseModel{ID: uuid.New()},
		Email:         "dave@example.com",
		PasswordHash:  string(hash),
		DisplayName:   "Dave",
		EmailVerified: true,
	}
}

// TestSignUp tests account creation with roster sync and verification mail
func (suite *AuthServiceTestSuite) TestSignUp() {
	suite.mockUsers.EXPECT().GetByEmail("dave@example.com").Return(nil, gorm.ErrRecordNotFound)

	var created *models.User
	suite.mockUsers.EXPECT().Create(gomock.Any()).DoAndReturn(func(user *models.User) error {
		user.ID = uuid.New()
		created = user
		return nil
	})

	response, err := suite.service.SignUp("dave@example.com", "hunter22", "Dave")

	suite.NoError(err)
	suite.NotEmpty(response.AccessToken)
	suite.NotEmpty(response.RefreshToken)
	suite.Equal("bearer", response.TokenType)
	suite.Equal("Dave", response.Profile.DisplayName)
	suite.False(response.Profile.EmailVerified)

	// Password is stored hashed
	suite.NoError(bcrypt.CompareHashAndPassword([]byte(created.PasswordHash), []byte("hunter22")))

	// Roster entry created with the account id
	suite.Equal(created.ID, suite.roster.id)
	suite.Equal("Dave", suite.roster.name)

	// Verification mail sent with a tokenized link
	suite.Equal("dave@example.com", suite.mailer.email)
	suite.Contains(suite.mailer.link, "http://localhost:3000/verify?token=")
}

// TestSignUpDuplicateEmail tests rejection of an existing email
func (suite *AuthServiceTestSuite) TestSignUpDuplicateEmail() {
	suite.mockUsers.EXPECT().GetByEmail("dave@example.com").Return(suite.userWithPassword("x"), nil)

	_, err := suite.service.SignUp("dave@example.com", "hunter22", "Dave")

	suite.ErrorIs(err, apperrors.ErrEmailExists)
}

// TestSignUpWeakPassword tests the minimum password length
func (suite *AuthServiceTestSuite) TestSignUpWeakPassword() {
	_, err := suite.service.SignUp("dave@example.com", "abc", "Dave")

	suite.ErrorIs(err, apperrors.ErrWeakPassword)
}

// TestSignIn tests successful authentication
func (suite *AuthServiceTestSuite) TestSignIn() {
	user := suite.userWithPassword("hunter22")
	suite.mockUsers.EXPECT().GetByEmail(user.Email).Return(user, nil)

	response, err := suite.service.SignIn(user.Email, "hunter22")

	suite.NoError(err)
	suite.NotEmpty(response.AccessToken)
	suite.Equal(user.ID, response.Profile.ID)
}

// TestSignInWrongPassword tests the credentials error
func (suite *AuthServiceTestSuite) TestSignInWrongPassword() {
	user := suite.userWithPassword("hunter22")
	suite.mockUsers.EXPECT().GetByEmail(user.Email).Return(user, nil)

	_, err := suite.service.SignIn(user.Email, "wrong")

	suite.ErrorIs(err, apperrors.ErrInvalidCredentials)
}

// TestSignInUnknownEmail tests that unknown emails report the same error as
// wrong passwords
func (suite *AuthServiceTestSuite) TestSignInUnknownEmail() {
	suite.mockUsers.EXPECT().GetByEmail("ghost@example.com").Return(nil, gorm.ErrRecordNotFound)

	_, err := suite.service.SignIn("ghost@example.com", "whatever")

	suite.ErrorIs(err, apperrors.ErrInvalidCredentials)
}

// TestSignInDisabledAccount tests the disabled account error
func (suite *AuthServiceTestSuite) TestSignInDisabledAccount() {
	user := suite.userWithPassword("hunter22")
	user.Disabled = true
	suite.mockUsers.EXPECT().GetByEmail(user.Email).Return(user, nil)

	_, err := suite.service.SignIn(user.Email, "hunter22")

	suite.ErrorIs(err, apperrors.ErrAccountDisabled)
}

// TestSignInRateLimit tests lockout after repeated failures
func (suite *AuthServiceTestSuite) TestSignInRateLimit() {
	user := suite.userWithPassword("hunter22")
	suite.mockUsers.EXPECT().GetByEmail(user.Email).Return(user, nil).Times(maxFailedLogins)

	for i := 0; i < maxFailedLogins; i++ {
		_, err := suite.service.SignIn(user.Email, "wrong")
		suite.ErrorIs(err, apperrors.ErrInvalidCredentials)
	}

	// The next attempt is blocked before the password is even checked
	_, err := suite.service.SignIn(user.Email, "hunter22")
	suite.ErrorIs(err, apperrors.ErrTooManyAttempts)
}

// TestSignInClearsFailuresOnSuccess tests that a success resets the counter
func (suite *AuthServiceTestSuite) TestSignInClearsFailuresOnSuccess() {
	user := suite.userWithPassword("hunter22")
	suite.mockUsers.EXPECT().GetByEmail(user.Email).Return(user, nil).Times(maxFailedLogins + 1)

	for i := 0; i < maxFailedLogins-1; i++ {
		_, err := suite.service.SignIn(user.Email, "wrong")
		suite.ErrorIs(err, apperrors.ErrInvalidCredentials)
	}

	_, err := suite.service.SignIn(user.Email, "hunter22")
	suite.NoError(err)

	// Counter restarts after the successful attempt
	_, err = suite.service.SignIn(user.Email, "wrong")
	suite.ErrorIs(err, apperrors.ErrInvalidCredentials)
}

// TestRefresh tests exchanging a refresh token for a new access token
func (suite *AuthServiceTestSuite) TestRefresh() {
	user := suite.userWithPassword("hunter22")
	suite.mockUsers.EXPECT().GetByEmail(user.Email).Return(user, nil)

	signIn, err := suite.service.SignIn(user.Email, "hunter22")
	suite.Require().NoError(err)

	suite.mockUsers.EXPECT().GetByID(user.ID).Return(user, nil)

	refreshed, err := suite.service.Refresh(signIn.RefreshToken)

	suite.NoError(err)
	suite.NotEmpty(refreshed.AccessToken)
}

// TestRefreshInvalidToken tests rejection of unknown refresh tokens
func (suite *AuthServiceTestSuite) TestRefreshInvalidToken() {
	_, err := suite.service.Refresh("not-a-token")

	suite.ErrorIs(err, apperrors.ErrInvalidRefreshToken)
}

// TestSignOut tests that a signed-out refresh token stops working
func (suite *AuthServiceTestSuite) TestSignOut() {
	user := suite.userWithPassword("hunter22")
	suite.mockUsers.EXPECT().GetByEmail(user.Email).Return(user, nil)

	signIn, err := suite.service.SignIn(user.Email, "hunter22")
	suite.Require().NoError(err)

	suite.service.SignOut(signIn.RefreshToken)

	_, err = suite.service.Refresh(signIn.RefreshToken)
	suite.ErrorIs(err, apperrors.ErrInvalidRefreshToken)
}

// TestVerifyEmail tests the full verification round trip
func (suite *AuthServiceTestSuite) TestVerifyEmail() {
	user := suite.userWithPassword("hunter22")
	user.EmailVerified = false

	suite.Require().NoError(suite.service.SendVerificationEmail(user))
	token := strings.TrimPrefix(suite.mailer.link, "http://localhost:3000/verify?token=")
	suite.Require().NotEmpty(token)

	suite.mockUsers.EXPECT().GetByID(user.ID).Return(user, nil)
	suite.mockUsers.EXPECT().Update(gomock.Any()).DoAndReturn(func(updated *models.User) error {
		suite.True(updated.EmailVerified)
		return nil
	})

	suite.NoError(suite.service.VerifyEmail(token))

	// A token is single use
	suite.ErrorIs(suite.service.VerifyEmail(token), apperrors.ErrInvalidVerificationToken)
}

// TestVerifyEmailInvalidToken tests rejection of unknown tokens
func (suite *AuthServiceTestSuite) TestVerifyEmailInvalidToken() {
	suite.ErrorIs(suite.service.VerifyEmail("bogus"), apperrors.ErrInvalidVerificationToken)
}

// TestUpdateDisplayName tests the profile change with roster sync
func (suite *AuthServiceTestSuite) TestUpdateDisplayName() {
	user := suite.userWithPassword("hunter22")
	suite.mockUsers.EXPECT().Update(user).Return(nil)

	suite.NoError(suite.service.UpdateDisplayName(user, "David"))

	suite.Equal("David", user.DisplayName)
	suite.Equal(user.ID, suite.roster.id)
	suite.Equal("David", suite.roster.name)
}

// TestUpdatePassword tests changing the password
func (suite *AuthServiceTestSuite) TestUpdatePassword() {
	user := suite.userWithPassword("hunter22")
	suite.mockUsers.EXPECT().Update(user).Return(nil)

	suite.NoError(suite.service.UpdatePassword(user, "hunter22", "correcthorse"))
	suite.NoError(bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte("correcthorse")))
}

// TestUpdatePasswordWrongCurrent tests rejection when the current password is wrong
func (suite *AuthServiceTestSuite) TestUpdatePasswordWrongCurrent() {
	user := suite.userWithPassword("hunter22")

	err := suite.service.UpdatePassword(user, "wrong", "correcthorse")

	suite.ErrorIs(err, apperrors.ErrInvalidCredentials)
}

// TestValidateJWT tests the claims round trip
func (suite *AuthServiceTestSuite) TestValidateJWT() {
	user := suite.userWithPassword("hunter22")
	suite.mockUsers.EXPECT().GetByEmail(user.Email).Return(user, nil)

	signIn, err := suite.service.SignIn(user.Email, "hunter22")
	suite.Require().NoError(err)

	claims, err := suite.service.ValidateJWT(signIn.AccessToken)

	suite.NoError(err)
	suite.Equal(user.ID, claims.UserID)
	suite.Equal(user.Email, claims.Email)
	suite.True(claims.EmailVerified)
}

// TestValidateJWTGarbage tests rejection of malformed tokens
func (suite *AuthServiceTestSuite) TestValidateJWTGarbage() {
	_, err := suite.service.ValidateJWT("garbage.token.here")

	suite.Error(err)
}

// TestAuthServiceTestSuite runs the test suite
func TestAuthServiceTestSuite(t *testing.T) {
	suite.Run(t, new(AuthServiceTestSuite))
}
