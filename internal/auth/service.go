package auth

import (
	"crypto/rand"
	"encoding/base64"
	"errors"
	"fmt"
	"sync"
	"time"

	"band-scheduler-backend/internal/database/models"
	apperrors "band-scheduler-backend/internal/errors"
	"band-scheduler-backend/internal/logger"
	"band-scheduler-backend/internal/repository"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

const (
	maxFailedLogins    = 5
	failedLoginWindow  = 15 * time.Minute
	minPasswordLength  = 6
	refreshTokenExpiry = 30 * 24 * time.Hour
)

// RosterSync keeps the band roster's display names aligned with accounts.
// Implemented by the band service.
type RosterSync interface {
	SyncMemberName(id uuid.UUID, name string) error
}

// Mailer delivers verification mail. The development implementation just
// logs the link.
type Mailer interface {
	SendVerificationEmail(email, link string) error
}

// LogMailer logs verification links instead of sending mail
type LogMailer struct {
	log *logger.Logger
}

// NewLogMailer creates a mailer that logs verification links
func NewLogMailer() *LogMailer {
	return &LogMailer{log: logger.New()}
}

// SendVerificationEmail logs the verification link
func (m *LogMailer) SendVerificationEmail(email, link string) error {
	m.log.WithField("email", email).Infof("verification link: %s", link)
	return nil
}

// Options configures the auth service
type Options struct {
	JWTSecret           string
	TokenTTL            time.Duration
	VerificationTTL     time.Duration
	VerificationBaseURL string
}

// refreshTokenData stores information about an issued refresh token
type refreshTokenData struct {
	UserID    uuid.UUID
	ExpiresAt time.Time
	CreatedAt time.Time
}

// verificationTokenData stores a pending email verification
type verificationTokenData struct {
	UserID    uuid.UUID
	ExpiresAt time.Time
}

// loginAttempts tracks failed sign-ins per email within a window
type loginAttempts struct {
	count       int
	windowStart time.Time
}

// AuthService provides email/password authentication with verification state
type AuthService struct {
	users  repository.UserRepositoryInterface
	roster RosterSync
	mailer Mailer
	opts   Options
	log    *logger.Logger

	tokenMutex         sync.RWMutex
	refreshTokens      map[string]*refreshTokenData
	verificationTokens map[string]*verificationTokenData

	attemptsMutex sync.Mutex
	failedLogins  map[string]*loginAttempts
}

// AuthClaims represents JWT token claims
type AuthClaims struct {
	UserID        uuid.UUID `json:"user_id"`
	Email         string    `json:"email"`
	DisplayName   string    `json:"display_name"`
	EmailVerified bool      `json:"email_verified"`
	jwt.RegisteredClaims
}

// UserProfile is the identity exposed to callers
type UserProfile struct {
	ID            uuid.UUID `json:"id"`
	Email         string    `json:"email"`
	DisplayName   string    `json:"display_name"`
	EmailVerified bool      `json:"email_verified"`
}

// AuthResponse is returned on successful sign-up, sign-in and refresh
type AuthResponse struct {
	AccessToken  string      `json:"accessToken"`
	TokenType    string      `json:"tokenType"`
	ExpiresIn    int64       `json:"expiresIn"`
	RefreshToken string      `json:"refreshToken,omitempty"`
	Profile      UserProfile `json:"profile"`
}

// NewAuthService creates a new authentication service
func NewAuthService(users repository.UserRepositoryInterface, roster RosterSync, mailer Mailer, opts Options) (*AuthService, error) {
	if opts.JWTSecret == "" {
		return nil, fmt.Errorf("jwt secret is required")
	}
	if opts.TokenTTL == 0 {
		opts.TokenTTL = time.Hour
	}
	if opts.VerificationTTL == 0 {
		opts.VerificationTTL = 24 * time.Hour
	}
	if mailer == nil {
		mailer = NewLogMailer()
	}

	return &AuthService{
		users:              users,
		roster:             roster,
		mailer:             mailer,
		opts:               opts,
		log:                logger.New(),
		refreshTokens:      make(map[string]*refreshTokenData),
		verificationTokens: make(map[string]*verificationTokenData),
		failedLogins:       make(map[string]*loginAttempts),
	}, nil
}

// SignUp registers a new account, creates its roster entry and sends the
// verification mail. The account starts unverified.
func (s *AuthService) SignUp(email, password, displayName string) (*AuthResponse, error) {
	if len(password) < minPasswordLength {
		return nil, apperrors.ErrWeakPassword
	}

	if _, err := s.users.GetByEmail(email); err == nil {
		return nil, apperrors.ErrEmailExists
	} else if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, s.mapIdentityError(err)
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return nil, fmt.Errorf("failed to hash password: %w", err)
	}

	user := &models.User{
		Email:        email,
		PasswordHash: string(hash),
		DisplayName:  displayName,
	}
	if err := s.users.Create(user); err != nil {
		return nil, s.mapIdentityError(err)
	}

	// The roster entry shares the account id and starts with no instrument
	if s.roster != nil {
		if err := s.roster.SyncMemberName(user.ID, displayName); err != nil {
			s.log.WithField("user_id", user.ID).Warnf("failed to create roster entry: %v", err)
		}
	}

	if err := s.SendVerificationEmail(user); err != nil {
		s.log.WithField("user_id", user.ID).Warnf("failed to send verification email: %v", err)
	}

	return s.issueTokens(user)
}

// SignIn authenticates an account by email and password
func (s *AuthService) SignIn(email, password string) (*AuthResponse, error) {
	if s.tooManyAttempts(email) {
		return nil, apperrors.ErrTooManyAttempts
	}

	user, err := s.users.GetByEmail(email)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			s.recordFailedLogin(email)
			return nil, apperrors.ErrInvalidCredentials
		}
		return nil, s.mapIdentityError(err)
	}

	if user.Disabled {
		return nil, apperrors.ErrAccountDisabled
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(password)); err != nil {
		s.recordFailedLogin(email)
		return nil, apperrors.ErrInvalidCredentials
	}

	s.clearFailedLogins(email)
	return s.issueTokens(user)
}

// Refresh exchanges a refresh token for a fresh access token
func (s *AuthService) Refresh(refreshToken string) (*AuthResponse, error) {
	s.tokenMutex.RLock()
	data, exists := s.refreshTokens[refreshToken]
	s.tokenMutex.RUnlock()

	if !exists {
		return nil, apperrors.ErrInvalidRefreshToken
	}
	if time.Now().After(data.ExpiresAt) {
		s.tokenMutex.Lock()
		delete(s.refreshTokens, refreshToken)
		s.tokenMutex.Unlock()
		return nil, apperrors.ErrRefreshTokenExpired
	}

	user, err := s.users.GetByID(data.UserID)
	if err != nil {
		return nil, apperrors.ErrInvalidRefreshToken
	}
	if user.Disabled {
		return nil, apperrors.ErrAccountDisabled
	}

	accessToken, err := s.generateJWT(user)
	if err != nil {
		return nil, err
	}
	return &AuthResponse{
		AccessToken: accessToken,
		TokenType:   "bearer",
		ExpiresIn:   int64(s.opts.TokenTTL.Seconds()),
		Profile:     profileOf(user),
	}, nil
}

// SignOut invalidates a refresh token
func (s *AuthService) SignOut(refreshToken string) {
	s.tokenMutex.Lock()
	delete(s.refreshTokens, refreshToken)
	s.tokenMutex.Unlock()
}

// SendVerificationEmail issues a fresh verification token and mails the link
func (s *AuthService) SendVerificationEmail(user *models.User) error {
	token, err := generateOpaqueToken()
	if err != nil {
		return fmt.Errorf("failed to generate verification token: %w", err)
	}

	s.tokenMutex.Lock()
	s.verificationTokens[token] = &verificationTokenData{
		UserID:    user.ID,
		ExpiresAt: time.Now().Add(s.opts.VerificationTTL),
	}
	s.tokenMutex.Unlock()

	link := fmt.Sprintf("%s?token=%s", s.opts.VerificationBaseURL, token)
	return s.mailer.SendVerificationEmail(user.Email, link)
}

// VerifyEmail consumes a verification token and marks the account verified
func (s *AuthService) VerifyEmail(token string) error {
	s.tokenMutex.Lock()
	data, exists := s.verificationTokens[token]
	if exists {
		delete(s.verificationTokens, token)
	}
	s.tokenMutex.Unlock()

	if !exists || time.Now().After(data.ExpiresAt) {
		return apperrors.ErrInvalidVerificationToken
	}

	user, err := s.users.GetByID(data.UserID)
	if err != nil {
		return apperrors.ErrInvalidVerificationToken
	}
	user.EmailVerified = true
	if err := s.users.Update(user); err != nil {
		return s.mapIdentityError(err)
	}
	return nil
}

// UpdateDisplayName changes the account's display name and keeps the roster
// entry in sync with it
func (s *AuthService) UpdateDisplayName(user *models.User, displayName string) error {
	user.DisplayName = displayName
	if err := s.users.Update(user); err != nil {
		return s.mapIdentityError(err)
	}
	if s.roster != nil {
		if err := s.roster.SyncMemberName(user.ID, displayName); err != nil {
			s.log.WithField("user_id", user.ID).Warnf("failed to sync roster name: %v", err)
		}
	}
	return nil
}

// UpdatePassword changes the account password after checking the current one
func (s *AuthService) UpdatePassword(user *models.User, currentPassword, newPassword string) error {
	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(currentPassword)); err != nil {
		return apperrors.ErrInvalidCredentials
	}
	if len(newPassword) < minPasswordLength {
		return apperrors.ErrWeakPassword
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(newPassword), bcrypt.DefaultCost)
	if err != nil {
		return fmt.Errorf("failed to hash password: %w", err)
	}
	user.PasswordHash = string(hash)
	if err := s.users.Update(user); err != nil {
		return s.mapIdentityError(err)
	}
	return nil
}

// ValidateJWT parses and validates an access token
func (s *AuthService) ValidateJWT(tokenString string) (*AuthClaims, error) {
	claims := &AuthClaims{}
	token, err := jwt.ParseWithClaims(tokenString, claims, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", token.Header["alg"])
		}
		return []byte(s.opts.JWTSecret), nil
	})
	if err != nil {
		return nil, err
	}
	if !token.Valid {
		return nil, fmt.Errorf("invalid token")
	}
	return claims, nil
}

func (s *AuthService) issueTokens(user *models.User) (*AuthResponse, error) {
	accessToken, err := s.generateJWT(user)
	if err != nil {
		return nil, err
	}

	refreshToken, err := generateOpaqueToken()
	if err != nil {
		return nil, fmt.Errorf("failed to generate refresh token: %w", err)
	}

	s.tokenMutex.Lock()
	s.refreshTokens[refreshToken] = &refreshTokenData{
		UserID:    user.ID,
		ExpiresAt: time.Now().Add(refreshTokenExpiry),
		CreatedAt: time.Now(),
	}
	s.tokenMutex.Unlock()

	return &AuthResponse{
		AccessToken:  accessToken,
		TokenType:    "bearer",
		ExpiresIn:    int64(s.opts.TokenTTL.Seconds()),
		RefreshToken: refreshToken,
		Profile:      profileOf(user),
	}, nil
}

func (s *AuthService) generateJWT(user *models.User) (string, error) {
	now := time.Now()
	claims := &AuthClaims{
		UserID:        user.ID,
		Email:         user.Email,
		DisplayName:   user.DisplayName,
		EmailVerified: user.EmailVerified,
		RegisteredClaims: jwt.RegisteredClaims{
			Issuer:    "band-scheduler-backend",
			Subject:   user.ID.String(),
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(s.opts.TokenTTL)),
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := token.SignedString([]byte(s.opts.JWTSecret))
	if err != nil {
		return "", fmt.Errorf("failed to sign token: %w", err)
	}
	return signed, nil
}

// mapIdentityError folds store failures into the stable identity error
// category rather than leaking driver details
func (s *AuthService) mapIdentityError(err error) error {
	s.log.Errorf("identity store failure: %v", err)
	return apperrors.NewAuthenticationError("an unexpected error occurred, please try again")
}

func (s *AuthService) tooManyAttempts(email string) bool {
	s.attemptsMutex.Lock()
	defer s.attemptsMutex.Unlock()

	attempts, exists := s.failedLogins[email]
	if !exists {
		return false
	}
	if time.Since(attempts.windowStart) > failedLoginWindow {
		delete(s.failedLogins, email)
		return false
	}
	return attempts.count >= maxFailedLogins
}

func (s *AuthService) recordFailedLogin(email string) {
	s.attemptsMutex.Lock()
	defer s.attemptsMutex.Unlock()

	attempts, exists := s.failedLogins[email]
	if !exists || time.Since(attempts.windowStart) > failedLoginWindow {
		s.failedLogins[email] = &loginAttempts{count: 1, windowStart: time.Now()}
		return
	}
	attempts.count++
}

func (s *AuthService) clearFailedLogins(email string) {
	s.attemptsMutex.Lock()
	delete(s.failedLogins, email)
	s.attemptsMutex.Unlock()
}

func profileOf(user *models.User) UserProfile {
	return UserProfile{
		ID:            user.ID,
		Email:         user.Email,
		DisplayName:   user.DisplayName,
		EmailVerified: user.EmailVerified,
	}
}

func generateOpaqueToken() (string, error) {
	buf := make([]byte, 32)
	if _, err := rand.Read(buf); err != nil {
		return "", err
	}
	return base64.RawURLEncoding.EncodeToString(buf), nil
}
