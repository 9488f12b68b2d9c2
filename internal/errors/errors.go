package errors

import (
	"errors"
	"fmt"
)

// NotFoundError represents an error when an entity is not found
type NotFoundError struct {
	Entity string
}

func (e *NotFoundError) Error() string {
	return fmt.Sprintf("%s not found", e.Entity)
}

// Is enables errors.Is() comparison for NotFoundError
func (e *NotFoundError) Is(target error) bool {
	t, ok := target.(*NotFoundError)
	if !ok {
		return false
	}
	return e.Entity == t.Entity
}

// ValidationError represents a gig or roster validation failure
type ValidationError struct {
	Field   string
	Message string
}

func (e *ValidationError) Error() string {
	if e.Field != "" {
		return fmt.Sprintf("validation error: %s - %s", e.Field, e.Message)
	}
	return fmt.Sprintf("validation error: %s", e.Message)
}

// Is enables errors.Is() comparison for ValidationError
func (e *ValidationError) Is(target error) bool {
	t, ok := target.(*ValidationError)
	if !ok {
		return false
	}
	return e.Field == t.Field && e.Message == t.Message
}

// AuthenticationError represents identity failures mapped to stable,
// user-facing categories
type AuthenticationError struct {
	Message string
}

func (e *AuthenticationError) Error() string {
	return e.Message
}

// Is enables errors.Is() comparison for AuthenticationError
func (e *AuthenticationError) Is(target error) bool {
	t, ok := target.(*AuthenticationError)
	if !ok {
		return false
	}
	return e.Message == t.Message
}

// AuthorizationError represents a denied mutation with its specific reason
type AuthorizationError struct {
	Message string
}

func (e *AuthorizationError) Error() string {
	return e.Message
}

// Is enables errors.Is() comparison for AuthorizationError
func (e *AuthorizationError) Is(target error) bool {
	t, ok := target.(*AuthorizationError)
	if !ok {
		return false
	}
	return e.Message == t.Message
}

// Entity Not Found Errors
var (
	ErrGigNotFound        = &NotFoundError{Entity: "gig"}
	ErrBandMemberNotFound = &NotFoundError{Entity: "band member"}
	ErrInstrumentNotFound = &NotFoundError{Entity: "instrument"}
	ErrUserNotFound       = &NotFoundError{Entity: "user"}
	ErrRoleNotFound       = &NotFoundError{Entity: "role"}
)

// Gig Validation Errors, in the order the validation engine applies them
var (
	ErrGigNameRequired     = &ValidationError{Field: "name", Message: "gig name is required"}
	ErrGigDateRequired     = &ValidationError{Field: "date", Message: "gig date is required"}
	ErrGigDateInvalid      = &ValidationError{Field: "date", Message: "gig date must be formatted as YYYY-MM-DD"}
	ErrGigDateInPast       = &ValidationError{Field: "date", Message: "gig date cannot be in the past"}
	ErrInvalidTimeRange    = &ValidationError{Field: "endTime", Message: "end time must be after start time"}
	ErrInvalidTimeFormat   = &ValidationError{Field: "startTime", Message: "times must be formatted as HH:MM"}
	ErrInvalidGigStatus    = &ValidationError{Field: "status", Message: "invalid gig status"}
	ErrUnknownInstrument   = &ValidationError{Field: "instrument", Message: "instrument is not registered"}
	ErrInvalidAvailability = &ValidationError{Field: "status", Message: "invalid availability status"}
)

// Authorization Errors
var (
	ErrNotVerified     = &AuthorizationError{Message: "email verification required"}
	ErrNotGigOwner     = &AuthorizationError{Message: "only the gig creator can edit gig details"}
	ErrSelfRemoval     = &AuthorizationError{Message: "you cannot remove yourself from the band"}
	ErrInstrumentInUse = &AuthorizationError{Message: "cannot remove an instrument that is currently in use"}
	ErrNotAdmin        = &AuthorizationError{Message: "admin role required"}
)

// Identity Errors
var (
	ErrInvalidCredentials       = &AuthenticationError{Message: "invalid email or password"}
	ErrAccountDisabled          = &AuthenticationError{Message: "this account has been disabled"}
	ErrTooManyAttempts          = &AuthenticationError{Message: "too many failed login attempts, please try again later"}
	ErrEmailExists              = &AuthenticationError{Message: "this email is already registered"}
	ErrWeakPassword             = &AuthenticationError{Message: "password must be at least 6 characters long"}
	ErrInvalidVerificationToken = &AuthenticationError{Message: "invalid or expired verification token"}
	ErrInvalidRefreshToken      = &AuthenticationError{Message: "invalid refresh token"}
	ErrRefreshTokenExpired      = &AuthenticationError{Message: "refresh token has expired"}
)

// Helper Functions

// IsNotFound checks if an error is a NotFoundError
func IsNotFound(err error) bool {
	var notFoundErr *NotFoundError
	return errors.As(err, &notFoundErr)
}

// IsValidation checks if an error is a ValidationError
func IsValidation(err error) bool {
	var validationErr *ValidationError
	return errors.As(err, &validationErr)
}

// IsAuthentication checks if an error is an AuthenticationError
func IsAuthentication(err error) bool {
	var authErr *AuthenticationError
	return errors.As(err, &authErr)
}

// IsAuthorization checks if an error is an AuthorizationError
func IsAuthorization(err error) bool {
	var authzErr *AuthorizationError
	return errors.As(err, &authzErr)
}

// NewNotFoundError creates a new NotFoundError for a custom entity
func NewNotFoundError(entity string) error {
	return &NotFoundError{Entity: entity}
}

// NewValidationError creates a new ValidationError
func NewValidationError(field, message string) error {
	return &ValidationError{Field: field, Message: message}
}

// NewAuthenticationError creates a new AuthenticationError
func NewAuthenticationError(message string) error {
	return &AuthenticationError{Message: message}
}

// NewAuthorizationError creates a new AuthorizationError
func NewAuthorizationError(message string) error {
	return &AuthorizationError{Message: message}
}
