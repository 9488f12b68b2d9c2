package repository

import (
	"band-scheduler-backend/internal/database/models"

	"github.com/google/uuid"
)

//go:generate mockgen -source=interfaces.go -destination=../mocks/repository_mocks.go -package=mocks

// GigRepositoryInterface defines the interface for gig repository operations
type GigRepositoryInterface interface {
	Create(gig *models.Gig) error
	GetByID(id uuid.UUID) (*models.Gig, error)
	GetAll() ([]models.Gig, error)
	Update(gig *models.Gig) error
	UpdateStatus(id uuid.UUID, status models.GigStatus) error
	SetAvailability(gigID uuid.UUID, memberID string, record models.AvailabilityRecord) error
}

// BandMemberRepositoryInterface defines the interface for band member repository operations
type BandMemberRepositoryInterface interface {
	Create(member *models.BandMember) error
	GetByID(id uuid.UUID) (*models.BandMember, error)
	GetAll() ([]models.BandMember, error)
	Delete(id uuid.UUID) error
	UpsertName(id uuid.UUID, name string) error
	UpsertInstrument(id uuid.UUID, fallbackName, instrument string) error
	CountByInstrument(instrument string) (int64, error)
}

// InstrumentRepositoryInterface defines the interface for instrument repository operations
type InstrumentRepositoryInterface interface {
	Create(instrument *models.Instrument) error
	GetAll() ([]models.Instrument, error)
	GetByName(name string) (*models.Instrument, error)
	DeleteByName(name string) (int64, error)
}

// RoleRepositoryInterface defines the interface for role repository operations
type RoleRepositoryInterface interface {
	GetByMemberID(memberID uuid.UUID) (*models.Role, error)
	GetAll() ([]models.Role, error)
	SetFlags(memberID uuid.UUID, flags map[string]bool) error
}

// UserRepositoryInterface defines the interface for user repository operations
type UserRepositoryInterface interface {
	Create(user *models.User) error
	GetByID(id uuid.UUID) (*models.User, error)
	GetByEmail(email string) (*models.User, error)
	Update(user *models.User) error
}
