package service

import (
	"band-scheduler-backend/internal/database/models"

	"github.com/google/uuid"
)

//go:generate mockgen -source=interfaces.go -destination=../mocks/service_mocks.go -package=mocks

// EventPublisher broadcasts mutation events to live subscribers. The SSE hub
// implements it; services treat it as optional.
type EventPublisher interface {
	Publish(eventType string, data interface{})
}

// GigServiceInterface defines the interface for gig service operations
type GigServiceInterface interface {
	CreateGig(actor *models.User, req *GigRequest) (*GigResponse, error)
	UpdateGig(actor *models.User, id uuid.UUID, req *GigRequest) (*GigResponse, error)
	SetAvailability(actor *models.User, gigID uuid.UUID, req *SetAvailabilityRequest) error
	GetGig(id uuid.UUID) (*GigResponse, error)
	GetGigRecord(id uuid.UUID) (*models.Gig, error)
	ListGigs(scope string) ([]GigResponse, error)
}

// BandServiceInterface defines the interface for band service operations
type BandServiceInterface interface {
	ListMembers() ([]BandMemberResponse, error)
	AddMember(actor *models.User, req *AddBandMemberRequest) (*BandMemberResponse, error)
	RemoveMember(actor *models.User, id uuid.UUID) error
	RenameMember(actor *models.User, id uuid.UUID, req *RenameBandMemberRequest) error
	SetMemberInstrument(actor *models.User, id uuid.UUID, req *SetInstrumentRequest) error
	SyncMemberName(id uuid.UUID, name string) error
	ListInstruments() ([]string, error)
	AddInstrument(actor *models.User, name string) error
	RemoveInstrument(actor *models.User, name string) error
}

// RoleServiceInterface defines the interface for role service operations
type RoleServiceInterface interface {
	GetRoles(memberID uuid.UUID) (*RoleResponse, error)
	ListRoles(actor *models.User) ([]RoleResponse, error)
	SetRole(actor *models.User, memberID uuid.UUID, req *SetRoleRequest) error
}
