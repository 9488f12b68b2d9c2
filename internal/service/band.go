package service

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"band-scheduler-backend/internal/database/models"
	apperrors "band-scheduler-backend/internal/errors"
	"band-scheduler-backend/internal/repository"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

// BandService handles business logic for the roster and the instrument list
type BandService struct {
	bandRepo       repository.BandMemberRepositoryInterface
	instrumentRepo repository.InstrumentRepositoryInterface
	policy         *PolicyService
	validator      *validator.Validate
	publisher      EventPublisher
}

// NewBandService creates a new band service
func NewBandService(
	bandRepo repository.BandMemberRepositoryInterface,
	instrumentRepo repository.InstrumentRepositoryInterface,
	policy *PolicyService,
	validator *validator.Validate,
	publisher EventPublisher,
) *BandService {
	return &BandService{
		bandRepo:       bandRepo,
		instrumentRepo: instrumentRepo,
		policy:         policy,
		validator:      validator,
		publisher:      publisher,
	}
}

// AddBandMemberRequest represents the data needed to add a roster entry
type AddBandMemberRequest struct {
	Name       string `json:"name" validate:"required,max=200"`
	Instrument string `json:"instrument" validate:"max=100"`
}

// RenameBandMemberRequest carries a member's new display name
type RenameBandMemberRequest struct {
	Name string `json:"name" validate:"required,max=200"`
}

// SetInstrumentRequest carries a member's instrument assignment
type SetInstrumentRequest struct {
	Instrument string `json:"instrument" validate:"max=100"`
}

// BandMemberResponse represents the response data for a roster entry
type BandMemberResponse struct {
	ID         uuid.UUID `json:"id"`
	Name       string    `json:"name"`
	Instrument string    `json:"instrument"`
	CreatedAt  string    `json:"created_at"`
	UpdatedAt  string    `json:"updated_at"`
}

// ListMembers retrieves the whole roster
func (s *BandService) ListMembers() ([]BandMemberResponse, error) {
	members, err := s.bandRepo.GetAll()
	if err != nil {
		return nil, fmt.Errorf("failed to list band members: %w", err)
	}
	responses := make([]BandMemberResponse, len(members))
	for i, member := range members {
		responses[i] = *convertMemberToResponse(&member)
	}
	return responses, nil
}

// AddMember adds a roster entry for a verified actor. The instrument must be
// empty or already registered.
func (s *BandService) AddMember(actor *models.User, req *AddBandMemberRequest) (*BandMemberResponse, error) {
	if err := s.policy.RequireVerified(actor); err != nil {
		return nil, err
	}
	if err := s.validator.Struct(req); err != nil {
		return nil, fmt.Errorf("validation failed: %w", err)
	}
	if err := s.requireRegisteredInstrument(req.Instrument); err != nil {
		return nil, err
	}

	member := &models.BandMember{
		ID:         uuid.New(),
		Name:       strings.TrimSpace(req.Name),
		Instrument: req.Instrument,
	}
	if err := s.bandRepo.Create(member); err != nil {
		return nil, fmt.Errorf("failed to add band member: %w", err)
	}

	s.publish("member.added", member)
	return convertMemberToResponse(member), nil
}

// RemoveMember removes a roster entry. Removing oneself is forbidden.
func (s *BandService) RemoveMember(actor *models.User, id uuid.UUID) error {
	if err := s.policy.RequireVerified(actor); err != nil {
		return err
	}
	if err := s.policy.RequireNotSelf(actor, id); err != nil {
		return err
	}

	if err := s.bandRepo.Delete(id); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return apperrors.ErrBandMemberNotFound
		}
		return fmt.Errorf("failed to remove band member: %w", err)
	}

	s.publish("member.removed", map[string]interface{}{"member_id": id})
	return nil
}

// RenameMember writes a member's display name, creating the roster entry if
// absent.
func (s *BandService) RenameMember(actor *models.User, id uuid.UUID, req *RenameBandMemberRequest) error {
	if err := s.policy.RequireVerified(actor); err != nil {
		return err
	}
	if err := s.validator.Struct(req); err != nil {
		return fmt.Errorf("validation failed: %w", err)
	}

	if err := s.bandRepo.UpsertName(id, strings.TrimSpace(req.Name)); err != nil {
		return fmt.Errorf("failed to rename band member: %w", err)
	}

	s.publish("member.updated", map[string]interface{}{"member_id": id})
	return nil
}

// SetMemberInstrument assigns an instrument, creating the roster entry with
// the actor's display name if absent.
func (s *BandService) SetMemberInstrument(actor *models.User, id uuid.UUID, req *SetInstrumentRequest) error {
	if err := s.policy.RequireVerified(actor); err != nil {
		return err
	}
	if err := s.validator.Struct(req); err != nil {
		return fmt.Errorf("validation failed: %w", err)
	}
	if err := s.requireRegisteredInstrument(req.Instrument); err != nil {
		return err
	}

	if err := s.bandRepo.UpsertInstrument(id, actor.DisplayName, req.Instrument); err != nil {
		return fmt.Errorf("failed to set instrument: %w", err)
	}

	s.publish("member.updated", map[string]interface{}{"member_id": id})
	return nil
}

// SyncMemberName keeps the roster entry's name aligned with the account's
// display name. Called from the identity layer, so it carries no policy gate.
func (s *BandService) SyncMemberName(id uuid.UUID, name string) error {
	return s.bandRepo.UpsertName(id, strings.TrimSpace(name))
}

// ListInstruments retrieves the registered instrument names
func (s *BandService) ListInstruments() ([]string, error) {
	instruments, err := s.instrumentRepo.GetAll()
	if err != nil {
		return nil, fmt.Errorf("failed to list instruments: %w", err)
	}
	names := make([]string, len(instruments))
	for i, instrument := range instruments {
		names[i] = instrument.Name
	}
	return names, nil
}

// AddInstrument registers an instrument. Adding a name that already exists
// after trimming is a silent no-op, not an error.
func (s *BandService) AddInstrument(actor *models.User, name string) error {
	if err := s.policy.RequireVerified(actor); err != nil {
		return err
	}
	trimmed := strings.TrimSpace(name)
	if trimmed == "" {
		return apperrors.NewValidationError("name", "instrument name is required")
	}

	if _, err := s.instrumentRepo.GetByName(trimmed); err == nil {
		return nil
	} else if !errors.Is(err, gorm.ErrRecordNotFound) {
		return fmt.Errorf("failed to check instrument: %w", err)
	}

	if err := s.instrumentRepo.Create(&models.Instrument{Name: trimmed}); err != nil {
		return fmt.Errorf("failed to add instrument: %w", err)
	}

	s.publish("instrument.added", map[string]interface{}{"name": trimmed})
	return nil
}

// RemoveInstrument removes a registered instrument unless a roster entry
// still uses it
func (s *BandService) RemoveInstrument(actor *models.User, name string) error {
	if err := s.policy.RequireVerified(actor); err != nil {
		return err
	}
	if err := s.policy.RequireInstrumentUnused(name); err != nil {
		return err
	}

	deleted, err := s.instrumentRepo.DeleteByName(name)
	if err != nil {
		return fmt.Errorf("failed to remove instrument: %w", err)
	}
	if deleted == 0 {
		return apperrors.ErrInstrumentNotFound
	}

	s.publish("instrument.removed", map[string]interface{}{"name": name})
	return nil
}

// requireRegisteredInstrument allows the empty instrument (unassigned) or a
// name present in the instrument list
func (s *BandService) requireRegisteredInstrument(name string) error {
	if name == "" {
		return nil
	}
	if _, err := s.instrumentRepo.GetByName(name); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return apperrors.ErrUnknownInstrument
		}
		return fmt.Errorf("failed to check instrument: %w", err)
	}
	return nil
}

func convertMemberToResponse(member *models.BandMember) *BandMemberResponse {
	return &BandMemberResponse{
		ID:         member.ID,
		Name:       member.Name,
		Instrument: member.Instrument,
		CreatedAt:  member.CreatedAt.Format(time.RFC3339),
		UpdatedAt:  member.UpdatedAt.Format(time.RFC3339),
	}
}

func (s *BandService) publish(eventType string, data interface{}) {
	if s.publisher != nil {
		s.publisher.Publish(eventType, data)
	}
}
