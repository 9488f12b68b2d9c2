package service

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"band-scheduler-backend/internal/database/models"
	apperrors "band-scheduler-backend/internal/errors"
	"band-scheduler-backend/internal/logger"
	"band-scheduler-backend/internal/repository"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

// GigService handles business logic for gigs: validation of writes, the
// lifecycle rule applied on reads, and the derived availability views.
type GigService struct {
	repo      repository.GigRepositoryInterface
	bandRepo  repository.BandMemberRepositoryInterface
	policy    *PolicyService
	validator *validator.Validate
	publisher EventPublisher
	log       *logger.Logger
}

// NewGigService creates a new gig service
func NewGigService(
	repo repository.GigRepositoryInterface,
	bandRepo repository.BandMemberRepositoryInterface,
	policy *PolicyService,
	validator *validator.Validate,
	publisher EventPublisher,
) *GigService {
	return &GigService{
		repo:      repo,
		bandRepo:  bandRepo,
		policy:    policy,
		validator: validator,
		publisher: publisher,
		log:       logger.New(),
	}
}

// GigRequest carries the full set of editable gig fields. Creation and
// whole-gig edits share this shape; availability-only updates use
// SetAvailabilityRequest instead and never re-validate these fields.
type GigRequest struct {
	Name        string   `json:"name" validate:"max=200"`
	Date        string   `json:"date"`
	IsWholeDay  bool     `json:"isWholeDay"`
	StartTime   *string  `json:"startTime"`
	EndTime     *string  `json:"endTime"`
	Status      string   `json:"status"`
	Location    *string  `json:"location" validate:"omitempty,max=200"`
	Pay         *float64 `json:"pay" validate:"omitempty,gte=0"`
	Description *string  `json:"description" validate:"omitempty,max=2000"`
}

// SetAvailabilityRequest carries one member's response to one gig
type SetAvailabilityRequest struct {
	Status   string  `json:"status"`
	Note     *string `json:"note" validate:"omitempty,max=500"`
	CanDrive *bool   `json:"canDrive"`
}

// GigResponse is a gig together with its derived views
type GigResponse struct {
	ID                     uuid.UUID                `json:"id"`
	Name                   string                   `json:"name"`
	Date                   string                   `json:"date"`
	IsWholeDay             bool                     `json:"isWholeDay"`
	StartTime              *string                  `json:"startTime"`
	EndTime                *string                  `json:"endTime"`
	Status                 string                   `json:"status"`
	Location               *string                  `json:"location,omitempty"`
	Pay                    *float64                 `json:"pay,omitempty"`
	Description            *string                  `json:"description,omitempty"`
	MemberAvailability     models.AvailabilityMap   `json:"memberAvailability"`
	CreatedBy              uuid.UUID                `json:"createdBy"`
	DriverCount            int                      `json:"driverCount"`
	InstrumentAvailability []InstrumentAvailability `json:"instrumentAvailability"`
	CreatedAt              string                   `json:"created_at"`
	UpdatedAt              string                   `json:"updated_at"`
}

// CreateGig validates and persists a new gig for a verified actor
func (s *GigService) CreateGig(actor *models.User, req *GigRequest) (*GigResponse, error) {
	if err := s.policy.RequireVerified(actor); err != nil {
		return nil, err
	}

	gig := s.buildGig(req)
	gig.CreatedBy = actor.ID

	if err := s.validateAndNormalize(gig, nil); err != nil {
		return nil, err
	}
	if err := s.validator.Struct(req); err != nil {
		return nil, fmt.Errorf("validation failed: %w", err)
	}

	if err := s.repo.Create(gig); err != nil {
		return nil, fmt.Errorf("failed to create gig: %w", err)
	}

	s.publish("gig.created", gig)
	return s.convertToResponse(gig, s.roster()), nil
}

// UpdateGig validates and persists a whole-gig edit. Only the creator may
// edit full gig fields; the stored availability map is carried over
// untouched.
func (s *GigService) UpdateGig(actor *models.User, id uuid.UUID, req *GigRequest) (*GigResponse, error) {
	if err := s.policy.RequireVerified(actor); err != nil {
		return nil, err
	}

	original, err := s.repo.GetByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrGigNotFound
		}
		return nil, fmt.Errorf("failed to load gig: %w", err)
	}

	if err := s.policy.RequireGigOwner(actor, original); err != nil {
		return nil, err
	}

	candidate := s.buildGig(req)
	candidate.ID = original.ID
	candidate.CreatedAt = original.CreatedAt
	candidate.CreatedBy = original.CreatedBy
	candidate.MemberAvailability = original.MemberAvailability

	if err := s.validateAndNormalize(candidate, original); err != nil {
		return nil, err
	}
	if err := s.validator.Struct(req); err != nil {
		return nil, fmt.Errorf("validation failed: %w", err)
	}

	if err := s.repo.Update(candidate); err != nil {
		return nil, fmt.Errorf("failed to update gig: %w", err)
	}

	s.publish("gig.updated", candidate)
	return s.convertToResponse(candidate, s.roster()), nil
}

// SetAvailability upserts the acting member's availability record on a gig.
// This path skips gig validation entirely and merges only the member's own
// key, so concurrent responses from different members never conflict.
func (s *GigService) SetAvailability(actor *models.User, gigID uuid.UUID, req *SetAvailabilityRequest) error {
	if err := s.policy.RequireVerified(actor); err != nil {
		return err
	}
	if err := s.validator.Struct(req); err != nil {
		return fmt.Errorf("validation failed: %w", err)
	}

	record := models.AvailabilityRecord{
		Status: models.AvailabilityStatus(req.Status),
	}
	if req.Status != "" && !record.Status.IsValid() {
		return apperrors.ErrInvalidAvailability
	}
	if req.Note != nil {
		record.Note = *req.Note
	}
	if req.CanDrive != nil {
		record.CanDrive = *req.CanDrive
	}
	record = record.Normalize()

	err := s.repo.SetAvailability(gigID, actor.ID.String(), record)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return apperrors.ErrGigNotFound
		}
		return fmt.Errorf("failed to set availability: %w", err)
	}

	s.publish("availability.updated", map[string]interface{}{
		"gig_id":    gigID,
		"member_id": actor.ID,
		"record":    record,
	})
	return nil
}

// GetGig retrieves a gig, applying the lifecycle rule before returning it
func (s *GigService) GetGig(id uuid.UUID) (*GigResponse, error) {
	gig, err := s.GetGigRecord(id)
	if err != nil {
		return nil, err
	}
	return s.convertToResponse(gig, s.roster()), nil
}

// GetGigRecord retrieves the stored gig with the lifecycle rule applied but
// without the derived views. Calendar exports read through this path.
func (s *GigService) GetGigRecord(id uuid.UUID) (*models.Gig, error) {
	gig, err := s.repo.GetByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrGigNotFound
		}
		return nil, fmt.Errorf("failed to load gig: %w", err)
	}

	s.applyAutoCompletion(gig)
	return gig, nil
}

// ListGigs retrieves gigs ascending by date. Scope may be "upcoming" or
// "past"; the boundary is end of day relative to now. The lifecycle rule is
// applied to every gig read.
func (s *GigService) ListGigs(scope string) ([]GigResponse, error) {
	gigs, err := s.repo.GetAll()
	if err != nil {
		return nil, fmt.Errorf("failed to list gigs: %w", err)
	}

	roster := s.roster()
	now := time.Now()
	responses := make([]GigResponse, 0, len(gigs))
	for i := range gigs {
		s.applyAutoCompletion(&gigs[i])
		switch scope {
		case "upcoming":
			if gigs[i].IsPast(now) {
				continue
			}
		case "past":
			if !gigs[i].IsPast(now) {
				continue
			}
		}
		responses = append(responses, *s.convertToResponse(&gigs[i], roster))
	}
	return responses, nil
}

// applyAutoCompletion rewrites a confirmed gig whose day has fully elapsed to
// completed, as a side effect of the read. Pending and declined gigs are left
// alone; completed is terminal, so re-running the check never changes state.
// The write-back is fire-and-forget: concurrent identical rewrites by other
// readers are idempotent.
func (s *GigService) applyAutoCompletion(gig *models.Gig) {
	if gig.Status != models.GigStatusConfirmed || !gig.IsPast(time.Now()) {
		return
	}

	gig.Status = models.GigStatusCompleted
	if err := s.repo.UpdateStatus(gig.ID, models.GigStatusCompleted); err != nil {
		s.log.WithField("gig_id", gig.ID).Warnf("auto-completion write-back failed: %v", err)
		return
	}
	s.publish("gig.completed", map[string]interface{}{"gig_id": gig.ID})
}

// validateAndNormalize enforces the gig invariants in order, first failure
// wins, then normalizes the candidate in place.
func (s *GigService) validateAndNormalize(candidate *models.Gig, original *models.Gig) error {
	candidate.Name = strings.TrimSpace(candidate.Name)
	if candidate.Name == "" {
		return apperrors.ErrGigNameRequired
	}

	if candidate.Date == "" {
		return apperrors.ErrGigDateRequired
	}
	gigEnd, err := candidate.EndOfDay()
	if err != nil {
		return apperrors.ErrGigDateInvalid
	}

	// A past date is only acceptable on update when it is the original,
	// unchanged date. Editing other fields of an elapsed gig stays legal.
	now := time.Now()
	today := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, time.Local)
	if gigEnd.Before(today) {
		if original == nil || candidate.Date != original.Date {
			return apperrors.ErrGigDateInPast
		}
	}

	if !candidate.IsWholeDay && candidate.StartTime != nil && candidate.EndTime != nil {
		start, err1 := time.Parse(models.GigTimeLayout, *candidate.StartTime)
		end, err2 := time.Parse(models.GigTimeLayout, *candidate.EndTime)
		if err1 != nil || err2 != nil {
			return apperrors.ErrInvalidTimeFormat
		}
		if !start.Before(end) {
			return apperrors.ErrInvalidTimeRange
		}
	}

	if candidate.Status == "" {
		candidate.Status = models.GigStatusPending
	}
	if !candidate.Status.IsValid() {
		return apperrors.ErrInvalidGigStatus
	}
	// Terminal states are reached only through the lifecycle rule, never
	// through the edit path. An already-completed gig may echo its status back.
	if candidate.Status.IsTerminal() {
		if original == nil || !original.Status.IsTerminal() {
			return apperrors.ErrInvalidGigStatus
		}
	}

	if candidate.IsWholeDay {
		candidate.StartTime = nil
		candidate.EndTime = nil
	}
	if candidate.Description != nil {
		trimmed := strings.TrimSpace(*candidate.Description)
		if trimmed == "" {
			candidate.Description = nil
		} else {
			candidate.Description = &trimmed
		}
	}
	if candidate.Pay != nil && *candidate.Pay == 0 {
		candidate.Pay = nil
	}
	if candidate.MemberAvailability == nil {
		candidate.MemberAvailability = models.AvailabilityMap{}
	}

	return nil
}

func (s *GigService) buildGig(req *GigRequest) *models.Gig {
	return &models.Gig{
		Name:        req.Name,
		Date:        req.Date,
		IsWholeDay:  req.IsWholeDay,
		StartTime:   req.StartTime,
		EndTime:     req.EndTime,
		Status:      models.GigStatus(req.Status),
		Location:    req.Location,
		Pay:         req.Pay,
		Description: req.Description,
	}
}

// roster fetches the band roster for the derived views. A read failure
// degrades to empty views rather than failing the gig read.
func (s *GigService) roster() []models.BandMember {
	members, err := s.bandRepo.GetAll()
	if err != nil {
		s.log.Warnf("failed to load roster for derived views: %v", err)
		return nil
	}
	return members
}

func (s *GigService) convertToResponse(gig *models.Gig, roster []models.BandMember) *GigResponse {
	return &GigResponse{
		ID:                     gig.ID,
		Name:                   gig.Name,
		Date:                   gig.Date,
		IsWholeDay:             gig.IsWholeDay,
		StartTime:              gig.StartTime,
		EndTime:                gig.EndTime,
		Status:                 string(gig.Status),
		Location:               gig.Location,
		Pay:                    gig.Pay,
		Description:            gig.Description,
		MemberAvailability:     gig.MemberAvailability,
		CreatedBy:              gig.CreatedBy,
		DriverCount:            DriverCount(gig.MemberAvailability),
		InstrumentAvailability: InstrumentBreakdown(roster, gig.MemberAvailability),
		CreatedAt:              gig.CreatedAt.Format(time.RFC3339),
		UpdatedAt:              gig.UpdatedAt.Format(time.RFC3339),
	}
}

func (s *GigService) publish(eventType string, data interface{}) {
	if s.publisher != nil {
		s.publisher.Publish(eventType, data)
	}
}
