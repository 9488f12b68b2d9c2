package service

import (
	"band-scheduler-backend/internal/database/models"
	apperrors "band-scheduler-backend/internal/errors"
	"band-scheduler-backend/internal/repository"

	"github.com/google/uuid"
)

// PolicyService decides which mutations an actor may perform. Every denial
// carries a specific reason; the gate never silently no-ops.
type PolicyService struct {
	bandRepo repository.BandMemberRepositoryInterface
	roleRepo repository.RoleRepositoryInterface
}

// NewPolicyService creates a new policy service
func NewPolicyService(bandRepo repository.BandMemberRepositoryInterface, roleRepo repository.RoleRepositoryInterface) *PolicyService {
	return &PolicyService{
		bandRepo: bandRepo,
		roleRepo: roleRepo,
	}
}

// RequireVerified denies any mutation from an actor whose email is not
// confirmed. All gig, roster, instrument and availability mutations pass
// through this check.
func (p *PolicyService) RequireVerified(actor *models.User) error {
	if actor == nil || !actor.EmailVerified {
		return apperrors.ErrNotVerified
	}
	return nil
}

// RequireGigOwner allows full-field gig edits only for the creator
func (p *PolicyService) RequireGigOwner(actor *models.User, gig *models.Gig) error {
	if actor == nil || gig.CreatedBy != actor.ID {
		return apperrors.ErrNotGigOwner
	}
	return nil
}

// RequireNotSelf denies removing one's own roster entry
func (p *PolicyService) RequireNotSelf(actor *models.User, target uuid.UUID) error {
	if actor != nil && actor.ID == target {
		return apperrors.ErrSelfRemoval
	}
	return nil
}

// RequireInstrumentUnused denies removal of an instrument any roster entry
// still uses
func (p *PolicyService) RequireInstrumentUnused(instrument string) error {
	count, err := p.bandRepo.CountByInstrument(instrument)
	if err != nil {
		return err
	}
	if count > 0 {
		return apperrors.ErrInstrumentInUse
	}
	return nil
}

// RequireAdmin denies role mutations from non-admin actors
func (p *PolicyService) RequireAdmin(actor *models.User) error {
	if actor == nil {
		return apperrors.ErrNotAdmin
	}
	role, err := p.roleRepo.GetByMemberID(actor.ID)
	if err != nil || !role.Admin {
		return apperrors.ErrNotAdmin
	}
	return nil
}
