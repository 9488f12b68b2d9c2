package service

import (
	"errors"
	"fmt"

	"band-scheduler-backend/internal/database/models"
	"band-scheduler-backend/internal/repository"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

// RoleService handles the per-account role flags
type RoleService struct {
	repo      repository.RoleRepositoryInterface
	policy    *PolicyService
	validator *validator.Validate
}

// NewRoleService creates a new role service
func NewRoleService(repo repository.RoleRepositoryInterface, policy *PolicyService, validator *validator.Validate) *RoleService {
	return &RoleService{
		repo:      repo,
		policy:    policy,
		validator: validator,
	}
}

// SetRoleRequest toggles a single role flag, merge-style: the other flag is
// left untouched.
type SetRoleRequest struct {
	Role    string `json:"role" validate:"required,oneof=admin bandManager"`
	Enabled bool   `json:"enabled"`
}

// RoleResponse represents the role flags of one account
type RoleResponse struct {
	MemberID    uuid.UUID `json:"member_id"`
	Admin       bool      `json:"admin"`
	BandManager bool      `json:"bandManager"`
}

// GetRoles retrieves the role flags for one account. An account with no role
// row has no flags set; other read failures propagate.
func (s *RoleService) GetRoles(memberID uuid.UUID) (*RoleResponse, error) {
	role, err := s.repo.GetByMemberID(memberID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return &RoleResponse{MemberID: memberID}, nil
		}
		return nil, fmt.Errorf("failed to load roles: %w", err)
	}
	return convertRoleToResponse(role), nil
}

// ListRoles retrieves all role rows. Admin only.
func (s *RoleService) ListRoles(actor *models.User) ([]RoleResponse, error) {
	if err := s.policy.RequireVerified(actor); err != nil {
		return nil, err
	}
	if err := s.policy.RequireAdmin(actor); err != nil {
		return nil, err
	}

	roles, err := s.repo.GetAll()
	if err != nil {
		return nil, fmt.Errorf("failed to list roles: %w", err)
	}
	responses := make([]RoleResponse, len(roles))
	for i, role := range roles {
		responses[i] = *convertRoleToResponse(&role)
	}
	return responses, nil
}

// SetRole toggles one role flag for an account. Admin only.
func (s *RoleService) SetRole(actor *models.User, memberID uuid.UUID, req *SetRoleRequest) error {
	if err := s.policy.RequireVerified(actor); err != nil {
		return err
	}
	if err := s.policy.RequireAdmin(actor); err != nil {
		return err
	}
	if err := s.validator.Struct(req); err != nil {
		return fmt.Errorf("validation failed: %w", err)
	}

	return s.repo.SetFlags(memberID, map[string]bool{req.Role: req.Enabled})
}

func convertRoleToResponse(role *models.Role) *RoleResponse {
	return &RoleResponse{
		MemberID:    role.MemberID,
		Admin:       role.Admin,
		BandManager: role.BandManager,
	}
}
