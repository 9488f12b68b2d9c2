package repository

import (
	"band-scheduler-backend/internal/database/models"

	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// RoleRepository handles database operations for role flags
type RoleRepository struct {
	db *gorm.DB
}

// NewRoleRepository creates a new role repository
func NewRoleRepository(db *gorm.DB) *RoleRepository {
	return &RoleRepository{db: db}
}

// GetByMemberID retrieves the role flags for one account
func (r *RoleRepository) GetByMemberID(memberID uuid.UUID) (*models.Role, error) {
	var role models.Role
	err := r.db.First(&role, "member_id = ?", memberID).Error
	if err != nil {
		return nil, err
	}
	return &role, nil
}

// GetAll retrieves all role rows
func (r *RoleRepository) GetAll() ([]models.Role, error) {
	var roles []models.Role
	err := r.db.Find(&roles).Error
	if err != nil {
		return nil, err
	}
	return roles, nil
}

// SetFlags merges the given flags into the member's role row, creating it if
// absent. Flags not present in the map are left untouched.
func (r *RoleRepository) SetFlags(memberID uuid.UUID, flags map[string]bool) error {
	role := &models.Role{MemberID: memberID}
	assignments := make(map[string]interface{}, len(flags))
	for name, enabled := range flags {
		switch name {
		case "admin":
			role.Admin = enabled
			assignments["admin"] = enabled
		case "bandManager":
			role.BandManager = enabled
			assignments["band_manager"] = enabled
		}
	}
	if len(assignments) == 0 {
		return nil
	}
	return r.db.Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "member_id"}},
		DoUpdates: clause.Assignments(assignments),
	}).Create(role).Error
}
