package models

import (
	"time"

	"github.com/google/uuid"
)

// Role holds the per-account role flags. One row per account, keyed by the
// account id.
type Role struct {
	MemberID    uuid.UUID `json:"member_id" gorm:"type:uuid;primary_key"`
	Admin       bool      `json:"admin" gorm:"not null;default:false"`
	BandManager bool      `json:"bandManager" gorm:"not null;default:false"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

// TableName returns the table name for Role
func (Role) TableName() string {
	return "roles"
}
