package models

import (
	"time"

	"github.com/google/uuid"
)

// BandMember is a roster entry. For self-registered members the ID equals the
// account id, which is what keys their entry in a gig's availability map.
type BandMember struct {
	ID         uuid.UUID `json:"id" gorm:"type:uuid;primary_key"`
	Name       string    `json:"name" gorm:"size:200;not null" validate:"required,max=200"`
	Instrument string    `json:"instrument" gorm:"size:100" validate:"max=100"`
	CreatedAt  time.Time `json:"created_at"`
	UpdatedAt  time.Time `json:"updated_at"`
}

// TableName returns the table name for BandMember
func (BandMember) TableName() string {
	return "band_members"
}
