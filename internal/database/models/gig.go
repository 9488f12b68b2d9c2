package models

import (
	"time"

	"github.com/google/uuid"
)

// GigDateLayout is the calendar-date format gigs are stored with. Dates are
// local calendar days without a time zone.
const GigDateLayout = "2006-01-02"

// GigTimeLayout is the hour:minute format for start/end times of timed gigs.
const GigTimeLayout = "15:04"

// Gig represents a scheduled event the band may play
type Gig struct {
	BaseModel
	Name               string          `json:"name" gorm:"size:200;not null" validate:"required,max=200"`
	Date               string          `json:"date" gorm:"size:10;not null;index" validate:"required"`
	IsWholeDay         bool            `json:"isWholeDay" gorm:"not null;default:false"`
	StartTime          *string         `json:"startTime" gorm:"size:5"`
	EndTime            *string         `json:"endTime" gorm:"size:5"`
	Status             GigStatus       `json:"status" gorm:"type:varchar(20);not null;default:'pending'"`
	Location           *string         `json:"location,omitempty" gorm:"size:200"`
	Pay                *float64        `json:"pay,omitempty"`
	Description        *string         `json:"description,omitempty" gorm:"size:2000"`
	MemberAvailability AvailabilityMap `json:"memberAvailability" gorm:"type:jsonb;not null;default:'{}'"`
	CreatedBy          uuid.UUID       `json:"createdBy" gorm:"type:uuid;not null;index"`
}

// TableName returns the table name for Gig
func (Gig) TableName() string {
	return "gigs"
}

// Day parses the gig's calendar date in the local time zone.
func (g *Gig) Day() (time.Time, error) {
	return time.ParseInLocation(GigDateLayout, g.Date, time.Local)
}

// EndOfDay returns the last instant of the gig's calendar day. Auto-completion
// and the upcoming/past partition both use this boundary.
func (g *Gig) EndOfDay() (time.Time, error) {
	day, err := g.Day()
	if err != nil {
		return time.Time{}, err
	}
	return day.AddDate(0, 0, 1).Add(-time.Nanosecond), nil
}

// IsPast reports whether the gig's day has fully elapsed at the given instant.
func (g *Gig) IsPast(now time.Time) bool {
	end, err := g.EndOfDay()
	if err != nil {
		return false
	}
	return end.Before(now)
}
