package testutils

import (
	"time"

	"band-scheduler-backend/internal/database/models"

	"github.com/google/uuid"
)

// GigFactory provides methods to create test Gig data
type GigFactory struct{}

// NewGigFactory creates a new GigFactory
func NewGigFactory() *GigFactory {
	return &GigFactory{}
}

// Create creates a test Gig with default values on a future date
func (f *GigFactory) Create() *models.Gig {
	start := "19:00"
	end := "22:00"
	return &models.Gig{
		BaseModel: models.BaseModel{
			ID:        uuid.New(),
			CreatedAt: time.Now(),
			UpdatedAt: time.Now(),
		},
		Name:               "Test Gig",
		Date:               time.Now().AddDate(0, 0, 14).Format(models.GigDateLayout),
		StartTime:          &start,
		EndTime:            &end,
		Status:             models.GigStatusPending,
		MemberAvailability: models.AvailabilityMap{},
		CreatedBy:          uuid.New(),
	}
}

// WithDate sets a custom date for the gig
func (f *GigFactory) WithDate(date string) *models.Gig {
	gig := f.Create()
	gig.Date = date
	return gig
}

// WithStatus sets a custom status for the gig
func (f *GigFactory) WithStatus(status models.GigStatus) *models.Gig {
	gig := f.Create()
	gig.Status = status
	return gig
}

// WholeDay creates a whole-day gig without times
func (f *GigFactory) WholeDay() *models.Gig {
	gig := f.Create()
	gig.IsWholeDay = true
	gig.StartTime = nil
	gig.EndTime = nil
	return gig
}

// WithAvailability sets the availability map for the gig
func (f *GigFactory) WithAvailability(availability models.AvailabilityMap) *models.Gig {
	gig := f.Create()
	gig.MemberAvailability = availability
	return gig
}

// BandMemberFactory provides methods to create test BandMember data
type BandMemberFactory struct{}

// NewBandMemberFactory creates a new BandMemberFactory
func NewBandMemberFactory() *BandMemberFactory {
	return &BandMemberFactory{}
}

// Create creates a test BandMember with default values
func (f *BandMemberFactory) Create() *models.BandMember {
	return &models.BandMember{
		ID:         uuid.New(),
		Name:       "Test Member",
		Instrument: "Guitar",
		CreatedAt:  time.Now(),
		UpdatedAt:  time.Now(),
	}
}

// WithInstrument sets a custom instrument for the member
func (f *BandMemberFactory) WithInstrument(instrument string) *models.BandMember {
	member := f.Create()
	member.Instrument = instrument
	return member
}

// WithName sets a custom name for the member
func (f *BandMemberFactory) WithName(name string) *models.BandMember {
	member := f.Create()
	member.Name = name
	return member
}

// UserFactory provides methods to create test User data
type UserFactory struct{}

// NewUserFactory creates a new UserFactory
func NewUserFactory() *UserFactory {
	return &UserFactory{}
}

// Create creates a verified test User with default values
func (f *UserFactory) Create() *models.User {
	id := uuid.New()
	return &models.User{
		BaseModel: models.BaseModel{
			ID:        id,
			CreatedAt: time.Now(),
			UpdatedAt: time.Now(),
		},
		Email:         "user-" + id.String()[:8] + "@example.com",
		PasswordHash:  "$2a$10$N9qo8uLOickgx2ZMRZoMyeIjZAgcfl7p92ldGxad68LJZdL17lhWy",
		DisplayName:   "Test User",
		EmailVerified: true,
	}
}

// Unverified creates a user without a verified email
func (f *UserFactory) Unverified() *models.User {
	user := f.Create()
	user.EmailVerified = false
	return user
}

// InstrumentFactory provides methods to create test Instrument data
type InstrumentFactory struct{}

// NewInstrumentFactory creates a new InstrumentFactory
func NewInstrumentFactory() *InstrumentFactory {
	return &InstrumentFactory{}
}

// Create creates a test Instrument with default values
func (f *InstrumentFactory) Create() *models.Instrument {
	return &models.Instrument{
		BaseModel: models.BaseModel{
			ID:        uuid.New(),
			CreatedAt: time.Now(),
			UpdatedAt: time.Now(),
		},
		Name: "Guitar",
	}
}

// WithName sets a custom name for the instrument
func (f *InstrumentFactory) WithName(name string) *models.Instrument {
	instrument := f.Create()
	instrument.Name = name
	return instrument
}

// FactorySet bundles all factories for convenient use in tests
type FactorySet struct {
	Gig        *GigFactory
	BandMember *BandMemberFactory
	User       *UserFactory
	Instrument *InstrumentFactory
}

// NewFactorySet creates a new FactorySet
func NewFactorySet() *FactorySet {
	return &FactorySet{
		Gig:        NewGigFactory(),
		BandMember: NewBandMemberFactory(),
		User:       NewUserFactory(),
		Instrument: NewInstrumentFactory(),
	}
}
