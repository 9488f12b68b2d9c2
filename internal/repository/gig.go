package repository

import (
	"encoding/json"

	"band-scheduler-backend/internal/database/models"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// GigRepository handles database operations for gigs
type GigRepository struct {
	db *gorm.DB
}

// NewGigRepository creates a new gig repository
func NewGigRepository(db *gorm.DB) *GigRepository {
	return &GigRepository{db: db}
}

// Create creates a new gig
func (r *GigRepository) Create(gig *models.Gig) error {
	return r.db.Create(gig).Error
}

// GetByID retrieves a gig by ID
func (r *GigRepository) GetByID(id uuid.UUID) (*models.Gig, error) {
	var gig models.Gig
	err := r.db.First(&gig, "id = ?", id).Error
	if err != nil {
		return nil, err
	}
	return &gig, nil
}

// GetAll retrieves all gigs ordered by date ascending
func (r *GigRepository) GetAll() ([]models.Gig, error) {
	var gigs []models.Gig
	err := r.db.Order("date ASC").Find(&gigs).Error
	if err != nil {
		return nil, err
	}
	return gigs, nil
}

// Update saves a whole gig. Last write wins; whole-gig edits are owner-only
// and assumed non-concurrent in practice.
func (r *GigRepository) Update(gig *models.Gig) error {
	return r.db.Save(gig).Error
}

// UpdateStatus rewrites only the status column. Used by the auto-completion
// write-back, which is idempotent under concurrent readers.
func (r *GigRepository) UpdateStatus(id uuid.UUID, status models.GigStatus) error {
	return r.db.Model(&models.Gig{}).Where("id = ?", id).Update("status", status).Error
}

// SetAvailability upserts one member's availability record inside the jsonb
// map in a single statement. Distinct member keys never conflict, so
// concurrent availability writes from different members are safe.
func (r *GigRepository) SetAvailability(gigID uuid.UUID, memberID string, record models.AvailabilityRecord) error {
	data, err := json.Marshal(record)
	if err != nil {
		return err
	}

	result := r.db.Exec(
		`UPDATE gigs
		 SET member_availability = jsonb_set(COALESCE(member_availability, '{}'::jsonb), ARRAY[?], ?::jsonb, true),
		     updated_at = now()
		 WHERE id = ?`,
		memberID, string(data), gigID,
	)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}
