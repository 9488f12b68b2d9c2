package repository

import (
	"band-scheduler-backend/internal/database/models"

	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// BandMemberRepository handles database operations for band members
type BandMemberRepository struct {
	db *gorm.DB
}

// NewBandMemberRepository creates a new band member repository
func NewBandMemberRepository(db *gorm.DB) *BandMemberRepository {
	return &BandMemberRepository{db: db}
}

// Create creates a new band member
func (r *BandMemberRepository) Create(member *models.BandMember) error {
	return r.db.Create(member).Error
}

// GetByID retrieves a band member by ID
func (r *BandMemberRepository) GetByID(id uuid.UUID) (*models.BandMember, error) {
	var member models.BandMember
	err := r.db.First(&member, "id = ?", id).Error
	if err != nil {
		return nil, err
	}
	return &member, nil
}

// GetAll retrieves the whole roster ordered by name
func (r *BandMemberRepository) GetAll() ([]models.BandMember, error) {
	var members []models.BandMember
	err := r.db.Order("name ASC").Find(&members).Error
	if err != nil {
		return nil, err
	}
	return members, nil
}

// Delete removes a band member
func (r *BandMemberRepository) Delete(id uuid.UUID) error {
	result := r.db.Delete(&models.BandMember{}, "id = ?", id)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}

// UpsertName writes a member's name, creating the roster entry if absent.
// Single-statement upsert; no existence-check-then-branch race.
func (r *BandMemberRepository) UpsertName(id uuid.UUID, name string) error {
	member := &models.BandMember{ID: id, Name: name}
	return r.db.Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "id"}},
		DoUpdates: clause.Assignments(map[string]interface{}{"name": name}),
	}).Create(member).Error
}

// UpsertInstrument writes a member's instrument, creating the roster entry
// with the fallback name if absent.
func (r *BandMemberRepository) UpsertInstrument(id uuid.UUID, fallbackName, instrument string) error {
	member := &models.BandMember{ID: id, Name: fallbackName, Instrument: instrument}
	return r.db.Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "id"}},
		DoUpdates: clause.Assignments(map[string]interface{}{"instrument": instrument}),
	}).Create(member).Error
}

// CountByInstrument counts roster entries currently assigned an instrument
func (r *BandMemberRepository) CountByInstrument(instrument string) (int64, error) {
	var count int64
	err := r.db.Model(&models.BandMember{}).Where("instrument = ?", instrument).Count(&count).Error
	return count, err
}
