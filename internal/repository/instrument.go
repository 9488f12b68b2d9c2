package repository

import (
	"band-scheduler-backend/internal/database/models"

	"gorm.io/gorm"
)

// InstrumentRepository handles database operations for instruments
type InstrumentRepository struct {
	db *gorm.DB
}

// NewInstrumentRepository creates a new instrument repository
func NewInstrumentRepository(db *gorm.DB) *InstrumentRepository {
	return &InstrumentRepository{db: db}
}

// Create creates a new instrument
func (r *InstrumentRepository) Create(instrument *models.Instrument) error {
	return r.db.Create(instrument).Error
}

// GetAll retrieves all instruments ordered by name
func (r *InstrumentRepository) GetAll() ([]models.Instrument, error) {
	var instruments []models.Instrument
	err := r.db.Order("name ASC").Find(&instruments).Error
	if err != nil {
		return nil, err
	}
	return instruments, nil
}

// GetByName retrieves an instrument by its exact name
func (r *InstrumentRepository) GetByName(name string) (*models.Instrument, error) {
	var instrument models.Instrument
	err := r.db.First(&instrument, "name = ?", name).Error
	if err != nil {
		return nil, err
	}
	return &instrument, nil
}

// DeleteByName removes an instrument by name and reports how many rows matched
func (r *InstrumentRepository) DeleteByName(name string) (int64, error) {
	result := r.db.Delete(&models.Instrument{}, "name = ?", name)
	return result.RowsAffected, result.Error
}
