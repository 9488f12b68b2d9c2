package main

import (
	"band-scheduler-backend/internal/config"
	"band-scheduler-backend/internal/database"
	"band-scheduler-backend/internal/database/models"
	"errors"
	"fmt"
	"log"
	"os"
	"path/filepath"
	"time"

	"github.com/google/uuid"
	"gopkg.in/yaml.v3"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// Simple structures that directly match DB schema
type InstrumentData struct {
	Name string `yaml:"name"`
}

type MemberData struct {
	Name        string `yaml:"name"`
	Instrument  string `yaml:"instrument,omitempty"`
	Admin       bool   `yaml:"admin,omitempty"`
	BandManager bool   `yaml:"band_manager,omitempty"`
}

type GigData struct {
	Name        string   `yaml:"name"`
	Date        string   `yaml:"date"`
	IsWholeDay  bool     `yaml:"is_whole_day,omitempty"`
	StartTime   *string  `yaml:"start_time,omitempty"`
	EndTime     *string  `yaml:"end_time,omitempty"`
	Status      string   `yaml:"status,omitempty"`
	Location    *string  `yaml:"location,omitempty"`
	Pay         *float64 `yaml:"pay,omitempty"`
	Description *string  `yaml:"description,omitempty"`
	CreatedBy   string   `yaml:"created_by,omitempty"`
}

// File structures
type InstrumentsFile struct {
	Instruments []InstrumentData `yaml:"instruments"`
}

type MembersFile struct {
	Members []MemberData `yaml:"members"`
}

type GigsFile struct {
	Gigs []GigData `yaml:"gigs"`
}

func main() {
	log.Println("🚀 Loading initial data from YAML files...")

	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	// Connect to database with retry (for dockerized Postgres startup)
	db, err := connectWithRetry(cfg.DatabaseURL, 60, time.Second)
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}

	// Load data from YAML files
	if err := loadDataFromYAMLFiles(db, "scripts/data"); err != nil {
		log.Fatalf("Failed to load data from YAML files: %v", err)
	}

	log.Println("✅ Initial data loaded successfully!")
}

// connectWithRetry attempts to initialize the DB with retries to wait for Postgres readiness.
func connectWithRetry(dsn string, maxAttempts int, delay time.Duration) (*gorm.DB, error) {
	// Suppress verbose GORM logging during data loading
	opts := &database.Options{
		LogLevel: logger.Silent,
	}

	for attempt := 1; attempt <= maxAttempts; attempt++ {
		db, err := database.Initialize(dsn, opts)
		if err == nil {
			return db, nil
		}
		// Only log every 10 attempts to reduce noise
		if attempt%10 == 0 || attempt == maxAttempts {
			log.Printf("Database not ready (%d/%d): %v", attempt, maxAttempts, err)
		}
		time.Sleep(delay)
	}
	return nil, fmt.Errorf("database not ready after %d attempts", maxAttempts)
}

func loadDataFromYAMLFiles(db *gorm.DB, dataDir string) error {
	instruments, err := loadInstruments(dataDir)
	if err != nil {
		return fmt.Errorf("failed to load instruments: %w", err)
	}

	members, err := loadMembers(dataDir)
	if err != nil {
		return fmt.Errorf("failed to load members: %w", err)
	}

	gigs, err := loadGigs(dataDir)
	if err != nil {
		return fmt.Errorf("failed to load gigs: %w", err)
	}

	// Create instruments first so member assignments reference known names
	instrumentCreated := 0
	for _, instrumentData := range instruments {
		created, err := createInstrument(db, instrumentData)
		if err != nil {
			return fmt.Errorf("failed to create instrument %s: %w", instrumentData.Name, err)
		}
		if created {
			instrumentCreated++
		}
	}
	log.Printf("📋 Instruments: %d created, %d total", instrumentCreated, len(instruments))

	// Create band members and their role flags
	memberMap := make(map[string]*models.BandMember)
	memberCreated := 0
	for _, memberData := range members {
		member, created, err := createMember(db, memberData)
		if err != nil {
			return fmt.Errorf("failed to create member %s: %w", memberData.Name, err)
		}
		memberMap[memberData.Name] = member
		if created {
			memberCreated++
		}
	}
	log.Printf("📋 Members: %d created, %d total", memberCreated, len(members))

	// Create gigs
	gigCreated := 0
	for _, gigData := range gigs {
		created, err := createGig(db, gigData, memberMap)
		if err != nil {
			log.Printf("⚠️  Warning: failed to create gig %s: %v", gigData.Name, err)
			continue // Continue with other gigs
		}
		if created {
			gigCreated++
		}
	}
	log.Printf("📋 Gigs: %d created, %d total", gigCreated, len(gigs))

	return nil
}

func loadInstruments(dataDir string) ([]InstrumentData, error) {
	var file InstrumentsFile
	if err := readYAMLFile(filepath.Join(dataDir, "instruments.yaml"), &file); err != nil {
		return nil, err
	}
	return file.Instruments, nil
}

func loadMembers(dataDir string) ([]MemberData, error) {
	var file MembersFile
	if err := readYAMLFile(filepath.Join(dataDir, "members.yaml"), &file); err != nil {
		return nil, err
	}
	return file.Members, nil
}

func loadGigs(dataDir string) ([]GigData, error) {
	var file GigsFile
	if err := readYAMLFile(filepath.Join(dataDir, "gigs.yaml"), &file); err != nil {
		// Gigs are optional seed data
		if os.IsNotExist(err) {
			return nil, nil
		}
		return nil, err
	}
	return file.Gigs, nil
}

func readYAMLFile(path string, target interface{}) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return err
	}
	return yaml.Unmarshal(data, target)
}

func createInstrument(db *gorm.DB, data InstrumentData) (bool, error) {
	var existing models.Instrument
	err := db.First(&existing, "name = ?", data.Name).Error
	if err == nil {
		return false, nil
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return false, err
	}

	instrument := &models.Instrument{Name: data.Name}
	if err := db.Create(instrument).Error; err != nil {
		return false, err
	}
	return true, nil
}

func createMember(db *gorm.DB, data MemberData) (*models.BandMember, bool, error) {
	var existing models.BandMember
	err := db.First(&existing, "name = ?", data.Name).Error
	if err == nil {
		return &existing, false, nil
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, false, err
	}

	member := &models.BandMember{
		ID:         uuid.New(),
		Name:       data.Name,
		Instrument: data.Instrument,
	}
	if err := db.Create(member).Error; err != nil {
		return nil, false, err
	}

	if data.Admin || data.BandManager {
		role := &models.Role{
			MemberID:    member.ID,
			Admin:       data.Admin,
			BandManager: data.BandManager,
		}
		if err := db.Create(role).Error; err != nil {
			return nil, false, err
		}
	}

	return member, true, nil
}

func createGig(db *gorm.DB, data GigData, memberMap map[string]*models.BandMember) (bool, error) {
	var existing models.Gig
	err := db.First(&existing, "name = ? AND date = ?", data.Name, data.Date).Error
	if err == nil {
		return false, nil
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return false, err
	}

	status := models.GigStatus(data.Status)
	if data.Status == "" {
		status = models.GigStatusPending
	}
	if !status.IsValid() {
		return false, fmt.Errorf("invalid status %q", data.Status)
	}

	createdBy := uuid.Nil
	if data.CreatedBy != "" {
		member, ok := memberMap[data.CreatedBy]
		if !ok {
			return false, fmt.Errorf("unknown creator %q", data.CreatedBy)
		}
		createdBy = member.ID
	}

	gig := &models.Gig{
		Name:               data.Name,
		Date:               data.Date,
		IsWholeDay:         data.IsWholeDay,
		StartTime:          data.StartTime,
		EndTime:            data.EndTime,
		Status:             status,
		Location:           data.Location,
		Pay:                data.Pay,
		Description:        data.Description,
		MemberAvailability: models.AvailabilityMap{},
		CreatedBy:          createdBy,
	}
	if err := db.Create(gig).Error; err != nil {
		return false, err
	}
	return true, nil
}
