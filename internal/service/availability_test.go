package service_test

import (
	"testing"

	"band-scheduler-backend/internal/database/models"
	"band-scheduler-backend/internal/service"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
)

func TestDriverCount(t *testing.T) {
	testCases := []struct {
		name         string
		availability models.AvailabilityMap
		expected     int
	}{
		{
			name:         "Empty map",
			availability: models.AvailabilityMap{},
			expected:     0,
		},
		{
			name: "Available drivers counted",
			availability: models.AvailabilityMap{
				"a": {Status: models.AvailabilityAvailable, CanDrive: true},
				"b": {Status: models.AvailabilityAvailable, CanDrive: true},
				"c": {Status: models.AvailabilityAvailable, CanDrive: false},
			},
			expected: 2,
		},
		{
			name: "Tentative and unavailable drivers ignored",
			availability: models.AvailabilityMap{
				"a": {Status: models.AvailabilityTentative, CanDrive: true},
				"b": {Status: models.AvailabilityUnavailable, CanDrive: true},
			},
			expected: 0,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.expected, service.DriverCount(tc.availability))
		})
	}
}

func TestCombineStatus(t *testing.T) {
	testCases := []struct {
		name      string
		total     int
		available int
		tentative int
		expected  models.AvailabilityStatus
	}{
		{"Empty section", 0, 0, 0, models.AvailabilityUnavailable},
		{"Two of three available", 3, 2, 0, models.AvailabilityAvailable},
		{"Exactly half is not enough", 2, 1, 0, models.AvailabilityTentative},
		{"One available one tentative of four", 4, 1, 1, models.AvailabilityTentative},
		{"No responses", 2, 0, 0, models.AvailabilityUnavailable},
		{"Exactly thirty percent is not enough", 10, 0, 3, models.AvailabilityUnavailable},
		{"Just above thirty percent", 10, 1, 3, models.AvailabilityTentative},
		{"All available", 5, 5, 0, models.AvailabilityAvailable},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.expected, service.CombineStatus(tc.total, tc.available, tc.tentative))
		})
	}
}

func TestInstrumentBreakdown(t *testing.T) {
	guitarist := models.BandMember{ID: uuid.New(), Name: "Alice", Instrument: "Guitar"}
	secondGuitarist := models.BandMember{ID: uuid.New(), Name: "Bob", Instrument: "Guitar"}
	drummer := models.BandMember{ID: uuid.New(), Name: "Carol", Instrument: "Drums"}
	roster := []models.BandMember{guitarist, secondGuitarist, drummer}

	availability := models.AvailabilityMap{
		guitarist.ID.String():       {Status: models.AvailabilityAvailable},
		secondGuitarist.ID.String(): {Status: models.AvailabilityAvailable},
		// drummer never responded
	}

	breakdown := service.InstrumentBreakdown(roster, availability)

	// Sections come back in lexicographic order
	assert.Len(t, breakdown, 2)
	assert.Equal(t, "Drums", breakdown[0].Instrument)
	assert.Equal(t, 1, breakdown[0].Total)
	assert.Equal(t, 0, breakdown[0].Available)
	assert.Equal(t, models.AvailabilityUnavailable, breakdown[0].Status)

	assert.Equal(t, "Guitar", breakdown[1].Instrument)
	assert.Equal(t, 2, breakdown[1].Total)
	assert.Equal(t, 2, breakdown[1].Available)
	assert.Equal(t, models.AvailabilityAvailable, breakdown[1].Status)
}

func TestInstrumentBreakdownNoResponseCountsTowardTotal(t *testing.T) {
	members := []models.BandMember{
		{ID: uuid.New(), Instrument: "Horns"},
		{ID: uuid.New(), Instrument: "Horns"},
		{ID: uuid.New(), Instrument: "Horns"},
	}
	availability := models.AvailabilityMap{
		members[0].ID.String(): {Status: models.AvailabilityAvailable},
	}

	breakdown := service.InstrumentBreakdown(members, availability)

	assert.Len(t, breakdown, 1)
	assert.Equal(t, 3, breakdown[0].Total)
	assert.Equal(t, 1, breakdown[0].Available)
	// 1 of 3 available is above the 30% tentative floor
	assert.Equal(t, models.AvailabilityTentative, breakdown[0].Status)
}

func TestInstrumentBreakdownEmptyRoster(t *testing.T) {
	breakdown := service.InstrumentBreakdown(nil, models.AvailabilityMap{})
	assert.Empty(t, breakdown)
}

func TestInstrumentBreakdownCaseSensitiveOrder(t *testing.T) {
	members := []models.BandMember{
		{ID: uuid.New(), Instrument: "bass"},
		{ID: uuid.New(), Instrument: "Violin"},
	}

	breakdown := service.InstrumentBreakdown(members, models.AvailabilityMap{})

	// Uppercase sorts before lowercase byte-wise
	assert.Equal(t, "Violin", breakdown[0].Instrument)
	assert.Equal(t, "bass", breakdown[1].Instrument)
}
