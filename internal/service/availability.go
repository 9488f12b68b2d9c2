package service

import (
	"sort"

	"band-scheduler-backend/internal/database/models"
)

// InstrumentAvailability is the combined availability of one instrument
// section for one gig. Derived on every read, never persisted.
type InstrumentAvailability struct {
	Instrument string                    `json:"instrument"`
	Total      int                       `json:"total"`
	Available  int                       `json:"available"`
	Tentative  int                       `json:"tentative"`
	Status     models.AvailabilityStatus `json:"status"`
}

// DriverCount counts members who are available and can drive. A canDrive flag
// on a non-available record does not contribute.
func DriverCount(availability models.AvailabilityMap) int {
	count := 0
	for _, record := range availability {
		if record.Status == models.AvailabilityAvailable && record.CanDrive {
			count++
		}
	}
	return count
}

// CombineStatus folds a section's counts into one status:
// available when more than half the section is available, tentative when
// available plus tentative exceeds 30%, unavailable otherwise.
// Integer arithmetic keeps the thresholds exact.
func CombineStatus(total, available, tentative int) models.AvailabilityStatus {
	if total <= 0 {
		return models.AvailabilityUnavailable
	}
	if available*100 > total*50 {
		return models.AvailabilityAvailable
	}
	if (available+tentative)*100 > total*30 {
		return models.AvailabilityTentative
	}
	return models.AvailabilityUnavailable
}

// InstrumentBreakdown groups the roster by instrument and combines each
// section's responses. Members with no availability entry count toward the
// section total but not toward available or tentative. Sections are returned
// in case-sensitive lexicographic order.
func InstrumentBreakdown(roster []models.BandMember, availability models.AvailabilityMap) []InstrumentAvailability {
	type counts struct {
		total     int
		available int
		tentative int
	}
	byInstrument := make(map[string]*counts)

	for _, member := range roster {
		c, ok := byInstrument[member.Instrument]
		if !ok {
			c = &counts{}
			byInstrument[member.Instrument] = c
		}
		c.total++
		record, responded := availability[member.ID.String()]
		if !responded {
			continue
		}
		switch record.Status {
		case models.AvailabilityAvailable:
			c.available++
		case models.AvailabilityTentative:
			c.tentative++
		}
	}

	names := make([]string, 0, len(byInstrument))
	for name := range byInstrument {
		names = append(names, name)
	}
	sort.Strings(names)

	result := make([]InstrumentAvailability, 0, len(names))
	for _, name := range names {
		c := byInstrument[name]
		result = append(result, InstrumentAvailability{
			Instrument: name,
			Total:      c.total,
			Available:  c.available,
			Tentative:  c.tentative,
			Status:     CombineStatus(c.total, c.available, c.tentative),
		})
	}
	return result
}
