package models

import (
	"database/sql/driver"
	"encoding/json"
	"fmt"
)

// AvailabilityRecord is one member's response to one gig. CanDrive is kept
// across status toggles on purpose: it only contributes to driver counts
// while the status is available.
type AvailabilityRecord struct {
	Status   AvailabilityStatus `json:"status"`
	Note     string             `json:"note"`
	CanDrive bool               `json:"canDrive"`
}

// Normalize fills the documented defaults for a freshly written record:
// status tentative, empty note, canDrive false.
func (r AvailabilityRecord) Normalize() AvailabilityRecord {
	if !r.Status.IsValid() {
		r.Status = AvailabilityTentative
	}
	return r
}

// AvailabilityMap maps a member id to their availability record. Absence of
// a key means the member has not responded. Stored as a jsonb column so
// per-member entries can be merged independently.
type AvailabilityMap map[string]AvailabilityRecord

// Value implements driver.Valuer for jsonb storage
func (m AvailabilityMap) Value() (driver.Value, error) {
	if m == nil {
		return []byte("{}"), nil
	}
	return json.Marshal(m)
}

// Scan implements sql.Scanner for jsonb retrieval
func (m *AvailabilityMap) Scan(value interface{}) error {
	if value == nil {
		*m = AvailabilityMap{}
		return nil
	}
	var data []byte
	switch v := value.(type) {
	case []byte:
		data = v
	case string:
		data = []byte(v)
	default:
		return fmt.Errorf("unsupported type for AvailabilityMap: %T", value)
	}
	if len(data) == 0 {
		*m = AvailabilityMap{}
		return nil
	}
	return json.Unmarshal(data, m)
}
