package models

// GigStatus defines the lifecycle states of a gig
type GigStatus string

const (
	GigStatusPending   GigStatus = "pending"
	GigStatusConfirmed GigStatus = "confirmed"
	GigStatusDeclined  GigStatus = "declined"
	GigStatusCompleted GigStatus = "completed"
)

// IsValid checks if the GigStatus is valid
func (s GigStatus) IsValid() bool {
	switch s {
	case GigStatusPending, GigStatusConfirmed, GigStatusDeclined, GigStatusCompleted:
		return true
	}
	return false
}

// IsTerminal reports whether no transition leaves this status.
// Only completed is terminal; pending/confirmed/declined remain user-editable.
func (s GigStatus) IsTerminal() bool {
	return s == GigStatusCompleted
}

// AvailabilityStatus defines a member's response to a gig
type AvailabilityStatus string

const (
	AvailabilityAvailable   AvailabilityStatus = "available"
	AvailabilityUnavailable AvailabilityStatus = "unavailable"
	AvailabilityTentative   AvailabilityStatus = "tentative"
)

// IsValid checks if the AvailabilityStatus is valid
func (s AvailabilityStatus) IsValid() bool {
	switch s {
	case AvailabilityAvailable, AvailabilityUnavailable, AvailabilityTentative:
		return true
	}
	return false
}
