package models

// AircraftStatus is the listing filter derived from an aircraft's completed_at
type AircraftStatus string

const (
	AircraftStatusInProduction AircraftStatus = "in_production"
	AircraftStatusCompleted    AircraftStatus = "completed"
)

// IsValid checks if the AircraftStatus is valid
func (s AircraftStatus) IsValid() bool {
	switch s {
	case AircraftStatusInProduction, AircraftStatusCompleted:
		return true
	}
	return false
}
