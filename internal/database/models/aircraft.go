package models

import (
	"time"

	"aircraft-factory-backend/internal/catalog"

	"github.com/google/uuid"
)

// Aircraft is one airframe being assembled. IsComplete and CompletedAt cache the
// result of the catalog completion check and are rewritten after every attach or detach.
type Aircraft struct {
	BaseModel
	AircraftType   catalog.AircraftType `json:"aircraft_type" gorm:"type:varchar(20);not null;index"`
	AssemblyTeamID *uuid.UUID           `json:"assembly_team_id,omitempty" gorm:"type:uuid;index"`
	AssemblyTeam   *Team                `json:"assembly_team,omitempty" gorm:"foreignKey:AssemblyTeamID;constraint:OnDelete:RESTRICT"`
	IsComplete     bool                 `json:"is_complete" gorm:"not null;default:false"`
	CompletedAt    *time.Time           `json:"completed_at,omitempty" gorm:"index"`
	CreatedBy      string               `json:"created_by" gorm:"size:40"`

	// Relationships
	AircraftParts []AircraftPart `json:"aircraft_parts,omitempty" gorm:"foreignKey:AircraftID"`
}

// TableName returns the table name for Aircraft
func (Aircraft) TableName() string {
	return "aircraft"
}

// Status derives the listing status from completed_at
func (a *Aircraft) Status() AircraftStatus {
	if a.CompletedAt != nil {
		return AircraftStatusCompleted
	}
	return AircraftStatusInProduction
}

// ApplyCompletion moves the aircraft between InProgress and Complete.
// completed_at is stamped on entering Complete and cleared on leaving it.
// Returns true when the state changed.
func (a *Aircraft) ApplyCompletion(complete bool, now time.Time) bool {
	switch {
	case complete && a.CompletedAt == nil:
		a.IsComplete = true
		a.CompletedAt = &now
		return true
	case !complete && a.CompletedAt != nil:
		a.IsComplete = false
		a.CompletedAt = nil
		return true
	}
	a.IsComplete = complete
	return false
}

// AttachedCounts counts loaded AircraftParts per category. Parts must be preloaded.
func (a *Aircraft) AttachedCounts() map[catalog.TeamType]int {
	counts := make(map[catalog.TeamType]int)
	for _, ap := range a.AircraftParts {
		if ap.Part != nil {
			counts[ap.Part.TeamType]++
		}
	}
	return counts
}
