package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// AircraftPart records one unit of a part consumed into an aircraft.
// Creating a row takes one unit from the part's stock; deleting it gives the unit back.
type AircraftPart struct {
	ID         uuid.UUID `json:"id" gorm:"type:uuid;primaryKey"`
	AircraftID uuid.UUID `json:"aircraft_id" gorm:"type:uuid;not null;uniqueIndex:idx_aircraft_parts_aircraft_part"`
	PartID     uuid.UUID `json:"part_id" gorm:"type:uuid;not null;uniqueIndex:idx_aircraft_parts_aircraft_part;index"`
	Part       *Part     `json:"part,omitempty" gorm:"foreignKey:PartID;constraint:OnDelete:RESTRICT"`
	AddedAt    time.Time `json:"added_at" gorm:"not null;index"`
	AddedBy    string    `json:"added_by" gorm:"size:40"`
}

// TableName returns the table name for AircraftPart
func (AircraftPart) TableName() string {
	return "aircraft_parts"
}

// BeforeCreate sets the UUID and timestamp if not already set
func (ap *AircraftPart) BeforeCreate(tx *gorm.DB) error {
	if ap.ID == uuid.Nil {
		ap.ID = uuid.New()
	}
	if ap.AddedAt.IsZero() {
		ap.AddedAt = time.Now()
	}
	return nil
}
