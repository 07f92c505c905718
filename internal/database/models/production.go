package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Production is an immutable ledger row: a team manufactured Quantity units of a part.
// It has no UpdatedAt on purpose; rows are never edited.
type Production struct {
	ID        uuid.UUID `json:"id" gorm:"type:uuid;primaryKey"`
	TeamID    uuid.UUID `json:"team_id" gorm:"type:uuid;not null;index"`
	Team      *Team     `json:"team,omitempty" gorm:"foreignKey:TeamID;constraint:OnDelete:RESTRICT"`
	PartID    uuid.UUID `json:"part_id" gorm:"type:uuid;not null;index"`
	Part      *Part     `json:"part,omitempty" gorm:"foreignKey:PartID;constraint:OnDelete:RESTRICT"`
	Quantity  int       `json:"quantity" gorm:"not null;check:chk_productions_quantity_positive,quantity > 0"`
	CreatedBy string    `json:"created_by" gorm:"size:40"`
	CreatedAt time.Time `json:"created_at" gorm:"index"`
}

// TableName returns the table name for Production
func (Production) TableName() string {
	return "productions"
}

// BeforeCreate sets the UUID if not already set
func (p *Production) BeforeCreate(tx *gorm.DB) error {
	if p.ID == uuid.Nil {
		p.ID = uuid.New()
	}
	return nil
}
