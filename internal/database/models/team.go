package models

import (
	"aircraft-factory-backend/internal/catalog"
)

// Team is a production or assembly team. Name is globally unique.
type Team struct {
	BaseModel
	Name     string           `json:"name" gorm:"size:100;not null;uniqueIndex" validate:"required,min=1,max=100"`
	TeamType catalog.TeamType `json:"team_type" gorm:"type:varchar(20);not null;index" validate:"required,team_type"`

	// Relationships
	Members []TeamMember `json:"members,omitempty" gorm:"foreignKey:TeamID;constraint:OnDelete:CASCADE"`
}

// TableName returns the table name for Team
func (Team) TableName() string {
	return "teams"
}

// CanProducePart reports whether the team manufactures parts of the part's category
func (t *Team) CanProducePart(part *Part) bool {
	if part == nil || t.TeamType == catalog.TeamTypeAssembly {
		return false
	}
	return t.TeamType == part.TeamType
}

// IsAssembly reports whether the team assembles aircraft
func (t *Team) IsAssembly() bool {
	return t.TeamType == catalog.TeamTypeAssembly
}

// HasMember reports whether username belongs to the loaded member set
func (t *Team) HasMember(username string) bool {
	for _, m := range t.Members {
		if m.Username == username {
			return true
		}
	}
	return false
}
