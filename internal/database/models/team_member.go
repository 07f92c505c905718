package models

import (
	"github.com/google/uuid"
)

// TeamMember links an authenticated user (by username) to a team
type TeamMember struct {
	BaseModel
	TeamID   uuid.UUID `json:"team_id" gorm:"type:uuid;not null;uniqueIndex:idx_team_members_team_user"`
	Username string    `json:"username" gorm:"size:40;not null;uniqueIndex:idx_team_members_team_user" validate:"required,max=40"`
}

// TableName returns the table name for TeamMember
func (TeamMember) TableName() string {
	return "team_members"
}
