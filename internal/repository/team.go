package repository

import (
	"context"

	"aircraft-factory-backend/internal/catalog"
	"aircraft-factory-backend/internal/database/models"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// TeamRepository handles database operations for teams
type TeamRepository struct {
	db *gorm.DB
}

// NewTeamRepository creates a new team repository
func NewTeamRepository(db *gorm.DB) *TeamRepository {
	return &TeamRepository{db: db}
}

// Create creates a new team
func (r *TeamRepository) Create(ctx context.Context, team *models.Team) error {
	return r.db.WithContext(ctx).Create(team).Error
}

// GetByID retrieves a team by ID
func (r *TeamRepository) GetByID(ctx context.Context, id uuid.UUID) (*models.Team, error) {
	var team models.Team
	err := r.db.WithContext(ctx).First(&team, "id = ?", id).Error
	if err != nil {
		return nil, err
	}
	return &team, nil
}

// GetByName retrieves a team by its unique name
func (r *TeamRepository) GetByName(ctx context.Context, name string) (*models.Team, error) {
	var team models.Team
	err := r.db.WithContext(ctx).First(&team, "name = ?", name).Error
	if err != nil {
		return nil, err
	}
	return &team, nil
}

// GetWithMembers retrieves a team with all its members
func (r *TeamRepository) GetWithMembers(ctx context.Context, id uuid.UUID) (*models.Team, error) {
	var team models.Team
	err := r.db.WithContext(ctx).
		Preload("Members", func(db *gorm.DB) *gorm.DB { return db.Order("username") }).
		First(&team, "id = ?", id).Error
	if err != nil {
		return nil, err
	}
	return &team, nil
}

// GetAll retrieves teams ordered by name, optionally filtered by type
func (r *TeamRepository) GetAll(ctx context.Context, teamType catalog.TeamType, limit, offset int) ([]models.Team, int64, error) {
	var teams []models.Team
	var total int64

	query := r.db.WithContext(ctx).Model(&models.Team{})
	if teamType != "" {
		query = query.Where("team_type = ?", teamType)
	}

	// Get total count
	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	// Get paginated results
	err := query.Order("name").Limit(limit).Offset(offset).Find(&teams).Error
	if err != nil {
		return nil, 0, err
	}

	return teams, total, nil
}

// Update updates a team's own columns
func (r *TeamRepository) Update(ctx context.Context, team *models.Team) error {
	return r.db.WithContext(ctx).Omit("Members").Save(team).Error
}

// Delete deletes a team and its member links
func (r *TeamRepository) Delete(ctx context.Context, id uuid.UUID) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("team_id = ?", id).Delete(&models.TeamMember{}).Error; err != nil {
			return err
		}
		return tx.Delete(&models.Team{}, "id = ?", id).Error
	})
}

// CheckTeamNameExists checks if a team name is taken, optionally ignoring one team
func (r *TeamRepository) CheckTeamNameExists(ctx context.Context, name string, excludeID *uuid.UUID) (bool, error) {
	query := r.db.WithContext(ctx).Model(&models.Team{}).Where("name = ?", name)
	if excludeID != nil {
		query = query.Where("id <> ?", *excludeID)
	}

	var count int64
	err := query.Count(&count).Error
	return count > 0, err
}

// CountReferences returns how many productions and aircraft point at the team
func (r *TeamRepository) CountReferences(ctx context.Context, id uuid.UUID) (int64, error) {
	var productions, aircraft int64
	if err := r.db.WithContext(ctx).Model(&models.Production{}).Where("team_id = ?", id).Count(&productions).Error; err != nil {
		return 0, err
	}
	if err := r.db.WithContext(ctx).Model(&models.Aircraft{}).Where("assembly_team_id = ?", id).Count(&aircraft).Error; err != nil {
		return 0, err
	}
	return productions + aircraft, nil
}

// AddMember links a user to a team
func (r *TeamRepository) AddMember(ctx context.Context, member *models.TeamMember) error {
	return r.db.WithContext(ctx).Create(member).Error
}

// RemoveMember unlinks a user from a team and returns the number of removed links
func (r *TeamRepository) RemoveMember(ctx context.Context, teamID uuid.UUID, username string) (int64, error) {
	res := r.db.WithContext(ctx).Where("team_id = ? AND username = ?", teamID, username).Delete(&models.TeamMember{})
	return res.RowsAffected, res.Error
}
