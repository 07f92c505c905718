package repository

import (
	"context"
	"time"

	"aircraft-factory-backend/internal/database/models"

	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// AircraftRepository handles database operations for aircraft
type AircraftRepository struct {
	db *gorm.DB
}

// NewAircraftRepository creates a new aircraft repository
func NewAircraftRepository(db *gorm.DB) *AircraftRepository {
	return &AircraftRepository{db: db}
}

// Create creates a new aircraft
func (r *AircraftRepository) Create(ctx context.Context, aircraft *models.Aircraft) error {
	return r.db.WithContext(ctx).Omit("AssemblyTeam", "AircraftParts").Create(aircraft).Error
}

// GetByID retrieves an aircraft by ID
func (r *AircraftRepository) GetByID(ctx context.Context, id uuid.UUID) (*models.Aircraft, error) {
	var aircraft models.Aircraft
	err := r.db.WithContext(ctx).First(&aircraft, "id = ?", id).Error
	if err != nil {
		return nil, err
	}
	return &aircraft, nil
}

// GetByIDForUpdate retrieves an aircraft and locks its row until the surrounding
// transaction ends. Outside a transaction the lock is released immediately.
func (r *AircraftRepository) GetByIDForUpdate(ctx context.Context, id uuid.UUID) (*models.Aircraft, error) {
	var aircraft models.Aircraft
	err := r.db.WithContext(ctx).
		Clauses(clause.Locking{Strength: "UPDATE"}).
		First(&aircraft, "id = ?", id).Error
	if err != nil {
		return nil, err
	}
	return &aircraft, nil
}

// GetWithParts retrieves an aircraft with its assembly team and attached parts
func (r *AircraftRepository) GetWithParts(ctx context.Context, id uuid.UUID) (*models.Aircraft, error) {
	var aircraft models.Aircraft
	err := r.db.WithContext(ctx).
		Preload("AssemblyTeam").
		Preload("AircraftParts", func(db *gorm.DB) *gorm.DB { return db.Order("added_at") }).
		Preload("AircraftParts.Part").
		First(&aircraft, "id = ?", id).Error
	if err != nil {
		return nil, err
	}
	return &aircraft, nil
}

// GetAll retrieves aircraft newest first
func (r *AircraftRepository) GetAll(ctx context.Context, filter AircraftFilter, limit, offset int) ([]models.Aircraft, int64, error) {
	var aircraft []models.Aircraft
	var total int64

	query := r.db.WithContext(ctx).Model(&models.Aircraft{})
	switch filter.Status {
	case models.AircraftStatusInProduction:
		query = query.Where("completed_at IS NULL")
	case models.AircraftStatusCompleted:
		query = query.Where("completed_at IS NOT NULL")
	}
	if filter.AircraftType != "" {
		query = query.Where("aircraft_type = ?", filter.AircraftType)
	}
	if filter.AssemblyTeamID != nil {
		query = query.Where("assembly_team_id = ?", *filter.AssemblyTeamID)
	}

	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	err := query.Preload("AssemblyTeam").
		Order("created_at DESC").Limit(limit).Offset(offset).Find(&aircraft).Error
	if err != nil {
		return nil, 0, err
	}

	return aircraft, total, nil
}

// UpdateCompletion persists is_complete and completed_at
func (r *AircraftRepository) UpdateCompletion(ctx context.Context, aircraft *models.Aircraft) error {
	return r.db.WithContext(ctx).Model(&models.Aircraft{}).
		Where("id = ?", aircraft.ID).
		Updates(map[string]interface{}{
			"is_complete":  aircraft.IsComplete,
			"completed_at": aircraft.CompletedAt,
			"updated_at":   time.Now(),
		}).Error
}

// UpdateAssemblyTeam assigns the assembly team of an aircraft
func (r *AircraftRepository) UpdateAssemblyTeam(ctx context.Context, id uuid.UUID, teamID uuid.UUID) error {
	return r.db.WithContext(ctx).Model(&models.Aircraft{}).
		Where("id = ?", id).
		Updates(map[string]interface{}{
			"assembly_team_id": teamID,
			"updated_at":       time.Now(),
		}).Error
}

// Delete deletes an aircraft. Attached parts must be removed first.
func (r *AircraftRepository) Delete(ctx context.Context, id uuid.UUID) error {
	return r.db.WithContext(ctx).Delete(&models.Aircraft{}, "id = ?", id).Error
}
