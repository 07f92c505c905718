package repository

import (
	"context"

	"aircraft-factory-backend/internal/catalog"
	"aircraft-factory-backend/internal/database/models"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// AircraftPartRepository handles database operations for assembly events
type AircraftPartRepository struct {
	db *gorm.DB
}

// NewAircraftPartRepository creates a new aircraft part repository
func NewAircraftPartRepository(db *gorm.DB) *AircraftPartRepository {
	return &AircraftPartRepository{db: db}
}

// Create records a part attached to an aircraft. It never touches stock.
func (r *AircraftPartRepository) Create(ctx context.Context, aircraftPart *models.AircraftPart) error {
	return r.db.WithContext(ctx).Omit("Part").Create(aircraftPart).Error
}

// GetByID retrieves an assembly event with its part
func (r *AircraftPartRepository) GetByID(ctx context.Context, id uuid.UUID) (*models.AircraftPart, error) {
	var aircraftPart models.AircraftPart
	err := r.db.WithContext(ctx).Preload("Part").First(&aircraftPart, "id = ?", id).Error
	if err != nil {
		return nil, err
	}
	return &aircraftPart, nil
}

// GetByAircraftID retrieves every assembly event of an aircraft, oldest first
func (r *AircraftPartRepository) GetByAircraftID(ctx context.Context, aircraftID uuid.UUID) ([]models.AircraftPart, error) {
	var aircraftParts []models.AircraftPart
	err := r.db.WithContext(ctx).Preload("Part").
		Where("aircraft_id = ?", aircraftID).
		Order("added_at").
		Find(&aircraftParts).Error
	return aircraftParts, err
}

// Exists checks whether the part row is already attached to the aircraft
func (r *AircraftPartRepository) Exists(ctx context.Context, aircraftID, partID uuid.UUID) (bool, error) {
	var count int64
	err := r.db.WithContext(ctx).Model(&models.AircraftPart{}).
		Where("aircraft_id = ? AND part_id = ?", aircraftID, partID).
		Count(&count).Error
	return count > 0, err
}

// CountByCategory counts the attached parts of an aircraft per category
func (r *AircraftPartRepository) CountByCategory(ctx context.Context, aircraftID uuid.UUID) (map[catalog.TeamType]int, error) {
	type categoryCount struct {
		TeamType string
		Count    int
	}
	var rows []categoryCount
	err := r.db.WithContext(ctx).Model(&models.AircraftPart{}).
		Select("parts.team_type AS team_type, COUNT(*) AS count").
		Joins("JOIN parts ON parts.id = aircraft_parts.part_id").
		Where("aircraft_parts.aircraft_id = ?", aircraftID).
		Group("parts.team_type").
		Scan(&rows).Error
	if err != nil {
		return nil, err
	}

	counts := make(map[catalog.TeamType]int, len(rows))
	for _, row := range rows {
		counts[catalog.TeamType(row.TeamType)] = row.Count
	}
	return counts, nil
}

// Delete removes an assembly event and returns the number of removed rows
func (r *AircraftPartRepository) Delete(ctx context.Context, id uuid.UUID) (int64, error) {
	res := r.db.WithContext(ctx).Delete(&models.AircraftPart{}, "id = ?", id)
	return res.RowsAffected, res.Error
}
