package repository

import (
	"context"

	"aircraft-factory-backend/internal/database/models"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// ProductionRepository handles database operations for the production ledger
type ProductionRepository struct {
	db *gorm.DB
}

// NewProductionRepository creates a new production repository
func NewProductionRepository(db *gorm.DB) *ProductionRepository {
	return &ProductionRepository{db: db}
}

// Create appends a ledger row. It never touches stock.
func (r *ProductionRepository) Create(ctx context.Context, production *models.Production) error {
	return r.db.WithContext(ctx).Omit("Team", "Part").Create(production).Error
}

// GetByID retrieves a ledger row with its team and part
func (r *ProductionRepository) GetByID(ctx context.Context, id uuid.UUID) (*models.Production, error) {
	var production models.Production
	err := r.db.WithContext(ctx).Preload("Team").Preload("Part").First(&production, "id = ?", id).Error
	if err != nil {
		return nil, err
	}
	return &production, nil
}

// GetAll retrieves ledger rows newest first
func (r *ProductionRepository) GetAll(ctx context.Context, filter ProductionFilter, limit, offset int) ([]models.Production, int64, error) {
	var productions []models.Production
	var total int64

	query := r.db.WithContext(ctx).Model(&models.Production{})
	if filter.TeamID != nil {
		query = query.Where("team_id = ?", *filter.TeamID)
	}
	if filter.PartID != nil {
		query = query.Where("part_id = ?", *filter.PartID)
	}

	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	err := query.Preload("Team").Preload("Part").
		Order("created_at DESC").Limit(limit).Offset(offset).Find(&productions).Error
	if err != nil {
		return nil, 0, err
	}

	return productions, total, nil
}

// TotalByTeam sums the quantities a team has produced
func (r *ProductionRepository) TotalByTeam(ctx context.Context, teamID uuid.UUID) (int64, error) {
	var total int64
	err := r.db.WithContext(ctx).Model(&models.Production{}).
		Select("COALESCE(SUM(quantity), 0)").
		Where("team_id = ?", teamID).
		Scan(&total).Error
	return total, err
}
