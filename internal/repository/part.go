package repository

import (
	"context"
	"time"

	"aircraft-factory-backend/internal/database/models"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// is_low_stock is recomputed in the same statement that moves stock.
// Column references on the right-hand side of SET see the pre-update row.
const (
	lowStockAfterIncrease = "CASE WHEN stock + ? < minimum_stock THEN TRUE ELSE FALSE END"
	lowStockAfterDecrease = "CASE WHEN stock - ? < minimum_stock THEN TRUE ELSE FALSE END"
)

// PartRepository handles database operations for parts
type PartRepository struct {
	db *gorm.DB
}

// NewPartRepository creates a new part repository
func NewPartRepository(db *gorm.DB) *PartRepository {
	return &PartRepository{db: db}
}

// Create creates a new part
func (r *PartRepository) Create(ctx context.Context, part *models.Part) error {
	return r.db.WithContext(ctx).Create(part).Error
}

// GetByID retrieves a part by ID
func (r *PartRepository) GetByID(ctx context.Context, id uuid.UUID) (*models.Part, error) {
	var part models.Part
	err := r.db.WithContext(ctx).First(&part, "id = ?", id).Error
	if err != nil {
		return nil, err
	}
	return &part, nil
}

// GetAll retrieves parts ordered by aircraft type and category
func (r *PartRepository) GetAll(ctx context.Context, filter PartFilter, limit, offset int) ([]models.Part, int64, error) {
	var parts []models.Part
	var total int64

	query := r.db.WithContext(ctx).Model(&models.Part{})
	if filter.AircraftType != "" {
		query = query.Where("aircraft_type = ?", filter.AircraftType)
	}
	if filter.TeamType != "" {
		query = query.Where("team_type = ?", filter.TeamType)
	}
	if filter.LowStockOnly {
		query = query.Where("is_low_stock = ?", true)
	}

	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	err := query.Order("aircraft_type").Order("team_type").Order("created_at").
		Limit(limit).Offset(offset).Find(&parts).Error
	if err != nil {
		return nil, 0, err
	}

	return parts, total, nil
}

// IncreaseStock adds quantity to the stock in one statement. Zero affected rows means the part does not exist.
func (r *PartRepository) IncreaseStock(ctx context.Context, id uuid.UUID, quantity int) (int64, error) {
	res := r.db.WithContext(ctx).Model(&models.Part{}).
		Where("id = ?", id).
		Updates(map[string]interface{}{
			"stock":        gorm.Expr("stock + ?", quantity),
			"is_low_stock": gorm.Expr(lowStockAfterIncrease, quantity),
			"updated_at":   time.Now(),
		})
	return res.RowsAffected, res.Error
}

// DecreaseStock subtracts quantity only if at least quantity units are in stock.
// Zero affected rows means the part is missing or the floor would be crossed.
func (r *PartRepository) DecreaseStock(ctx context.Context, id uuid.UUID, quantity int) (int64, error) {
	res := r.db.WithContext(ctx).Model(&models.Part{}).
		Where("id = ? AND stock >= ?", id, quantity).
		Updates(map[string]interface{}{
			"stock":        gorm.Expr("stock - ?", quantity),
			"is_low_stock": gorm.Expr(lowStockAfterDecrease, quantity),
			"updated_at":   time.Now(),
		})
	return res.RowsAffected, res.Error
}

// UpdateMinimumStock changes the threshold and recomputes the low-stock flag against current stock
func (r *PartRepository) UpdateMinimumStock(ctx context.Context, id uuid.UUID, minimumStock int) (int64, error) {
	res := r.db.WithContext(ctx).Model(&models.Part{}).
		Where("id = ?", id).
		Updates(map[string]interface{}{
			"minimum_stock": minimumStock,
			"is_low_stock":  gorm.Expr("CASE WHEN stock < ? THEN TRUE ELSE FALSE END", minimumStock),
			"updated_at":    time.Now(),
		})
	return res.RowsAffected, res.Error
}

// CountReferences returns how many ledger rows and assembly events point at the part
func (r *PartRepository) CountReferences(ctx context.Context, id uuid.UUID) (int64, error) {
	var productions, attached int64
	if err := r.db.WithContext(ctx).Model(&models.Production{}).Where("part_id = ?", id).Count(&productions).Error; err != nil {
		return 0, err
	}
	if err := r.db.WithContext(ctx).Model(&models.AircraftPart{}).Where("part_id = ?", id).Count(&attached).Error; err != nil {
		return 0, err
	}
	return productions + attached, nil
}

// Delete deletes a part
func (r *PartRepository) Delete(ctx context.Context, id uuid.UUID) error {
	return r.db.WithContext(ctx).Delete(&models.Part{}, "id = ?", id).Error
}
