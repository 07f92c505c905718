package models

import (
	"aircraft-factory-backend/internal/catalog"
)

// DefaultMinimumStock is the low-stock threshold of a newly created part
const DefaultMinimumStock = 5

// Part is a stock bucket of interchangeable units for one (category, aircraft type) pair.
// Stock is only changed through conditional updates in the part repository.
type Part struct {
	BaseModel
	Name         string               `json:"name" gorm:"size:100;not null"`
	TeamType     catalog.TeamType     `json:"team_type" gorm:"type:varchar(20);not null;index:idx_parts_category_aircraft"`
	AircraftType catalog.AircraftType `json:"aircraft_type" gorm:"type:varchar(20);not null;index:idx_parts_category_aircraft"`
	Stock        int                  `json:"stock" gorm:"not null;default:0;check:chk_parts_stock_non_negative,stock >= 0"`
	MinimumStock int                  `json:"minimum_stock" gorm:"not null;check:chk_parts_minimum_stock_non_negative,minimum_stock >= 0"`
	IsLowStock   bool                 `json:"is_low_stock" gorm:"not null;default:false;index"`
}

// TableName returns the table name for Part
func (Part) TableName() string {
	return "parts"
}

// LowStock is the single definition of the low-stock flag
func LowStock(stock, minimumStock int) bool {
	return stock < minimumStock
}

// RefreshDerived recomputes the name and low-stock flag from the stored attributes
func (p *Part) RefreshDerived() {
	p.Name = catalog.PartName(p.AircraftType, p.TeamType)
	p.IsLowStock = LowStock(p.Stock, p.MinimumStock)
}

// IsCompatibleWith reports whether the part can be mounted on the aircraft
func (p *Part) IsCompatibleWith(aircraft *Aircraft) bool {
	return aircraft != nil && p.AircraftType == aircraft.AircraftType
}
