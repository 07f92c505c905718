package repository

import (
	"context"

	"gorm.io/gorm"
)

// Store groups the repositories that share one database handle.
// Inside WithTransaction every repository of the Store passed to the
// callback is bound to the same transaction.
type Store struct {
	db            *gorm.DB
	Teams         TeamRepositoryInterface
	Parts         PartRepositoryInterface
	Productions   ProductionRepositoryInterface
	Aircraft      AircraftRepositoryInterface
	AircraftParts AircraftPartRepositoryInterface
}

// NewStore creates a Store whose repositories use db
func NewStore(db *gorm.DB) *Store {
	return &Store{
		db:            db,
		Teams:         NewTeamRepository(db),
		Parts:         NewPartRepository(db),
		Productions:   NewProductionRepository(db),
		Aircraft:      NewAircraftRepository(db),
		AircraftParts: NewAircraftPartRepository(db),
	}
}

// WithTransaction runs fn in a database transaction. Returning an error from fn
// rolls back every write made through the transactional Store.
func (s *Store) WithTransaction(ctx context.Context, fn func(tx *Store) error) error {
	return s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		return fn(NewStore(tx))
	})
}
