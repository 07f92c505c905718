package database

import (
	"fmt"
	"time"

	"aircraft-factory-backend/internal/database/models"

	"gorm.io/driver/postgres"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

const (
	DriverPostgres = "postgres"
	DriverSQLite   = "sqlite"
)

type Options struct {
	LogLevel        logger.LogLevel
	MaxOpenConns    int
	MaxIdleConns    int
	ConnMaxLifetime time.Duration
	ConnMaxIdleTime time.Duration
	SkipMigrate     bool
}

// Models lists every persisted model in dependency order
func Models() []interface{} {
	return []interface{}{
		&models.Team{},
		&models.TeamMember{},
		&models.Part{},
		&models.Production{},
		&models.Aircraft{},
		&models.AircraftPart{},
	}
}

// Tables lists the table names of Models, children first
func Tables() []string {
	return []string{
		"aircraft_parts",
		"aircraft",
		"productions",
		"parts",
		"team_members",
		"teams",
	}
}

// Initialize opens a Postgres connection and creates the schema from GORM models.
func Initialize(dsn string, opts *Options) (*gorm.DB, error) {
	return open(DriverPostgres, postgres.Open(dsn), opts)
}

// InitializeSQLite opens a SQLite database file (or a "file:...?mode=memory" DSN).
// SQLite serialises writers, so the pool is pinned to a single connection.
func InitializeSQLite(dsn string, opts *Options) (*gorm.DB, error) {
	if opts == nil {
		opts = &Options{}
	}
	opts.MaxOpenConns = 1
	opts.MaxIdleConns = 1
	return open(DriverSQLite, sqlite.Open(dsn), opts)
}

// Connect picks the dialector for the configured driver
func Connect(driver, dsn string, opts *Options) (*gorm.DB, error) {
	switch driver {
	case DriverPostgres, "":
		return Initialize(dsn, opts)
	case DriverSQLite:
		return InitializeSQLite(dsn, opts)
	}
	return nil, fmt.Errorf("unsupported database driver %q", driver)
}

func open(driver string, dialector gorm.Dialector, opts *Options) (*gorm.DB, error) {
	// Defaults
	if opts == nil {
		opts = &Options{}
	}
	if opts.LogLevel == 0 {
		opts.LogLevel = logger.Error
	}
	if opts.MaxOpenConns == 0 {
		opts.MaxOpenConns = 20
	}
	if opts.MaxIdleConns == 0 {
		opts.MaxIdleConns = 10
	}
	if opts.ConnMaxLifetime == 0 {
		opts.ConnMaxLifetime = 30 * time.Minute
	}
	if opts.ConnMaxIdleTime == 0 {
		opts.ConnMaxIdleTime = 10 * time.Minute
	}

	db, err := gorm.Open(dialector, &gorm.Config{
		Logger: logger.Default.LogMode(opts.LogLevel),
	})
	if err != nil {
		return nil, fmt.Errorf("open %s: %w", driver, err)
	}
	if sqlDB, err := db.DB(); err == nil {
		sqlDB.SetMaxOpenConns(opts.MaxOpenConns)
		sqlDB.SetMaxIdleConns(opts.MaxIdleConns)
		if driver != DriverSQLite {
			sqlDB.SetConnMaxLifetime(opts.ConnMaxLifetime)
			sqlDB.SetConnMaxIdleTime(opts.ConnMaxIdleTime)
		}
	}

	if !opts.SkipMigrate {
		if err := db.AutoMigrate(Models()...); err != nil {
			return nil, fmt.Errorf("auto-migrate: %w", err)
		}
	}

	return db, nil
}
