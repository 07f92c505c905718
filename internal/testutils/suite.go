package testutils

import (
	"database/sql"
	"fmt"
	"log"
	"sync"
	"testing"
	"time"

	"aircraft-factory-backend/internal/database"

	_ "github.com/jackc/pgx/v5/stdlib" // database/sql driver for readiness ping
	"github.com/ory/dockertest/v3"
	"github.com/ory/dockertest/v3/docker"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

const (
	pgUser     = "factory"
	pgPassword = "factory"
	pgDatabase = "factory_test"
)

// One Postgres container serves every integration suite in the process.
var (
	sharedOnce     sync.Once
	sharedInitErr  error
	sharedPool     *dockertest.Pool
	sharedResource *dockertest.Resource
	sharedDB       *gorm.DB
)

// PostgresDB is a handle on the shared integration database
type PostgresDB struct {
	DB *gorm.DB
}

// SetupPostgres starts the shared container on first use and returns a handle to it.
// Row locks and concurrent conditional updates are only meaningful against a real server.
func SetupPostgres(t *testing.T) *PostgresDB {
	t.Helper()
	sharedOnce.Do(func() { sharedInitErr = startPostgres() })
	if sharedInitErr != nil {
		t.Fatalf("failed to start integration postgres: %v", sharedInitErr)
	}
	return &PostgresDB{DB: sharedDB}
}

// Reset empties every factory table, children first
func (p *PostgresDB) Reset() {
	if p.DB == nil {
		return
	}
	m := p.DB.Migrator()
	for _, table := range database.Tables() {
		if m.HasTable(table) {
			p.DB.Exec(`TRUNCATE TABLE "` + table + `" CASCADE`)
		}
	}
}

// CleanupSharedContainer purges the container; call it from TestMain after m.Run
func CleanupSharedContainer() {
	if sharedDB != nil {
		if sqlDB, err := sharedDB.DB(); err == nil {
			_ = sqlDB.Close()
		}
	}
	if sharedPool != nil && sharedResource != nil {
		log.Printf("Purging postgres container %s", sharedResource.Container.Name)
		if err := sharedPool.Purge(sharedResource); err != nil {
			log.Printf("WARN: could not purge postgres container: %v", err)
		}
	}
	sharedResource = nil
	sharedPool = nil
	sharedDB = nil
}

func startPostgres() error {
	pool, err := dockertest.NewPool("")
	if err != nil {
		return fmt.Errorf("could not connect to docker: %w", err)
	}
	sharedPool = pool

	resource, err := pool.RunWithOptions(&dockertest.RunOptions{
		Repository: "postgres",
		Tag:        "15-alpine",
		Env: []string{
			"POSTGRES_USER=" + pgUser,
			"POSTGRES_PASSWORD=" + pgPassword,
			"POSTGRES_DB=" + pgDatabase,
		},
	}, func(hc *docker.HostConfig) {
		hc.AutoRemove = true
		hc.RestartPolicy = docker.RestartPolicy{Name: "no"}
	})
	if err != nil {
		return fmt.Errorf("could not start postgres: %w", err)
	}
	sharedResource = resource

	hostPort := resource.GetPort("5432/tcp")
	dsn := fmt.Sprintf("postgres://%s:%s@127.0.0.1:%s/%s?sslmode=disable", pgUser, pgPassword, hostPort, pgDatabase)

	pool.MaxWait = 2 * time.Minute
	err = pool.Retry(func() error {
		std, err := sql.Open("pgx", dsn)
		if err != nil {
			return err
		}
		defer std.Close()
		if err := std.Ping(); err != nil {
			return err
		}

		// The concurrency suites open many transactions at once
		gdb, err := database.Connect(database.DriverPostgres, dsn, &database.Options{
			LogLevel:     logger.Silent,
			MaxOpenConns: 32,
			MaxIdleConns: 16,
		})
		if err != nil {
			return err
		}
		sharedDB = gdb
		return nil
	})
	if err != nil {
		return fmt.Errorf("postgres did not become ready: %w", err)
	}

	log.Printf("Integration postgres ready on port %s", hostPort)
	return nil
}
