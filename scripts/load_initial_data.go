package main

import (
	"context"
	"errors"
	"fmt"
	"log"
	"os"
	"path/filepath"
	"time"

	"aircraft-factory-backend/internal/catalog"
	"aircraft-factory-backend/internal/config"
	"aircraft-factory-backend/internal/database"
	apperrors "aircraft-factory-backend/internal/errors"
	"aircraft-factory-backend/internal/repository"
	"aircraft-factory-backend/internal/service"

	"github.com/google/uuid"
	"gopkg.in/yaml.v3"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

const seedActor = "seed"

// Simple structures that match the YAML files
type TeamData struct {
	Name     string   `yaml:"name"`
	TeamType string   `yaml:"team_type"`
	Members  []string `yaml:"members,omitempty"`
}

type PartData struct {
	AircraftType string `yaml:"aircraft_type"`
	TeamType     string `yaml:"team_type"`
	MinimumStock *int   `yaml:"minimum_stock,omitempty"`
	InitialStock int    `yaml:"initial_stock"`
	ProducedBy   string `yaml:"produced_by"`
}

// File structures
type TeamsFile struct {
	Teams []TeamData `yaml:"teams"`
}

type PartsFile struct {
	Parts []PartData `yaml:"parts"`
}

type seeder struct {
	store      *repository.Store
	teams      *service.TeamService
	inventory  *service.InventoryService
	production *service.ProductionService
}

func main() {
	log.Println("🚀 Loading initial data from YAML files...")

	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	cat := catalog.Default()
	if cfg.CatalogFile != "" {
		if cat, err = catalog.Load(cfg.CatalogFile); err != nil {
			log.Fatalf("Failed to load catalog: %v", err)
		}
	}

	// Connect to database with retry (for dockerized Postgres startup)
	db, err := connectWithRetry(cfg.DatabaseDriver, cfg.DSN(), 60, time.Second)
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}

	store := repository.NewStore(db)
	validator := service.NewValidator()
	s := &seeder{
		store:      store,
		teams:      service.NewTeamService(store, validator),
		inventory:  service.NewInventoryService(store, cat, validator, cfg.DefaultMinimumStock),
		production: service.NewProductionService(store, validator),
	}

	if err := s.loadDataFromYAMLFiles(context.Background(), "scripts/data"); err != nil {
		log.Fatalf("Failed to load data from YAML files: %v", err)
	}

	log.Println("✅ Initial data loaded successfully!")
}

// connectWithRetry attempts to initialize the DB with retries to wait for Postgres readiness.
func connectWithRetry(driver, dsn string, maxAttempts int, delay time.Duration) (*gorm.DB, error) {
	opts := &database.Options{
		LogLevel: logger.Silent,
	}

	for attempt := 1; attempt <= maxAttempts; attempt++ {
		db, err := database.Connect(driver, dsn, opts)
		if err == nil {
			return db, nil
		}
		if attempt%10 == 0 || attempt == maxAttempts {
			log.Printf("Database not ready (%d/%d): %v", attempt, maxAttempts, err)
		}
		time.Sleep(delay)
	}
	return nil, fmt.Errorf("database not ready after %d attempts", maxAttempts)
}

func (s *seeder) loadDataFromYAMLFiles(ctx context.Context, dataDir string) error {
	teams, err := loadTeams(dataDir)
	if err != nil {
		return fmt.Errorf("failed to load teams: %w", err)
	}

	parts, err := loadParts(dataDir)
	if err != nil {
		return fmt.Errorf("failed to load parts: %w", err)
	}

	teamMap := make(map[string]uuid.UUID)
	teamCreated := 0
	for _, teamData := range teams {
		id, created, err := s.createTeam(ctx, teamData)
		if err != nil {
			return fmt.Errorf("failed to create team %s: %w", teamData.Name, err)
		}
		teamMap[teamData.Name] = id
		if created {
			teamCreated++
		}
	}
	log.Printf("📋 Teams: %d created, %d total", teamCreated, len(teams))

	existing, err := s.existingParts(ctx)
	if err != nil {
		return err
	}

	partCreated := 0
	for _, partData := range parts {
		key := partData.AircraftType + "/" + partData.TeamType
		if _, ok := existing[key]; ok {
			continue
		}
		if err := s.createPart(ctx, partData, teamMap); err != nil {
			log.Printf("⚠️  Warning: failed to create part %s: %v", key, err)
			continue
		}
		partCreated++
	}
	log.Printf("📋 Parts: %d created, %d total", partCreated, len(parts))

	return nil
}

func (s *seeder) createTeam(ctx context.Context, data TeamData) (uuid.UUID, bool, error) {
	created := false
	team, err := s.store.Teams.GetByName(ctx, data.Name)
	switch {
	case err == nil:
	case errors.Is(err, gorm.ErrRecordNotFound):
		resp, err := s.teams.Create(ctx, &service.CreateTeamRequest{Name: data.Name, TeamType: data.TeamType})
		if err != nil {
			return uuid.Nil, false, err
		}
		team, err = s.store.Teams.GetByID(ctx, resp.ID)
		if err != nil {
			return uuid.Nil, false, err
		}
		created = true
	default:
		return uuid.Nil, false, err
	}

	for _, username := range data.Members {
		_, err := s.teams.AddMember(ctx, team.ID, &service.AddTeamMemberRequest{Username: username})
		if err != nil && !apperrors.IsAlreadyExists(err) {
			return uuid.Nil, false, fmt.Errorf("failed to add member %s: %w", username, err)
		}
	}
	return team.ID, created, nil
}

func (s *seeder) existingParts(ctx context.Context) (map[string]uuid.UUID, error) {
	parts, _, err := s.store.Parts.GetAll(ctx, repository.PartFilter{}, 1000, 0)
	if err != nil {
		return nil, fmt.Errorf("failed to list parts: %w", err)
	}
	existing := make(map[string]uuid.UUID, len(parts))
	for _, part := range parts {
		existing[string(part.AircraftType)+"/"+string(part.TeamType)] = part.ID
	}
	return existing, nil
}

// createPart creates the stock bucket and records its initial stock as a production by the owning team
func (s *seeder) createPart(ctx context.Context, data PartData, teamMap map[string]uuid.UUID) error {
	part, err := s.inventory.CreatePart(ctx, &service.CreatePartRequest{
		TeamType:     data.TeamType,
		AircraftType: data.AircraftType,
		MinimumStock: data.MinimumStock,
	})
	if err != nil {
		return err
	}

	if data.InitialStock <= 0 {
		return nil
	}
	teamID, ok := teamMap[data.ProducedBy]
	if !ok {
		return fmt.Errorf("unknown producing team %q", data.ProducedBy)
	}
	_, err = s.production.ProduceParts(ctx, teamID, &service.ProducePartsRequest{
		PartID:   part.ID,
		Quantity: data.InitialStock,
	}, seedActor)
	return err
}

func loadTeams(dataDir string) ([]TeamData, error) {
	var file TeamsFile
	if err := readYAML(filepath.Join(dataDir, "teams.yaml"), &file); err != nil {
		return nil, err
	}
	return file.Teams, nil
}

func loadParts(dataDir string) ([]PartData, error) {
	var file PartsFile
	if err := readYAML(filepath.Join(dataDir, "parts.yaml"), &file); err != nil {
		return nil, err
	}
	return file.Parts, nil
}

func readYAML(path string, out interface{}) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("failed to read %s: %w", path, err)
	}
	if err := yaml.Unmarshal(data, out); err != nil {
		return fmt.Errorf("failed to parse %s: %w", path, err)
	}
	return nil
}
