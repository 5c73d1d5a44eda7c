package main

import (
	"context"
	"fmt"
	"io/fs"
	"log"
	"os"
	"path/filepath"
	"strings"
	"time"

	"cortex-backend/internal/acl"
	"cortex-backend/internal/config"
	"cortex-backend/internal/database"
	apperrors "cortex-backend/internal/errors"
	"cortex-backend/internal/repository"
	"cortex-backend/internal/sandbox"
	"cortex-backend/internal/service"

	"gopkg.in/yaml.v3"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// SeedFile is one YAML file under the data directory
type SeedFile struct {
	Orgs []OrgSeed `yaml:"orgs"`
}

// OrgSeed provisions an org with its administrator and object definitions
type OrgSeed struct {
	Code    string                  `yaml:"code"`
	Name    string                  `yaml:"name"`
	Admin   service.AdminRequest    `yaml:"admin"`
	Version string                  `yaml:"version"`
	Objects []service.ObjectRequest `yaml:"objects"`
}

type seeder struct {
	orgs        *service.OrgService
	deployments *service.DeploymentService
}

func main() {
	log.Println("Loading initial data from YAML files...")

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	// Connect to database with retry (for dockerized Postgres startup)
	db, err := connectWithRetry(cfg.DatabaseURL, 60, time.Second)
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}

	dataDir := "scripts/data"
	if len(os.Args) > 1 {
		dataDir = os.Args[1]
	}

	seeds, err := loadSeeds(dataDir)
	if err != nil {
		log.Fatalf("Failed to load seed files: %v", err)
	}

	s := newSeeder(db, cfg)
	ctx := context.Background()
	created := 0
	for _, seed := range seeds {
		ok, err := s.seed(ctx, seed)
		if err != nil {
			log.Fatalf("Failed to seed org %s: %v", seed.Code, err)
		}
		if ok {
			created++
		}
	}

	log.Printf("Orgs: %d created, %d total", created, len(seeds))
	log.Println("Initial data loaded successfully")
}

func newSeeder(db *gorm.DB, cfg *config.Config) *seeder {
	validator := service.NewValidator()
	orgRepo := repository.NewOrgRepository(db)
	objectRepo := repository.NewObjectRepository(db)
	runner := sandbox.NewRunner(sandbox.Config{
		Timeout:        cfg.SandboxTimeout(),
		MaxScriptBytes: cfg.SandboxMaxScriptBytes,
	})
	objects := service.NewObjectService(objectRepo, repository.NewInstanceRepository(db), runner, validator)

	return &seeder{
		orgs:        service.NewOrgService(orgRepo, service.NewPasswordHasher(0), validator),
		deployments: service.NewDeploymentService(objects, objectRepo, repository.NewDeploymentRepository(db), orgRepo),
	}
}

// seed provisions one org and deploys its objects. Existing orgs are left untouched.
func (s *seeder) seed(ctx context.Context, seed OrgSeed) (bool, error) {
	provisioned, err := s.orgs.Provision(ctx, &service.ProvisionRequest{
		Code:  seed.Code,
		Name:  seed.Name,
		Admin: seed.Admin,
	})
	if err != nil {
		if apperrors.IsConflict(err) {
			log.Printf("Org %s already exists, skipping", seed.Code)
			return false, nil
		}
		return false, err
	}

	if len(seed.Objects) == 0 {
		return true, nil
	}

	version := seed.Version
	if version == "" {
		version = "1.0.0"
	}
	admin := acl.Principal{
		OrgID:     provisioned.Org.ID,
		AccountID: provisioned.Admin.ID,
		Email:     provisioned.Admin.Email,
		Roles:     []string{acl.RoleAdministrator},
	}
	deployment, err := s.deployments.Import(ctx, admin, service.ImportRequest{
		Bundle: &service.Bundle{
			Version:  version,
			Source:   "seed",
			Exported: time.Now().UTC(),
			Objects:  seed.Objects,
		},
	})
	if err != nil {
		return false, fmt.Errorf("failed to deploy objects: %w", err)
	}

	log.Printf("Org %s: %d objects deployed at version %s", seed.Code, deployment.Objects, deployment.Version)
	return true, nil
}

func connectWithRetry(dsn string, maxAttempts int, delay time.Duration) (*gorm.DB, error) {
	opts := &database.Options{
		LogLevel: logger.Silent,
	}

	for attempt := 1; attempt <= maxAttempts; attempt++ {
		db, err := database.Initialize(dsn, opts)
		if err == nil {
			return db, nil
		}
		// Only log every 10 attempts to reduce noise
		if attempt%10 == 0 || attempt == maxAttempts {
			log.Printf("Database not ready (%d/%d): %v", attempt, maxAttempts, err)
		}
		time.Sleep(delay)
	}
	return nil, fmt.Errorf("database not ready after %d attempts", maxAttempts)
}

func loadSeeds(dataDir string) ([]OrgSeed, error) {
	var seeds []OrgSeed

	err := filepath.WalkDir(dataDir, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if d.IsDir() || !(strings.HasSuffix(path, ".yaml") || strings.HasSuffix(path, ".yml")) {
			return nil
		}

		data, err := os.ReadFile(path)
		if err != nil {
			return err
		}
		var file SeedFile
		if err := yaml.Unmarshal(data, &file); err != nil {
			return fmt.Errorf("%s: %w", path, err)
		}
		seeds = append(seeds, file.Orgs...)
		return nil
	})

	return seeds, err
}
