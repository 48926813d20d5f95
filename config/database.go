package config

import (
	"fmt"

	"github.com/hanjalab/hanja-api/models"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/schema"
)

// Connect opens the database. The handle is returned rather than
// stored so tests can inject their own. Migration is separate because
// a non-default schema has to exist before tables can land in it.
func Connect(cfg Config) (*gorm.DB, error) {
	db, err := gorm.Open(postgres.Open(cfg.DatabaseURL), &gorm.Config{
		NamingStrategy: Naming(cfg.DatabaseSchema),
	})
	if err != nil {
		return nil, fmt.Errorf("failed to connect database: %w", err)
	}
	return db, nil
}

// Naming returns the naming strategy for the configured schema. Tables
// keep their singular names ("hanja", "study_progress"); a non-default
// schema becomes a table prefix so every table lands inside it.
func Naming(databaseSchema string) schema.Namer {
	prefix := ""
	if databaseSchema != "" && databaseSchema != "public" {
		prefix = databaseSchema + "."
	}
	return schema.NamingStrategy{
		TablePrefix:   prefix,
		SingularTable: true,
	}
}

// Migrate creates or updates the three tables.
func Migrate(db *gorm.DB) error {
	err := db.AutoMigrate(&models.Hanja{}, &models.StudyProgress{}, &models.PracticeProgress{})
	if err != nil {
		return fmt.Errorf("failed to auto migrate database: %w", err)
	}
	return nil
}
