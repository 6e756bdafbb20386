package cmd

import (
	"fmt"

	"marketplace/internal/adapters/out/postgres"

	gormpostgres "gorm.io/driver/postgres"
	"gorm.io/gorm"
)

// OpenDatabase connects to PostgreSQL and migrates every table the service owns.
func OpenDatabase(dsn string) (*gorm.DB, error) {
	gormDB, err := gorm.Open(gormpostgres.Open(dsn), &gorm.Config{})
	if err != nil {
		return nil, fmt.Errorf("connect database: %w", err)
	}

	if err := gormDB.AutoMigrate(postgres.Models()...); err != nil {
		return nil, fmt.Errorf("migrate database: %w", err)
	}

	return gormDB, nil
}
