package gormrepo

import (
	"context"
	"fmt"

	"plantverse/internal/adapter/repo/gorm/model"

	"gorm.io/driver/postgres"
	"gorm.io/gorm"
)

func OpenPostgres(dsn string) (*gorm.DB, error) {
	db, err := gorm.Open(postgres.Open(dsn), &gorm.Config{})
	if err != nil {
		return nil, fmt.Errorf("open postgres: %w", err)
	}
	return db, nil
}

// Migrate brings the schema up to date for all persisted tables.
func Migrate(ctx context.Context, db *gorm.DB) error {
	return db.WithContext(ctx).AutoMigrate(
		&model.Owner{},
		&model.Plant{},
		&model.Interaction{},
		&model.CareExecution{},
	)
}
