package database

import (
	"fmt"

	"media-catalog/internal/domain/media"

	"gorm.io/driver/postgres"
	"gorm.io/gorm"
)

// Connect opens the Postgres connection and migrates the schema. The handle
// is returned to the caller and injected where needed; there is no package
// global.
func Connect(dsn string) (*gorm.DB, error) {
	db, err := gorm.Open(postgres.Open(dsn), &gorm.Config{
		TranslateError: true,
	})
	if err != nil {
		return nil, fmt.Errorf("connect to database: %w", err)
	}

	if err := db.AutoMigrate(&media.Media{}); err != nil {
		return nil, fmt.Errorf("auto-migrate: %w", err)
	}

	fmt.Println("✅ Connected and migrated successfully")
	return db, nil
}
