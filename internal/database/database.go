package database

import (
	"fmt"

	"github.com/ajcraig99/tornticker/internal/models"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// Initialize opens (creating if absent) the SQLite database at path and
// runs the additive auto-migration for all collector tables. Safe to call
// against an existing database file.
func Initialize(path string) (*gorm.DB, error) {
	db, err := gorm.Open(sqlite.Open(path), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	if err != nil {
		return nil, fmt.Errorf("failed to open sqlite database at %s: %w", path, err)
	}

	if err := db.AutoMigrate(
		&models.Item{},
		&models.ItemPrice{},
		&models.BankRate{},
		&models.PointsMarket{},
		&models.Stats{},
	); err != nil {
		return nil, fmt.Errorf("failed to migrate schema: %w", err)
	}

	return db, nil
}
