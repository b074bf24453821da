// Package store is the persistence gateway for the admin API. Every record
// lives in a single SQLite database file; the Store owns the handle and is
// constructed once by main, then handed to whatever layer needs it.
//
// Each operation is a single statement (its own implicit transaction).
// Cross-operation atomicity is not guaranteed; SQLite serializes conflicting
// writes internally.
package store

import (
	"fmt"
	"os"
	"path/filepath"

	"admin-api/internal/models"

	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
	"gorm.io/gorm/logger"
)

// Store owns the database handle and exposes all persistence operations.
type Store struct {
	db *gorm.DB
}

var defaultSettings = map[string]string{
	"siteName":           "Admin WebApp",
	"maintenanceMode":    "0",
	"allowRegistrations": "1",
}

// Open opens (or creates) the SQLite database at path, migrates the schema
// and seeds the default settings. Seeding never overwrites existing values,
// so reopening an existing database is safe.
func Open(path string) (*Store, error) {
	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return nil, fmt.Errorf("failed to create database directory: %w", err)
		}
	}

	db, err := gorm.Open(sqlite.Open(path+"?_foreign_keys=on"), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Warn),
	})
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}

	if err := db.AutoMigrate(
		&models.User{},
		&models.ActivityLog{},
		&models.Setting{},
		&models.File{},
		&models.Comment{},
	); err != nil {
		return nil, fmt.Errorf("failed to migrate database: %w", err)
	}

	s := &Store{db: db}
	if err := s.seedDefaultSettings(); err != nil {
		return nil, fmt.Errorf("failed to seed default settings: %w", err)
	}

	return s, nil
}

// seedDefaultSettings inserts the default settings rows, ignoring keys that
// already exist.
func (s *Store) seedDefaultSettings() error {
	for key, value := range defaultSettings {
		err := s.db.Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "key"}},
			DoNothing: true,
		}).Create(&models.Setting{Key: key, Value: value}).Error
		if err != nil {
			return err
		}
	}
	return nil
}

// Close releases the underlying database handle.
func (s *Store) Close() error {
	sqlDB, err := s.db.DB()
	if err != nil {
		return err
	}
	return sqlDB.Close()
}
