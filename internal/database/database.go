package database

import (
	"github.com/Bullfrogs2000/webdev-rest/internal/config"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

// Connect opens the sqlite database file and caps the pool at a single
// open connection: the store is shared process-wide through one logical
// handle and serializes conflicting writes itself.
func Connect(cfg *config.Config) (*gorm.DB, error) {
	db, err := gorm.Open(sqlite.Open(cfg.DBPath), &gorm.Config{})
	if err != nil {
		return nil, err
	}

	sqlDB, err := db.DB()
	if err != nil {
		return nil, err
	}
	sqlDB.SetMaxOpenConns(1)

	return db, nil
}
