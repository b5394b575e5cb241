package config

import (
	"os"
	"time"

	"github.com/glebarez/sqlite"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
)

// ConnectDB opens the relational store. DB_URL selects postgres; without it
// a local sqlite file keeps development and the CLI self-contained.
func ConnectDB() (*gorm.DB, error) {
	var dialector gorm.Dialector
	if dsn := os.Getenv("DB_URL"); dsn != "" {
		dialector = postgres.Open(dsn)
	} else {
		dialector = sqlite.Open("rejuvenate_spa.db")
	}

	db, err := gorm.Open(dialector, &gorm.Config{})
	if err != nil {
		return nil, err
	}

	sqlDB, err := db.DB()
	if err != nil {
		return nil, err
	}
	sqlDB.SetMaxIdleConns(25)
	sqlDB.SetMaxOpenConns(100)
	sqlDB.SetConnMaxLifetime(5 * time.Minute)

	return db, nil
}
