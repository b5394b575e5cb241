package store

import (
	"testing"

	"rejuvenate-backend/models"

	"github.com/glebarez/sqlite"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

func newTestStore(t *testing.T) *Store {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)

	// A second pool connection would get its own empty in-memory database.
	sqlDB, err := db.DB()
	require.NoError(t, err)
	sqlDB.SetMaxOpenConns(1)

	require.NoError(t, db.AutoMigrate(
		&models.Customer{},
		&models.Staff{},
		&models.Service{},
		&models.Inventory{},
		&models.Appointment{},
		&models.Payment{},
		&models.ServiceInventory{},
		&models.AppointmentInventory{},
		&models.ReminderLog{},
	))

	return New(db)
}
