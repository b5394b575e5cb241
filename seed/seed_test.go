package seed

import (
	"testing"

	"rejuvenate-backend/models"
	"rejuvenate-backend/store"

	"github.com/glebarez/sqlite"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)

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

	return db
}

func TestSeedPopulatesFixtures(t *testing.T) {
	db := newTestDB(t)
	require.NoError(t, Run(db))

	counts := map[string]interface{}{
		"customers":    &models.Customer{},
		"staff":        &models.Staff{},
		"services":     &models.Service{},
		"inventory":    &models.Inventory{},
		"appointments": &models.Appointment{},
		"payments":     &models.Payment{},
	}
	for name, model := range counts {
		var count int64
		require.NoError(t, db.Model(model).Count(&count).Error)
		require.EqualValues(t, 4, count, "table %s", name)
	}

	var links int64
	require.NoError(t, db.Model(&models.ServiceInventory{}).Count(&links).Error)
	require.EqualValues(t, 4, links)
	require.NoError(t, db.Model(&models.AppointmentInventory{}).Count(&links).Error)
	require.EqualValues(t, 4, links)
}

func TestSeedMovesStockThroughLinks(t *testing.T) {
	db := newTestDB(t)
	require.NoError(t, Run(db))

	st := store.New(db)
	items, err := st.ListInventory()
	require.NoError(t, err)
	require.Len(t, items, 4)

	// Each item starts at its fixture quantity and loses 2 (service link)
	// plus 1 (appointment usage).
	want := map[string]int{
		"Lavender Massage Oil": 17,
		"Facial Cleanser":      12,
		"Hot Stones":           7,
		"Essential Oils Set":   22,
	}
	for _, item := range items {
		require.Equal(t, want[item.ProductName], item.Quantity, item.ProductName)
	}
}

func TestSeedIsRepeatable(t *testing.T) {
	db := newTestDB(t)
	require.NoError(t, Run(db))
	require.NoError(t, Run(db))

	var count int64
	require.NoError(t, db.Model(&models.Customer{}).Count(&count).Error)
	require.EqualValues(t, 4, count)
}
