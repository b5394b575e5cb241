package store

import (
	"fmt"

	"rejuvenate-backend/models"

	"gorm.io/gorm"
)

// RecordInventoryUsage writes a usage row for an appointment without moving
// stock. Pair it with DeductInventoryUsage when the stock should move too.
func (s *Store) RecordInventoryUsage(appointmentID, inventoryID uint, quantityUsed int) (*models.AppointmentInventory, error) {
	if quantityUsed <= 0 {
		return nil, fmt.Errorf("quantity used must be greater than zero: %w", ErrValidation)
	}

	usage := models.AppointmentInventory{
		AppointmentID: appointmentID,
		InventoryID:   inventoryID,
		QuantityUsed:  quantityUsed,
	}
	if err := s.db.Create(&usage).Error; err != nil {
		return nil, err
	}
	return &usage, nil
}

// DeductInventoryUsage records appointment-level usage and deducts it from
// stock in one transaction, following the same protocol as service linking.
func (s *Store) DeductInventoryUsage(appointmentID, inventoryID uint, quantityUsed int) (*models.AppointmentInventory, error) {
	var usage models.AppointmentInventory
	err := s.db.Transaction(func(tx *gorm.DB) error {
		if err := deductStock(tx, inventoryID, quantityUsed); err != nil {
			return err
		}
		usage = models.AppointmentInventory{
			AppointmentID: appointmentID,
			InventoryID:   inventoryID,
			QuantityUsed:  quantityUsed,
		}
		return tx.Create(&usage).Error
	})
	if err != nil {
		return nil, err
	}
	return &usage, nil
}

// UsageForAppointment lists the inventory consumed by one appointment.
func (s *Store) UsageForAppointment(appointmentID uint) ([]models.AppointmentInventory, error) {
	usages := []models.AppointmentInventory{}
	if err := s.db.Where("appointment_id = ?", appointmentID).Order("id").Find(&usages).Error; err != nil {
		return nil, err
	}
	return usages, nil
}
