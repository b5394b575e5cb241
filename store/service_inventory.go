package store

import (
	"rejuvenate-backend/models"

	"gorm.io/gorm"
)

// LinkServiceInventory links a service to an inventory item and deducts the
// per-service usage from stock. The link row and the stock decrement commit
// in the same transaction; on any failure neither is written.
func (s *Store) LinkServiceInventory(serviceID, inventoryID uint, quantityUsed int) (*models.ServiceInventory, error) {
	var link models.ServiceInventory
	err := s.db.Transaction(func(tx *gorm.DB) error {
		if err := deductStock(tx, inventoryID, quantityUsed); err != nil {
			return err
		}
		link = models.ServiceInventory{
			ServiceID:    serviceID,
			InventoryID:  inventoryID,
			QuantityUsed: quantityUsed,
		}
		return tx.Create(&link).Error
	})
	if err != nil {
		return nil, err
	}
	return &link, nil
}

// InventoryForService lists the inventory links of one service.
func (s *Store) InventoryForService(serviceID uint) ([]models.ServiceInventory, error) {
	links := []models.ServiceInventory{}
	if err := s.db.Where("service_id = ?", serviceID).Order("id").Find(&links).Error; err != nil {
		return nil, err
	}
	return links, nil
}
