package store

import (
	"errors"
	"fmt"
	"strings"

	"rejuvenate-backend/models"

	"gorm.io/gorm"
)

// Items below this quantity show up in the low-stock report.
const lowStockThreshold = 5

func (s *Store) AddInventoryItem(productName string, quantity int) (*models.Inventory, error) {
	if strings.TrimSpace(productName) == "" {
		return nil, fmt.Errorf("product name is required: %w", ErrValidation)
	}
	if quantity < 0 {
		return nil, fmt.Errorf("quantity must not be negative: %w", ErrValidation)
	}

	item := models.Inventory{ProductName: productName, Quantity: quantity}
	if err := s.db.Create(&item).Error; err != nil {
		return nil, err
	}
	return &item, nil
}

func (s *Store) GetInventoryItemByID(id uint) (*models.Inventory, error) {
	var item models.Inventory
	if err := s.db.First(&item, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("inventory item %d: %w", id, ErrNotFound)
		}
		return nil, err
	}
	return &item, nil
}

func (s *Store) ListInventory() ([]models.Inventory, error) {
	items := []models.Inventory{}
	if err := s.db.Order("id").Find(&items).Error; err != nil {
		return nil, err
	}
	return items, nil
}

// SetStock overwrites the stock level of an item with an absolute quantity.
func (s *Store) SetStock(id uint, quantity int) (*models.Inventory, error) {
	if quantity < 0 {
		return nil, fmt.Errorf("quantity must not be negative: %w", ErrValidation)
	}

	item, err := s.GetInventoryItemByID(id)
	if err != nil {
		return nil, err
	}

	item.Quantity = quantity
	if err := s.db.Save(item).Error; err != nil {
		return nil, err
	}
	return item, nil
}

// AdjustStock applies a signed delta to the stock level. A negative delta
// larger than the current quantity fails without touching the row.
func (s *Store) AdjustStock(id uint, delta int) (*models.Inventory, error) {
	result := s.db.Model(&models.Inventory{}).
		Where("id = ? AND quantity + ? >= 0", id, delta).
		Update("quantity", gorm.Expr("quantity + ?", delta))
	if result.Error != nil {
		return nil, result.Error
	}
	if result.RowsAffected == 0 {
		if _, err := s.GetInventoryItemByID(id); err != nil {
			return nil, err
		}
		return nil, fmt.Errorf("inventory item %d: cannot remove %d units: %w", id, -delta, ErrInsufficientStock)
	}
	return s.GetInventoryItemByID(id)
}

// LowStockItems reports items running low. The threshold is fixed, not a
// stored flag, so the result tracks stock movement directly.
func (s *Store) LowStockItems() ([]models.Inventory, error) {
	items := []models.Inventory{}
	if err := s.db.Where("quantity < ?", lowStockThreshold).Order("id").Find(&items).Error; err != nil {
		return nil, err
	}
	return items, nil
}

func (s *Store) DeleteInventoryItem(id uint) error {
	result := s.db.Delete(&models.Inventory{}, id)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return fmt.Errorf("inventory item %d: %w", id, ErrNotFound)
	}
	return nil
}

// deductStock atomically subtracts quantityUsed from an inventory row. The
// conditional WHERE keeps the quantity from ever going negative, even with
// two callers racing on the same item; zero rows affected means the item is
// missing or the stock is short.
func deductStock(tx *gorm.DB, inventoryID uint, quantityUsed int) error {
	if quantityUsed <= 0 {
		return fmt.Errorf("quantity used must be greater than zero: %w", ErrValidation)
	}

	result := tx.Model(&models.Inventory{}).
		Where("id = ? AND quantity >= ?", inventoryID, quantityUsed).
		Update("quantity", gorm.Expr("quantity - ?", quantityUsed))
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		var count int64
		if err := tx.Model(&models.Inventory{}).Where("id = ?", inventoryID).Count(&count).Error; err != nil {
			return err
		}
		if count == 0 {
			return fmt.Errorf("inventory item %d: %w", inventoryID, ErrNotFound)
		}
		return fmt.Errorf("inventory item %d: %d units requested: %w", inventoryID, quantityUsed, ErrInsufficientStock)
	}
	return nil
}
