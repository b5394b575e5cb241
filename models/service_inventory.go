package models

import (
	"time"
)

// ServiceInventory links a service to the inventory it consumes.
// Creating a link deducts QuantityUsed from the inventory row.
type ServiceInventory struct {
	ID           uint `json:"id" gorm:"primarykey"`
	ServiceID    uint `json:"service_id" gorm:"index;not null"`
	InventoryID  uint `json:"inventory_id" gorm:"index;not null"`
	QuantityUsed int  `json:"quantity_used" gorm:"not null"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

func (ServiceInventory) TableName() string {
	return "service_inventory"
}
