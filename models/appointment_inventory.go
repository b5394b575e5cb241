package models

import (
	"time"
)

// AppointmentInventory records inventory consumed during an appointment.
type AppointmentInventory struct {
	ID            uint `json:"id" gorm:"primarykey"`
	AppointmentID uint `json:"appointment_id" gorm:"index;not null"`
	InventoryID   uint `json:"inventory_id" gorm:"index;not null"`
	QuantityUsed  int  `json:"quantity_used" gorm:"not null"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

func (AppointmentInventory) TableName() string {
	return "appointment_inventory"
}
