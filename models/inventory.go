package models

import (
	"time"
)

type Inventory struct {
	ID          uint   `json:"id" gorm:"primarykey"`
	ProductName string `json:"product_name" gorm:"not null"`
	Quantity    int    `json:"quantity" gorm:"not null"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

func (Inventory) TableName() string {
	return "inventory"
}
