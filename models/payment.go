package models

import (
	"time"
)

type Payment struct {
	ID            uint    `json:"id" gorm:"primarykey"`
	CustomerID    uint    `json:"customer_id" gorm:"index;not null"`
	AppointmentID uint    `json:"appointment_id" gorm:"index;not null"`
	Amount        float64 `json:"amount" gorm:"type:decimal(10,2);not null"`
	Reference     string  `json:"reference" gorm:"uniqueIndex;not null"`

	PaymentDate time.Time `json:"payment_date"`
	UpdatedAt   time.Time `json:"updated_at"`
}
