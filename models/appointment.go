package models

import (
	"time"
)

type Appointment struct {
	ID            uint      `json:"id" gorm:"primarykey"`
	CustomerID    uint      `json:"customer_id" gorm:"index;not null"`
	ServiceID     uint      `json:"service_id" gorm:"index;not null"`
	StaffID       uint      `json:"staff_id" gorm:"index;not null"`
	ScheduledTime time.Time `json:"scheduled_time" gorm:"not null"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
