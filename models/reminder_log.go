// models/reminder_log.go
package models

import (
	"time"
)

type ReminderLog struct {
	ID            uint      `json:"id" gorm:"primarykey"`
	AppointmentID uint      `json:"appointment_id" gorm:"index;not null"`
	CustomerID    uint      `json:"customer_id" gorm:"index;not null"`
	Phone         string    `json:"phone" gorm:"type:varchar(20)"`
	Message       string    `json:"message" gorm:"type:text"`
	Status        string    `json:"status" gorm:"type:varchar(20)"` // sent, failed
	ErrorMessage  string    `json:"error_message" gorm:"type:text"`
	SentAt        time.Time `json:"sent_at"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
