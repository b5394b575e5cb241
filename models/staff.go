package models

import (
	"time"
)

type Staff struct {
	ID   uint   `json:"id" gorm:"primarykey"`
	Name string `json:"name" gorm:"not null"`
	Role string `json:"role" gorm:"not null"` // e.g. 'Therapist', 'Receptionist', 'Manager'

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

func (Staff) TableName() string {
	return "staff"
}
