package store

import (
	"errors"
	"fmt"
	"time"

	"rejuvenate-backend/models"

	"gorm.io/gorm"
)

// BookAppointment schedules an appointment. The time is checked against the
// clock at call time; customer/service/staff ids are taken as given, any
// referential integrity is the database's job.
func (s *Store) BookAppointment(customerID, serviceID, staffID uint, scheduledTime time.Time) (*models.Appointment, error) {
	if !scheduledTime.After(time.Now()) {
		return nil, fmt.Errorf("scheduled time must be in the future: %w", ErrValidation)
	}

	appointment := models.Appointment{
		CustomerID:    customerID,
		ServiceID:     serviceID,
		StaffID:       staffID,
		ScheduledTime: scheduledTime,
	}
	if err := s.db.Create(&appointment).Error; err != nil {
		return nil, err
	}
	return &appointment, nil
}

func (s *Store) GetAppointmentByID(id uint) (*models.Appointment, error) {
	var appointment models.Appointment
	if err := s.db.First(&appointment, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("appointment %d: %w", id, ErrNotFound)
		}
		return nil, err
	}
	return &appointment, nil
}

func (s *Store) ListAppointments() ([]models.Appointment, error) {
	appointments := []models.Appointment{}
	if err := s.db.Order("scheduled_time").Find(&appointments).Error; err != nil {
		return nil, err
	}
	return appointments, nil
}

// UpcomingAppointments returns a customer's appointments still ahead of the
// clock. There is no stored status; the answer shifts as time advances.
func (s *Store) UpcomingAppointments(customerID uint) ([]models.Appointment, error) {
	appointments := []models.Appointment{}
	err := s.db.
		Where("customer_id = ? AND scheduled_time > ?", customerID, time.Now()).
		Order("scheduled_time").
		Find(&appointments).Error
	if err != nil {
		return nil, err
	}
	return appointments, nil
}

// CancelAppointment is an unconditional hard delete.
func (s *Store) CancelAppointment(id uint) error {
	result := s.db.Delete(&models.Appointment{}, id)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return fmt.Errorf("appointment %d: %w", id, ErrNotFound)
	}
	return nil
}
