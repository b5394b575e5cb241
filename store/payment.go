package store

import (
	"errors"
	"fmt"
	"time"

	"rejuvenate-backend/models"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// ProcessPayment records a payment against an appointment. Each payment gets
// a generated reference and the payment date is captured at write time.
func (s *Store) ProcessPayment(customerID, appointmentID uint, amount float64) (*models.Payment, error) {
	if amount <= 0 {
		return nil, fmt.Errorf("payment amount must be greater than zero: %w", ErrValidation)
	}

	payment := models.Payment{
		CustomerID:    customerID,
		AppointmentID: appointmentID,
		Amount:        amount,
		Reference:     uuid.NewString(),
		PaymentDate:   time.Now(),
	}
	if err := s.db.Create(&payment).Error; err != nil {
		return nil, err
	}
	return &payment, nil
}

func (s *Store) GetPaymentByID(id uint) (*models.Payment, error) {
	var payment models.Payment
	if err := s.db.First(&payment, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("payment %d: %w", id, ErrNotFound)
		}
		return nil, err
	}
	return &payment, nil
}

func (s *Store) ListPayments() ([]models.Payment, error) {
	payments := []models.Payment{}
	if err := s.db.Order("payment_date").Find(&payments).Error; err != nil {
		return nil, err
	}
	return payments, nil
}

// PaymentHistory returns every payment a customer has made, oldest first.
func (s *Store) PaymentHistory(customerID uint) ([]models.Payment, error) {
	payments := []models.Payment{}
	if err := s.db.Where("customer_id = ?", customerID).Order("payment_date").Find(&payments).Error; err != nil {
		return nil, err
	}
	return payments, nil
}

// RefundPayment removes the payment row. No money movement is modeled.
func (s *Store) RefundPayment(id uint) error {
	result := s.db.Delete(&models.Payment{}, id)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return fmt.Errorf("payment %d: %w", id, ErrNotFound)
	}
	return nil
}
