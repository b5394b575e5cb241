package store

import (
	"errors"
	"fmt"
	"strings"

	"rejuvenate-backend/models"

	"gorm.io/gorm"
)

// CreateCustomer persists a new customer. Name, email and phone are all
// required and the email must not belong to an existing customer.
func (s *Store) CreateCustomer(name, email, phone string) (*models.Customer, error) {
	if strings.TrimSpace(name) == "" || strings.TrimSpace(phone) == "" {
		return nil, fmt.Errorf("customer name and phone are required: %w", ErrValidation)
	}
	if strings.TrimSpace(email) == "" {
		return nil, fmt.Errorf("customer email is required: %w", ErrValidation)
	}

	var existing models.Customer
	err := s.db.Where("email = ?", email).First(&existing).Error
	if err == nil {
		return nil, fmt.Errorf("customer with email %s already exists: %w", email, ErrValidation)
	} else if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, err
	}

	customer := models.Customer{Name: name, Email: email, Phone: phone}
	if err := s.db.Create(&customer).Error; err != nil {
		return nil, err
	}
	return &customer, nil
}

func (s *Store) GetCustomerByID(id uint) (*models.Customer, error) {
	var customer models.Customer
	if err := s.db.First(&customer, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("customer %d: %w", id, ErrNotFound)
		}
		return nil, err
	}
	return &customer, nil
}

// GetCustomerByEmail looks a customer up by their unique email.
func (s *Store) GetCustomerByEmail(email string) (*models.Customer, error) {
	var customer models.Customer
	if err := s.db.Where("email = ?", email).First(&customer).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("customer with email %s: %w", email, ErrNotFound)
		}
		return nil, err
	}
	return &customer, nil
}

func (s *Store) ListCustomers() ([]models.Customer, error) {
	customers := []models.Customer{}
	if err := s.db.Order("id").Find(&customers).Error; err != nil {
		return nil, err
	}
	return customers, nil
}

// UpdateCustomer applies the provided fields to an existing customer.
// Nil fields are left untouched; UpdatedAt is refreshed either way.
func (s *Store) UpdateCustomer(id uint, name, email, phone *string) (*models.Customer, error) {
	customer, err := s.GetCustomerByID(id)
	if err != nil {
		return nil, err
	}

	if name != nil {
		if strings.TrimSpace(*name) == "" {
			return nil, fmt.Errorf("customer name must not be empty: %w", ErrValidation)
		}
		customer.Name = *name
	}
	if email != nil {
		if strings.TrimSpace(*email) == "" {
			return nil, fmt.Errorf("customer email must not be empty: %w", ErrValidation)
		}
		if *email != customer.Email {
			var existing models.Customer
			err := s.db.Where("email = ?", *email).First(&existing).Error
			if err == nil {
				return nil, fmt.Errorf("customer with email %s already exists: %w", *email, ErrValidation)
			} else if !errors.Is(err, gorm.ErrRecordNotFound) {
				return nil, err
			}
		}
		customer.Email = *email
	}
	if phone != nil {
		if strings.TrimSpace(*phone) == "" {
			return nil, fmt.Errorf("customer phone must not be empty: %w", ErrValidation)
		}
		customer.Phone = *phone
	}

	if err := s.db.Save(customer).Error; err != nil {
		return nil, err
	}
	return customer, nil
}

// DeleteCustomer removes the row. Appointments or payments referencing the
// customer are left alone; referential integrity is the database's job.
func (s *Store) DeleteCustomer(id uint) error {
	result := s.db.Delete(&models.Customer{}, id)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return fmt.Errorf("customer %d: %w", id, ErrNotFound)
	}
	return nil
}
