package store

import (
	"errors"
	"fmt"
	"strings"

	"rejuvenate-backend/models"

	"gorm.io/gorm"
)

func (s *Store) CreateService(name, description string, price float64) (*models.Service, error) {
	if strings.TrimSpace(name) == "" {
		return nil, fmt.Errorf("service name is required: %w", ErrValidation)
	}
	if price <= 0 {
		return nil, fmt.Errorf("service price must be greater than zero: %w", ErrValidation)
	}

	service := models.Service{Name: name, Description: description, Price: price}
	if err := s.db.Create(&service).Error; err != nil {
		return nil, err
	}
	return &service, nil
}

func (s *Store) GetServiceByID(id uint) (*models.Service, error) {
	var service models.Service
	if err := s.db.First(&service, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("service %d: %w", id, ErrNotFound)
		}
		return nil, err
	}
	return &service, nil
}

// ListServices returns every service; an empty catalogue is not an error.
func (s *Store) ListServices() ([]models.Service, error) {
	services := []models.Service{}
	if err := s.db.Order("id").Find(&services).Error; err != nil {
		return nil, err
	}
	return services, nil
}

func (s *Store) UpdateService(id uint, name, description *string, price *float64) (*models.Service, error) {
	service, err := s.GetServiceByID(id)
	if err != nil {
		return nil, err
	}

	if name != nil {
		if strings.TrimSpace(*name) == "" {
			return nil, fmt.Errorf("service name must not be empty: %w", ErrValidation)
		}
		service.Name = *name
	}
	if description != nil {
		service.Description = *description
	}
	if price != nil {
		if *price <= 0 {
			return nil, fmt.Errorf("service price must be greater than zero: %w", ErrValidation)
		}
		service.Price = *price
	}

	if err := s.db.Save(service).Error; err != nil {
		return nil, err
	}
	return service, nil
}

func (s *Store) DeleteService(id uint) error {
	result := s.db.Delete(&models.Service{}, id)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return fmt.Errorf("service %d: %w", id, ErrNotFound)
	}
	return nil
}
