package store

import (
	"errors"
	"fmt"
	"strings"

	"rejuvenate-backend/models"

	"gorm.io/gorm"
)

func (s *Store) CreateStaff(name, role string) (*models.Staff, error) {
	if strings.TrimSpace(name) == "" || strings.TrimSpace(role) == "" {
		return nil, fmt.Errorf("staff name and role are required: %w", ErrValidation)
	}

	staff := models.Staff{Name: name, Role: role}
	if err := s.db.Create(&staff).Error; err != nil {
		return nil, err
	}
	return &staff, nil
}

func (s *Store) GetStaffByID(id uint) (*models.Staff, error) {
	var staff models.Staff
	if err := s.db.First(&staff, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("staff member %d: %w", id, ErrNotFound)
		}
		return nil, err
	}
	return &staff, nil
}

func (s *Store) ListStaff() ([]models.Staff, error) {
	staff := []models.Staff{}
	if err := s.db.Order("id").Find(&staff).Error; err != nil {
		return nil, err
	}
	return staff, nil
}

func (s *Store) ListStaffByRole(role string) ([]models.Staff, error) {
	staff := []models.Staff{}
	if err := s.db.Where("role = ?", role).Order("id").Find(&staff).Error; err != nil {
		return nil, err
	}
	return staff, nil
}

func (s *Store) UpdateStaffRole(id uint, role string) (*models.Staff, error) {
	if strings.TrimSpace(role) == "" {
		return nil, fmt.Errorf("staff role must not be empty: %w", ErrValidation)
	}

	staff, err := s.GetStaffByID(id)
	if err != nil {
		return nil, err
	}

	staff.Role = role
	if err := s.db.Save(staff).Error; err != nil {
		return nil, err
	}
	return staff, nil
}

func (s *Store) DeleteStaff(id uint) error {
	result := s.db.Delete(&models.Staff{}, id)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return fmt.Errorf("staff member %d: %w", id, ErrNotFound)
	}
	return nil
}
