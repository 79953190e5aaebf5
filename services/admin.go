package services

import (
	"errors"
	"strings"
	"time"

	"restodir-backend/models"

	"gorm.io/gorm"
)

// AuditLogWindow is how far back ListAuditLogs reaches.
const AuditLogWindow = 24 * time.Hour

// RestaurantInput carries the mutable fields for create and update. Update
// is a full replacement, so omitted fields are cleared, not preserved.
type RestaurantInput struct {
	Name         string          `json:"name" binding:"required"`
	Address      string          `json:"address" binding:"required"`
	Phone        string          `json:"phone"`
	Website      string          `json:"website"`
	CuisineType  string          `json:"cuisine_type"`
	IsKosher     bool            `json:"is_kosher"`
	OpeningHours models.Schedule `json:"opening_hours"`
}

// AdminService owns the authenticated mutation path.
type AdminService struct {
	DB *gorm.DB
}

func NewAdminService(db *gorm.DB) *AdminService {
	return &AdminService{DB: db}
}

func (s *AdminService) validate(input *RestaurantInput) error {
	input.Name = strings.TrimSpace(input.Name)
	input.Address = strings.TrimSpace(input.Address)
	if input.Name == "" {
		return validationErrorf("name is required")
	}
	if input.Address == "" {
		return validationErrorf("address is required")
	}
	if err := input.OpeningHours.Validate(); err != nil {
		return &ValidationError{Message: err.Error()}
	}
	return nil
}

// nameTaken checks the uniqueness invariant up front so the caller gets a
// clean conflict instead of a driver-specific constraint error.
func (s *AdminService) nameTaken(name string, excludeID uint) (bool, error) {
	var count int64
	query := s.DB.Model(&models.Restaurant{}).Where("name = ?", name)
	if excludeID != 0 {
		query = query.Where("id <> ?", excludeID)
	}
	if err := query.Count(&count).Error; err != nil {
		return false, err
	}
	return count > 0, nil
}

// Create validates the input and inserts a new record. Duplicate names are
// ErrNameTaken; nothing is written on a validation failure.
func (s *AdminService) Create(input RestaurantInput) (*models.Restaurant, error) {
	if err := s.validate(&input); err != nil {
		return nil, err
	}

	taken, err := s.nameTaken(input.Name, 0)
	if err != nil {
		return nil, err
	}
	if taken {
		return nil, ErrNameTaken
	}

	restaurant := models.Restaurant{
		Name:         input.Name,
		Address:      input.Address,
		Phone:        input.Phone,
		Website:      input.Website,
		CuisineType:  input.CuisineType,
		IsKosher:     input.IsKosher,
		OpeningHours: input.OpeningHours,
	}
	if err := s.DB.Create(&restaurant).Error; err != nil {
		return nil, err
	}
	return &restaurant, nil
}

// Update replaces every mutable field of an existing record. Last write
// wins; there is no version check.
func (s *AdminService) Update(id uint, input RestaurantInput) (*models.Restaurant, error) {
	if err := s.validate(&input); err != nil {
		return nil, err
	}

	var restaurant models.Restaurant
	if err := s.DB.First(&restaurant, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}

	taken, err := s.nameTaken(input.Name, id)
	if err != nil {
		return nil, err
	}
	if taken {
		return nil, ErrNameTaken
	}

	restaurant.Name = input.Name
	restaurant.Address = input.Address
	restaurant.Phone = input.Phone
	restaurant.Website = input.Website
	restaurant.CuisineType = input.CuisineType
	restaurant.IsKosher = input.IsKosher
	restaurant.OpeningHours = input.OpeningHours

	if err := s.DB.Save(&restaurant).Error; err != nil {
		return nil, err
	}
	return &restaurant, nil
}

// Delete hard-deletes a record. Deleting an id that does not exist reports
// ErrNotFound so the caller knows nothing was removed.
func (s *AdminService) Delete(id uint) error {
	result := s.DB.Delete(&models.Restaurant{}, "id = ?", id)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return ErrNotFound
	}
	return nil
}

// ListAuditLogs returns the entries written inside the window, newest first.
func (s *AdminService) ListAuditLogs() ([]models.AuditLog, error) {
	since := time.Now().Add(-AuditLogWindow)
	logs := []models.AuditLog{}
	if err := s.DB.Where("timestamp >= ?", since).Order("timestamp DESC, id DESC").Find(&logs).Error; err != nil {
		return nil, err
	}
	return logs, nil
}
