// internal/services/phone_service.go
package services

import (
	"errors"
	"fmt"

	"gorm.io/gorm"

	"github.com/pricera/pricera-backend/internal/database"
	"github.com/pricera/pricera-backend/internal/models"
	"github.com/pricera/pricera-backend/internal/utils"
)

type PhoneService struct {
	db *gorm.DB
}

// PhoneRequest carries the full phone payload. Updates are full-replace:
// every field overwrites the stored value.
type PhoneRequest struct {
	Brand       string `json:"brand" validate:"required,max=100"`
	Model       string `json:"model" validate:"required,max=255"`
	Category    string `json:"category" validate:"required"`
	ImageURL    string `json:"image_url,omitempty" validate:"omitempty,max=500"`
	ReleaseYear *int   `json:"release_year,omitempty"`
}

type SpecRequest struct {
	KeyName string `json:"key_name" validate:"required,max=100"`
	Value   string `json:"value" validate:"required"`
}

func NewPhoneService(db *gorm.DB) *PhoneService {
	return &PhoneService{db: db}
}

func (s *PhoneService) ListPhones(params utils.PageParams) ([]models.Phone, error) {
	var phones []models.Phone
	if err := utils.ApplyPage(s.db, params).Find(&phones).Error; err != nil {
		return nil, fmt.Errorf("failed to list phones: %w", err)
	}
	return phones, nil
}

func (s *PhoneService) GetPhone(id uint) (*models.Phone, error) {
	var phone models.Phone
	if err := s.db.First(&phone, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("phone %d: %w", id, ErrNotFound)
		}
		return nil, fmt.Errorf("failed to load phone: %w", err)
	}
	return &phone, nil
}

func (s *PhoneService) CreatePhone(req *PhoneRequest) (*models.Phone, error) {
	if err := utils.ValidateStruct(req); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrValidation, err)
	}
	category := models.PhoneCategory(req.Category)
	if !category.Valid() {
		return nil, fmt.Errorf("%w: unknown category %q", ErrValidation, req.Category)
	}

	phone := &models.Phone{
		Brand:       req.Brand,
		Model:       req.Model,
		Category:    category,
		ImageURL:    req.ImageURL,
		ReleaseYear: req.ReleaseYear,
	}
	if err := s.db.Create(phone).Error; err != nil {
		return nil, fmt.Errorf("failed to create phone: %w", err)
	}
	return phone, nil
}

func (s *PhoneService) UpdatePhone(id uint, req *PhoneRequest) (*models.Phone, error) {
	if err := utils.ValidateStruct(req); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrValidation, err)
	}
	category := models.PhoneCategory(req.Category)
	if !category.Valid() {
		return nil, fmt.Errorf("%w: unknown category %q", ErrValidation, req.Category)
	}

	phone, err := s.GetPhone(id)
	if err != nil {
		return nil, err
	}

	phone.Brand = req.Brand
	phone.Model = req.Model
	phone.Category = category
	phone.ImageURL = req.ImageURL
	phone.ReleaseYear = req.ReleaseYear

	if err := s.db.Save(phone).Error; err != nil {
		return nil, fmt.Errorf("failed to update phone: %w", err)
	}
	return phone, nil
}

// DeletePhone hard-deletes the phone; prices, specs and reviews cascade at
// the storage layer.
func (s *PhoneService) DeletePhone(id uint) error {
	phone, err := s.GetPhone(id)
	if err != nil {
		return err
	}
	if err := s.db.Delete(phone).Error; err != nil {
		return fmt.Errorf("failed to delete phone: %w", err)
	}
	return nil
}

func (s *PhoneService) GetSpecs(phoneID uint) ([]models.Spec, error) {
	if _, err := s.GetPhone(phoneID); err != nil {
		return nil, err
	}

	var specs []models.Spec
	if err := s.db.Where("phone_id = ?", phoneID).Order("key_name").Find(&specs).Error; err != nil {
		return nil, fmt.Errorf("failed to load specs: %w", err)
	}
	return specs, nil
}

func (s *PhoneService) AddSpec(phoneID uint, req *SpecRequest) (*models.Spec, error) {
	if err := utils.ValidateStruct(req); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrValidation, err)
	}
	if _, err := s.GetPhone(phoneID); err != nil {
		return nil, err
	}

	spec := &models.Spec{
		PhoneID: phoneID,
		KeyName: req.KeyName,
		Value:   req.Value,
	}
	if err := s.db.Create(spec).Error; err != nil {
		return nil, fmt.Errorf("failed to create spec: %w", err)
	}
	return spec, nil
}

// ReplaceSpecs deletes every existing spec for the phone and inserts the
// given list, atomically.
func (s *PhoneService) ReplaceSpecs(phoneID uint, reqs []SpecRequest) ([]models.Spec, error) {
	for i := range reqs {
		if err := utils.ValidateStruct(&reqs[i]); err != nil {
			return nil, fmt.Errorf("%w: %v", ErrValidation, err)
		}
	}
	if _, err := s.GetPhone(phoneID); err != nil {
		return nil, err
	}

	specs := make([]models.Spec, 0, len(reqs))
	for _, req := range reqs {
		specs = append(specs, models.Spec{
			PhoneID: phoneID,
			KeyName: req.KeyName,
			Value:   req.Value,
		})
	}

	err := database.WithTransaction(s.db, func(tx *gorm.DB) error {
		if err := tx.Where("phone_id = ?", phoneID).Delete(&models.Spec{}).Error; err != nil {
			return fmt.Errorf("failed to clear specs: %w", err)
		}
		if len(specs) == 0 {
			return nil
		}
		return tx.Create(&specs).Error
	})
	if err != nil {
		return nil, fmt.Errorf("failed to replace specs: %w", err)
	}
	return specs, nil
}
