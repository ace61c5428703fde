// internal/services/shop_service.go
package services

import (
	"errors"
	"fmt"

	"gorm.io/gorm"

	"github.com/pricera/pricera-backend/internal/models"
	"github.com/pricera/pricera-backend/internal/utils"
)

type ShopService struct {
	db *gorm.DB
}

type ShopRequest struct {
	Name     string `json:"name" validate:"required,max=255"`
	City     string `json:"city,omitempty" validate:"omitempty,max=100"`
	Address  string `json:"address,omitempty"`
	Phone    string `json:"phone,omitempty" validate:"omitempty,max=50"`
	Whatsapp string `json:"whatsapp,omitempty" validate:"omitempty,max=50"`
	Website  string `json:"website,omitempty" validate:"omitempty,max=255"`
	Verified bool   `json:"verified"`
	Featured bool   `json:"featured"`
}

func NewShopService(db *gorm.DB) *ShopService {
	return &ShopService{db: db}
}

func (s *ShopService) ListShops(params utils.PageParams) ([]models.Shop, error) {
	var shops []models.Shop
	if err := utils.ApplyPage(s.db, params).Find(&shops).Error; err != nil {
		return nil, fmt.Errorf("failed to list shops: %w", err)
	}
	return shops, nil
}

func (s *ShopService) GetShop(id uint) (*models.Shop, error) {
	var shop models.Shop
	if err := s.db.First(&shop, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("shop %d: %w", id, ErrNotFound)
		}
		return nil, fmt.Errorf("failed to load shop: %w", err)
	}
	return &shop, nil
}

func (s *ShopService) CreateShop(req *ShopRequest) (*models.Shop, error) {
	if err := utils.ValidateStruct(req); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrValidation, err)
	}

	shop := &models.Shop{
		Name:     req.Name,
		City:     req.City,
		Address:  req.Address,
		Phone:    req.Phone,
		Whatsapp: req.Whatsapp,
		Website:  req.Website,
		Verified: req.Verified,
		Featured: req.Featured,
	}
	if err := s.db.Create(shop).Error; err != nil {
		return nil, fmt.Errorf("failed to create shop: %w", err)
	}
	return shop, nil
}

func (s *ShopService) UpdateShop(id uint, req *ShopRequest) (*models.Shop, error) {
	if err := utils.ValidateStruct(req); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrValidation, err)
	}

	shop, err := s.GetShop(id)
	if err != nil {
		return nil, err
	}

	shop.Name = req.Name
	shop.City = req.City
	shop.Address = req.Address
	shop.Phone = req.Phone
	shop.Whatsapp = req.Whatsapp
	shop.Website = req.Website
	shop.Verified = req.Verified
	shop.Featured = req.Featured

	if err := s.db.Save(shop).Error; err != nil {
		return nil, fmt.Errorf("failed to update shop: %w", err)
	}
	return shop, nil
}

func (s *ShopService) DeleteShop(id uint) error {
	shop, err := s.GetShop(id)
	if err != nil {
		return err
	}
	if err := s.db.Delete(shop).Error; err != nil {
		return fmt.Errorf("failed to delete shop: %w", err)
	}
	return nil
}
