// internal/services/price_service.go
package services

import (
	"errors"
	"fmt"

	"github.com/sirupsen/logrus"
	"gorm.io/gorm"

	"github.com/pricera/pricera-backend/internal/models"
	"github.com/pricera/pricera-backend/internal/utils"
)

type PriceService struct {
	db               *gorm.DB
	notifications    *NotificationService
	minChangePercent float64
}

// PriceRequest carries the full price payload; updates replace every field.
type PriceRequest struct {
	PhoneID  uint   `json:"phone_id" validate:"required"`
	ShopID   uint   `json:"shop_id" validate:"required"`
	Price    int64  `json:"price" validate:"gte=0"`
	Currency string `json:"currency,omitempty" validate:"omitempty,max=10"`
	IsActive *bool  `json:"is_active,omitempty"`
}

type PriceFilter struct {
	PhoneID *uint
	ShopID  *uint
}

func NewPriceService(db *gorm.DB, notifications *NotificationService, minChangePercent float64) *PriceService {
	return &PriceService{
		db:               db,
		notifications:    notifications,
		minChangePercent: minChangePercent,
	}
}

func (s *PriceService) ListPrices(filter PriceFilter, params utils.PageParams) ([]models.ShopPrice, error) {
	query := s.db.Preload("Phone").Preload("Shop")
	if filter.PhoneID != nil {
		query = query.Where("phone_id = ?", *filter.PhoneID)
	}
	if filter.ShopID != nil {
		query = query.Where("shop_id = ?", *filter.ShopID)
	}

	var prices []models.ShopPrice
	if err := utils.ApplyPage(query, params).Find(&prices).Error; err != nil {
		return nil, fmt.Errorf("failed to list prices: %w", err)
	}
	return prices, nil
}

// PricesInRange returns active rows with price in [minPrice, maxPrice].
// Inverted bounds are rejected, not swapped.
func (s *PriceService) PricesInRange(minPrice, maxPrice int64, params utils.PageParams) ([]models.ShopPrice, error) {
	if minPrice > maxPrice {
		return nil, fmt.Errorf("%w: min_price cannot be greater than max_price", ErrValidation)
	}

	var prices []models.ShopPrice
	err := utils.ApplyPage(
		s.db.Preload("Phone").Preload("Shop").
			Where("price >= ? AND price <= ? AND is_active = ?", minPrice, maxPrice, true),
		params,
	).Find(&prices).Error
	if err != nil {
		return nil, fmt.Errorf("failed to query price range: %w", err)
	}
	return prices, nil
}

func (s *PriceService) GetPrice(id uint) (*models.ShopPrice, error) {
	var price models.ShopPrice
	if err := s.db.Preload("Phone").Preload("Shop").First(&price, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("price %d: %w", id, ErrNotFound)
		}
		return nil, fmt.Errorf("failed to load price: %w", err)
	}
	return &price, nil
}

func (s *PriceService) CreatePrice(req *PriceRequest) (*models.ShopPrice, error) {
	if err := utils.ValidateStruct(req); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrValidation, err)
	}

	if err := s.db.First(&models.Phone{}, req.PhoneID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("phone %d: %w", req.PhoneID, ErrNotFound)
		}
		return nil, fmt.Errorf("failed to load phone: %w", err)
	}
	if err := s.db.First(&models.Shop{}, req.ShopID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("shop %d: %w", req.ShopID, ErrNotFound)
		}
		return nil, fmt.Errorf("failed to load shop: %w", err)
	}

	price := &models.ShopPrice{
		PhoneID:  req.PhoneID,
		ShopID:   req.ShopID,
		Price:    req.Price,
		Currency: req.Currency,
		IsActive: true,
	}
	if price.Currency == "" {
		price.Currency = models.DefaultCurrency
	}
	if req.IsActive != nil {
		price.IsActive = *req.IsActive
	}

	if err := s.db.Create(price).Error; err != nil {
		return nil, fmt.Errorf("failed to create price: %w", err)
	}
	return price, nil
}

// UpdatePrice replaces the stored row with the payload. When the price moved
// by at least the configured percentage, every active subscriber is notified
// after the update commits. Notification failure is logged only: the update
// has already succeeded and stays successful.
func (s *PriceService) UpdatePrice(id uint, req *PriceRequest) (*models.ShopPrice, error) {
	if err := utils.ValidateStruct(req); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrValidation, err)
	}

	var price models.ShopPrice
	if err := s.db.First(&price, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("price %d: %w", id, ErrNotFound)
		}
		return nil, fmt.Errorf("failed to load price: %w", err)
	}

	oldPrice := price.Price
	newPrice := req.Price
	significant := SignificantPriceChange(oldPrice, newPrice, s.minChangePercent)

	// Phone and shop context is read before the write so the notification
	// reflects the catalog state at decision time.
	var phone models.Phone
	var shop models.Shop
	phoneErr := s.db.First(&phone, price.PhoneID).Error
	shopErr := s.db.First(&shop, price.ShopID).Error

	price.PhoneID = req.PhoneID
	price.ShopID = req.ShopID
	price.Price = req.Price
	price.Currency = req.Currency
	if price.Currency == "" {
		price.Currency = models.DefaultCurrency
	}
	price.IsActive = true
	if req.IsActive != nil {
		price.IsActive = *req.IsActive
	}

	if err := s.db.Save(&price).Error; err != nil {
		return nil, fmt.Errorf("failed to update price: %w", err)
	}

	if significant && phoneErr == nil && shopErr == nil {
		event := PriceChangeEvent{
			PhoneName: phone.DisplayName(),
			ShopName:  shop.Name,
			OldPrice:  oldPrice,
			NewPrice:  newPrice,
		}

		successCount, total, err := s.notifications.NotifyAllSubscribers(event)
		if err != nil {
			logrus.WithError(err).Warn("Price change notification fan-out failed")
		} else {
			changeType := "increase"
			if event.IsDrop() {
				changeType = "drop"
			}
			logrus.WithFields(logrus.Fields{
				"phone":  event.PhoneName,
				"shop":   event.ShopName,
				"change": changeType,
				"sent":   successCount,
				"total":  total,
				"old":    oldPrice,
				"new":    newPrice,
			}).Info("Price change notifications dispatched")
		}
	}

	return &price, nil
}

func (s *PriceService) DeletePrice(id uint) error {
	var price models.ShopPrice
	if err := s.db.First(&price, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return fmt.Errorf("price %d: %w", id, ErrNotFound)
		}
		return fmt.Errorf("failed to load price: %w", err)
	}
	if err := s.db.Delete(&price).Error; err != nil {
		return fmt.Errorf("failed to delete price: %w", err)
	}
	return nil
}

// ComparePrices lists every price row for a phone, cheapest first. A phone
// with no price rows at all is a NotFound, matching the comparison view.
func (s *PriceService) ComparePrices(phoneID uint) ([]models.ShopPrice, error) {
	var prices []models.ShopPrice
	err := s.db.Preload("Phone").Preload("Shop").
		Where("phone_id = ?", phoneID).
		Order("price").
		Find(&prices).Error
	if err != nil {
		return nil, fmt.Errorf("failed to compare prices: %w", err)
	}
	if len(prices) == 0 {
		return nil, fmt.Errorf("no prices for phone %d: %w", phoneID, ErrNotFound)
	}
	return prices, nil
}
