// internal/services/insight_service.go
package services

import (
	"database/sql"
	"errors"
	"fmt"

	"gorm.io/gorm"

	"github.com/pricera/pricera-backend/internal/models"
)

// InsightService computes the aggregate price views: the naive prediction,
// the min/max/avg range, and the per-shop comparison.
type InsightService struct {
	db *gorm.DB
}

// PredictionConfidence is the fixed confidence reported alongside the
// average-price "prediction".
const PredictionConfidence = 0.85

type PricePrediction struct {
	PhoneID        uint     `json:"phone_id"`
	PredictedPrice *int64   `json:"predicted_price"`
	Confidence     *float64 `json:"confidence,omitempty"`
	Message        string   `json:"message,omitempty"`
}

// PriceRange reports nil min/max/avg when the phone has no active prices;
// "no data" is distinct from zero.
type PriceRange struct {
	PhoneID   uint   `json:"phone_id"`
	MinPrice  *int64 `json:"min_price"`
	MaxPrice  *int64 `json:"max_price"`
	AvgPrice  *int64 `json:"avg_price"`
	ShopCount int64  `json:"shop_count"`
}

type PriceComparison struct {
	Phone  *models.Phone      `json:"phone"`
	Prices []models.ShopPrice `json:"prices"`
}

func NewInsightService(db *gorm.DB) *InsightService {
	return &InsightService{db: db}
}

func (s *InsightService) getPhone(phoneID uint) (*models.Phone, error) {
	var phone models.Phone
	if err := s.db.First(&phone, phoneID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("phone %d: %w", phoneID, ErrNotFound)
		}
		return nil, fmt.Errorf("failed to load phone: %w", err)
	}
	return &phone, nil
}

// PredictPrice returns the mean active price as a naive prediction.
func (s *InsightService) PredictPrice(phoneID uint) (*PricePrediction, error) {
	if _, err := s.getPhone(phoneID); err != nil {
		return nil, err
	}

	var avg sql.NullFloat64
	err := s.db.Model(&models.ShopPrice{}).
		Where("phone_id = ? AND is_active = ?", phoneID, true).
		Select("AVG(price)").
		Scan(&avg).Error
	if err != nil {
		return nil, fmt.Errorf("failed to compute average price: %w", err)
	}

	if !avg.Valid {
		return &PricePrediction{
			PhoneID: phoneID,
			Message: "No active prices found",
		}, nil
	}

	predicted := int64(avg.Float64)
	confidence := PredictionConfidence
	return &PricePrediction{
		PhoneID:        phoneID,
		PredictedPrice: &predicted,
		Confidence:     &confidence,
	}, nil
}

// GetPriceRange computes min, max and mean over active prices plus the
// number of shops carrying the phone.
func (s *InsightService) GetPriceRange(phoneID uint) (*PriceRange, error) {
	if _, err := s.getPhone(phoneID); err != nil {
		return nil, err
	}

	var row struct {
		MinPrice  sql.NullInt64
		MaxPrice  sql.NullInt64
		AvgPrice  sql.NullFloat64
		ShopCount int64
	}
	err := s.db.Model(&models.ShopPrice{}).
		Where("phone_id = ? AND is_active = ?", phoneID, true).
		Select("MIN(price) AS min_price, MAX(price) AS max_price, AVG(price) AS avg_price, COUNT(id) AS shop_count").
		Scan(&row).Error
	if err != nil {
		return nil, fmt.Errorf("failed to compute price range: %w", err)
	}

	result := &PriceRange{PhoneID: phoneID, ShopCount: row.ShopCount}
	if row.MinPrice.Valid {
		result.MinPrice = &row.MinPrice.Int64
	}
	if row.MaxPrice.Valid {
		result.MaxPrice = &row.MaxPrice.Int64
	}
	if row.AvgPrice.Valid {
		avg := int64(row.AvgPrice.Float64)
		result.AvgPrice = &avg
	}
	return result, nil
}

// GetComparison returns the phone with its active prices in storage order;
// callers sort client-side.
func (s *InsightService) GetComparison(phoneID uint) (*PriceComparison, error) {
	phone, err := s.getPhone(phoneID)
	if err != nil {
		return nil, err
	}

	var prices []models.ShopPrice
	err = s.db.Preload("Shop").
		Where("phone_id = ? AND is_active = ?", phoneID, true).
		Find(&prices).Error
	if err != nil {
		return nil, fmt.Errorf("failed to load prices: %w", err)
	}

	return &PriceComparison{Phone: phone, Prices: prices}, nil
}
