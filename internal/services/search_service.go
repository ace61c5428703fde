// internal/services/search_service.go
package services

import (
	"fmt"
	"strings"

	"gorm.io/gorm"

	"github.com/pricera/pricera-backend/internal/models"
	"github.com/pricera/pricera-backend/internal/utils"
)

type SearchService struct {
	db *gorm.DB
}

// PhoneSearchResult is the search envelope: the page of matches plus the
// total match count across all pages.
type PhoneSearchResult struct {
	Phones     []models.Phone `json:"phones"`
	TotalCount int64          `json:"total_count"`
}

func NewSearchService(db *gorm.DB) *SearchService {
	return &SearchService{db: db}
}

// SearchPhones matches the query case-insensitively against brand or model.
func (s *SearchService) SearchPhones(q string, params utils.PageParams) (*PhoneSearchResult, error) {
	term := "%" + strings.ToLower(q) + "%"
	match := s.db.Model(&models.Phone{}).
		Where("LOWER(brand) LIKE ? OR LOWER(model) LIKE ?", term, term)

	var total int64
	if err := match.Count(&total).Error; err != nil {
		return nil, fmt.Errorf("failed to count phone matches: %w", err)
	}

	var phones []models.Phone
	if err := utils.ApplyPage(match, params).Find(&phones).Error; err != nil {
		return nil, fmt.Errorf("failed to search phones: %w", err)
	}

	return &PhoneSearchResult{Phones: phones, TotalCount: total}, nil
}

// SearchShops matches the query case-insensitively against name or city.
func (s *SearchService) SearchShops(q string, params utils.PageParams) ([]models.Shop, error) {
	term := "%" + strings.ToLower(q) + "%"

	var shops []models.Shop
	err := utils.ApplyPage(
		s.db.Where("LOWER(name) LIKE ? OR LOWER(city) LIKE ?", term, term),
		params,
	).Find(&shops).Error
	if err != nil {
		return nil, fmt.Errorf("failed to search shops: %w", err)
	}
	return shops, nil
}

// SearchPriceRange returns price rows, active or not, inside the inclusive
// bounds. Inverted bounds are rejected.
func (s *SearchService) SearchPriceRange(minPrice, maxPrice int64, params utils.PageParams) ([]models.ShopPrice, error) {
	if minPrice > maxPrice {
		return nil, fmt.Errorf("%w: min_price cannot be greater than max_price", ErrValidation)
	}

	var prices []models.ShopPrice
	err := utils.ApplyPage(
		s.db.Preload("Phone").Preload("Shop").
			Where("price >= ? AND price <= ?", minPrice, maxPrice),
		params,
	).Find(&prices).Error
	if err != nil {
		return nil, fmt.Errorf("failed to search price range: %w", err)
	}
	return prices, nil
}

// SearchByBrand matches the brand column only, case-insensitively.
func (s *SearchService) SearchByBrand(brand string, params utils.PageParams) ([]models.Phone, error) {
	term := "%" + strings.ToLower(brand) + "%"

	var phones []models.Phone
	err := utils.ApplyPage(
		s.db.Where("LOWER(brand) LIKE ?", term),
		params,
	).Find(&phones).Error
	if err != nil {
		return nil, fmt.Errorf("failed to search by brand: %w", err)
	}
	return phones, nil
}
