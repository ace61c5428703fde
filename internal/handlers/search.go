// internal/handlers/search.go
package handlers

import (
	"github.com/gin-gonic/gin"

	"github.com/pricera/pricera-backend/internal/services"
	"github.com/pricera/pricera-backend/internal/utils"
)

type SearchHandler struct {
	searchService *services.SearchService
}

func NewSearchHandler(searchService *services.SearchService) *SearchHandler {
	return &SearchHandler{searchService: searchService}
}

// GET /api/search/phones
func (h *SearchHandler) SearchPhones(c *gin.Context) {
	q := c.Query("q")
	if q == "" {
		utils.BadRequestResponse(c, "q is required", nil)
		return
	}
	params, ok := pageParams(c, 10, 100)
	if !ok {
		return
	}

	result, err := h.searchService.SearchPhones(q, params)
	if err != nil {
		respondServiceError(c, err)
		return
	}
	utils.SuccessResponse(c, result)
}

// GET /api/search/shops
func (h *SearchHandler) SearchShops(c *gin.Context) {
	q := c.Query("q")
	if q == "" {
		utils.BadRequestResponse(c, "q is required", nil)
		return
	}
	params, ok := pageParams(c, 10, 100)
	if !ok {
		return
	}

	shops, err := h.searchService.SearchShops(q, params)
	if err != nil {
		respondServiceError(c, err)
		return
	}
	utils.SuccessResponse(c, shops)
}

// GET /api/search/prices/range
func (h *SearchHandler) SearchPriceRange(c *gin.Context) {
	minPrice, ok := int64Query(c, "min_price")
	if !ok {
		return
	}
	maxPrice, ok := int64Query(c, "max_price")
	if !ok {
		return
	}
	params, ok := pageParams(c, 10, 100)
	if !ok {
		return
	}

	prices, err := h.searchService.SearchPriceRange(minPrice, maxPrice, params)
	if err != nil {
		respondServiceError(c, err)
		return
	}
	utils.SuccessResponse(c, prices)
}

// GET /api/search/by-brand
func (h *SearchHandler) SearchByBrand(c *gin.Context) {
	brand := c.Query("brand")
	if brand == "" {
		utils.BadRequestResponse(c, "brand is required", nil)
		return
	}
	params, ok := pageParams(c, 10, 100)
	if !ok {
		return
	}

	phones, err := h.searchService.SearchByBrand(brand, params)
	if err != nil {
		respondServiceError(c, err)
		return
	}
	utils.SuccessResponse(c, phones)
}
