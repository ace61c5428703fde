// internal/handlers/price.go
package handlers

import (
	"github.com/gin-gonic/gin"

	"github.com/pricera/pricera-backend/internal/services"
	"github.com/pricera/pricera-backend/internal/utils"
)

type PriceHandler struct {
	priceService *services.PriceService
}

func NewPriceHandler(priceService *services.PriceService) *PriceHandler {
	return &PriceHandler{priceService: priceService}
}

// GET /api/prices
func (h *PriceHandler) GetPrices(c *gin.Context) {
	params, ok := pageParams(c, 10, 100)
	if !ok {
		return
	}

	var filter services.PriceFilter
	if filter.PhoneID, ok = optionalUintQuery(c, "phone_id"); !ok {
		return
	}
	if filter.ShopID, ok = optionalUintQuery(c, "shop_id"); !ok {
		return
	}

	prices, err := h.priceService.ListPrices(filter, params)
	if err != nil {
		respondServiceError(c, err)
		return
	}
	utils.SuccessResponse(c, prices)
}

// GET /api/prices/range
func (h *PriceHandler) GetPricesInRange(c *gin.Context) {
	minPrice, ok := int64Query(c, "min_price")
	if !ok {
		return
	}
	maxPrice, ok := int64Query(c, "max_price")
	if !ok {
		return
	}
	params, ok := pageParams(c, 100, 500)
	if !ok {
		return
	}

	prices, err := h.priceService.PricesInRange(minPrice, maxPrice, params)
	if err != nil {
		respondServiceError(c, err)
		return
	}
	utils.SuccessResponse(c, prices)
}

// POST /api/prices
func (h *PriceHandler) CreatePrice(c *gin.Context) {
	var req services.PriceRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.BadRequestResponse(c, "Invalid request body", err.Error())
		return
	}
	if validationErrors := utils.GetValidationErrors(utils.ValidateStruct(&req)); len(validationErrors) > 0 {
		utils.ValidationErrorResponse(c, validationErrors)
		return
	}

	price, err := h.priceService.CreatePrice(&req)
	if err != nil {
		respondServiceError(c, err)
		return
	}
	utils.CreatedResponse(c, price)
}

// PUT /api/prices/:id
func (h *PriceHandler) UpdatePrice(c *gin.Context) {
	id, ok := idParam(c, "id")
	if !ok {
		return
	}

	var req services.PriceRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.BadRequestResponse(c, "Invalid request body", err.Error())
		return
	}
	if validationErrors := utils.GetValidationErrors(utils.ValidateStruct(&req)); len(validationErrors) > 0 {
		utils.ValidationErrorResponse(c, validationErrors)
		return
	}

	price, err := h.priceService.UpdatePrice(id, &req)
	if err != nil {
		respondServiceError(c, err)
		return
	}
	utils.SuccessResponse(c, price)
}

// DELETE /api/prices/:id
func (h *PriceHandler) DeletePrice(c *gin.Context) {
	id, ok := idParam(c, "id")
	if !ok {
		return
	}

	if err := h.priceService.DeletePrice(id); err != nil {
		respondServiceError(c, err)
		return
	}
	utils.MessageResponse(c, "Price deleted successfully")
}

// GET /api/prices/phone/:id/compare
func (h *PriceHandler) ComparePrices(c *gin.Context) {
	id, ok := idParam(c, "id")
	if !ok {
		return
	}

	prices, err := h.priceService.ComparePrices(id)
	if err != nil {
		respondServiceError(c, err)
		return
	}
	utils.SuccessResponse(c, prices)
}
