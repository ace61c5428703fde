// internal/handlers/shop.go
package handlers

import (
	"github.com/gin-gonic/gin"

	"github.com/pricera/pricera-backend/internal/services"
	"github.com/pricera/pricera-backend/internal/utils"
)

type ShopHandler struct {
	shopService *services.ShopService
}

func NewShopHandler(shopService *services.ShopService) *ShopHandler {
	return &ShopHandler{shopService: shopService}
}

// GET /api/shops
func (h *ShopHandler) GetShops(c *gin.Context) {
	params, ok := pageParams(c, 10, 100)
	if !ok {
		return
	}

	shops, err := h.shopService.ListShops(params)
	if err != nil {
		respondServiceError(c, err)
		return
	}
	utils.SuccessResponse(c, shops)
}

// GET /api/shops/:id
func (h *ShopHandler) GetShop(c *gin.Context) {
	id, ok := idParam(c, "id")
	if !ok {
		return
	}

	shop, err := h.shopService.GetShop(id)
	if err != nil {
		respondServiceError(c, err)
		return
	}
	utils.SuccessResponse(c, shop)
}

// POST /api/shops
func (h *ShopHandler) CreateShop(c *gin.Context) {
	var req services.ShopRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.BadRequestResponse(c, "Invalid request body", err.Error())
		return
	}
	if validationErrors := utils.GetValidationErrors(utils.ValidateStruct(&req)); len(validationErrors) > 0 {
		utils.ValidationErrorResponse(c, validationErrors)
		return
	}

	shop, err := h.shopService.CreateShop(&req)
	if err != nil {
		respondServiceError(c, err)
		return
	}
	utils.CreatedResponse(c, shop)
}

// PUT /api/shops/:id
func (h *ShopHandler) UpdateShop(c *gin.Context) {
	id, ok := idParam(c, "id")
	if !ok {
		return
	}

	var req services.ShopRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.BadRequestResponse(c, "Invalid request body", err.Error())
		return
	}
	if validationErrors := utils.GetValidationErrors(utils.ValidateStruct(&req)); len(validationErrors) > 0 {
		utils.ValidationErrorResponse(c, validationErrors)
		return
	}

	shop, err := h.shopService.UpdateShop(id, &req)
	if err != nil {
		respondServiceError(c, err)
		return
	}
	utils.SuccessResponse(c, shop)
}

// DELETE /api/shops/:id
func (h *ShopHandler) DeleteShop(c *gin.Context) {
	id, ok := idParam(c, "id")
	if !ok {
		return
	}

	if err := h.shopService.DeleteShop(id); err != nil {
		respondServiceError(c, err)
		return
	}
	utils.MessageResponse(c, "Shop deleted successfully")
}
