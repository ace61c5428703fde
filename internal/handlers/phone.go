// internal/handlers/phone.go
package handlers

import (
	"github.com/gin-gonic/gin"

	"github.com/pricera/pricera-backend/internal/services"
	"github.com/pricera/pricera-backend/internal/utils"
)

type PhoneHandler struct {
	phoneService *services.PhoneService
}

func NewPhoneHandler(phoneService *services.PhoneService) *PhoneHandler {
	return &PhoneHandler{phoneService: phoneService}
}

// GET /api/phones
func (h *PhoneHandler) GetPhones(c *gin.Context) {
	params, ok := pageParams(c, 10, 100)
	if !ok {
		return
	}

	phones, err := h.phoneService.ListPhones(params)
	if err != nil {
		respondServiceError(c, err)
		return
	}
	utils.SuccessResponse(c, phones)
}

// GET /api/phones/:id
func (h *PhoneHandler) GetPhone(c *gin.Context) {
	id, ok := idParam(c, "id")
	if !ok {
		return
	}

	phone, err := h.phoneService.GetPhone(id)
	if err != nil {
		respondServiceError(c, err)
		return
	}
	utils.SuccessResponse(c, phone)
}

// POST /api/phones
func (h *PhoneHandler) CreatePhone(c *gin.Context) {
	var req services.PhoneRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.BadRequestResponse(c, "Invalid request body", err.Error())
		return
	}
	if validationErrors := utils.GetValidationErrors(utils.ValidateStruct(&req)); len(validationErrors) > 0 {
		utils.ValidationErrorResponse(c, validationErrors)
		return
	}

	phone, err := h.phoneService.CreatePhone(&req)
	if err != nil {
		respondServiceError(c, err)
		return
	}
	utils.CreatedResponse(c, phone)
}

// PUT /api/phones/:id
func (h *PhoneHandler) UpdatePhone(c *gin.Context) {
	id, ok := idParam(c, "id")
	if !ok {
		return
	}

	var req services.PhoneRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.BadRequestResponse(c, "Invalid request body", err.Error())
		return
	}
	if validationErrors := utils.GetValidationErrors(utils.ValidateStruct(&req)); len(validationErrors) > 0 {
		utils.ValidationErrorResponse(c, validationErrors)
		return
	}

	phone, err := h.phoneService.UpdatePhone(id, &req)
	if err != nil {
		respondServiceError(c, err)
		return
	}
	utils.SuccessResponse(c, phone)
}

// DELETE /api/phones/:id
func (h *PhoneHandler) DeletePhone(c *gin.Context) {
	id, ok := idParam(c, "id")
	if !ok {
		return
	}

	if err := h.phoneService.DeletePhone(id); err != nil {
		respondServiceError(c, err)
		return
	}
	utils.MessageResponse(c, "Phone deleted successfully")
}

// GET /api/phones/:id/specs
func (h *PhoneHandler) GetSpecs(c *gin.Context) {
	id, ok := idParam(c, "id")
	if !ok {
		return
	}

	specs, err := h.phoneService.GetSpecs(id)
	if err != nil {
		respondServiceError(c, err)
		return
	}
	utils.SuccessResponse(c, specs)
}

// POST /api/phones/:id/specs
func (h *PhoneHandler) AddSpec(c *gin.Context) {
	id, ok := idParam(c, "id")
	if !ok {
		return
	}

	var req services.SpecRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.BadRequestResponse(c, "Invalid request body", err.Error())
		return
	}

	spec, err := h.phoneService.AddSpec(id, &req)
	if err != nil {
		respondServiceError(c, err)
		return
	}
	utils.CreatedResponse(c, spec)
}

// PUT /api/phones/:id/specs/bulk
func (h *PhoneHandler) ReplaceSpecs(c *gin.Context) {
	id, ok := idParam(c, "id")
	if !ok {
		return
	}

	var reqs []services.SpecRequest
	if err := c.ShouldBindJSON(&reqs); err != nil {
		utils.BadRequestResponse(c, "Invalid request body", err.Error())
		return
	}

	specs, err := h.phoneService.ReplaceSpecs(id, reqs)
	if err != nil {
		respondServiceError(c, err)
		return
	}
	utils.SuccessResponse(c, specs)
}
