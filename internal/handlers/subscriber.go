// internal/handlers/subscriber.go
package handlers

import (
	"github.com/gin-gonic/gin"

	"github.com/pricera/pricera-backend/internal/services"
	"github.com/pricera/pricera-backend/internal/utils"
)

type SubscriberHandler struct {
	subscriberService *services.SubscriberService
}

func NewSubscriberHandler(subscriberService *services.SubscriberService) *SubscriberHandler {
	return &SubscriberHandler{subscriberService: subscriberService}
}

// POST /api/subscribers
func (h *SubscriberHandler) Subscribe(c *gin.Context) {
	var req services.SubscribeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.BadRequestResponse(c, "Invalid request body", err.Error())
		return
	}
	if validationErrors := utils.GetValidationErrors(utils.ValidateStruct(&req)); len(validationErrors) > 0 {
		utils.ValidationErrorResponse(c, validationErrors)
		return
	}

	subscriber, err := h.subscriberService.Subscribe(&req)
	if err != nil {
		respondServiceError(c, err)
		return
	}
	utils.CreatedResponse(c, subscriber)
}

// DELETE /api/subscribers/:email
func (h *SubscriberHandler) Unsubscribe(c *gin.Context) {
	email := c.Param("email")

	if err := h.subscriberService.Unsubscribe(email); err != nil {
		respondServiceError(c, err)
		return
	}
	utils.MessageResponse(c, "Successfully unsubscribed")
}

// GET /api/subscribers
func (h *SubscriberHandler) GetSubscribers(c *gin.Context) {
	subscribers, err := h.subscriberService.ListActive()
	if err != nil {
		respondServiceError(c, err)
		return
	}
	utils.SuccessResponse(c, subscribers)
}
