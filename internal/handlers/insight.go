// internal/handlers/insight.go
package handlers

import (
	"github.com/gin-gonic/gin"

	"github.com/pricera/pricera-backend/internal/services"
	"github.com/pricera/pricera-backend/internal/utils"
)

type InsightHandler struct {
	insightService *services.InsightService
}

func NewInsightHandler(insightService *services.InsightService) *InsightHandler {
	return &InsightHandler{insightService: insightService}
}

// GET /api/ai/predict/:phone_id
func (h *InsightHandler) PredictPrice(c *gin.Context) {
	id, ok := idParam(c, "phone_id")
	if !ok {
		return
	}

	prediction, err := h.insightService.PredictPrice(id)
	if err != nil {
		respondServiceError(c, err)
		return
	}
	utils.SuccessResponse(c, prediction)
}

// GET /api/ai/price-range/:phone_id
func (h *InsightHandler) GetPriceRange(c *gin.Context) {
	id, ok := idParam(c, "phone_id")
	if !ok {
		return
	}

	priceRange, err := h.insightService.GetPriceRange(id)
	if err != nil {
		respondServiceError(c, err)
		return
	}
	utils.SuccessResponse(c, priceRange)
}

// GET /api/ai/comparison/:phone_id
func (h *InsightHandler) GetComparison(c *gin.Context) {
	id, ok := idParam(c, "phone_id")
	if !ok {
		return
	}

	comparison, err := h.insightService.GetComparison(id)
	if err != nil {
		respondServiceError(c, err)
		return
	}
	utils.SuccessResponse(c, comparison)
}
