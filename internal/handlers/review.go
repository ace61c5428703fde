// internal/handlers/review.go
package handlers

import (
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/pricera/pricera-backend/internal/services"
	"github.com/pricera/pricera-backend/internal/utils"
)

type ReviewHandler struct {
	reviewService *services.ReviewService
}

func NewReviewHandler(reviewService *services.ReviewService) *ReviewHandler {
	return &ReviewHandler{reviewService: reviewService}
}

// POST /api/reviews
func (h *ReviewHandler) CreateReview(c *gin.Context) {
	var req services.CreateReviewRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.BadRequestResponse(c, "Invalid request body", err.Error())
		return
	}
	if validationErrors := utils.GetValidationErrors(utils.ValidateStruct(&req)); len(validationErrors) > 0 {
		utils.ValidationErrorResponse(c, validationErrors)
		return
	}

	review, err := h.reviewService.CreateReview(&req)
	if err != nil {
		respondServiceError(c, err)
		return
	}
	utils.CreatedResponse(c, review)
}

// GET /api/reviews
func (h *ReviewHandler) GetReviews(c *gin.Context) {
	params, ok := pageParams(c, 100, 500)
	if !ok {
		return
	}

	var filter services.ReviewFilter
	if filter.PhoneID, ok = optionalUintQuery(c, "phone_id"); !ok {
		return
	}
	if raw := c.Query("rating"); raw != "" {
		rating, err := strconv.Atoi(raw)
		if err != nil || rating < 1 || rating > 5 {
			utils.BadRequestResponse(c, "rating must be between 1 and 5", nil)
			return
		}
		filter.Rating = &rating
	}

	reviews, err := h.reviewService.ListReviews(filter, params)
	if err != nil {
		respondServiceError(c, err)
		return
	}
	utils.SuccessResponse(c, reviews)
}

// GET /api/reviews/:id
func (h *ReviewHandler) GetReview(c *gin.Context) {
	id, ok := idParam(c, "id")
	if !ok {
		return
	}

	review, err := h.reviewService.GetReview(id)
	if err != nil {
		respondServiceError(c, err)
		return
	}
	utils.SuccessResponse(c, review)
}

// PUT /api/reviews/:id
// The author's user_name arrives as a query parameter; rating and comment
// travel in the body and are optional.
func (h *ReviewHandler) UpdateReview(c *gin.Context) {
	id, ok := idParam(c, "id")
	if !ok {
		return
	}

	userName := c.Query("user_name")
	if userName == "" {
		utils.BadRequestResponse(c, "user_name is required", nil)
		return
	}

	var req services.UpdateReviewRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.BadRequestResponse(c, "Invalid request body", err.Error())
		return
	}
	req.UserName = userName

	review, err := h.reviewService.UpdateReview(id, &req)
	if err != nil {
		respondServiceError(c, err)
		return
	}
	utils.SuccessResponse(c, review)
}

// PUT /api/reviews/:id/helpful
func (h *ReviewHandler) IncrementHelpful(c *gin.Context) {
	id, ok := idParam(c, "id")
	if !ok {
		return
	}

	review, err := h.reviewService.IncrementHelpful(id)
	if err != nil {
		respondServiceError(c, err)
		return
	}
	utils.SuccessResponse(c, review)
}

// DELETE /api/reviews/:id
func (h *ReviewHandler) DeleteReview(c *gin.Context) {
	id, ok := idParam(c, "id")
	if !ok {
		return
	}

	if err := h.reviewService.DeleteReview(id); err != nil {
		respondServiceError(c, err)
		return
	}
	utils.MessageResponse(c, "Review deleted successfully")
}

// GET /api/reviews/stats/summary
func (h *ReviewHandler) GetStats(c *gin.Context) {
	stats, err := h.reviewService.GetStats()
	if err != nil {
		respondServiceError(c, err)
		return
	}
	utils.SuccessResponse(c, stats)
}
