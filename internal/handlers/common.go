// internal/handlers/common.go
package handlers

import (
	"errors"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/pricera/pricera-backend/internal/services"
	"github.com/pricera/pricera-backend/internal/utils"
)

// respondServiceError maps the service error taxonomy onto HTTP statuses.
func respondServiceError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, services.ErrNotFound):
		utils.NotFoundResponse(c, err.Error())
	case errors.Is(err, services.ErrForbidden):
		utils.ForbiddenResponse(c, err.Error())
	case errors.Is(err, services.ErrConflict):
		utils.ConflictResponse(c, err.Error())
	case errors.Is(err, services.ErrValidation):
		utils.BadRequestResponse(c, err.Error(), nil)
	default:
		utils.InternalErrorResponse(c, err.Error())
	}
}

// idParam parses a positive integer path parameter.
func idParam(c *gin.Context, name string) (uint, bool) {
	value, err := strconv.ParseUint(c.Param(name), 10, 32)
	if err != nil {
		utils.BadRequestResponse(c, "Invalid "+name, nil)
		return 0, false
	}
	return uint(value), true
}

// int64Query parses a required non-negative integer query parameter.
func int64Query(c *gin.Context, name string) (int64, bool) {
	raw, ok := c.GetQuery(name)
	if !ok {
		utils.BadRequestResponse(c, name+" is required", nil)
		return 0, false
	}
	value, err := strconv.ParseInt(raw, 10, 64)
	if err != nil || value < 0 {
		utils.BadRequestResponse(c, name+" must be a non-negative integer", nil)
		return 0, false
	}
	return value, true
}

// optionalUintQuery parses an optional positive integer query parameter.
// Absent means no filter; a present but unparsable value is rejected.
func optionalUintQuery(c *gin.Context, name string) (*uint, bool) {
	raw, ok := c.GetQuery(name)
	if !ok {
		return nil, true
	}
	value, err := strconv.ParseUint(raw, 10, 32)
	if err != nil {
		utils.BadRequestResponse(c, name+" must be a positive integer", nil)
		return nil, false
	}
	id := uint(value)
	return &id, true
}

// pageParams reads skip/limit, rejecting malformed or out-of-range values.
func pageParams(c *gin.Context, defaultLimit, maxLimit int) (utils.PageParams, bool) {
	params, err := utils.GetPageParams(c, defaultLimit, maxLimit)
	if err != nil {
		utils.BadRequestResponse(c, err.Error(), nil)
		return utils.PageParams{}, false
	}
	return params, true
}
