// internal/utils/pagination.go
package utils

import (
	"fmt"
	"strconv"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

type PageParams struct {
	Skip  int `json:"skip"`
	Limit int `json:"limit"`
}

// GetPageParams reads skip/limit query params. An absent parameter falls back
// to its default; a present one must be a valid integer with skip >= 0 and
// limit in [1, maxLimit].
func GetPageParams(c *gin.Context, defaultLimit, maxLimit int) (PageParams, error) {
	skip := 0
	if raw, ok := c.GetQuery("skip"); ok {
		value, err := strconv.Atoi(raw)
		if err != nil || value < 0 {
			return PageParams{}, fmt.Errorf("skip must be a non-negative integer")
		}
		skip = value
	}

	limit := defaultLimit
	if raw, ok := c.GetQuery("limit"); ok {
		value, err := strconv.Atoi(raw)
		if err != nil || value < 1 || value > maxLimit {
			return PageParams{}, fmt.Errorf("limit must be between 1 and %d", maxLimit)
		}
		limit = value
	}

	return PageParams{Skip: skip, Limit: limit}, nil
}

func ApplyPage(db *gorm.DB, params PageParams) *gorm.DB {
	return db.Offset(params.Skip).Limit(params.Limit)
}
