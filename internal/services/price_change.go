// internal/services/price_change.go
package services

import "math"

// SignificantPriceChange reports whether replacing oldPrice with newPrice is
// a notification-worthy change: a non-zero delta whose magnitude relative to
// oldPrice is at least minPercent percent (the boundary itself counts).
//
// A zero or negative oldPrice makes the ratio undefined; such updates are
// never significant and the caller skips notification entirely.
func SignificantPriceChange(oldPrice, newPrice int64, minPercent float64) bool {
	if oldPrice <= 0 {
		return false
	}
	if oldPrice == newPrice {
		return false
	}
	delta := math.Abs(float64(newPrice-oldPrice)) / float64(oldPrice)
	return delta >= minPercent/100
}
