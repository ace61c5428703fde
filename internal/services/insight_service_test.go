// internal/services/insight_service_test.go
package services

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPredictPriceNoActivePrices(t *testing.T) {
	db := newTestDB(t)
	phone := seedPhone(t, db, "Samsung", "Galaxy S25")
	shop := seedShop(t, db, "TechZone", "Colombo")
	seedPrice(t, db, phone.ID, shop.ID, 50000, false)
	svc := NewInsightService(db)

	prediction, err := svc.PredictPrice(phone.ID)
	require.NoError(t, err)

	assert.Nil(t, prediction.PredictedPrice)
	assert.Nil(t, prediction.Confidence)
	assert.Equal(t, "No active prices found", prediction.Message)
}

func TestPredictPriceAveragesActivePrices(t *testing.T) {
	db := newTestDB(t)
	phone := seedPhone(t, db, "Samsung", "Galaxy S25")
	shopA := seedShop(t, db, "TechZone", "Colombo")
	shopB := seedShop(t, db, "MobileHub", "Kandy")
	seedPrice(t, db, phone.ID, shopA.ID, 100000, true)
	seedPrice(t, db, phone.ID, shopB.ID, 120000, true)
	svc := NewInsightService(db)

	prediction, err := svc.PredictPrice(phone.ID)
	require.NoError(t, err)

	require.NotNil(t, prediction.PredictedPrice)
	assert.Equal(t, int64(110000), *prediction.PredictedPrice)
	require.NotNil(t, prediction.Confidence)
	assert.Equal(t, PredictionConfidence, *prediction.Confidence)
	assert.Empty(t, prediction.Message)
}

func TestPredictPriceUnknownPhone(t *testing.T) {
	svc := NewInsightService(newTestDB(t))
	_, err := svc.PredictPrice(404)
	assert.True(t, errors.Is(err, ErrNotFound))
}

func TestGetPriceRangeIgnoresInactive(t *testing.T) {
	db := newTestDB(t)
	phone := seedPhone(t, db, "Samsung", "Galaxy S25")
	shopA := seedShop(t, db, "TechZone", "Colombo")
	shopB := seedShop(t, db, "MobileHub", "Kandy")
	shopC := seedShop(t, db, "PhoneMart", "Galle")
	seedPrice(t, db, phone.ID, shopA.ID, 100000, true)
	seedPrice(t, db, phone.ID, shopB.ID, 120000, true)
	seedPrice(t, db, phone.ID, shopC.ID, 50000, false)
	svc := NewInsightService(db)

	r, err := svc.GetPriceRange(phone.ID)
	require.NoError(t, err)

	require.NotNil(t, r.MinPrice)
	require.NotNil(t, r.MaxPrice)
	require.NotNil(t, r.AvgPrice)
	assert.Equal(t, int64(100000), *r.MinPrice)
	assert.Equal(t, int64(120000), *r.MaxPrice)
	assert.Equal(t, int64(110000), *r.AvgPrice)
	assert.Equal(t, int64(2), r.ShopCount)
}

func TestGetPriceRangeNoData(t *testing.T) {
	db := newTestDB(t)
	phone := seedPhone(t, db, "Samsung", "Galaxy S25")
	svc := NewInsightService(db)

	r, err := svc.GetPriceRange(phone.ID)
	require.NoError(t, err)

	assert.Nil(t, r.MinPrice)
	assert.Nil(t, r.MaxPrice)
	assert.Nil(t, r.AvgPrice)
	assert.Zero(t, r.ShopCount)
}

func TestGetComparison(t *testing.T) {
	db := newTestDB(t)
	phone := seedPhone(t, db, "Samsung", "Galaxy S25")
	shop := seedShop(t, db, "TechZone", "Colombo")
	seedPrice(t, db, phone.ID, shop.ID, 100000, true)
	seedPrice(t, db, phone.ID, shop.ID, 90000, false)
	svc := NewInsightService(db)

	comparison, err := svc.GetComparison(phone.ID)
	require.NoError(t, err)

	assert.Equal(t, phone.ID, comparison.Phone.ID)
	require.Len(t, comparison.Prices, 1, "inactive prices are excluded")
	require.NotNil(t, comparison.Prices[0].Shop)
	assert.Equal(t, "TechZone", comparison.Prices[0].Shop.Name)
}

func TestGetComparisonUnknownPhone(t *testing.T) {
	svc := NewInsightService(newTestDB(t))
	_, err := svc.GetComparison(404)
	assert.True(t, errors.Is(err, ErrNotFound))
}
