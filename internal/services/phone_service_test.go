// internal/services/phone_service_test.go
package services

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pricera/pricera-backend/internal/models"
	"github.com/pricera/pricera-backend/internal/utils"
)

func TestCreatePhoneValidatesCategory(t *testing.T) {
	svc := NewPhoneService(newTestDB(t))

	_, err := svc.CreatePhone(&PhoneRequest{
		Brand:    "Samsung",
		Model:    "Galaxy S25",
		Category: "ultra-premium",
	})
	assert.True(t, errors.Is(err, ErrValidation))
}

func TestUpdatePhoneValidatesCategory(t *testing.T) {
	db := newTestDB(t)
	phone := seedPhone(t, db, "Samsung", "Galaxy S25")
	svc := NewPhoneService(db)

	_, err := svc.UpdatePhone(phone.ID, &PhoneRequest{
		Brand:    "Samsung",
		Model:    "Galaxy S25",
		Category: "ultra-premium",
	})
	assert.True(t, errors.Is(err, ErrValidation))
}

func TestPhoneCRUD(t *testing.T) {
	svc := NewPhoneService(newTestDB(t))

	year := 2025
	created, err := svc.CreatePhone(&PhoneRequest{
		Brand:       "Samsung",
		Model:       "Galaxy S25",
		Category:    "flagship",
		ReleaseYear: &year,
	})
	require.NoError(t, err)
	assert.NotZero(t, created.ID)
	assert.Equal(t, "Samsung Galaxy S25", created.DisplayName())

	fetched, err := svc.GetPhone(created.ID)
	require.NoError(t, err)
	assert.Equal(t, models.PhoneCategoryFlagship, fetched.Category)

	updated, err := svc.UpdatePhone(created.ID, &PhoneRequest{
		Brand:    "Samsung",
		Model:    "Galaxy S25 Ultra",
		Category: "flagship",
	})
	require.NoError(t, err)
	assert.Equal(t, "Galaxy S25 Ultra", updated.Model)
	assert.Nil(t, updated.ReleaseYear, "full-replace update clears omitted fields")

	require.NoError(t, svc.DeletePhone(created.ID))
	_, err = svc.GetPhone(created.ID)
	assert.True(t, errors.Is(err, ErrNotFound))
}

func TestListPhonesPagination(t *testing.T) {
	db := newTestDB(t)
	for _, model := range []string{"A", "B", "C"} {
		seedPhone(t, db, "Brand", model)
	}
	svc := NewPhoneService(db)

	page, err := svc.ListPhones(utils.PageParams{Skip: 1, Limit: 1})
	require.NoError(t, err)
	assert.Len(t, page, 1)
}

func TestReplaceSpecs(t *testing.T) {
	db := newTestDB(t)
	phone := seedPhone(t, db, "Samsung", "Galaxy S25")
	svc := NewPhoneService(db)

	_, err := svc.AddSpec(phone.ID, &SpecRequest{KeyName: "ram", Value: "8GB"})
	require.NoError(t, err)
	_, err = svc.AddSpec(phone.ID, &SpecRequest{KeyName: "storage", Value: "128GB"})
	require.NoError(t, err)

	replaced, err := svc.ReplaceSpecs(phone.ID, []SpecRequest{
		{KeyName: "ram", Value: "12GB"},
		{KeyName: "storage", Value: "256GB"},
		{KeyName: "display", Value: "6.2in AMOLED"},
	})
	require.NoError(t, err)
	assert.Len(t, replaced, 3)

	specs, err := svc.GetSpecs(phone.ID)
	require.NoError(t, err)
	require.Len(t, specs, 3, "old specs are gone after a bulk replace")

	values := map[string]string{}
	for _, spec := range specs {
		values[spec.KeyName] = spec.Value
	}
	assert.Equal(t, "12GB", values["ram"])
}

func TestReplaceSpecsUnknownPhone(t *testing.T) {
	svc := NewPhoneService(newTestDB(t))
	_, err := svc.ReplaceSpecs(404, []SpecRequest{{KeyName: "ram", Value: "8GB"}})
	assert.True(t, errors.Is(err, ErrNotFound))
}
