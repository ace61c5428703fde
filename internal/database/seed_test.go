// internal/database/seed_test.go
package database

import (
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"github.com/pricera/pricera-backend/internal/models"
)

func newSeedTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	dsn := "file:seed_" + uuid.NewString() + "?mode=memory&cache=shared"
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err, "open test db")
	require.NoError(t, RunMigrations(db))
	return db
}

func TestSeedCreatesAdminWithWorkingPassword(t *testing.T) {
	db := newSeedTestDB(t)
	require.NoError(t, Seed(db))

	var admin models.User
	require.NoError(t, db.Where("email = ?", "admin@pricera.com").First(&admin).Error)
	assert.Equal(t, models.UserRoleAdmin, admin.Role)
	assert.NoError(t, admin.CheckPassword("admin123!@#"))
	assert.Error(t, admin.CheckPassword("wrong-password"))
}

func TestSeedIsIdempotent(t *testing.T) {
	db := newSeedTestDB(t)
	require.NoError(t, Seed(db))
	require.NoError(t, Seed(db))

	var shops, phones, admins int64
	require.NoError(t, db.Model(&models.Shop{}).Count(&shops).Error)
	require.NoError(t, db.Model(&models.Phone{}).Count(&phones).Error)
	require.NoError(t, db.Model(&models.User{}).Where("role = ?", models.UserRoleAdmin).Count(&admins).Error)

	assert.Equal(t, int64(4), shops)
	assert.Equal(t, int64(6), phones)
	assert.Equal(t, int64(1), admins)
}
