// internal/services/service_test.go
package services

import (
	"sync"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"github.com/pricera/pricera-backend/internal/models"
)

func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	dsn := "file:services_" + uuid.NewString() + "?mode=memory&cache=shared"
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err, "open test db")

	err = db.AutoMigrate(
		&models.Phone{},
		&models.Shop{},
		&models.ShopPrice{},
		&models.Spec{},
		&models.Review{},
		&models.Subscriber{},
	)
	require.NoError(t, err, "migrate test db")
	return db
}

type sentMail struct {
	To      string
	Subject string
	Body    string
}

// fakeMailer records sends and fails for addresses listed in failFor.
type fakeMailer struct {
	mu      sync.Mutex
	sent    []sentMail
	failFor map[string]error
}

func (m *fakeMailer) Send(to, subject, htmlBody string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if err, ok := m.failFor[to]; ok {
		return err
	}
	m.sent = append(m.sent, sentMail{To: to, Subject: subject, Body: htmlBody})
	return nil
}

func (m *fakeMailer) sentTo() []string {
	m.mu.Lock()
	defer m.mu.Unlock()
	addrs := make([]string, 0, len(m.sent))
	for _, mail := range m.sent {
		addrs = append(addrs, mail.To)
	}
	return addrs
}

func seedPhone(t *testing.T, db *gorm.DB, brand, model string) *models.Phone {
	t.Helper()
	phone := &models.Phone{Brand: brand, Model: model, Category: models.PhoneCategoryFlagship}
	require.NoError(t, db.Create(phone).Error)
	return phone
}

func seedShop(t *testing.T, db *gorm.DB, name, city string) *models.Shop {
	t.Helper()
	shop := &models.Shop{Name: name, City: city}
	require.NoError(t, db.Create(shop).Error)
	return shop
}

func seedPrice(t *testing.T, db *gorm.DB, phoneID, shopID uint, amount int64, active bool) *models.ShopPrice {
	t.Helper()
	price := &models.ShopPrice{
		PhoneID:  phoneID,
		ShopID:   shopID,
		Price:    amount,
		Currency: models.DefaultCurrency,
		IsActive: active,
	}
	require.NoError(t, db.Create(price).Error)
	return price
}

func seedSubscriber(t *testing.T, db *gorm.DB, email string, active bool) *models.Subscriber {
	t.Helper()
	sub := &models.Subscriber{Email: email, IsActive: active}
	require.NoError(t, db.Create(sub).Error)
	return sub
}
