// internal/services/notification_service_test.go
package services

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pricera/pricera-backend/internal/models"
)

func TestNotifyAllSubscribersCountsFailures(t *testing.T) {
	db := newTestDB(t)
	seedSubscriber(t, db, "a@example.com", true)
	seedSubscriber(t, db, "b@example.com", true)
	seedSubscriber(t, db, "c@example.com", true)
	seedSubscriber(t, db, "gone@example.com", false)

	mailer := &fakeMailer{failFor: map[string]error{
		"b@example.com": errors.New("mailbox full"),
	}}
	svc := NewNotificationService(db, mailer)

	sent, total, err := svc.NotifyAllSubscribers(PriceChangeEvent{
		PhoneName: "Galaxy S25",
		ShopName:  "TechZone",
		OldPrice:  100000,
		NewPrice:  90000,
	})
	require.NoError(t, err)

	assert.Equal(t, 2, sent)
	assert.Equal(t, 3, total, "inactive subscribers are not addressed")
	assert.ElementsMatch(t, []string{"a@example.com", "c@example.com"}, mailer.sentTo())
}

func TestNotifyAllSubscribersNoAudience(t *testing.T) {
	db := newTestDB(t)
	mailer := &fakeMailer{}
	svc := NewNotificationService(db, mailer)

	sent, total, err := svc.NotifyAllSubscribers(PriceChangeEvent{
		PhoneName: "Pixel 10",
		ShopName:  "TechZone",
		OldPrice:  200000,
		NewPrice:  180000,
	})
	require.NoError(t, err)
	assert.Zero(t, sent)
	assert.Zero(t, total)
	assert.Empty(t, mailer.sent)
}

func TestRenderPriceChangeEmailDrop(t *testing.T) {
	svc := NewNotificationService(newTestDB(t), &fakeMailer{})

	subject, body, err := svc.RenderPriceChangeEmail(PriceChangeEvent{
		PhoneName: "Galaxy S25",
		ShopName:  "TechZone",
		OldPrice:  144900,
		NewPrice:  129900,
	})
	require.NoError(t, err)

	assert.Equal(t, "Price Drop: Galaxy S25 - Save 10.4%!", subject)
	assert.Contains(t, body, "Rs. 144,900.00")
	assert.Contains(t, body, "Rs. 129,900.00")
	assert.Contains(t, body, "Save Rs. 15,000.00")
	assert.Contains(t, body, "TechZone")
}

func TestRenderPriceChangeEmailIncrease(t *testing.T) {
	svc := NewNotificationService(newTestDB(t), &fakeMailer{})

	subject, body, err := svc.RenderPriceChangeEmail(PriceChangeEvent{
		PhoneName: "iPhone 17",
		ShopName:  "MobileHub",
		OldPrice:  100000,
		NewPrice:  105000,
	})
	require.NoError(t, err)

	assert.Equal(t, "Price Increase: iPhone 17 - Up 5.0%", subject)
	assert.Contains(t, body, "Price Increase Alert")
	assert.Contains(t, body, "Rs. 105,000.00")
}

func TestSendWelcomeEmailFallbackName(t *testing.T) {
	mailer := &fakeMailer{}
	svc := NewNotificationService(newTestDB(t), mailer)

	err := svc.SendWelcomeEmail(&models.Subscriber{Email: "new@example.com"})
	require.NoError(t, err)

	require.Len(t, mailer.sent, 1)
	assert.Equal(t, "new@example.com", mailer.sent[0].To)
	assert.Contains(t, mailer.sent[0].Body, "Hi there,")
}

func TestFormatMoney(t *testing.T) {
	assert.Equal(t, "0.00", formatMoney(0))
	assert.Equal(t, "500.00", formatMoney(500))
	assert.Equal(t, "1,000.00", formatMoney(1000))
	assert.Equal(t, "1,234,567.00", formatMoney(1234567))
	assert.Equal(t, "-15,000.00", formatMoney(-15000))
}
