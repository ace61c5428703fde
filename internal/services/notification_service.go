// internal/services/notification_service.go
package services

import (
	"bytes"
	"fmt"
	"html/template"
	"strconv"
	"strings"

	"github.com/sirupsen/logrus"
	"gorm.io/gorm"

	"github.com/pricera/pricera-backend/internal/mailer"
	"github.com/pricera/pricera-backend/internal/models"
)

type NotificationService struct {
	db     *gorm.DB
	mailer mailer.Mailer
}

type EmailTemplate struct {
	Subject string
	Body    string
}

// PriceChangeEvent is the rendered context for one price update. Amounts are
// whole currency units; OldPrice must be positive before rendering because
// the percentage divides by it.
type PriceChangeEvent struct {
	PhoneName string
	ShopName  string
	OldPrice  int64
	NewPrice  int64
}

func (e PriceChangeEvent) IsDrop() bool {
	return e.NewPrice < e.OldPrice
}

func NewNotificationService(db *gorm.DB, m mailer.Mailer) *NotificationService {
	return &NotificationService{
		db:     db,
		mailer: m,
	}
}

// NotifyAllSubscribers fans a price-change event out to every active
// subscriber, one mail per subscriber, sequentially. A failed send is logged
// and skipped; it never blocks the remaining sends. Returns how many sends
// succeeded and how many subscribers were addressed.
func (s *NotificationService) NotifyAllSubscribers(event PriceChangeEvent) (int, int, error) {
	var subscribers []models.Subscriber
	if err := s.db.Where("is_active = ?", true).Find(&subscribers).Error; err != nil {
		return 0, 0, fmt.Errorf("failed to load subscribers: %w", err)
	}

	subject, body, err := s.RenderPriceChangeEmail(event)
	if err != nil {
		return 0, len(subscribers), fmt.Errorf("failed to render notification: %w", err)
	}

	successCount := 0
	for _, subscriber := range subscribers {
		if err := s.mailer.Send(subscriber.Email, subject, body); err != nil {
			logrus.WithError(err).WithField("email", subscriber.Email).
				Warn("Failed to send price change notification")
			continue
		}
		successCount++
	}

	return successCount, len(subscribers), nil
}

// SendWelcomeEmail greets a new or reactivated subscriber. Failures are the
// caller's to ignore; subscribing never depends on mail delivery.
func (s *NotificationService) SendWelcomeEmail(subscriber *models.Subscriber) error {
	displayName := subscriber.Name
	if displayName == "" {
		displayName = "there"
	}

	body, err := renderTemplate(welcomeTemplate.Body, map[string]interface{}{
		"DisplayName": displayName,
	})
	if err != nil {
		return fmt.Errorf("failed to render welcome email: %w", err)
	}

	return s.mailer.Send(subscriber.Email, welcomeTemplate.Subject, body)
}

// RenderPriceChangeEmail builds the subject and HTML body for a price drop
// or increase. Prices render with thousands separators and two decimals,
// the percentage to one decimal place.
func (s *NotificationService) RenderPriceChangeEmail(event PriceChangeEvent) (string, string, error) {
	var delta int64
	var tmpl EmailTemplate
	if event.IsDrop() {
		delta = event.OldPrice - event.NewPrice
		tmpl = priceDropTemplate
	} else {
		delta = event.NewPrice - event.OldPrice
		tmpl = priceIncreaseTemplate
	}
	percentage := float64(delta) / float64(event.OldPrice) * 100

	data := map[string]interface{}{
		"PhoneName":  event.PhoneName,
		"ShopName":   event.ShopName,
		"OldPrice":   formatMoney(event.OldPrice),
		"NewPrice":   formatMoney(event.NewPrice),
		"Delta":      formatMoney(delta),
		"Percentage": fmt.Sprintf("%.1f", percentage),
	}

	subjectStr, err := renderTemplate(tmpl.Subject, data)
	if err != nil {
		return "", "", err
	}
	bodyStr, err := renderTemplate(tmpl.Body, data)
	if err != nil {
		return "", "", err
	}

	return subjectStr, bodyStr, nil
}

func renderTemplate(templateStr string, data interface{}) (string, error) {
	tmpl, err := template.New("email").Parse(templateStr)
	if err != nil {
		return "", err
	}

	var buf bytes.Buffer
	if err := tmpl.Execute(&buf, data); err != nil {
		return "", err
	}

	return buf.String(), nil
}

// formatMoney renders a whole-unit amount as "1,234,567.00".
func formatMoney(amount int64) string {
	negative := amount < 0
	if negative {
		amount = -amount
	}

	digits := strconv.FormatInt(amount, 10)
	var b strings.Builder
	lead := len(digits) % 3
	if lead > 0 {
		b.WriteString(digits[:lead])
	}
	for i := lead; i < len(digits); i += 3 {
		if b.Len() > 0 {
			b.WriteByte(',')
		}
		b.WriteString(digits[i : i+3])
	}
	b.WriteString(".00")

	if negative {
		return "-" + b.String()
	}
	return b.String()
}

var welcomeTemplate = EmailTemplate{
	Subject: "Welcome to Pricera - Price Alerts Activated!",
	Body: `
<!DOCTYPE html>
<html>
<body>
	<h2>Welcome to Pricera!</h2>
	<p>Hi {{.DisplayName}},</p>
	<p>Thank you for subscribing to Pricera price alerts!</p>
	<p>You'll now receive instant notifications whenever phone prices change significantly.</p>
	<p>Stay ahead of the curve and never miss a great deal!</p>
	<p>To unsubscribe, use the link at the bottom of any alert.</p>
</body>
</html>`,
}

var priceDropTemplate = EmailTemplate{
	Subject: "Price Drop: {{.PhoneName}} - Save {{.Percentage}}%!",
	Body: `
<!DOCTYPE html>
<html>
<body>
	<h1>Price Drop Alert!</h1>
	<h2>{{.PhoneName}}</h2>
	<p><strong>Shop:</strong> {{.ShopName}}</p>
	<p><s>Rs. {{.OldPrice}}</s></p>
	<p><strong>Rs. {{.NewPrice}}</strong></p>
	<p>Save Rs. {{.Delta}} ({{.Percentage}}% OFF)</p>
	<p>This is a great opportunity to grab your dream phone at a discounted price!</p>
</body>
</html>`,
}

var priceIncreaseTemplate = EmailTemplate{
	Subject: "Price Increase: {{.PhoneName}} - Up {{.Percentage}}%",
	Body: `
<!DOCTYPE html>
<html>
<body>
	<h1>Price Increase Alert</h1>
	<h2>{{.PhoneName}}</h2>
	<p><strong>Shop:</strong> {{.ShopName}}</p>
	<p>Previous price: Rs. {{.OldPrice}}</p>
	<p>New price: Rs. {{.NewPrice}}</p>
	<p>Up Rs. {{.Delta}} ({{.Percentage}}%)</p>
	<p>If you were waiting on this phone, other shops may still have it cheaper.</p>
</body>
</html>`,
}
