// internal/services/subscriber_service_test.go
package services

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pricera/pricera-backend/internal/models"
)

func newSubscriberService(t *testing.T) (*SubscriberService, *fakeMailer) {
	t.Helper()
	db := newTestDB(t)
	mailer := &fakeMailer{}
	return NewSubscriberService(db, NewNotificationService(db, mailer)), mailer
}

func TestSubscribeCreatesActiveSubscriber(t *testing.T) {
	svc, mailer := newSubscriberService(t)

	sub, err := svc.Subscribe(&SubscribeRequest{Email: "nimal@example.com", Name: "Nimal"})
	require.NoError(t, err)

	assert.NotZero(t, sub.ID)
	assert.True(t, sub.IsActive)
	assert.Equal(t, "Nimal", sub.Name)

	require.Len(t, mailer.sent, 1)
	assert.Equal(t, "nimal@example.com", mailer.sent[0].To)
	assert.Contains(t, mailer.sent[0].Subject, "Welcome")
}

func TestSubscribeDuplicateActiveConflicts(t *testing.T) {
	svc, _ := newSubscriberService(t)

	_, err := svc.Subscribe(&SubscribeRequest{Email: "dupe@example.com"})
	require.NoError(t, err)

	_, err = svc.Subscribe(&SubscribeRequest{Email: "dupe@example.com"})
	assert.True(t, errors.Is(err, ErrConflict))
}

func TestSubscribeReactivatesSameRow(t *testing.T) {
	svc, mailer := newSubscriberService(t)

	first, err := svc.Subscribe(&SubscribeRequest{Email: "back@example.com", Name: "Old Name"})
	require.NoError(t, err)
	require.NoError(t, svc.Unsubscribe("back@example.com"))

	second, err := svc.Subscribe(&SubscribeRequest{Email: "back@example.com", Name: "New Name"})
	require.NoError(t, err)

	assert.Equal(t, first.ID, second.ID, "reactivation reuses the row")
	assert.True(t, second.IsActive)
	assert.Equal(t, "New Name", second.Name)
	assert.Len(t, mailer.sent, 2, "reactivation sends a fresh welcome")
}

func TestSubscribeInvalidEmail(t *testing.T) {
	svc, mailer := newSubscriberService(t)

	_, err := svc.Subscribe(&SubscribeRequest{Email: "not-an-email"})
	assert.True(t, errors.Is(err, ErrValidation))
	assert.Empty(t, mailer.sent)
}

func TestSubscribeSurvivesMailFailure(t *testing.T) {
	db := newTestDB(t)
	mailer := &fakeMailer{failFor: map[string]error{
		"flaky@example.com": errors.New("smtp down"),
	}}
	svc := NewSubscriberService(db, NewNotificationService(db, mailer))

	sub, err := svc.Subscribe(&SubscribeRequest{Email: "flaky@example.com"})
	require.NoError(t, err, "mail failure must not fail the subscription")
	assert.True(t, sub.IsActive)
}

func TestUnsubscribeSoftDeletes(t *testing.T) {
	svc, _ := newSubscriberService(t)

	sub, err := svc.Subscribe(&SubscribeRequest{Email: "leave@example.com"})
	require.NoError(t, err)
	require.NoError(t, svc.Unsubscribe("leave@example.com"))

	var stored models.Subscriber
	require.NoError(t, svc.db.First(&stored, sub.ID).Error, "the row stays after unsubscribe")
	assert.False(t, stored.IsActive)

	active, err := svc.ListActive()
	require.NoError(t, err)
	assert.Empty(t, active)
}

func TestUnsubscribeUnknownEmail(t *testing.T) {
	svc, _ := newSubscriberService(t)
	err := svc.Unsubscribe("ghost@example.com")
	assert.True(t, errors.Is(err, ErrNotFound))
}
