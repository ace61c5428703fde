// internal/services/subscriber_service.go
package services

import (
	"errors"
	"fmt"

	"github.com/sirupsen/logrus"
	"gorm.io/gorm"

	"github.com/pricera/pricera-backend/internal/models"
	"github.com/pricera/pricera-backend/internal/utils"
)

type SubscriberService struct {
	db            *gorm.DB
	notifications *NotificationService
}

type SubscribeRequest struct {
	Email string `json:"email" validate:"required,email"`
	Name  string `json:"name,omitempty" validate:"omitempty,max=255"`
}

func NewSubscriberService(db *gorm.DB, notifications *NotificationService) *SubscriberService {
	return &SubscriberService{
		db:            db,
		notifications: notifications,
	}
}

// Subscribe is idempotent on email: an active duplicate is a Conflict, an
// inactive one is reactivated in place (same row, same id) with the name
// refreshed. New and reactivated subscribers get a welcome email;
// delivery failure never fails the subscription.
func (s *SubscriberService) Subscribe(req *SubscribeRequest) (*models.Subscriber, error) {
	if err := utils.ValidateStruct(req); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrValidation, err)
	}

	var existing models.Subscriber
	err := s.db.Where("email = ?", req.Email).First(&existing).Error
	switch {
	case err == nil:
		if existing.IsActive {
			return nil, fmt.Errorf("email already subscribed: %w", ErrConflict)
		}
		existing.IsActive = true
		existing.Name = req.Name
		if err := s.db.Save(&existing).Error; err != nil {
			return nil, fmt.Errorf("failed to reactivate subscriber: %w", err)
		}
		s.sendWelcome(&existing)
		return &existing, nil

	case errors.Is(err, gorm.ErrRecordNotFound):
		subscriber := &models.Subscriber{
			Email:    req.Email,
			Name:     req.Name,
			IsActive: true,
		}
		if err := s.db.Create(subscriber).Error; err != nil {
			return nil, fmt.Errorf("failed to create subscriber: %w", err)
		}
		s.sendWelcome(subscriber)
		return subscriber, nil

	default:
		return nil, fmt.Errorf("failed to look up subscriber: %w", err)
	}
}

// Unsubscribe soft-deletes: the row stays, is_active flips to false.
func (s *SubscriberService) Unsubscribe(email string) error {
	var subscriber models.Subscriber
	if err := s.db.Where("email = ?", email).First(&subscriber).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return fmt.Errorf("subscriber %s: %w", email, ErrNotFound)
		}
		return fmt.Errorf("failed to look up subscriber: %w", err)
	}

	subscriber.IsActive = false
	if err := s.db.Save(&subscriber).Error; err != nil {
		return fmt.Errorf("failed to unsubscribe: %w", err)
	}
	return nil
}

// ListActive returns the notification audience.
func (s *SubscriberService) ListActive() ([]models.Subscriber, error) {
	var subscribers []models.Subscriber
	if err := s.db.Where("is_active = ?", true).Find(&subscribers).Error; err != nil {
		return nil, fmt.Errorf("failed to list subscribers: %w", err)
	}
	return subscribers, nil
}

func (s *SubscriberService) sendWelcome(subscriber *models.Subscriber) {
	if err := s.notifications.SendWelcomeEmail(subscriber); err != nil {
		logrus.WithError(err).WithField("email", subscriber.Email).
			Warn("Failed to send welcome email")
	}
}
