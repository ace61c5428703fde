// internal/models/subscriber.go
package models

import "time"

// Subscriber is soft-deleted: unsubscribing flips IsActive instead of
// removing the row, and re-subscribing reactivates the same row.
type Subscriber struct {
	ID        uint      `json:"id" gorm:"primaryKey"`
	Email     string    `json:"email" gorm:"size:255;not null;uniqueIndex"`
	Name      string    `json:"name,omitempty" gorm:"size:255"`
	IsActive  bool      `json:"is_active" gorm:"default:true"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
