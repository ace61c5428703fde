// internal/models/review.go
package models

import "time"

// Review carries no real ownership model: the stored user_name is the only
// edit token, matched case-sensitively on update.
type Review struct {
	ID        uint      `json:"id" gorm:"primaryKey"`
	PhoneID   uint      `json:"phone_id" gorm:"not null;index"`
	UserName  string    `json:"user_name" gorm:"size:255;not null"`
	Rating    int       `json:"rating" gorm:"not null"`
	Comment   string    `json:"comment" gorm:"type:text"`
	Helpful   int64     `json:"helpful" gorm:"default:0"`
	CreatedAt time.Time `json:"created_at"`
}
