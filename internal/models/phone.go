// internal/models/phone.go
package models

import "time"

type Phone struct {
	ID          uint          `json:"id" gorm:"primaryKey"`
	Brand       string        `json:"brand" gorm:"size:100;not null;index"`
	Model       string        `json:"model" gorm:"size:255;not null"`
	Category    PhoneCategory `json:"category" gorm:"type:varchar(20);not null"`
	ImageURL    string        `json:"image_url,omitempty" gorm:"size:500"`
	ReleaseYear *int          `json:"release_year,omitempty"`
	CreatedAt   time.Time     `json:"created_at"`

	// Relationships
	ShopPrices []ShopPrice `json:"shop_prices,omitempty" gorm:"foreignKey:PhoneID;constraint:OnDelete:CASCADE"`
	Specs      []Spec      `json:"specs,omitempty" gorm:"foreignKey:PhoneID;constraint:OnDelete:CASCADE"`
	Reviews    []Review    `json:"reviews,omitempty" gorm:"foreignKey:PhoneID;constraint:OnDelete:CASCADE"`
}

// DisplayName is the name used in notifications and review listings.
func (p *Phone) DisplayName() string {
	return p.Brand + " " + p.Model
}

type Spec struct {
	ID      uint   `json:"id" gorm:"primaryKey"`
	PhoneID uint   `json:"phone_id" gorm:"not null;index"`
	KeyName string `json:"key_name" gorm:"size:100;not null;index"`
	Value   string `json:"value" gorm:"type:text;not null"`
}

type PhoneFeature struct {
	ID      uint    `json:"id" gorm:"primaryKey"`
	PhoneID uint    `json:"phone_id" gorm:"not null;index"`
	Feature string  `json:"feature" gorm:"size:100;not null;index"`
	Score   float64 `json:"score" gorm:"type:decimal(3,2);not null"`
}
