// internal/models/price.go
package models

import "time"

// ShopPrice is the current price of a phone at one shop. There is no price
// history: updates overwrite the row in place.
type ShopPrice struct {
	ID        uint      `json:"id" gorm:"primaryKey"`
	PhoneID   uint      `json:"phone_id" gorm:"not null;index"`
	ShopID    uint      `json:"shop_id" gorm:"not null;index"`
	Price     int64     `json:"price" gorm:"not null;index"`
	Currency  string    `json:"currency" gorm:"size:10;default:'LKR'"`
	IsActive  bool      `json:"is_active" gorm:"default:true"`
	UpdatedAt time.Time `json:"updated_at"`

	// Relationships
	Phone *Phone `json:"phone,omitempty" gorm:"foreignKey:PhoneID"`
	Shop  *Shop  `json:"shop,omitempty" gorm:"foreignKey:ShopID"`
}

type PriceAlert struct {
	ID          uint      `json:"id" gorm:"primaryKey"`
	UserID      uint      `json:"user_id" gorm:"not null;index"`
	PhoneID     uint      `json:"phone_id" gorm:"not null;index"`
	TargetPrice int64     `json:"target_price" gorm:"not null"`
	Active      bool      `json:"active" gorm:"default:true"`
	CreatedAt   time.Time `json:"created_at"`
}

type AffiliateLink struct {
	ID        uint      `json:"id" gorm:"primaryKey"`
	PhoneID   uint      `json:"phone_id" gorm:"not null;index"`
	ShopID    uint      `json:"shop_id" gorm:"not null;index"`
	Link      string    `json:"link" gorm:"size:500;not null"`
	Clicks    int64     `json:"clicks" gorm:"default:0"`
	CreatedAt time.Time `json:"created_at"`
}
