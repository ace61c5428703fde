// internal/models/shop.go
package models

import "time"

type Shop struct {
	ID        uint      `json:"id" gorm:"primaryKey"`
	Name      string    `json:"name" gorm:"size:255;not null"`
	City      string    `json:"city,omitempty" gorm:"size:100"`
	Address   string    `json:"address,omitempty" gorm:"type:text"`
	Phone     string    `json:"phone,omitempty" gorm:"size:50"`
	Whatsapp  string    `json:"whatsapp,omitempty" gorm:"size:50"`
	Website   string    `json:"website,omitempty" gorm:"size:255"`
	Verified  bool      `json:"verified" gorm:"default:false"`
	Featured  bool      `json:"featured" gorm:"default:false"`
	CreatedAt time.Time `json:"created_at"`

	// Relationships
	ShopPrices []ShopPrice `json:"shop_prices,omitempty" gorm:"foreignKey:ShopID;constraint:OnDelete:CASCADE"`
}
