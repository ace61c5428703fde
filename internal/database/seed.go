// internal/database/seed.go
package database

import (
	"fmt"

	"github.com/sirupsen/logrus"
	"gorm.io/gorm"

	"github.com/pricera/pricera-backend/internal/models"
)

// Seed populates an empty database with a handful of shops, phones and
// prices plus a default admin user. Existing rows are left untouched.
func Seed(db *gorm.DB) error {
	logrus.Info("Seeding initial data")

	var adminCount int64
	db.Model(&models.User{}).Where("role = ?", models.UserRoleAdmin).Count(&adminCount)

	if adminCount == 0 {
		admin := &models.User{
			Name:  "Administrator",
			Email: "admin@pricera.com",
			Role:  models.UserRoleAdmin,
		}
		if err := admin.SetPassword("admin123!@#"); err != nil {
			return fmt.Errorf("failed to set admin password: %w", err)
		}
		if err := db.Create(admin).Error; err != nil {
			return fmt.Errorf("failed to create admin user: %w", err)
		}
		logrus.Info("Default admin user created")
	}

	var shopCount int64
	db.Model(&models.Shop{}).Count(&shopCount)
	if shopCount > 0 {
		logrus.Info("Shops already present, skipping catalog seed")
		return nil
	}

	shops := []models.Shop{
		{Name: "Singer Mega Electronics", City: "Colombo", Address: "Main Street, Colombo 01", Phone: "+94112345678", Whatsapp: "+94771234567", Website: "https://www.singeronline.com", Verified: true, Featured: true},
		{Name: "Abans Electronics", City: "Kandy", Address: "Temple Street, Kandy", Phone: "+94812345678", Whatsapp: "+94777654321", Website: "https://www.abans.lk", Verified: true, Featured: true},
		{Name: "Softlogic Holdings", City: "Colombo", Address: "Liberty Plaza, Colombo 03", Phone: "+94112987654", Website: "https://www.softlogic.lk", Verified: true},
		{Name: "Dialog Store", City: "Galle", Address: "Galle Road, Galle", Phone: "+94912345678", Whatsapp: "+94763456789", Verified: true},
	}
	if err := db.Create(&shops).Error; err != nil {
		return fmt.Errorf("failed to seed shops: %w", err)
	}

	year2023, year2024 := 2023, 2024
	phones := []models.Phone{
		{Brand: "Samsung", Model: "Galaxy S24 Ultra", Category: models.PhoneCategoryFlagship, ReleaseYear: &year2024},
		{Brand: "Apple", Model: "iPhone 15 Pro", Category: models.PhoneCategoryFlagship, ReleaseYear: &year2023},
		{Brand: "Xiaomi", Model: "Redmi Note 13", Category: models.PhoneCategoryBudget, ReleaseYear: &year2024},
		{Brand: "Google", Model: "Pixel 8a", Category: models.PhoneCategoryMidrange, ReleaseYear: &year2024},
		{Brand: "Samsung", Model: "Galaxy Z Fold 5", Category: models.PhoneCategoryFoldable, ReleaseYear: &year2023},
		{Brand: "Asus", Model: "ROG Phone 8", Category: models.PhoneCategoryGaming, ReleaseYear: &year2024},
	}
	if err := db.Create(&phones).Error; err != nil {
		return fmt.Errorf("failed to seed phones: %w", err)
	}

	var prices []models.ShopPrice
	base := []int64{434900, 389900, 79900, 154900, 509900, 289900}
	for i, phone := range phones {
		for j, shop := range shops {
			prices = append(prices, models.ShopPrice{
				PhoneID:  phone.ID,
				ShopID:   shop.ID,
				Price:    base[i] + int64(j)*2500,
				Currency: models.DefaultCurrency,
				IsActive: true,
			})
		}
	}
	if err := db.Create(&prices).Error; err != nil {
		return fmt.Errorf("failed to seed prices: %w", err)
	}

	specs := []models.Spec{
		{PhoneID: phones[0].ID, KeyName: "display", Value: "6.8\" QHD+ AMOLED 120Hz"},
		{PhoneID: phones[0].ID, KeyName: "ram", Value: "12GB"},
		{PhoneID: phones[0].ID, KeyName: "storage", Value: "256GB"},
		{PhoneID: phones[1].ID, KeyName: "display", Value: "6.1\" Super Retina XDR"},
		{PhoneID: phones[1].ID, KeyName: "chip", Value: "A17 Pro"},
	}
	if err := db.Create(&specs).Error; err != nil {
		return fmt.Errorf("failed to seed specs: %w", err)
	}

	logrus.WithFields(logrus.Fields{
		"shops":  len(shops),
		"phones": len(phones),
		"prices": len(prices),
	}).Info("Initial data seeding completed")
	return nil
}
