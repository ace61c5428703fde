// internal/models/common.go
package models

// Enums
type PhoneCategory string

const (
	PhoneCategoryBudget   PhoneCategory = "budget"
	PhoneCategoryMidrange PhoneCategory = "midrange"
	PhoneCategoryFlagship PhoneCategory = "flagship"
	PhoneCategoryGaming   PhoneCategory = "gaming"
	PhoneCategoryFoldable PhoneCategory = "foldable"
)

func (c PhoneCategory) Valid() bool {
	switch c {
	case PhoneCategoryBudget, PhoneCategoryMidrange, PhoneCategoryFlagship,
		PhoneCategoryGaming, PhoneCategoryFoldable:
		return true
	}
	return false
}

type UserRole string

const (
	UserRoleUser      UserRole = "user"
	UserRoleAdmin     UserRole = "admin"
	UserRoleShopOwner UserRole = "shop_owner"
)

const DefaultCurrency = "LKR"
