package catalog

import "gorm.io/gorm"

// Category groups courses on the storefront
type Category struct {
	gorm.Model
	Name        string `json:"name" gorm:"unique;not null"`
	Description string `json:"description" gorm:"type:text"`
}
