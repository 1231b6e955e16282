package models

import "gorm.io/gorm"

// Country reference data
type Country struct {
	gorm.Model
	Name string `json:"name" gorm:"unique;not null"`
	Code string `json:"code" gorm:"type:varchar(3)"` // ISO Alpha-2 or Alpha-3
}

// Nationality reference data
type Nationality struct {
	gorm.Model
	Name string `json:"name" gorm:"unique;not null"`
}

// City belongs to a Country; no duplicate city names within one country
type City struct {
	gorm.Model
	Name      string `json:"name" gorm:"not null;uniqueIndex:idx_city_country"`
	CountryID uint   `json:"country_id" gorm:"not null;uniqueIndex:idx_city_country"`

	Country Country `json:"-" gorm:"foreignKey:CountryID;constraint:OnDelete:CASCADE"`
}
