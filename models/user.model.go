package models

import (
	"time"

	"gorm.io/gorm"
)

// Role defines the access level of a user
type Role string

const (
	RoleStudent    Role = "student"
	RoleInstructor Role = "instructor"
	RoleAdmin      Role = "admin"
)

// User is the account record shared by students, instructors and admins
type User struct {
	gorm.Model
	Name           string     `json:"name" gorm:"default:''"`
	Email          string     `json:"email" gorm:"unique;not null"`
	Password       string     `json:"-" gorm:"not null"`
	Role           Role       `json:"role" gorm:"type:varchar(20);default:'student'"`
	ProfilePicture string     `json:"profile_picture" gorm:"default:''"`
	Headline       string     `json:"headline" gorm:"default:''"`
	Phone1         string     `json:"phone1" gorm:"default:''"`
	Phone2         string     `json:"phone2" gorm:"default:''"`
	Gender         string     `json:"gender" gorm:"type:varchar(20)"` // male, female
	DateOfBirth    *time.Time `json:"date_of_birth"`

	// Geography references are optional; rows keep working if the reference row goes away
	CountryID     *uint `json:"country_id" gorm:"index"`
	CityID        *uint `json:"city_id" gorm:"index"`
	NationalityID *uint `json:"nationality_id"`

	Country     *Country     `json:"country,omitempty" gorm:"foreignKey:CountryID;constraint:OnDelete:SET NULL"`
	City        *City        `json:"city,omitempty" gorm:"foreignKey:CityID;constraint:OnDelete:SET NULL"`
	Nationality *Nationality `json:"nationality,omitempty" gorm:"foreignKey:NationalityID;constraint:OnDelete:SET NULL"`
}
