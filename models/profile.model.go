package models

import (
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

// StudentProfile holds student-only fields, one per user with role student
type StudentProfile struct {
	gorm.Model
	UserID uint   `json:"user_id" gorm:"uniqueIndex;not null"`
	Rate   uint   `json:"rate" gorm:"default:1"` // recruitment visibility score
	Code   string `json:"code"`                  // referral / invite code

	User User `json:"-" gorm:"foreignKey:UserID;constraint:OnDelete:CASCADE"`
}

// InstructorProfile holds instructor-only fields, one per user with role instructor
type InstructorProfile struct {
	gorm.Model
	UserID      uint           `json:"user_id" gorm:"uniqueIndex;not null"`
	Bio         string         `json:"bio" gorm:"type:text"`
	Resume      string         `json:"resume"` // storage reference, upload handled elsewhere
	SocialLinks datatypes.JSON `json:"social_links"`
	Rating      uint           `json:"rating" gorm:"default:1"`

	User User `json:"-" gorm:"foreignKey:UserID;constraint:OnDelete:CASCADE"`
}
