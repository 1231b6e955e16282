package catalog

import (
	"elm/models"

	"gorm.io/gorm"
)

// CourseReview is a student rating with optional text
type CourseReview struct {
	gorm.Model
	UserID   uint   `json:"user_id" gorm:"index;not null"`
	CourseID uint   `json:"course_id" gorm:"index;not null"`
	Rating   uint   `json:"rating" gorm:"default:0"`
	Review   string `json:"review" gorm:"type:text"`

	User   models.User `json:"user,omitempty" gorm:"foreignKey:UserID;constraint:OnDelete:CASCADE"`
	Course Course      `json:"-" gorm:"foreignKey:CourseID;constraint:OnDelete:CASCADE"`
}
