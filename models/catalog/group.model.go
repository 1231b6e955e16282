package catalog

import (
	"time"

	"elm/models"

	"gorm.io/gorm"
)

// CourseGroup is a scheduled offering (cohort) of a single course
type CourseGroup struct {
	gorm.Model
	CourseID     uint      `json:"course_id" gorm:"index;not null"`
	InstructorID *uint     `json:"instructor_id"`
	Price        float64   `json:"price" gorm:"type:decimal(10,2);default:0"`
	StartDate    time.Time `json:"start_date"`
	EndDate      time.Time `json:"end_date"`

	Course     Course        `json:"-" gorm:"foreignKey:CourseID;constraint:OnDelete:CASCADE"`
	Instructor *models.User  `json:"instructor,omitempty" gorm:"foreignKey:InstructorID;constraint:OnDelete:SET NULL"`
	Students   []models.User `json:"students,omitempty" gorm:"many2many:course_group_students"`
}
