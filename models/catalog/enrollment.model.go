package catalog

import (
	"time"

	"elm/models"

	"gorm.io/gorm"
)

// TrackEnrollment registers a user in a whole track, once per (user, track)
type TrackEnrollment struct {
	gorm.Model
	UserID     uint      `json:"user_id" gorm:"not null;uniqueIndex:idx_user_track"`
	TrackID    uint      `json:"track_id" gorm:"not null;uniqueIndex:idx_user_track"`
	EnrolledAt time.Time `json:"enrolled_at"`

	User  models.User `json:"-" gorm:"foreignKey:UserID;constraint:OnDelete:CASCADE"`
	Track Track       `json:"-" gorm:"foreignKey:TrackID;constraint:OnDelete:CASCADE"`
}

// Enrollment registers a user in one course bound to a group. Uniqueness is on
// (user, course): the same course may not be taken twice even under another group.
type Enrollment struct {
	gorm.Model
	UserID     uint      `json:"user_id" gorm:"not null;uniqueIndex:idx_user_course"`
	CourseID   uint      `json:"course_id" gorm:"not null;uniqueIndex:idx_user_course"`
	GroupID    uint      `json:"group_id" gorm:"index;not null"`
	Progress   float64   `json:"progress" gorm:"type:decimal(5,2);default:0"` // percentage completion
	EnrolledAt time.Time `json:"enrolled_at"`

	User   models.User `json:"-" gorm:"foreignKey:UserID;constraint:OnDelete:CASCADE"`
	Course Course      `json:"course,omitempty" gorm:"foreignKey:CourseID;constraint:OnDelete:CASCADE"`
	Group  CourseGroup `json:"group,omitempty" gorm:"foreignKey:GroupID;constraint:OnDelete:CASCADE"`
}
