package catalog

import (
	"time"

	"elm/models"

	"gorm.io/gorm"
)

// TrackCertificate is issued when a student completes a full track
type TrackCertificate struct {
	gorm.Model
	UserID            uint      `json:"user_id" gorm:"index;not null"`
	TrackID           uint      `json:"track_id" gorm:"index;not null"`
	CertificateNumber string    `json:"certificate_number" gorm:"unique"`
	CertificateURL    string    `json:"certificate_url"`
	IssuedAt          time.Time `json:"issued_at"`

	User  models.User `json:"-" gorm:"foreignKey:UserID;constraint:OnDelete:CASCADE"`
	Track Track       `json:"track,omitempty" gorm:"foreignKey:TrackID;constraint:OnDelete:CASCADE"`
}

// CourseCertificate is issued once per (user, course)
type CourseCertificate struct {
	gorm.Model
	UserID            uint      `json:"user_id" gorm:"not null;uniqueIndex:idx_cert_user_course"`
	CourseID          uint      `json:"course_id" gorm:"not null;uniqueIndex:idx_cert_user_course"`
	CertificateNumber string    `json:"certificate_number" gorm:"unique"`
	CertificateURL    string    `json:"certificate_url"`
	IssuedAt          time.Time `json:"issued_at"`

	User   models.User `json:"-" gorm:"foreignKey:UserID;constraint:OnDelete:CASCADE"`
	Course Course      `json:"course,omitempty" gorm:"foreignKey:CourseID;constraint:OnDelete:CASCADE"`
}
