package services

import (
	"elm/models/catalog"

	"gorm.io/gorm"
)

// RecordQuizAttempt stores a graded attempt. The unique (user, quiz) index is
// the final arbiter against concurrent duplicate submissions.
func RecordQuizAttempt(db *gorm.DB, attempt *catalog.QuizAttempt) error {
	if err := db.Create(attempt).Error; err != nil {
		if pgDuplicate(err) {
			return ErrDuplicateAttempt
		}
		return err
	}
	return nil
}

// CreateCourseCertificate stores a completion certificate, once per (user, course).
func CreateCourseCertificate(db *gorm.DB, certificate *catalog.CourseCertificate) error {
	if err := db.Create(certificate).Error; err != nil {
		if pgDuplicate(err) {
			return ErrDuplicateCertificate
		}
		return err
	}
	return nil
}
