package services

import (
	"errors"
	"log"
	"time"

	"elm/models/catalog"

	"gorm.io/gorm"
)

// EnrollInTrack registers a user in a track and fans out to per-course
// enrollments. Course order follows catalog insertion order so one run is
// deterministic. For each course the first available group is taken; there is no
// capacity or date filtering here, which is a known product limitation kept
// on purpose. Courses without any group are skipped silently and the cascade is
// not transactional across courses: partial application is an accepted outcome.
// Only a duplicate (user, track) pair or a rejected TrackEnrollment write fails
// the operation.
func EnrollInTrack(db *gorm.DB, userID, trackID uint) (*catalog.TrackEnrollment, error) {
	var existing catalog.TrackEnrollment
	err := db.Where("user_id = ? AND track_id = ?", userID, trackID).First(&existing).Error
	if err == nil {
		return nil, ErrAlreadyEnrolled
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, err
	}

	enrollment := catalog.TrackEnrollment{
		UserID:     userID,
		TrackID:    trackID,
		EnrolledAt: time.Now().UTC(),
	}
	if err := db.Create(&enrollment).Error; err != nil {
		if pgDuplicate(err) {
			return nil, ErrAlreadyEnrolled
		}
		return nil, err
	}

	var courses []catalog.Course
	err = db.Joins("JOIN course_tracks ON course_tracks.course_id = courses.id").
		Where("course_tracks.track_id = ?", trackID).
		Order("courses.id").
		Find(&courses).Error
	if err != nil {
		// Track enrollment itself is committed; the cascade tolerates partial application
		log.Printf("Track %d cascade: failed to load courses: %v", trackID, err)
		return &enrollment, nil
	}

	for _, course := range courses {
		var group catalog.CourseGroup
		err := db.Where("course_id = ?", course.ID).Order("id").First(&group).Error
		if err != nil {
			if !errors.Is(err, gorm.ErrRecordNotFound) {
				log.Printf("Track %d cascade: group lookup for course %d: %v", trackID, course.ID, err)
			}
			continue // no offering scheduled yet, skip this course
		}

		courseEnrollment := catalog.Enrollment{}
		err = db.Where(catalog.Enrollment{UserID: userID, CourseID: course.ID}).
			Attrs(catalog.Enrollment{GroupID: group.ID, EnrolledAt: time.Now().UTC()}).
			FirstOrCreate(&courseEnrollment).Error
		if err != nil && !pgDuplicate(err) {
			log.Printf("Track %d cascade: enrollment for course %d: %v", trackID, course.ID, err)
		}
	}

	return &enrollment, nil
}

// EnrollInCourse registers a user in a single course under the given group.
// Duplicate (user, course) fails with ErrAlreadyEnrolled regardless of group.
func EnrollInCourse(db *gorm.DB, userID, courseID, groupID uint) (*catalog.Enrollment, error) {
	var existing catalog.Enrollment
	err := db.Where("user_id = ? AND course_id = ?", userID, courseID).First(&existing).Error
	if err == nil {
		return nil, ErrAlreadyEnrolled
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, err
	}

	enrollment := catalog.Enrollment{
		UserID:     userID,
		CourseID:   courseID,
		GroupID:    groupID,
		EnrolledAt: time.Now().UTC(),
	}
	if err := db.Create(&enrollment).Error; err != nil {
		if pgDuplicate(err) {
			return nil, ErrAlreadyEnrolled
		}
		return nil, err
	}
	return &enrollment, nil
}
