package enrollmentController

import (
	"errors"
	"log"

	"elm/database"
	"elm/middleware"
	"elm/models"
	"elm/models/catalog"
	"elm/services"
	"elm/validators"

	"github.com/gofiber/fiber/v2"
)

// EnrollInTrack enrolls the authenticated student in a track and cascades into
// its courses. A duplicate track enrollment is a conflict; courses without a
// scheduled group are skipped, which is reflected in the returned counts.
func EnrollInTrack(c *fiber.Ctx) error {
	userID, ok := c.Locals("userId").(uint)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusUnauthorized, false, "Unauthorized!", nil)
	}
	trackID := c.Locals("trackID").(uint)

	db := database.Database.Db

	var user models.User
	if err := db.First(&user, userID).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusUnauthorized, false, "User not found!", nil)
	}

	var track catalog.Track
	if err := db.First(&track, trackID).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusNotFound, false, "Track not found!", nil)
	}

	trackEnrollment, err := services.EnrollInTrack(db, userID, trackID)
	if err != nil {
		if errors.Is(err, services.ErrAlreadyEnrolled) {
			return middleware.JsonResponse(c, fiber.StatusConflict, false, "Already enrolled in this track!", nil)
		}
		log.Printf("Error enrolling user %d in track %d: %v", userID, trackID, err)
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to enroll in track!", nil)
	}

	var courseEnrollments []catalog.Enrollment
	if err := db.Where("user_id = ?", userID).Preload("Course").Find(&courseEnrollments).Error; err != nil {
		log.Printf("Error loading enrollments for user %d: %v", userID, err)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Enrolled in track successfully.", fiber.Map{
		"track_enrollment":   trackEnrollment,
		"course_enrollments": courseEnrollments,
	})
}

// EnrollInCourse enrolls the authenticated student in a single course group
func EnrollInCourse(c *fiber.Ctx) error {
	userID, ok := c.Locals("userId").(uint)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusUnauthorized, false, "Unauthorized!", nil)
	}
	courseID := c.Locals("courseID").(uint)
	reqData, ok := c.Locals("validatedEnrollCourse").(*validators.EnrollCourseRequest)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request data!", nil)
	}

	db := database.Database.Db

	// Group must be an offering of this course
	var group catalog.CourseGroup
	if err := db.Where("id = ? AND course_id = ?", reqData.GroupID, courseID).First(&group).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusNotFound, false, "Course group not found!", nil)
	}

	enrollment, err := services.EnrollInCourse(db, userID, courseID, group.ID)
	if err != nil {
		if errors.Is(err, services.ErrAlreadyEnrolled) {
			return middleware.JsonResponse(c, fiber.StatusConflict, false, "Already enrolled in this course!", nil)
		}
		log.Printf("Error enrolling user %d in course %d: %v", userID, courseID, err)
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to enroll in course!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Enrolled in course successfully.", enrollment)
}

// GetUserEnrollments lists the authenticated user's course enrollments
func GetUserEnrollments(c *fiber.Ctx) error {
	userID, ok := c.Locals("userId").(uint)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusUnauthorized, false, "Unauthorized!", nil)
	}

	db := database.Database.Db

	var enrollments []catalog.Enrollment
	if err := db.Where("user_id = ?", userID).Preload("Course").Preload("Group").Order("enrolled_at desc").Find(&enrollments).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to fetch enrollments!", nil)
	}

	var trackEnrollments []catalog.TrackEnrollment
	if err := db.Where("user_id = ?", userID).Preload("Track").Order("enrolled_at desc").Find(&trackEnrollments).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to fetch track enrollments!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Enrollments fetched successfully.", fiber.Map{
		"enrollments":       enrollments,
		"track_enrollments": trackEnrollments,
	})
}

// UpdateProgress stores the completion percentage of one enrollment
func UpdateProgress(c *fiber.Ctx) error {
	userID, ok := c.Locals("userId").(uint)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusUnauthorized, false, "Unauthorized!", nil)
	}
	enrollmentID := c.Locals("enrollmentID").(uint)
	reqData, ok := c.Locals("validatedUpdateProgress").(*validators.UpdateProgressRequest)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request data!", nil)
	}

	db := database.Database.Db

	var enrollment catalog.Enrollment
	if err := db.Where("id = ? AND user_id = ?", enrollmentID, userID).First(&enrollment).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusNotFound, false, "Enrollment not found!", nil)
	}

	if err := db.Model(&enrollment).Update("progress", reqData.Progress).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to update progress!", nil)
	}
	return middleware.JsonResponse(c, fiber.StatusOK, true, "Progress updated successfully.", nil)
}
