package engagementController

import (
	"errors"
	"log"
	"time"

	"elm/database"
	"elm/middleware"
	"elm/models"
	"elm/models/catalog"
	"elm/services"
	"elm/validators"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

// IssueCourseCertificate issues a completion certificate, once per (user, course)
func IssueCourseCertificate(c *fiber.Ctx) error {
	courseID := c.Locals("courseID").(uint)
	reqData, ok := c.Locals("validatedIssueCertificate").(*validators.IssueCertificateRequest)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request data!", nil)
	}

	db := database.Database.Db

	var user models.User
	if err := db.First(&user, reqData.UserID).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusNotFound, false, "User not found!", nil)
	}
	var course catalog.Course
	if err := db.First(&course, courseID).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusNotFound, false, "Course not found!", nil)
	}

	var existing catalog.CourseCertificate
	if err := db.Where("user_id = ? AND course_id = ?", user.ID, course.ID).First(&existing).Error; err == nil {
		return middleware.JsonResponse(c, fiber.StatusConflict, false, "Certificate already issued for this course!", nil)
	} else if !errors.Is(err, gorm.ErrRecordNotFound) {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to check certificate!", nil)
	}

	certificate := catalog.CourseCertificate{
		UserID:            user.ID,
		CourseID:          course.ID,
		CertificateNumber: uuid.NewString(),
		CertificateURL:    reqData.CertificateURL,
		IssuedAt:          time.Now().UTC(),
	}
	if err := services.CreateCourseCertificate(db, &certificate); err != nil {
		// The unique index catches a concurrent duplicate issue
		if errors.Is(err, services.ErrDuplicateCertificate) {
			return middleware.JsonResponse(c, fiber.StatusConflict, false, "Certificate already issued for this course!", nil)
		}
		log.Printf("Error issuing course certificate: %v", err)
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to issue certificate!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusCreated, true, "Certificate issued successfully.", certificate)
}

// IssueTrackCertificate issues a certificate for a finished track
func IssueTrackCertificate(c *fiber.Ctx) error {
	trackID := c.Locals("trackID").(uint)
	reqData, ok := c.Locals("validatedIssueCertificate").(*validators.IssueCertificateRequest)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request data!", nil)
	}

	db := database.Database.Db

	var user models.User
	if err := db.First(&user, reqData.UserID).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusNotFound, false, "User not found!", nil)
	}
	var track catalog.Track
	if err := db.First(&track, trackID).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusNotFound, false, "Track not found!", nil)
	}

	certificate := catalog.TrackCertificate{
		UserID:            user.ID,
		TrackID:           track.ID,
		CertificateNumber: uuid.NewString(),
		CertificateURL:    reqData.CertificateURL,
		IssuedAt:          time.Now().UTC(),
	}
	if err := db.Create(&certificate).Error; err != nil {
		log.Printf("Error issuing track certificate: %v", err)
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to issue certificate!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusCreated, true, "Certificate issued successfully.", certificate)
}

// GetUserCertificates lists the authenticated user's certificates
func GetUserCertificates(c *fiber.Ctx) error {
	userID, ok := c.Locals("userId").(uint)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusUnauthorized, false, "Unauthorized!", nil)
	}

	db := database.Database.Db

	var courseCerts []catalog.CourseCertificate
	if err := db.Where("user_id = ?", userID).Preload("Course").Find(&courseCerts).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to fetch certificates!", nil)
	}
	var trackCerts []catalog.TrackCertificate
	if err := db.Where("user_id = ?", userID).Preload("Track").Find(&trackCerts).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to fetch certificates!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Certificates fetched successfully.", fiber.Map{
		"course_certificates": courseCerts,
		"track_certificates":  trackCerts,
	})
}
