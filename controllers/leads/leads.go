package leadsController

import (
	"log"

	"elm/database"
	"elm/middleware"
	"elm/models"
	"elm/utils"
	"elm/validators"

	"github.com/gofiber/fiber/v2"
)

// CreateTalentRequest stores a hiring lead and notifies the leads inbox
func CreateTalentRequest(c *fiber.Ctx) error {
	reqData, ok := c.Locals("validatedTalentRequest").(*validators.TalentRequestPayload)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request data!", nil)
	}

	db := database.Database.Db

	request := models.TalentRequest{
		UserName:       reqData.UserName,
		Email:          reqData.Email,
		Phone:          reqData.Phone,
		CountryID:      reqData.CountryID,
		CompanyName:    reqData.CompanyName,
		Position:       reqData.Position,
		JobDescription: reqData.JobDescription,
		SalaryRange:    reqData.SalaryRange,
	}
	if err := db.Create(&request).Error; err != nil {
		log.Printf("Error creating talent request: %v", err)
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to submit request!", nil)
	}

	go utils.NotifyTalentRequest(&request)

	return middleware.JsonResponse(c, fiber.StatusCreated, true, "Talent request submitted successfully.", request)
}

// CreateContact stores a contact-form message and notifies the leads inbox
func CreateContact(c *fiber.Ctx) error {
	reqData, ok := c.Locals("validatedContact").(*validators.ContactPayload)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request data!", nil)
	}

	db := database.Database.Db

	contact := models.Contact{
		Username:    reqData.Username,
		Email:       reqData.Email,
		Phone:       reqData.Phone,
		CompanyName: reqData.CompanyName,
		Message:     reqData.Message,
	}
	if err := db.Create(&contact).Error; err != nil {
		log.Printf("Error creating contact message: %v", err)
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to submit message!", nil)
	}

	go utils.NotifyContactMessage(&contact)

	return middleware.JsonResponse(c, fiber.StatusCreated, true, "Message submitted successfully.", contact)
}
