package billingController

import (
	"errors"
	"log"

	"elm/database"
	"elm/middleware"
	"elm/models"
	"elm/models/billing"
	"elm/models/catalog"
	"elm/services"
	"elm/validators"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

// CreatePayment records a purchase by a student. Installment payments get their
// schedule generated in the same request.
func CreatePayment(c *fiber.Ctx) error {
	reqData, ok := c.Locals("validatedCreatePayment").(*validators.CreatePaymentRequest)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request data!", nil)
	}

	db := database.Database.Db

	var student models.User
	if err := db.Where("id = ? AND role = ?", reqData.StudentID, models.RoleStudent).First(&student).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusNotFound, false, "Student not found!", nil)
	}
	var course catalog.Course
	if err := db.First(&course, reqData.CourseID).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusNotFound, false, "Course not found!", nil)
	}

	payment := billing.Payment{
		StudentID:         student.ID,
		CourseID:          course.ID,
		Amount:            reqData.Amount,
		PaymentMethod:     billing.PaymentMethod(reqData.PaymentMethod),
		PaymentType:       billing.PaymentType(reqData.PaymentType),
		Status:            billing.PaymentPending,
		TransactionID:     uuid.NewString(),
		TotalInstallments: 1,
	}
	if payment.PaymentType == billing.TypeInstallment {
		payment.TotalInstallments = reqData.TotalInstallments
		payment.InstallmentAmount = reqData.InstallmentAmount
	}

	if err := db.Create(&payment).Error; err != nil {
		log.Printf("Error creating payment: %v", err)
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to create payment!", nil)
	}

	if payment.PaymentType == billing.TypeInstallment {
		installments, err := services.GenerateInstallments(db, &payment)
		if err != nil {
			if errors.Is(err, services.ErrInstallmentConfig) {
				return middleware.JsonResponse(c, fiber.StatusUnprocessableEntity, false, "Invalid installment configuration!", nil)
			}
			log.Printf("Error generating installments for payment %d: %v", payment.ID, err)
			return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to generate installments!", nil)
		}
		payment.Installments = installments
	}

	return middleware.JsonResponse(c, fiber.StatusCreated, true, "Payment recorded successfully.", payment)
}

// GetPaymentInstallments lists the installment plan of one payment
func GetPaymentInstallments(c *fiber.Ctx) error {
	paymentID := c.Locals("paymentID").(uint)
	db := database.Database.Db

	var payment billing.Payment
	if err := db.Preload("Installments").First(&payment, paymentID).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusNotFound, false, "Payment not found!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Installments fetched successfully.", fiber.Map{
		"payment":      payment,
		"is_completed": payment.IsCompleted(),
	})
}

// PayInstallment settles one installment
func PayInstallment(c *fiber.Ctx) error {
	installmentID := c.Locals("installmentID").(uint)
	db := database.Database.Db

	installment, err := services.PayInstallment(db, installmentID)
	if err != nil {
		if errors.Is(err, services.ErrInstallmentPaid) {
			return middleware.JsonResponse(c, fiber.StatusConflict, false, "Installment already paid!", nil)
		}
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return middleware.JsonResponse(c, fiber.StatusNotFound, false, "Installment not found!", nil)
		}
		log.Printf("Error paying installment %d: %v", installmentID, err)
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to pay installment!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Installment paid successfully.", installment)
}

// GetUserPayments lists the authenticated student's payments and their plans
func GetUserPayments(c *fiber.Ctx) error {
	userID, ok := c.Locals("userId").(uint)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusUnauthorized, false, "Unauthorized!", nil)
	}

	db := database.Database.Db

	var payments []billing.Payment
	if err := db.Where("student_id = ?", userID).Preload("Installments").Preload("Course").Order("created_at desc").Find(&payments).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to fetch payments!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Payments fetched successfully.", payments)
}
