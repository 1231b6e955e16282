package validators

import (
	"elm/middleware"

	"github.com/gofiber/fiber/v2"
)

// CreatePaymentRequest records a purchase. For installment payments the plan
// fields are mandatory; they are ignored for cash.
type CreatePaymentRequest struct {
	StudentID         uint     `json:"student_id" validate:"required"`
	CourseID          uint     `json:"course_id" validate:"required"`
	Amount            float64  `json:"amount" validate:"required,gt=0"`
	PaymentMethod     string   `json:"payment_method" validate:"required,oneof=credit_card paypal bank_transfer paymob"`
	PaymentType       string   `json:"payment_type" validate:"required,oneof=cash installment"`
	TotalInstallments uint     `json:"total_installments"`
	InstallmentAmount *float64 `json:"installment_amount" validate:"omitempty,gt=0"`
}

func CreatePayment() fiber.Handler {
	return func(c *fiber.Ctx) error {
		reqData := new(CreatePaymentRequest)
		if err := c.BodyParser(reqData); err != nil {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request body!", nil)
		}
		if err := validate.Struct(reqData); err != nil {
			return middleware.ValidationErrorResponse(c, fieldErrors(err))
		}

		if reqData.PaymentType == "installment" {
			errors := make(map[string]string)
			if reqData.TotalInstallments < 1 {
				errors["total_installments"] = "total_installments must be at least 1!"
			}
			if reqData.InstallmentAmount == nil {
				errors["installment_amount"] = "installment_amount is required for installment payments!"
			}
			if len(errors) > 0 {
				return middleware.ValidationErrorResponse(c, errors)
			}
		}

		c.Locals("validatedCreatePayment", reqData)
		return c.Next()
	}
}
