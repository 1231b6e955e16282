package validators

import (
	"elm/middleware"
	"elm/utils"

	"github.com/gofiber/fiber/v2"
)

type TalentRequestPayload struct {
	UserName       string `json:"user_name" validate:"required,max=150"`
	Email          string `json:"email" validate:"required,email"`
	Phone          string `json:"phone" validate:"required,max=20"`
	CountryID      *uint  `json:"country_id"`
	CompanyName    string `json:"company_name" validate:"required,max=150"`
	Position       string `json:"position" validate:"required,max=100"`
	JobDescription string `json:"job_description" validate:"required"`
	SalaryRange    string `json:"salary_range" validate:"omitempty,max=100"`
	Recaptcha      string `json:"recaptcha_response"`
}

type ContactPayload struct {
	Username    string `json:"username" validate:"required,max=150"`
	Email       string `json:"email" validate:"required,email"`
	Phone       string `json:"phone" validate:"required,max=20"`
	CompanyName string `json:"company_name" validate:"omitempty,max=150"`
	Message     string `json:"message" validate:"required"`
	Recaptcha   string `json:"recaptcha_response"`
}

func TalentRequest() fiber.Handler {
	return func(c *fiber.Ctx) error {
		reqData := new(TalentRequestPayload)
		if err := c.BodyParser(reqData); err != nil {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request body!", nil)
		}
		if err := validate.Struct(reqData); err != nil {
			return middleware.ValidationErrorResponse(c, fieldErrors(err))
		}
		if !utils.VerifyRecaptcha(reqData.Recaptcha) {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "reCAPTCHA verification failed!", nil)
		}
		c.Locals("validatedTalentRequest", reqData)
		return c.Next()
	}
}

func Contact() fiber.Handler {
	return func(c *fiber.Ctx) error {
		reqData := new(ContactPayload)
		if err := c.BodyParser(reqData); err != nil {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request body!", nil)
		}
		if err := validate.Struct(reqData); err != nil {
			return middleware.ValidationErrorResponse(c, fieldErrors(err))
		}
		if !utils.VerifyRecaptcha(reqData.Recaptcha) {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "reCAPTCHA verification failed!", nil)
		}
		c.Locals("validatedContact", reqData)
		return c.Next()
	}
}
