package validators

import (
	"elm/middleware"

	"github.com/gofiber/fiber/v2"
)

type CreateReviewRequest struct {
	Rating uint   `json:"rating" validate:"required,min=1,max=5"`
	Review string `json:"review" validate:"omitempty,max=2000"`
}

type SubmitAttemptRequest struct {
	// answers[question_id] = chosen answer id
	Answers map[uint]uint `json:"answers" validate:"required,min=1"`
}

type IssueCertificateRequest struct {
	UserID         uint   `json:"user_id" validate:"required"`
	CertificateURL string `json:"certificate_url" validate:"omitempty,url"`
}

func CreateReview() fiber.Handler {
	return func(c *fiber.Ctx) error {
		reqData := new(CreateReviewRequest)
		if err := c.BodyParser(reqData); err != nil {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request body!", nil)
		}
		if err := validate.Struct(reqData); err != nil {
			return middleware.ValidationErrorResponse(c, fieldErrors(err))
		}
		c.Locals("validatedCreateReview", reqData)
		return c.Next()
	}
}

func SubmitAttempt() fiber.Handler {
	return func(c *fiber.Ctx) error {
		reqData := new(SubmitAttemptRequest)
		if err := c.BodyParser(reqData); err != nil {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request body!", nil)
		}
		if err := validate.Struct(reqData); err != nil {
			return middleware.ValidationErrorResponse(c, fieldErrors(err))
		}
		c.Locals("validatedSubmitAttempt", reqData)
		return c.Next()
	}
}

func IssueCertificate() fiber.Handler {
	return func(c *fiber.Ctx) error {
		reqData := new(IssueCertificateRequest)
		if err := c.BodyParser(reqData); err != nil {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request body!", nil)
		}
		if err := validate.Struct(reqData); err != nil {
			return middleware.ValidationErrorResponse(c, fieldErrors(err))
		}
		c.Locals("validatedIssueCertificate", reqData)
		return c.Next()
	}
}
