// Package validators holds the fiber pre-handlers that parse and validate
// incoming requests. Each validator stores its validated payload in c.Locals for
// the controller behind it.
package validators

import (
	"strconv"
	"strings"

	"elm/middleware"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
)

var validate = validator.New()

// fieldErrors flattens validator.v10 failures into a field -> message map
func fieldErrors(err error) map[string]string {
	errors := make(map[string]string)
	validationErrors, ok := err.(validator.ValidationErrors)
	if !ok {
		errors["body"] = "Invalid request body!"
		return errors
	}
	for _, fe := range validationErrors {
		field := strings.ToLower(fe.Field())
		switch fe.Tag() {
		case "required":
			errors[field] = field + " is required!"
		case "email":
			errors[field] = "Invalid email address!"
		case "min":
			errors[field] = field + " must be at least " + fe.Param() + "!"
		case "max":
			errors[field] = field + " must be at most " + fe.Param() + "!"
		case "oneof":
			errors[field] = field + " must be one of: " + fe.Param() + "!"
		default:
			errors[field] = field + " is invalid!"
		}
	}
	return errors
}

// IDParam validates a positive integer route parameter and stores it in Locals
// under the given key.
func IDParam(param, localKey string) fiber.Handler {
	return func(c *fiber.Ctx) error {
		raw := strings.TrimSpace(c.Params(param))
		if raw == "" {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Missing "+param+" parameter!", nil)
		}
		id, err := strconv.Atoi(raw)
		if err != nil || id <= 0 {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid "+param+" parameter!", nil)
		}
		c.Locals(localKey, uint(id))
		return c.Next()
	}
}
