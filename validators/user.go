package validators

import (
	"elm/middleware"

	"github.com/gofiber/fiber/v2"
)

// UpdateProfileRequest covers the self-service profile fields. Role is absent on
// purpose: role changes go through the admin endpoint so token revocation and
// profile sync always run.
type UpdateProfileRequest struct {
	Name          *string `json:"name" validate:"omitempty,min=2,max=100"`
	Headline      *string `json:"headline" validate:"omitempty,max=100"`
	Phone1        *string `json:"phone1" validate:"omitempty,max=15"`
	Phone2        *string `json:"phone2" validate:"omitempty,max=15"`
	Gender        *string `json:"gender" validate:"omitempty,oneof=male female"`
	DateOfBirth   *string `json:"date_of_birth" validate:"omitempty,datetime=2006-01-02"`
	CountryID     *uint   `json:"country_id"`
	CityID        *uint   `json:"city_id"`
	NationalityID *uint   `json:"nationality_id"`

	// Role-specific extras, applied to whichever profile the user holds
	Bio         *string           `json:"bio"`
	SocialLinks map[string]string `json:"social_links"`
}

type UpdateRoleRequest struct {
	Role string `json:"role" validate:"required,oneof=student instructor admin"`
}

func UpdateProfile() fiber.Handler {
	return func(c *fiber.Ctx) error {
		reqData := new(UpdateProfileRequest)
		if err := c.BodyParser(reqData); err != nil {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request body!", nil)
		}
		if err := validate.Struct(reqData); err != nil {
			return middleware.ValidationErrorResponse(c, fieldErrors(err))
		}
		c.Locals("validatedUpdateProfile", reqData)
		return c.Next()
	}
}

func UpdateRole() fiber.Handler {
	return func(c *fiber.Ctx) error {
		reqData := new(UpdateRoleRequest)
		if err := c.BodyParser(reqData); err != nil {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request body!", nil)
		}
		if err := validate.Struct(reqData); err != nil {
			return middleware.ValidationErrorResponse(c, fieldErrors(err))
		}
		c.Locals("validatedUpdateRole", reqData)
		return c.Next()
	}
}
