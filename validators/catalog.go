package validators

import (
	"elm/middleware"

	"github.com/gofiber/fiber/v2"
)

// CourseListQuery filters the public course listing
type CourseListQuery struct {
	CategoryID *uint  `query:"category_id"`
	Level      string `query:"level" validate:"omitempty,oneof=beginner intermediate advanced"`
	Page       int    `query:"page"`
	Limit      int    `query:"limit"`
}

type CreateCourseRequest struct {
	Title       string  `json:"title" validate:"required,max=255"`
	Excerpt     string  `json:"excerpt"`
	Description string  `json:"description" validate:"required"`
	Platform    string  `json:"platform" validate:"omitempty,max=50"`
	Price       float64 `json:"price" validate:"gte=0"`
	Currency    string  `json:"currency" validate:"omitempty,oneof=EGP USD SAR AED"`
	Discount    float64 `json:"discount" validate:"gte=0,lte=100"`
	CategoryID  *uint   `json:"category_id"`
	Duration    uint    `json:"duration" validate:"required"`
	Level       string  `json:"level" validate:"required,oneof=beginner intermediate advanced"`
	TrackIDs    []uint  `json:"track_ids"`
}

type CreateTrackRequest struct {
	Title       string  `json:"title" validate:"required,max=255"`
	Description string  `json:"description"`
	Price       float64 `json:"price" validate:"gte=0"`
	Discount    float64 `json:"discount" validate:"gte=0,lte=100"`
	CourseIDs   []uint  `json:"course_ids"`
}

type CreateGroupRequest struct {
	InstructorID *uint   `json:"instructor_id"`
	Price        float64 `json:"price" validate:"gte=0"`
	StartDate    string  `json:"start_date" validate:"required,datetime=2006-01-02"`
	EndDate      string  `json:"end_date" validate:"required,datetime=2006-01-02"`
}

func CourseList() fiber.Handler {
	return func(c *fiber.Ctx) error {
		reqData := new(CourseListQuery)
		if err := c.QueryParser(reqData); err != nil {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid query parameters!", nil)
		}
		if err := validate.Struct(reqData); err != nil {
			return middleware.ValidationErrorResponse(c, fieldErrors(err))
		}
		if reqData.Page < 1 {
			reqData.Page = 1
		}
		if reqData.Limit < 1 || reqData.Limit > 100 {
			reqData.Limit = 20
		}
		c.Locals("validatedCourseList", reqData)
		return c.Next()
	}
}

func CreateCourse() fiber.Handler {
	return func(c *fiber.Ctx) error {
		reqData := new(CreateCourseRequest)
		if err := c.BodyParser(reqData); err != nil {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request body!", nil)
		}
		if err := validate.Struct(reqData); err != nil {
			return middleware.ValidationErrorResponse(c, fieldErrors(err))
		}
		c.Locals("validatedCreateCourse", reqData)
		return c.Next()
	}
}

func CreateTrack() fiber.Handler {
	return func(c *fiber.Ctx) error {
		reqData := new(CreateTrackRequest)
		if err := c.BodyParser(reqData); err != nil {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request body!", nil)
		}
		if err := validate.Struct(reqData); err != nil {
			return middleware.ValidationErrorResponse(c, fieldErrors(err))
		}
		c.Locals("validatedCreateTrack", reqData)
		return c.Next()
	}
}

func CreateGroup() fiber.Handler {
	return func(c *fiber.Ctx) error {
		reqData := new(CreateGroupRequest)
		if err := c.BodyParser(reqData); err != nil {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request body!", nil)
		}
		if err := validate.Struct(reqData); err != nil {
			return middleware.ValidationErrorResponse(c, fieldErrors(err))
		}
		c.Locals("validatedCreateGroup", reqData)
		return c.Next()
	}
}
