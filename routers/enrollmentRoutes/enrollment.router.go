package enrollmentRoutes

import (
	enrollmentController "elm/controllers/enrollment"
	"elm/middleware"
	"elm/models"
	"elm/validators"

	"github.com/gofiber/fiber/v2"
)

// SetupEnrollmentRoutes sets up track and course enrollment routes
func SetupEnrollmentRoutes(app *fiber.App) {
	app.Post("/tracks/:id/enroll",
		middleware.JWTMiddleware,
		middleware.RequireRole(models.RoleStudent),
		validators.IDParam("id", "trackID"),
		enrollmentController.EnrollInTrack,
	)
	app.Post("/courses/:id/enroll",
		middleware.JWTMiddleware,
		middleware.RequireRole(models.RoleStudent),
		validators.IDParam("id", "courseID"),
		validators.EnrollCourse(),
		enrollmentController.EnrollInCourse,
	)

	userGroup := app.Group("/user", middleware.JWTMiddleware)
	userGroup.Get("/enrollments", enrollmentController.GetUserEnrollments)
	userGroup.Put("/enrollments/:id/progress",
		validators.IDParam("id", "enrollmentID"),
		validators.UpdateProgress(),
		enrollmentController.UpdateProgress,
	)
}
