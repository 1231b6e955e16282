package catalogRoutes

import (
	catalogController "elm/controllers/catalog"
	"elm/middleware"
	"elm/models"
	"elm/validators"

	"github.com/gofiber/fiber/v2"
)

// SetupCatalogRoutes sets up public browsing and admin catalog management
func SetupCatalogRoutes(app *fiber.App) {
	// Public storefront
	app.Get("/tracks", catalogController.GetAllTracks)
	app.Get("/tracks/:id", validators.IDParam("id", "trackID"), catalogController.GetTrackDetails)
	app.Get("/courses", validators.CourseList(), catalogController.GetAllCourses)
	app.Get("/courses/:id", validators.IDParam("id", "courseID"), catalogController.GetCourseDetails)
	app.Get("/categories", catalogController.GetCategories)

	// Admin catalog management
	adminGroup := app.Group("/admin", middleware.JWTMiddleware, middleware.RequireRole(models.RoleAdmin))
	adminGroup.Post("/courses", validators.CreateCourse(), catalogController.CreateCourse)
	adminGroup.Post("/courses/:id/publish", validators.IDParam("id", "courseID"), catalogController.PublishCourse)
	adminGroup.Post("/courses/:id/groups", validators.IDParam("id", "courseID"), validators.CreateGroup(), catalogController.CreateCourseGroup)
	adminGroup.Post("/tracks", validators.CreateTrack(), catalogController.CreateTrack)
}
