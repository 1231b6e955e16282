package engagementRoutes

import (
	engagementController "elm/controllers/engagement"
	"elm/middleware"
	"elm/models"
	"elm/validators"

	"github.com/gofiber/fiber/v2"
)

// SetupEngagementRoutes sets up reviews, quizzes and certificates
func SetupEngagementRoutes(app *fiber.App) {
	app.Get("/courses/:id/reviews", validators.IDParam("id", "courseID"), engagementController.GetCourseReviews)
	app.Post("/courses/:id/reviews",
		middleware.JWTMiddleware,
		validators.IDParam("id", "courseID"),
		validators.CreateReview(),
		engagementController.CreateReview,
	)

	app.Get("/courses/:id/quizzes",
		middleware.JWTMiddleware,
		validators.IDParam("id", "courseID"),
		engagementController.GetCourseQuizzes,
	)
	app.Post("/quizzes/:id/attempt",
		middleware.JWTMiddleware,
		validators.IDParam("id", "quizID"),
		validators.SubmitAttempt(),
		engagementController.SubmitQuizAttempt,
	)

	userGroup := app.Group("/user", middleware.JWTMiddleware)
	userGroup.Get("/certificates", engagementController.GetUserCertificates)

	adminGroup := app.Group("/admin", middleware.JWTMiddleware, middleware.RequireRole(models.RoleAdmin))
	adminGroup.Post("/courses/:id/certificates", validators.IDParam("id", "courseID"), validators.IssueCertificate(), engagementController.IssueCourseCertificate)
	adminGroup.Post("/tracks/:id/certificates", validators.IDParam("id", "trackID"), validators.IssueCertificate(), engagementController.IssueTrackCertificate)
}
