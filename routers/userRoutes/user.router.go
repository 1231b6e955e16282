package userRoutes

import (
	userController "elm/controllers/userControllers"
	"elm/middleware"
	"elm/models"
	"elm/validators"

	"github.com/gofiber/fiber/v2"
)

// SetupUserRoutes sets up profile and admin user-management routes
func SetupUserRoutes(app *fiber.App) {
	userGroup := app.Group("/user")
	userGroup.Get("/profile", middleware.JWTMiddleware, userController.GetProfile)
	userGroup.Put("/profile", middleware.JWTMiddleware, validators.UpdateProfile(), userController.UpdateProfile)

	// Role changes are admin-only; this path drives profile sync and token revocation
	adminGroup := app.Group("/admin/users")
	adminGroup.Put("/:id/role",
		middleware.JWTMiddleware,
		middleware.RequireRole(models.RoleAdmin),
		validators.IDParam("id", "targetUserId"),
		validators.UpdateRole(),
		userController.UpdateUserRole,
	)
}
