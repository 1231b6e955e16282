package billingRoutes

import (
	billingController "elm/controllers/billing"
	"elm/middleware"
	"elm/models"
	"elm/validators"

	"github.com/gofiber/fiber/v2"
)

// SetupBillingRoutes sets up payment and installment routes. Payments are
// recorded by admins (cash desk and gateway callbacks land there); students can
// read their own plans.
func SetupBillingRoutes(app *fiber.App) {
	adminGroup := app.Group("/admin", middleware.JWTMiddleware, middleware.RequireRole(models.RoleAdmin))
	adminGroup.Post("/payments", validators.CreatePayment(), billingController.CreatePayment)
	adminGroup.Get("/payments/:id/installments", validators.IDParam("id", "paymentID"), billingController.GetPaymentInstallments)
	adminGroup.Post("/installments/:id/pay", validators.IDParam("id", "installmentID"), billingController.PayInstallment)

	userGroup := app.Group("/user", middleware.JWTMiddleware)
	userGroup.Get("/payments", billingController.GetUserPayments)
}
