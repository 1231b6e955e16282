package leadRoutes

import (
	leadsController "elm/controllers/leads"
	"elm/validators"

	"github.com/gofiber/fiber/v2"
)

// SetupLeadRoutes sets up public lead capture endpoints
func SetupLeadRoutes(app *fiber.App) {
	app.Post("/talent-requests", validators.TalentRequest(), leadsController.CreateTalentRequest)
	app.Post("/contact", validators.Contact(), leadsController.CreateContact)
}
