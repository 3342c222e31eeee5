package contactRoutes

import (
	contactControllers "edule/controllers/contact"
	contactValidators "edule/validators/contact"

	"github.com/gofiber/fiber/v2"
)

func SetupContactRoutes(app *fiber.App) {
	app.Post("/contact", contactValidators.Contact(), contactControllers.SubmitContact)
	app.Post("/become-instructor", contactValidators.BecomeInstructor(), contactControllers.BecomeInstructor)
}
