package adminRoutes

import (
	adminControllers "edule/controllers/admin"
	"edule/middleware"
	adminValidators "edule/validators/admin"

	"github.com/gofiber/fiber/v2"
)

// SetupAdminRoutes sets up all admin routes. Every route requires a valid
// token belonging to an admin user.
func SetupAdminRoutes(app *fiber.App) {
	adminGroup := app.Group("/admin", middleware.JWTMiddleware, middleware.AdminOnly)

	adminGroup.Get("/stats", adminControllers.GetStats)
	adminGroup.Get("/users", adminControllers.GetUsers)
	adminGroup.Put("/users/:userId/role", adminValidators.UpdateUserRole(), adminControllers.UpdateUserRole)

	adminGroup.Get("/messages", adminControllers.GetMessages)
	adminGroup.Put("/messages/:id/status", adminValidators.UpdateMessageStatus(), adminControllers.UpdateMessageStatus)
	adminGroup.Delete("/messages/:id", adminValidators.MessageID(), adminControllers.DeleteMessage)

	adminGroup.Post("/courses", adminValidators.AddCourse(), adminControllers.AddCourse)
	adminGroup.Delete("/courses/:id", adminValidators.DeleteCourse(), adminControllers.DeleteCourse)
}
