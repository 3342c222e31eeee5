package authRoutes

import (
	authControllers "edule/controllers/auth"
	"edule/middleware"
	authValidators "edule/validators/auth"

	"github.com/gofiber/fiber/v2"
)

func SetupAuthRoutes(app *fiber.App) {
	authGroup := app.Group("/auth")

	authGroup.Post("/register", authValidators.Register(), authControllers.Register)
	authGroup.Post("/login", authValidators.Login(), authControllers.Login)
	authGroup.Get("/profile/:userId", middleware.JWTMiddleware, authValidators.UserIDParam(), authControllers.GetProfile)
	authGroup.Put("/profile/:userId", middleware.JWTMiddleware, authValidators.UserIDParam(), authValidators.UpdateProfile(), authControllers.UpdateProfile)
	authGroup.Put("/change-password", middleware.JWTMiddleware, authValidators.ChangePassword(), authControllers.ChangePassword)
}
