package courseRoutes

import (
	controllers "edule/controllers/course"
	"edule/middleware"
	validators "edule/validators/course"

	"github.com/gofiber/fiber/v2"
)

// SetupCourseRoutes sets up course catalog, enrollment, and progress routes
func SetupCourseRoutes(app *fiber.App) {
	courseGroup := app.Group("/courses")

	courseGroup.Get("/", controllers.GetAllCourses)
	courseGroup.Get("/:id", validators.GetCourseDetail(), controllers.GetCourseDetails)

	app.Get("/categories", controllers.GetCategories)

	app.Post("/enroll/:courseId", middleware.JWTMiddleware, validators.EnrollCourse(), controllers.EnrollInCourse)
	app.Put("/progress/:courseId", middleware.JWTMiddleware, validators.UpdateProgress(), controllers.UpdateProgress)
}
