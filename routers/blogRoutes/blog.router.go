package blogRoutes

import (
	blogControllers "edule/controllers/blog"

	"github.com/gofiber/fiber/v2"
)

func SetupBlogRoutes(app *fiber.App) {
	app.Get("/blogs", blogControllers.GetAllBlogs)
	app.Get("/blogs/:id", blogControllers.GetBlogDetails)
}
