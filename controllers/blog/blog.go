package blogController

import (
	"edule/database"
	"edule/middleware"
	"log"
	"strconv"

	"github.com/gofiber/fiber/v2"
)

func GetAllBlogs(c *fiber.Ctx) error {
	blogs, err := database.Database.Blogs.All()
	if err != nil {
		log.Printf("Error loading blogs: %v", err)
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Error fetching blogs", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "", fiber.Map{
		"blogs": blogs,
	})
}

func GetBlogDetails(c *fiber.Ctx) error {
	blogID, err := strconv.Atoi(c.Params("id"))
	if err != nil || blogID <= 0 {
		return middleware.JsonResponse(c, fiber.StatusNotFound, false, "Blog not found", nil)
	}

	blogs, err := database.Database.Blogs.All()
	if err != nil {
		log.Printf("Error loading blogs: %v", err)
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Error fetching blog", nil)
	}

	for _, blog := range blogs {
		if blog.ID == uint(blogID) {
			return middleware.JsonResponse(c, fiber.StatusOK, true, "", fiber.Map{
				"blog": blog,
			})
		}
	}

	return middleware.JsonResponse(c, fiber.StatusNotFound, false, "Blog not found", nil)
}
