package contactValidator

import (
	"edule/middleware"

	"github.com/gofiber/fiber/v2"
)

type ContactRequest struct {
	Name    string `json:"name"`
	Email   string `json:"email"`
	Subject string `json:"subject"`
	Message string `json:"message"`
}

// Contact validator middleware
func Contact() fiber.Handler {
	return func(c *fiber.Ctx) error {
		reqData := new(ContactRequest)
		if err := c.BodyParser(reqData); err != nil {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request body!", nil)
		}

		if reqData.Name == "" || reqData.Email == "" || reqData.Message == "" {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Please provide name, email, and message", nil)
		}

		c.Locals("validatedContact", reqData)
		return c.Next()
	}
}

type InstructorRequest struct {
	Name       string `json:"name"`
	Email      string `json:"email"`
	Phone      string `json:"phone"`
	Expertise  string `json:"expertise"`
	Experience string `json:"experience"`
	Message    string `json:"message"`
}

// BecomeInstructor validator middleware
func BecomeInstructor() fiber.Handler {
	return func(c *fiber.Ctx) error {
		reqData := new(InstructorRequest)
		if err := c.BodyParser(reqData); err != nil {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request body!", nil)
		}

		if reqData.Name == "" || reqData.Email == "" || reqData.Expertise == "" {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Please provide name, email, and expertise", nil)
		}

		c.Locals("validatedInstructor", reqData)
		return c.Next()
	}
}
