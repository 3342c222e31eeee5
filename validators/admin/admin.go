package adminValidator

import (
	"edule/middleware"
	"strconv"
	"strings"

	"github.com/gofiber/fiber/v2"
)

func idParam(c *fiber.Ctx, param string) (uint, bool) {
	idStr := strings.TrimSpace(c.Params(param))

	id, err := strconv.Atoi(idStr)
	if err != nil || id <= 0 {
		return 0, false
	}
	return uint(id), true
}

type CourseRequest struct {
	Title            string  `json:"title"`
	Category         string  `json:"category"`
	Instructor       string  `json:"instructor"`
	InstructorAvatar string  `json:"instructorAvatar"`
	Image            string  `json:"image"`
	Badge            string  `json:"badge"`
	Price            float64 `json:"price"`
	OldPrice         float64 `json:"oldPrice"`
	Rating           float64 `json:"rating"`
	Grades           int     `json:"grades"`
	Lectures         int     `json:"lectures"`
}

// AddCourse validator middleware
func AddCourse() fiber.Handler {
	return func(c *fiber.Ctx) error {
		reqData := new(CourseRequest)
		if err := c.BodyParser(reqData); err != nil {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request body!", nil)
		}

		if reqData.Title == "" || reqData.Category == "" || reqData.Instructor == "" {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Title, category, and instructor are required", nil)
		}

		c.Locals("validatedCourse", reqData)
		return c.Next()
	}
}

// DeleteCourse validates the :id path parameter
func DeleteCourse() fiber.Handler {
	return func(c *fiber.Ctx) error {
		courseID, ok := idParam(c, "id")
		if !ok {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid Course ID!", nil)
		}

		c.Locals("courseID", courseID)
		return c.Next()
	}
}

type RoleRequest struct {
	IsAdmin *bool `json:"isAdmin"`
}

// UpdateUserRole validates the :userId parameter and the role body
func UpdateUserRole() fiber.Handler {
	return func(c *fiber.Ctx) error {
		userID, ok := idParam(c, "userId")
		if !ok {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid user ID!", nil)
		}

		reqData := new(RoleRequest)
		if err := c.BodyParser(reqData); err != nil {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request body!", nil)
		}

		if reqData.IsAdmin == nil {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "isAdmin is required", nil)
		}

		c.Locals("targetUserID", userID)
		c.Locals("validatedRole", *reqData.IsAdmin)
		return c.Next()
	}
}

type StatusRequest struct {
	Status string `json:"status"`
}

// UpdateMessageStatus validates the :id parameter and the status body
func UpdateMessageStatus() fiber.Handler {
	return func(c *fiber.Ctx) error {
		messageID, ok := idParam(c, "id")
		if !ok {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid message ID!", nil)
		}

		reqData := new(StatusRequest)
		if err := c.BodyParser(reqData); err != nil {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request body!", nil)
		}

		if reqData.Status == "" {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Status is required", nil)
		}

		c.Locals("messageID", messageID)
		c.Locals("validatedStatus", reqData.Status)
		return c.Next()
	}
}

// MessageID validates the :id path parameter
func MessageID() fiber.Handler {
	return func(c *fiber.Ctx) error {
		messageID, ok := idParam(c, "id")
		if !ok {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid message ID!", nil)
		}

		c.Locals("messageID", messageID)
		return c.Next()
	}
}
