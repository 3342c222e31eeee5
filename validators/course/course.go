package courseValidator

import (
	"edule/middleware"
	"strconv"
	"strings"

	"github.com/gofiber/fiber/v2"
)

func courseIDParam(c *fiber.Ctx, param string) (uint, bool) {
	idStr := strings.TrimSpace(c.Params(param))

	id, err := strconv.Atoi(idStr)
	if err != nil || id <= 0 {
		return 0, false
	}
	return uint(id), true
}

// GetCourseDetail validates the :id path parameter
func GetCourseDetail() fiber.Handler {
	return func(c *fiber.Ctx) error {
		courseID, ok := courseIDParam(c, "id")
		if !ok {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid Course ID!", nil)
		}

		c.Locals("courseID", courseID)
		return c.Next()
	}
}

type EnrollRequest struct {
	UserID uint `json:"userId"`
}

// EnrollCourse validates the :courseId parameter and the enrollment body
func EnrollCourse() fiber.Handler {
	return func(c *fiber.Ctx) error {
		courseID, ok := courseIDParam(c, "courseId")
		if !ok {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid Course ID!", nil)
		}

		reqData := new(EnrollRequest)
		if err := c.BodyParser(reqData); err != nil {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request body!", nil)
		}

		if reqData.UserID == 0 {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "User ID is required", nil)
		}

		c.Locals("courseID", courseID)
		c.Locals("enrollUserID", reqData.UserID)
		return c.Next()
	}
}

// ProgressRequest uses a pointer for progress: 0 is a valid value and must
// not be treated as absent.
type ProgressRequest struct {
	UserID   uint `json:"userId"`
	Progress *int `json:"progress"`
}

// UpdateProgress validates the :courseId parameter and the progress body
func UpdateProgress() fiber.Handler {
	return func(c *fiber.Ctx) error {
		courseID, ok := courseIDParam(c, "courseId")
		if !ok {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid Course ID!", nil)
		}

		reqData := new(ProgressRequest)
		if err := c.BodyParser(reqData); err != nil {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request body!", nil)
		}

		if reqData.UserID == 0 || reqData.Progress == nil {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "User ID and progress are required", nil)
		}

		c.Locals("courseID", courseID)
		c.Locals("validatedProgress", reqData)
		return c.Next()
	}
}
