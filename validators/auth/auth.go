package authValidator

import (
	"edule/middleware"
	"encoding/json"
	"regexp"
	"strconv"
	"strings"

	"github.com/gofiber/fiber/v2"
)

// Helper to validate email format
func isValidEmail(email string) bool {
	re := regexp.MustCompile(`^[a-zA-Z0-9._%+-]+@[a-zA-Z0-9.-]+\.[a-zA-Z]{2,}$`)
	return re.MatchString(email)
}

type RegisterRequest struct {
	Name     string `json:"name"`
	Email    string `json:"email"`
	Password string `json:"password"`
}

// Register validator middleware
func Register() fiber.Handler {
	return func(c *fiber.Ctx) error {
		reqData := new(RegisterRequest)
		if err := c.BodyParser(reqData); err != nil {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request body!", nil)
		}

		if reqData.Name == "" || reqData.Email == "" || reqData.Password == "" {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Please provide name, email, and password", nil)
		}

		if !isValidEmail(reqData.Email) {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Please provide a valid email address", nil)
		}

		c.Locals("validatedRegister", reqData)
		return c.Next()
	}
}

type LoginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// Login validator middleware
func Login() fiber.Handler {
	return func(c *fiber.Ctx) error {
		reqData := new(LoginRequest)
		if err := c.BodyParser(reqData); err != nil {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request body!", nil)
		}

		if reqData.Email == "" || reqData.Password == "" {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Please provide email and password", nil)
		}

		c.Locals("validatedLogin", reqData)
		return c.Next()
	}
}

type ChangePasswordRequest struct {
	UserID          uint   `json:"userId"`
	CurrentPassword string `json:"currentPassword"`
	NewPassword     string `json:"newPassword"`
}

// ChangePassword validator middleware
func ChangePassword() fiber.Handler {
	return func(c *fiber.Ctx) error {
		reqData := new(ChangePasswordRequest)
		if err := c.BodyParser(reqData); err != nil {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request body!", nil)
		}

		if reqData.UserID == 0 || reqData.CurrentPassword == "" || reqData.NewPassword == "" {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "User ID, current password, and new password are required", nil)
		}

		c.Locals("validatedChangePassword", reqData)
		return c.Next()
	}
}

// ProfileUpdateRequest keeps profileImage raw so an explicit null can be
// told apart from an absent field.
type ProfileUpdateRequest struct {
	Name         *string         `json:"name"`
	ProfileImage json.RawMessage `json:"profileImage"`
}

// UserIDParam validates the :userId path parameter
func UserIDParam() fiber.Handler {
	return func(c *fiber.Ctx) error {
		userIDStr := strings.TrimSpace(c.Params("userId"))

		userID, err := strconv.Atoi(userIDStr)
		if err != nil || userID <= 0 {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid user ID!", nil)
		}

		c.Locals("targetUserID", uint(userID))
		return c.Next()
	}
}

// UpdateProfile validator middleware
func UpdateProfile() fiber.Handler {
	return func(c *fiber.Ctx) error {
		reqData := new(ProfileUpdateRequest)
		if err := c.BodyParser(reqData); err != nil {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request body!", nil)
		}

		c.Locals("validatedProfileUpdate", reqData)
		return c.Next()
	}
}
