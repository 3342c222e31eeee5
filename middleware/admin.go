package middleware

import (
	"edule/database"

	"github.com/gofiber/fiber/v2"
)

// AdminOnly checks that the authenticated user is an admin before any admin
// operation executes. The flag is read from the stored user record, not the
// token, so a role change takes effect immediately.
func AdminOnly(c *fiber.Ctx) error {
	userID, ok := c.Locals("userId").(uint)
	if !ok {
		return JsonResponse(c, fiber.StatusUnauthorized, false, "Unauthorized: User ID not found", nil)
	}

	users, err := database.Database.Users.All()
	if err != nil {
		return JsonResponse(c, fiber.StatusInternalServerError, false, "Server error while checking permissions!", nil)
	}

	for _, user := range users {
		if user.ID == userID {
			if !user.IsAdmin {
				break
			}
			return c.Next()
		}
	}

	return JsonResponse(c, fiber.StatusForbidden, false, "You do not have permission to access this resource!", nil)
}
