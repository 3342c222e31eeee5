package adminController

import (
	"edule/database"
	"edule/middleware"
	"edule/models"
	"errors"
	"fmt"
	"log"
	"time"

	"github.com/gofiber/fiber/v2"
)

var (
	errUserNotFound    = errors.New("user not found")
	errMessageNotFound = errors.New("message not found")
)

func GetStats(c *fiber.Ctx) error {
	users, err := database.Database.Users.All()
	if err != nil {
		log.Printf("Error loading users: %v", err)
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Error fetching admin stats", nil)
	}
	courses, err := database.Database.Courses.All()
	if err != nil {
		log.Printf("Error loading courses: %v", err)
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Error fetching admin stats", nil)
	}
	enrollments, err := database.Database.Enrollments.All()
	if err != nil {
		log.Printf("Error loading enrollments: %v", err)
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Error fetching admin stats", nil)
	}

	instructors := make(map[string]bool)
	for _, course := range courses {
		instructors[course.Instructor] = true
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "", fiber.Map{
		"stats": fiber.Map{
			"totalUsers":       len(users),
			"totalCourses":     len(courses),
			"totalEnrollments": len(enrollments),
			"totalInstructors": len(instructors),
		},
	})
}

func GetUsers(c *fiber.Ctx) error {
	users, err := database.Database.Users.All()
	if err != nil {
		log.Printf("Error loading users: %v", err)
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Error fetching users", nil)
	}

	type listedUser struct {
		ID        uint      `json:"id"`
		Name      string    `json:"name"`
		Email     string    `json:"email"`
		IsAdmin   bool      `json:"isAdmin"`
		CreatedAt time.Time `json:"createdAt"`
	}

	sanitized := make([]listedUser, len(users))
	for i, user := range users {
		sanitized[i] = listedUser{
			ID:        user.ID,
			Name:      user.Name,
			Email:     user.Email,
			IsAdmin:   user.IsAdmin,
			CreatedAt: user.CreatedAt,
		}
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "", fiber.Map{
		"users": sanitized,
	})
}

func UpdateUserRole(c *fiber.Ctx) error {
	targetID, ok := c.Locals("targetUserID").(uint)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid user ID!", nil)
	}
	isAdmin, ok := c.Locals("validatedRole").(bool)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "isAdmin is required", nil)
	}

	var updated models.User
	err := database.Database.Users.Update(func(tx *database.Tx[models.User]) error {
		for i := range tx.Records {
			if tx.Records[i].ID == targetID {
				tx.Records[i].IsAdmin = isAdmin
				updated = tx.Records[i]
				return nil
			}
		}
		return errUserNotFound
	})

	if errors.Is(err, errUserNotFound) {
		return middleware.JsonResponse(c, fiber.StatusNotFound, false, "User not found", nil)
	}
	if err != nil {
		log.Printf("Error updating user role: %v", err)
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Error updating user role", nil)
	}

	role := "Student"
	if isAdmin {
		role = "Admin"
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, fmt.Sprintf("User role updated to %s", role), fiber.Map{
		"user": fiber.Map{
			"id":      updated.ID,
			"name":    updated.Name,
			"isAdmin": updated.IsAdmin,
		},
	})
}

func GetMessages(c *fiber.Ctx) error {
	messages, err := database.Database.Messages.All()
	if err != nil {
		log.Printf("Error loading messages: %v", err)
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Error fetching messages", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "", fiber.Map{
		"messages": messages,
	})
}

func UpdateMessageStatus(c *fiber.Ctx) error {
	messageID, ok := c.Locals("messageID").(uint)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid message ID!", nil)
	}
	status, ok := c.Locals("validatedStatus").(string)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Status is required", nil)
	}

	err := database.Database.Messages.Update(func(tx *database.Tx[models.Message]) error {
		for i := range tx.Records {
			if tx.Records[i].ID == messageID {
				tx.Records[i].Status = status
				return nil
			}
		}
		return errMessageNotFound
	})

	if errors.Is(err, errMessageNotFound) {
		return middleware.JsonResponse(c, fiber.StatusNotFound, false, "Message not found", nil)
	}
	if err != nil {
		log.Printf("Error updating message status: %v", err)
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Error updating status", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, fmt.Sprintf("Application %s", status), nil)
}

func DeleteMessage(c *fiber.Ctx) error {
	messageID, ok := c.Locals("messageID").(uint)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid message ID!", nil)
	}

	err := database.Database.Messages.Update(func(tx *database.Tx[models.Message]) error {
		kept := make([]models.Message, 0, len(tx.Records))
		for _, message := range tx.Records {
			if message.ID != messageID {
				kept = append(kept, message)
			}
		}
		if len(kept) == len(tx.Records) {
			return errMessageNotFound
		}
		tx.Records = kept
		return nil
	})

	if errors.Is(err, errMessageNotFound) {
		return middleware.JsonResponse(c, fiber.StatusNotFound, false, "Message not found", nil)
	}
	if err != nil {
		log.Printf("Error deleting message: %v", err)
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Error deleting message", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Message deleted successfully", nil)
}
