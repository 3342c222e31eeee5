package authController

import (
	"edule/database"
	"edule/middleware"
	"edule/models"
	authValidator "edule/validators/auth"
	"encoding/json"
	"errors"
	"log"
	"time"

	"github.com/gofiber/fiber/v2"
)

func GetProfile(c *fiber.Ctx) error {
	targetID, ok := c.Locals("targetUserID").(uint)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid user ID!", nil)
	}

	authUserID, _ := c.Locals("userId").(uint)
	isAdmin, _ := c.Locals("isAdmin").(bool)
	if targetID != authUserID && !isAdmin {
		return middleware.JsonResponse(c, fiber.StatusForbidden, false, "Access denied!", nil)
	}

	users, err := database.Database.Users.All()
	if err != nil {
		log.Printf("Error loading users: %v", err)
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Error fetching profile", nil)
	}

	var user models.User
	found := false
	for _, u := range users {
		if u.ID == targetID {
			user = u
			found = true
			break
		}
	}
	if !found {
		return middleware.JsonResponse(c, fiber.StatusNotFound, false, "User not found", nil)
	}

	enrollments, err := database.Database.Enrollments.All()
	if err != nil {
		log.Printf("Error loading enrollments: %v", err)
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Error fetching profile", nil)
	}

	courses, err := database.Database.Courses.All()
	if err != nil {
		log.Printf("Error loading courses: %v", err)
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Error fetching profile", nil)
	}

	courseByID := make(map[uint]models.Course, len(courses))
	for _, course := range courses {
		courseByID[course.ID] = course
	}

	// Course fields joined with the enrollment; the enrollment wins on
	// progress/enrolledAt/completed.
	type enrolledCourse struct {
		models.Course
		Progress   int       `json:"progress"`
		EnrolledAt time.Time `json:"enrolledAt"`
		Completed  bool      `json:"completed"`
	}

	enrolledCourses := make([]enrolledCourse, 0)
	completedCount := 0
	for _, enrollment := range enrollments {
		if enrollment.UserID != targetID {
			continue
		}
		enrolledCourses = append(enrolledCourses, enrolledCourse{
			Course:     courseByID[enrollment.CourseID],
			Progress:   enrollment.Progress,
			EnrolledAt: enrollment.EnrolledAt,
			Completed:  enrollment.Completed,
		})
		if enrollment.Completed {
			completedCount++
		}
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "", fiber.Map{
		"user":            user.Sanitize(),
		"enrolledCourses": enrolledCourses,
		"stats": fiber.Map{
			"totalEnrolled": len(enrolledCourses),
			"completed":     completedCount,
			"inProgress":    len(enrolledCourses) - completedCount,
		},
	})
}

func UpdateProfile(c *fiber.Ctx) error {
	targetID, ok := c.Locals("targetUserID").(uint)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid user ID!", nil)
	}

	authUserID, _ := c.Locals("userId").(uint)
	isAdmin, _ := c.Locals("isAdmin").(bool)
	if targetID != authUserID && !isAdmin {
		return middleware.JsonResponse(c, fiber.StatusForbidden, false, "Access denied!", nil)
	}

	reqData, ok := c.Locals("validatedProfileUpdate").(*authValidator.ProfileUpdateRequest)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request data!", nil)
	}

	var updated models.User
	err := database.Database.Users.Update(func(tx *database.Tx[models.User]) error {
		for i := range tx.Records {
			user := &tx.Records[i]
			if user.ID != targetID {
				continue
			}

			// Partial update: only fields explicitly provided are touched.
			if reqData.Name != nil && *reqData.Name != "" {
				user.Name = *reqData.Name
			}
			if len(reqData.ProfileImage) > 0 {
				if string(reqData.ProfileImage) == "null" {
					user.ProfileImage = nil
				} else {
					var image string
					if err := json.Unmarshal(reqData.ProfileImage, &image); err != nil {
						return err
					}
					user.ProfileImage = &image
				}
			}

			updated = *user
			return nil
		}
		return errUserNotFound
	})

	if errors.Is(err, errUserNotFound) {
		return middleware.JsonResponse(c, fiber.StatusNotFound, false, "User not found", nil)
	}
	if err != nil {
		log.Printf("Error updating profile: %v", err)
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Error updating profile", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Profile updated successfully!", fiber.Map{
		"user": updated.Sanitize(),
	})
}
