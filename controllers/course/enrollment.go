package courseController

import (
	"edule/database"
	"edule/middleware"
	"edule/models"
	courseValidator "edule/validators/course"
	"errors"
	"log"
	"time"

	"github.com/gofiber/fiber/v2"
)

var (
	errAlreadyEnrolled    = errors.New("already enrolled")
	errEnrollmentNotFound = errors.New("enrollment not found")
)

func EnrollInCourse(c *fiber.Ctx) error {
	courseID, ok := c.Locals("courseID").(uint)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid Course ID!", nil)
	}
	userID, ok := c.Locals("enrollUserID").(uint)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "User ID is required", nil)
	}

	authUserID, _ := c.Locals("userId").(uint)
	isAdmin, _ := c.Locals("isAdmin").(bool)
	if userID != authUserID && !isAdmin {
		return middleware.JsonResponse(c, fiber.StatusForbidden, false, "Access denied!", nil)
	}

	// Check if course exists
	courses, err := database.Database.Courses.All()
	if err != nil {
		log.Printf("Error loading courses: %v", err)
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Error enrolling in course", nil)
	}
	courseExists := false
	for _, course := range courses {
		if course.ID == courseID {
			courseExists = true
			break
		}
	}
	if !courseExists {
		return middleware.JsonResponse(c, fiber.StatusNotFound, false, "Course not found", nil)
	}

	// Check if user exists
	users, err := database.Database.Users.All()
	if err != nil {
		log.Printf("Error loading users: %v", err)
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Error enrolling in course", nil)
	}
	userExists := false
	for _, user := range users {
		if user.ID == userID {
			userExists = true
			break
		}
	}
	if !userExists {
		return middleware.JsonResponse(c, fiber.StatusNotFound, false, "User not found", nil)
	}

	var enrollment models.Enrollment
	err = database.Database.Enrollments.Update(func(tx *database.Tx[models.Enrollment]) error {
		// Check if already enrolled
		for _, e := range tx.Records {
			if e.UserID == userID && e.CourseID == courseID {
				return errAlreadyEnrolled
			}
		}

		enrollment = models.Enrollment{
			ID:         tx.NextID(),
			UserID:     userID,
			CourseID:   courseID,
			Progress:   0,
			Completed:  false,
			EnrolledAt: time.Now().UTC(),
		}
		tx.Records = append(tx.Records, enrollment)
		return nil
	})

	if errors.Is(err, errAlreadyEnrolled) {
		return middleware.JsonResponse(c, fiber.StatusConflict, false, "Already enrolled in this course", nil)
	}
	if err != nil {
		log.Printf("Error saving enrollment: %v", err)
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Error enrolling in course", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Successfully enrolled in course!", fiber.Map{
		"enrollment": enrollment,
	})
}

func UpdateProgress(c *fiber.Ctx) error {
	courseID, ok := c.Locals("courseID").(uint)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid Course ID!", nil)
	}
	reqData, ok := c.Locals("validatedProgress").(*courseValidator.ProgressRequest)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "User ID and progress are required", nil)
	}

	authUserID, _ := c.Locals("userId").(uint)
	isAdmin, _ := c.Locals("isAdmin").(bool)
	if reqData.UserID != authUserID && !isAdmin {
		return middleware.JsonResponse(c, fiber.StatusForbidden, false, "Access denied!", nil)
	}

	var enrollment models.Enrollment
	err := database.Database.Enrollments.Update(func(tx *database.Tx[models.Enrollment]) error {
		for i := range tx.Records {
			e := &tx.Records[i]
			if e.UserID != reqData.UserID || e.CourseID != courseID {
				continue
			}

			progress := *reqData.Progress
			if progress < 0 {
				progress = 0
			}
			if progress > 100 {
				progress = 100
			}

			e.Progress = progress
			e.Completed = progress == 100
			now := time.Now().UTC()
			e.LastUpdated = &now

			enrollment = *e
			return nil
		}
		return errEnrollmentNotFound
	})

	if errors.Is(err, errEnrollmentNotFound) {
		return middleware.JsonResponse(c, fiber.StatusNotFound, false, "Enrollment not found", nil)
	}
	if err != nil {
		log.Printf("Error updating progress: %v", err)
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Error updating progress", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Progress updated successfully", fiber.Map{
		"enrollment": enrollment,
	})
}
