package adminController

import (
	"edule/database"
	"edule/middleware"
	"edule/models"
	adminValidator "edule/validators/admin"
	"errors"
	"log"
	"time"

	"github.com/gofiber/fiber/v2"
)

var errCourseNotFound = errors.New("course not found")

func AddCourse(c *fiber.Ctx) error {
	reqData, ok := c.Locals("validatedCourse").(*adminValidator.CourseRequest)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request data!", nil)
	}

	var course models.Course
	err := database.Database.Courses.Update(func(tx *database.Tx[models.Course]) error {
		now := time.Now().UTC()
		course = models.Course{
			ID:               tx.NextID(),
			Title:            reqData.Title,
			Category:         reqData.Category,
			Instructor:       reqData.Instructor,
			InstructorAvatar: reqData.InstructorAvatar,
			Image:            reqData.Image,
			Badge:            reqData.Badge,
			Price:            reqData.Price,
			OldPrice:         reqData.OldPrice,
			Rating:           reqData.Rating,
			Grades:           reqData.Grades,
			Lectures:         reqData.Lectures,
			CreatedAt:        &now,
		}
		tx.Records = append(tx.Records, course)
		return nil
	})
	if err != nil {
		log.Printf("Error saving course: %v", err)
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Error adding course", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Course added successfully!", fiber.Map{
		"course": course,
	})
}

func DeleteCourse(c *fiber.Ctx) error {
	courseID, ok := c.Locals("courseID").(uint)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid Course ID!", nil)
	}

	err := database.Database.Courses.Update(func(tx *database.Tx[models.Course]) error {
		kept := make([]models.Course, 0, len(tx.Records))
		for _, course := range tx.Records {
			if course.ID != courseID {
				kept = append(kept, course)
			}
		}
		if len(kept) == len(tx.Records) {
			return errCourseNotFound
		}
		tx.Records = kept
		return nil
	})

	if errors.Is(err, errCourseNotFound) {
		return middleware.JsonResponse(c, fiber.StatusNotFound, false, "Course not found", nil)
	}
	if err != nil {
		log.Printf("Error deleting course: %v", err)
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Error deleting course", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Course deleted successfully!", nil)
}
