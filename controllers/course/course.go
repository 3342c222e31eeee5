package courseController

import (
	"edule/database"
	"edule/middleware"
	"edule/models"
	"log"
	"strings"

	"github.com/gofiber/fiber/v2"
)

// filterCourses keeps a course iff it matches the category filter and the
// search term. Title and category match case-insensitively; instructor
// matches as a case-sensitive substring.
func filterCourses(courses []models.Course, category, search string) []models.Course {
	filtered := make([]models.Course, 0, len(courses))
	searchLower := strings.ToLower(search)

	for _, course := range courses {
		if category != "" && !strings.EqualFold(category, "all") && !strings.EqualFold(course.Category, category) {
			continue
		}
		if search != "" &&
			!strings.Contains(strings.ToLower(course.Title), searchLower) &&
			!strings.Contains(course.Instructor, search) &&
			!strings.Contains(strings.ToLower(course.Category), searchLower) {
			continue
		}
		filtered = append(filtered, course)
	}
	return filtered
}

// relatedCourses returns up to three courses sharing the target's category,
// in storage order, excluding the target itself.
func relatedCourses(courses []models.Course, target models.Course) []models.Course {
	related := make([]models.Course, 0, 3)
	for _, course := range courses {
		if course.Category == target.Category && course.ID != target.ID {
			related = append(related, course)
			if len(related) == 3 {
				break
			}
		}
	}
	return related
}

func GetAllCourses(c *fiber.Ctx) error {
	courses, err := database.Database.Courses.All()
	if err != nil {
		log.Printf("Error loading courses: %v", err)
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Error fetching courses", nil)
	}

	filtered := filterCourses(courses, c.Query("category"), c.Query("search"))

	return middleware.JsonResponse(c, fiber.StatusOK, true, "", fiber.Map{
		"count":   len(filtered),
		"courses": filtered,
	})
}

func GetCourseDetails(c *fiber.Ctx) error {
	courseID, ok := c.Locals("courseID").(uint)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid Course ID!", nil)
	}

	courses, err := database.Database.Courses.All()
	if err != nil {
		log.Printf("Error loading courses: %v", err)
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Error fetching course", nil)
	}

	for _, course := range courses {
		if course.ID == courseID {
			return middleware.JsonResponse(c, fiber.StatusOK, true, "", fiber.Map{
				"course":         course,
				"relatedCourses": relatedCourses(courses, course),
			})
		}
	}

	return middleware.JsonResponse(c, fiber.StatusNotFound, false, "Course not found", nil)
}

func GetCategories(c *fiber.Ctx) error {
	courses, err := database.Database.Courses.All()
	if err != nil {
		log.Printf("Error loading courses: %v", err)
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Error fetching categories", nil)
	}

	// Distinct categories in storage order.
	seen := make(map[string]bool)
	categories := make([]string, 0)
	for _, course := range courses {
		if course.Category == "" || seen[course.Category] {
			continue
		}
		seen[course.Category] = true
		categories = append(categories, course.Category)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "", fiber.Map{
		"categories": categories,
	})
}
