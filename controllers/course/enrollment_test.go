package courseController_test

import (
	"edule/config"
	"edule/database"
	"edule/middleware"
	"edule/models"
	"net/http"
	"testing"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
)

func seedUser(t *testing.T, name, email string, isAdmin bool) models.User {
	t.Helper()

	hash, err := bcrypt.GenerateFromPassword([]byte("secret123"), config.AppConfig.SaltRound)
	require.NoError(t, err)

	var user models.User
	require.NoError(t, database.Database.Users.Update(func(tx *database.Tx[models.User]) error {
		user = models.User{
			ID:        tx.NextID(),
			Name:      name,
			Email:     email,
			Password:  string(hash),
			IsAdmin:   isAdmin,
			CreatedAt: time.Now().UTC(),
		}
		tx.Records = append(tx.Records, user)
		return nil
	}))
	return user
}

func tokenFor(t *testing.T, user models.User) string {
	t.Helper()
	token, err := middleware.GenerateJWT(user.ID, user.Name, user.Email, user.IsAdmin)
	require.NoError(t, err)
	return token
}

func TestEnrollInCourse(t *testing.T) {
	app := setupApp(t)
	seedCatalog(t)
	user := seedUser(t, "Asha", "asha@example.com", false)
	token := tokenFor(t, user)

	status, body := doJSON(t, app, "POST", "/enroll/1", token, fiber.Map{"userId": user.ID})
	require.Equal(t, http.StatusOK, status)
	require.Equal(t, "Successfully enrolled in course!", body["message"])

	enrollment := body["enrollment"].(map[string]interface{})
	require.Equal(t, float64(1), enrollment["id"])
	require.Equal(t, float64(0), enrollment["progress"])
	require.Equal(t, false, enrollment["completed"])
}

func TestEnrollTwiceConflicts(t *testing.T) {
	app := setupApp(t)
	seedCatalog(t)
	user := seedUser(t, "Asha", "asha@example.com", false)
	token := tokenFor(t, user)

	status, _ := doJSON(t, app, "POST", "/enroll/1", token, fiber.Map{"userId": user.ID})
	require.Equal(t, http.StatusOK, status)

	status, body := doJSON(t, app, "POST", "/enroll/1", token, fiber.Map{"userId": user.ID})
	require.Equal(t, http.StatusConflict, status)
	require.Equal(t, "Already enrolled in this course", body["message"])

	enrollments, err := database.Database.Enrollments.All()
	require.NoError(t, err)
	require.Len(t, enrollments, 1)
}

func TestEnrollUnknownCourse(t *testing.T) {
	app := setupApp(t)
	seedCatalog(t)
	user := seedUser(t, "Asha", "asha@example.com", false)
	token := tokenFor(t, user)

	status, body := doJSON(t, app, "POST", "/enroll/999", token, fiber.Map{"userId": user.ID})
	require.Equal(t, http.StatusNotFound, status)
	require.Equal(t, "Course not found", body["message"])
}

func TestEnrollRequiresToken(t *testing.T) {
	app := setupApp(t)
	seedCatalog(t)

	status, _ := doJSON(t, app, "POST", "/enroll/1", "", fiber.Map{"userId": 1})
	require.Equal(t, http.StatusUnauthorized, status)
}

func TestEnrollOtherUserForbidden(t *testing.T) {
	app := setupApp(t)
	seedCatalog(t)
	asha := seedUser(t, "Asha", "asha@example.com", false)
	bikram := seedUser(t, "Bikram", "bikram@example.com", false)

	status, body := doJSON(t, app, "POST", "/enroll/1", tokenFor(t, bikram), fiber.Map{"userId": asha.ID})
	require.Equal(t, http.StatusForbidden, status)
	require.Equal(t, "Access denied!", body["message"])
}

func TestEnrollOtherUserAsAdmin(t *testing.T) {
	app := setupApp(t)
	seedCatalog(t)
	asha := seedUser(t, "Asha", "asha@example.com", false)
	admin := seedUser(t, "Root", "root@example.com", true)

	status, _ := doJSON(t, app, "POST", "/enroll/1", tokenFor(t, admin), fiber.Map{"userId": asha.ID})
	require.Equal(t, http.StatusOK, status)
}

func TestUpdateProgressClampsToRange(t *testing.T) {
	app := setupApp(t)
	seedCatalog(t)
	user := seedUser(t, "Asha", "asha@example.com", false)
	token := tokenFor(t, user)

	status, _ := doJSON(t, app, "POST", "/enroll/1", token, fiber.Map{"userId": user.ID})
	require.Equal(t, http.StatusOK, status)

	status, body := doJSON(t, app, "PUT", "/progress/1", token, fiber.Map{"userId": user.ID, "progress": 150})
	require.Equal(t, http.StatusOK, status)
	require.Equal(t, "Progress updated successfully", body["message"])

	enrollment := body["enrollment"].(map[string]interface{})
	require.Equal(t, float64(100), enrollment["progress"])
	require.Equal(t, true, enrollment["completed"])

	status, body = doJSON(t, app, "PUT", "/progress/1", token, fiber.Map{"userId": user.ID, "progress": -20})
	require.Equal(t, http.StatusOK, status)
	enrollment = body["enrollment"].(map[string]interface{})
	require.Equal(t, float64(0), enrollment["progress"])
	require.Equal(t, false, enrollment["completed"])
}

func TestUpdateProgressZeroIsValid(t *testing.T) {
	app := setupApp(t)
	seedCatalog(t)
	user := seedUser(t, "Asha", "asha@example.com", false)
	token := tokenFor(t, user)

	status, _ := doJSON(t, app, "POST", "/enroll/1", token, fiber.Map{"userId": user.ID})
	require.Equal(t, http.StatusOK, status)

	// Progress 0 is present, not absent.
	status, body := doJSON(t, app, "PUT", "/progress/1", token, fiber.Map{"userId": user.ID, "progress": 0})
	require.Equal(t, http.StatusOK, status)
	require.Equal(t, "Progress updated successfully", body["message"])

	// Omitting progress entirely is a validation error.
	status, body = doJSON(t, app, "PUT", "/progress/1", token, fiber.Map{"userId": user.ID})
	require.Equal(t, http.StatusBadRequest, status)
	require.Equal(t, "User ID and progress are required", body["message"])
}

func TestUpdateProgressNoEnrollment(t *testing.T) {
	app := setupApp(t)
	seedCatalog(t)
	user := seedUser(t, "Asha", "asha@example.com", false)
	token := tokenFor(t, user)

	status, body := doJSON(t, app, "PUT", "/progress/1", token, fiber.Map{"userId": user.ID, "progress": 50})
	require.Equal(t, http.StatusNotFound, status)
	require.Equal(t, "Enrollment not found", body["message"])
}
