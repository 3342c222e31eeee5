package authController_test

import (
	"bytes"
	"edule/config"
	"edule/database"
	"edule/middleware"
	"edule/models"
	authRoutes "edule/routers/authRoutes"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/require"
)

func setupApp(t *testing.T) *fiber.App {
	t.Helper()

	config.AppConfig = &config.Config{
		DataDir:   t.TempDir(),
		JWTKey:    "test-secret",
		SaltRound: 4,
	}
	database.ConnectDb()

	app := fiber.New()
	authRoutes.SetupAuthRoutes(app)
	return app
}

func doJSON(t *testing.T, app *fiber.App, method, path, token string, body interface{}) (int, map[string]interface{}) {
	t.Helper()

	var reader *bytes.Reader
	if body != nil {
		raw, err := json.Marshal(body)
		require.NoError(t, err)
		reader = bytes.NewReader(raw)
	} else {
		reader = bytes.NewReader(nil)
	}

	req := httptest.NewRequest(method, path, reader)
	req.Header.Set("Content-Type", "application/json")
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	resp, err := app.Test(req)
	require.NoError(t, err)
	defer resp.Body.Close()

	var decoded map[string]interface{}
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&decoded))
	return resp.StatusCode, decoded
}

func register(t *testing.T, app *fiber.App, name, email, password string) map[string]interface{} {
	t.Helper()
	status, body := doJSON(t, app, "POST", "/auth/register", "", fiber.Map{
		"name":     name,
		"email":    email,
		"password": password,
	})
	require.Equal(t, http.StatusOK, status, "register failed: %v", body)
	return body
}

func TestRegisterAssignsFirstID(t *testing.T) {
	app := setupApp(t)

	body := register(t, app, "Asha", "asha@example.com", "secret123")
	require.Equal(t, true, body["success"])
	require.Equal(t, "Registration successful!", body["message"])

	user := body["user"].(map[string]interface{})
	require.Equal(t, float64(1), user["id"])
	require.Equal(t, "Asha", user["name"])
	require.Equal(t, false, user["isAdmin"])
	_, leaked := user["password"]
	require.False(t, leaked, "password hash must never appear in responses")
}

func TestRegisterDuplicateEmailConflicts(t *testing.T) {
	app := setupApp(t)
	register(t, app, "Asha", "asha@example.com", "secret123")

	status, body := doJSON(t, app, "POST", "/auth/register", "", fiber.Map{
		"name":     "Imposter",
		"email":    "asha@example.com",
		"password": "other456",
	})
	require.Equal(t, http.StatusConflict, status)
	require.Equal(t, "This email is already taken", body["message"])

	users, err := database.Database.Users.All()
	require.NoError(t, err)
	require.Len(t, users, 1)
}

func TestRegisterRequiresAllFields(t *testing.T) {
	app := setupApp(t)

	status, body := doJSON(t, app, "POST", "/auth/register", "", fiber.Map{
		"name":  "No Password",
		"email": "nopass@example.com",
	})
	require.Equal(t, http.StatusBadRequest, status)
	require.Equal(t, "Please provide name, email, and password", body["message"])
}

func TestLogin(t *testing.T) {
	app := setupApp(t)
	register(t, app, "Asha", "asha@example.com", "secret123")

	status, body := doJSON(t, app, "POST", "/auth/login", "", fiber.Map{
		"email":    "asha@example.com",
		"password": "secret123",
	})
	require.Equal(t, http.StatusOK, status)
	require.Equal(t, "Login successful!", body["message"])
	require.NotEmpty(t, body["token"])

	user := body["user"].(map[string]interface{})
	require.Equal(t, float64(1), user["id"])
}

func TestLoginWrongPassword(t *testing.T) {
	app := setupApp(t)
	register(t, app, "Asha", "asha@example.com", "secret123")

	status, body := doJSON(t, app, "POST", "/auth/login", "", fiber.Map{
		"email":    "asha@example.com",
		"password": "wrong",
	})
	require.Equal(t, http.StatusUnauthorized, status)
	require.Equal(t, "Invalid email or password", body["message"])

	// Unknown email must produce the same message, not a different one.
	status, body = doJSON(t, app, "POST", "/auth/login", "", fiber.Map{
		"email":    "ghost@example.com",
		"password": "secret123",
	})
	require.Equal(t, http.StatusUnauthorized, status)
	require.Equal(t, "Invalid email or password", body["message"])
}

func TestChangePassword(t *testing.T) {
	app := setupApp(t)
	register(t, app, "Asha", "asha@example.com", "secret123")

	token, err := middleware.GenerateJWT(1, "Asha", "asha@example.com", false)
	require.NoError(t, err)

	status, body := doJSON(t, app, "PUT", "/auth/change-password", token, fiber.Map{
		"userId":          1,
		"currentPassword": "secret123",
		"newPassword":     "rotated789",
	})
	require.Equal(t, http.StatusOK, status)
	require.Equal(t, "Password updated successfully!", body["message"])

	// Old password no longer works, new one does.
	status, _ = doJSON(t, app, "POST", "/auth/login", "", fiber.Map{
		"email":    "asha@example.com",
		"password": "secret123",
	})
	require.Equal(t, http.StatusUnauthorized, status)

	status, _ = doJSON(t, app, "POST", "/auth/login", "", fiber.Map{
		"email":    "asha@example.com",
		"password": "rotated789",
	})
	require.Equal(t, http.StatusOK, status)
}

func TestChangePasswordWrongCurrent(t *testing.T) {
	app := setupApp(t)
	register(t, app, "Asha", "asha@example.com", "secret123")

	token, err := middleware.GenerateJWT(1, "Asha", "asha@example.com", false)
	require.NoError(t, err)

	status, body := doJSON(t, app, "PUT", "/auth/change-password", token, fiber.Map{
		"userId":          1,
		"currentPassword": "nope",
		"newPassword":     "rotated789",
	})
	require.Equal(t, http.StatusUnauthorized, status)
	require.Equal(t, "Current password is incorrect", body["message"])
}

func TestChangePasswordForOtherUserNeedsAdmin(t *testing.T) {
	app := setupApp(t)
	register(t, app, "Asha", "asha@example.com", "secret123")
	register(t, app, "Bikram", "bikram@example.com", "secret456")

	token, err := middleware.GenerateJWT(2, "Bikram", "bikram@example.com", false)
	require.NoError(t, err)

	status, body := doJSON(t, app, "PUT", "/auth/change-password", token, fiber.Map{
		"userId":          1,
		"currentPassword": "secret123",
		"newPassword":     "hijacked",
	})
	require.Equal(t, http.StatusForbidden, status)
	require.Equal(t, "Access denied!", body["message"])
}

func TestGetProfileRequiresToken(t *testing.T) {
	app := setupApp(t)
	register(t, app, "Asha", "asha@example.com", "secret123")

	status, _ := doJSON(t, app, "GET", "/auth/profile/1", "", nil)
	require.Equal(t, http.StatusUnauthorized, status)
}

func TestGetProfileOtherUserForbidden(t *testing.T) {
	app := setupApp(t)
	register(t, app, "Asha", "asha@example.com", "secret123")
	register(t, app, "Bikram", "bikram@example.com", "secret456")

	token, err := middleware.GenerateJWT(2, "Bikram", "bikram@example.com", false)
	require.NoError(t, err)

	status, body := doJSON(t, app, "GET", "/auth/profile/1", token, nil)
	require.Equal(t, http.StatusForbidden, status)
	require.Equal(t, "Access denied!", body["message"])
}

func TestGetProfileJoinsEnrollments(t *testing.T) {
	app := setupApp(t)
	register(t, app, "Asha", "asha@example.com", "secret123")

	require.NoError(t, database.Database.Courses.Update(func(tx *database.Tx[models.Course]) error {
		tx.Records = append(tx.Records,
			models.Course{ID: tx.NextID(), Title: "Go Basics", Category: "Development", Instructor: "Sunita Karki"},
			models.Course{ID: tx.NextID(), Title: "Figma", Category: "Design", Instructor: "Aarav Shrestha"},
		)
		return nil
	}))
	require.NoError(t, database.Database.Enrollments.Update(func(tx *database.Tx[models.Enrollment]) error {
		tx.Records = append(tx.Records,
			models.Enrollment{ID: tx.NextID(), UserID: 1, CourseID: 1, Progress: 100, Completed: true},
			models.Enrollment{ID: tx.NextID(), UserID: 1, CourseID: 2, Progress: 40},
		)
		return nil
	}))

	token, err := middleware.GenerateJWT(1, "Asha", "asha@example.com", false)
	require.NoError(t, err)

	status, body := doJSON(t, app, "GET", "/auth/profile/1", token, nil)
	require.Equal(t, http.StatusOK, status)

	enrolled := body["enrolledCourses"].([]interface{})
	require.Len(t, enrolled, 2)
	first := enrolled[0].(map[string]interface{})
	require.Equal(t, "Go Basics", first["title"])
	require.Equal(t, float64(100), first["progress"])

	stats := body["stats"].(map[string]interface{})
	require.Equal(t, float64(2), stats["totalEnrolled"])
	require.Equal(t, float64(1), stats["completed"])
	require.Equal(t, float64(1), stats["inProgress"])
}

func TestUpdateProfile(t *testing.T) {
	app := setupApp(t)
	register(t, app, "Asha", "asha@example.com", "secret123")

	token, err := middleware.GenerateJWT(1, "Asha", "asha@example.com", false)
	require.NoError(t, err)

	status, body := doJSON(t, app, "PUT", "/auth/profile/1", token, fiber.Map{
		"name":         "Asha Rai",
		"profileImage": "/images/avatars/asha.png",
	})
	require.Equal(t, http.StatusOK, status)
	require.Equal(t, "Profile updated successfully!", body["message"])

	user := body["user"].(map[string]interface{})
	require.Equal(t, "Asha Rai", user["name"])
	require.Equal(t, "/images/avatars/asha.png", user["profileImage"])

	// Explicit null clears the image; omitting it leaves it untouched.
	req := httptest.NewRequest("PUT", "/auth/profile/1", bytes.NewReader([]byte(`{"profileImage": null}`)))
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", "Bearer "+token)
	resp, err := app.Test(req)
	require.NoError(t, err)
	defer resp.Body.Close()
	require.Equal(t, http.StatusOK, resp.StatusCode)

	var cleared map[string]interface{}
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&cleared))
	require.Nil(t, cleared["user"].(map[string]interface{})["profileImage"])
	require.Equal(t, "Asha Rai", cleared["user"].(map[string]interface{})["name"])
}

func TestUpdateProfileInvalidUserIDParam(t *testing.T) {
	app := setupApp(t)
	register(t, app, "Asha", "asha@example.com", "secret123")

	token, err := middleware.GenerateJWT(1, "Asha", "asha@example.com", false)
	require.NoError(t, err)

	for _, bad := range []string{"0", "-3", "abc"} {
		status, _ := doJSON(t, app, "GET", fmt.Sprintf("/auth/profile/%s", bad), token, nil)
		require.Equal(t, http.StatusBadRequest, status, "param %q", bad)
	}
}
