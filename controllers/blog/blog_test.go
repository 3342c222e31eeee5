package blogController_test

import (
	"edule/config"
	"edule/database"
	"edule/models"
	blogRoutes "edule/routers/blogRoutes"
	"encoding/json"
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
	blogRoutes.SetupBlogRoutes(app)
	return app
}

func get(t *testing.T, app *fiber.App, path string) (int, map[string]interface{}) {
	t.Helper()

	req := httptest.NewRequest("GET", path, nil)
	resp, err := app.Test(req)
	require.NoError(t, err)
	defer resp.Body.Close()

	var decoded map[string]interface{}
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&decoded))
	return resp.StatusCode, decoded
}

func TestGetAllBlogsEmptyWithoutDocument(t *testing.T) {
	app := setupApp(t)

	// The blogs document is optional; a missing file is an empty list,
	// not an error.
	status, body := get(t, app, "/blogs")
	require.Equal(t, http.StatusOK, status)
	require.Empty(t, body["blogs"])
}

func TestGetBlogDetails(t *testing.T) {
	app := setupApp(t)

	require.NoError(t, database.Database.Blogs.Update(func(tx *database.Tx[models.Blog]) error {
		tx.Records = append(tx.Records, models.Blog{ID: tx.NextID(), Title: "Welcome", Author: "EduLe Team"})
		return nil
	}))

	status, body := get(t, app, "/blogs/1")
	require.Equal(t, http.StatusOK, status)
	require.Equal(t, "Welcome", body["blog"].(map[string]interface{})["title"])

	status, body = get(t, app, "/blogs/999")
	require.Equal(t, http.StatusNotFound, status)
	require.Equal(t, "Blog not found", body["message"])

	status, _ = get(t, app, "/blogs/abc")
	require.Equal(t, http.StatusNotFound, status)
}
