package handlers

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// withUser stands in for the auth middleware so the validation paths
// that never reach the store can run without a database.
func withUser(h fiber.Handler) fiber.Handler {
	return func(c *fiber.Ctx) error {
		c.Locals("user_id", "64f000000000000000000001")
		return h(c)
	}
}

func newTestApp() *fiber.App {
	app := fiber.New()
	app.Post("/tour", CreateTourHandler)
	app.Post("/tour/image", UploadTourImageHandler)
	app.Patch("/tour/like/:id", LikeTourHandler)
	app.Patch("/tour/like-auth/:id", withUser(LikeTourHandler))
	app.Get("/tour/user/:id", GetToursByUserHandler)
	app.Get("/tour/:id", GetTourHandler)
	app.Patch("/tour/:id", UpdateTourHandler)
	app.Delete("/tour/:id", DeleteTourHandler)
	return app
}

func doRequest(t *testing.T, app *fiber.App, method, target string) (int, string) {
	t.Helper()
	req := httptest.NewRequest(method, target, nil)
	resp, err := app.Test(req)
	require.NoError(t, err)
	defer resp.Body.Close()

	var body struct {
		Message string `json:"message"`
	}
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
	return resp.StatusCode, body.Message
}

func TestCreateTourRequiresAuth(t *testing.T) {
	app := newTestApp()
	status, msg := doRequest(t, app, http.MethodPost, "/tour")
	assert.Equal(t, http.StatusUnauthorized, status)
	assert.Equal(t, "User is not authenticated", msg)
}

func TestUploadImageRequiresAuth(t *testing.T) {
	app := newTestApp()
	status, _ := doRequest(t, app, http.MethodPost, "/tour/image")
	assert.Equal(t, http.StatusUnauthorized, status)
}

func TestLikeTourRequiresAuth(t *testing.T) {
	app := newTestApp()
	status, msg := doRequest(t, app, http.MethodPatch, "/tour/like/64f000000000000000000002")
	assert.Equal(t, http.StatusUnauthorized, status)
	assert.Equal(t, "User is not authenticated", msg)
}

func TestLikeTourRejectsMalformedID(t *testing.T) {
	app := newTestApp()
	status, msg := doRequest(t, app, http.MethodPatch, "/tour/like-auth/abc")
	assert.Equal(t, http.StatusNotFound, status)
	assert.Equal(t, "No tour exists with that ID", msg)
}

func TestGetTourMalformedIDIsNotFound(t *testing.T) {
	app := newTestApp()
	status, msg := doRequest(t, app, http.MethodGet, "/tour/abc")
	assert.Equal(t, http.StatusNotFound, status)
	assert.Equal(t, "Tour not found", msg)
}

func TestGetToursByUserRejectsMalformedID(t *testing.T) {
	app := newTestApp()
	status, msg := doRequest(t, app, http.MethodGet, "/tour/user/abc")
	assert.Equal(t, http.StatusNotFound, status)
	assert.Equal(t, "User doesn't exist", msg)
}

func TestDeleteTourRejectsMalformedID(t *testing.T) {
	app := newTestApp()
	status, msg := doRequest(t, app, http.MethodDelete, "/tour/abc")
	assert.Equal(t, http.StatusNotFound, status)
	assert.Equal(t, "No tour exists with that ID", msg)
}

func TestUpdateTourRejectsMalformedID(t *testing.T) {
	app := newTestApp()
	status, msg := doRequest(t, app, http.MethodPatch, "/tour/abc")
	assert.Equal(t, http.StatusNotFound, status)
	assert.Equal(t, "No tour exists with that ID", msg)
}
