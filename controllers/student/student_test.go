package controllers

import (
	"bytes"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"afapi/config"
	"afapi/database"
	"afapi/middleware"
	"afapi/models"
	studentValidator "afapi/validators/student"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type envelope struct {
	Status  bool            `json:"status"`
	Message string          `json:"message"`
	Data    json.RawMessage `json:"data"`
}

func setupApp(t *testing.T) (*fiber.App, string) {
	t.Helper()

	config.LoadConfig()
	database.ConnectTestDb()

	user := models.User{FirstName: "Staff", Email: "staff@test.com", PasswordHash: "x", Role: "staff"}
	require.NoError(t, database.Database.Db.Create(&user).Error)
	token, err := middleware.GenerateJWT(user.ID, user.Email, user.Role)
	require.NoError(t, err)

	app := fiber.New()
	app.Post("/api/students", middleware.JWTMiddleware, studentValidator.CreateStudent(), CreateStudent)
	app.Get("/api/students", middleware.JWTMiddleware, GetAllStudents)
	app.Put("/api/students/:id", middleware.JWTMiddleware, studentValidator.UpdateStudent(), UpdateStudent)

	return app, token
}

func doRequest(t *testing.T, app *fiber.App, method, path, token string, body interface{}) (*http.Response, envelope) {
	t.Helper()

	var buf bytes.Buffer
	if body != nil {
		require.NoError(t, json.NewEncoder(&buf).Encode(body))
	}

	req := httptest.NewRequest(method, path, &buf)
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", "Bearer "+token)

	resp, err := app.Test(req, -1)
	require.NoError(t, err)

	var env envelope
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&env))
	return resp, env
}

func studentPayload() fiber.Map {
	return fiber.Map{
		"name":           "Ravi Kumar",
		"email":          "ravi@test.com",
		"phone":          "9876543210",
		"parentsName":    "S Kumar",
		"profession":     "Student",
		"course":         "Full Stack",
		"courseDuration": "6 months",
		"fees":           30000.0,
		"advance":        10000.0,
		"balance":        20000.0,
	}
}

func TestCreateAndListStudents(t *testing.T) {
	app, token := setupApp(t)

	resp, env := doRequest(t, app, http.MethodPost, "/api/students", token, studentPayload())
	require.Equal(t, http.StatusCreated, resp.StatusCode)

	var created models.Student
	require.NoError(t, json.Unmarshal(env.Data, &created))
	assert.NotZero(t, created.ID)
	assert.Equal(t, "Ravi Kumar", created.Name)
	assert.Equal(t, 20000.0, created.Balance)

	resp, env = doRequest(t, app, http.MethodGet, "/api/students", token, nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)

	var students []models.Student
	require.NoError(t, json.Unmarshal(env.Data, &students))
	require.Len(t, students, 1)
}

func TestCreateStudentValidation(t *testing.T) {
	app, token := setupApp(t)

	resp, _ := doRequest(t, app, http.MethodPost, "/api/students", token, fiber.Map{
		"name": "No phone",
	})
	assert.Equal(t, http.StatusUnprocessableEntity, resp.StatusCode)
}

func TestUpdateStudent(t *testing.T) {
	app, token := setupApp(t)

	_, env := doRequest(t, app, http.MethodPost, "/api/students", token, studentPayload())
	var created models.Student
	require.NoError(t, json.Unmarshal(env.Data, &created))

	payload := studentPayload()
	payload["advance"] = 30000.0
	payload["balance"] = 0.0

	resp, env := doRequest(t, app, http.MethodPut, fmt.Sprintf("/api/students/%d", created.ID), token, payload)
	require.Equal(t, http.StatusOK, resp.StatusCode)

	var updated models.Student
	require.NoError(t, json.Unmarshal(env.Data, &updated))
	assert.Equal(t, 0.0, updated.Balance)
	assert.Equal(t, 30000.0, updated.Advance)
}

func TestUpdateStudentNotFound(t *testing.T) {
	app, token := setupApp(t)

	resp, _ := doRequest(t, app, http.MethodPut, "/api/students/999", token, studentPayload())
	assert.Equal(t, http.StatusNotFound, resp.StatusCode)
}
