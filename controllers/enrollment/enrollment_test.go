package controllers

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"afapi/config"
	"afapi/database"
	"afapi/middleware"
	"afapi/models"
	enrollmentValidator "afapi/validators/enrollment"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

type envelope struct {
	Status  bool            `json:"status"`
	Message string          `json:"message"`
	Data    json.RawMessage `json:"data"`
}

func setupApp(t *testing.T) *fiber.App {
	t.Helper()

	config.LoadConfig()
	database.ConnectTestDb()

	app := fiber.New()
	app.Get("/api/enrollments", middleware.JWTMiddleware, GetUserEnrollments)
	app.Post("/api/enrollments", middleware.JWTMiddleware, enrollmentValidator.Enroll(), EnrollInCourse)

	return app
}

func createTestUser(t *testing.T, email string) (models.User, string) {
	t.Helper()

	user := models.User{FirstName: "Test", Email: email, PasswordHash: "x", Role: "student"}
	require.NoError(t, database.Database.Db.Create(&user).Error)

	token, err := middleware.GenerateJWT(user.ID, user.Email, user.Role)
	require.NoError(t, err)
	return user, token
}

func createTestCourse(t *testing.T, title string) models.Course {
	t.Helper()

	course := models.Course{Title: title, Description: "d"}
	require.NoError(t, database.Database.Db.Create(&course).Error)
	return course
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

func TestEnrollInCourse(t *testing.T) {
	app := setupApp(t)
	_, token := createTestUser(t, "student@test.com")
	course := createTestCourse(t, "Intro")

	resp, env := doRequest(t, app, http.MethodPost, "/api/enrollments", token, fiber.Map{"courseId": course.ID})
	require.Equal(t, http.StatusCreated, resp.StatusCode)
	assert.Equal(t, "Enrolled successfully", env.Message)
}

func TestEnrollTwiceRejected(t *testing.T) {
	app := setupApp(t)
	_, token := createTestUser(t, "student@test.com")
	course := createTestCourse(t, "Intro")

	resp, _ := doRequest(t, app, http.MethodPost, "/api/enrollments", token, fiber.Map{"courseId": course.ID})
	require.Equal(t, http.StatusCreated, resp.StatusCode)

	resp, _ = doRequest(t, app, http.MethodPost, "/api/enrollments", token, fiber.Map{"courseId": course.ID})
	assert.Equal(t, http.StatusConflict, resp.StatusCode)
}

func TestEnrollInMissingCourse(t *testing.T) {
	app := setupApp(t)
	_, token := createTestUser(t, "student@test.com")

	resp, _ := doRequest(t, app, http.MethodPost, "/api/enrollments", token, fiber.Map{"courseId": 999})
	assert.Equal(t, http.StatusNotFound, resp.StatusCode)
}

func TestDuplicateEnrollmentRejectedByStore(t *testing.T) {
	setupApp(t)

	user, _ := createTestUser(t, "student@test.com")
	course := createTestCourse(t, "Intro")

	db := database.Database.Db
	require.NoError(t, db.Create(&models.Enrollment{UserID: user.ID, CourseID: course.ID}).Error)

	// A second live (user, course) row must be refused by the unique index
	// even when it bypasses the handler's lookup
	err := db.Create(&models.Enrollment{UserID: user.ID, CourseID: course.ID}).Error
	require.Error(t, err)
	assert.ErrorIs(t, err, gorm.ErrDuplicatedKey)
}

func TestEnrollmentsAreScopedToCaller(t *testing.T) {
	app := setupApp(t)
	_, tokenA := createTestUser(t, "a@test.com")
	_, tokenB := createTestUser(t, "b@test.com")
	courseA := createTestCourse(t, "Course A")
	courseB := createTestCourse(t, "Course B")

	resp, _ := doRequest(t, app, http.MethodPost, "/api/enrollments", tokenA, fiber.Map{"courseId": courseA.ID})
	require.Equal(t, http.StatusCreated, resp.StatusCode)
	resp, _ = doRequest(t, app, http.MethodPost, "/api/enrollments", tokenB, fiber.Map{"courseId": courseB.ID})
	require.Equal(t, http.StatusCreated, resp.StatusCode)

	resp, env := doRequest(t, app, http.MethodGet, "/api/enrollments", tokenA, nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)

	var enrollments []models.Enrollment
	require.NoError(t, json.Unmarshal(env.Data, &enrollments))
	require.Len(t, enrollments, 1)
	assert.Equal(t, courseA.ID, enrollments[0].CourseID)
}
