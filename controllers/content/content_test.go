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
	contentValidator "afapi/validators/content"

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
	app.Post("/api/content", middleware.JWTMiddleware, contentValidator.CreateContent(), CreateContent)
	app.Get("/api/content/section/:id", middleware.JWTMiddleware, contentValidator.SectionID(), GetContentBySection)
	app.Put("/api/content/:id", middleware.JWTMiddleware, contentValidator.UpdateContent(), UpdateContent)
	app.Delete("/api/content/:id", middleware.JWTMiddleware, contentValidator.ContentID(), DeleteContent)
	app.Post("/api/content/:contentId/quiz", middleware.JWTMiddleware, contentValidator.CreateQuiz(), CreateQuiz)
	app.Put("/api/quiz/:id", middleware.JWTMiddleware, contentValidator.UpdateQuiz(), UpdateQuiz)
	app.Delete("/api/quiz/:id", middleware.JWTMiddleware, contentValidator.QuizID(), DeleteQuiz)

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

func createContent(t *testing.T, app *fiber.App, token string, sectionID uint, title string, orderIndex int) models.CourseContent {
	t.Helper()

	resp, env := doRequest(t, app, http.MethodPost, "/api/content", token, fiber.Map{
		"section_id":  sectionID,
		"title":       title,
		"content":     "<p>body</p>",
		"type":        "text",
		"order_index": orderIndex,
	})
	require.Equal(t, http.StatusCreated, resp.StatusCode)

	var content models.CourseContent
	require.NoError(t, json.Unmarshal(env.Data, &content))
	return content
}

func TestCreateAndListContentBySection(t *testing.T) {
	app, token := setupApp(t)

	createContent(t, app, token, 7, "Second block", 1)
	createContent(t, app, token, 7, "First block", 0)
	createContent(t, app, token, 8, "Other section", 0)

	resp, env := doRequest(t, app, http.MethodGet, "/api/content/section/7", token, nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)

	var contents []models.CourseContent
	require.NoError(t, json.Unmarshal(env.Data, &contents))
	require.Len(t, contents, 2)
	assert.Equal(t, "First block", contents[0].Title)
	assert.Equal(t, "Second block", contents[1].Title)
}

func TestCreateContentValidation(t *testing.T) {
	app, token := setupApp(t)

	resp, _ := doRequest(t, app, http.MethodPost, "/api/content", token, fiber.Map{
		"content": "no section or title",
	})
	assert.Equal(t, http.StatusUnprocessableEntity, resp.StatusCode)
}

func TestUpdateContent(t *testing.T) {
	app, token := setupApp(t)
	content := createContent(t, app, token, 7, "Old title", 0)

	resp, env := doRequest(t, app, http.MethodPut, fmt.Sprintf("/api/content/%d", content.ID), token, fiber.Map{
		"title":       "New title",
		"content":     "<p>updated</p>",
		"type":        "video",
		"order_index": 3,
	})
	require.Equal(t, http.StatusOK, resp.StatusCode)

	var updated models.CourseContent
	require.NoError(t, json.Unmarshal(env.Data, &updated))
	assert.Equal(t, "New title", updated.Title)
	assert.Equal(t, "video", updated.Type)
	assert.Equal(t, 3, updated.OrderIndex)
}

func TestUpdateContentNotFound(t *testing.T) {
	app, token := setupApp(t)

	resp, _ := doRequest(t, app, http.MethodPut, "/api/content/999", token, fiber.Map{
		"title": "x",
	})
	assert.Equal(t, http.StatusNotFound, resp.StatusCode)
}

func TestDeleteContentRemovesQuizQuestions(t *testing.T) {
	app, token := setupApp(t)
	content := createContent(t, app, token, 7, "Quiz holder", 0)

	resp, _ := doRequest(t, app, http.MethodPost, fmt.Sprintf("/api/content/%d/quiz", content.ID), token, fiber.Map{
		"question":       "2+2?",
		"options":        []string{"3", "4"},
		"correct_answer": "4",
	})
	require.Equal(t, http.StatusCreated, resp.StatusCode)

	resp, _ = doRequest(t, app, http.MethodDelete, fmt.Sprintf("/api/content/%d", content.ID), token, nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)

	db := database.Database.Db
	var liveQuestions int64
	require.NoError(t, db.Model(&models.QuizQuestion{}).
		Where("content_id = ? AND is_deleted = ?", content.ID, false).
		Count(&liveQuestions).Error)
	assert.Zero(t, liveQuestions)

	resp, _ = doRequest(t, app, http.MethodGet, "/api/content/section/7", token, nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)
}

func TestQuizRoundTrip(t *testing.T) {
	app, token := setupApp(t)
	content := createContent(t, app, token, 7, "Quiz holder", 0)

	resp, env := doRequest(t, app, http.MethodPost, fmt.Sprintf("/api/content/%d/quiz", content.ID), token, fiber.Map{
		"question":       "Capital of France?",
		"options":        []string{"Paris", "Lyon", "Nice"},
		"correct_answer": "Paris",
	})
	require.Equal(t, http.StatusCreated, resp.StatusCode)

	var question models.QuizQuestion
	require.NoError(t, json.Unmarshal(env.Data, &question))
	assert.Equal(t, "Capital of France?", question.Question)
	assert.Equal(t, "Paris", question.CorrectAnswer)

	var options []string
	require.NoError(t, json.Unmarshal(question.Options, &options))
	assert.Equal(t, []string{"Paris", "Lyon", "Nice"}, options)

	resp, env = doRequest(t, app, http.MethodPut, fmt.Sprintf("/api/quiz/%d", question.ID), token, fiber.Map{
		"question":       "Capital of Italy?",
		"options":        []string{"Rome", "Milan"},
		"correct_answer": "Rome",
	})
	require.Equal(t, http.StatusOK, resp.StatusCode)

	var updated models.QuizQuestion
	require.NoError(t, json.Unmarshal(env.Data, &updated))
	assert.Equal(t, "Capital of Italy?", updated.Question)

	resp, _ = doRequest(t, app, http.MethodDelete, fmt.Sprintf("/api/quiz/%d", question.ID), token, nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)

	resp, _ = doRequest(t, app, http.MethodPut, fmt.Sprintf("/api/quiz/%d", question.ID), token, fiber.Map{
		"question":       "x?",
		"options":        []string{"a", "b"},
		"correct_answer": "a",
	})
	assert.Equal(t, http.StatusNotFound, resp.StatusCode)
}

func TestQuizValidation(t *testing.T) {
	app, token := setupApp(t)
	content := createContent(t, app, token, 7, "Quiz holder", 0)

	resp, _ := doRequest(t, app, http.MethodPost, fmt.Sprintf("/api/content/%d/quiz", content.ID), token, fiber.Map{
		"question": "only one option",
		"options":  []string{"a"},
	})
	assert.Equal(t, http.StatusUnprocessableEntity, resp.StatusCode)
}

func TestQuizOnMissingContent(t *testing.T) {
	app, token := setupApp(t)

	resp, _ := doRequest(t, app, http.MethodPost, "/api/content/999/quiz", token, fiber.Map{
		"question":       "x?",
		"options":        []string{"a", "b"},
		"correct_answer": "a",
	})
	assert.Equal(t, http.StatusNotFound, resp.StatusCode)
}
