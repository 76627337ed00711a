package routes

import (
	"bytes"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"strconv"
	"testing"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"github.com/shelftrack/shelftrack-server/internal/config"
	"github.com/shelftrack/shelftrack-server/internal/models"
)

type testServer struct {
	app *fiber.App
	t   *testing.T
}

func newTestServer(t *testing.T) *testServer {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger:         logger.Default.LogMode(logger.Silent),
		TranslateError: true,
	})
	require.NoError(t, err)
	sqlDB, err := db.DB()
	require.NoError(t, err)
	sqlDB.SetMaxOpenConns(1)

	require.NoError(t, db.AutoMigrate(
		&models.User{},
		&models.RefreshToken{},
		&models.Book{},
		&models.Movie{},
		&models.Song{},
		&models.TodoItem{},
		&models.Category{},
		&models.Item{},
	))

	cfg := &config.Config{
		JWTSecret:        "routes-test-secret",
		JWTAccessExpiry:  15 * time.Minute,
		JWTRefreshExpiry: 24 * time.Hour,
	}

	app := fiber.New()
	Setup(app, cfg, db)

	return &testServer{app: app, t: t}
}

func (s *testServer) request(method, path, token string, body interface{}) *http.Response {
	s.t.Helper()

	var reader io.Reader
	if body != nil {
		b, err := json.Marshal(body)
		require.NoError(s.t, err)
		reader = bytes.NewReader(b)
	}

	req := httptest.NewRequest(method, path, reader)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	resp, err := s.app.Test(req, -1)
	require.NoError(s.t, err)
	return resp
}

func (s *testServer) decode(resp *http.Response, dest interface{}) {
	s.t.Helper()
	defer resp.Body.Close()
	require.NoError(s.t, json.NewDecoder(resp.Body).Decode(dest))
}

func (s *testServer) registerUser(email string) string {
	s.t.Helper()

	resp := s.request(http.MethodPost, "/api/register", "", fiber.Map{
		"email":    email,
		"password": "password123",
	})
	require.Equal(s.t, http.StatusCreated, resp.StatusCode)

	var auth struct {
		AccessToken string `json:"access_token"`
	}
	s.decode(resp, &auth)
	require.NotEmpty(s.t, auth.AccessToken)
	return auth.AccessToken
}

func TestUnauthenticatedRequestsAreRejected(t *testing.T) {
	s := newTestServer(t)

	for _, path := range []string{"/api/books", "/api/todos", "/api/categories", "/api/dashboard"} {
		resp := s.request(http.MethodGet, path, "", nil)
		assert.Equal(t, http.StatusUnauthorized, resp.StatusCode, path)
	}

	resp := s.request(http.MethodGet, "/api/books", "not-a-jwt", nil)
	assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)
}

func TestBookLifecycleOverHTTP(t *testing.T) {
	s := newTestServer(t)
	token := s.registerUser("reader@example.com")

	// Create
	resp := s.request(http.MethodPost, "/api/books", token, fiber.Map{
		"title":  "Dune Messiah",
		"status": "Completed",
	})
	require.Equal(t, http.StatusCreated, resp.StatusCode)

	var created models.Book
	s.decode(resp, &created)
	assert.Equal(t, "Dune Messiah", created.Title)
	assert.Equal(t, models.StatusCompleted, created.Status)
	require.NotZero(t, created.ID)

	// Read back
	id := created.ID
	resp = s.request(http.MethodGet, bookPath(id), token, nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	var fetched models.Book
	s.decode(resp, &fetched)
	assert.Equal(t, "Dune Messiah", fetched.Title)

	// Update (full replace)
	resp = s.request(http.MethodPut, bookPath(id), token, fiber.Map{
		"title":  "Dune Messiah",
		"status": "Dropped",
		"notes":  "did not finish the reread",
	})
	require.Equal(t, http.StatusOK, resp.StatusCode)
	var updated models.Book
	s.decode(resp, &updated)
	assert.Equal(t, models.StatusDropped, updated.Status)

	// Delete, then the id is gone
	resp = s.request(http.MethodDelete, bookPath(id), token, nil)
	assert.Equal(t, http.StatusNoContent, resp.StatusCode)

	resp = s.request(http.MethodGet, bookPath(id), token, nil)
	assert.Equal(t, http.StatusNotFound, resp.StatusCode)

	resp = s.request(http.MethodPut, bookPath(id), token, fiber.Map{"title": "Ghost"})
	assert.Equal(t, http.StatusNotFound, resp.StatusCode)
}

func TestBookValidationOverHTTP(t *testing.T) {
	s := newTestServer(t)
	token := s.registerUser("reader@example.com")

	// Missing title
	resp := s.request(http.MethodPost, "/api/books", token, fiber.Map{"author": "Nobody"})
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)

	// Unknown status in a body is a binding error
	resp = s.request(http.MethodPost, "/api/books", token, fiber.Map{
		"title":  "X",
		"status": "Reading",
	})
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
}

func TestTodoToggleOverHTTP(t *testing.T) {
	s := newTestServer(t)
	token := s.registerUser("doer@example.com")

	resp := s.request(http.MethodPost, "/api/todos", token, fiber.Map{
		"title":    "Water plants",
		"priority": "high",
	})
	require.Equal(t, http.StatusCreated, resp.StatusCode)
	var todo models.TodoItem
	s.decode(resp, &todo)
	assert.Equal(t, models.PriorityHigh, todo.Priority)
	assert.False(t, todo.IsCompleted)

	resp = s.request(http.MethodPatch, todoTogglePath(todo.ID), token, nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	var toggled models.TodoItem
	s.decode(resp, &toggled)
	assert.True(t, toggled.IsCompleted)

	resp = s.request(http.MethodPatch, todoTogglePath(todo.ID), token, nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	s.decode(resp, &toggled)
	assert.False(t, toggled.IsCompleted)

	resp = s.request(http.MethodPatch, "/api/todos/9999/toggle", token, nil)
	assert.Equal(t, http.StatusNotFound, resp.StatusCode)
}

func TestTodoPriorityDefaultsAndRoundTripsOverHTTP(t *testing.T) {
	s := newTestServer(t)
	token := s.registerUser("prioritizer@example.com")

	resp := s.request(http.MethodPost, "/api/todos", token, fiber.Map{
		"title": "someday maybe",
	})
	require.Equal(t, http.StatusCreated, resp.StatusCode)
	var defaulted models.TodoItem
	s.decode(resp, &defaulted)
	assert.Equal(t, models.PriorityMedium, defaulted.Priority)

	resp = s.request(http.MethodPost, "/api/todos", token, fiber.Map{
		"title":    "chill task",
		"priority": "Low",
	})
	require.Equal(t, http.StatusCreated, resp.StatusCode)
	var low models.TodoItem
	s.decode(resp, &low)
	require.Equal(t, models.PriorityLow, low.Priority)

	resp = s.request(http.MethodGet, "/api/todos/"+itoa(low.ID), token, nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	var fetched models.TodoItem
	s.decode(resp, &fetched)
	assert.Equal(t, models.PriorityLow, fetched.Priority)
}

func TestTodoCompletedFilterOverHTTP(t *testing.T) {
	s := newTestServer(t)
	token := s.registerUser("filterer@example.com")

	resp := s.request(http.MethodPost, "/api/todos", token, fiber.Map{"title": "open"})
	require.Equal(t, http.StatusCreated, resp.StatusCode)
	resp = s.request(http.MethodPost, "/api/todos", token, fiber.Map{
		"title": "done", "isCompleted": true,
	})
	require.Equal(t, http.StatusCreated, resp.StatusCode)

	var todos []models.TodoItem
	resp = s.request(http.MethodGet, "/api/todos?completed=true", token, nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	s.decode(resp, &todos)
	require.Len(t, todos, 1)
	assert.Equal(t, "done", todos[0].Title)

	// A value that is not a boolean leaves the list unfiltered.
	resp = s.request(http.MethodGet, "/api/todos?completed=garbage", token, nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	s.decode(resp, &todos)
	assert.Len(t, todos, 2)
}

func TestCategoryAndItemsOverHTTP(t *testing.T) {
	s := newTestServer(t)
	token := s.registerUser("curator@example.com")

	resp := s.request(http.MethodPost, "/api/categories", token, fiber.Map{
		"name": "Board Games",
		"slug": "board-games",
	})
	require.Equal(t, http.StatusCreated, resp.StatusCode)
	var category models.Category
	s.decode(resp, &category)

	// Duplicate slug for the same owner is a conflict
	resp = s.request(http.MethodPost, "/api/categories", token, fiber.Map{
		"name": "Also Games",
		"slug": "board-games",
	})
	assert.Equal(t, http.StatusConflict, resp.StatusCode)

	// Items nest under the slug
	resp = s.request(http.MethodPost, "/api/categories/board-games/items", token, fiber.Map{
		"title":      "Catan",
		"properties": `{"players": 4}`,
	})
	require.Equal(t, http.StatusCreated, resp.StatusCode)
	var item models.Item
	s.decode(resp, &item)
	assert.Equal(t, "Active", item.Status)
	assert.Equal(t, `{"players": 4}`, item.Properties)

	// Item update returns no content
	resp = s.request(http.MethodPut, itemPath("board-games", item.ID), token, fiber.Map{
		"title":  "Catan (base game)",
		"status": "Owned",
	})
	assert.Equal(t, http.StatusNoContent, resp.StatusCode)

	// Items under a missing category are NotFound
	resp = s.request(http.MethodPost, "/api/categories/nope/items", token, fiber.Map{"title": "Orphan"})
	assert.Equal(t, http.StatusNotFound, resp.StatusCode)

	// Deleting the category cascades; the slug stops resolving
	resp = s.request(http.MethodDelete, categoryPath(category.ID), token, nil)
	assert.Equal(t, http.StatusNoContent, resp.StatusCode)

	resp = s.request(http.MethodGet, "/api/categories/board-games/items", token, nil)
	assert.Equal(t, http.StatusNotFound, resp.StatusCode)
}

func TestTenantIsolationOverHTTP(t *testing.T) {
	s := newTestServer(t)
	alice := s.registerUser("alice@example.com")
	bob := s.registerUser("bob@example.com")

	resp := s.request(http.MethodPost, "/api/books", alice, fiber.Map{"title": "Alice's Book"})
	require.Equal(t, http.StatusCreated, resp.StatusCode)
	var book models.Book
	s.decode(resp, &book)

	resp = s.request(http.MethodGet, bookPath(book.ID), bob, nil)
	assert.Equal(t, http.StatusNotFound, resp.StatusCode)

	resp = s.request(http.MethodGet, "/api/books", bob, nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	var books []models.Book
	s.decode(resp, &books)
	assert.Empty(t, books)
}

func TestDashboardOverHTTP(t *testing.T) {
	s := newTestServer(t)
	token := s.registerUser("viewer@example.com")

	resp := s.request(http.MethodPost, "/api/books", token, fiber.Map{"title": "B1", "status": "Completed"})
	require.Equal(t, http.StatusCreated, resp.StatusCode)
	resp = s.request(http.MethodPost, "/api/todos", token, fiber.Map{"title": "T1", "priority": "Critical"})
	require.Equal(t, http.StatusCreated, resp.StatusCode)

	resp = s.request(http.MethodGet, "/api/dashboard", token, nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)

	var overview struct {
		Summary struct {
			Books []struct {
				Status string `json:"status"`
				Count  int64  `json:"count"`
			} `json:"books"`
			Todos struct {
				Total     int64 `json:"total"`
				Completed int64 `json:"completed"`
				Pending   int64 `json:"pending"`
			} `json:"todos"`
		} `json:"summary"`
		PendingTodos []models.TodoItem `json:"pendingTodos"`
	}
	s.decode(resp, &overview)

	require.Len(t, overview.Summary.Books, 1)
	assert.Equal(t, "Completed", overview.Summary.Books[0].Status)
	assert.Equal(t, int64(1), overview.Summary.Books[0].Count)
	assert.Equal(t, overview.Summary.Todos.Total, overview.Summary.Todos.Completed+overview.Summary.Todos.Pending)
	require.Len(t, overview.PendingTodos, 1)
	assert.Equal(t, "T1", overview.PendingTodos[0].Title)
}

func bookPath(id uint) string {
	return "/api/books/" + itoa(id)
}

func todoTogglePath(id uint) string {
	return "/api/todos/" + itoa(id) + "/toggle"
}

func categoryPath(id uint) string {
	return "/api/categories/" + itoa(id)
}

func itemPath(slug string, id uint) string {
	return "/api/categories/" + slug + "/items/" + itoa(id)
}

func itoa(id uint) string {
	return strconv.FormatUint(uint64(id), 10)
}
