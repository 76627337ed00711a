package dto

import (
	"time"

	"github.com/shelftrack/shelftrack-server/internal/models"
)

// DashboardResponse is the single composed read backing the dashboard
// view. It is recomputed on every call; nothing here is cached.
type DashboardResponse struct {
	Summary      DashboardSummary  `json:"summary"`
	Upcoming     DashboardUpcoming `json:"upcoming"`
	PendingTodos []models.TodoItem `json:"pendingTodos"`
}

type DashboardSummary struct {
	Books      []StatusCount     `json:"books"`
	Movies     []StatusCount     `json:"movies"`
	Songs      []StatusCount     `json:"songs"`
	Todos      TodoSummary       `json:"todos"`
	Categories []CategorySummary `json:"categories"`
}

// StatusCount is one grouped row; only statuses present in the data
// appear, absent statuses are not zero-filled.
type StatusCount struct {
	Status string `json:"status"`
	Count  int64  `json:"count"`
}

type TodoSummary struct {
	Total        int64 `json:"total"`
	Completed    int64 `json:"completed"`
	Pending      int64 `json:"pending"`
	HighPriority int64 `json:"highPriority"`
}

type CategorySummary struct {
	Name      string `json:"name"`
	Icon      string `json:"icon"`
	Slug      string `json:"slug"`
	ItemCount int64  `json:"itemCount"`
}

type DashboardUpcoming struct {
	Books       []models.Book  `json:"books"`
	Movies      []models.Movie `json:"movies"`
	Songs       []models.Song  `json:"songs"`
	RecentItems []RecentItem   `json:"recentItems"`
}

// RecentItem is an item annotated with its parent category.
type RecentItem struct {
	ID           uint      `json:"id"`
	CategoryID   uint      `json:"categoryId"`
	Title        string    `json:"title"`
	Description  string    `json:"description"`
	Status       string    `json:"status"`
	CreatedAt    time.Time `json:"createdAt"`
	CategoryName string    `json:"categoryName"`
	CategorySlug string    `json:"categorySlug"`
}
