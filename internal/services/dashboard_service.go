package services

import (
	"github.com/google/uuid"
	"github.com/shelftrack/shelftrack-server/internal/dto"
	"github.com/shelftrack/shelftrack-server/internal/models"
	"github.com/shelftrack/shelftrack-server/internal/scope"
	"gorm.io/gorm"
)

const dashboardTopN = 5

// DashboardService composes the read-only overview: grouped status
// counts, todo totals, per-category item counts and the short upcoming
// and pending lists. No write side effects.
type DashboardService struct {
	db *gorm.DB
}

func NewDashboardService(db *gorm.DB) *DashboardService {
	return &DashboardService{db: db}
}

func (s *DashboardService) Overview(owner uuid.UUID) (*dto.DashboardResponse, error) {
	resp := &dto.DashboardResponse{}

	var err error
	if resp.Summary.Books, err = s.statusCounts(owner, &models.Book{}); err != nil {
		return nil, err
	}
	if resp.Summary.Movies, err = s.statusCounts(owner, &models.Movie{}); err != nil {
		return nil, err
	}
	if resp.Summary.Songs, err = s.statusCounts(owner, &models.Song{}); err != nil {
		return nil, err
	}
	if resp.Summary.Todos, err = s.todoSummary(owner); err != nil {
		return nil, err
	}
	if resp.Summary.Categories, err = s.categorySummaries(owner); err != nil {
		return nil, err
	}

	if err = s.upcoming(owner, &resp.Upcoming.Books); err != nil {
		return nil, err
	}
	if err = s.upcoming(owner, &resp.Upcoming.Movies); err != nil {
		return nil, err
	}
	if err = s.upcoming(owner, &resp.Upcoming.Songs); err != nil {
		return nil, err
	}
	if resp.Upcoming.RecentItems, err = s.recentItems(owner); err != nil {
		return nil, err
	}

	if resp.PendingTodos, err = s.pendingTodos(owner); err != nil {
		return nil, err
	}

	return resp, nil
}

func (s *DashboardService) statusCounts(owner uuid.UUID, model interface{}) ([]dto.StatusCount, error) {
	counts := []dto.StatusCount{}
	err := s.db.Model(model).
		Scopes(scope.ForOwner(owner)).
		Select("status, COUNT(*) AS count").
		Group("status").
		Scan(&counts).Error
	return counts, err
}

func (s *DashboardService) todoSummary(owner uuid.UUID) (dto.TodoSummary, error) {
	var summary dto.TodoSummary
	base := func() *gorm.DB {
		return s.db.Model(&models.TodoItem{}).Scopes(scope.ForOwner(owner))
	}

	if err := base().Count(&summary.Total).Error; err != nil {
		return summary, err
	}
	if err := base().Where("is_completed = ?", true).Count(&summary.Completed).Error; err != nil {
		return summary, err
	}
	summary.Pending = summary.Total - summary.Completed
	err := base().Where("is_completed = ? AND priority >= ?", false, models.PriorityHigh).
		Count(&summary.HighPriority).Error
	return summary, err
}

func (s *DashboardService) categorySummaries(owner uuid.UUID) ([]dto.CategorySummary, error) {
	summaries := []dto.CategorySummary{}
	err := s.db.Model(&models.Category{}).
		Select("categories.name, categories.icon, categories.slug, COUNT(items.id) AS item_count").
		Joins("LEFT JOIN items ON items.category_id = categories.id").
		Where("categories.user_id = ?", owner).
		Group("categories.id, categories.name, categories.icon, categories.slug").
		Scan(&summaries).Error
	return summaries, err
}

// upcoming fills dest with the next releases still marked Upcoming.
// Unknown release dates sort last.
func (s *DashboardService) upcoming(owner uuid.UUID, dest interface{}) error {
	return s.db.Scopes(scope.ForOwner(owner)).
		Where("status = ?", models.StatusUpcoming).
		Order("release_date ASC NULLS LAST").
		Limit(dashboardTopN).
		Find(dest).Error
}

func (s *DashboardService) recentItems(owner uuid.UUID) ([]dto.RecentItem, error) {
	recent := []dto.RecentItem{}
	err := s.db.Model(&models.Item{}).
		Select("items.id, items.category_id, items.title, items.description, items.status, items.created_at, categories.name AS category_name, categories.slug AS category_slug").
		Joins("JOIN categories ON categories.id = items.category_id").
		Where("categories.user_id = ?", owner).
		Order("items.created_at DESC").
		Limit(dashboardTopN).
		Scan(&recent).Error
	return recent, err
}

func (s *DashboardService) pendingTodos(owner uuid.UUID) ([]models.TodoItem, error) {
	todos := []models.TodoItem{}
	err := s.db.Scopes(scope.ForOwner(owner)).
		Where("is_completed = ?", false).
		Order("priority DESC").
		Limit(dashboardTopN).
		Find(&todos).Error
	return todos, err
}
