package services

import (
	"errors"
	"strings"

	"github.com/google/uuid"
	"github.com/shelftrack/shelftrack-server/internal/models"
	"github.com/shelftrack/shelftrack-server/internal/scope"
	"gorm.io/gorm"
)

// TodoFilter holds the raw list query parameters. Priority follows the
// same ignore-on-parse-failure policy as the media status filter.
type TodoFilter struct {
	Priority  string
	Completed *bool
	Category  string
}

type TodoService struct {
	db *gorm.DB
}

func NewTodoService(db *gorm.DB) *TodoService {
	return &TodoService{db: db}
}

func (s *TodoService) List(owner uuid.UUID, filter TodoFilter) ([]models.TodoItem, error) {
	q := s.db.Scopes(scope.ForOwner(owner))

	if filter.Priority != "" {
		if priority, ok := models.ParsePriority(filter.Priority); ok {
			q = q.Where("priority = ?", priority)
		}
	}
	if filter.Completed != nil {
		q = q.Where("is_completed = ?", *filter.Completed)
	}
	if filter.Category != "" {
		q = q.Where("LOWER(category) LIKE ?", "%"+strings.ToLower(filter.Category)+"%")
	}

	todos := []models.TodoItem{}
	err := q.Order("priority DESC").Order("due_date ASC NULLS LAST").Find(&todos).Error
	return todos, err
}

func (s *TodoService) Get(owner uuid.UUID, id uint) (*models.TodoItem, error) {
	var todo models.TodoItem
	if err := s.db.Scopes(scope.ForOwner(owner)).First(&todo, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return &todo, nil
}

func (s *TodoService) Create(owner uuid.UUID, todo *models.TodoItem) (*models.TodoItem, error) {
	if err := validateTitle(todo.Title); err != nil {
		return nil, err
	}

	todo.ID = 0
	todo.UserID = owner

	if err := s.db.Create(todo).Error; err != nil {
		return nil, err
	}
	return todo, nil
}

func (s *TodoService) Update(owner uuid.UUID, id uint, input *models.TodoItem) (*models.TodoItem, error) {
	todo, err := s.Get(owner, id)
	if err != nil {
		return nil, err
	}
	if err := validateTitle(input.Title); err != nil {
		return nil, err
	}

	todo.Title = input.Title
	todo.Description = input.Description
	todo.DueDate = input.DueDate
	todo.Priority = input.Priority
	todo.IsCompleted = input.IsCompleted
	todo.Category = input.Category

	if err := s.db.Save(todo).Error; err != nil {
		return nil, err
	}
	return todo, nil
}

// Toggle flips isCompleted. It is the only state transition todos have,
// and it goes both ways.
func (s *TodoService) Toggle(owner uuid.UUID, id uint) (*models.TodoItem, error) {
	todo, err := s.Get(owner, id)
	if err != nil {
		return nil, err
	}

	todo.IsCompleted = !todo.IsCompleted
	if err := s.db.Save(todo).Error; err != nil {
		return nil, err
	}
	return todo, nil
}

func (s *TodoService) Delete(owner uuid.UUID, id uint) error {
	todo, err := s.Get(owner, id)
	if err != nil {
		return err
	}
	return s.db.Delete(todo).Error
}
