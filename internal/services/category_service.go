package services

import (
	"errors"
	"strings"
	"unicode/utf8"

	"github.com/google/uuid"
	"github.com/shelftrack/shelftrack-server/internal/models"
	"github.com/shelftrack/shelftrack-server/internal/scope"
	"gorm.io/gorm"
)

type CategoryService struct {
	db *gorm.DB
}

func NewCategoryService(db *gorm.DB) *CategoryService {
	return &CategoryService{db: db}
}

func (s *CategoryService) List(owner uuid.UUID) ([]models.Category, error) {
	categories := []models.Category{}
	err := s.db.Scopes(scope.ForOwner(owner)).Find(&categories).Error
	return categories, err
}

// GetBySlug is a case-sensitive exact match scoped to the owner.
func (s *CategoryService) GetBySlug(owner uuid.UUID, slug string) (*models.Category, error) {
	var category models.Category
	err := s.db.Scopes(scope.ForOwner(owner)).Where("slug = ?", slug).First(&category).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return &category, nil
}

// Create stores the caller-supplied slug verbatim; there is no
// server-side slug derivation. Slug collisions within one owner surface
// as ErrSlugTaken via the store's unique constraint, so concurrent
// creates race safely.
func (s *CategoryService) Create(owner uuid.UUID, category *models.Category) (*models.Category, error) {
	if name := strings.TrimSpace(category.Name); name == "" || utf8.RuneCountInString(name) > 100 {
		return nil, ErrNameRequired
	}
	if slug := strings.TrimSpace(category.Slug); slug == "" || utf8.RuneCountInString(slug) > 100 {
		return nil, ErrSlugRequired
	}

	category.ID = 0
	category.UserID = owner

	if err := s.db.Create(category).Error; err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return nil, ErrSlugTaken
		}
		return nil, err
	}
	return category, nil
}

// Delete removes the category and all its items in one transaction:
// both disappear together or neither does.
func (s *CategoryService) Delete(owner uuid.UUID, id uint) error {
	var category models.Category
	err := s.db.Scopes(scope.ForOwner(owner)).First(&category, "id = ?", id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrNotFound
		}
		return err
	}

	return s.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("category_id = ?", category.ID).Delete(&models.Item{}).Error; err != nil {
			return err
		}
		return tx.Delete(&category).Error
	})
}

// --- Items, always resolved through the parent category slug ---

func (s *CategoryService) ListItems(owner uuid.UUID, slug string) ([]models.Item, error) {
	category, err := s.GetBySlug(owner, slug)
	if err != nil {
		return nil, err
	}

	items := []models.Item{}
	err = s.db.Where("category_id = ?", category.ID).Find(&items).Error
	return items, err
}

func (s *CategoryService) CreateItem(owner uuid.UUID, slug string, item *models.Item) (*models.Item, error) {
	category, err := s.GetBySlug(owner, slug)
	if err != nil {
		return nil, err
	}

	if err := validateTitle(item.Title); err != nil {
		return nil, err
	}

	item.ID = 0
	item.CategoryID = category.ID
	item.Category = nil
	if item.Status == "" {
		item.Status = "Active"
	}

	if err := s.db.Create(item).Error; err != nil {
		return nil, err
	}
	return item, nil
}

// UpdateItem is a full replace. An item under a different category than
// the resolved slug is treated as not found.
func (s *CategoryService) UpdateItem(owner uuid.UUID, slug string, id uint, input *models.Item) error {
	category, err := s.GetBySlug(owner, slug)
	if err != nil {
		return err
	}

	var item models.Item
	if err := s.db.First(&item, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrNotFound
		}
		return err
	}
	if item.CategoryID != category.ID {
		return ErrNotFound
	}

	if err := validateTitle(input.Title); err != nil {
		return err
	}

	item.Title = input.Title
	item.Description = input.Description
	item.Status = input.Status
	item.Properties = input.Properties

	return s.db.Save(&item).Error
}

func (s *CategoryService) DeleteItem(owner uuid.UUID, slug string, id uint) error {
	category, err := s.GetBySlug(owner, slug)
	if err != nil {
		return err
	}

	var item models.Item
	if err := s.db.First(&item, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrNotFound
		}
		return err
	}
	if item.CategoryID != category.ID {
		return ErrNotFound
	}

	return s.db.Delete(&item).Error
}
