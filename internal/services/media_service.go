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

// MediaFilter holds the raw list query parameters. Status values that do
// not parse as a TrackingStatus are ignored rather than rejected; the
// browser client sends whatever is in the URL bar and expects the
// unfiltered list back.
type MediaFilter struct {
	Status string
	Genre  string
}

// MediaService is the one CRUD implementation behind books, movies and
// songs. T is the model struct, PT its pointer with the Tracked methods.
type MediaService[T any, PT models.TrackedPtr[T]] struct {
	db *gorm.DB
}

func NewMediaService[T any, PT models.TrackedPtr[T]](db *gorm.DB) *MediaService[T, PT] {
	return &MediaService[T, PT]{db: db}
}

func (s *MediaService[T, PT]) List(owner uuid.UUID, filter MediaFilter) ([]T, error) {
	q := s.db.Scopes(scope.ForOwner(owner))

	if filter.Status != "" {
		if status, ok := models.ParseTrackingStatus(filter.Status); ok {
			q = q.Where("status = ?", status)
		}
	}
	if filter.Genre != "" {
		q = q.Where("LOWER(genre) LIKE ?", "%"+strings.ToLower(filter.Genre)+"%")
	}

	records := []T{}
	err := q.Order("created_at DESC").Find(&records).Error
	return records, err
}

func (s *MediaService[T, PT]) Get(owner uuid.UUID, id uint) (*T, error) {
	var record T
	if err := s.db.Scopes(scope.ForOwner(owner)).First(&record, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return &record, nil
}

func (s *MediaService[T, PT]) Create(owner uuid.UUID, record *T) (*T, error) {
	p := PT(record)
	if err := validateTitle(p.GetTitle()); err != nil {
		return nil, err
	}

	p.SetID(0)
	p.SetOwner(owner)
	if p.GetStatus() == "" {
		p.SetStatus(models.StatusUpcoming)
	}

	if err := s.db.Create(record).Error; err != nil {
		return nil, err
	}
	return record, nil
}

// Update is a full replace of every caller-mutable field.
func (s *MediaService[T, PT]) Update(owner uuid.UUID, id uint, input *T) (*T, error) {
	current, err := s.Get(owner, id)
	if err != nil {
		return nil, err
	}

	in := PT(input)
	if err := validateTitle(in.GetTitle()); err != nil {
		return nil, err
	}
	if in.GetStatus() == "" {
		in.SetStatus(models.StatusUpcoming)
	}

	PT(current).ReplaceFrom(input)
	if err := s.db.Save(current).Error; err != nil {
		return nil, err
	}
	return current, nil
}

func (s *MediaService[T, PT]) Delete(owner uuid.UUID, id uint) error {
	current, err := s.Get(owner, id)
	if err != nil {
		return err
	}
	return s.db.Delete(current).Error
}

func validateTitle(title string) error {
	title = strings.TrimSpace(title)
	if title == "" {
		return ErrTitleRequired
	}
	// Limits count characters, not bytes; multibyte titles get the full 200.
	if utf8.RuneCountInString(title) > 200 {
		return ErrTitleTooLong
	}
	return nil
}
