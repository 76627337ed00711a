package models

import (
	"time"

	"github.com/google/uuid"
)

// Tracked is the shared surface of the three media models. One generic
// service and handler drive books, movies and songs through it instead of
// three copy-pasted CRUD stacks.
type Tracked interface {
	GetID() uint
	SetID(id uint)
	SetOwner(id uuid.UUID)
	GetTitle() string
	GetStatus() TrackingStatus
	SetStatus(s TrackingStatus)
}

// TrackedPtr constrains a pointer to a media model: it must implement
// Tracked and be able to take a full field replacement from another value.
type TrackedPtr[T any] interface {
	*T
	Tracked
	ReplaceFrom(src *T)
}

type Book struct {
	ID            uint           `gorm:"primaryKey" json:"id"`
	UserID        uuid.UUID      `gorm:"type:uuid;not null;index" json:"-"`
	Title         string         `gorm:"size:200;not null" json:"title"`
	Author        string         `gorm:"size:255" json:"author"`
	Genre         string         `gorm:"size:100" json:"genre"`
	ReleaseDate   *Date          `json:"releaseDate"`
	Status        TrackingStatus `gorm:"size:20;not null;default:'Upcoming'" json:"status"`
	Notes         string         `gorm:"type:text" json:"notes"`
	CoverImageURL string         `gorm:"type:text" json:"coverImageUrl"`
	CreatedAt     time.Time      `json:"createdAt"`
	UpdatedAt     time.Time      `json:"updatedAt"`
}

func (b *Book) GetID() uint                { return b.ID }
func (b *Book) SetID(id uint)              { b.ID = id }
func (b *Book) SetOwner(id uuid.UUID)      { b.UserID = id }
func (b *Book) GetTitle() string           { return b.Title }
func (b *Book) GetStatus() TrackingStatus  { return b.Status }
func (b *Book) SetStatus(s TrackingStatus) { b.Status = s }

// ReplaceFrom overwrites every caller-mutable field. ID, owner and
// CreatedAt stay untouched; UpdatedAt is refreshed on save.
func (b *Book) ReplaceFrom(src *Book) {
	b.Title = src.Title
	b.Author = src.Author
	b.Genre = src.Genre
	b.ReleaseDate = src.ReleaseDate
	b.Status = src.Status
	b.Notes = src.Notes
	b.CoverImageURL = src.CoverImageURL
}

type Movie struct {
	ID          uint           `gorm:"primaryKey" json:"id"`
	UserID      uuid.UUID      `gorm:"type:uuid;not null;index" json:"-"`
	Title       string         `gorm:"size:200;not null" json:"title"`
	Director    string         `gorm:"size:255" json:"director"`
	Genre       string         `gorm:"size:100" json:"genre"`
	ReleaseDate *Date          `json:"releaseDate"`
	Status      TrackingStatus `gorm:"size:20;not null;default:'Upcoming'" json:"status"`
	Notes       string         `gorm:"type:text" json:"notes"`
	PosterURL   string         `gorm:"type:text" json:"posterUrl"`
	CreatedAt   time.Time      `json:"createdAt"`
	UpdatedAt   time.Time      `json:"updatedAt"`
}

func (m *Movie) GetID() uint                { return m.ID }
func (m *Movie) SetID(id uint)              { m.ID = id }
func (m *Movie) SetOwner(id uuid.UUID)      { m.UserID = id }
func (m *Movie) GetTitle() string           { return m.Title }
func (m *Movie) GetStatus() TrackingStatus  { return m.Status }
func (m *Movie) SetStatus(s TrackingStatus) { m.Status = s }

func (m *Movie) ReplaceFrom(src *Movie) {
	m.Title = src.Title
	m.Director = src.Director
	m.Genre = src.Genre
	m.ReleaseDate = src.ReleaseDate
	m.Status = src.Status
	m.Notes = src.Notes
	m.PosterURL = src.PosterURL
}

type Song struct {
	ID          uint           `gorm:"primaryKey" json:"id"`
	UserID      uuid.UUID      `gorm:"type:uuid;not null;index" json:"-"`
	Title       string         `gorm:"size:200;not null" json:"title"`
	Artist      string         `gorm:"size:255" json:"artist"`
	Album       string         `gorm:"size:255" json:"album"`
	Genre       string         `gorm:"size:100" json:"genre"`
	ReleaseDate *Date          `json:"releaseDate"`
	Status      TrackingStatus `gorm:"size:20;not null;default:'Upcoming'" json:"status"`
	Notes       string         `gorm:"type:text" json:"notes"`
	AlbumArtURL string         `gorm:"type:text" json:"albumArtUrl"`
	CreatedAt   time.Time      `json:"createdAt"`
	UpdatedAt   time.Time      `json:"updatedAt"`
}

func (s *Song) GetID() uint                 { return s.ID }
func (s *Song) SetID(id uint)               { s.ID = id }
func (s *Song) SetOwner(id uuid.UUID)       { s.UserID = id }
func (s *Song) GetTitle() string            { return s.Title }
func (s *Song) GetStatus() TrackingStatus   { return s.Status }
func (s *Song) SetStatus(st TrackingStatus) { s.Status = st }

func (s *Song) ReplaceFrom(src *Song) {
	s.Title = src.Title
	s.Artist = src.Artist
	s.Album = src.Album
	s.Genre = src.Genre
	s.ReleaseDate = src.ReleaseDate
	s.Status = src.Status
	s.Notes = src.Notes
	s.AlbumArtURL = src.AlbumArtURL
}
