package models

import (
	"time"

	"github.com/google/uuid"
)

// Category is a user-defined collection addressed by slug. Slugs are
// supplied by the caller verbatim and unique per owner, matching the
// tenant isolation applied everywhere else.
type Category struct {
	ID          uint      `gorm:"primaryKey" json:"id"`
	UserID      uuid.UUID `gorm:"type:uuid;not null;index;uniqueIndex:idx_categories_owner_slug" json:"-"`
	Name        string    `gorm:"size:100;not null" json:"name"`
	Slug        string    `gorm:"size:100;not null;uniqueIndex:idx_categories_owner_slug" json:"slug"`
	Icon        string    `gorm:"size:10" json:"icon"`
	Description string    `gorm:"size:500" json:"description"`
	CreatedAt   time.Time `json:"createdAt"`
	UpdatedAt   time.Time `json:"updatedAt"`
}

// Item lives under exactly one Category and is removed with it.
// Ownership is derived through the parent category; every item operation
// resolves the category slug for the caller first.
type Item struct {
	ID          uint      `gorm:"primaryKey" json:"id"`
	CategoryID  uint      `gorm:"not null;index" json:"categoryId"`
	Category    *Category `gorm:"constraint:OnDelete:CASCADE" json:"-"`
	Title       string    `gorm:"size:200;not null" json:"title"`
	Description string    `gorm:"size:1000" json:"description"`
	Status      string    `gorm:"size:50;not null;default:'Active'" json:"status"`
	// Properties is an opaque JSON document owned by the client. It is
	// stored and returned verbatim, never parsed here.
	Properties string    `gorm:"type:text" json:"properties"`
	CreatedAt  time.Time `json:"createdAt"`
	UpdatedAt  time.Time `json:"updatedAt"`
}
