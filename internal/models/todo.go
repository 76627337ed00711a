package models

import (
	"time"

	"github.com/google/uuid"
)

type TodoItem struct {
	ID          uint      `gorm:"primaryKey" json:"id"`
	UserID      uuid.UUID `gorm:"type:uuid;not null;index" json:"-"`
	Title       string    `gorm:"size:200;not null" json:"title"`
	Description string    `gorm:"size:1000" json:"description"`
	DueDate     *Date     `json:"dueDate"`
	// No gorm default on Priority: a default tag would make the ORM skip
	// the zero value Low on insert and the column default would win.
	Priority    Priority  `gorm:"not null" json:"priority"`
	IsCompleted bool      `gorm:"not null;default:false" json:"isCompleted"`
	// Category is free text on todos, unrelated to the Category entity.
	Category  string    `gorm:"size:100" json:"category"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}
