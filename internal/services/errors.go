package services

import "errors"

// Shared sentinel errors. Handlers map these onto status codes:
// ErrNotFound -> 404, ErrSlugTaken -> 409, the rest of the validation
// errors -> 400.
var (
	ErrNotFound      = errors.New("record not found")
	ErrTitleRequired = errors.New("title is required")
	ErrTitleTooLong  = errors.New("title must be 200 characters or fewer")
	ErrNameRequired  = errors.New("category name is required (max 100 characters)")
	ErrSlugRequired  = errors.New("category slug is required (max 100 characters)")
	ErrSlugTaken     = errors.New("a category with this slug already exists")
)
