package category

import "errors"

var (
	ErrCategoryNotFound = errors.New("category not found")
	ErrCategoryExists   = errors.New("category already exists")
	ErrEmptyName        = errors.New("category name cannot be empty")

	pgUniqueViolation = "23505"
)
