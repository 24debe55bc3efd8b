package variant

import "errors"

var (
	ErrVariantNotFound = errors.New("variant not found")
	ErrSKUExists       = errors.New("sku already exists")
	ErrEmptyName       = errors.New("variant name is required")
	ErrInvalidPrice    = errors.New("variant price must be a positive number")
	ErrInvalidStock    = errors.New("variant stock must be a non-negative integer")

	pgUniqueViolation = "23505"
)
