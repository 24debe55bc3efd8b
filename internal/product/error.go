package product

import "errors"

var (
	ErrProductNotFound = errors.New("product not found")
	ErrInvalidCategory = errors.New("invalid category")
	ErrInvalidPrice    = errors.New("price must be a positive number")
	ErrInvalidStock    = errors.New("stock must be a non-negative integer")
	ErrEmptyName       = errors.New("name is required")
	ErrNoUpdateFields  = errors.New("no fields to update")
)
