package user

import "errors"

var (
	ErrEmailExists        = errors.New("user already exists")
	ErrInvalidCredentials = errors.New("invalid credentials")
	ErrUserNotFound       = errors.New("user not found")
	ErrInvalidRole        = errors.New("invalid role")

	// Postgres unique_violation, used to detect duplicate emails.
	PgUniqueViolation = "23505"
)
