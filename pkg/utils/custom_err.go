package utils

import "errors"

var (
	ErrEmailAlreadyExists = errors.New("email already exists")
	ErrPasswordMismatch   = errors.New("passwords do not match")
	ErrInvalidCredentials = errors.New("invalid email or password")
	ErrUnauthorized       = errors.New("unauthorized")

	ErrUserNotFound  = errors.New("user not found")
	ErrHallNotFound  = errors.New("hall not found")
	ErrEventNotFound = errors.New("event not found")

	ErrNoVacancy     = errors.New("no vacancy available")
	ErrAlreadyBooked = errors.New("more than one booking not allowed")

	ErrDatabaseError = errors.New("database error")
)
