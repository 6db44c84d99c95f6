// Package service implements business logic, validation, and orchestration
// between HTTP handlers and the repository layer.
package service

import (
	"errors"

	"github.com/go-playground/validator/v10"
)

// ErrInvalidInput is returned when a request body fails validation.
var ErrInvalidInput = errors.New("invalid input")

// ErrInvalidCredentials is returned for an unknown email or wrong password.
// Both cases share it so login failures are indistinguishable to callers.
var ErrInvalidCredentials = errors.New("invalid credentials")

// ErrMissingCredentials is returned when login fields are absent.
var ErrMissingCredentials = errors.New("email and password required")

// validate is shared by all services; struct tags carry the rules.
var validate = validator.New()
