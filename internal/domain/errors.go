package domain

import "errors"

var (
	ErrNotFound         = errors.New("not found")
	ErrInvalidID        = errors.New("invalid identifier")
	ErrInvalidAmount    = errors.New("amount must be positive")
	ErrBelowMinimum     = errors.New("amount below campaign minimum")
	ErrMissingParameter = errors.New("missing required parameter")
	ErrEmailTaken       = errors.New("email already registered")
)
