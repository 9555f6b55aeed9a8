package models

import "errors"

var (
	// ErrEmptyTopic is returned before any catalog access is attempted.
	ErrEmptyTopic = errors.New("topic is required, please specify what you're looking for")

	// ErrInvalidAmount is returned before any payment processor call.
	ErrInvalidAmount = errors.New("amount must be positive")
)
