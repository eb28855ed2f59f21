package seohelper

import (
	"errors"
	"fmt"
)

var (
	// ErrInvalidArgument is matched by every *InvalidArgumentError.
	ErrInvalidArgument = errors.New("seohelper: invalid argument")
	// ErrInvalidConfig is matched by every *ConfigError.
	ErrInvalidConfig = errors.New("seohelper: invalid config")
)

// InvalidArgumentError reports a dynamically typed value that an operation
// cannot accept, e.g. keywords given as a number or a mapping.
type InvalidArgumentError struct {
	Op    string // Operation or config path that rejected the value
	Value any    // The rejected value
}

// Error implements the error interface.
func (e *InvalidArgumentError) Error() string {
	return fmt.Sprintf("%s: invalid argument of type %T, expected a string or a list of strings", e.Op, e.Value)
}

// Unwrap lets errors.Is match ErrInvalidArgument.
func (e *InvalidArgumentError) Unwrap() error { return ErrInvalidArgument }

// ConfigError reports a configuration field that failed validation.
type ConfigError struct {
	Field   string // Dotted path of the field, e.g. "title.max"
	Message string
}

// Error implements the error interface.
func (e *ConfigError) Error() string {
	return fmt.Sprintf("invalid config field %s: %s", e.Field, e.Message)
}

// Unwrap lets errors.Is match ErrInvalidConfig.
func (e *ConfigError) Unwrap() error { return ErrInvalidConfig }

// NewInvalidArgumentError creates a new InvalidArgumentError.
func NewInvalidArgumentError(op string, value any) *InvalidArgumentError {
	return &InvalidArgumentError{Op: op, Value: value}
}

// NewConfigError creates a new ConfigError.
func NewConfigError(field, message string) *ConfigError {
	return &ConfigError{Field: field, Message: message}
}
