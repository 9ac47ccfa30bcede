// Package apperrors defines application-level error types.
package apperrors

import (
	"errors"
	"fmt"
	"strings"
)

// NotFoundError indicates the recipe file does not exist.
type NotFoundError struct {
	Path string
}

func (e *NotFoundError) Error() string {
	return fmt.Sprintf("no recipe found at %s", e.Path)
}

// NewNotFoundError creates a new not-found error.
func NewNotFoundError(path string) *NotFoundError {
	return &NotFoundError{Path: path}
}

// CorruptError indicates the recipe file exists but is not valid JSON or YAML.
type CorruptError struct {
	Cause error
	Path  string
}

func (e *CorruptError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("recipe file %s is corrupted: %v", e.Path, e.Cause)
	}
	return fmt.Sprintf("recipe file %s is corrupted", e.Path)
}

func (e *CorruptError) Unwrap() error {
	return e.Cause
}

// NewCorruptError creates a new corrupt-file error.
func NewCorruptError(path string, cause error) *CorruptError {
	return &CorruptError{
		Path:  path,
		Cause: cause,
	}
}

// InvalidRecipeError indicates the recipe file decoded but does not have the
// expected structure, e.g. an ingredient without carbs.
type InvalidRecipeError struct {
	Path    string
	Details []string
}

func (e *InvalidRecipeError) Error() string {
	if len(e.Details) == 0 {
		return fmt.Sprintf("recipe file %s is incomplete", e.Path)
	}
	return fmt.Sprintf("recipe file %s is incomplete:\n  - %s", e.Path, strings.Join(e.Details, "\n  - "))
}

// NewInvalidRecipeError creates a new structural validation error.
func NewInvalidRecipeError(path string, details ...string) *InvalidRecipeError {
	return &InvalidRecipeError{
		Path:    path,
		Details: details,
	}
}

// ConfigurationError indicates system config or setup issue.
type ConfigurationError struct {
	Cause   error
	Aspect  string
	Message string
}

func (e *ConfigurationError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("configuration error (%s): %s: %v", e.Aspect, e.Message, e.Cause)
	}
	return fmt.Sprintf("configuration error (%s): %s", e.Aspect, e.Message)
}

func (e *ConfigurationError) Unwrap() error {
	return e.Cause
}

// NewConfigurationError creates a new configuration error.
func NewConfigurationError(aspect, message string, cause error) *ConfigurationError {
	return &ConfigurationError{
		Aspect:  aspect,
		Message: message,
		Cause:   cause,
	}
}

// IsNotFound reports whether err carries a NotFoundError.
func IsNotFound(err error) bool {
	var target *NotFoundError
	return errors.As(err, &target)
}

// IsCorrupt reports whether err carries a CorruptError.
func IsCorrupt(err error) bool {
	var target *CorruptError
	return errors.As(err, &target)
}

// IsInvalidRecipe reports whether err carries an InvalidRecipeError.
func IsInvalidRecipe(err error) bool {
	var target *InvalidRecipeError
	return errors.As(err, &target)
}
