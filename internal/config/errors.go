package config

import (
	"errors"
	"fmt"
	"strings"
)

// ErrConfigValidation is the category every ConfigError matches under
// errors.Is, letting callers branch on "config was bad" without caring
// which stage rejected it.
var ErrConfigValidation = errors.New("configuration validation failed")

// ConfigError reports a failed validation stage. It carries the file path
// when one is known, the individual stage errors, and the underlying cause
// (such as parser diagnostics) for callers that unwrap.
type ConfigError struct {
	Path  string
	Stage string
	Errs  []error
	cause error
}

// NewConfigError builds a ConfigError for a validation stage with the
// collected per-field errors.
func NewConfigError(path, stage string, errs []error) *ConfigError {
	return &ConfigError{Path: path, Stage: stage, Errs: errs}
}

// WrapConfigError builds a ConfigError around an underlying cause, such as
// an I/O failure or parser diagnostics.
func WrapConfigError(path, stage string, cause error) *ConfigError {
	return &ConfigError{Path: path, Stage: stage, cause: cause}
}

func (e *ConfigError) Error() string {
	var b strings.Builder
	fmt.Fprintf(&b, "configuration %s errors", e.Stage)
	if e.Path != "" {
		fmt.Fprintf(&b, " in %s", e.Path)
	}
	if e.cause != nil {
		fmt.Fprintf(&b, ": %v", e.cause)
	}
	for _, err := range e.Errs {
		fmt.Fprintf(&b, "\n  - %v", err)
	}
	return b.String()
}

func (e *ConfigError) Unwrap() error {
	return e.cause
}

func (e *ConfigError) Is(target error) bool {
	return target == ErrConfigValidation
}
