package model

import (
	"errors"
	"fmt"
)

var (
	// ErrInvalidConfig is matched by every ConfigError.
	ErrInvalidConfig = errors.New("invalid configuration")
	// ErrFilesystemAccess is matched by every FilesystemAccessError.
	ErrFilesystemAccess = errors.New("filesystem access failed")
)

// ConfigError reports malformed or inconsistent configuration.
type ConfigError struct {
	Field string
	Value string
	Err   error
}

func (e *ConfigError) Error() string {
	if e.Value == "" {
		return fmt.Sprintf("invalid %s: %v", e.Field, e.Err)
	}

	return fmt.Sprintf("invalid %s %q: %v", e.Field, e.Value, e.Err)
}

func (e *ConfigError) Unwrap() error {
	return e.Err
}

// Is makes errors.Is(err, ErrInvalidConfig) hold for any ConfigError.
func (e *ConfigError) Is(target error) bool {
	return target == ErrInvalidConfig
}

// FilesystemAccessError reports a directory that exists but cannot be read.
type FilesystemAccessError struct {
	Path Path
	Err  error
}

func (e *FilesystemAccessError) Error() string {
	return fmt.Sprintf("cannot read %s: %v", e.Path, e.Err)
}

func (e *FilesystemAccessError) Unwrap() error {
	return e.Err
}

// Is makes errors.Is(err, ErrFilesystemAccess) hold for any FilesystemAccessError.
func (e *FilesystemAccessError) Is(target error) bool {
	return target == ErrFilesystemAccess
}
