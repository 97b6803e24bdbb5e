// Package errors provides the typed errors surfaced by the launcher.
package errors

import (
	stderrors "errors"
	"fmt"
	"strings"
)

// UnsupportedPlatformError is returned when the host OS has no entry in the flag table
type UnsupportedPlatformError struct {
	Platform  string   `json:"platform"`
	Supported []string `json:"supported,omitempty"`
}

func (e *UnsupportedPlatformError) Error() string {
	if len(e.Supported) == 0 {
		return fmt.Sprintf("unsupported platform '%s'", e.Platform)
	}
	return fmt.Sprintf("unsupported platform '%s' (supported: %s)", e.Platform, strings.Join(e.Supported, ", "))
}

// BuildFailedError reports a non-zero build exit when strict build checking is on
type BuildFailedError struct {
	Command  string `json:"command"`
	ExitCode int    `json:"exit_code"`
}

func (e *BuildFailedError) Error() string {
	return fmt.Sprintf("build step '%s' failed with exit code %d", e.Command, e.ExitCode)
}

// SpawnError represents a child process that could not be started at all
type SpawnError struct {
	Step    string `json:"step"`
	Command string `json:"command"`
	Cause   error  `json:"cause,omitempty"`
}

func (e *SpawnError) Error() string {
	return fmt.Sprintf("failed to start %s (%s): %v", e.Step, e.Command, e.Cause)
}

func (e *SpawnError) Unwrap() error {
	return e.Cause
}

// ConfigError represents an invalid configuration value
type ConfigError struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}

func (e *ConfigError) Error() string {
	return fmt.Sprintf("invalid config field '%s': %s", e.Field, e.Message)
}

// NewUnsupportedPlatformError creates a new UnsupportedPlatformError
func NewUnsupportedPlatformError(platform string, supported []string) *UnsupportedPlatformError {
	return &UnsupportedPlatformError{
		Platform:  platform,
		Supported: append([]string(nil), supported...),
	}
}

// NewBuildFailedError creates a new BuildFailedError
func NewBuildFailedError(command string, exitCode int) *BuildFailedError {
	return &BuildFailedError{Command: command, ExitCode: exitCode}
}

// NewSpawnError creates a new SpawnError for the given step
func NewSpawnError(step, command string, cause error) *SpawnError {
	return &SpawnError{Step: step, Command: command, Cause: cause}
}

// NewConfigError creates a new ConfigError
func NewConfigError(field, message string) *ConfigError {
	return &ConfigError{Field: field, Message: message}
}

func IsUnsupportedPlatform(err error) bool {
	var target *UnsupportedPlatformError
	return stderrors.As(err, &target)
}

func IsBuildFailed(err error) bool {
	var target *BuildFailedError
	return stderrors.As(err, &target)
}

func IsSpawnError(err error) bool {
	var target *SpawnError
	return stderrors.As(err, &target)
}

func IsConfigError(err error) bool {
	var target *ConfigError
	return stderrors.As(err, &target)
}

// ExitStatusError carries a non-zero exit code that has already been reported
// by the child processes themselves and needs no further message.
type ExitStatusError struct {
	Code int `json:"code"`
}

func (e *ExitStatusError) Error() string {
	return fmt.Sprintf("exit status %d", e.Code)
}

// NewExitStatusError creates a new ExitStatusError
func NewExitStatusError(code int) *ExitStatusError {
	return &ExitStatusError{Code: code}
}
