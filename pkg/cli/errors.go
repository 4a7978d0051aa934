package cli

import "fmt"

// Process exit codes. Fatal pre-run failures get their own codes so an
// external scheduler can distinguish a misconfigured environment from a
// broken source tree.
const (
	// ExitCodeOK means the run completed.
	ExitCodeOK = 0
	// ExitCodeError covers command and configuration errors, and
	// strict-mode runs that completed with per-file failures.
	ExitCodeError = 1
	// ExitCodeValidation means environment validation failed before the run.
	ExitCodeValidation = 2
	// ExitCodeEnumeration means the source tree could not be enumerated.
	ExitCodeEnumeration = 3
)

// ConfigError represents an error in configuration.
type ConfigError struct {
	Field   string
	Message string
}

func (e *ConfigError) Error() string {
	return fmt.Sprintf("config error in %s: %s", e.Field, e.Message)
}

// CommandError represents an error from a command execution.
type CommandError struct {
	Command string
	Err     error
}

func (e *CommandError) Error() string {
	return fmt.Sprintf("command %s failed: %v", e.Command, e.Err)
}

func (e *CommandError) Unwrap() error {
	return e.Err
}

// ExitError carries a process exit code alongside the underlying error.
// The root command unwraps it when deciding the process exit status.
type ExitError struct {
	Code int
	Err  error
}

func (e *ExitError) Error() string {
	if e.Err == nil {
		return fmt.Sprintf("exit status %d", e.Code)
	}
	return e.Err.Error()
}

func (e *ExitError) Unwrap() error {
	return e.Err
}

// NewConfigError creates a new ConfigError.
func NewConfigError(field, message string) *ConfigError {
	return &ConfigError{
		Field:   field,
		Message: message,
	}
}

// NewCommandError creates a new CommandError.
func NewCommandError(command string, err error) *CommandError {
	return &CommandError{
		Command: command,
		Err:     err,
	}
}

// NewExitError creates a new ExitError.
func NewExitError(code int, err error) *ExitError {
	return &ExitError{
		Code: code,
		Err:  err,
	}
}
