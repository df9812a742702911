package cmd

import (
	"errors"
	"fmt"
)

// Exit codes for pwconfig CLI
const (
	// ExitSuccess indicates the command completed
	ExitSuccess = 0

	// ExitDrift indicates the committed configuration differs from the generated one
	ExitDrift = 1

	// ExitConfigError indicates invalid options or a configuration that fails the schema
	ExitConfigError = 3

	// ExitUsageError indicates invalid CLI usage
	ExitUsageError = 64
)

// exitError carries the process exit code for an error returned from RunE.
type exitError struct {
	code int
	err  error
}

func (e *exitError) Error() string {
	return e.err.Error()
}

func (e *exitError) Unwrap() error {
	return e.err
}

func withExitCode(code int, err error) error {
	if err == nil {
		return nil
	}
	return &exitError{code: code, err: err}
}

func configError(format string, args ...any) error {
	return withExitCode(ExitConfigError, fmt.Errorf(format, args...))
}

func usageError(format string, args ...any) error {
	return withExitCode(ExitUsageError, fmt.Errorf(format, args...))
}

// exitCode maps an error returned by the root command to a process exit code.
// Errors cobra raises for bad flags or arguments carry no code and count as
// usage errors.
func exitCode(err error) int {
	if err == nil {
		return ExitSuccess
	}
	var ee *exitError
	if errors.As(err, &ee) {
		return ee.code
	}
	return ExitUsageError
}
