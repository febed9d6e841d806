// Package ports defines the core interfaces for the application.
package ports

import (
	"context"

	"go.trai.ch/ouroinstall/internal/core/domain"
)

// ProcessRunner executes external commands.
//
//go:generate go run go.uber.org/mock/mockgen -source=runner.go -destination=mocks/mock_runner.go -package=mocks
type ProcessRunner interface {
	// Run executes inv and blocks until the child exits.
	//
	// A non-zero exit status is reported through ProcessResult.ExitCode with a nil error.
	// An error is returned only when the process could not be started, or when ctx was
	// cancelled while it ran (in which case the error wraps domain.ErrInterrupted).
	Run(ctx context.Context, inv domain.Invocation) (domain.ProcessResult, error)
}
