package domain_test

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"go.trai.ch/ouroinstall/internal/core/domain"
)

func TestCommandOutcome_ExitCode(t *testing.T) {
	cause := errors.New("boom")

	tests := []struct {
		name    string
		outcome domain.CommandOutcome
		code    int
		message string
	}{
		{"success", domain.Succeeded("cleaned"), 0, "cleaned"},
		{"failure", domain.Failed(cause), 1, "boom"},
		{"interrupted", domain.Interrupted(), 130, "interrupted"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.code, tt.outcome.ExitCode())
			assert.Equal(t, tt.message, tt.outcome.Message)
		})
	}
}

func TestFailed_KeepsCause(t *testing.T) {
	o := domain.Failed(domain.ErrBuildFailed)
	assert.False(t, o.Success)
	assert.ErrorIs(t, o.Err, domain.ErrExternalProcessFailed)

	assert.Empty(t, domain.Failed(nil).Message)
}

func TestInterrupted_IsError(t *testing.T) {
	o := domain.Interrupted()
	assert.True(t, o.Interrupted)
	assert.ErrorIs(t, o.Err, domain.ErrInterrupted)
}
