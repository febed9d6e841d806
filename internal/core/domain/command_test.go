package domain_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.trai.ch/ouroinstall/internal/core/domain"
	"go.trai.ch/zerr"
)

func TestParseCommand(t *testing.T) {
	tests := []struct {
		in   string
		want domain.Command
	}{
		{"", domain.CommandInstall},
		{"install", domain.CommandInstall},
		{"build", domain.CommandBuild},
		{"clean", domain.CommandClean},
		{"uninstall", domain.CommandUninstall},
		{"test", domain.CommandTest},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, err := domain.ParseCommand(tt.in)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestParseCommand_NamesAreExact(t *testing.T) {
	for _, in := range []string{"BUILD", "Install", " test", "clean "} {
		t.Run(in, func(t *testing.T) {
			_, err := domain.ParseCommand(in)
			require.ErrorIs(t, err, domain.ErrUnknownCommand)
		})
	}
}

func TestParseCommand_Unknown(t *testing.T) {
	_, err := domain.ParseCommand("frobnicate")
	require.ErrorIs(t, err, domain.ErrUnknownCommand)

	var zErr *zerr.Error
	require.ErrorAs(t, err, &zErr)
	assert.Equal(t, "frobnicate", zErr.Metadata()["command"])
}

func TestCommand_NamesRoundTrip(t *testing.T) {
	for _, name := range domain.CommandNames() {
		cmd, err := domain.ParseCommand(name)
		require.NoError(t, err)
		assert.Equal(t, name, cmd.String())
	}
	assert.Equal(t, "unknown", domain.Command(99).String())
}

func TestCommand_RequiresToolchain(t *testing.T) {
	assert.True(t, domain.CommandInstall.RequiresToolchain())
	assert.True(t, domain.CommandBuild.RequiresToolchain())
	assert.True(t, domain.CommandTest.RequiresToolchain())
	assert.False(t, domain.CommandClean.RequiresToolchain())
	assert.False(t, domain.CommandUninstall.RequiresToolchain())
}

func TestState_String(t *testing.T) {
	assert.Equal(t, "idle", domain.StateIdle.String())
	assert.Equal(t, "configuring", domain.StateConfiguring.String())
	assert.Equal(t, "done", domain.StateDone.String())
	assert.Equal(t, "unknown", domain.State(-1).String())
	assert.Equal(t, "unknown", domain.State(42).String())
}
