package probe_test

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"go.trai.ch/ouroinstall/internal/adapters/probe"
	"go.trai.ch/ouroinstall/internal/core/domain"
	"go.trai.ch/ouroinstall/internal/core/ports/mocks"
	"go.uber.org/mock/gomock"
)

func fakePath(available ...string) func(string) (string, error) {
	set := make(map[string]bool, len(available))
	for _, name := range available {
		set[name] = true
	}
	return func(name string) (string, error) {
		if set[name] {
			return "/usr/bin/" + name, nil
		}
		return "", errors.New("executable file not found in $PATH")
	}
}

func TestProbe_IsToolAvailable(t *testing.T) {
	ctrl := gomock.NewController(t)
	p := probe.New(mocks.NewMockProcessRunner(ctrl)).WithLookPath(fakePath("cmake"))

	assert.True(t, p.IsToolAvailable("cmake"))
	assert.False(t, p.IsToolAvailable("pkg-config"))
}

func TestProbe_IsCompilerAvailable(t *testing.T) {
	tests := []struct {
		name      string
		available []string
		want      bool
	}{
		{name: "gcc only", available: []string{"g++"}, want: true},
		{name: "clang only", available: []string{"clang++"}, want: true},
		{name: "both", available: []string{"g++", "clang++"}, want: true},
		{name: "neither", available: []string{"cc", "c++"}, want: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			p := probe.New(mocks.NewMockProcessRunner(ctrl)).WithLookPath(fakePath(tt.available...))
			assert.Equal(t, tt.want, p.IsCompilerAvailable())
		})
	}
}

func TestProbe_IsLibraryAvailable(t *testing.T) {
	want := domain.Invocation{
		Args: []string{"pkg-config", "--exists", "libmpg123"},
		Mode: domain.OutputCaptured,
	}

	t.Run("found", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		runner := mocks.NewMockProcessRunner(ctrl)
		runner.EXPECT().Run(gomock.Any(), want).Return(domain.ProcessResult{ExitCode: 0}, nil)

		assert.True(t, probe.New(runner).IsLibraryAvailable(context.Background(), "libmpg123"))
	})

	t.Run("missing", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		runner := mocks.NewMockProcessRunner(ctrl)
		runner.EXPECT().Run(gomock.Any(), want).Return(domain.ProcessResult{ExitCode: 1}, nil)

		assert.False(t, probe.New(runner).IsLibraryAvailable(context.Background(), "libmpg123"))
	})

	t.Run("pkg-config cannot start", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		runner := mocks.NewMockProcessRunner(ctrl)
		runner.EXPECT().Run(gomock.Any(), want).
			Return(domain.ProcessResult{ExitCode: -1}, domain.ErrProcessStartFailed)

		assert.False(t, probe.New(runner).IsLibraryAvailable(context.Background(), "libmpg123"))
	})
}
