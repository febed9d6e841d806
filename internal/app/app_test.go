package app_test

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.trai.ch/ouroinstall/internal/app"
	"go.trai.ch/ouroinstall/internal/core/domain"
	"go.trai.ch/ouroinstall/internal/core/ports/mocks"
	"go.trai.ch/zerr"
	"go.uber.org/mock/gomock"
)

type fakeOrchestrator struct {
	outcome domain.CommandOutcome
	calls   int
	cmd     domain.Command
	cfg     domain.BuildConfiguration
}

func (f *fakeOrchestrator) Execute(_ context.Context, cmd domain.Command, cfg domain.BuildConfiguration) domain.CommandOutcome {
	f.calls++
	f.cmd = cmd
	f.cfg = cfg
	return f.outcome
}

func newApp(t *testing.T, settings domain.Settings, orch *fakeOrchestrator) *app.App {
	t.Helper()
	ctrl := gomock.NewController(t)

	loader := mocks.NewMockConfigLoader(ctrl)
	loader.EXPECT().Load(gomock.Any()).Return(settings, nil).AnyTimes()

	log := mocks.NewMockLogger(ctrl)
	log.EXPECT().Debug(gomock.Any()).AnyTimes()
	log.EXPECT().Info(gomock.Any()).AnyTimes()

	return app.New(loader, orch, log).WithCPUCount(func() int { return 6 })
}

func TestApp_Run_Success(t *testing.T) {
	orch := &fakeOrchestrator{outcome: domain.Succeeded("build complete")}
	a := newApp(t, domain.Settings{}, orch)

	src := t.TempDir()
	err := a.Run(context.Background(), domain.CommandBuild, app.Options{Source: src})
	require.NoError(t, err)

	assert.Equal(t, 1, orch.calls)
	assert.Equal(t, domain.CommandBuild, orch.cmd)
	assert.Equal(t, src, orch.cfg.SourceDir())
	assert.Equal(t, filepath.Join(src, "build"), orch.cfg.BuildDir())
	assert.Equal(t, domain.DefaultInstallPrefix, orch.cfg.InstallPrefix())
	assert.Equal(t, domain.VariantRelease, orch.cfg.Variant())
	assert.Equal(t, 6, orch.cfg.JobCount())
}

func TestApp_Run_Failure(t *testing.T) {
	cause := zerr.Wrap(domain.ErrBuildFailed, "cmake exited with status 2")
	orch := &fakeOrchestrator{outcome: domain.Failed(cause)}
	a := newApp(t, domain.Settings{}, orch)

	err := a.Run(context.Background(), domain.CommandInstall, app.Options{Source: t.TempDir()})
	require.Error(t, err)
	assert.True(t, errors.Is(err, domain.ErrCommandFailed))
	assert.True(t, errors.Is(err, domain.ErrBuildFailed))
	assert.False(t, errors.Is(err, domain.ErrInterrupted))
}

func TestApp_Run_Interrupted(t *testing.T) {
	orch := &fakeOrchestrator{outcome: domain.Interrupted()}
	a := newApp(t, domain.Settings{}, orch)

	err := a.Run(context.Background(), domain.CommandBuild, app.Options{Source: t.TempDir()})
	require.Error(t, err)
	assert.True(t, errors.Is(err, domain.ErrInterrupted))
	assert.False(t, errors.Is(err, domain.ErrCommandFailed))
}

func TestApp_Configure_Precedence(t *testing.T) {
	src := t.TempDir()

	tests := []struct {
		name       string
		settings   domain.Settings
		opts       app.Options
		wantPrefix string
		wantBuild  string
		wantVar    domain.Variant
	}{
		{
			name:       "defaults",
			opts:       app.Options{Source: src},
			wantPrefix: "/usr/local",
			wantBuild:  filepath.Join(src, "build"),
			wantVar:    domain.VariantRelease,
		},
		{
			name:       "file values",
			settings:   domain.Settings{Prefix: "/opt/file", BuildDir: "out", Variant: "debug"},
			opts:       app.Options{Source: src},
			wantPrefix: "/opt/file",
			wantBuild:  filepath.Join(src, "out"),
			wantVar:    domain.VariantDebug,
		},
		{
			name:       "flags override file",
			settings:   domain.Settings{Prefix: "/opt/file", Variant: "debug"},
			opts:       app.Options{Source: src, Prefix: "/opt/flag", DebugLog: true},
			wantPrefix: "/opt/flag",
			wantBuild:  filepath.Join(src, "build"),
			wantVar:    domain.VariantDebugWithLogging,
		},
		{
			name:       "debug flag over release file",
			settings:   domain.Settings{Variant: "release"},
			opts:       app.Options{Source: src, Debug: true},
			wantPrefix: "/usr/local",
			wantBuild:  filepath.Join(src, "build"),
			wantVar:    domain.VariantDebug,
		},
		{
			name:       "debug-log wins over debug",
			opts:       app.Options{Source: src, Debug: true, DebugLog: true},
			wantPrefix: "/usr/local",
			wantBuild:  filepath.Join(src, "build"),
			wantVar:    domain.VariantDebugWithLogging,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			a := newApp(t, tt.settings, &fakeOrchestrator{})

			cfg, err := a.Configure(tt.opts)
			require.NoError(t, err)
			assert.Equal(t, tt.wantPrefix, cfg.InstallPrefix())
			assert.Equal(t, tt.wantBuild, cfg.BuildDir())
			assert.Equal(t, tt.wantVar, cfg.Variant())
		})
	}
}

func TestApp_Configure_RelativePrefixIsAbsolute(t *testing.T) {
	wd, err := os.Getwd()
	require.NoError(t, err)

	a := newApp(t, domain.Settings{}, &fakeOrchestrator{})
	cfg, err := a.Configure(app.Options{Source: t.TempDir(), Prefix: "stage"})
	require.NoError(t, err)
	assert.Equal(t, filepath.Join(wd, "stage"), cfg.InstallPrefix())
}

func TestApp_Configure_InvalidVariant(t *testing.T) {
	orch := &fakeOrchestrator{}
	a := newApp(t, domain.Settings{Variant: "turbo"}, orch)

	err := a.Run(context.Background(), domain.CommandBuild, app.Options{Source: t.TempDir()})
	require.Error(t, err)
	assert.True(t, errors.Is(err, domain.ErrUnknownVariant))
	assert.Equal(t, 0, orch.calls, "nothing runs before the configuration is resolved")
}

func TestApp_Configure_LoaderError(t *testing.T) {
	ctrl := gomock.NewController(t)
	loader := mocks.NewMockConfigLoader(ctrl)
	loader.EXPECT().Load(gomock.Any()).Return(domain.Settings{}, domain.ErrConfigParseFailed)

	orch := &fakeOrchestrator{}
	a := app.New(loader, orch, mocks.NewMockLogger(ctrl))

	err := a.Run(context.Background(), domain.CommandBuild, app.Options{})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to load configuration")
	assert.Equal(t, 0, orch.calls)
}
