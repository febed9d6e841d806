package main

import (
	"bytes"
	"context"
	"errors"
	"os"
	"testing"

	"github.com/rogpeppe/go-internal/testscript"
	"github.com/stretchr/testify/assert"
	"go.trai.ch/ouroinstall/internal/app"
	"go.trai.ch/ouroinstall/internal/core/domain"
	"go.trai.ch/ouroinstall/internal/core/ports/mocks"
	"go.trai.ch/zerr"
	"go.uber.org/mock/gomock"
)

func TestMain(m *testing.M) {
	testscript.Main(m, map[string]func(){
		"ouroinstall": func() {
			os.Exit(run(context.Background(), os.Args[1:], os.Stderr, graphProvider))
		},
	})
}

type stubOrchestrator struct {
	outcome domain.CommandOutcome
}

func (s stubOrchestrator) Execute(context.Context, domain.Command, domain.BuildConfiguration) domain.CommandOutcome {
	return s.outcome
}

func newProvider(t *testing.T, outcome domain.CommandOutcome) (ComponentProvider, *mocks.MockLogger) {
	t.Helper()
	ctrl := gomock.NewController(t)

	loader := mocks.NewMockConfigLoader(ctrl)
	loader.EXPECT().Load(gomock.Any()).Return(domain.Settings{}, nil).AnyTimes()

	log := mocks.NewMockLogger(ctrl)
	log.EXPECT().Debug(gomock.Any()).AnyTimes()
	log.EXPECT().Info(gomock.Any()).AnyTimes()

	application := app.New(loader, stubOrchestrator{outcome: outcome}, log)
	return func(context.Context) (*app.Components, func(), error) {
		return &app.Components{App: application, Logger: log}, func() {}, nil
	}, log
}

// TestRun_Success verifies that run returns 0 when the command succeeds.
func TestRun_Success(t *testing.T) {
	provider, _ := newProvider(t, domain.Succeeded("cleaned"))

	exitCode := run(context.Background(), []string{"clean", "--source", t.TempDir()}, new(bytes.Buffer), provider)
	assert.Equal(t, 0, exitCode)
}

// TestRun_InitializationError verifies that run returns 1 when component initialization fails.
func TestRun_InitializationError(t *testing.T) {
	provider := func(context.Context) (*app.Components, func(), error) {
		return nil, nil, errors.New("init failed")
	}

	stderr := new(bytes.Buffer)
	exitCode := run(context.Background(), []string{"build"}, stderr, provider)

	assert.Equal(t, 1, exitCode)
	assert.Contains(t, stderr.String(), "Error: init failed")
}

// TestRun_CommandFailure verifies that an already reported failure is not logged twice.
func TestRun_CommandFailure(t *testing.T) {
	provider, _ := newProvider(t, domain.Failed(zerr.Wrap(domain.ErrBuildFailed, "cmake exited with status 2")))

	exitCode := run(context.Background(), []string{"build", "--source", t.TempDir()}, new(bytes.Buffer), provider)
	assert.Equal(t, 1, exitCode)
}

// TestRun_Interrupted verifies the distinct interrupt exit status.
func TestRun_Interrupted(t *testing.T) {
	provider, _ := newProvider(t, domain.Interrupted())

	exitCode := run(context.Background(), []string{"install", "--source", t.TempDir()}, new(bytes.Buffer), provider)
	assert.Equal(t, 130, exitCode)
}

// TestRun_UsageError verifies that CLI errors are logged and fail.
func TestRun_UsageError(t *testing.T) {
	provider, log := newProvider(t, domain.Succeeded(""))
	log.EXPECT().Error(gomock.Any()).Times(1)

	exitCode := run(context.Background(), []string{"frobnicate"}, new(bytes.Buffer), provider)
	assert.Equal(t, 1, exitCode)
}

// TestRun_CancelledContextWinsOverFailure verifies that a failure reported after the
// operator interrupt still exits with the interrupt status and is not logged.
func TestRun_CancelledContextWinsOverFailure(t *testing.T) {
	provider, _ := newProvider(t, domain.Failed(zerr.Wrap(domain.ErrBuildFailed, "cmake exited with status 2")))

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	exitCode := run(ctx, []string{"build", "--source", t.TempDir()}, new(bytes.Buffer), provider)
	assert.Equal(t, 130, exitCode)
}
