package config_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.trai.ch/ouroinstall/internal/adapters/config"
	"go.trai.ch/ouroinstall/internal/core/domain"
	"go.trai.ch/ouroinstall/internal/core/ports/mocks"
	"go.uber.org/mock/gomock"
)

func writeConfig(t *testing.T, content string) string {
	t.Helper()
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, domain.ConfigFileName), []byte(content), 0o600))
	return dir
}

func newLoader(t *testing.T) *config.Loader {
	t.Helper()
	ctrl := gomock.NewController(t)
	log := mocks.NewMockLogger(ctrl)
	log.EXPECT().Debug(gomock.Any()).AnyTimes()
	return config.NewLoader(log)
}

func TestLoad_Success(t *testing.T) {
	dir := writeConfig(t, `
prefix: /opt/ouroboros
build_dir: out
variant: debug
`)

	settings, err := newLoader(t).Load(dir)
	require.NoError(t, err)

	assert.Equal(t, domain.Settings{
		Prefix:   "/opt/ouroboros",
		BuildDir: "out",
		Variant:  "debug",
	}, settings)
}

func TestLoad_MissingFile(t *testing.T) {
	settings, err := newLoader(t).Load(t.TempDir())
	require.NoError(t, err)
	assert.Equal(t, domain.Settings{}, settings)
}

func TestLoad_EmptyFile(t *testing.T) {
	settings, err := newLoader(t).Load(writeConfig(t, ""))
	require.NoError(t, err)
	assert.Equal(t, domain.Settings{}, settings)
}

func TestLoad_PartialFile(t *testing.T) {
	settings, err := newLoader(t).Load(writeConfig(t, "variant: debug-log\n"))
	require.NoError(t, err)
	assert.Equal(t, domain.Settings{Variant: "debug-log"}, settings)
}

func TestLoad_Errors(t *testing.T) {
	tests := []struct {
		name    string
		content string
		wantErr string
	}{
		{name: "malformed yaml", content: "prefix: [unclosed\n", wantErr: "failed to parse config file"},
		{name: "unknown field", content: "prefx: /opt\n", wantErr: "failed to parse config file"},
		{name: "unknown variant", content: "variant: turbo\n", wantErr: "unknown build variant"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := newLoader(t).Load(writeConfig(t, tt.content))
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.wantErr)
		})
	}
}

func TestLoad_Unreadable(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.Mkdir(filepath.Join(dir, domain.ConfigFileName), 0o750))

	_, err := newLoader(t).Load(dir)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to read config file")
}

func TestLoad_NilLogger(t *testing.T) {
	dir := writeConfig(t, "prefix: /opt/x\n")

	settings, err := config.NewLoader(nil).Load(dir)
	require.NoError(t, err)
	assert.Equal(t, "/opt/x", settings.Prefix)
}
