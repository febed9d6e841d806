package domain_test

import (
	"testing"

	"github.com/sebdah/goldie/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.trai.ch/ouroinstall/internal/core/domain"
)

func requirement(t *testing.T, reqs []domain.DependencyRequirement, key string) domain.DependencyRequirement {
	t.Helper()
	for _, r := range reqs {
		if r.Key == key {
			return r
		}
	}
	require.Failf(t, "requirement not found", "key %q", key)
	return domain.DependencyRequirement{}
}

func TestFormatMissingTool(t *testing.T) {
	tests := []struct {
		golden string
		key    string
	}{
		{"missing_compiler", domain.CompilerKey},
		{"missing_cmake", "cmake"},
	}

	for _, tt := range tests {
		t.Run(tt.golden, func(t *testing.T) {
			req := requirement(t, domain.RequiredTools(), tt.key)
			g := goldie.New(t)
			g.Assert(t, tt.golden, []byte(domain.FormatMissingTool(req)))
		})
	}
}

func TestFormatMissingLibraries(t *testing.T) {
	libs := domain.RequiredLibraries()
	missing := []domain.DependencyRequirement{
		requirement(t, libs, "sndfile"),
		requirement(t, libs, "icu-uc"),
	}

	g := goldie.New(t)
	g.Assert(t, "missing_libraries", []byte(domain.FormatMissingLibraries(missing)))
}

func TestMissingKeys(t *testing.T) {
	libs := domain.RequiredLibraries()
	assert.Equal(t, []string{"libpipewire-0.3", "libspa-0.2"}, domain.MissingKeys(libs[:2]))
	assert.Empty(t, domain.MissingKeys(nil))
}
