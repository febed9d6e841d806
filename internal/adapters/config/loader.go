// Package config provides the configuration loader for ouroinstall.
package config

import (
	"bytes"
	"errors"
	"io"
	iofs "io/fs"
	"os"
	"path/filepath"
	"strings"

	"go.trai.ch/ouroinstall/internal/core/domain"
	"go.trai.ch/ouroinstall/internal/core/ports"
	"go.trai.ch/zerr"
	"gopkg.in/yaml.v3"
)

var _ ports.ConfigLoader = (*Loader)(nil)

// Loader implements ports.ConfigLoader using a YAML file.
type Loader struct {
	Logger ports.Logger
}

// NewLoader creates a new Loader with the given logger.
func NewLoader(logger ports.Logger) *Loader {
	return &Loader{Logger: logger}
}

// Load reads domain.ConfigFileName from dir. A missing file yields zero Settings.
func (l *Loader) Load(dir string) (domain.Settings, error) {
	path := filepath.Join(dir, domain.ConfigFileName)

	data, err := os.ReadFile(path) //nolint:gosec // path is built from the source directory
	if err != nil {
		if errors.Is(err, iofs.ErrNotExist) {
			return domain.Settings{}, nil
		}
		return domain.Settings{}, zerr.With(zerr.Wrap(err, domain.ErrConfigReadFailed.Error()), "path", path)
	}

	var file Installfile
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err := dec.Decode(&file); err != nil && !errors.Is(err, io.EOF) {
		return domain.Settings{}, zerr.With(zerr.Wrap(err, domain.ErrConfigParseFailed.Error()), "path", path)
	}

	if _, err := domain.ParseVariant(file.Variant); err != nil {
		return domain.Settings{}, zerr.With(zerr.Wrap(err, domain.ErrConfigParseFailed.Error()), "path", path)
	}

	if l.Logger != nil {
		l.Logger.Debug("loaded " + path)
	}

	return domain.Settings{
		Prefix:   strings.TrimSpace(file.Prefix),
		BuildDir: strings.TrimSpace(file.BuildDir),
		Variant:  strings.TrimSpace(file.Variant),
	}, nil
}
