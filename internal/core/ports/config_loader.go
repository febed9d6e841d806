package ports

import "go.trai.ch/ouroinstall/internal/core/domain"

// ConfigLoader defines the interface for loading installer settings.
//
//go:generate mockgen -source=config_loader.go -destination=mocks/mock_config_loader.go -package=mocks
type ConfigLoader interface {
	// Load reads the settings file from dir. A missing file yields zero Settings and no error.
	Load(dir string) (domain.Settings, error)
}
