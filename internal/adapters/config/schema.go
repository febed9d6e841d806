package config

// Installfile represents the structure of the ouroinstall.yaml configuration file.
type Installfile struct {
	Prefix   string `yaml:"prefix"`
	BuildDir string `yaml:"build_dir"`
	Variant  string `yaml:"variant"`
}
