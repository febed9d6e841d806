package domain

// Settings holds the values read from ConfigFileName. Empty fields are unset.
type Settings struct {
	Prefix   string
	BuildDir string
	Variant  string
}
