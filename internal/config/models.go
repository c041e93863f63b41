package config

// Output formats understood by the CLI
const (
	FormatDetailed = "detailed"
	FormatCompact  = "compact"
	FormatJSON     = "json"
	FormatYAML     = "yaml"
)

// Formats lists every valid output format
var Formats = []string{FormatDetailed, FormatCompact, FormatJSON, FormatYAML}

// Settings represents the entire user preferences file.
type Settings struct {
	Version     int          `yaml:"version"`
	Preferences *Preferences `yaml:"preferences,omitempty"`
}

// Preferences controls how the CLI presents registered networks.
// Note: credentials are NEVER stored here - networks are compiled in.
type Preferences struct {
	DefaultFormat string `yaml:"default_format"` // One of Formats
	ShowPasswords bool   `yaml:"show_passwords"` // Print passwords instead of masking them
}

// NewSettings creates Settings with default values.
func NewSettings() *Settings {
	return &Settings{
		Version:     1,
		Preferences: defaultPreferences(),
	}
}

func defaultPreferences() *Preferences {
	return &Preferences{
		DefaultFormat: FormatDetailed,
		ShowPasswords: false,
	}
}

// ValidFormat reports whether format is one of Formats.
func ValidFormat(format string) bool {
	for _, f := range Formats {
		if f == format {
			return true
		}
	}
	return false
}
