package file

import (
	"os"
	"path/filepath"

	"github.com/pelletier/go-toml/v2"
)

// Settings are the user-tunable knobs, stored as TOML in the program
// directory. Zero values fall back to the defaults below.
type Settings struct {
	// RegistryURL is where `fetch` downloads the docset registry from.
	RegistryURL string `toml:"registry_url,omitempty"`

	// DownloadsURL is the base URL for docset tarballs and indexes.
	DownloadsURL string `toml:"downloads_url,omitempty"`

	// MaxWidth caps the detected terminal width for page rendering.
	MaxWidth int `toml:"max_width,omitempty"`
}

const (
	defaultRegistryURL  = "https://devdocs.io/docs.json"
	defaultDownloadsURL = "https://downloads.devdocs.io"
	defaultMaxWidth     = 80
)

// SettingsName is the settings file inside the program directory.
const SettingsName = "config.toml"

// WithDefaults fills unset fields with their default values.
func (s Settings) WithDefaults() Settings {
	if s.RegistryURL == "" {
		s.RegistryURL = defaultRegistryURL
	}
	if s.DownloadsURL == "" {
		s.DownloadsURL = defaultDownloadsURL
	}
	if s.MaxWidth <= 0 {
		s.MaxWidth = defaultMaxWidth
	}
	return s
}

// LoadSettings reads the settings file from configDir. A missing file
// yields the defaults; a file that does not parse is an error.
func LoadSettings(configDir string) (Settings, error) {
	data, err := os.ReadFile(filepath.Join(configDir, SettingsName))
	if err != nil {
		if os.IsNotExist(err) {
			return Settings{}.WithDefaults(), nil
		}
		return Settings{}, err
	}

	var s Settings
	if err := toml.Unmarshal(data, &s); err != nil {
		return Settings{}, err
	}

	return s.WithDefaults(), nil
}

// SaveSettings persists the settings to configDir.
func SaveSettings(configDir string, s Settings) error {
	data, err := toml.Marshal(s)
	if err != nil {
		return err
	}

	// Write with restricted permissions
	return os.WriteFile(filepath.Join(configDir, SettingsName), data, 0600)
}
