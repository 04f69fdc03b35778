package config

import (
	"fmt"
	"os"
	"path/filepath"
	"sort"

	"github.com/BurntSushi/toml"
	"github.com/joho/godotenv"
)

// ConfigEnv overrides the config file location when set.
const ConfigEnv = "CARDDECK_CONFIG"

// Config represents the application configuration
type Config struct {
	DefaultPreset string             `toml:"default_preset"`
	Presets       map[string]*Preset `toml:"presets"`
}

// LoadEnv loads variables from a .env file in the working directory, if
// there is one. Variables already set in the environment are kept.
func LoadEnv() error {
	err := godotenv.Load()
	if err != nil && !os.IsNotExist(err) {
		return fmt.Errorf("error loading .env file: %v", err)
	}
	return nil
}

// GetXDGConfigHome returns XDG_CONFIG_HOME or default path
func GetXDGConfigHome() string {
	if xdgConfig := os.Getenv("XDG_CONFIG_HOME"); xdgConfig != "" {
		return xdgConfig
	}
	homeDir, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(homeDir, ".config")
}

// GetConfigFilePath returns the path to the config file
func GetConfigFilePath() string {
	if path := os.Getenv(ConfigEnv); path != "" {
		return path
	}
	return filepath.Join(GetXDGConfigHome(), "carddeck", "config.toml")
}

// DefaultConfig returns the config written on first use.
func DefaultConfig() *Config {
	jokers := 2
	return &Config{
		DefaultPreset: "standard",
		Presets: map[string]*Preset{
			"standard": {},
			"jokers":   {Jokers: &jokers},
			"piquet":   {StartingRank: "seven"},
			"durak":    {StartingRank: "six"},
			"double":   {Decks: 1, Shuffle: true},
		},
	}
}

// LoadConfig loads the config file
func LoadConfig() (*Config, error) {
	configPath := GetConfigFilePath()

	// Create default config if it doesn't exist
	if _, err := os.Stat(configPath); os.IsNotExist(err) {
		config := DefaultConfig()
		if err := SaveConfig(config); err != nil {
			return nil, err
		}
		return config, nil
	}

	var config Config
	if _, err := toml.DecodeFile(configPath, &config); err != nil {
		return nil, fmt.Errorf("error decoding config file: %v", err)
	}
	if config.Presets == nil {
		config.Presets = map[string]*Preset{}
	}

	return &config, nil
}

// SaveConfig writes config to the config file, creating its directory.
func SaveConfig(config *Config) error {
	configPath := GetConfigFilePath()

	if err := os.MkdirAll(filepath.Dir(configPath), 0755); err != nil {
		return fmt.Errorf("error creating config directory: %v", err)
	}

	file, err := os.Create(configPath)
	if err != nil {
		return fmt.Errorf("error creating config file: %v", err)
	}
	defer file.Close()

	encoder := toml.NewEncoder(file)
	if err := encoder.Encode(config); err != nil {
		return fmt.Errorf("error encoding config: %v", err)
	}

	return nil
}

// PresetNames returns the preset names in sorted order.
func (c *Config) PresetNames() []string {
	names := make([]string, 0, len(c.Presets))
	for name := range c.Presets {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// GetPreset returns a preset by name, or the default preset when name is empty.
func GetPreset(name string) (*Preset, error) {
	config, err := LoadConfig()
	if err != nil {
		return nil, err
	}

	if name == "" {
		name = config.DefaultPreset
	}

	preset, ok := config.Presets[name]
	if !ok {
		return nil, fmt.Errorf("preset not found: %s", name)
	}
	if preset == nil {
		preset = &Preset{}
	}

	return preset, nil
}

// GetDefaultPreset returns the default preset name from config
func GetDefaultPreset() (string, error) {
	config, err := LoadConfig()
	if err != nil {
		return "", err
	}

	return config.DefaultPreset, nil
}

// SetDefaultPreset sets the default preset in the config
func SetDefaultPreset(name string) error {
	config, err := LoadConfig()
	if err != nil {
		return err
	}

	if _, ok := config.Presets[name]; !ok {
		return fmt.Errorf("preset not found: %s", name)
	}

	config.DefaultPreset = name

	return SaveConfig(config)
}
