package config

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/pelletier/go-toml/v2"
)

// Config represents the application configuration
type Config struct {
	Version    int        `toml:"version"`
	UISettings UISettings `toml:"ui"`
}

// UISettings represents UI-related configuration
type UISettings struct {
	MoveConcurrency int  `toml:"move_concurrency"` // mutation calls in flight per batch
	DoubleClickMs   int  `toml:"double_click_ms"`
	MouseEnabled    bool `toml:"mouse_enabled"`
}

// DefaultConfig returns the configuration used when no file exists
func DefaultConfig() *Config {
	return &Config{
		Version: 1,
		UISettings: UISettings{
			MoveConcurrency: 3,
			DoubleClickMs:   400,
			MouseEnabled:    true,
		},
	}
}

// ConfigService handles configuration management
type ConfigService interface {
	Load() (*Config, error)
	Save(config *Config) error
	LoadFromPath(path string) (*Config, error)
	SaveToPath(config *Config, path string) error
}

// configService is the concrete implementation
type configService struct {
	filePath string
}

// NewConfigService creates a new config service
func NewConfigService() ConfigService {
	configDir, err := os.UserConfigDir()
	if err != nil {
		configDir, err = os.UserHomeDir()
		if err != nil {
			configDir = "."
		}
		configDir = filepath.Join(configDir, ".config")
	}

	troveDir := filepath.Join(configDir, "trove")
	os.MkdirAll(troveDir, 0755)

	return &configService{
		filePath: filepath.Join(troveDir, "config.toml"),
	}
}

// Load reads the config from the default path
func (s *configService) Load() (*Config, error) {
	return s.LoadFromPath(s.filePath)
}

// Save writes the config to the default path
func (s *configService) Save(config *Config) error {
	return s.SaveToPath(config, s.filePath)
}

// LoadFromPath reads a config file
func (s *configService) LoadFromPath(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading config: %w", err)
	}

	cfg := DefaultConfig()
	if err := toml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("parsing config: %w", err)
	}
	if cfg.UISettings.MoveConcurrency <= 0 {
		cfg.UISettings.MoveConcurrency = 3
	}
	return cfg, nil
}

// SaveToPath writes a config file
func (s *configService) SaveToPath(config *Config, path string) error {
	data, err := toml.Marshal(config)
	if err != nil {
		return fmt.Errorf("encoding config: %w", err)
	}
	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("writing config: %w", err)
	}
	return nil
}
