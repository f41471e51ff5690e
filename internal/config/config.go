package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/pelletier/go-toml/v2"

	"mealdeck/internal/domain"
)

const (
	DefaultBaseURL  = "https://www.themealdb.com/api/json/v1/1"
	DefaultAlphabet = "abcdefghijklmnopqrstuvwxyz"
	DefaultSeeds    = "ab"
)

// Config represents the application configuration
type Config struct {
	Version          int        `toml:"version"`
	BaseURL          string     `toml:"base_url"`
	SeedLetters      string     `toml:"seed_letters"`
	Alphabet         string     `toml:"alphabet"`
	RequestTimeout   Duration   `toml:"request_timeout"`
	FetchConcurrency int        `toml:"fetch_concurrency"`
	DefaultArea      string     `toml:"default_area"`
	DefaultSort      string     `toml:"default_sort"`
	ComposeSearch    bool       `toml:"compose_search"`
	UISettings       UISettings `toml:"ui"`
}

// UISettings represents UI-related configuration
type UISettings struct {
	ShowRatings bool `toml:"show_ratings"`
	ShowArea    bool `toml:"show_area"`
}

// Duration is a time.Duration stored as a string such as "15s"
type Duration struct {
	time.Duration
}

func (d Duration) MarshalText() ([]byte, error) {
	return []byte(d.String()), nil
}

func (d *Duration) UnmarshalText(text []byte) error {
	parsed, err := time.ParseDuration(string(text))
	if err != nil {
		return fmt.Errorf("invalid duration %q: %w", text, err)
	}
	d.Duration = parsed
	return nil
}

// Seeds returns the seed letters as single-letter strings
func (c *Config) Seeds() []string {
	return splitLetters(c.SeedLetters)
}

// Letters returns the full alphabet as single-letter strings
func (c *Config) Letters() []string {
	return splitLetters(c.Alphabet)
}

// Sort returns the configured default sort option
func (c *Config) Sort() domain.SortOption {
	return domain.SortOption(c.DefaultSort)
}

// Validate checks the values that would make loading impossible
func (c *Config) Validate() error {
	if c.BaseURL == "" {
		return fmt.Errorf("base_url must not be empty")
	}
	if len(c.Letters()) == 0 {
		return fmt.Errorf("alphabet must not be empty")
	}
	if c.FetchConcurrency < 0 {
		return fmt.Errorf("fetch_concurrency must not be negative, got %d", c.FetchConcurrency)
	}
	if c.RequestTimeout.Duration < 0 {
		return fmt.Errorf("request_timeout must not be negative")
	}
	return nil
}

func splitLetters(s string) []string {
	var letters []string
	seen := make(map[rune]bool)
	for _, r := range strings.ToLower(s) {
		if r == ' ' || r == ',' || seen[r] {
			continue
		}
		seen[r] = true
		letters = append(letters, string(r))
	}
	return letters
}

// ConfigService handles configuration management
type ConfigService interface {
	Load() (*Config, error)
	Save(config *Config) error
	LoadFromPath(path string) (*Config, error)
	SaveToPath(config *Config, path string) error
	Path() string
}

// configService is the concrete implementation
type configService struct {
	filePath string
}

// NewConfigService creates a config service rooted in the user config dir
func NewConfigService() ConfigService {
	configDir, err := os.UserConfigDir()
	if err != nil {
		configDir, err = os.UserHomeDir()
		if err != nil {
			configDir = "."
		}
		configDir = filepath.Join(configDir, ".config")
	}

	return &configService{
		filePath: filepath.Join(configDir, "mealdeck", "config.toml"),
	}
}

// NewConfigServiceAt creates a config service bound to an explicit file
func NewConfigServiceAt(path string) ConfigService {
	return &configService{filePath: path}
}

func (cs *configService) Path() string {
	return cs.filePath
}

// Load loads the configuration, falling back to defaults when the file is missing
func (cs *configService) Load() (*Config, error) {
	if _, err := os.Stat(cs.filePath); os.IsNotExist(err) {
		return DefaultConfig(), nil
	}
	return cs.LoadFromPath(cs.filePath)
}

// Save saves the configuration to the service's file
func (cs *configService) Save(config *Config) error {
	return cs.SaveToPath(config, cs.filePath)
}

// LoadFromPath loads configuration from a specific path
func (cs *configService) LoadFromPath(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	// Unset keys keep their defaults
	cfg := DefaultConfig()
	if err := toml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config %s: %w", path, err)
	}

	return cfg, nil
}

// SaveToPath saves configuration to a specific path
func (cs *configService) SaveToPath(config *Config, path string) error {
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return fmt.Errorf("failed to create config directory: %w", err)
	}

	data, err := toml.Marshal(config)
	if err != nil {
		return fmt.Errorf("failed to marshal config: %w", err)
	}

	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("failed to write config file: %w", err)
	}

	return nil
}

// DefaultConfig returns the default configuration
func DefaultConfig() *Config {
	return &Config{
		Version:          1,
		BaseURL:          DefaultBaseURL,
		SeedLetters:      DefaultSeeds,
		Alphabet:         DefaultAlphabet,
		FetchConcurrency: 1,
		DefaultSort:      string(domain.SortRelevance),
		UISettings: UISettings{
			ShowRatings: true,
			ShowArea:    true,
		},
	}
}
