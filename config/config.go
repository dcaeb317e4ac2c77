package config

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/BurntSushi/toml"
	"gopkg.in/yaml.v3"

	"github.com/insomnimus/chatmark/render"
)

const (
	AppName        = "chatmark"
	ConfigFileName = "config.yaml"
)

var ErrUnsupportedConfig = errors.New("unsupported config file type")

// Config represents the application configuration
type Config struct {
	// Format is the default output format.
	Format string `yaml:"format" toml:"format" json:"format"`
	// Width wraps terminal output; 0 disables wrapping.
	Width int `yaml:"width" toml:"width" json:"width"`
	// Style is the glamour style name.
	Style string `yaml:"style" toml:"style" json:"style"`
	// Standalone wraps HTML output in a full document.
	Standalone bool   `yaml:"standalone" toml:"standalone" json:"standalone"`
	Title      string `yaml:"title" toml:"title" json:"title"`
	// NormalizeNewlines folds CRLF and CR line endings into LF before
	// formatting.
	NormalizeNewlines bool `yaml:"normalize_newlines" toml:"normalize_newlines" json:"normalize_newlines"`
	// Concurrency bounds how many files batch renders at once.
	Concurrency int          `yaml:"concurrency" toml:"concurrency" json:"concurrency"`
	Theme       render.Theme `yaml:"theme" toml:"theme" json:"theme"`
}

// DefaultConfig returns the default configuration
func DefaultConfig() *Config {
	return &Config{
		Format:            "html",
		Width:             80,
		Style:             "auto",
		NormalizeNewlines: true,
		Concurrency:       4,
		Theme: render.Theme{
			CodeForeground: "#E0E0E0",
			CodeBackground: "#3A3A3A",
			Bullet:         "#7D56F4",
		},
	}
}

// GetConfigDir returns the path to the application's configuration directory
func GetConfigDir() (string, error) {
	dir, err := os.UserConfigDir()
	if err != nil {
		return "", fmt.Errorf("failed to get config home directory: %w", err)
	}
	return filepath.Join(dir, AppName), nil
}

// Load reads the config at path. An empty path looks for the default
// config file and falls back to DefaultConfig when there is none.
// Fields missing from the file keep their default values.
func Load(path string) (*Config, error) {
	if path == "" {
		dir, err := GetConfigDir()
		if err != nil {
			return DefaultConfig(), nil
		}
		path = filepath.Join(dir, ConfigFileName)
		if _, err := os.Stat(path); err != nil {
			return DefaultConfig(), nil
		}
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}
	cfg, err := Parse(data, filepath.Ext(path))
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return cfg, nil
}

// Parse decodes data as yaml, toml or json depending on ext, on top of
// the defaults.
func Parse(data []byte, ext string) (*Config, error) {
	cfg := DefaultConfig()
	var err error
	switch strings.ToLower(ext) {
	case ".yaml", ".yml":
		err = yaml.Unmarshal(data, cfg)
	case ".toml":
		err = toml.Unmarshal(data, cfg)
	case ".json":
		err = json.Unmarshal(data, cfg)
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnsupportedConfig, ext)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to parse config file: %w", err)
	}
	cfg.fill()
	return cfg, nil
}

// fill resets nonsensical values to their defaults.
func (c *Config) fill() {
	defaults := DefaultConfig()
	if c.Format == "" {
		c.Format = defaults.Format
	}
	if c.Width < 0 {
		c.Width = 0
	}
	if c.Style == "" {
		c.Style = defaults.Style
	}
	if c.Concurrency <= 0 {
		c.Concurrency = defaults.Concurrency
	}
}

// RenderOptions maps the config onto renderer options.
func (c *Config) RenderOptions() render.Options {
	return render.Options{
		Width:      c.Width,
		Style:      c.Style,
		Standalone: c.Standalone,
		Title:      c.Title,
		Theme:      c.Theme,
	}
}

// Save writes the config to path, creating parent directories. The
// encoding follows the extension the same way Load does.
func Save(c *Config, path string) error {
	var (
		data []byte
		err  error
	)
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		data, err = yaml.Marshal(c)
	case ".toml":
		var buf bytes.Buffer
		err = toml.NewEncoder(&buf).Encode(c)
		data = buf.Bytes()
	case ".json":
		data, err = json.MarshalIndent(c, "", "  ")
	default:
		return fmt.Errorf("%w: %q", ErrUnsupportedConfig, filepath.Ext(path))
	}
	if err != nil {
		return fmt.Errorf("failed to marshal config: %w", err)
	}
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return fmt.Errorf("failed to create config directory: %w", err)
	}
	return os.WriteFile(path, data, 0644)
}
