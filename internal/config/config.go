// Package config loads codestudio settings from defaults, the user config
// file, CODESTUDIO_* environment variables and explicitly-set CLI flags.
package config

import (
	"net/url"
	"os"
	"path/filepath"
	"strings"
	"sync"
	"time"

	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/confmap"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/providers/posflag"
	"github.com/knadh/koanf/v2"
	"github.com/spf13/pflag"

	"github.com/abapcodestudio/codestudio/internal/errors"
)

const (
	// DefaultAPIURL is used when neither the config file nor the environment names a backend.
	DefaultAPIURL = "http://localhost:8000"
	// DefaultReconnectDelay is the fixed wait between channel reconnect attempts.
	DefaultReconnectDelay = 3 * time.Second
	// DefaultTheme matches the UI's default theme name.
	DefaultTheme = "dark-purple"
	// DefaultStartPanel is the panel shown when the TUI starts.
	DefaultStartPanel = "chat"
	// DefaultLogPath is where the debug log is written.
	DefaultLogPath = "/tmp/codestudio-debug.log"

	envPrefix = "CODESTUDIO_"
)

// Config holds the application configuration
type Config struct {
	APIURL         string        `koanf:"api_url"`
	ReconnectDelay time.Duration `koanf:"reconnect_delay"`
	RequestTimeout time.Duration `koanf:"request_timeout"` // zero means transport default
	Theme          string        `koanf:"theme"`
	Notifications  bool          `koanf:"notifications"`
	Debug          bool          `koanf:"debug"`
	LogPath        string        `koanf:"log_path"`
	StartPanel     string        `koanf:"start_panel"`

	mu       sync.RWMutex
	filePath string
}

// Dir returns the per-user codestudio directory (~/.codestudio).
func Dir() (string, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(home, ".codestudio"), nil
}

// DefaultPath returns the path of the user config file.
func DefaultPath() (string, error) {
	dir, err := Dir()
	if err != nil {
		return "", err
	}
	return filepath.Join(dir, "config.yaml"), nil
}

func defaults() map[string]any {
	return map[string]any{
		"api_url":         DefaultAPIURL,
		"reconnect_delay": DefaultReconnectDelay.String(),
		"request_timeout": "0s",
		"theme":           DefaultTheme,
		"notifications":   false,
		"debug":           false,
		"log_path":        DefaultLogPath,
		"start_panel":     DefaultStartPanel,
	}
}

// Load reads configuration with precedence flags > env > file > defaults.
// An empty path means the default file location; a missing file is not an
// error. Only flags that were explicitly set override lower layers, and flag
// names are mapped from kebab-case to the snake_case config keys.
func Load(path string, flags *pflag.FlagSet) (*Config, error) {
	k := koanf.New(".")

	if err := k.Load(confmap.Provider(defaults(), "."), nil); err != nil {
		return nil, errors.ConfigLoadFailed("defaults", err)
	}

	if path == "" {
		p, err := DefaultPath()
		if err == nil {
			path = p
		}
	}
	if path != "" {
		if _, err := os.Stat(path); err == nil {
			if err := k.Load(file.Provider(path), yaml.Parser()); err != nil {
				return nil, errors.ConfigLoadFailed(path, err)
			}
		}
	}

	// CODESTUDIO_API_URL -> api_url
	if err := k.Load(env.Provider(envPrefix, ".", func(s string) string {
		return strings.ToLower(strings.TrimPrefix(s, envPrefix))
	}), nil); err != nil {
		return nil, errors.ConfigLoadFailed("environment", err)
	}

	if flags != nil {
		if err := k.Load(posflag.ProviderWithFlag(flags, ".", k, func(f *pflag.Flag) (string, any) {
			if !f.Changed {
				return "", nil
			}
			key := strings.ReplaceAll(f.Name, "-", "_")
			if _, known := defaults()[key]; !known {
				return "", nil
			}
			return key, posflag.FlagVal(flags, f)
		}), nil); err != nil {
			return nil, errors.ConfigLoadFailed("flags", err)
		}
	}

	cfg := &Config{filePath: path}
	if err := k.Unmarshal("", cfg); err != nil {
		return nil, errors.ConfigLoadFailed(path, err)
	}
	cfg.APIURL = strings.TrimRight(cfg.APIURL, "/")

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Validate checks that the config is internally consistent. Theme and start
// panel names are checked by the UI, which falls back to its defaults.
func (c *Config) Validate() error {
	c.mu.RLock()
	defer c.mu.RUnlock()

	u, err := url.Parse(c.APIURL)
	if err != nil {
		return errors.ConfigInvalid("api_url is not a valid URL: " + err.Error())
	}
	if u.Scheme != "http" && u.Scheme != "https" {
		return errors.ConfigInvalid("api_url must use http or https, got " + c.APIURL)
	}
	if u.Host == "" {
		return errors.ConfigInvalid("api_url has no host: " + c.APIURL)
	}
	if c.ReconnectDelay <= 0 {
		return errors.ConfigInvalid("reconnect_delay must be positive")
	}
	if c.RequestTimeout < 0 {
		return errors.ConfigInvalid("request_timeout must not be negative")
	}
	return nil
}

// Path returns the config file this Config was loaded from.
func (c *Config) Path() string {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.filePath
}

// SetTheme records the selected theme; call Save to persist it.
func (c *Config) SetTheme(name string) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.Theme = name
}

// GetTheme returns the configured theme name.
func (c *Config) GetTheme() string {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.Theme
}

// SetNotificationsEnabled toggles desktop notifications.
func (c *Config) SetNotificationsEnabled(enabled bool) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.Notifications = enabled
}

// GetNotificationsEnabled reports whether desktop notifications are enabled.
func (c *Config) GetNotificationsEnabled() bool {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.Notifications
}

// Save writes the persistable settings back to the config file as YAML.
func (c *Config) Save() error {
	c.mu.RLock()
	defer c.mu.RUnlock()

	if c.filePath == "" {
		return errors.E(errors.Op("config.Save"), errors.KindConfig, "config has no file path")
	}

	k := koanf.New(".")
	if err := k.Load(confmap.Provider(map[string]any{
		"api_url":         c.APIURL,
		"reconnect_delay": c.ReconnectDelay.String(),
		"request_timeout": c.RequestTimeout.String(),
		"theme":           c.Theme,
		"notifications":   c.Notifications,
		"debug":           c.Debug,
		"log_path":        c.LogPath,
		"start_panel":     c.StartPanel,
	}, "."), nil); err != nil {
		return errors.E(errors.Op("config.Save"), errors.KindConfig, err)
	}
	data, err := k.Marshal(yaml.Parser())
	if err != nil {
		return errors.E(errors.Op("config.Save"), errors.KindConfig, err)
	}

	if err := os.MkdirAll(filepath.Dir(c.filePath), 0755); err != nil {
		return errors.E(errors.Op("config.Save"), errors.KindIO, err)
	}
	if err := os.WriteFile(c.filePath, data, 0644); err != nil {
		return errors.E(errors.Op("config.Save"), errors.KindIO, c.filePath, err)
	}
	return nil
}
