// Package config provides configuration loading from YAML files.
package config

import (
	"os"
	"time"

	"github.com/cockroachdb/errors"
	"github.com/creasty/defaults"
	"github.com/go-playground/validator/v10"
	"gopkg.in/yaml.v3"
)

// Provider types.
const (
	ProviderAlQuran         = "alquran"
	ProviderQuranFoundation = "quranfoundation"
)

// Config represents the application configuration.
type Config struct {
	Server    ServerConfig     `yaml:"server"`
	Admin     AdminConfig      `yaml:"admin"`
	Reader    ReaderConfig     `yaml:"reader"`
	Providers []ProviderConfig `yaml:"providers" validate:"required,min=1,dive"`
	Bookmarks BookmarksConfig  `yaml:"bookmarks"`
	Share     ShareConfig      `yaml:"share"`
	Messages  MessagesConfig   `yaml:"messages"`
}

// ServerConfig represents server configuration.
type ServerConfig struct {
	Addr           string      `yaml:"addr" default:":8080"`
	AllowedOrigins []string    `yaml:"allowed_origins"`
	Hooks          HooksConfig `yaml:"hooks"`
}

// HooksConfig represents lifecycle hooks configuration.
type HooksConfig struct {
	OnStarted []string `yaml:"on_started"`
	OnStopped []string `yaml:"on_stopped"`
}

// AdminConfig represents admin-related configuration.
type AdminConfig struct {
	Token string `yaml:"token" validate:"required"`
}

// ReaderConfig represents reading and recitation configuration.
type ReaderConfig struct {
	StartChapter     int          `yaml:"start_chapter" default:"1" validate:"gte=1,lte=114"`
	AudioBaseURL     string       `yaml:"audio_base_url" default:"https://cdn.islamic.network/quran/audio/128/ar.alafasy" validate:"url"`
	AdvanceDelayMs   int          `yaml:"advance_delay_ms" default:"1000" validate:"gte=0,lte=30000"`
	NoticeDurationMs int          `yaml:"notice_duration_ms" default:"2000" validate:"gte=100,lte=60000"`
	RequiresGesture  *bool        `yaml:"requires_gesture" default:"true"`
	Player           PlayerConfig `yaml:"player"`
}

// PlayerConfig represents the external audio player configuration.
type PlayerConfig struct {
	Binary string   `yaml:"binary" default:"mpv"`
	Args   []string `yaml:"args"`
}

// ProviderConfig represents a single verse provider configuration.
type ProviderConfig struct {
	Type        string         `yaml:"type" validate:"required,oneof=alquran quranfoundation"`
	DisplayName string         `yaml:"display_name" validate:"required"`
	Settings    map[string]any `yaml:"settings"`
}

// BookmarksConfig represents the bookmark store configuration.
type BookmarksConfig struct {
	Backend string `yaml:"backend" default:"file" validate:"oneof=file sqlite postgres"`
	Path    string `yaml:"path" default:"data/bookmarks.json"`
	DSN     string `yaml:"dsn"`
}

// ShareConfig represents sharing configuration.
type ShareConfig struct {
	ReaderURL string `yaml:"reader_url" default:"http://localhost:8080/" validate:"url"`
	Endpoint  string `yaml:"endpoint" validate:"omitempty,url"`
	TimeoutMs int    `yaml:"timeout_ms" default:"5000" validate:"gte=100"`
}

// MessagesConfig represents user-facing notice texts.
type MessagesConfig struct {
	Playing         string `yaml:"playing" default:"Playing recitation"`
	Stopped         string `yaml:"stopped" default:"Playback stopped"`
	Completed       string `yaml:"completed" default:"Playback completed"`
	TapToEnable     string `yaml:"tap_to_enable" default:"Tap anywhere to enable audio"`
	PlayFailed      string `yaml:"play_failed" default:"Failed to play audio"`
	BookmarkAdded   string `yaml:"bookmark_added" default:"Bookmark added"`
	BookmarkRemoved string `yaml:"bookmark_removed" default:"Bookmark removed"`
	Shared          string `yaml:"shared" default:"Shared successfully!"`
	Copied          string `yaml:"copied" default:"Copied to clipboard!"`
	ShareFailed     string `yaml:"share_failed" default:"Failed to share"`
	LoadFailed      string `yaml:"load_failed" default:"Failed to load surah. Please try again later."`
}

// Load loads configuration from a YAML file.
// Environment variables take precedence over file values for sensitive fields.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, errors.Wrap(err, "failed to read config file")
	}
	return Parse(data)
}

// Parse parses, completes and validates a YAML configuration document.
func Parse(data []byte) (*Config, error) {
	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, errors.Wrap(err, "failed to parse config file")
	}

	// Override with environment variables
	cfg.overrideFromEnv()

	// Set defaults using creasty/defaults
	if err := defaults.Set(&cfg); err != nil {
		return nil, errors.Wrap(err, "failed to set defaults")
	}

	// Validate configuration
	if err := cfg.Validate(); err != nil {
		return nil, errors.Wrap(err, "config validation failed")
	}

	return &cfg, nil
}

// overrideFromEnv overrides config values with environment variables.
func (c *Config) overrideFromEnv() {
	if v := os.Getenv("ADMIN_TOKEN"); v != "" {
		c.Admin.Token = v
	}
	if v := os.Getenv("BOOKMARKS_DSN"); v != "" {
		c.Bookmarks.DSN = v
	}
	for i := range c.Providers {
		if c.Providers[i].Type != ProviderQuranFoundation {
			continue
		}
		if c.Providers[i].Settings == nil {
			c.Providers[i].Settings = make(map[string]any)
		}
		if v := os.Getenv("QF_CLIENT_ID"); v != "" {
			c.Providers[i].Settings["client_id"] = v
		}
		if v := os.Getenv("QF_CLIENT_SECRET"); v != "" {
			c.Providers[i].Settings["client_secret"] = v
		}
	}
}

// Validate validates the configuration.
func (c *Config) Validate() error {
	validate := validator.New()
	if err := validate.Struct(c); err != nil {
		return errors.Wrap(err, "struct validation failed")
	}

	if c.Bookmarks.Backend == "postgres" && c.Bookmarks.DSN == "" {
		return errors.New("bookmarks.dsn is required for the postgres backend")
	}
	if c.Bookmarks.Backend != "postgres" && c.Bookmarks.Path == "" {
		return errors.Newf("bookmarks.path is required for the %s backend", c.Bookmarks.Backend)
	}

	return nil
}

// GestureRequired reports whether audio needs a prior user gesture.
func (c *ReaderConfig) GestureRequired() bool {
	return c.RequiresGesture == nil || *c.RequiresGesture
}

// AdvanceDelay returns the pause between consecutive recitations.
func (c *ReaderConfig) AdvanceDelay() time.Duration {
	return time.Duration(c.AdvanceDelayMs) * time.Millisecond
}

// NoticeDuration returns how long a notice stays visible.
func (c *ReaderConfig) NoticeDuration() time.Duration {
	return time.Duration(c.NoticeDurationMs) * time.Millisecond
}

// Timeout returns the share request timeout.
func (c *ShareConfig) Timeout() time.Duration {
	return time.Duration(c.TimeoutMs) * time.Millisecond
}
