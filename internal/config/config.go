package config

import (
	"errors"
	"fmt"
	"strings"

	"github.com/lc/confy/internal/log"
	"github.com/lc/confy/pkg/confy"
)

var (
	// ErrInvalidConfig is returned when the settings are invalid.
	ErrInvalidConfig = errors.New("invalid configuration")
)

const (
	// AppName is the application name the settings are stored under.
	AppName = "confy"
	// Name is the configuration name of the settings file.
	Name = "settings"

	// ColorAuto colors output only when stdout is a terminal.
	ColorAuto = "auto"
	// ColorAlways forces colored output.
	ColorAlways = "always"
	// ColorNever disables colored output.
	ColorNever = "never"
)

// Settings holds the confy command's own settings.
type Settings struct {
	LogLevel string `toml:"log_level" yaml:"log_level"`
	Color    string `toml:"color" yaml:"color"`
	// ShowStaging lists leftover staging files under "confy show".
	ShowStaging bool `toml:"show_staging" yaml:"show_staging"`
}

// Default returns the settings used when no settings file exists.
func (Settings) Default() Settings {
	return Settings{
		LogLevel:    "info",
		Color:       ColorAuto,
		ShowStaging: true,
	}
}

// Validate checks that every setting holds a known value.
func (s Settings) Validate() error {
	if _, err := log.ParseLevel(s.LogLevel); err != nil {
		return err
	}
	switch strings.ToLower(s.Color) {
	case ColorAuto, ColorAlways, ColorNever:
	default:
		return fmt.Errorf("color must be one of %s, %s, %s; got %q", ColorAuto, ColorAlways, ColorNever, s.Color)
	}
	return nil
}

// Provider loads and stores Settings.
type Provider struct {
	store *confy.Provider[Settings]
}

// New creates a Provider backed by the platform configuration directory.
func New(opts ...confy.Option[Settings]) *Provider {
	return &Provider{store: confy.New[Settings](opts...)}
}

// Path returns the settings file location.
func (p *Provider) Path() (string, error) {
	return p.store.ConfigurationFilePath(AppName, Name)
}

// Load reads the settings, falling back to the defaults when no file
// exists. Nothing is written.
func (p *Provider) Load() (Settings, error) {
	s, err := p.store.LoadOrDefault(AppName, Name)
	if err != nil {
		return Settings{}, err
	}
	if err := s.Validate(); err != nil {
		return Settings{}, fmt.Errorf("%w: %v", ErrInvalidConfig, err)
	}
	return s, nil
}

// Save validates and persists s.
func (p *Provider) Save(s Settings) error {
	if err := s.Validate(); err != nil {
		return fmt.Errorf("%w: %v", ErrInvalidConfig, err)
	}
	return p.store.Store(AppName, Name, s)
}
