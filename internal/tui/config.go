package tui

import (
	"time"

	"github.com/Veraticus/markbucks/internal/onboarding"
	"github.com/Veraticus/markbucks/internal/recorder"
	"github.com/Veraticus/markbucks/internal/tui/themes"
)

// Config holds TUI configuration.
type Config struct {
	Theme          themes.Theme
	Gate           *onboarding.Gate
	Recorder       *recorder.Recorder
	StartDir       string
	NoticeDuration time.Duration
	Width          int
	Height         int
	ChooseFolder   bool
	ShowHelp       bool
	AltScreen      bool
}

// Option is a functional option for configuring the TUI.
type Option func(*Config)

// defaultConfig returns the default configuration.
func defaultConfig() Config {
	return Config{
		Theme:          themes.Default,
		NoticeDuration: 2 * time.Second,
		Width:          80,
		Height:         24,
		ShowHelp:       true,
		AltScreen:      true,
	}
}

// WithTheme sets the visual theme.
func WithTheme(theme themes.Theme) Option {
	return func(c *Config) {
		c.Theme = theme
	}
}

// WithSize sets the initial terminal size.
func WithSize(width, height int) Option {
	return func(c *Config) {
		c.Width = width
		c.Height = height
	}
}

// WithNoticeDuration sets how long notices stay visible.
func WithNoticeDuration(d time.Duration) Option {
	return func(c *Config) {
		if d > 0 {
			c.NoticeDuration = d
		}
	}
}

// WithStartDir sets the directory the folder picker opens in.
func WithStartDir(dir string) Option {
	return func(c *Config) {
		c.StartDir = dir
	}
}

// WithChooseFolder opens the folder picker even when a folder is already
// configured.
func WithChooseFolder(enabled bool) Option {
	return func(c *Config) {
		c.ChooseFolder = enabled
	}
}

// WithAltScreen controls whether the program takes over the terminal.
func WithAltScreen(enabled bool) Option {
	return func(c *Config) {
		c.AltScreen = enabled
	}
}

// WithGate sets the onboarding gate checked on start.
func WithGate(gate *onboarding.Gate) Option {
	return func(c *Config) {
		c.Gate = gate
	}
}

// WithRecorder sets the recorder behind the recorder screen.
func WithRecorder(rec *recorder.Recorder) Option {
	return func(c *Config) {
		c.Recorder = rec
	}
}
