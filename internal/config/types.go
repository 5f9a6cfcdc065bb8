// SPDX-License-Identifier: MPL-2.0

package config

import (
	"errors"
	"fmt"
	"strings"
)

var (
	// ErrInvalidToolPath is returned when the tool path is whitespace-only.
	ErrInvalidToolPath = errors.New("invalid tool path")
	// ErrInvalidStatusWidth is returned when the status width override is negative.
	ErrInvalidStatusWidth = errors.New("invalid status width")
)

type (
	// Config is the full application configuration.
	Config struct {
		// Tool configures the external OpenPGP executable.
		Tool ToolConfig `mapstructure:"tool" toml:"tool"`
		// Keymap configures the chord bindings exposed to hosts.
		Keymap KeymapConfig `mapstructure:"keymap" toml:"keymap"`
		// UI configures display behavior.
		UI UIConfig `mapstructure:"ui" toml:"ui"`
	}

	// ToolConfig configures how the external process is spawned.
	ToolConfig struct {
		// Path is the executable name or path. Bare names are located via
		// PATH lookup. The zero value means the built-in default ("sq").
		Path string `mapstructure:"path" toml:"path"`
	}

	// KeymapConfig configures the key-binding surface.
	KeymapConfig struct {
		// Prefix is the chord the five default bindings hang off.
		// The zero value means the built-in default prefix.
		Prefix string `mapstructure:"prefix" toml:"prefix"`
	}

	// UIConfig configures display behavior.
	UIConfig struct {
		// Verbose enables debug logging.
		Verbose bool `mapstructure:"verbose" toml:"verbose"`
		// StatusWidth overrides the detected status line width.
		// Zero means use the terminal width.
		StatusWidth int `mapstructure:"status_width" toml:"status_width"`
	}

	// InvalidToolPathError is returned when a ToolConfig path is non-empty
	// but whitespace-only. It wraps ErrInvalidToolPath for errors.Is().
	InvalidToolPathError struct {
		Value string
	}

	// InvalidStatusWidthError is returned when a UIConfig status width is
	// negative. It wraps ErrInvalidStatusWidth for errors.Is().
	InvalidStatusWidthError struct {
		Value int
	}
)

// Error implements the error interface.
func (e *InvalidToolPathError) Error() string {
	return fmt.Sprintf("invalid tool path %q: must not be whitespace-only", e.Value)
}

// Unwrap returns ErrInvalidToolPath for errors.Is().
func (e *InvalidToolPathError) Unwrap() error {
	return ErrInvalidToolPath
}

// Error implements the error interface.
func (e *InvalidStatusWidthError) Error() string {
	return fmt.Sprintf("invalid status width %d: must not be negative", e.Value)
}

// Unwrap returns ErrInvalidStatusWidth for errors.Is().
func (e *InvalidStatusWidthError) Unwrap() error {
	return ErrInvalidStatusWidth
}

// DefaultConfig returns the built-in defaults.
func DefaultConfig() *Config {
	return &Config{
		Tool:   ToolConfig{Path: "sq"},
		Keymap: KeymapConfig{Prefix: "C-c p"},
		UI:     UIConfig{Verbose: false, StatusWidth: 0},
	}
}

// Validate checks constraints the TOML schema cannot express.
func (c *Config) Validate() error {
	if c.Tool.Path != "" && strings.TrimSpace(c.Tool.Path) == "" {
		return &InvalidToolPathError{Value: c.Tool.Path}
	}
	if c.UI.StatusWidth < 0 {
		return &InvalidStatusWidthError{Value: c.UI.StatusWidth}
	}
	return nil
}
