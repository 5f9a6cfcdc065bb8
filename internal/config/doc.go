// SPDX-License-Identifier: MPL-2.0

// Package config handles application configuration using Viper with TOML as
// the file format.
//
// Configuration is loaded from ~/.config/sqview/config.toml (XDG equivalent
// on Linux, ~/Library/Application Support/sqview/config.toml on macOS,
// %APPDATA%\sqview\config.toml on Windows), falling back to a config.toml in
// the current directory, then to built-in defaults.
package config
