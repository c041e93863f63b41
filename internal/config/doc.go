// Package config manages CLI preferences for wificonfig.
//
// Preferences live in a small YAML file in the platform configuration
// directory:
//   - Linux: $XDG_CONFIG_HOME/wificonfig/config.yaml or $HOME/.config/wificonfig/config.yaml
//   - macOS: $HOME/.config/wificonfig/config.yaml
//   - Windows: %LOCALAPPDATA%\wificonfig\config.yaml
//
// # Security
//
// IMPORTANT: This package NEVER stores WiFi credentials. The known networks
// are compiled into the binary (see package wificonfig); this file only
// controls how the CLI displays them.
//
// # Usage Example
//
//	settings, err := config.Load()
//	if err != nil {
//	    log.Fatal(err)
//	}
//	settings.Preferences.DefaultFormat = config.FormatCompact
//	if err := settings.Save(); err != nil {
//	    log.Fatal(err)
//	}
package config
