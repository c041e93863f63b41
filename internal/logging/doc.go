// Package logging provides structured logging for wificonfig.
//
// This package wraps a global zap logger. It is silent unless a level is
// given, either explicitly or through WIFICONFIG_LOG_LEVEL:
//
//	WIFICONFIG_LOG_LEVEL=debug wificonfig list
//
// Output goes to stderr in console format so it never mixes with command
// output on stdout.
//
// Credential passwords must never be passed as log fields. Log the SSID only.
package logging
