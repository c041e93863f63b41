// Package wificonfig holds the compiled-in list of known WiFi networks and
// registers them with a multi-access-point connection manager at startup.
//
// # Usage Example
//
//	manager := multiap.New()
//	wificonfig.AddWifis(manager)
//
// AddWifis must run once, before any connection attempt begins. Each entry
// of Networks is handed to the manager's AddAP in declaration order. The
// manager decides what to do with it; nothing here checks the result.
//
// # Security
//
// IMPORTANT: credentials in Networks are plaintext literals compiled into the
// binary. Anyone with the binary can recover them. Use `wificonfig check` to
// see this and other warnings for the current list.
package wificonfig
