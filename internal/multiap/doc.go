// Package multiap provides a multi-access-point credential store.
//
// A Manager holds the ordered list of networks a device may try to join. It
// implements the AddAP capability that wificonfig registers credentials
// through, and applies the same acceptance rules as common embedded WiFi
// stacks:
//   - SSID must be non-empty and at most 32 bytes
//   - Password must be at most 64 bytes (empty means an open network)
//   - The list must not exceed the configured capacity
//
// Duplicate entries are accepted and kept in insertion order.
//
// Scanning, picking the strongest signal, and connecting are not handled
// here. The Manager only answers "which networks are known".
//
// # Failure Handling
//
// AddAP absorbs rejected entries: they are logged at warn level and dropped.
// TryAddAP applies the same rules and returns an *APError instead.
//
// # Thread Safety
//
// Manager instances are safe for concurrent use.
package multiap
