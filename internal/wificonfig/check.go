package wificonfig

import (
	"fmt"

	"go.uber.org/zap"

	"github.com/muurk/wificonfig/internal/multiap"
)

// MinWPAPasswordLength is the shortest passphrase WPA2-PSK accepts
const MinWPAPasswordLength = 8

// Finding is the outcome of checking one credential
type Finding struct {
	Index      int        // Position in the checked list
	Credential Credential // The checked entry
	Err        error      // Non-nil if the manager rejected it
	Warnings   []string   // Non-fatal issues
}

// Accepted reports whether the manager kept the entry
func (f Finding) Accepted() bool {
	return f.Err == nil
}

// Report summarizes a dry-run registration of a credential list.
type Report struct {
	Findings []Finding
	Warnings []string // Issues about the list as a whole
	Manager  *multiap.Manager
}

// Rejected returns the number of entries the manager refused
func (r *Report) Rejected() int {
	n := 0
	for _, f := range r.Findings {
		if !f.Accepted() {
			n++
		}
	}
	return n
}

// Check registers creds into a fresh manager with the given capacity
// (0 = unlimited), recording what was rejected and why. Unlike Register, the
// manager's failures are surfaced instead of absorbed.
func Check(creds []Credential, capacity int) *Report {
	m := multiap.New(multiap.WithCapacity(capacity), multiap.WithLogger(zap.NewNop()))
	report := &Report{Manager: m}

	if len(creds) == 0 {
		report.Warnings = append(report.Warnings, "No networks configured; the device will not be able to join any access point")
	} else {
		report.Warnings = append(report.Warnings, "Credentials are compiled into the binary as plaintext and can be extracted from it")
	}

	// Only entries the manager kept can be duplicated in it
	firstSeen := make(map[Credential]int)
	firstSSID := make(map[string]int)
	for i, c := range creds {
		f := Finding{Index: i, Credential: c}
		f.Err = m.TryAddAP(c.SSID, c.Password)

		if c.Password == "" {
			f.Warnings = append(f.Warnings, "Open network (no password) is a security risk")
		} else if len(c.Password) < MinWPAPasswordLength {
			f.Warnings = append(f.Warnings, fmt.Sprintf("Password shorter than %d characters will be refused by WPA2 access points", MinWPAPasswordLength))
		}

		if f.Accepted() {
			if prev, ok := firstSeen[c]; ok {
				f.Warnings = append(f.Warnings, fmt.Sprintf("Duplicate of entry %d; it will be registered twice", prev+1))
			} else if prev, ok := firstSSID[c.SSID]; ok {
				f.Warnings = append(f.Warnings, fmt.Sprintf("Same SSID as entry %d with a different password; only one of them can work", prev+1))
			}
			if _, ok := firstSeen[c]; !ok {
				firstSeen[c] = i
			}
			if _, ok := firstSSID[c.SSID]; !ok {
				firstSSID[c.SSID] = i
			}
		}

		report.Findings = append(report.Findings, f)
	}

	return report
}
