package ui

import (
	"strings"
	"testing"

	"github.com/muurk/wificonfig/internal/wificonfig"
)

func TestRenderReport_Accepted(t *testing.T) {
	report := wificonfig.Check([]wificonfig.Credential{{SSID: "HomeNet", Password: "home-secret"}}, 0)

	out := RenderReport(report, 100)

	if !strings.Contains(out, "1 network(s) accepted") {
		t.Errorf("Expected accepted summary, got:\n%s", out)
	}
	if !strings.Contains(out, "HomeNet") {
		t.Errorf("Expected SSID in output, got:\n%s", out)
	}
	if strings.Contains(out, "home-secret") {
		t.Error("Report must not print passwords")
	}
}

func TestRenderReport_Rejected(t *testing.T) {
	report := wificonfig.Check([]wificonfig.Credential{
		{SSID: "HomeNet", Password: "home-secret"},
		{SSID: "", Password: "orphan-secret"},
	}, 0)

	out := RenderReport(report, 100)

	for _, want := range []string{"1 of 2 network(s) rejected", "(empty SSID)", "SSID cannot be empty"} {
		if !strings.Contains(out, want) {
			t.Errorf("Expected output to contain %q, got:\n%s", want, out)
		}
	}
}

func TestHasWarnings(t *testing.T) {
	if !hasWarnings(&wificonfig.Report{Warnings: []string{"x"}}) {
		t.Error("Expected list-level warning to count")
	}
	if !hasWarnings(&wificonfig.Report{Findings: []wificonfig.Finding{{Warnings: []string{"x"}}}}) {
		t.Error("Expected entry-level warning to count")
	}
	if hasWarnings(&wificonfig.Report{}) {
		t.Error("Expected empty report to have no warnings")
	}
}
