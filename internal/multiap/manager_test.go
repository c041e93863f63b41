package multiap

import (
	"strings"
	"sync"
	"testing"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"
)

func TestNew(t *testing.T) {
	m := New()

	if m.Len() != 0 {
		t.Errorf("New().Len() = %d, want 0", m.Len())
	}
	if m.Capacity() != 0 {
		t.Errorf("New().Capacity() = %d, want 0", m.Capacity())
	}
	if m.logger == nil {
		t.Error("New() should fall back to the global logger")
	}
}

func TestTryAddAP(t *testing.T) {
	tests := []struct {
		name        string
		ssid        string
		password    string
		wantErr     bool
		errContains string
	}{
		{"valid WPA network", "HomeNet", "correct-horse", false, ""},
		{"open network", "CafeGuest", "", false, ""},
		{"SSID at limit", strings.Repeat("a", 32), "password", false, ""},
		{"password at limit", "HomeNet", strings.Repeat("p", 64), false, ""},
		{"empty SSID", "", "password", true, "SSID cannot be empty"},
		{"SSID too long", strings.Repeat("a", 33), "password", true, "SSID too long"},
		{"password too long", "HomeNet", strings.Repeat("p", 65), true, "password too long"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			m := New(WithLogger(zap.NewNop()))
			err := m.TryAddAP(tt.ssid, tt.password)

			if tt.wantErr {
				if err == nil {
					t.Fatal("Expected error, got nil")
				}
				if !IsValidationError(err) {
					t.Errorf("Expected validation error, got %v", err)
				}
				if !strings.Contains(err.Error(), tt.errContains) {
					t.Errorf("Expected error containing %q, got %q", tt.errContains, err.Error())
				}
				if m.Len() != 0 {
					t.Errorf("Rejected entry should not be stored, got %d entries", m.Len())
				}
				return
			}

			if err != nil {
				t.Fatalf("Unexpected error: %v", err)
			}
			aps := m.APs()
			if len(aps) != 1 || aps[0].SSID != tt.ssid || aps[0].Password != tt.password {
				t.Errorf("Expected [{%s %s}], got %+v", tt.ssid, tt.password, aps)
			}
		})
	}
}

func TestTryAddAP_Capacity(t *testing.T) {
	m := New(WithCapacity(2), WithLogger(zap.NewNop()))

	if err := m.TryAddAP("one", "password1"); err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}
	if err := m.TryAddAP("two", "password2"); err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}

	err := m.TryAddAP("three", "password3")
	if err == nil {
		t.Fatal("Expected capacity error, got nil")
	}
	if !IsCapacityError(err) {
		t.Errorf("Expected capacity error, got %v", err)
	}
	if m.Len() != 2 {
		t.Errorf("Expected 2 entries, got %d", m.Len())
	}
}

func TestAddAP_DuplicatesKept(t *testing.T) {
	m := New(WithLogger(zap.NewNop()))

	m.AddAP("Home", "home-pass")
	m.AddAP("Home", "home-pass")

	aps := m.APs()
	if len(aps) != 2 {
		t.Fatalf("Expected 2 entries, got %d", len(aps))
	}
	if aps[0] != aps[1] {
		t.Errorf("Expected identical duplicates, got %+v", aps)
	}
}

func TestAddAP_RejectionLogged(t *testing.T) {
	core, logs := observer.New(zapcore.WarnLevel)
	m := New(WithCapacity(1), WithLogger(zap.New(core)))

	m.AddAP("", "password")
	m.AddAP("kept", "password")
	m.AddAP("overflow", "password")

	if m.Len() != 1 {
		t.Fatalf("Expected 1 entry, got %d", m.Len())
	}

	entries := logs.FilterMessage("Access point rejected").All()
	if len(entries) != 2 {
		t.Fatalf("Expected 2 rejection log entries, got %d", len(entries))
	}

	reasons := []string{
		entries[0].ContextMap()["reason"].(string),
		entries[1].ContextMap()["reason"].(string),
	}
	if reasons[0] != "Validation Error" || reasons[1] != "Capacity Error" {
		t.Errorf("Unexpected rejection reasons: %v", reasons)
	}
	if entries[1].ContextMap()["ssid"] != "overflow" {
		t.Errorf("Expected ssid 'overflow' in log, got %v", entries[1].ContextMap()["ssid"])
	}
}

func TestAddAP_PasswordNotLogged(t *testing.T) {
	core, logs := observer.New(zapcore.DebugLevel)
	m := New(WithLogger(zap.New(core)))

	m.AddAP("HomeNet", "super-secret-pass")

	for _, entry := range logs.All() {
		for key, value := range entry.ContextMap() {
			if s, ok := value.(string); ok && strings.Contains(s, "super-secret-pass") {
				t.Errorf("Password leaked into log field %q", key)
			}
		}
	}
}

func TestAPs_ReturnsCopy(t *testing.T) {
	m := New(WithLogger(zap.NewNop()))
	m.AddAP("HomeNet", "password")

	aps := m.APs()
	aps[0].SSID = "mutated"

	if m.APs()[0].SSID != "HomeNet" {
		t.Error("APs() should return a copy")
	}
}

func TestAccessPointOpen(t *testing.T) {
	if !(AccessPoint{SSID: "Cafe"}).Open() {
		t.Error("Expected access point without password to be open")
	}
	if (AccessPoint{SSID: "Home", Password: "x"}).Open() {
		t.Error("Expected access point with password to not be open")
	}
}

func TestManager_ConcurrentAdd(t *testing.T) {
	m := New(WithLogger(zap.NewNop()))

	var wg sync.WaitGroup
	for i := 0; i < 50; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			m.AddAP("HomeNet", "password")
		}()
	}
	wg.Wait()

	if m.Len() != 50 {
		t.Errorf("Expected 50 entries, got %d", m.Len())
	}
}
