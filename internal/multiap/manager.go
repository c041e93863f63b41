package multiap

import (
	"errors"
	"fmt"
	"sync"

	"go.uber.org/zap"

	"github.com/muurk/wificonfig/internal/logging"
)

const (
	// MaxSSIDLength is the longest SSID accepted, in bytes
	MaxSSIDLength = 32
	// MaxPasswordLength is the longest password accepted, in bytes
	MaxPasswordLength = 64
)

// AccessPoint is one registered network
type AccessPoint struct {
	SSID     string `json:"ssid" yaml:"ssid"`
	Password string `json:"password" yaml:"password"`
}

// Open reports whether the access point has no password
func (ap AccessPoint) Open() bool {
	return ap.Password == ""
}

// Manager is an ordered, concurrency-safe list of known access points.
type Manager struct {
	mu       sync.Mutex
	aps      []AccessPoint
	capacity int
	logger   *zap.Logger
}

// Option configures a Manager
type Option func(*Manager)

// WithCapacity limits the number of access points. Zero means unlimited.
func WithCapacity(n int) Option {
	return func(m *Manager) {
		m.capacity = n
	}
}

// WithLogger sets the logger used for absorbed failures.
// Defaults to the global logger from the logging package.
func WithLogger(logger *zap.Logger) Option {
	return func(m *Manager) {
		m.logger = logger
	}
}

// New creates an empty Manager
func New(opts ...Option) *Manager {
	m := &Manager{}
	for _, opt := range opts {
		opt(m)
	}
	if m.logger == nil {
		m.logger = logging.GetLogger()
	}
	return m
}

// AddAP adds an access point. A rejected entry is logged and dropped.
func (m *Manager) AddAP(ssid, password string) {
	if err := m.TryAddAP(ssid, password); err != nil {
		fields := []zap.Field{zap.String("ssid", ssid), zap.Error(err)}
		var apErr *APError
		if errors.As(err, &apErr) {
			fields = append(fields, zap.Stringer("reason", apErr.Type))
		}
		m.logger.Warn("Access point rejected", fields...)
	}
}

// TryAddAP adds an access point, returning an *APError if it is rejected.
func (m *Manager) TryAddAP(ssid, password string) error {
	if err := ValidateSSID(ssid); err != nil {
		return err
	}
	if err := ValidatePassword(ssid, password); err != nil {
		return err
	}

	m.mu.Lock()
	defer m.mu.Unlock()

	if m.capacity > 0 && len(m.aps) >= m.capacity {
		return NewCapacityError(ssid, m.capacity)
	}

	m.aps = append(m.aps, AccessPoint{SSID: ssid, Password: password})
	m.logger.Debug("Access point added",
		zap.String("ssid", ssid),
		zap.Bool("open", password == ""),
		zap.Int("count", len(m.aps)),
	)
	return nil
}

// APs returns a copy of the registered access points in insertion order
func (m *Manager) APs() []AccessPoint {
	m.mu.Lock()
	defer m.mu.Unlock()

	out := make([]AccessPoint, len(m.aps))
	copy(out, m.aps)
	return out
}

// Len returns the number of registered access points
func (m *Manager) Len() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return len(m.aps)
}

// Capacity returns the configured limit (0 = unlimited)
func (m *Manager) Capacity() int {
	return m.capacity
}

// ValidateSSID checks that an SSID is non-empty and at most MaxSSIDLength bytes.
func ValidateSSID(ssid string) error {
	if ssid == "" {
		return NewValidationError(ssid, "SSID cannot be empty")
	}
	if len(ssid) > MaxSSIDLength {
		return NewValidationError(ssid, fmt.Sprintf("SSID too long (max %d bytes): %d bytes", MaxSSIDLength, len(ssid)))
	}
	return nil
}

// ValidatePassword checks that a password is at most MaxPasswordLength bytes.
func ValidatePassword(ssid, password string) error {
	if len(password) > MaxPasswordLength {
		return NewValidationError(ssid, fmt.Sprintf("password too long (max %d bytes): %d bytes", MaxPasswordLength, len(password)))
	}
	return nil
}
