package nfslock

import (
	"testing"
	"time"
)

func TestConfigValidate(t *testing.T) {
	tests := []struct {
		name    string
		cfg     Config
		wantErr bool
	}{
		{"valid", Config{LockDir: "/tmp/locks", SpinInterval: time.Millisecond, Timeout: time.Second}, false},
		{"empty lockdir", Config{SpinInterval: time.Millisecond, Timeout: time.Second}, true},
		{"zero spin", Config{LockDir: "/tmp/locks", Timeout: time.Second}, true},
		{"negative spin", Config{LockDir: "/tmp/locks", SpinInterval: -1, Timeout: time.Second}, true},
		{"zero timeout", Config{LockDir: "/tmp/locks", SpinInterval: time.Millisecond}, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.cfg.validate()
			if (err != nil) != tt.wantErr {
				t.Errorf("validate() error = %v, wantErr %v", err, tt.wantErr)
			}
		})
	}
}

func TestConfigLogfNilLoggerIsNoOp(t *testing.T) {
	cfg := Config{LockDir: "/tmp/locks", SpinInterval: time.Millisecond, Timeout: time.Second}
	// Must not panic with a nil Logger.
	cfg.logf("test %d", 1)
}
