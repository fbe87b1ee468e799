package errors

import (
	"errors"
	"strings"
	"testing"
)

func TestEnrichErrorWithHint(t *testing.T) {
	tests := []struct {
		name        string
		err         error
		expectedStr string
	}{
		{
			name:        "nil error",
			err:         nil,
			expectedStr: "",
		},
		{
			name:        "stale NFS handle",
			err:         Transient("gate.lock", errors.New("stale NFS file handle")),
			expectedStr: "mounted",
		},
		{
			name:        "file not found",
			err:         Transient("state.Load", errors.New("no such file or directory: /path/to/state")),
			expectedStr: "mounted",
		},
		{
			name:        "permission denied",
			err:         Transient("gate.lock", errors.New("permission denied: /path/to/lockfile")),
			expectedStr: "permission",
		},
		{
			name:        "disk full",
			err:         Transient("state.Dump", errors.New("no space left on device")),
			expectedStr: "disk space",
		},
		{
			name:        "already has hint",
			err:         Permanent("engine.request", errors.New("already locked")).WithHint("existing hint"),
			expectedStr: "existing hint",
		},
		{
			name:        "unmatched message leaves no hint",
			err:         Transient("gate.lock", errors.New("connection reset by peer")),
			expectedStr: "",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			enriched := EnrichErrorWithHint(tt.err)

			if tt.err == nil {
				if enriched != nil {
					t.Errorf("EnrichErrorWithHint() should return nil for nil error")
				}
				return
			}

			hint := GetHint(enriched)
			if tt.expectedStr == "" {
				if hint != "" {
					t.Errorf("expected no hint, got %q", hint)
				}
				return
			}
			if !strings.Contains(hint, tt.expectedStr) {
				t.Errorf("enriched error hint should contain %q, got %q", tt.expectedStr, hint)
			}
		})
	}
}

func TestEnrichErrorWithHint_PreservesExistingHint(t *testing.T) {
	originalHint := "original hint"
	err := Permanent("engine.request", errors.New("already locked")).WithHint(originalHint)

	enriched := EnrichErrorWithHint(err)

	hint := GetHint(enriched)
	if hint != originalHint {
		t.Errorf("EnrichErrorWithHint() should preserve existing hint, got %q, want %q", hint, originalHint)
	}
}

func TestEnrichErrorWithHint_PlainErrorUntouched(t *testing.T) {
	plain := errors.New("stale NFS file handle")
	enriched := EnrichErrorWithHint(plain)

	if GetHint(enriched) != "" {
		t.Errorf("a plain error (not wrapping *Error) should not gain a hint: got %q", GetHint(enriched))
	}
	if enriched.Error() != plain.Error() {
		t.Errorf("EnrichErrorWithHint() should not alter a plain error's message")
	}
}
