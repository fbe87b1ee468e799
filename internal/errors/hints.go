package errors

import (
	"strings"
)

// Recovery hints for lock coordination failures, surfaced by the CLI via
// Error.FullMessage.
const (
	HintGateTimedOut     = "Another process may hold the gate, or a crashed peer left lockfile behind. If the system is known idle, clear the lock directory's contents to hard-reset."
	HintAlreadyLocked    = "This identity already holds or has requested an incompatible lock, or released without a matching acquire. Each (host, pid) may hold at most one lock at a time."
	HintNFSMountIssue    = "Check that the lock directory's filesystem is mounted, writable, and supports atomic link(2) creation."
	HintPermissionDenied = "Check file permissions on the lock directory; every participant needs read and write access."
	HintDiskFull         = "Free up disk space on the lock directory's filesystem and try again."
)

// EnrichErrorWithHint adds an NFS-relevant hint to a transient I/O error
// based on its underlying message, if it doesn't already carry one.
func EnrichErrorWithHint(err error) error {
	if err == nil {
		return nil
	}

	var e *Error
	if As(err, &e) && e.Hint != "" {
		return err
	}

	errStr := err.Error()

	switch {
	case strings.Contains(errStr, "stale NFS file handle"), strings.Contains(errStr, "no such file or directory"):
		if e != nil {
			e.WithHint(HintNFSMountIssue)
		}
	case strings.Contains(errStr, "permission denied"):
		if e != nil {
			e.WithHint(HintPermissionDenied)
		}
	case strings.Contains(errStr, "no space left"):
		if e != nil {
			e.WithHint(HintDiskFull)
		}
	}

	return err
}
