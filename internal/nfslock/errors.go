package nfslock

import (
	"errors"

	interr "github.com/nfslockd/nfslock/internal/errors"
)

var (
	// ErrTimedOut is returned when the exclusive gate could not be
	// acquired within Config.Timeout because lockfile persists.
	ErrTimedOut = errors.New("nfslock: gate acquisition timed out")

	// ErrAlreadyLocked is returned when the calling identity already
	// holds or has requested an incompatible lock, or when Release is
	// called with no matching entry.
	ErrAlreadyLocked = errors.New("nfslock: already locked")
)

// wrapIO annotates a filesystem error as transient and enriches it with a
// recovery hint, so callers distinguish I/O trouble from a protocol error
// (ErrTimedOut, ErrAlreadyLocked).
func wrapIO(op string, err error) error {
	if err == nil {
		return nil
	}
	return interr.EnrichErrorWithHint(interr.Transient(op, err))
}

func wrapTimedOut(op string) error {
	return interr.Transient(op, ErrTimedOut).WithHint(interr.HintGateTimedOut)
}

func wrapAlreadyLocked(op string) error {
	return interr.Permanent(op, ErrAlreadyLocked).WithHint(interr.HintAlreadyLocked)
}
