// Package nfslock provides a multi-reader/single-writer advisory lock shared
// across processes on different hosts that communicate only through a
// common POSIX-compliant network filesystem such as NFS.
//
// # Overview
//
// Three operations cover the whole protocol: AcquireRead, AcquireWrite, and
// Release. Any number of readers may hold the lock concurrently as long as
// no writer holds it; at most one writer may hold it at a time. A pending
// writer waits until every granted reader has released; it never evicts
// them, and new readers may still join while any reader holds the lock.
//
// # Coordination primitive
//
// Mutual exclusion over the shared state file is bootstrapped from a single
// filesystem primitive: atomic hard-link creation. Every process that wants
// exclusive access to the state file creates a private marker file and races
// to hard-link it onto a well-known lockfile name. Exactly one caller's
// link(2) can succeed; that caller now owns the gate until it unlinks the
// lockfile. flock(2) and O_EXCL are deliberately not used here: both are
// documented as unreliable on some NFS implementations, whereas link(2)'s
// failure-on-conflict is atomic everywhere NFS is usable at all.
//
// # On-disk layout
//
// Three well-known names live under the configured lock directory:
//
//	state          -> the serialized list of known lock requests
//	lockfile       -> the exclusive gate token (hard-linked from a marker)
//	<host>.<pid>   -> this process's private marker file
//
// # Usage
//
//	h, err := nfslock.NewHandle(nfslock.Config{
//	    LockDir:      "/mnt/shared/.locks",
//	    SpinInterval: 50 * time.Millisecond,
//	    Timeout:      30 * time.Second,
//	})
//	if err != nil {
//	    return err
//	}
//	if err := h.AcquireRead(); err != nil {
//	    return err
//	}
//	defer h.Release()
//
// # Error handling
//
//   - ErrTimedOut: the gate could not be acquired within Config.Timeout
//     because lockfile persists (an abandoned gate, or real contention).
//   - ErrAlreadyLocked: the calling identity already holds or has requested
//     an incompatible lock, or release was called with no matching entry.
//   - any other error is an I/O failure, wrapped with internal/errors
//     metadata so callers can distinguish transient filesystem trouble
//     from a logic error.
//
// # Clock assumption
//
// Stale-entry garbage collection compares each entry's recorded time against
// the local clock. Correctness requires participating hosts' clocks to
// agree to within a small multiple of one second relative to Config.Timeout;
// this is not enforced by the package.
package nfslock
