package nfslock

import (
	"fmt"
	"log"
	"time"
)

// Config names the shared lock directory and the timing parameters every
// participant in a given lock directory must agree on closely enough for
// the protocol's liveness guarantees to hold.
type Config struct {
	// LockDir is an absolute path to a directory on a shared filesystem,
	// readable and writable by every participating process.
	LockDir string

	// SpinInterval is the delay between retries: both while spinning for
	// the exclusive gate and while waiting for a PENDING request to become
	// GRANTED. Must be positive.
	SpinInterval time.Duration

	// Timeout bounds gate acquisition (§4.2) and defines staleness for
	// garbage collection (§3 invariant 5): an entry whose Time is older
	// than Timeout is dropped on the next Load. Must be positive.
	//
	// Correctness of staleness GC assumes participating hosts' clocks
	// agree to within a small multiple of one second relative to Timeout;
	// this is a cooperative-clients assumption, not something this
	// package enforces.
	Timeout time.Duration

	// Logger receives one line per gate timeout, per PENDING retry, and
	// per failed gate unlock after a failed load. A nil Logger disables
	// this output.
	Logger *log.Logger
}

func (c Config) validate() error {
	if c.LockDir == "" {
		return fmt.Errorf("nfslock: LockDir must not be empty")
	}
	if c.SpinInterval <= 0 {
		return fmt.Errorf("nfslock: SpinInterval must be positive, got %v", c.SpinInterval)
	}
	if c.Timeout <= 0 {
		return fmt.Errorf("nfslock: Timeout must be positive, got %v", c.Timeout)
	}
	return nil
}

func (c Config) logf(format string, args ...interface{}) {
	if c.Logger == nil {
		return
	}
	c.Logger.Printf(format, args...)
}
