package nfslock

import (
	"os"
	"time"
)

// gate is the exclusive-writer mutex over the state file, implemented as
// an atomic hard-link race: exactly one caller's os.Link onto lockfile can
// succeed, and that caller owns the gate until unlock runs.
type gate struct {
	paths   paths
	spin    time.Duration
	timeout time.Duration
	logf    func(format string, args ...interface{})
}

func newGate(p paths, spin, timeout time.Duration, logf func(string, ...interface{})) *gate {
	return &gate{paths: p, spin: spin, timeout: timeout, logf: logf}
}

// lock blocks until this gate's marker is hard-linked onto lockfile, or
// until timeout elapses with lockfile still owned by some other link,
// in which case it returns ErrTimedOut.
func (g *gate) lock() error {
	f, err := os.OpenFile(g.paths.marker, os.O_CREATE|os.O_WRONLY|os.O_TRUNC, 0o666)
	if err != nil {
		return wrapIO("gate.lock", err)
	}
	if err := f.Close(); err != nil {
		return wrapIO("gate.lock", err)
	}

	deadline := time.Now().Add(g.timeout)
	for {
		err := os.Link(g.paths.marker, g.paths.lockfile)
		if err == nil {
			if err := verifyLinked(g.paths.marker); err != nil {
				return wrapIO("gate.lock", err)
			}
			return nil
		}
		if !os.IsExist(err) {
			return wrapIO("gate.lock", err)
		}

		if time.Now().After(deadline) {
			g.logf("nfslock: gate timed out waiting for %s", g.paths.lockfile)
			return wrapTimedOut("gate.lock")
		}
		time.Sleep(g.spin)
	}
}

// unlock removes lockfile and the private marker, in that order, attempting
// both even if the first fails. A crash between the two removals leaves
// lockfile absent (gate free) and a stray marker, which is harmless.
func (g *gate) unlock() error {
	err1 := removeIfExists(g.paths.lockfile)
	err2 := removeIfExists(g.paths.marker)
	if err1 != nil {
		return wrapIO("gate.unlock", err1)
	}
	if err2 != nil {
		return wrapIO("gate.unlock", err2)
	}
	return nil
}

func removeIfExists(path string) error {
	if err := os.Remove(path); err != nil && !os.IsNotExist(err) {
		return err
	}
	return nil
}
