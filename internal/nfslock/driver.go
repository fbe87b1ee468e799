package nfslock

import "time"

// Handle is the caller-facing entry point: one value per participating
// process identity, composing the exclusive gate, the state codec, and the
// request engine behind the three public operations. Not safe for
// concurrent use by multiple goroutines without external serialization —
// the protocol's concurrency model is cross-process, not cross-goroutine.
type Handle struct {
	cfg   Config
	id    Identity
	paths paths
}

// NewHandle validates cfg and returns a Handle bound to the default
// process identity (OS hostname and pid). Call SetHostname/SetPID before
// the first Acquire/Release call to override it.
func NewHandle(cfg Config) (*Handle, error) {
	if err := cfg.validate(); err != nil {
		return nil, err
	}
	id := defaultIdentity()
	return &Handle{
		cfg:   cfg,
		id:    id,
		paths: composePaths(cfg.LockDir, id),
	}, nil
}

// SetHostname overrides the host component of this handle's identity.
func (h *Handle) SetHostname(host string) {
	if host == "" {
		return
	}
	h.id.Host = normalizeToken(host)
	h.paths = composePaths(h.cfg.LockDir, h.id)
}

// SetPID overrides the pid component of this handle's identity.
func (h *Handle) SetPID(pid string) {
	if pid == "" {
		return
	}
	h.id.PID = normalizeToken(pid)
	h.paths = composePaths(h.cfg.LockDir, h.id)
}

// AcquireRead blocks until a read lock is granted to this handle's
// identity. Returns ErrAlreadyLocked if the identity already holds or has
// requested an incompatible lock.
func (h *Handle) AcquireRead() error {
	return h.acquire(ModeRead)
}

// AcquireWrite blocks until a write lock is granted to this handle's
// identity. Returns ErrAlreadyLocked if the identity already holds or has
// requested an incompatible lock.
func (h *Handle) AcquireWrite() error {
	return h.acquire(ModeWrite)
}

func (h *Handle) acquire(mode Mode) error {
	g := newGate(h.paths, h.cfg.SpinInterval, h.cfg.Timeout, h.cfg.logf)
	for {
		if err := g.lock(); err != nil {
			return err
		}

		states, gcDirty, loadErr := loadState(h.paths.state, h.cfg.Timeout, time.Now())
		if loadErr != nil {
			if unlockErr := g.unlock(); unlockErr != nil {
				h.cfg.logf("nfslock: gate unlock after load failure: %v", unlockErr)
			}
			return loadErr
		}

		states, outcome, reqDirty, reqErr := requestEntry(states, mode, h.id, time.Now())

		var dumpErr error
		if reqErr == nil && (gcDirty || reqDirty) {
			dumpErr = dumpState(h.paths.state, states)
		}

		unlockErr := g.unlock()

		if reqErr != nil {
			return reqErr
		}
		if dumpErr != nil {
			return dumpErr
		}
		if unlockErr != nil {
			return unlockErr
		}

		if outcome == OutcomeGranted {
			return nil
		}

		h.cfg.logf("nfslock: %s pending for %s.%s, retrying", mode, h.id.Host, h.id.PID)
		time.Sleep(h.cfg.SpinInterval)
	}
}

// Release releases whatever lock this handle's identity currently holds.
// Returns ErrAlreadyLocked if the identity holds nothing.
func (h *Handle) Release() error {
	g := newGate(h.paths, h.cfg.SpinInterval, h.cfg.Timeout, h.cfg.logf)
	if err := g.lock(); err != nil {
		return err
	}

	states, _, loadErr := loadState(h.paths.state, h.cfg.Timeout, time.Now())
	if loadErr != nil {
		if unlockErr := g.unlock(); unlockErr != nil {
			h.cfg.logf("nfslock: gate unlock after load failure: %v", unlockErr)
		}
		return loadErr
	}

	states, remErr := removeEntry(states, h.id)

	var dumpErr error
	if remErr == nil {
		dumpErr = dumpState(h.paths.state, states)
	}

	unlockErr := g.unlock()

	if remErr != nil {
		return remErr
	}
	if dumpErr != nil {
		return dumpErr
	}
	return unlockErr
}

// Snapshot returns every currently known entry in the shared state file.
// Unlike AcquireRead/AcquireWrite/Release it takes the gate only to get a
// consistent read, not to mutate anything; a stale-entry GC triggered by
// the read is dumped like any other load, same as every other operation.
// Intended for the status/watch subcommands and similar observability
// use, not as a basis for further mutation (the snapshot may be out of
// date the instant it's returned).
func (h *Handle) Snapshot() ([]ClientState, error) {
	g := newGate(h.paths, h.cfg.SpinInterval, h.cfg.Timeout, h.cfg.logf)
	if err := g.lock(); err != nil {
		return nil, err
	}

	states, dirty, loadErr := loadState(h.paths.state, h.cfg.Timeout, time.Now())
	if loadErr != nil {
		if unlockErr := g.unlock(); unlockErr != nil {
			h.cfg.logf("nfslock: gate unlock after load failure: %v", unlockErr)
		}
		return nil, loadErr
	}

	var dumpErr error
	if dirty {
		dumpErr = dumpState(h.paths.state, states)
	}

	unlockErr := g.unlock()

	if dumpErr != nil {
		return nil, dumpErr
	}
	if unlockErr != nil {
		return nil, unlockErr
	}

	out := make([]ClientState, len(states))
	copy(out, states)
	return out, nil
}
