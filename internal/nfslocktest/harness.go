// Package nfslocktest is the test harness for exercising nfslock.Handle as
// if from multiple hosts: it hands out a fresh temporary lock directory per
// test and allocates synthetic (host, pid) identities that are unique even
// across goroutines racing in the same process and across parallel test
// binaries sharing a machine.
//
// This harness deliberately does not reuse any nfslock primitive to
// generate identities or guard its own bookkeeping file: it must not
// depend on the correctness of the code it exercises.
package nfslocktest

import (
	"context"
	"fmt"
	"path/filepath"
	"strconv"
	"testing"
	"time"

	"github.com/gofrs/flock"
	"github.com/google/uuid"

	"github.com/nfslockd/nfslock/internal/nfslock"
)

// Harness owns one lock directory and the identity counter for a single
// test. Each simulated client should get its own Client via NewClient.
type Harness struct {
	t       *testing.T
	lockDir string
	spin    time.Duration
	timeout time.Duration

	counterPath string
}

// New creates a harness with a fresh t.TempDir() as the shared lock
// directory. spin and timeout are forwarded to every client's nfslock.Config.
func New(t *testing.T, spin, timeout time.Duration) *Harness {
	t.Helper()
	dir := t.TempDir()
	return &Harness{
		t:           t,
		lockDir:     dir,
		spin:        spin,
		timeout:     timeout,
		counterPath: filepath.Join(dir, ".nfslocktest-counter.lock"),
	}
}

// LockDir returns the shared directory every Client in this harness
// coordinates over.
func (h *Harness) LockDir() string {
	return h.lockDir
}

// Client is one simulated participant: an nfslock.Handle bound to a
// synthetic identity, distinct from the real OS hostname/pid of the test
// process so multiple simulated clients in one goroutine don't collide.
type Client struct {
	Host string
	PID  string
	*nfslock.Handle
}

// NewClient allocates a synthetic identity, a random host suffix plus a pid
// from this harness's counter (guarded by a gofrs/flock-held file,
// independent of the hard-link gate under test), and returns a Handle
// already bound to it.
func (h *Harness) NewClient(hostPrefix string) *Client {
	h.t.Helper()

	n, err := h.nextCounter()
	if err != nil {
		h.t.Fatalf("nfslocktest: allocating identity: %v", err)
	}

	host := fmt.Sprintf("%s-%s", hostPrefix, uuid.NewString()[:8])
	pid := strconv.Itoa(n)

	handle, err := nfslock.NewHandle(nfslock.Config{
		LockDir:      h.lockDir,
		SpinInterval: h.spin,
		Timeout:      h.timeout,
	})
	if err != nil {
		h.t.Fatalf("nfslocktest: NewHandle: %v", err)
	}
	handle.SetHostname(host)
	handle.SetPID(pid)

	return &Client{Host: host, PID: pid, Handle: handle}
}

// nextCounter increments and returns the harness's allocation counter,
// kept in the harness's own lock directory and serialized with a real
// flock(2)-backed lock so concurrent NewClient calls on one harness never
// hand out the same number twice.
func (h *Harness) nextCounter() (int, error) {
	ctx, cancel := context.WithTimeout(context.Background(), h.timeout)
	defer cancel()

	fl := flock.New(h.counterPath + ".guard")
	locked, err := fl.TryLockContext(ctx, 5*time.Millisecond)
	if err != nil {
		return 0, err
	}
	if !locked {
		return 0, fmt.Errorf("nfslocktest: could not acquire counter guard")
	}
	defer fl.Unlock()

	n, err := readCounter(h.counterPath)
	if err != nil {
		return 0, err
	}
	n++
	if err := writeCounter(h.counterPath, n); err != nil {
		return 0, err
	}
	return n, nil
}
