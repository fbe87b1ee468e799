package nfslock

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	interr "github.com/nfslockd/nfslock/internal/errors"
)

// Mode is the kind of lock a ClientState entry describes.
type Mode int

const (
	ModeRead Mode = iota
	ModeWrite
)

func (m Mode) String() string {
	if m == ModeWrite {
		return "write"
	}
	return "read"
}

func (m Mode) code() string {
	if m == ModeWrite {
		return "W"
	}
	return "R"
}

func parseMode(tok string) (Mode, error) {
	switch tok {
	case "R":
		return ModeRead, nil
	case "W":
		return ModeWrite, nil
	default:
		return 0, fmt.Errorf("nfslock: malformed mode field %q", tok)
	}
}

// Status is whether a ClientState entry currently holds its lock or is
// waiting to.
type Status int

const (
	StatusPending Status = iota
	StatusGranted
)

func (s Status) String() string {
	if s == StatusGranted {
		return "granted"
	}
	return "pending"
}

func (s Status) code() string {
	if s == StatusGranted {
		return "G"
	}
	return "P"
}

func parseStatus(tok string) (Status, error) {
	switch tok {
	case "G":
		return StatusGranted, nil
	case "P":
		return StatusPending, nil
	default:
		return 0, fmt.Errorf("nfslock: malformed status field %q", tok)
	}
}

// ClientState is one participant's lock request or grant, one line in the
// state file.
type ClientState struct {
	Host   string
	PID    string
	Mode   Mode
	Status Status
	Time   int64 // unix seconds, UTC
}

// sameIdentity reports whether this entry belongs to id.
func (c ClientState) sameIdentity(id Identity) bool {
	return c.Host == id.Host && c.PID == id.PID
}

// loadState reads the state file at path, dropping any entry whose Time has
// aged past timeout relative to now. The returned bool is true if loading
// changed the in-memory state relative to the on-disk copy (so a subsequent
// dump is not elidable). A missing file parses as an empty, non-dirty state.
func loadState(path string, timeout time.Duration, now time.Time) ([]ClientState, bool, error) {
	// A missing file is not retried (it's not a transient NFS hiccup); any
	// other read failure gets a few spaced attempts before it surfaces,
	// since a shared NFS mount can blip (ESTALE, a momentary server stall)
	// without that meaning the lock directory is actually unusable.
	var data []byte
	if err := interr.WithFileIORetry(func() error {
		var readErr error
		data, readErr = os.ReadFile(path)
		if readErr == nil || os.IsNotExist(readErr) {
			return nil
		}
		return interr.Transient("state.Load", readErr)
	}); err != nil {
		return nil, false, wrapIO("state.Load", err)
	}

	tokens := strings.Fields(string(data))
	if len(tokens)%5 != 0 {
		return nil, false, interr.Permanent("state.Load", fmt.Errorf("nfslock: state file has %d tokens, not a multiple of 5", len(tokens)))
	}

	cutoff := now.Add(-timeout).Unix()
	dirty := false
	entries := make([]ClientState, 0, len(tokens)/5)
	for i := 0; i < len(tokens); i += 5 {
		mode, err := parseMode(tokens[i+2])
		if err != nil {
			return nil, false, interr.Permanent("state.Load", err)
		}
		status, err := parseStatus(tokens[i+3])
		if err != nil {
			return nil, false, interr.Permanent("state.Load", err)
		}
		t, err := strconv.ParseInt(tokens[i+4], 10, 64)
		if err != nil {
			return nil, false, interr.Permanent("state.Load", fmt.Errorf("nfslock: malformed time field %q: %w", tokens[i+4], err))
		}

		if t < cutoff {
			dirty = true
			continue
		}

		entries = append(entries, ClientState{
			Host:   tokens[i],
			PID:    tokens[i+1],
			Mode:   mode,
			Status: status,
			Time:   t,
		})
	}

	return entries, dirty, nil
}

// dumpState writes path by truncate-and-replace, one line per entry in
// order, five space-separated fields per §6 grammar.
func dumpState(path string, entries []ClientState) error {
	var b strings.Builder
	for _, e := range entries {
		fmt.Fprintf(&b, "%s %s %s %s %d\n", e.Host, e.PID, e.Mode.code(), e.Status.code(), e.Time)
	}
	body := []byte(b.String())

	if err := interr.WithFileIORetry(func() error {
		writeErr := os.WriteFile(path, body, 0o666)
		if writeErr == nil {
			return nil
		}
		return interr.Transient("state.Dump", writeErr)
	}); err != nil {
		return wrapIO("state.Dump", err)
	}
	return nil
}
