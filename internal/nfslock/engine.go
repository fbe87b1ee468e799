package nfslock

import "time"

// Outcome is the result of a request operation against the current state.
type Outcome int

const (
	OutcomePending Outcome = iota
	OutcomeGranted
)

// grantedEntry returns a pointer to the first GRANTED entry in states, or
// nil. Several readers may be granted at once, but a granted writer is the
// only granted entry, so the first one found decides admissibility.
func grantedEntry(states []ClientState) *ClientState {
	for i := range states {
		if states[i].Status == StatusGranted {
			return &states[i]
		}
	}
	return nil
}

// admissible reports whether a request for mode may be granted given the
// entry currently GRANTED (or nil if none is).
func admissible(mode Mode, granted *ClientState) bool {
	if granted == nil {
		return true
	}
	return mode == ModeRead && granted.Mode == ModeRead
}

func findEntry(states []ClientState, id Identity) int {
	for i := range states {
		if states[i].sameIdentity(id) {
			return i
		}
	}
	return -1
}

// requestEntry applies spec §4.4 "request" to states for identity id
// requesting mode, returning the (possibly reallocated) slice, the
// resulting outcome, and whether states now differs from its on-disk
// image.
func requestEntry(states []ClientState, mode Mode, id Identity, now time.Time) ([]ClientState, Outcome, bool, error) {
	wantGranted := admissible(mode, grantedEntry(states))

	if idx := findEntry(states, id); idx >= 0 {
		entry := &states[idx]
		if entry.Status == StatusGranted || entry.Mode != mode {
			return states, OutcomePending, false, wrapAlreadyLocked("engine.request")
		}

		if wantGranted {
			entry.Status = StatusGranted
			entry.Time = now.Unix()
			return states, OutcomeGranted, true, nil
		}

		dirty := false
		if entry.Time != now.Unix() {
			entry.Time = now.Unix()
			dirty = true
		}
		return states, OutcomePending, dirty, nil
	}

	status, outcome := StatusPending, OutcomePending
	if wantGranted {
		status, outcome = StatusGranted, OutcomeGranted
	}
	states = append(states, ClientState{
		Host:   id.Host,
		PID:    id.PID,
		Mode:   mode,
		Status: status,
		Time:   now.Unix(),
	})
	return states, outcome, true, nil
}

// removeEntry applies spec §4.4 "remove" (release), deleting id's entry
// while preserving the relative order of the rest.
func removeEntry(states []ClientState, id Identity) ([]ClientState, error) {
	idx := findEntry(states, id)
	if idx < 0 {
		return states, wrapAlreadyLocked("engine.remove")
	}
	return append(states[:idx], states[idx+1:]...), nil
}
