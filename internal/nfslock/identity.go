package nfslock

import (
	"os"
	"strconv"
	"strings"
)

// Identity is the (host, pid) pair that names one participant's entries in
// the state file. Every ASCII space is replaced with '_' so the state file
// stays whitespace-tokenizable (spec grammar: five space-separated fields).
type Identity struct {
	Host string
	PID  string
}

// normalizeToken replaces spaces with underscores so a token never breaks
// the state file's space-delimited grammar.
func normalizeToken(s string) string {
	return strings.ReplaceAll(s, " ", "_")
}

// defaultIdentity resolves the OS hostname and process id, normalized.
func defaultIdentity() Identity {
	host, err := os.Hostname()
	if err != nil || host == "" {
		host = "unknown-host"
	}
	return Identity{
		Host: normalizeToken(host),
		PID:  strconv.Itoa(os.Getpid()),
	}
}

// Equal reports whether two identities name the same participant.
func (id Identity) Equal(other Identity) bool {
	return id.Host == other.Host && id.PID == other.PID
}
