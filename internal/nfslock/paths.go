package nfslock

import "path/filepath"

// paths are the three well-known filenames under a lock directory, cached
// so repeated calls don't re-join path components every time.
type paths struct {
	state    string
	lockfile string
	marker   string
}

// composePaths builds the three well-known paths from a lock directory and
// a participant identity. Recomputed whenever LockDir, host, or pid change.
func composePaths(lockDir string, id Identity) paths {
	return paths{
		state:    filepath.Join(lockDir, "state"),
		lockfile: filepath.Join(lockDir, "lockfile"),
		marker:   filepath.Join(lockDir, id.Host+"."+id.PID),
	}
}
