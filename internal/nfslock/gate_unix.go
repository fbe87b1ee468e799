//go:build unix || darwin || linux

package nfslock

import (
	"fmt"

	"golang.org/x/sys/unix"
)

// verifyLinked stats the marker's inode after a successful os.Link and
// asserts its hard-link count reflects the new name: nlink >= 2, one for
// the marker and one for lockfile. A Go rewrite gets this for free from
// link(2)'s own atomicity; this check only makes the invariant explicit.
func verifyLinked(markerPath string) error {
	var st unix.Stat_t
	if err := unix.Stat(markerPath, &st); err != nil {
		return fmt.Errorf("stat marker after link: %w", err)
	}
	if st.Nlink < 2 {
		return fmt.Errorf("marker has nlink=%d after link, want >= 2", st.Nlink)
	}
	return nil
}
