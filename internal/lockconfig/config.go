// Package lockconfig loads the TOML configuration file that names a shared
// lock directory and its timing parameters, mapping directly onto
// nfslock.Config.
package lockconfig

import (
	"fmt"
	"os"
	"time"

	"github.com/BurntSushi/toml"

	"github.com/nfslockd/nfslock/internal/nfslock"
)

// defaultSpinInterval and defaultTimeout match the values the original
// spec's worked examples use; operators with a busier lock directory or a
// flakier NFS mount should override both in the config file.
const (
	defaultSpinInterval = 50 * time.Millisecond
	defaultTimeout      = 30 * time.Second
)

// File is the on-disk TOML shape for a lock directory's configuration.
//
//	[lock]
//	dir = "/mnt/shared/.locks"
//	spin_ms = 50
//	timeout_sec = 30
type File struct {
	Lock Section `toml:"lock"`
}

// Section holds the fields a participant needs to agree on with every other
// participant of the same lock directory.
type Section struct {
	Dir        string `toml:"dir"`
	SpinMS     int    `toml:"spin_ms"`
	TimeoutSec int    `toml:"timeout_sec"`
}

// Default returns a Section with the package defaults applied, Dir empty.
func Default() Section {
	return Section{
		SpinMS:     int(defaultSpinInterval / time.Millisecond),
		TimeoutSec: int(defaultTimeout / time.Second),
	}
}

// Load reads and decodes a TOML config file at path, filling in any zero
// field with the package default before returning.
func Load(path string) (Section, error) {
	sec := Default()

	if _, err := os.Stat(path); os.IsNotExist(err) {
		return Section{}, fmt.Errorf("lockconfig: config file %q not found", path)
	}

	var f File
	if _, err := toml.DecodeFile(path, &f); err != nil {
		return Section{}, fmt.Errorf("lockconfig: parsing %q: %w", path, err)
	}

	if f.Lock.Dir != "" {
		sec.Dir = f.Lock.Dir
	}
	if f.Lock.SpinMS != 0 {
		sec.SpinMS = f.Lock.SpinMS
	}
	if f.Lock.TimeoutSec != 0 {
		sec.TimeoutSec = f.Lock.TimeoutSec
	}

	return sec, sec.validate()
}

func (s Section) validate() error {
	if s.Dir == "" {
		return fmt.Errorf("lockconfig: lock.dir must not be empty")
	}
	if s.SpinMS <= 0 {
		return fmt.Errorf("lockconfig: lock.spin_ms must be positive, got %d", s.SpinMS)
	}
	if s.TimeoutSec <= 0 {
		return fmt.Errorf("lockconfig: lock.timeout_sec must be positive, got %d", s.TimeoutSec)
	}
	return nil
}

// ToNFSLockConfig maps a decoded Section onto nfslock.Config. Logger is left
// nil; callers set it explicitly once they know where output should go.
func (s Section) ToNFSLockConfig() nfslock.Config {
	return nfslock.Config{
		LockDir:      s.Dir,
		SpinInterval: time.Duration(s.SpinMS) * time.Millisecond,
		Timeout:      time.Duration(s.TimeoutSec) * time.Second,
	}
}
