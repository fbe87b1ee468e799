package main

import (
	"fmt"

	"github.com/nfslockd/nfslock/internal/lockconfig"
	"github.com/nfslockd/nfslock/internal/nfslock"
)

// lockDirArg returns the first positional argument, or "" if none was
// given (valid only when --config supplies the lock directory instead).
func lockDirArg(args []string) string {
	if len(args) == 0 {
		return ""
	}
	return args[0]
}

// newHandle builds a Handle for lockDir (the positional argument) from the
// shared --spin/--timeout/--host/--pid flags. If --config names a TOML
// file, its [lock] section supplies LockDir/SpinInterval/Timeout instead,
// and lockDir may be left empty.
func newHandle(lockDir string) (*nfslock.Handle, error) {
	cfg, err := resolveConfig(lockDir)
	if err != nil {
		return nil, err
	}

	h, err := nfslock.NewHandle(cfg)
	if err != nil {
		return nil, err
	}
	if flagHost != "" {
		h.SetHostname(flagHost)
	}
	if flagPID != "" {
		h.SetPID(flagPID)
	}
	return h, nil
}

func resolveConfig(lockDir string) (nfslock.Config, error) {
	if flagConfig != "" {
		sec, err := lockconfig.Load(flagConfig)
		if err != nil {
			return nfslock.Config{}, err
		}
		return sec.ToNFSLockConfig(), nil
	}

	if lockDir == "" {
		return nfslock.Config{}, fmt.Errorf("nfslockctl: a lock directory argument (or --config) is required")
	}
	return nfslock.Config{
		LockDir:      lockDir,
		SpinInterval: flagSpin,
		Timeout:      flagTimeout,
	}, nil
}
