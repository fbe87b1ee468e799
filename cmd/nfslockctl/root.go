package main

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"
)

// Command groups, mirroring the teacher's GroupID convention for cobra's
// built-in grouped help output.
const (
	GroupLock        = "lock"
	GroupMaintenance = "maintenance"
)

// Flags shared by every subcommand that talks to a lock directory. A
// positional <lockdir> argument names the directory and --spin and --timeout
// set its timing; when --config is set, the file's [lock] section (with
// internal/lockconfig's defaults for missing fields) is used instead.
var (
	flagConfig  string
	flagSpin    time.Duration
	flagTimeout time.Duration
	flagHost    string
	flagPID     string
)

var rootCmd = &cobra.Command{
	Use:   "nfslockctl",
	Short: "Operate on an nfslock shared lock directory",
	Long: `nfslockctl acquires, releases, inspects, and maintains a reader/writer
advisory lock directory shared across hosts over a common network
filesystem.

Every subcommand takes a lock directory path and operates on the three
well-known files inside it (state, lockfile, and this process's private
marker).`,
	RunE: requireSubcommand,
}

func init() {
	rootCmd.AddGroup(
		&cobra.Group{ID: GroupLock, Title: "Lock commands:"},
		&cobra.Group{ID: GroupMaintenance, Title: "Maintenance commands:"},
	)

	rootCmd.PersistentFlags().StringVar(&flagConfig, "config", "", "TOML config file supplying [lock] dir/spin_ms/timeout_sec (overrides the positional lockdir and the flags below when set)")
	rootCmd.PersistentFlags().DurationVar(&flagSpin, "spin", 50*time.Millisecond, "delay between gate/request retries")
	rootCmd.PersistentFlags().DurationVar(&flagTimeout, "timeout", 30*time.Second, "gate-acquisition bound and stale-entry threshold")
	rootCmd.PersistentFlags().StringVar(&flagHost, "host", "", "override this process's host identity")
	rootCmd.PersistentFlags().StringVar(&flagPID, "pid", "", "override this process's pid identity")

	rootCmd.AddCommand(
		newReadCmd(),
		newWriteCmd(),
		newReleaseCmd(),
		newStatusCmd(),
		newGCCmd(),
		newWatchCmd(),
	)
}

// requireSubcommand is RunE for any command that exists only to group
// subcommands; invoking it with no arguments prints help, and with an
// unknown argument it fails.
func requireSubcommand(cmd *cobra.Command, args []string) error {
	if len(args) == 0 {
		return cmd.Help()
	}
	return fmt.Errorf("unknown subcommand %q for %q", args[0], cmd.CommandPath())
}
