package main

import (
	"fmt"

	"github.com/spf13/cobra"
)

func newReadCmd() *cobra.Command {
	return &cobra.Command{
		Use:     "read <lockdir>",
		GroupID: GroupLock,
		Short:   "Block until a read lock is granted, then hold it",
		Long: `Acquire a read lock in the given lock directory and hold it until this
process is killed. Any number of readers may hold the lock concurrently
as long as no writer holds it.`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runAcquire(cmd, lockDirArg(args), false)
		},
	}
}

func newWriteCmd() *cobra.Command {
	return &cobra.Command{
		Use:     "write <lockdir>",
		GroupID: GroupLock,
		Short:   "Block until a write lock is granted, then hold it",
		Long: `Acquire a write lock in the given lock directory and hold it until this
process is killed. At most one writer may hold the lock at a time. A
pending write request waits until every granted reader has released; new
readers may still join while any reader holds the lock.`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runAcquire(cmd, lockDirArg(args), true)
		},
	}
}

func runAcquire(cmd *cobra.Command, lockDir string, write bool) error {
	h, err := newHandle(lockDir)
	if err != nil {
		return err
	}

	mode := "read"
	acquire := h.AcquireRead
	if write {
		mode = "write"
		acquire = h.AcquireWrite
	}

	fmt.Fprintf(cmd.OutOrStdout(), "acquiring %s lock in %s...\n", mode, lockDir)
	if err := acquire(); err != nil {
		return err
	}
	fmt.Fprintf(cmd.OutOrStdout(), "granted %s lock; holding until killed\n", mode)

	select {}
}
