package main

import (
	"github.com/spf13/cobra"

	"github.com/nfslockd/nfslock/internal/lockview"
)

func newWatchCmd() *cobra.Command {
	return &cobra.Command{
		Use:     "watch <lockdir>",
		GroupID: GroupMaintenance,
		Short:   "Live-refreshing table of the lock directory's known clients",
		Args:    cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			h, err := newHandle(lockDirArg(args))
			if err != nil {
				return err
			}
			return lockview.Run(h)
		},
	}
}
