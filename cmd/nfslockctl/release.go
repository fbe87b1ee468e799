package main

import (
	"fmt"

	"github.com/spf13/cobra"
)

func newReleaseCmd() *cobra.Command {
	return &cobra.Command{
		Use:     "release <lockdir>",
		GroupID: GroupLock,
		Short:   "Release this identity's held or pending lock",
		Args:    cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			h, err := newHandle(lockDirArg(args))
			if err != nil {
				return err
			}
			if err := h.Release(); err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), "released")
			return nil
		},
	}
}
