package main

import (
	"fmt"
	"io"
	"os"
	"time"

	"github.com/charmbracelet/lipgloss"
	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/nfslockd/nfslock/internal/nfslock"
)

func newStatusCmd() *cobra.Command {
	return &cobra.Command{
		Use:     "status <lockdir>",
		GroupID: GroupMaintenance,
		Short:   "Print the decoded state file once",
		Args:    cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			h, err := newHandle(lockDirArg(args))
			if err != nil {
				return err
			}
			states, err := h.Snapshot()
			if err != nil {
				return err
			}
			printStates(cmd.OutOrStdout(), states)
			return nil
		},
	}
}

var headerStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("205"))

func printStates(w io.Writer, states []nfslock.ClientState) {
	colorful := term.IsTerminal(int(os.Stdout.Fd()))

	header := fmt.Sprintf("%-24s %-8s %-6s %-8s %s", "HOST", "PID", "MODE", "STATUS", "AGE")
	if colorful {
		header = headerStyle.Render(header)
	}
	fmt.Fprintln(w, header)

	if len(states) == 0 {
		fmt.Fprintln(w, "(no known clients)")
		return
	}

	now := time.Now().Unix()
	for _, s := range states {
		age := time.Duration((now - s.Time) * int64(time.Second))
		fmt.Fprintf(w, "%-24s %-8s %-6s %-8s %s\n", s.Host, s.PID, s.Mode, s.Status, age)
	}
}
