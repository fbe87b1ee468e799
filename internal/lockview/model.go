// Package lockview renders a lock directory's decoded state file as a
// live-refreshing table, for the "nfslockctl watch" operator command.
package lockview

import (
	"time"

	"github.com/charmbracelet/bubbles/table"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/nfslockd/nfslock/internal/nfslock"
)

// pollInterval is how often the model re-snapshots the lock directory.
const pollInterval = 500 * time.Millisecond

// Model is the bubbletea model for the live lock-directory viewer.
type Model struct {
	handle   *nfslock.Handle
	table    table.Model
	lastErr  error
	quitting bool
}

// New creates a viewer model polling handle's lock directory.
func New(handle *nfslock.Handle) Model {
	cols := []table.Column{
		{Title: "HOST", Width: 20},
		{Title: "PID", Width: 8},
		{Title: "MODE", Width: 6},
		{Title: "STATUS", Width: 8},
		{Title: "AGE", Width: 10},
	}

	t := table.New(
		table.WithColumns(cols),
		table.WithFocused(false),
		table.WithHeight(12),
	)
	t.SetStyles(tableStyles())

	return Model{handle: handle, table: t}
}

// Init kicks off the first snapshot and the refresh ticker.
func (m Model) Init() tea.Cmd {
	return tea.Batch(m.pollCmd(), refreshTick())
}

type refreshMsg struct{}

func refreshTick() tea.Cmd {
	return tea.Tick(pollInterval, func(time.Time) tea.Msg { return refreshMsg{} })
}

type snapshotMsg struct {
	states []nfslock.ClientState
	err    error
}

// pollCmd snapshots the lock directory in a tea.Cmd so Update never blocks
// on filesystem I/O directly.
func (m Model) pollCmd() tea.Cmd {
	return func() tea.Msg {
		states, err := m.handle.Snapshot()
		return snapshotMsg{states: states, err: err}
	}
}

// Update handles messages and refreshes the table on each tick.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "q", "ctrl+c", "esc":
			m.quitting = true
			return m, tea.Quit
		}

	case tea.WindowSizeMsg:
		m.table.SetHeight(msg.Height - 6)

	case refreshMsg:
		return m, tea.Batch(m.pollCmd(), refreshTick())

	case snapshotMsg:
		m.lastErr = msg.err
		if msg.err == nil {
			m.table.SetRows(rowsFromStates(msg.states))
		}
		return m, nil
	}

	var cmd tea.Cmd
	m.table, cmd = m.table.Update(msg)
	return m, cmd
}

func rowsFromStates(states []nfslock.ClientState) []table.Row {
	now := time.Now().Unix()
	rows := make([]table.Row, 0, len(states))
	for _, s := range states {
		rows = append(rows, table.Row{
			s.Host,
			s.PID,
			s.Mode.String(),
			s.Status.String(),
			ageString(now - s.Time),
		})
	}
	return rows
}

func ageString(seconds int64) string {
	if seconds < 0 {
		seconds = 0
	}
	return time.Duration(seconds * int64(time.Second)).String()
}
