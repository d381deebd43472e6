package tui

import (
	"strconv"
	"strings"
	"time"

	"charm.land/bubbles/v2/key"
	tea "charm.land/bubbletea/v2"

	"github.com/kyupid/claude-sessions/internal/i18n"
	"github.com/kyupid/claude-sessions/internal/sessions"
)

// MonitorModel shows the live-process view: one row per running assistant
// process, re-scanned on a fixed interval.
type MonitorModel struct {
	scan     func() ([]sessions.LiveSession, error)
	interval time.Duration

	width, height int
	live          []sessions.LiveSession
	err           error
	updated       time.Time
	ready         bool
}

// NewMonitorModel creates a monitor over the given scan function.
func NewMonitorModel(scan func() ([]sessions.LiveSession, error), interval time.Duration) MonitorModel {
	return MonitorModel{scan: scan, interval: interval}
}

// monitorDataMsg holds the result of one process scan.
type monitorDataMsg struct {
	live []sessions.LiveSession
	err  error
	at   time.Time
}

// monitorTickMsg triggers a periodic re-scan.
type monitorTickMsg struct{}

func (m MonitorModel) Init() tea.Cmd {
	return tea.Batch(m.load(), m.tick())
}

func (m MonitorModel) load() tea.Cmd {
	return func() tea.Msg {
		live, err := m.scan()
		return monitorDataMsg{live: live, err: err, at: time.Now()}
	}
}

func (m MonitorModel) tick() tea.Cmd {
	return tea.Tick(m.interval, func(time.Time) tea.Msg {
		return monitorTickMsg{}
	})
}

func (m MonitorModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	keys := defaultMonitorKeyMap()

	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.ready = true
		return m, nil

	case monitorDataMsg:
		m.live = msg.live
		m.err = msg.err
		m.updated = msg.at
		return m, nil

	case monitorTickMsg:
		return m, tea.Batch(m.load(), m.tick())

	case tea.KeyMsg:
		switch {
		case key.Matches(msg, keys.Quit):
			return m, tea.Quit
		case key.Matches(msg, keys.Refresh):
			return m, m.load()
		}
	}

	return m, nil
}

func (m MonitorModel) View() tea.View {
	if !m.ready {
		v := tea.NewView("Loading...")
		v.AltScreen = true
		return v
	}

	s := GetStyles()

	title := i18n.T("monitor.title", "Claude Session Monitor")
	title += " (" + i18n.Tn("monitor.active", "{{.Count}} active", "{{.Count}} active", len(m.live)) + ")"

	var b strings.Builder
	b.WriteString(s.Title.Render(title))
	b.WriteString("\n\n")
	b.WriteString(m.renderTable())
	b.WriteString("\n")
	b.WriteString(s.Footer.Render(i18n.Tf("monitor.updated", "Updated: %s | Press q to exit", m.updated.Format("15:04:05"))))

	frame := s.Frame
	if m.width > 4 {
		frame = frame.Width(m.width - 4)
	}

	v := tea.NewView(frame.Render(b.String()))
	v.AltScreen = true
	return v
}

// Column widths of the monitor table. Directory dominates; the rest are
// fixed-format values.
const (
	colPID  = 8
	colDir  = dirBudget + 2
	colTTY  = 12
	colTime = 10
)

func (m MonitorModel) renderTable() string {
	s := GetStyles()

	if m.err != nil {
		return s.StateBad.Render("Error: "+m.err.Error()) + "\n"
	}
	if len(m.live) == 0 {
		return s.Muted.Render(i18n.T("monitor.empty", "No active claude sessions")) + "\n"
	}

	var b strings.Builder
	b.WriteString(s.Header.Render(
		padCell(i18n.T("monitor.col.pid", "PID"), colPID) +
			padCell(i18n.T("monitor.col.directory", "Directory"), colDir) +
			padCell(i18n.T("monitor.col.terminal", "Terminal"), colTTY) +
			padCell(i18n.T("monitor.col.uptime", "Uptime"), colTime) +
			i18n.T("monitor.col.status", "Status")))
	b.WriteString("\n")

	for _, p := range m.live {
		dir := shortenPath(homeRelative(p.WorkingDir), dirBudget)
		if dir == "" {
			dir = "-"
		}
		b.WriteString(padCell(strconv.Itoa(p.PID), colPID))
		b.WriteString(padCell(dir, colDir))
		b.WriteString(padCell(terminalLabel(p.TTY), colTTY))
		b.WriteString(padCell(formatUptime(time.Since(p.StartedAt)), colTime))
		b.WriteString(stateLabel(p.State))
		b.WriteString("\n")
	}
	return b.String()
}

// RunMonitor runs the monitor page until the user quits.
func RunMonitor(scan func() ([]sessions.LiveSession, error), interval time.Duration, opts ...tea.ProgramOption) error {
	p := tea.NewProgram(NewMonitorModel(scan, interval), opts...)
	_, err := p.Run()
	return err
}
