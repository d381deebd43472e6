package tui

import (
	"time"

	"charm.land/bubbles/v2/key"
	"charm.land/bubbles/v2/list"
	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/kyupid/claude-sessions/internal/i18n"
	"github.com/kyupid/claude-sessions/internal/sessions"
)

// browserItem wraps a catalog entry for the picker list.
type browserItem struct {
	entry sessions.SavedEntry
}

func (i browserItem) Title() string {
	if i.entry.Summary != "" {
		return i.entry.Summary
	}
	if len(i.entry.ID) > 8 {
		return i.entry.ID[:8]
	}
	return i.entry.ID
}

func (i browserItem) Description() string {
	desc := shortenPath(homeRelative(i.entry.WorkingDir), dirBudget)
	desc += "  •  " + i18n.RelativeTime(i.entry.LastActivity)
	if i.entry.Live {
		desc += "  " + GetStyles().LiveMarker.Render("● "+i18n.T("browser.live", "live"))
	}
	return desc
}

func (i browserItem) FilterValue() string {
	return i.entry.Summary + " " + i.entry.WorkingDir + " " + i.entry.ID
}

// BrowserResult holds the outcome of the browser loop.
type BrowserResult struct {
	Selected  *sessions.SavedEntry
	Cancelled bool
}

// BrowserModel is the interactive saved-session browser. It renders the
// current snapshot, refreshes it on a timer (and on storage-change events
// when a watch channel is wired in), and keeps the cursor on the same
// session identifier across snapshot swaps.
type BrowserModel struct {
	list     list.Model
	refresh  func() sessions.Snapshot
	watch    <-chan struct{}
	interval time.Duration

	snapshot sessions.Snapshot
	result   BrowserResult
	quitting bool
	ready    bool
}

// NewBrowserModel creates a browser over the given refresh function.
// watch may be nil; storage-change refresh is then disabled and only the
// timer drives updates.
func NewBrowserModel(refresh func() sessions.Snapshot, watch <-chan struct{}, interval time.Duration) BrowserModel {
	delegate := list.NewDefaultDelegate()
	delegate.Styles.SelectedTitle = delegate.Styles.SelectedTitle.
		Foreground(lipgloss.Color("#9d7aff")).
		Bold(true)
	delegate.Styles.SelectedDesc = delegate.Styles.SelectedDesc.
		Foreground(lipgloss.Color("#666666"))

	l := list.New(nil, delegate, 0, 0)
	l.Title = i18n.T("browser.title", "Select a session to resume (/ filters)")
	l.SetShowStatusBar(false)
	l.SetShowHelp(true)
	l.SetFilteringEnabled(true)

	return BrowserModel{
		list:     l,
		refresh:  refresh,
		watch:    watch,
		interval: interval,
	}
}

// snapshotMsg carries a freshly computed catalog snapshot.
type snapshotMsg struct {
	snap sessions.Snapshot
}

// browserTickMsg triggers the periodic refresh.
type browserTickMsg struct{}

// storageChangedMsg reports a debounced change under the storage root.
type storageChangedMsg struct{}

func (m BrowserModel) Init() tea.Cmd {
	return tea.Batch(m.load(), m.tick(), m.awaitChange())
}

func (m BrowserModel) load() tea.Cmd {
	return func() tea.Msg {
		return snapshotMsg{snap: m.refresh()}
	}
}

func (m BrowserModel) tick() tea.Cmd {
	return tea.Tick(m.interval, func(time.Time) tea.Msg {
		return browserTickMsg{}
	})
}

func (m BrowserModel) awaitChange() tea.Cmd {
	if m.watch == nil {
		return nil
	}
	ch := m.watch
	return func() tea.Msg {
		if _, ok := <-ch; ok {
			return storageChangedMsg{}
		}
		return nil
	}
}

func (m BrowserModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	keys := defaultBrowserKeyMap()

	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.list.SetSize(msg.Width-4, msg.Height-2)
		m.ready = true
		return m, nil

	case snapshotMsg:
		return m, m.applySnapshot(msg.snap)

	case browserTickMsg:
		return m, tea.Batch(m.load(), m.tick())

	case storageChangedMsg:
		return m, tea.Batch(m.load(), m.awaitChange())

	case tea.KeyMsg:
		// The filter input owns the keyboard while active.
		if m.list.FilterState() == list.Filtering {
			break
		}

		switch {
		case key.Matches(msg, keys.Quit):
			m.result.Cancelled = true
			m.quitting = true
			return m, tea.Quit

		case key.Matches(msg, keys.Refresh):
			return m, m.load()

		case key.Matches(msg, keys.Select):
			if item, ok := m.list.SelectedItem().(browserItem); ok {
				entry := item.entry
				m.result.Selected = &entry
			}
			m.quitting = true
			return m, tea.Quit
		}
	}

	var cmd tea.Cmd
	m.list, cmd = m.list.Update(msg)
	return m, cmd
}

// applySnapshot swaps in a new snapshot without losing the cursor: the
// previously selected session identifier wins over the old position, and
// only when that session is gone does the cursor fall back to the old
// index, clamped to the new bounds. The returned command re-filters the
// new items when a filter is active.
func (m *BrowserModel) applySnapshot(snap sessions.Snapshot) tea.Cmd {
	var selectedID string
	if item, ok := m.list.SelectedItem().(browserItem); ok {
		selectedID = item.entry.ID
	}
	prev := m.list.Index()

	items := make([]list.Item, len(snap.Saved))
	for i, e := range snap.Saved {
		items[i] = browserItem{entry: e}
	}
	m.snapshot = snap
	cmd := m.list.SetItems(items)

	// While a filter is active the list's index space is the filtered
	// view, so a position in snap.Saved would land on the wrong visible
	// row. Leave the cursor to the list.
	if m.list.FilterState() != list.Unfiltered {
		return cmd
	}

	if selectedID != "" {
		for i, e := range snap.Saved {
			if e.ID == selectedID {
				m.list.Select(i)
				return cmd
			}
		}
	}

	if prev >= len(items) {
		prev = len(items) - 1
	}
	if prev < 0 {
		prev = 0
	}
	if len(items) > 0 {
		m.list.Select(prev)
	}
	return cmd
}

var browserStyle = lipgloss.NewStyle().Padding(1, 2)

func (m BrowserModel) View() tea.View {
	if !m.ready {
		v := tea.NewView("Loading sessions...")
		v.AltScreen = true
		return v
	}
	if m.quitting {
		return tea.NewView("")
	}

	v := tea.NewView(browserStyle.Render(m.list.View()))
	v.AltScreen = true
	return v
}

// Result returns the browser result after the program exits.
func (m BrowserModel) Result() BrowserResult {
	return m.result
}

// RunBrowser runs the browser and returns the selected session, or nil when
// the user cancelled.
func RunBrowser(refresh func() sessions.Snapshot, watch <-chan struct{}, interval time.Duration, opts ...tea.ProgramOption) (*sessions.SavedEntry, error) {
	p := tea.NewProgram(NewBrowserModel(refresh, watch, interval), opts...)
	finalModel, err := p.Run()
	if err != nil {
		return nil, err
	}

	result := finalModel.(BrowserModel).Result()
	if result.Cancelled {
		return nil, nil
	}
	return result.Selected, nil
}
