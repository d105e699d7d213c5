package tui

import (
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/table"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/tui-wordclock/internal/core"
	"github.com/vovakirdan/tui-wordclock/internal/storage"
)

// History layout constants
const (
	historyMinPhraseWidth = 24  // Narrowest phrase column
	historyMaxPhraseWidth = 40  // Widest phrase column
	maxTransitions        = 200 // Max transitions to load
)

// HistoryKeyMap defines the key bindings for the history view.
type HistoryKeyMap struct {
	Up      key.Binding
	Down    key.Binding
	Refresh key.Binding
	Quit    key.Binding
}

// ShortHelp returns key bindings for the short help view.
func (k HistoryKeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Up, k.Down, k.Refresh, k.Quit}
}

// FullHelp returns key bindings for the full help view.
func (k HistoryKeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Up, k.Down},
		{k.Refresh, k.Quit},
	}
}

// DefaultHistoryKeyMap returns default key bindings.
func DefaultHistoryKeyMap() HistoryKeyMap {
	return HistoryKeyMap{
		Up: key.NewBinding(
			key.WithKeys("up", "k"),
			key.WithHelp("up/k", "scroll up"),
		),
		Down: key.NewBinding(
			key.WithKeys("down", "j"),
			key.WithHelp("down/j", "scroll down"),
		),
		Refresh: key.NewBinding(
			key.WithKeys("r"),
			key.WithHelp("r", "refresh"),
		),
		Quit: key.NewBinding(
			key.WithKeys("q", "esc", "ctrl+c"),
			key.WithHelp("q", "quit"),
		),
	}
}

// TransitionSource is the part of the store the history view reads.
type TransitionSource interface {
	RecentTransitions(limit int) ([]storage.Transition, error)
}

// HistoryModel is the Bubble Tea model for the phrase history screen.
type HistoryModel struct {
	source      TransitionSource
	transitions []storage.Transition
	loadErr     error
	loc         *time.Location // Zone times are shown in
	table       table.Model
	help        help.Model
	keys        HistoryKeyMap
	theme       Theme
	width       int
	height      int
	quitting    bool
}

// NewHistoryModel creates a new history model and loads the transitions.
// Times are shown in loc; nil means local time.
func NewHistoryModel(source TransitionSource, loc *time.Location, width, height int) HistoryModel {
	if loc == nil {
		loc = time.Local
	}
	m := HistoryModel{
		source: source,
		loc:    loc,
		keys:   DefaultHistoryKeyMap(),
		help:   help.New(),
		theme:  DefaultTheme(),
		width:  width,
		height: height,
	}

	m.table = m.createTable()
	m.load()
	return m
}

// createTable creates a new table sized for the current window.
func (m *HistoryModel) createTable() table.Model {
	phraseWidth := core.Clamp(m.width-40, historyMinPhraseWidth, historyMaxPhraseWidth)
	columns := []table.Column{
		{Title: "#", Width: 5},
		{Title: "When", Width: 14},
		{Title: "Phrase", Width: phraseWidth},
		{Title: "Slot", Width: 7},
	}

	t := table.New(
		table.WithColumns(columns),
		table.WithFocused(true),
		table.WithHeight(core.Max(m.height-8, 3)), // Leave room for title, help, and margins
	)

	s := table.DefaultStyles()
	s.Header = m.theme.TableHeader
	s.Selected = m.theme.TableSelected
	t.SetStyles(s)

	return t
}

// load reads the most recent transitions into the table.
func (m *HistoryModel) load() {
	if m.source == nil {
		m.transitions = nil
		m.updateTableRows()
		return
	}

	m.transitions, m.loadErr = m.source.RecentTransitions(maxTransitions)
	m.updateTableRows()
}

// updateTableRows updates the table with the loaded transitions.
func (m *HistoryModel) updateTableRows() {
	rows := make([]table.Row, len(m.transitions))
	for i, t := range m.transitions {
		rows[i] = table.Row{
			fmt.Sprintf("%d", t.ID),
			t.CreatedAt.In(m.loc).Format("Jan 02 15:04"),
			t.Phrase,
			fmt.Sprintf("%02d/%02d", t.HourIdx, t.MinuteIdx),
		}
	}
	m.table.SetRows(rows)
	m.table.GotoTop()
}

// Init initializes the history model.
func (m HistoryModel) Init() tea.Cmd {
	return nil
}

// Update handles messages for the history view.
func (m HistoryModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmd tea.Cmd

	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch {
		case key.Matches(msg, m.keys.Quit):
			m.quitting = true
			return m, tea.Quit

		case key.Matches(msg, m.keys.Refresh):
			m.load()
			return m, nil

		case key.Matches(msg, m.keys.Up), key.Matches(msg, m.keys.Down):
			// Pass to table for scrolling
			m.table, cmd = m.table.Update(msg)
			return m, cmd
		}

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.table = m.createTable()
		m.updateTableRows()
		m.help.Width = msg.Width
		return m, nil
	}

	m.table, cmd = m.table.Update(msg)
	return m, cmd
}

// View renders the history view.
func (m HistoryModel) View() string {
	if m.quitting {
		return ""
	}

	var b strings.Builder

	title := fmt.Sprintf("PHRASE HISTORY - %d shown", len(m.transitions))
	b.WriteString(m.theme.Title.Render(centerText(title, m.width)))
	b.WriteString("\n\n")

	b.WriteString(centerText(m.theme.Panel.Render(m.renderTableContent()), m.width))

	b.WriteString("\n")
	b.WriteString(m.theme.Help.Render(m.help.View(m.keys)))

	return b.String()
}

// renderTableContent renders the table or an empty message.
func (m HistoryModel) renderTableContent() string {
	if m.loadErr != nil {
		return m.theme.StatusError.Render(fmt.Sprintf("Could not load history: %v", m.loadErr))
	}
	if len(m.transitions) == 0 {
		return m.theme.Empty.Render("No transitions recorded yet.\nRun the clock to start a history!")
	}
	return m.table.View()
}

// RunHistory runs the history screen.
func RunHistory(source TransitionSource, loc *time.Location, width, height int) error {
	model := NewHistoryModel(source, loc, width, height)

	p := tea.NewProgram(
		model,
		tea.WithAltScreen(),
	)

	_, err := p.Run()
	return err
}
