package tui

import (
	"context"
	"fmt"

	"github.com/charmbracelet/bubbles/help"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/tui-wordclock/internal/clock"
	"github.com/vovakirdan/tui-wordclock/internal/core"
)

// NewClock creates a screen carrying the letter grid and an engine that
// paints on it, paced in real time.
func NewClock(cfg core.RuntimeConfig, source clock.Source, opts ...clock.Option) (*clock.Engine, *core.Screen) {
	screen := core.NewScreen(clock.GridSize, clock.GridSize)
	for r, row := range clock.Letters {
		for c, text := range row {
			screen.SetText(r, c, text)
		}
	}

	opts = append([]clock.Option{clock.WithTiming(cfg)}, opts...)
	engine := clock.NewEngine(screen, source, clock.SleepPacer{}, opts...)
	return engine, screen
}

// engineDoneMsg is sent when the engine goroutine returns.
type engineDoneMsg struct {
	err error
}

// Model is the Bubble Tea model for the clock face.
// The engine runs in its own goroutine, started by Init; the model only
// forwards key presses to it and redraws the screen on every tick.
type Model struct {
	engine   *clock.Engine
	screen   *core.Screen
	config   core.RuntimeConfig
	keys     KeyMap
	help     help.Model
	theme    Theme
	ctx      context.Context
	cancel   context.CancelFunc
	width    int
	height   int
	dropped  int // Key presses rejected because the request queue was full
	quitting bool
	err      error
}

// NewModel creates a new Bubble Tea model for the given engine.
// The engine stops when ctx is cancelled or the user quits.
func NewModel(ctx context.Context, engine *clock.Engine, screen *core.Screen, cfg core.RuntimeConfig) Model {
	ctx, cancel := context.WithCancel(ctx)

	return Model{
		engine: engine,
		screen: screen,
		config: cfg,
		keys:   DefaultKeyMap(),
		help:   help.New(),
		theme:  DefaultTheme(),
		ctx:    ctx,
		cancel: cancel,
		width:  cfg.ScreenW,
		height: cfg.ScreenH,
	}
}

// Init starts the engine and the redraw loop.
func (m Model) Init() tea.Cmd {
	return tea.Batch(m.runEngine(), tickCmd(m.config.FPS))
}

// runEngine blocks in a Cmd goroutine for the lifetime of the clock.
func (m Model) runEngine() tea.Cmd {
	return func() tea.Msg {
		return engineDoneMsg{err: m.engine.Run(m.ctx)}
	}
}

// Update handles messages and updates the model state.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.help.Width = msg.Width
		return m, nil

	case TickMsg:
		if m.quitting {
			return m, nil
		}
		return m, tickCmd(m.config.FPS)

	case engineDoneMsg:
		m.err = msg.err
		return m, nil
	}

	return m, nil
}

// handleKey processes keyboard input.
func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	action := m.keys.Action(msg)

	switch action {
	case core.ActionQuit:
		m.quitting = true
		m.Stop()
		return m, tea.Quit

	case core.ActionHelp:
		m.help.ShowAll = !m.help.ShowAll
		return m, nil
	}

	if req, ok := requestFor(action); ok {
		// Palette changes queue behind any fade in flight
		if !m.engine.Submit(req) {
			m.dropped++
		}
	}
	return m, nil
}

// Stop cancels the engine.
func (m Model) Stop() {
	m.cancel()
}

// Err returns the error the engine stopped with, if any.
func (m Model) Err() error {
	return m.err
}

// View renders the clock face, status line and help.
func (m Model) View() string {
	if m.quitting {
		return ""
	}

	board := m.theme.Frame.Render(RenderBoard(m.screen))
	status := renderStatus(m.engine.Status(), m.theme)
	if m.dropped > 0 {
		status += m.theme.StatusError.Render(fmt.Sprintf("  %d keys ignored", m.dropped))
	}
	footer := m.theme.Help.Render(m.help.View(m.keys))

	content := lipgloss.JoinVertical(lipgloss.Center, board, "", status, footer)
	if m.width <= 0 || m.height <= 0 {
		return content
	}
	return lipgloss.Place(m.width, m.height, lipgloss.Center, lipgloss.Center, content)
}

// Run starts the Bubble Tea program for the given engine and blocks until
// the user quits or ctx is cancelled.
func Run(ctx context.Context, engine *clock.Engine, screen *core.Screen, cfg core.RuntimeConfig) error {
	model := NewModel(ctx, engine, screen, cfg)
	defer model.Stop()

	p := tea.NewProgram(
		model,
		tea.WithAltScreen(), // Use alternate screen buffer
		tea.WithContext(ctx),
	)

	_, err := p.Run()
	if err != nil && ctx.Err() != nil {
		// Interrupted from outside, not a failure
		return nil
	}
	return err
}
