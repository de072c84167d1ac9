package tui

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/log"

	"github.com/vovakirdan/purple-snake/internal/audio"
	"github.com/vovakirdan/purple-snake/internal/core"
	"github.com/vovakirdan/purple-snake/internal/games/snake"
)

// Options configures a Model beyond the game itself.
type Options struct {
	Sound  audio.Player // nil plays nothing
	Logger *log.Logger  // nil drops storage warnings
}

// Model is the Bubble Tea model of the game view. It owns the game, maps
// keys to actions and drives the game clock with tea.Tick.
type Model struct {
	game     *snake.Game
	screen   *core.Screen
	config   core.RuntimeConfig
	palette  Palette
	keys     KeyMap
	help     help.Model
	sound    audio.Player
	logger   *log.Logger
	clock    gameClock
	quitting bool
}

// NewModel creates a game view for game.
func NewModel(game *snake.Game, cfg core.RuntimeConfig, opts Options) Model {
	// Use time-based seed if not specified
	if cfg.Seed == 0 {
		cfg.Seed = time.Now().UnixNano()
	}
	if opts.Sound == nil {
		opts.Sound = audio.Noop{}
	}

	return Model{
		game:    game,
		screen:  core.NewScreen(cfg.ScreenW, cfg.ScreenH-shortHelpRows),
		config:  cfg,
		palette: NewPalette(game.Config().Colors),
		keys:    DefaultKeyMap(),
		help:    help.New(),
		sound:   opts.Sound,
		logger:  opts.Logger,
	}
}

// Init puts the game into its idle state. The clock stays stopped until
// the player presses Start.
func (m Model) Init() tea.Cmd {
	m.game.Reset(m.gameConfig())
	return tea.SetWindowTitle("Purple Snake")
}

// Rows kept below the board for the help view.
const (
	shortHelpRows = 1
	fullHelpRows  = 4
)

// gameConfig returns the runtime config minus the rows used by help.
func (m Model) gameConfig() core.RuntimeConfig {
	rows := shortHelpRows
	if m.help.ShowAll {
		rows = fullHelpRows
	}
	cfg := m.config
	cfg.ScreenH = max(0, cfg.ScreenH-rows)
	return cfg
}

// relayout sizes the screen buffer and the game layout to the terminal.
func (m *Model) relayout() {
	gc := m.gameConfig()
	m.screen.Resize(gc.ScreenW, gc.ScreenH)
	m.game.Resize(gc.ScreenW, gc.ScreenH)
}

// Update handles messages and updates the model state.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.WindowSizeMsg:
		return m.handleResize(msg)

	case tickMsg:
		return m.handleTick(msg)
	}

	return m, nil
}

// handleKey processes keyboard input.
func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Help):
		m.help.ShowAll = !m.help.ShowAll
		m.relayout()
		return m, nil
	case key.Matches(msg, m.keys.Screenshot):
		m.saveScreenshot()
		return m, nil
	}

	action := m.keys.Action(msg)
	if action == core.ActionQuit {
		m.quitting = true
		return m, tea.Quit
	}
	if !m.game.HandleAction(action) {
		return m, nil
	}

	// Start changes the delay from 0 (or keeps it when restarting mid-game,
	// in which case the running chain carries on).
	var cmd tea.Cmd
	m.clock, cmd = m.clock.sync(m.game.Delay())
	return m, cmd
}

// handleResize processes window resize events. The game keeps its state;
// only the layout changes.
func (m Model) handleResize(msg tea.WindowSizeMsg) (tea.Model, tea.Cmd) {
	m.config.ScreenW = msg.Width
	m.config.ScreenH = msg.Height
	m.relayout()
	m.help.Width = msg.Width
	return m, nil
}

// handleTick runs one update step for a tick of the live chain.
func (m Model) handleTick(msg tickMsg) (tea.Model, tea.Cmd) {
	if !m.clock.current(msg) {
		return m, nil
	}

	result := m.game.Step()
	m.sound.Play(result.Events)
	if result.Err != nil && m.logger != nil {
		m.logger.Warn("could not save high score", "error", result.Err)
	}

	gen := m.clock.gen
	var cmd tea.Cmd
	m.clock, cmd = m.clock.sync(m.game.Delay())
	if m.clock.gen == gen {
		cmd = m.clock.schedule()
	}
	return m, cmd
}

// saveScreenshot saves the current screen to a file.
func (m *Model) saveScreenshot() {
	m.game.Render(m.screen)

	home, err := os.UserHomeDir()
	if err != nil {
		return
	}
	dir := filepath.Join(home, ".snake", "screenshots")
	//nolint:errcheck // Best-effort directory creation
	os.MkdirAll(dir, 0o755)

	timestamp := time.Now().Format("20060102_150405")
	path := filepath.Join(dir, fmt.Sprintf("snake_%s.txt", timestamp))

	//nolint:errcheck // Best-effort save, game continues regardless
	os.WriteFile(path, []byte(m.screen.String()), 0o600)
}

// View renders the current state to a string for display.
func (m Model) View() string {
	if m.quitting {
		return ""
	}

	m.game.Render(m.screen)
	return m.palette.Render(m.screen) + "\n" + m.help.View(m.keys)
}

// Quitting reports whether the player asked to quit.
func (m Model) Quitting() bool {
	return m.quitting
}

// Run starts the game view in the local terminal and blocks until the
// player quits.
func Run(game *snake.Game, cfg core.RuntimeConfig, opts Options) error {
	p := tea.NewProgram(
		NewModel(game, cfg, opts),
		tea.WithAltScreen(),
	)

	if _, err := p.Run(); err != nil {
		return fmt.Errorf("tui: %w", err)
	}
	return nil
}
