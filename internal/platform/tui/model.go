package tui

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/mgrankin/pixelmines/internal/core"
	"github.com/mgrankin/pixelmines/internal/storage"
	"github.com/mgrankin/pixelmines/internal/sweeper"
)

// minimum terminal size below which the board cannot be drawn legibly
const (
	minScreenW = 24
	minScreenH = 24
)

// Model is the Bubble Tea model for running a game session.
type Model struct {
	game        *sweeper.Game
	fb          *core.Framebuffer
	store       *storage.Store
	config      core.RuntimeConfig
	inputFrame  core.InputFrame
	keyMapper   *KeyMapper
	gameState   core.GameState
	startedAt   time.Time
	quitting    bool
	resultSaved bool // Whether the outcome has been recorded for this game
}

// NewModel creates a new Bubble Tea model for the given game.
// cfg.ScreenW and cfg.ScreenH are in pixels; one terminal row shows two
// pixel rows, so callers probing terminal size should pass rows*2.
func NewModel(game *sweeper.Game, store *storage.Store, cfg core.RuntimeConfig) Model {
	// Use time-based seed if not specified
	if cfg.Seed == 0 {
		cfg.Seed = time.Now().UnixNano()
	}

	return Model{
		game:       game,
		fb:         core.NewFramebuffer(cfg.ScreenW, cfg.ScreenH),
		store:      store,
		config:     cfg,
		inputFrame: core.NewInputFrame(),
		keyMapper:  NewKeyMapper(),
		startedAt:  time.Now(),
	}
}

// Init initializes the model and starts the game.
func (m Model) Init() tea.Cmd {
	// Initialize the game. The config was validated before the program
	// started, so the board constructor cannot reject it here.
	//nolint:errcheck
	m.game.Reset(m.config)

	// Start the tick loop
	return tickCmd(m.config.TickRate)
}

// Update handles messages and updates the model state.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.WindowSizeMsg:
		return m.handleResize(msg)

	case TickMsg:
		return m.handleTick()
	}

	return m, nil
}

// handleKey processes keyboard input.
func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if m.keyMapper.MapKeyToFrame(msg, &m.inputFrame) {
		m.quitting = true
		return m, tea.Quit
	}
	return m, nil
}

// handleResize processes window resize events. The board itself survives a
// resize; only the framebuffer the renderer scales into changes.
func (m Model) handleResize(msg tea.WindowSizeMsg) (tea.Model, tea.Cmd) {
	m.config.ScreenW = msg.Width
	m.config.ScreenH = msg.Height * 2
	m.fb.Resize(m.config.ScreenW, m.config.ScreenH)
	return m, nil
}

// handleTick processes simulation ticks.
func (m Model) handleTick() (tea.Model, tea.Cmd) {
	// Run game simulation
	result := m.game.Step(m.inputFrame)
	m.gameState = result.State

	// Record the outcome on game over (once)
	if m.gameState.GameOver && !m.resultSaved {
		if m.store != nil {
			b := m.game.Board()
			outcome := storage.OutcomeLost
			if m.gameState.Won {
				outcome = storage.OutcomeWon
			}
			//nolint:errcheck // Best-effort save, game continues regardless
			m.store.SaveResult(storage.ResultEntry{
				Outcome:      outcome,
				DurationSecs: int(time.Since(m.startedAt).Seconds()),
				Rows:         b.Rows(),
				Cols:         b.Cols(),
				Bombs:        b.Bombs(),
			})
		}
		m.resultSaved = true
	}

	// Clear input for next frame
	m.inputFrame.Clear()

	// Continue ticking
	return m, tickCmd(m.config.TickRate)
}

// View renders the current state to a string for display.
func (m Model) View() string {
	if m.quitting {
		return ""
	}

	if m.config.ScreenW < minScreenW || m.config.ScreenH < minScreenH {
		return "terminal too small, resize to keep playing"
	}

	// Render game to the framebuffer, then blit it as half-block rows
	m.game.Render(m.fb)
	return RenderFrame(m.fb)
}

// Run starts the Bubble Tea program with the given model.
func Run(game *sweeper.Game, store *storage.Store, cfg core.RuntimeConfig) error {
	model := NewModel(game, store, cfg)

	p := tea.NewProgram(
		model,
		tea.WithAltScreen(), // Use alternate screen buffer
	)

	_, err := p.Run()
	return err
}
