package sweeper

import (
	"math/rand"

	"github.com/mgrankin/pixelmines/internal/core"
)

// outcomeDelayTicks is how long the final board stays on screen before the
// full-surface win/lose flash replaces it.
const outcomeDelayTicks = 60

// Game drives a Board through the platform's tick loop: it maps input
// actions to board operations, counts ticks, and sequences the end-of-game
// flash. Once the board reaches a terminal phase no input mutates it; the
// only way out is the platform's quit signal.
type Game struct {
	rows, cols, bombs int

	board    *Board
	renderer *Renderer
	rng      *rand.Rand
	ticks    int
	overAt   int // Tick at which the game ended, for flash sequencing
}

// New creates a game for the given grid dimensions. The board itself is
// built in Reset, once the runtime seed is known.
func New(rows, cols, bombs int) *Game {
	return &Game{
		rows:     rows,
		cols:     cols,
		bombs:    bombs,
		renderer: NewRenderer(),
	}
}

// ID returns the identifier used for result storage.
func (g *Game) ID() string {
	return "minesweeper"
}

// Title returns the display name.
func (g *Game) Title() string {
	return "Minesweeper"
}

// Reset initializes the game state. Returns an error for configurations the
// board rejects (bomb count not below the cell count).
func (g *Game) Reset(cfg core.RuntimeConfig) error {
	g.rng = rand.New(rand.NewSource(cfg.Seed))
	g.ticks = 0
	g.overAt = 0

	board, err := NewBoard(g.rows, g.cols, g.bombs, g.rng)
	if err != nil {
		return err
	}
	g.board = board
	return nil
}

// Board exposes the underlying board, mainly for the platform's HUD.
func (g *Game) Board() *Board {
	return g.board
}

// Step advances the game by one tick, applying any actions triggered this
// frame. Movement, flagging, and reveals are all no-ops once the board is
// terminal; the board enforces that itself.
func (g *Game) Step(input core.InputFrame) core.StepResult {
	g.ticks++

	if input.Has(core.ActionUp) {
		g.board.MoveCursor(DirUp)
	}
	if input.Has(core.ActionDown) {
		g.board.MoveCursor(DirDown)
	}
	if input.Has(core.ActionLeft) {
		g.board.MoveCursor(DirLeft)
	}
	if input.Has(core.ActionRight) {
		g.board.MoveCursor(DirRight)
	}
	if input.Has(core.ActionFlag) {
		g.board.ToggleFlag()
	}
	if input.Has(core.ActionReveal) {
		g.board.Reveal()
	}

	if g.board.Phase() != Playing && g.overAt == 0 {
		g.overAt = g.ticks
	}

	return core.StepResult{State: g.State()}
}

// Render draws the current state into the framebuffer. The whole board is
// redrawn every call; after the end-of-game delay the frame becomes a solid
// win/lose flash.
func (g *Game) Render(fb *core.Framebuffer) {
	if g.overAt != 0 && g.ticks-g.overAt >= outcomeDelayTicks {
		g.renderer.DrawOutcome(fb, g.board.Phase() == Won)
		return
	}
	g.renderer.Draw(fb, g.board)
}

// State returns the current game state.
func (g *Game) State() core.GameState {
	return core.GameState{
		GameOver: g.board.Phase() != Playing,
		Won:      g.board.Phase() == Won,
		Ticks:    g.ticks,
	}
}
