package sweeper

import (
	"testing"

	"github.com/mgrankin/pixelmines/internal/core"
)

// A 4x4 board on a 40x40 surface gives tileSize 10, zero offsets, and
// padding 1, so every pixel position is easy to reason about: cell (x, y)
// spans [10x, 10x+9], its inner rect [10x+1, 10x+8], center (10x+5, 10y+5).

func testFrame() *core.Framebuffer {
	return core.NewFramebuffer(40, 40)
}

func TestDrawHiddenBoard(t *testing.T) {
	b := makeBoard(t, 4, 4, []core.Point{{X: 3, Y: 3}}, core.P(0, 0))
	fb := testFrame()

	NewRenderer().Draw(fb, b)

	// Hidden tile body.
	if got := fb.At(25, 5); got != colorHidden {
		t.Errorf("Hidden tile center: got %v, want %v", got, colorHidden)
	}
	// Padding between tiles shows the background. Cell (1, 1) is away from
	// the selection outline.
	if got := fb.At(19, 19); got != colorBackground {
		t.Errorf("Tile padding: got %v, want %v", got, colorBackground)
	}
	// Selection outline on the cursor cell.
	if got := fb.At(0, 0); got != colorSelection {
		t.Errorf("Selection outline: got %v, want %v", got, colorSelection)
	}
}

func TestDrawRevealedAndDots(t *testing.T) {
	b := makeBoard(t, 4, 4, []core.Point{{X: 3, Y: 3}}, core.P(0, 0))
	b.Reveal() // Floods the whole safe region

	fb := testFrame()
	NewRenderer().Draw(fb, b)

	// Zero-count tile: plain revealed color, no marker.
	if got := fb.At(15, 5); got != colorRevealed {
		t.Errorf("Revealed empty tile center: got %v, want %v", got, colorRevealed)
	}
	// Count-1 tile at (2, 2): single dot dead center.
	if got := fb.At(25, 25); got != dotColors[1] {
		t.Errorf("Count-1 dot: got %v, want %v", got, dotColors[1])
	}
	// The bomb stays covered.
	if got := fb.At(35, 35); got != colorHidden {
		t.Errorf("Unrevealed bomb tile: got %v, want %v", got, colorHidden)
	}
}

func TestDrawFlag(t *testing.T) {
	b := makeBoard(t, 4, 4, []core.Point{{X: 3, Y: 3}}, core.P(1, 2))
	b.ToggleFlag()

	fb := testFrame()
	NewRenderer().Draw(fb, b)

	if got := fb.At(15, 25); got != colorFlag {
		t.Errorf("Flag marker: got %v, want %v", got, colorFlag)
	}
}

func TestDrawDenseCountFallback(t *testing.T) {
	// Four bombs around (1, 1): counts of 4 and up collapse into one big
	// square instead of a dot pattern.
	bombs := []core.Point{{X: 0, Y: 0}, {X: 1, Y: 0}, {X: 2, Y: 0}, {X: 0, Y: 1}}
	b := makeBoard(t, 4, 4, bombs, core.P(1, 1))
	b.Reveal()

	if got := b.Tile(1, 1).Neighbors; got != 4 {
		t.Fatalf("Setup: expected count 4 at (1, 1), got %d", got)
	}

	fb := testFrame()
	NewRenderer().Draw(fb, b)

	if got := fb.At(15, 15); got != dotColors[4] {
		t.Errorf("Count-4 square: got %v, want %v", got, dotColors[4])
	}
}

func TestDrawRevealedBomb(t *testing.T) {
	b := makeBoard(t, 4, 4, []core.Point{{X: 2, Y: 2}}, core.P(2, 2))
	b.Reveal() // Steps on the bomb

	fb := testFrame()
	NewRenderer().Draw(fb, b)

	if got := fb.At(25, 25); got != colorBomb {
		t.Errorf("Revealed bomb center: got %v, want %v", got, colorBomb)
	}
}

func TestDrawOutcome(t *testing.T) {
	fb := testFrame()
	r := NewRenderer()

	r.DrawOutcome(fb, true)
	if got := fb.At(0, 0); got != colorWin {
		t.Errorf("Win flash: got %v, want %v", got, colorWin)
	}

	r.DrawOutcome(fb, false)
	if got := fb.At(39, 39); got != colorLose {
		t.Errorf("Lose flash: got %v, want %v", got, colorLose)
	}
}

func TestDrawCentersGrid(t *testing.T) {
	// Wide surface: the grid centers horizontally, background on both sides.
	b := makeBoard(t, 4, 4, []core.Point{{X: 3, Y: 3}}, core.P(1, 1))
	fb := core.NewFramebuffer(80, 40)

	NewRenderer().Draw(fb, b)

	if got := fb.At(5, 20); got != colorBackground {
		t.Errorf("Left margin: got %v, want %v", got, colorBackground)
	}
	if got := fb.At(75, 20); got != colorBackground {
		t.Errorf("Right margin: got %v, want %v", got, colorBackground)
	}
	// Grid occupies the centered 40px band: hidden tile at offset 20.
	if got := fb.At(20+5, 5); got != colorHidden {
		t.Errorf("Centered tile: got %v, want %v", got, colorHidden)
	}
}
