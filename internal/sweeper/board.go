// Package sweeper implements the minesweeper board model and its pixel
// renderer. The board is pure logic with no display or input dependencies;
// the platform layer drives it through MoveCursor/ToggleFlag/Reveal and hands
// the renderer a framebuffer to draw into.
package sweeper

import (
	"errors"
	"fmt"
	"math/rand"

	"github.com/mgrankin/pixelmines/internal/core"
)

// ErrTooManyBombs is returned when the requested bomb count cannot fit on the
// grid. The caller must not proceed with such a board.
var ErrTooManyBombs = errors.New("sweeper: bomb count must be less than the cell count")

// TileState is the visibility state of a single tile. Revealed is terminal:
// a revealed tile never returns to Hidden or Flagged.
type TileState int

const (
	Hidden TileState = iota
	Flagged
	Revealed
)

// Tile is one cell of the grid.
type Tile struct {
	Bomb      bool      // Set once at planting, immutable thereafter
	State     TileState // Mutated only by player actions
	Neighbors uint8     // Bomb count among in-bounds Moore neighbors, 0..8
}

// Phase is the overall game state. Won and Lost are terminal.
type Phase int

const (
	Playing Phase = iota
	Won
	Lost
)

// String returns a human-readable name for the phase.
func (p Phase) String() string {
	switch p {
	case Playing:
		return "playing"
	case Won:
		return "won"
	case Lost:
		return "lost"
	default:
		return "unknown"
	}
}

// Direction is a cursor movement direction.
type Direction int

const (
	DirUp Direction = iota
	DirDown
	DirLeft
	DirRight
)

// mooreOffsets enumerates the up-to-8 neighbors of a cell. The order is
// irrelevant to the final board state (flood reveal is confluent); tests
// permute it to verify that property.
var mooreOffsets = [8]core.Point{
	{X: -1, Y: -1}, {X: 0, Y: -1}, {X: 1, Y: -1},
	{X: -1, Y: 0}, {X: 1, Y: 0},
	{X: -1, Y: 1}, {X: 0, Y: 1}, {X: 1, Y: 1},
}

// Board owns a fixed-size rectangular grid of tiles, the selection cursor,
// and the game phase. Bombs are planted lazily on the first reveal so the
// first-revealed cell is always safe.
type Board struct {
	rows, cols int
	bombs      int
	tiles      []Tile // Row-major: index = y*cols + x
	cursor     core.Point
	phase      Phase
	planted    bool
	rng        *rand.Rand

	// floodOrder is the neighbor visit order used during flood reveal.
	// Kept as a field so tests can permute it.
	floodOrder [8]core.Point
}

// NewBoard creates an unplanted board with the cursor at the grid center.
// Bombs are placed by the first Reveal (or an explicit Plant call), never
// under the cell they are planted from.
func NewBoard(rows, cols, bombs int, rng *rand.Rand) (*Board, error) {
	if rows <= 0 || cols <= 0 {
		return nil, fmt.Errorf("sweeper: invalid grid %dx%d", rows, cols)
	}
	if bombs >= rows*cols {
		return nil, fmt.Errorf("%w: %d bombs on %d cells", ErrTooManyBombs, bombs, rows*cols)
	}
	return &Board{
		rows:       rows,
		cols:       cols,
		bombs:      bombs,
		tiles:      make([]Tile, rows*cols),
		cursor:     core.P(cols/2, rows/2),
		phase:      Playing,
		rng:        rng,
		floodOrder: mooreOffsets,
	}, nil
}

// Rows returns the grid height in cells.
func (b *Board) Rows() int { return b.rows }

// Cols returns the grid width in cells.
func (b *Board) Cols() int { return b.cols }

// Bombs returns the configured bomb count.
func (b *Board) Bombs() int { return b.bombs }

// Cursor returns the currently selected cell. Always within bounds.
func (b *Board) Cursor() core.Point { return b.cursor }

// Phase returns the current game phase.
func (b *Board) Phase() Phase { return b.phase }

// Planted reports whether bombs have been placed yet.
func (b *Board) Planted() bool { return b.planted }

// Tile returns the tile at (x, y). Panics on out-of-bounds access; all
// callers operate on bounds-checked coordinates by construction.
func (b *Board) Tile(x, y int) Tile {
	return b.tiles[y*b.cols+x]
}

func (b *Board) tileAt(p core.Point) *Tile {
	return &b.tiles[p.Y*b.cols+p.X]
}

// InBounds returns true if (x, y) is a valid cell.
func (b *Board) InBounds(x, y int) bool {
	return x >= 0 && x < b.cols && y >= 0 && y < b.rows
}

// neighbors appends the in-bounds Moore neighbors of p to dst and returns it.
// Edge and corner cells have fewer than 8; coordinates never wrap.
func (b *Board) neighbors(dst []core.Point, p core.Point) []core.Point {
	for _, off := range b.floodOrder {
		n := p.Add(off)
		if b.InBounds(n.X, n.Y) {
			dst = append(dst, n)
		}
	}
	return dst
}

// Plant places exactly the configured number of bombs uniformly at random,
// excluding the safe cell and its Moore neighbors, then computes every
// tile's neighbor count. Bomb placement never changes afterwards.
func (b *Board) Plant(safe core.Point) {
	if b.planted {
		return
	}

	safeZone := make(map[core.Point]bool, 9)
	safeZone[safe] = true
	for _, n := range b.neighbors(nil, safe) {
		safeZone[n] = true
	}

	candidates := make([]core.Point, 0, b.rows*b.cols)
	for y := 0; y < b.rows; y++ {
		for x := 0; x < b.cols; x++ {
			p := core.P(x, y)
			if !safeZone[p] {
				candidates = append(candidates, p)
			}
		}
	}

	// The safe zone shrinks the candidate pool by at most 9 cells. If the
	// bomb count still doesn't fit, shrink the zone back to just the safe
	// cell; NewBoard guarantees at least one free cell remains.
	if b.bombs > len(candidates) {
		candidates = candidates[:0]
		for y := 0; y < b.rows; y++ {
			for x := 0; x < b.cols; x++ {
				p := core.P(x, y)
				if p != safe {
					candidates = append(candidates, p)
				}
			}
		}
	}

	b.rng.Shuffle(len(candidates), func(i, j int) {
		candidates[i], candidates[j] = candidates[j], candidates[i]
	})
	for _, p := range candidates[:b.bombs] {
		b.tileAt(p).Bomb = true
	}

	b.recountNeighbors()
	b.planted = true
}

// recountNeighbors recomputes every tile's neighbor bomb count.
func (b *Board) recountNeighbors() {
	var scratch []core.Point
	for y := 0; y < b.rows; y++ {
		for x := 0; x < b.cols; x++ {
			var count uint8
			scratch = b.neighbors(scratch[:0], core.P(x, y))
			for _, n := range scratch {
				if b.tileAt(n).Bomb {
					count++
				}
			}
			b.tiles[y*b.cols+x].Neighbors = count
		}
	}
}

// MoveCursor moves the selection one cell in the given direction, clamped to
// the grid bounds (no wraparound). No effect once the game is over.
func (b *Board) MoveCursor(d Direction) {
	if b.phase != Playing {
		return
	}
	switch d {
	case DirUp:
		b.cursor.Y = core.Clamp(b.cursor.Y-1, 0, b.rows-1)
	case DirDown:
		b.cursor.Y = core.Clamp(b.cursor.Y+1, 0, b.rows-1)
	case DirLeft:
		b.cursor.X = core.Clamp(b.cursor.X-1, 0, b.cols-1)
	case DirRight:
		b.cursor.X = core.Clamp(b.cursor.X+1, 0, b.cols-1)
	}
}

// ToggleFlag flips the selected tile between Hidden and Flagged. Flags are
// purely advisory: they block accidental reveal and have no effect on the
// win condition. No-op on revealed tiles or once the game is over.
func (b *Board) ToggleFlag() {
	if b.phase != Playing {
		return
	}
	t := b.tileAt(b.cursor)
	switch t.State {
	case Hidden:
		t.State = Flagged
	case Flagged:
		t.State = Hidden
	case Revealed:
	}
}

// Reveal uncovers the selected tile. Revealing a bomb ends the game and
// uncovers every bomb on the board. Revealing a zero-count tile floods its
// connected zero region plus the bordering numbered tiles.
//
// The flood uses an explicit work list with mark-on-enqueue instead of
// recursion, so a large empty region cannot overflow the stack and no cell
// is processed twice.
func (b *Board) Reveal() {
	if b.phase != Playing {
		return
	}
	if !b.planted {
		b.Plant(b.cursor)
	}

	start := b.tileAt(b.cursor)
	if start.State != Hidden {
		// Already revealed, or flagged against accidental reveal.
		return
	}

	if start.Bomb {
		start.State = Revealed
		b.phase = Lost
		b.revealAllBombs()
		return
	}

	start.State = Revealed
	work := []core.Point{b.cursor}
	var scratch []core.Point
	for len(work) > 0 {
		p := work[len(work)-1]
		work = work[:len(work)-1]

		if b.tileAt(p).Neighbors != 0 {
			continue
		}
		// Zero-count cells never border a bomb, so everything enqueued
		// here is safe to uncover.
		scratch = b.neighbors(scratch[:0], p)
		for _, n := range scratch {
			t := b.tileAt(n)
			if t.State != Hidden {
				continue
			}
			t.State = Revealed
			work = append(work, n)
		}
	}

	b.checkWin()
}

// revealAllBombs uncovers every bomb. Called on loss so the player sees the
// full layout.
func (b *Board) revealAllBombs() {
	for i := range b.tiles {
		if b.tiles[i].Bomb {
			b.tiles[i].State = Revealed
		}
	}
}

// checkWin transitions to Won once every non-bomb tile is revealed. Flagged
// but unrevealed non-bomb tiles count as unrevealed.
func (b *Board) checkWin() {
	for i := range b.tiles {
		if !b.tiles[i].Bomb && b.tiles[i].State != Revealed {
			return
		}
	}
	b.phase = Won
}

// RevealedCount returns the number of revealed tiles. Used for progress
// display and by tests.
func (b *Board) RevealedCount() int {
	count := 0
	for i := range b.tiles {
		if b.tiles[i].State == Revealed {
			count++
		}
	}
	return count
}

// FlagCount returns the number of flagged tiles.
func (b *Board) FlagCount() int {
	count := 0
	for i := range b.tiles {
		if b.tiles[i].State == Flagged {
			count++
		}
	}
	return count
}

// BombCount returns the actual number of planted bombs. Zero before planting.
func (b *Board) BombCount() int {
	count := 0
	for i := range b.tiles {
		if b.tiles[i].Bomb {
			count++
		}
	}
	return count
}
