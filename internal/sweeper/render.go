package sweeper

import "github.com/mgrankin/pixelmines/internal/core"

// Palette for the board. One dot color per neighbor count; index 0 is unused
// because zero-count tiles draw no marker.
var (
	colorHidden     = core.RGB(30, 30, 30)
	colorRevealed   = core.RGB(100, 110, 120)
	colorBomb       = core.RGB(20, 20, 20)
	colorFlag       = core.RGB(200, 50, 50)
	colorSelection  = core.RGB(255, 255, 0)
	colorBackground = core.RGB(10, 10, 10)
	colorLose       = core.RGB(150, 20, 20)
	colorWin        = core.RGB(20, 150, 20)

	dotColors = [9]core.Color{
		colorRevealed,
		core.RGB(0, 100, 255),
		core.RGB(0, 150, 0),
		core.RGB(255, 0, 0),
		core.RGB(0, 0, 150),
		core.RGB(150, 0, 0),
		core.RGB(0, 150, 150),
		core.RGB(150, 0, 150),
		core.RGB(100, 100, 100),
	}
)

// Renderer translates board state into pixels. It owns no device handle; the
// caller passes the framebuffer on every draw, and a full redraw happens each
// time (the grid is small enough that dirty tracking isn't worth it).
type Renderer struct{}

// NewRenderer creates a renderer.
func NewRenderer() *Renderer {
	return &Renderer{}
}

// layout describes where the grid lands on a surface.
type layout struct {
	tileSize int
	offsetX  int
	offsetY  int
	padding  int
}

func (r *Renderer) layoutFor(fb *core.Framebuffer, b *Board) layout {
	smaller := core.Min(fb.Width(), fb.Height())
	cells := core.Max(b.Rows(), b.Cols())
	tileSize := smaller / cells
	return layout{
		tileSize: tileSize,
		offsetX:  (fb.Width() - tileSize*b.Cols()) / 2,
		offsetY:  (fb.Height() - tileSize*b.Rows()) / 2,
		padding:  tileSize / 10,
	}
}

// Draw renders the full board into the framebuffer: background, one padded
// rect per tile, flag and count markers, and the selection outline. It is a
// pure function of board state and never mutates the board.
func (r *Renderer) Draw(fb *core.Framebuffer, b *Board) {
	fb.Fill(colorBackground)
	lo := r.layoutFor(fb, b)

	for y := 0; y < b.Rows(); y++ {
		for x := 0; x < b.Cols(); x++ {
			r.drawTile(fb, b.Tile(x, y), lo, x, y)
		}
	}

	r.drawSelection(fb, lo, b.Cursor())
}

func (r *Renderer) drawTile(fb *core.Framebuffer, t Tile, lo layout, x, y int) {
	inner := core.NewRect(
		lo.offsetX+x*lo.tileSize+lo.padding,
		lo.offsetY+y*lo.tileSize+lo.padding,
		lo.tileSize-2*lo.padding,
		lo.tileSize-2*lo.padding,
	)

	var fill core.Color
	switch {
	case t.State == Revealed && t.Bomb:
		fill = colorBomb
	case t.State == Revealed:
		fill = colorRevealed
	default:
		fill = colorHidden
	}
	fb.FillRect(inner, fill)

	if t.State == Flagged {
		flagSize := inner.W / 2
		fb.FillRect(core.NewRect(
			inner.X+(inner.W-flagSize)/2,
			inner.Y+(inner.H-flagSize)/2,
			flagSize,
			flagSize,
		), colorFlag)
	}

	if t.State == Revealed && !t.Bomb && t.Neighbors > 0 {
		r.drawCount(fb, inner, t.Neighbors)
	}
}

// drawCount marks a revealed tile with its neighbor count. Counts 1-3 get a
// distinct dot arrangement; 4 and above collapse into one big square in the
// count's color. That fallback is intentional, not a missing feature: a
// uniform block reads as "a whole lot of bombs" without per-digit glyphs.
func (r *Renderer) drawCount(fb *core.Framebuffer, inner core.Rect, count uint8) {
	color := dotColors[count]
	dot := core.Max(inner.W/5, 1)
	cx, cy := inner.Center()

	var positions []core.Point
	size := dot
	switch count {
	case 1:
		positions = []core.Point{{X: cx - dot/2, Y: cy - dot/2}}
	case 2:
		positions = []core.Point{
			{X: cx - dot*2, Y: cy - dot/2},
			{X: cx + dot, Y: cy - dot/2},
		}
	case 3:
		positions = []core.Point{
			{X: cx - dot*2, Y: cy - dot*2},
			{X: cx - dot/2, Y: cy - dot/2},
			{X: cx + dot, Y: cy + dot},
		}
	default:
		size = dot * 2
		positions = []core.Point{{X: cx - size/2, Y: cy - size/2}}
	}

	for _, pos := range positions {
		fb.FillRect(core.NewRect(pos.X, pos.Y, size, size), color)
	}
}

// drawSelection outlines the cursor cell, drawn last so it stays visible on
// top of any tile state.
func (r *Renderer) drawSelection(fb *core.Framebuffer, lo layout, cursor core.Point) {
	px := lo.offsetX + cursor.X*lo.tileSize
	py := lo.offsetY + cursor.Y*lo.tileSize
	thickness := core.Max(lo.padding/2, 1)

	fb.FillRect(core.NewRect(px, py, lo.tileSize, thickness), colorSelection)
	fb.FillRect(core.NewRect(px, py+lo.tileSize-thickness, lo.tileSize, thickness), colorSelection)
	fb.FillRect(core.NewRect(px, py, thickness, lo.tileSize), colorSelection)
	fb.FillRect(core.NewRect(px+lo.tileSize-thickness, py, thickness, lo.tileSize), colorSelection)
}

// DrawOutcome floods the surface with the win or lose color. Shown after the
// final board state has been on screen for a moment.
func (r *Renderer) DrawOutcome(fb *core.Framebuffer, won bool) {
	if won {
		fb.Fill(colorWin)
	} else {
		fb.Fill(colorLose)
	}
}
