package tui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/mgrankin/pixelmines/internal/core"
)

// halfBlock shows two vertically stacked pixels per terminal cell: the glyph's
// foreground paints the top pixel, the cell background paints the bottom one.
const halfBlock = "▀"

// RenderFrame converts a framebuffer to a styled string for display.
// Each terminal row carries two pixel rows. Adjacent cells with the same
// color pair are grouped into runs to minimize ANSI escape sequences.
func RenderFrame(fb *core.Framebuffer) string {
	var sb strings.Builder
	// Pre-allocate with extra space for ANSI codes
	sb.Grow(fb.Width()*fb.Height()*10 + fb.Height())

	rows := fb.Height() / 2
	for row := 0; row < rows; row++ {
		if row > 0 {
			sb.WriteRune('\n')
		}

		x := 0
		for x < fb.Width() {
			top := fb.At(x, row*2)
			bottom := fb.At(x, row*2+1)

			// Collect consecutive cells with the same color pair
			runLen := 1
			for x+runLen < fb.Width() {
				if fb.At(x+runLen, row*2) != top || fb.At(x+runLen, row*2+1) != bottom {
					break
				}
				runLen++
			}

			style := lipgloss.NewStyle().
				Foreground(lipgloss.Color(top.Hex())).
				Background(lipgloss.Color(bottom.Hex()))
			sb.WriteString(style.Render(strings.Repeat(halfBlock, runLen)))
			x += runLen
		}
	}
	return sb.String()
}
