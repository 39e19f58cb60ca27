package tui

import (
	"strings"
	"testing"

	"github.com/mgrankin/pixelmines/internal/core"
)

// countHalfBlocks counts the pixel glyphs in a rendered line, ignoring ANSI codes.
func countHalfBlocks(line string) int {
	return strings.Count(line, halfBlock)
}

func TestRenderFrameDimensions(t *testing.T) {
	fb := core.NewFramebuffer(8, 6)

	out := RenderFrame(fb)
	lines := strings.Split(out, "\n")

	// 6 pixel rows fold into 3 terminal rows
	if len(lines) != 3 {
		t.Fatalf("Expected 3 lines, got %d", len(lines))
	}
	for i, line := range lines {
		if n := countHalfBlocks(line); n != 8 {
			t.Errorf("Line %d: expected 8 cells, got %d", i, n)
		}
	}
}

func TestRenderFrameOddHeightDropsLastRow(t *testing.T) {
	fb := core.NewFramebuffer(4, 5)

	out := RenderFrame(fb)
	lines := strings.Split(out, "\n")

	// The trailing unpaired pixel row is not drawn
	if len(lines) != 2 {
		t.Errorf("Expected 2 lines for height 5, got %d", len(lines))
	}
}

func TestRenderFrameGroupsRuns(t *testing.T) {
	fb := core.NewFramebuffer(6, 2)
	red := core.Color{R: 255}
	for x := 0; x < 6; x++ {
		fb.Set(x, 0, red)
		fb.Set(x, 1, red)
	}
	// Break the run in the middle
	fb.Set(3, 0, core.Color{G: 255})

	out := RenderFrame(fb)

	if n := countHalfBlocks(out); n != 6 {
		t.Errorf("Expected 6 cells total, got %d", n)
	}
	if strings.Contains(out, "\n") {
		t.Error("Two pixel rows must fold into a single line")
	}
}
