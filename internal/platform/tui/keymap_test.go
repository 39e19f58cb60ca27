package tui

import (
	"testing"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/mgrankin/pixelmines/internal/core"
)

func runeKey(r rune) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{r}}
}

func TestMapKeyMovement(t *testing.T) {
	km := NewKeyMapper()

	cases := []struct {
		msg  tea.KeyMsg
		want core.Action
	}{
		{runeKey('w'), core.ActionUp},
		{tea.KeyMsg{Type: tea.KeyUp}, core.ActionUp},
		{runeKey('s'), core.ActionDown},
		{tea.KeyMsg{Type: tea.KeyDown}, core.ActionDown},
		{runeKey('a'), core.ActionLeft},
		{tea.KeyMsg{Type: tea.KeyLeft}, core.ActionLeft},
		{runeKey('d'), core.ActionRight},
		{tea.KeyMsg{Type: tea.KeyRight}, core.ActionRight},
		{runeKey('f'), core.ActionFlag},
		{runeKey('t'), core.ActionReveal},
		{tea.KeyMsg{Type: tea.KeyEnter}, core.ActionReveal},
		{tea.KeyMsg{Type: tea.KeySpace}, core.ActionReveal},
		{runeKey('x'), core.ActionNone},
	}

	for _, tc := range cases {
		action, isQuit := km.MapKey(tc.msg)
		if isQuit {
			t.Errorf("Key %q should not quit", tc.msg.String())
		}
		if action != tc.want {
			t.Errorf("Key %q: got %v, want %v", tc.msg.String(), action, tc.want)
		}
	}
}

func TestMapKeyQuit(t *testing.T) {
	km := NewKeyMapper()

	for _, msg := range []tea.KeyMsg{
		runeKey('q'),
		{Type: tea.KeyCtrlC},
		{Type: tea.KeyEsc},
	} {
		action, isQuit := km.MapKey(msg)
		if !isQuit {
			t.Errorf("Key %q should quit", msg.String())
		}
		if action != core.ActionQuit {
			t.Errorf("Key %q: got %v, want ActionQuit", msg.String(), action)
		}
	}
}

func TestMapKeyToFrame(t *testing.T) {
	km := NewKeyMapper()
	frame := core.NewInputFrame()

	if quit := km.MapKeyToFrame(runeKey('w'), &frame); quit {
		t.Error("w should not be a quit request")
	}
	if quit := km.MapKeyToFrame(runeKey('f'), &frame); quit {
		t.Error("f should not be a quit request")
	}

	if !frame.Has(core.ActionUp) || !frame.Has(core.ActionFlag) {
		t.Error("Frame should accumulate mapped actions")
	}
	if frame.Has(core.ActionReveal) {
		t.Error("Frame should not contain unmapped actions")
	}

	// Unmapped keys leave the frame untouched
	frame.Clear()
	km.MapKeyToFrame(runeKey('x'), &frame)
	if frame.Has(core.ActionNone) {
		t.Error("ActionNone must never be stored in the frame")
	}
}
