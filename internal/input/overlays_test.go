package input_test

import (
	"testing"

	"github.com/gdamore/tcell/v2"
	"github.com/ja-he/timeruler/internal/control/action"
	"github.com/ja-he/timeruler/internal/input"
)

func runeKey(r rune) input.Key { return input.Key{Key: tcell.KeyRune, Ch: r} }

func mustTree(t *testing.T, spec map[input.Keyspec]action.Action) *input.Tree {
	t.Helper()
	tree, err := input.ConstructInputTree(spec)
	if err != nil {
		t.Fatal("unexpected tree construction error:", err.Error())
	}
	return tree
}

func TestOverlays(t *testing.T) {

	t.Run("base processes when no overlay", func(t *testing.T) {
		scrolled := 0
		o := input.NewOverlays(mustTree(t, map[input.Keyspec]action.Action{
			"j": action.New("scroll", func() { scrolled++ }),
		}))
		if !o.ProcessInput(runeKey('j')) {
			t.Error("base mapping did not apply")
		}
		if o.ProcessInput(runeKey('x')) {
			t.Error("unmapped key applied")
		}
		if scrolled != 1 {
			t.Errorf("expected one scroll, got %d", scrolled)
		}
		if o.Top() != "" || o.CapturesInput() {
			t.Error("expected no overlay and no capture")
		}
	})

	t.Run("help overlay shadows base until popped", func(t *testing.T) {
		scrolled, closed := 0, 0
		o := input.NewOverlays(mustTree(t, map[input.Keyspec]action.Action{
			"j": action.New("scroll", func() { scrolled++ }),
		}))
		help := mustTree(t, map[input.Keyspec]action.Action{
			"?": action.New("close help", func() {
				closed++
				if err := o.Pop("help"); err != nil {
					t.Error(err)
				}
			}),
		})

		if err := o.Push("help", help); err != nil {
			t.Fatal(err)
		}
		if err := o.Push("help", help); err == nil {
			t.Error("showing help twice did not error")
		}
		if o.Top() != "help" || !o.Shown("help") || !o.CapturesInput() {
			t.Error("expected help shown and capturing")
		}
		if o.ProcessInput(runeKey('j')) {
			t.Error("base mapping applied through overlay")
		}
		if h := o.GetHelp(); len(h) != 1 || h["?"] != "close help" {
			t.Error("unexpected overlay help:", h)
		}
		if !o.ProcessInput(runeKey('?')) {
			t.Error("overlay mapping did not apply")
		}
		if !o.ProcessInput(runeKey('j')) || scrolled != 1 || closed != 1 {
			t.Errorf("after pop expected base active, scrolled=%d closed=%d", scrolled, closed)
		}
		if err := o.Pop("help"); err == nil {
			t.Error("popping hidden overlay did not error")
		}
	})

	t.Run("pop removes overlays above", func(t *testing.T) {
		o := input.NewOverlays(input.EmptyTree())
		a := mustTree(t, map[input.Keyspec]action.Action{"a": action.New("a", func() {})})
		b := mustTree(t, map[input.Keyspec]action.Action{"b": action.New("b", func() {})})
		o.Push("log", a)
		o.Push("help", b)

		if !o.ProcessInput(runeKey('b')) {
			t.Error("expected help on top")
		}
		if err := o.Pop("log"); err != nil {
			t.Fatal(err)
		}
		if o.Shown("help") || o.Shown("log") || o.Top() != "" {
			t.Error("expected both overlays removed")
		}
		if o.ProcessInput(runeKey('a')) {
			t.Error("expected empty base active")
		}
	})

	t.Run("captures partial sequences", func(t *testing.T) {
		o := input.NewOverlays(mustTree(t, map[input.Keyspec]action.Action{
			"gg": action.New("start", func() {}),
		}))
		if o.CapturesInput() {
			t.Error("captures initially")
		}
		o.ProcessInput(runeKey('g'))
		if !o.CapturesInput() {
			t.Error("does not capture after partial sequence")
		}
		o.ProcessInput(runeKey('g'))
		if o.CapturesInput() {
			t.Error("still captures after completed sequence")
		}
	})
}
