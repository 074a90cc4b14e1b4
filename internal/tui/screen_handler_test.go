package tui_test

import (
	"testing"

	"github.com/gdamore/tcell/v2"

	"github.com/ja-he/timeruler/internal/styling"
	"github.com/ja-he/timeruler/internal/tui"
)

func TestScreenHandler(t *testing.T) {
	screen := tcell.NewSimulationScreen("")
	h, err := tui.NewScreenHandlerFor(screen)
	if err != nil {
		t.Fatal(err)
	}
	defer h.Fini()
	screen.SetSize(20, 5)

	if _, _, w, hh := h.Dimensions(); w != 20 || hh != 5 {
		t.Fatalf("unexpected dimensions %dx%d", w, hh)
	}

	style, err := styling.StyleFromHex("#ffffff", "#000000")
	if err != nil {
		t.Fatal(err)
	}

	t.Run("text wraps", func(t *testing.T) {
		h.Clear()
		h.DrawText(0, 0, 3, 2, style, "abcdefg")
		h.Show()
		cells, w, _ := screen.GetContents()
		got := string(cells[0].Runes) + string(cells[1].Runes) + string(cells[2].Runes) +
			string(cells[w].Runes) + string(cells[w+1].Runes) + string(cells[w+2].Runes)
		if got != "abcdef" {
			t.Errorf("expected wrapped 'abcdef', got '%s'", got)
		}
		if len(cells[w*2].Runes) > 0 && cells[w*2].Runes[0] == 'g' {
			t.Error("text overflowed its box")
		}
	})

	t.Run("box", func(t *testing.T) {
		h.Clear()
		h.DrawText(5, 1, 1, 1, style, "x")
		h.DrawBox(4, 0, 3, 3, style)
		h.NeedsSync()
		h.Show()
		cells, w, _ := screen.GetContents()
		if r := cells[w+5].Runes; len(r) == 0 || r[0] != ' ' {
			t.Errorf("box did not overwrite contents, got %q", r)
		}
	})
}
