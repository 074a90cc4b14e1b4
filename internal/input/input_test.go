package input_test

import (
	"testing"

	"github.com/gdamore/tcell/v2"
	"github.com/ja-he/timeruler/internal/control/action"
	"github.com/ja-he/timeruler/internal/input"
)

func TestConfigKeyspecToKeys(t *testing.T) {
	t.Run("valid", func(t *testing.T) {
		cases := map[input.Keyspec][]input.Key{
			"j":     {{Key: tcell.KeyRune, Ch: 'j'}},
			"gg":    {{Key: tcell.KeyRune, Ch: 'g'}, {Key: tcell.KeyRune, Ch: 'g'}},
			"<c-d>": {{Key: tcell.KeyCtrlD}},
			"<C-U>": {{Key: tcell.KeyCtrlU}},
			"<space>q<cr>": {
				{Key: tcell.KeyRune, Ch: ' '},
				{Key: tcell.KeyRune, Ch: 'q'},
				{Key: tcell.KeyEnter},
			},
			"<pgdn>": {{Key: tcell.KeyPgDn}},
		}
		for spec, expected := range cases {
			t.Run(string(spec), func(t *testing.T) {
				keys, err := input.ConfigKeyspecToKeys(spec)
				if err != nil {
					t.Fatal("unexpected error:", err.Error())
				}
				if len(keys) != len(expected) {
					t.Fatalf("expected %d keys, got %d", len(expected), len(keys))
				}
				for i := range keys {
					if keys[i] != expected[i] {
						t.Errorf("key %d: expected %s, got %s", i, expected[i].ToDebugString(), keys[i].ToDebugString())
					}
				}
			})
		}
	})

	t.Run("invalid", func(t *testing.T) {
		for _, spec := range []input.Keyspec{"", "<<c-a>", "a>", "<c-a", "<c-1>", "<nope>"} {
			if _, err := input.ConfigKeyspecToKeys(spec); err == nil {
				t.Errorf("expected error for '%s'", spec)
			}
		}
	})
}

func TestToConfigIdentifierString(t *testing.T) {
	cases := map[input.Key]string{
		{Key: tcell.KeyRune, Ch: 'x'}: "x",
		{Key: tcell.KeyRune, Ch: ' '}: "<space>",
		{Key: tcell.KeyCtrlD}:         "<c-d>",
		{Key: tcell.KeyEnter}:         "<cr>",
		{Key: tcell.KeyTab}:           "<tab>",
		{Key: tcell.KeyESC}:           "<esc>",
	}
	for k, expected := range cases {
		if actual := input.ToConfigIdentifierString(k); actual != expected {
			t.Errorf("expected '%s', got '%s'", expected, actual)
		}
	}
}

func TestConstructInputTree(t *testing.T) {
	t.Run("sequences dispatch", func(t *testing.T) {
		var log []string
		record := func(s string) action.Action {
			return action.New(s, func() { log = append(log, s) })
		}
		tree, err := input.ConstructInputTree(map[input.Keyspec]action.Action{
			"gg":    record("start"),
			"G":     record("end"),
			"<c-d>": record("fling"),
		})
		if err != nil {
			t.Fatal("unexpected error:", err.Error())
		}

		g := input.Key{Key: tcell.KeyRune, Ch: 'g'}
		if !tree.ProcessInput(g) || !tree.CapturesInput() {
			t.Error("partial sequence not accepted")
		}
		if tree.ProcessInput(input.Key{Key: tcell.KeyRune, Ch: 'x'}) {
			t.Error("invalid continuation accepted")
		}
		if tree.CapturesInput() {
			t.Error("tree not reset after invalid continuation")
		}
		tree.ProcessInput(g)
		tree.ProcessInput(g)
		tree.ProcessInput(input.Key{Key: tcell.KeyRune, Ch: 'G'})
		tree.ProcessInput(input.Key{Key: tcell.KeyCtrlD})

		expected := []string{"start", "end", "fling"}
		if len(log) != len(expected) {
			t.Fatalf("expected %v, got %v", expected, log)
		}
		for i := range expected {
			if log[i] != expected[i] {
				t.Errorf("expected %v, got %v", expected, log)
			}
		}
	})

	t.Run("prefix conflicts", func(t *testing.T) {
		noop := action.New("noop", func() {})
		for _, spec := range []map[input.Keyspec]action.Action{
			{"g": noop, "gg": noop},
			{"gg": noop, "g": noop},
			{"<c-i>": noop, "<tab>": noop},
		} {
			if _, err := input.ConstructInputTree(spec); err == nil {
				t.Error("expected conflict error for", spec)
			}
		}
	})

	t.Run("invalid keyspec", func(t *testing.T) {
		_, err := input.ConstructInputTree(map[input.Keyspec]action.Action{
			"<bogus>": action.New("", func() {}),
		})
		if err == nil {
			t.Error("expected error")
		}
	})
}

func TestConstructInputTreeFromConfig(t *testing.T) {
	quit := action.New("quit", func() {})
	actions := map[input.Actionspec]action.Action{"quit": quit}

	tree, err := input.ConstructInputTreeFromConfig(map[string]string{"q": "quit"}, actions)
	if err != nil {
		t.Fatal("unexpected error:", err.Error())
	}
	if help := tree.GetHelp(); help["q"] != "quit" {
		t.Error("unexpected help:", help)
	}

	_, err = input.ConstructInputTreeFromConfig(map[string]string{"x": "explode"}, actions)
	if err == nil {
		t.Error("expected error for unknown action")
	}
}

func TestGetHelp(t *testing.T) {
	if len(input.EmptyTree().GetHelp()) != 0 {
		t.Error("empty tree has help")
	}
	tree, err := input.ConstructInputTree(map[input.Keyspec]action.Action{
		"gg":      action.New("to start", func() {}),
		"<c-u>":   action.New("fling back", func() {}),
		"<space>": action.New("select", func() {}),
	})
	if err != nil {
		t.Fatal(err)
	}
	help := tree.GetHelp()
	expected := input.Help{"gg": "to start", "<c-u>": "fling back", "<space>": "select"}
	if len(help) != len(expected) {
		t.Fatal("unexpected help:", help)
	}
	for k, v := range expected {
		if help[k] != v {
			t.Errorf("help for '%s': expected '%s', got '%s'", k, v, help[k])
		}
	}
}
