package styling

import (
	"testing"

	"github.com/lucasb-eyer/go-colorful"

	"github.com/ja-he/timeruler/internal/config"
)

func TestLighten(t *testing.T) {
	input := colorful.Color{
		R: float64(0x12) / 255.0,
		G: float64(0x34) / 255.0,
		B: float64(0x56) / 255.0,
	}
	{
		testcase := "0% -> no change"
		result := lightenColorfulColor(input, 0)
		if !result.AlmostEqualRgb(input) {
			t.Errorf("colors testcase '%s' failed: %s instead of %s", testcase, result.Hex(), input.Hex())
		}
	}
	{
		testcase := "100% -> white"
		expected := colorful.Color{R: 1.0, G: 1.0, B: 1.0}
		result := lightenColorfulColor(input, 100)
		if !result.AlmostEqualRgb(expected) {
			t.Errorf("colors testcase '%s' failed: %s instead of %s", testcase, result.Hex(), expected.Hex())
		}
	}
	{
		testcase := "100% darker -> black"
		expected := colorful.Color{}
		result := darkenColorfulColor(input, 100)
		if !result.AlmostEqualRgb(expected) {
			t.Errorf("colors testcase '%s' failed: %s instead of %s", testcase, result.Hex(), expected.Hex())
		}
	}
}

func TestInvert(t *testing.T) {
	s, err := StyleFromHex("#ffffff", "#000000")
	if err != nil {
		t.Fatal(err)
	}
	inverted := s.Invert().(*FallbackStyling)
	if inverted.fg.Hex() != "#000000" || inverted.bg.Hex() != "#ffffff" {
		t.Errorf("not inverted: %s", inverted.ToString())
	}
	if s.fg.Hex() != "#ffffff" {
		t.Error("original styling mutated")
	}
}

func TestStyleFromHexErrors(t *testing.T) {
	if _, err := StyleFromHex("#ffffff", "black"); err == nil {
		t.Error("accepted non-hex background")
	}
	if _, err := StyleFromHexSingle("nope", true); err == nil {
		t.Error("accepted non-hex category color")
	}
}

func TestNewStylesheetFromConfig(t *testing.T) {
	sheet, err := NewStylesheetFromConfig(config.Default(config.Dark).Stylesheet)
	if err != nil {
		t.Fatalf("default stylesheet rejected: %s", err.Error())
	}
	if sheet.Cursor == nil || sheet.CardBand == nil || sheet.Status == nil {
		t.Error("stylesheet entries missing")
	}

	broken := config.Default(config.Dark).Stylesheet
	broken.Tick.Fg = "#zzzzzz"
	if _, err := NewStylesheetFromConfig(broken); err == nil {
		t.Error("broken stylesheet accepted")
	}
}

func TestCategoryStyling(t *testing.T) {
	cs, err := NewCategoryStylingFromConfig([]config.Category{
		{Name: "work", Color: "#ccebff"},
		{Name: "play", Color: "#c2edab"},
	}, true)
	if err != nil {
		t.Fatal(err)
	}
	if _, err := cs.GetStyle("work"); err != nil {
		t.Errorf("known category not found: %s", err.Error())
	}
	if _, err := cs.GetStyle("sleep"); err == nil {
		t.Error("unknown category found")
	}
	if names := cs.Names(); len(names) != 2 || names[0] != "work" {
		t.Errorf("unexpected names %v", names)
	}
}
