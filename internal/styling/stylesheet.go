package styling

import (
	"fmt"

	"github.com/ja-he/timeruler/internal/config"
)

// Stylesheet represents all styles used by the application for rendering.
type Stylesheet struct {
	Normal           DrawStyling
	NormalEmphasized DrawStyling

	RulerDay         DrawStyling
	RulerNight       DrawStyling
	RulerOutOfDomain DrawStyling
	Tick             DrawStyling
	KeyTick          DrawStyling
	Cursor           DrawStyling

	CardBand         DrawStyling
	CategoryFallback DrawStyling

	Status DrawStyling

	Help     DrawStyling
	Log      DrawStyling
	LogTitle DrawStyling
}

// NewStylesheetFromConfig constructs a new stylesheet from a given config
// stylesheet.
func NewStylesheetFromConfig(c config.Stylesheet) (*Stylesheet, error) {
	stylesheet := Stylesheet{}

	for _, entry := range []struct {
		name   string
		target *DrawStyling
		source config.Styling
	}{
		{"normal", &stylesheet.Normal, c.Normal},
		{"normal-emphasized", &stylesheet.NormalEmphasized, c.NormalEmphasized},
		{"ruler-day", &stylesheet.RulerDay, c.RulerDay},
		{"ruler-night", &stylesheet.RulerNight, c.RulerNight},
		{"ruler-out-of-domain", &stylesheet.RulerOutOfDomain, c.RulerOutOfDomain},
		{"tick", &stylesheet.Tick, c.Tick},
		{"key-tick", &stylesheet.KeyTick, c.KeyTick},
		{"cursor", &stylesheet.Cursor, c.Cursor},
		{"card-band", &stylesheet.CardBand, c.CardBand},
		{"category-fallback", &stylesheet.CategoryFallback, c.CategoryFallback},
		{"status", &stylesheet.Status, c.Status},
		{"help", &stylesheet.Help, c.Help},
		{"log", &stylesheet.Log, c.Log},
		{"log-title", &stylesheet.LogTitle, c.LogTitle},
	} {
		style, err := StyleFromConfig(entry.source)
		if err != nil {
			return nil, fmt.Errorf("stylesheet entry '%s' (%w)", entry.name, err)
		}
		*entry.target = style
	}

	return &stylesheet, nil
}

// StyleFromConfig constructs a DrawStyling from a config styling.
func StyleFromConfig(c config.Styling) (DrawStyling, error) {
	style, err := StyleFromHex(c.Fg, c.Bg)
	if err != nil {
		return nil, err
	}
	if c.Style != nil {
		style.bold = c.Style.Bold
		style.italic = c.Style.Italic
		style.underlined = c.Style.Underlined
	}
	return style, nil
}
