package config

// Default returns the default configuration for the given colorscheme type
// (light or dark).
func Default(colorschemeType ColorschemeType) Config {
	adaptive := true
	return Config{
		Ruler: Ruler{
			MinTickSpace:     4,
			CursorPosition:   0.3,
			BaselinePosition: 0.1,
			Orientation:      "vertical",
			Unit:             "1h",
			AdaptiveUnit:     &adaptive,
		},
		Cards: Cards{
			Width:  30,
			Margin: 2,
		},
		Stylesheet: defaultStylesheet(colorschemeType),
		Keys: map[string]string{
			"j":     "scroll-forward",
			"k":     "scroll-backward",
			"<c-d>": "fling-forward",
			"<c-u>": "fling-backward",
			"gg":    "scroll-to-start",
			"G":     "scroll-to-end",
			"+":     "zoom-in",
			"-":     "zoom-out",
			"[":     "previous-day",
			"]":     "next-day",
			"<cr>":  "select-at-cursor",
			"<esc>": "clear-selection",
			"?":     "toggle-help",
			"L":     "toggle-log",
			"P":     "toggle-perf",
			"q":     "quit",
		},
		Categories: []Category{
			{Color: "#cccccc", Name: "default"},
			{Color: "#ffdccc", Name: "meeting"},
			{Color: "#c2edab", Name: "focus"},
			{Color: "#ccebff", Name: "break"},
		},
	}
}

func defaultStylesheet(colorschemeType ColorschemeType) Stylesheet {
	if colorschemeType == Light {
		return Stylesheet{
			Normal:           Styling{Fg: "#000000", Bg: "#ffffff", Style: &FontStyle{}},
			NormalEmphasized: Styling{Fg: "#000000", Bg: "#f0f0f0", Style: &FontStyle{}},
			RulerDay:         Styling{Fg: "#404040", Bg: "#ffffff", Style: &FontStyle{}},
			RulerNight:       Styling{Fg: "#f0f0f0", Bg: "#404060", Style: &FontStyle{}},
			RulerOutOfDomain: Styling{Fg: "#c0c0c0", Bg: "#fafafa", Style: &FontStyle{}},
			Tick:             Styling{Fg: "#c0c0c0", Bg: "#ffffff", Style: &FontStyle{}},
			KeyTick:          Styling{Fg: "#808080", Bg: "#ffffff", Style: &FontStyle{Bold: true}},
			Cursor:           Styling{Fg: "#ffffff", Bg: "#0000ff", Style: &FontStyle{Bold: true}},
			CardBand:         Styling{Fg: "#000000", Bg: "#fafafa", Style: &FontStyle{}},
			Status:           Styling{Fg: "#000000", Bg: "#f0f0f0", Style: &FontStyle{}},
			CategoryFallback: Styling{Fg: "#882222", Bg: "#ffaaaa", Style: &FontStyle{}},
			Help:             Styling{Fg: "#000000", Bg: "#f0f0f0", Style: &FontStyle{}},
			Log:              Styling{Fg: "#000000", Bg: "#ffffff", Style: &FontStyle{}},
			LogTitle:         Styling{Fg: "#000000", Bg: "#f0f0f0", Style: &FontStyle{Bold: true}},
		}
	}
	return Stylesheet{
		Normal:           Styling{Fg: "#ffffff", Bg: "#000000", Style: &FontStyle{}},
		NormalEmphasized: Styling{Fg: "#ffffff", Bg: "#202020", Style: &FontStyle{}},
		RulerDay:         Styling{Fg: "#f0f0f0", Bg: "#000000", Style: &FontStyle{}},
		RulerNight:       Styling{Fg: "#f0f0f0", Bg: "#222255", Style: &FontStyle{}},
		RulerOutOfDomain: Styling{Fg: "#606060", Bg: "#101010", Style: &FontStyle{}},
		Tick:             Styling{Fg: "#808080", Bg: "#000000", Style: &FontStyle{}},
		KeyTick:          Styling{Fg: "#c0c0c0", Bg: "#000000", Style: &FontStyle{Bold: true}},
		Cursor:           Styling{Fg: "#ffffff", Bg: "#3355ff", Style: &FontStyle{Bold: true}},
		CardBand:         Styling{Fg: "#ffffff", Bg: "#101010", Style: &FontStyle{}},
		Status:           Styling{Fg: "#f0f0f0", Bg: "#000000", Style: &FontStyle{}},
		CategoryFallback: Styling{Fg: "#882222", Bg: "#ffaaaa", Style: &FontStyle{}},
		Help:             Styling{Fg: "#f0f0f0", Bg: "#202020", Style: &FontStyle{}},
		Log:              Styling{Fg: "#f0f0f0", Bg: "#000000", Style: &FontStyle{}},
		LogTitle:         Styling{Fg: "#f0f0f0", Bg: "#202020", Style: &FontStyle{Bold: true}},
	}
}
