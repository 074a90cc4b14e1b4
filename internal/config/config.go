package config

import (
	"fmt"

	"github.com/go-playground/validator/v10"
	"gopkg.in/yaml.v3"
)

// Config is the configuration data as present in a config file at
// '${TIMERULER_HOME}/config.yaml'.
type Config struct {
	Ruler      Ruler      `yaml:"ruler"`
	Cards      Cards      `yaml:"cards"`
	Stylesheet Stylesheet `yaml:"stylesheet"`
	Categories []Category `yaml:"categories" validate:"dive"`
	Schedules  []Schedule `yaml:"schedules" validate:"dive"`

	// Keys maps key sequences (e.g. "gg", "<c-d>") to action names; entries
	// override the default mapping per key sequence.
	Keys map[string]string `yaml:"keys" validate:"dive,keys,required,endkeys,required"`
}

// Ruler configures the time ruler, i.E. its geometry and zoom bounds.
type Ruler struct {
	// MinTickSpace is the minimum distance between two ticks in pixels (cells,
	// in the TUI). It determines the zoom bounds: fully zoomed out an hour
	// spans MinTickSpace, fully zoomed in a minute does.
	MinTickSpace float64 `yaml:"min-tick-space" validate:"gt=0"`
	// CursorPosition is the position of the cursor line as a fraction of the
	// main axis.
	CursorPosition float64 `yaml:"cursor-position" validate:"gte=0,lte=1"`
	// BaselinePosition is the position of the baseline as a fraction of the
	// cross axis.
	BaselinePosition float64 `yaml:"baseline-position" validate:"gte=0,lte=1"`
	Orientation      string  `yaml:"orientation" validate:"oneof=horizontal vertical"`
	// Unit is the initial tick unit, e.g. "10m" (see time.ParseDuration).
	Unit         string `yaml:"unit" validate:"required"`
	AdaptiveUnit *bool  `yaml:"adaptive-unit,omitempty"`
}

// Cards configures the schedule cards drawn next to the ruler.
type Cards struct {
	Width  float64 `yaml:"width" validate:"gt=0"`
	Margin float64 `yaml:"margin" validate:"gte=0"`
}

// A Stylesheet is the stylesheet contents defined in a config file.
type Stylesheet struct {
	Normal           Styling `yaml:"normal"`
	NormalEmphasized Styling `yaml:"normal-emphasized"`
	RulerDay         Styling `yaml:"ruler-day"`
	RulerNight       Styling `yaml:"ruler-night"`
	RulerOutOfDomain Styling `yaml:"ruler-out-of-domain"`
	Tick             Styling `yaml:"tick"`
	KeyTick          Styling `yaml:"key-tick"`
	Cursor           Styling `yaml:"cursor"`
	CardBand         Styling `yaml:"card-band"`
	Status           Styling `yaml:"status"`
	CategoryFallback Styling `yaml:"category-fallback"`
	Help             Styling `yaml:"help"`
	Log              Styling `yaml:"log"`
	LogTitle         Styling `yaml:"log-title"`
}

// A Styling is a styling as defined in a config file.
// It must contain fore- and background colors and can optionally specify font
// style (bold, italic, underlined).
type Styling struct {
	Fg    string     `yaml:"fg"`
	Bg    string     `yaml:"bg"`
	Style *FontStyle `yaml:"style"`
}

// A FontStyle can be any combination of bold, italic, and underlined.
type FontStyle struct {
	Bold       bool `yaml:"bold,omitempty"`
	Italic     bool `yaml:"italic,omitempty"`
	Underlined bool `yaml:"underlined,omitempty"`
}

// A Category as defined in a config file.
type Category struct {
	Name  string `yaml:"name,omitempty" validate:"required"`
	Color string `yaml:"color,omitempty" validate:"omitempty,hexcolor"`
}

// A Schedule is a card defined inline in the config file.
// Start and End are times of day ("HH:MM"); RRule optionally makes the
// schedule recur (RFC 5545 RRULE syntax, e.g. "FREQ=WEEKLY;BYDAY=MO,WE").
type Schedule struct {
	Title    string `yaml:"title" validate:"required"`
	Text     string `yaml:"text,omitempty"`
	Category string `yaml:"category,omitempty"`
	Date     string `yaml:"date,omitempty"`
	Start    string `yaml:"start" validate:"required"`
	End      string `yaml:"end" validate:"required"`
	RRule    string `yaml:"rrule,omitempty"`
}

// ParseConfigAugmentDefaults parses the configuration specified in
// YAML-formatted data and uses it to augment a given default configuration.
// The result is validated.
func ParseConfigAugmentDefaults(defaultTheme ColorschemeType, yamlData []byte) (Config, error) {
	defaultConfig := Default(defaultTheme)

	parsedConfig := Config{}
	err := yaml.Unmarshal(yamlData, &parsedConfig)
	if err != nil {
		return defaultConfig, fmt.Errorf("error unmarshaling yaml (%w)", err)
	}

	result := defaultConfig.augmentWith(parsedConfig)

	if err := Validate(result); err != nil {
		return defaultConfig, err
	}
	return result, nil
}

var validate = validator.New()

// Validate checks the configuration's value constraints.
func Validate(c Config) error {
	if err := validate.Struct(c); err != nil {
		return fmt.Errorf("invalid configuration (%w)", err)
	}
	return nil
}

// IsAdaptiveUnit reports whether the tick unit should follow the zoom level.
func (r Ruler) IsAdaptiveUnit() bool {
	return r.AdaptiveUnit != nil && *r.AdaptiveUnit
}

func (base Config) augmentWith(augment Config) Config {
	result := base

	result.Ruler = base.Ruler.augmentWith(augment.Ruler)
	result.Cards = base.Cards.augmentWith(augment.Cards)
	result.Stylesheet = base.Stylesheet.augmentWith(augment.Stylesheet)

	if len(augment.Categories) > 0 {
		result.Categories = augment.Categories
	}
	if len(augment.Schedules) > 0 {
		result.Schedules = augment.Schedules
	}
	if len(augment.Keys) > 0 {
		result.Keys = make(map[string]string, len(base.Keys)+len(augment.Keys))
		for k, v := range base.Keys {
			result.Keys[k] = v
		}
		for k, v := range augment.Keys {
			result.Keys[k] = v
		}
	}

	return result
}

func (base Ruler) augmentWith(augment Ruler) Ruler {
	result := base
	if augment.MinTickSpace != 0 {
		result.MinTickSpace = augment.MinTickSpace
	}
	if augment.CursorPosition != 0 {
		result.CursorPosition = augment.CursorPosition
	}
	if augment.BaselinePosition != 0 {
		result.BaselinePosition = augment.BaselinePosition
	}
	if augment.Orientation != "" {
		result.Orientation = augment.Orientation
	}
	if augment.Unit != "" {
		result.Unit = augment.Unit
	}
	if augment.AdaptiveUnit != nil {
		result.AdaptiveUnit = augment.AdaptiveUnit
	}
	return result
}

func (base Cards) augmentWith(augment Cards) Cards {
	result := base
	if augment.Width != 0 {
		result.Width = augment.Width
	}
	if augment.Margin != 0 {
		result.Margin = augment.Margin
	}
	return result
}

func (base Stylesheet) augmentWith(augment Stylesheet) Stylesheet {
	result := base

	result.Normal.overwriteIfDefined(augment.Normal)
	result.NormalEmphasized.overwriteIfDefined(augment.NormalEmphasized)
	result.RulerDay.overwriteIfDefined(augment.RulerDay)
	result.RulerNight.overwriteIfDefined(augment.RulerNight)
	result.RulerOutOfDomain.overwriteIfDefined(augment.RulerOutOfDomain)
	result.Tick.overwriteIfDefined(augment.Tick)
	result.KeyTick.overwriteIfDefined(augment.KeyTick)
	result.Cursor.overwriteIfDefined(augment.Cursor)
	result.CardBand.overwriteIfDefined(augment.CardBand)
	result.Status.overwriteIfDefined(augment.Status)
	result.CategoryFallback.overwriteIfDefined(augment.CategoryFallback)
	result.Help.overwriteIfDefined(augment.Help)
	result.Log.overwriteIfDefined(augment.Log)
	result.LogTitle.overwriteIfDefined(augment.LogTitle)

	return result
}

func (s *Styling) overwriteIfDefined(augment Styling) {
	if augment.Fg != "" && augment.Bg != "" {
		s.Fg = augment.Fg
		s.Bg = augment.Bg
	}
	if augment.Style != nil {
		if s.Style == nil {
			s.Style = &FontStyle{}
		}
		s.Style.Bold = augment.Style.Bold
		s.Style.Italic = augment.Style.Italic
		s.Style.Underlined = augment.Style.Underlined
	}
}

// A ColorschemeType can either be light or dark.
type ColorschemeType = int

const (
	_ ColorschemeType = iota
	Dark
	Light
)
