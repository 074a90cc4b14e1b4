package cli

import (
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/rs/zerolog/log"

	"github.com/ja-he/timeruler/internal/config"
	"github.com/ja-he/timeruler/internal/control"
	"github.com/ja-he/timeruler/internal/control/gesture"
	"github.com/ja-he/timeruler/internal/model"
	"github.com/ja-he/timeruler/internal/storage"
	"github.com/ja-he/timeruler/internal/storage/providers"
)

// loadEnvironment reads the environment and the configuration file
// '${TIMERULER_HOME}/config.yaml' (default home '~/.config/timeruler'),
// augmenting the defaults of the given theme.
// A missing configuration file is not an error.
func loadEnvironment(theme config.ColorschemeType) (config.Config, control.EnvData, error) {
	var envData control.EnvData

	home := os.Getenv("TIMERULER_HOME")
	if home == "" {
		envData.BaseDirPath = os.Getenv("HOME") + "/.config/timeruler"
	} else {
		envData.BaseDirPath = strings.TrimRight(home, "/")
	}

	envData.Latitude = os.Getenv("LATITUDE")
	envData.Longitude = os.Getenv("LONGITUDE")

	path := envData.BaseDirPath + "/config.yaml"
	yamlData, err := os.ReadFile(path)
	if err != nil {
		log.Warn().Err(err).Str("file", path).Msg("can't read config file, using defaults")
		yamlData = make([]byte, 0)
	}
	cfg, err := config.ParseConfigAugmentDefaults(theme, yamlData)
	if err != nil {
		return config.Config{}, envData, fmt.Errorf("can't parse config data (%w)", err)
	}

	return cfg, envData, nil
}

// parseTheme maps the theme flag to a colorscheme type; dark is the default.
func parseTheme(theme string) config.ColorschemeType {
	if theme == "light" {
		return config.Light
	}
	return config.Dark
}

// parseDay parses the day flag, defaulting to the day of now.
func parseDay(day string, now time.Time) (model.Date, error) {
	if day == "" {
		return model.DateFromGotime(now), nil
	}
	date, err := model.FromString(day)
	if err != nil {
		return model.Date{}, fmt.Errorf("could not parse given date '%s' (%w)", day, err)
	}
	return date, nil
}

// dayDomain returns the domain spanning the date with the configured unit.
func dayDomain(cfg config.Config, date model.Date, loc *time.Location) (model.TimeDomain, error) {
	unit, err := time.ParseDuration(cfg.Ruler.Unit)
	if err != nil {
		return model.TimeDomain{}, fmt.Errorf("invalid ruler unit '%s' (%w)", cfg.Ruler.Unit, err)
	}
	return model.DayDomain(date, loc, unit)
}

// newRuler sets up a gesture controller for the domain as configured.
func newRuler(cfg config.Config, domain model.TimeDomain) (*gesture.Controller, error) {
	ruler, err := gesture.NewController(domain, cfg.Ruler.MinTickSpace)
	if err != nil {
		return nil, fmt.Errorf("could not set up ruler (%w)", err)
	}
	ruler.SetCursorFraction(cfg.Ruler.CursorPosition)
	if cfg.Ruler.IsAdaptiveUnit() {
		ruler.SetZoomLevelHook(model.AdaptiveUnit(cfg.Ruler.MinTickSpace))
	}
	return ruler, nil
}

// zoomTo runs a complete scale gesture bringing the ruler to the given
// pixels per millisecond (within its bounds).
func zoomTo(ruler *gesture.Controller, unitPixel float64) {
	zoomBy(ruler, unitPixel/ruler.Snapshot().UnitPixel)
}

// zoomBy runs a complete scale gesture with the given factor.
func zoomBy(ruler *gesture.Controller, factor float64) {
	ruler.ScaleBegin()
	ruler.ScaleBy(factor)
	ruler.ScaleEnd()
	ruler.PointerUp()
}

// scheduleProvider combines the configured schedules with the given
// calendar files.
func scheduleProvider(cfg config.Config, icsPaths []string, loc *time.Location) storage.ScheduleProvider {
	result := storage.MultiProvider{providers.NewConfigProvider(cfg.Schedules, loc)}
	if len(icsPaths) > 0 {
		result = append(result, providers.NewICSProvider(icsPaths...))
	}
	return result
}

// ViewportOpts are the flags shared by the commands printing a viewport.
type ViewportOpts struct {
	Day    string  `short:"d" long:"day" description:"Specify the day to show" value-name:"<YYYY-MM-DD>"`
	Cursor string  `short:"c" long:"cursor" description:"Time of day at the cursor line (default: start of day)" value-name:"<HH:MM>"`
	Extent float64 `short:"e" long:"extent" default:"40" description:"Viewport size along the ruler, in cells"`
	Zoom   float64 `short:"z" long:"zoom" default:"1" description:"Zoom factor applied to the fully zoomed in ruler"`
}

// viewport sets up the ruler for the options.
func (o *ViewportOpts) viewport(cfg config.Config, loc *time.Location) (*gesture.Controller, model.Date, error) {
	date, err := parseDay(o.Day, time.Now().In(loc))
	if err != nil {
		return nil, model.Date{}, err
	}
	if o.Extent <= 0 {
		return nil, model.Date{}, fmt.Errorf("extent must be positive, got %f", o.Extent)
	}
	domain, err := dayDomain(cfg, date, loc)
	if err != nil {
		return nil, model.Date{}, err
	}
	ruler, err := newRuler(cfg, domain)
	if err != nil {
		return nil, model.Date{}, err
	}

	if o.Zoom != 1 {
		if o.Zoom <= 0 {
			return nil, model.Date{}, fmt.Errorf("zoom must be positive, got %f", o.Zoom)
		}
		zoomBy(ruler, o.Zoom)
	}
	if o.Cursor != "" {
		ts, err := model.ParseTimestamp(o.Cursor)
		if err != nil {
			return nil, model.Date{}, fmt.Errorf("invalid cursor (%w)", err)
		}
		ruler.ScrollTo(model.Millis(ts.On(date, loc)))
	}

	return ruler, date, nil
}
