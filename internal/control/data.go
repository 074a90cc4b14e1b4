// Package control holds the state the TUI controller operates on.
package control

import (
	"fmt"
	"strconv"

	"github.com/ja-he/timeruler/internal/model"
	"github.com/ja-he/timeruler/internal/ui"
	"github.com/ja-he/timeruler/internal/util"
)

// EnvData represents the environment data.
type EnvData struct {
	BaseDirPath string
	Latitude    string
	Longitude   string
}

// SunTimesProvider returns a provider for the configured location, or nil if
// no location is configured.
func (e EnvData) SunTimesProvider() (*model.SunTimesProvider, error) {
	if e.Latitude == "" && e.Longitude == "" {
		return nil, nil
	}
	lat, err := strconv.ParseFloat(e.Latitude, 64)
	if err != nil || lat < -90 || lat > 90 {
		return nil, fmt.Errorf("invalid latitude '%s'", e.Latitude)
	}
	lon, err := strconv.ParseFloat(e.Longitude, 64)
	if err != nil || lon < -180 || lon > 180 {
		return nil, fmt.Errorf("invalid longitude '%s'", e.Longitude)
	}
	return &model.SunTimesProvider{Latitude: lat, Longitude: lon}, nil
}

// ControlData is the state of the TUI.
type ControlData struct {
	CursorPos ui.MouseCursorPos

	EnvData EnvData

	CurrentDate model.Date
	SunTimes    *model.SunTimes
	Schedules   []*model.Schedule
	Selected    *model.Schedule

	ShowLog   bool
	ShowHelp  bool
	ShowDebug bool

	RenderTimes          util.MetricsHandler
	EventProcessingTimes util.MetricsHandler
}

// NewControlData constructs the control data for the given date.
func NewControlData(date model.Date, envData EnvData) *ControlData {
	return &ControlData{
		CurrentDate: date,
		EnvData:     envData,
	}
}
