package ui

import (
	"github.com/ja-he/timeruler/internal/model"
)

// PositionInfo describes a position in the user interface.
//
// Retrievers should initially check for the type of pane they are receiving
// information on and can then retrieve the relevant additional information from
// whatever they got.
type PositionInfo interface{}

// NoPanePositionInfo is (no) information about no position.
type NoPanePositionInfo struct{}

// RulerPanePositionInfo provides information on a position on the ruler.
type RulerPanePositionInfo struct {
	Time int64
}

// CardsPanePositionInfo provides information on a position in the cards
// pane, importantly the schedule whose card is at the position, if any.
type CardsPanePositionInfo struct {
	Schedule *model.Schedule
	Time     int64
}

// StatusPanePositionInfo provides information on a position in a status pane.
type StatusPanePositionInfo struct{}
