package model

import (
	"fmt"
	"time"

	"github.com/google/uuid"
)

// CategoryName is the name of a category.
type CategoryName = string

// Schedule is a single interval displayed as a card on the ruler.
//
// Payload is opaque to the ruler and handed back on selection.
type Schedule struct {
	ID       string
	Start    int64
	End      int64
	Title    string
	Text     string
	Category CategoryName
	Payload  any
}

// NewSchedule constructs a schedule with a fresh ID.
func NewSchedule(start, end time.Time, title string) (*Schedule, error) {
	s := &Schedule{
		ID:    uuid.NewString(),
		Start: Millis(start),
		End:   Millis(end),
		Title: title,
	}
	if err := s.Validate(); err != nil {
		return nil, err
	}
	return s, nil
}

// Validate checks that the schedule does not end before it starts.
func (s *Schedule) Validate() error {
	if s.Start > s.End {
		return fmt.Errorf("schedule '%s' starts after it ends: %w", s.Title, ErrInvalidSchedule)
	}
	return nil
}

// Duration returns the duration of the schedule.
func (s *Schedule) Duration() time.Duration {
	return time.Duration(s.End-s.Start) * time.Millisecond
}

// Overlaps reports whether the schedule intersects the given domain.
func (s *Schedule) Overlaps(d TimeDomain) bool {
	return s.End >= d.Start && s.Start <= d.End
}

func (s *Schedule) String() string {
	return fmt.Sprintf("'%s' (%s-%s)",
		s.Title,
		FromMillis(s.Start).Format("15:04"),
		FromMillis(s.End).Format("15:04"),
	)
}
