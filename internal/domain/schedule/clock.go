package schedule

import (
	"errors"
	"fmt"
	"time"
)

// Clock is a time of day in seconds since midnight.
type Clock int

var ErrClockFormat = errors.New("time has wrong format, use HH:MM[:SS]")

var clockLayouts = []string{"15:04:05", "15:04"}

func ParseClock(s string) (Clock, error) {
	for _, layout := range clockLayouts {
		if t, err := time.Parse(layout, s); err == nil {
			return Clock(t.Hour()*3600 + t.Minute()*60 + t.Second()), nil
		}
	}
	return 0, ErrClockFormat
}

func (c Clock) String() string {
	return fmt.Sprintf("%02d:%02d:%02d", int(c)/3600, int(c)%3600/60, int(c)%60)
}

// On places the clock on the calendar day of d, in d's location.
func (c Clock) On(d time.Time) time.Time {
	return time.Date(d.Year(), d.Month(), d.Day(), 0, 0, 0, 0, d.Location()).
		Add(time.Duration(c) * time.Second)
}
