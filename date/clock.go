package date

import (
	"encoding/json"
	"fmt"
	"time"
)

// ClockFormat is the format used to represent clock times as strings.
const ClockFormat = "15:04"

// Clock represents a wall clock time with minute granularity.
// It complements Date on records that carry both a day and a time of day.
type Clock struct {
	h int
	m int
}

// NewClock returns a normalized Clock for the given hour and minute.
func NewClock(hour, minute int) Clock {
	t := time.Date(2000, 1, 1, hour, minute, 0, 0, time.UTC)
	return Clock{h: t.Hour(), m: t.Minute()}
}

// Now returns the current wall clock time.
func Now() Clock {
	t := time.Now()
	return Clock{h: t.Hour(), m: t.Minute()}
}

// Hour returns the hour of the clock.
func (c Clock) Hour() int { return c.h }

// Minute returns the minute of the clock.
func (c Clock) Minute() int { return c.m }

// Compare returns -1, 0 or 1 when c is before, equal to, or after x.
func (c Clock) Compare(x Clock) int {
	a, b := c.h*60+c.m, x.h*60+x.m
	switch {
	case a < b:
		return -1
	case a > b:
		return 1
	default:
		return 0
	}
}

// String formats the clock in its standard "15:04" format.
func (c Clock) String() string { return fmt.Sprintf("%02d:%02d", c.h, c.m) }

// ParseClock parses a Clock from a "15:04" string.
func ParseClock(str string) (Clock, error) {
	t, err := time.Parse(ClockFormat, str)
	if err != nil {
		return Clock{}, fmt.Errorf("invalid clock time %q want format %q: %w", str, ClockFormat, err)
	}
	return Clock{h: t.Hour(), m: t.Minute()}, nil
}

// MustParseClock is like ParseClock but panics on error.
func MustParseClock(str string) Clock {
	c, err := ParseClock(str)
	if err != nil {
		panic(err.Error())
	}
	return c
}

func (c *Clock) UnmarshalJSON(bytes []byte) error {
	var str string
	if err := json.Unmarshal(bytes, &str); err != nil {
		return err
	}
	parsed, err := ParseClock(str)
	if err != nil {
		return err
	}
	*c = parsed
	return nil
}

func (c Clock) MarshalJSON() ([]byte, error) {
	str := c.String()
	return json.Marshal(&str)
}

var _ json.Marshaler = (*Clock)(nil)
var _ json.Unmarshaler = (*Clock)(nil)
