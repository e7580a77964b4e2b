package models

import (
	"fmt"
	"math"
	"strconv"
	"strings"
)

// Clock is a time of day with minute precision.
type Clock struct {
	Hour   int
	Minute int
}

// AssumedBedTime is used to estimate sleep duration on the wake-up screen,
// which is shown before the bedtime answer is read back from the server.
var AssumedBedTime = Clock{Hour: 22, Minute: 30}

// ParseClock parses "HH:MM" (24h). The error is a *ValidationError.
func ParseClock(s string) (Clock, error) {
	h, m, ok := strings.Cut(strings.TrimSpace(s), ":")
	if !ok {
		return Clock{}, invalid("time", "Please enter a valid time")
	}
	hour, err := strconv.Atoi(h)
	if err != nil || hour < 0 || hour > 23 {
		return Clock{}, invalid("time", "Please enter a valid time")
	}
	minute, err := strconv.Atoi(m)
	if err != nil || len(m) != 2 || minute < 0 || minute > 59 {
		return Clock{}, invalid("time", "Please enter a valid time")
	}
	return Clock{Hour: hour, Minute: minute}, nil
}

func (c Clock) String() string {
	return fmt.Sprintf("%02d:%02d", c.Hour, c.Minute)
}

func (c Clock) minutes() int {
	return c.Hour*60 + c.Minute
}

// Format12 renders the clock as "h:MM AM/PM".
func (c Clock) Format12() string {
	hour := c.Hour % 12
	if hour == 0 {
		hour = 12
	}
	suffix := "AM"
	if c.Hour >= 12 {
		suffix = "PM"
	}
	return fmt.Sprintf("%d:%02d %s", hour, c.Minute, suffix)
}

// SleepDuration returns the hours between bed and wake, wrapping past
// midnight, rounded to one decimal.
func SleepDuration(bed, wake Clock) float64 {
	total := wake.minutes() - bed.minutes()
	if total < 0 {
		total += 24 * 60
	}
	return math.Round(float64(total)/60*10) / 10
}
