package models

import (
	"math"
	"strings"
)

type SleepStruggleDuration string

const (
	StruggleLessThan2Weeks  SleepStruggleDuration = "LESS_THAN_2_WEEKS"
	StruggleTwoToEightWeeks SleepStruggleDuration = "TWO_TO_EIGHT_WEEKS"
	StruggleMoreThan8Weeks  SleepStruggleDuration = "MORE_THAN_8_WEEKS"
)

// SleepStruggleOptions lists the screen 1 choices in display order.
var SleepStruggleOptions = []Option[SleepStruggleDuration]{
	{Value: StruggleLessThan2Weeks, Label: "Less than 2 weeks", Description: "Recent sleep issues"},
	{Value: StruggleTwoToEightWeeks, Label: "2 to 8 weeks", Description: "Ongoing sleep challenges"},
	{Value: StruggleMoreThan8Weeks, Label: "More than 8 weeks", Description: "Long-term sleep difficulties"},
}

type DesiredChange string

const (
	ChangeGoToSleepEasily   DesiredChange = "GO_TO_SLEEP_EASILY"
	ChangeSleepThroughNight DesiredChange = "SLEEP_THROUGH_NIGHT"
	ChangeWakeUpRefreshed   DesiredChange = "WAKE_UP_REFRESHED"
)

// DesiredChangeOptions lists the completion step choices in display order.
var DesiredChangeOptions = []Option[DesiredChange]{
	{Value: ChangeGoToSleepEasily, Label: "Go to sleep easily", Description: "Fall asleep faster when you get into bed"},
	{Value: ChangeSleepThroughNight, Label: "Sleep through the night", Description: "Stay asleep without frequent wake-ups"},
	{Value: ChangeWakeUpRefreshed, Label: "Wake up refreshed", Description: "Feel energized and rested in the morning"},
}

// Option is one selectable answer of a choice screen.
type Option[T ~string | ~int] struct {
	Value       T
	Label       string
	Description string
}

// Sleep goal bounds offered on screen 4.
const (
	MinSleepGoal = 4
	MaxSleepGoal = 10
)

type Screen1Data struct {
	SleepStruggleDuration SleepStruggleDuration `json:"sleepStruggleDuration"`
}

func (d Screen1Data) Validate() error {
	for _, o := range SleepStruggleOptions {
		if o.Value == d.SleepStruggleDuration {
			return nil
		}
	}
	return invalid("sleepStruggleDuration", "Please select an option to continue")
}

type Screen2Data struct {
	BedTime string `json:"bedTime"`
}

func (d Screen2Data) Validate() error {
	if strings.TrimSpace(d.BedTime) == "" {
		return invalid("bedTime", "Please select your bedtime")
	}
	if _, err := ParseClock(d.BedTime); err != nil {
		return invalid("bedTime", "Please enter a valid time")
	}
	return nil
}

type Screen3Data struct {
	WakeUpTime string   `json:"wakeUpTime"`
	SleepHours *float64 `json:"sleepHours,omitempty"`
}

func (d Screen3Data) Validate() error {
	if strings.TrimSpace(d.WakeUpTime) == "" {
		return invalid("wakeUpTime", "Please select your wake up time")
	}
	if _, err := ParseClock(d.WakeUpTime); err != nil {
		return invalid("wakeUpTime", "Please enter a valid time")
	}
	if d.SleepHours != nil {
		h := *d.SleepHours
		if h < 1 || h > 12 {
			return invalid("sleepHours", "Sleep hours must be between 1 and 12")
		}
		if math.Mod(h*2, 1) != 0 {
			return invalid("sleepHours", "Sleep hours must be in steps of 0.5")
		}
	}
	return nil
}

type Screen4Data struct {
	SleepHours int `json:"sleepHours"`
}

func (d Screen4Data) Validate() error {
	if d.SleepHours == 0 {
		return invalid("sleepHours", "Please select your desired sleep hours")
	}
	if d.SleepHours < MinSleepGoal || d.SleepHours > MaxSleepGoal {
		return invalid("sleepHours", "Sleep hours must be between %d and %d", MinSleepGoal, MaxSleepGoal)
	}
	return nil
}

// SleepGoalQuality labels a screen 4 choice.
func SleepGoalQuality(hours int) string {
	switch {
	case hours < 6:
		return "Too Short"
	case hours >= 7 && hours <= 9:
		return "Optimal"
	default:
		return "Extended"
	}
}

type CompleteOnboardingData struct {
	DesiredChanges []DesiredChange `json:"desiredChanges"`
}

func (d CompleteOnboardingData) Validate() error {
	if len(d.DesiredChanges) == 0 {
		return invalid("desiredChanges", "Please select at least one desired change")
	}
	for _, c := range d.DesiredChanges {
		if !knownChange(c) {
			return invalid("desiredChanges", "Unknown desired change %q", string(c))
		}
	}
	return nil
}

// Deduplicated returns d with repeated changes removed, keeping first
// occurrence order.
func (d CompleteOnboardingData) Deduplicated() CompleteOnboardingData {
	seen := make(map[DesiredChange]struct{}, len(d.DesiredChanges))
	out := make([]DesiredChange, 0, len(d.DesiredChanges))
	for _, c := range d.DesiredChanges {
		if _, ok := seen[c]; ok {
			continue
		}
		seen[c] = struct{}{}
		out = append(out, c)
	}
	return CompleteOnboardingData{DesiredChanges: out}
}

func knownChange(c DesiredChange) bool {
	for _, o := range DesiredChangeOptions {
		if o.Value == c {
			return true
		}
	}
	return false
}
