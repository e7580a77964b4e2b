package models

import (
	"errors"
	"fmt"
)

// Profile is the cached user snapshot returned by login and user details.
type Profile struct {
	UserID               string `json:"userId"`
	Nickname             string `json:"nickname"`
	CurrentScreen        Screen `json:"currentScreen,omitempty"`
	IsOnboardingComplete bool   `json:"isOnboardingComplete"`
	ProgressPercentage   int    `json:"progressPercentage"`
}

// Validate checks the fields a consumer relies on.
func (p *Profile) Validate() error {
	if p == nil {
		return errors.New("profile is missing")
	}
	if p.UserID == "" {
		return errors.New("profile userId is empty")
	}
	if p.CurrentScreen != "" && !p.CurrentScreen.Valid() {
		return fmt.Errorf("profile currentScreen %q is unknown", p.CurrentScreen)
	}
	if p.ProgressPercentage < 0 || p.ProgressPercentage > 100 {
		return fmt.Errorf("profile progressPercentage %d out of range", p.ProgressPercentage)
	}
	return nil
}

// Completed returns a copy of p with the terminal onboarding state applied:
// complete, current screen "completed", progress 100. A nil p yields a
// profile carrying only that state.
func (p *Profile) Completed() *Profile {
	var c Profile
	if p != nil {
		c = *p
	}
	c.IsOnboardingComplete = true
	c.CurrentScreen = ScreenCompleted
	c.ProgressPercentage = 100
	return &c
}

// Clone returns a copy of p, or nil.
func (p *Profile) Clone() *Profile {
	if p == nil {
		return nil
	}
	c := *p
	return &c
}
