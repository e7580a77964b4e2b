// Package flow decides where a user belongs in the onboarding journey.
//
// Resolve is the single transition function: every page asks it for the
// current State and lets Guard decide whether to render or redirect. Forward
// navigation after a successful submission follows the fixed order in Next
// and does not consult the server.
package flow

import (
	"github.com/dmitrijs2005/sleepcoach/internal/client/models"
)

type Kind int

const (
	Anonymous Kind = iota
	InProgress
	Complete
)

func (k Kind) String() string {
	switch k {
	case Anonymous:
		return "anonymous"
	case InProgress:
		return "in progress"
	case Complete:
		return "complete"
	}
	return "unknown"
}

// State is the resolved position of the user. Screen is set only for
// InProgress.
type State struct {
	Kind   Kind
	Screen models.Screen
}

func (s State) String() string {
	if s.Kind == InProgress {
		return s.Kind.String() + " (" + string(s.Screen) + ")"
	}
	return s.Kind.String()
}

// Resolve maps the session inputs to a State:
//
//  1. no token: Anonymous;
//  2. profile complete: Complete;
//  3. otherwise InProgress at welcome when nothing was answered yet, at the
//     reported screen when there is one, else at screen1.
//
// A token without any profile is Anonymous: the session cannot be trusted.
func Resolve(hasToken bool, profile *models.Profile) State {
	if !hasToken || profile == nil {
		return State{Kind: Anonymous}
	}
	if profile.IsOnboardingComplete {
		return State{Kind: Complete}
	}

	screen := profile.CurrentScreen
	switch {
	case profile.ProgressPercentage == 0 && (screen == "" || screen == models.Screen1):
		return State{Kind: InProgress, Screen: models.ScreenWelcome}
	case screen != "" && screen != models.ScreenCompleted:
		return State{Kind: InProgress, Screen: screen}
	default:
		return State{Kind: InProgress, Screen: models.Screen1}
	}
}
