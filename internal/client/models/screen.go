package models

// Screen identifies one step of the onboarding survey as reported by the
// server in currentScreen.
type Screen string

const (
	ScreenWelcome   Screen = "welcome"
	Screen1         Screen = "screen1"
	Screen2         Screen = "screen2"
	Screen3         Screen = "screen3"
	Screen4         Screen = "screen4"
	ScreenComplete  Screen = "complete"
	ScreenCompleted Screen = "completed"
)

// Valid reports whether s is one of the known screen identifiers.
func (s Screen) Valid() bool {
	switch s {
	case ScreenWelcome, Screen1, Screen2, Screen3, Screen4, ScreenComplete, ScreenCompleted:
		return true
	}
	return false
}
