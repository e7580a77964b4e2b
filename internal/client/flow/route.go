package flow

import (
	"strings"

	"github.com/dmitrijs2005/sleepcoach/internal/client/models"
)

// Route names a page. Values mirror the web paths the product uses.
type Route string

const (
	RouteHome       Route = "/"
	RouteLogin      Route = "/auth/login"
	RouteSignup     Route = "/auth/signup"
	RouteOnboarding Route = "/onboarding"
	RouteWelcome    Route = "/onboarding/welcome"
	RouteScreen1    Route = "/onboarding/screen1"
	RouteScreen2    Route = "/onboarding/screen2"
	RouteScreen3    Route = "/onboarding/screen3"
	RouteScreen4    Route = "/onboarding/screen4"
	RouteComplete   Route = "/onboarding/complete"
	RouteDashboard  Route = "/dashboard"
	RouteAnalytics  Route = "/analytics"
)

const onboardingPrefix = string(RouteOnboarding) + "/"

// ScreenRoute returns the onboarding page of screen.
func ScreenRoute(screen models.Screen) Route {
	return Route(onboardingPrefix + string(screen))
}

// Screen returns the onboarding screen r shows, if any.
func (r Route) Screen() (models.Screen, bool) {
	s, ok := strings.CutPrefix(string(r), onboardingPrefix)
	if !ok {
		return "", false
	}
	screen := models.Screen(s)
	if !screen.Valid() || screen == models.ScreenCompleted {
		return "", false
	}
	return screen, true
}

func (r Route) public() bool {
	return r == RouteHome || r == RouteLogin || r == RouteSignup
}

// Target is the page a user in state s should be sent to.
func Target(s State) Route {
	switch s.Kind {
	case Complete:
		return RouteDashboard
	case InProgress:
		return ScreenRoute(s.Screen)
	default:
		return RouteLogin
	}
}

// sequence is the forward order of the survey.
var sequence = []models.Screen{
	models.ScreenWelcome,
	models.Screen1,
	models.Screen2,
	models.Screen3,
	models.Screen4,
	models.ScreenComplete,
}

// Next returns the page that follows a successful submission on screen.
// The last step leads to the dashboard.
func Next(screen models.Screen) Route {
	for i, s := range sequence {
		if s != screen {
			continue
		}
		if i+1 < len(sequence) {
			return ScreenRoute(sequence[i+1])
		}
		return RouteDashboard
	}
	return RouteDashboard
}

// Guard decides whether page may be shown in state s. It returns the page to
// go to instead and true when a redirect is needed.
func Guard(page Route, s State) (Route, bool) {
	switch {
	case page.public():
		if s.Kind == Anonymous {
			return "", false
		}
		return Target(s), true

	case page == RouteOnboarding:
		return Target(s), true

	case page == RouteDashboard || page == RouteAnalytics:
		if s.Kind == Complete {
			return "", false
		}
		return Target(s), true
	}

	if _, ok := page.Screen(); ok {
		switch s.Kind {
		case Anonymous:
			return RouteLogin, true
		case Complete:
			return RouteDashboard, true
		}
		return "", false
	}

	// unknown page
	return Target(s), true
}

// RequiresFreshProfile reports whether page should refresh the profile from
// the server before resolving, rather than trust the cached copy.
func RequiresFreshProfile(page Route) bool {
	return !page.public()
}
