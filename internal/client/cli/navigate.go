package cli

import (
	"context"
	"errors"
	"fmt"

	"github.com/dmitrijs2005/sleepcoach/internal/client/flow"
)

var (
	// errLeave ends navigation and returns to the command prompt.
	errLeave = errors.New("leave")
	// errLogout ends the session and continues at the login page.
	errLogout = errors.New("logout requested")
)

// maxRedirects bounds consecutive redirects before a page is shown.
const maxRedirects = 8

// page is a screen controller. It returns the route to continue on, or ""
// to go back to the command prompt.
type page func(ctx context.Context, st flow.State) (flow.Route, error)

func (a *App) page(route flow.Route) (page, bool) {
	switch route {
	case flow.RouteHome:
		return a.homePage, true
	case flow.RouteLogin:
		return a.loginPage, true
	case flow.RouteSignup:
		return a.signupPage, true
	case flow.RouteWelcome:
		return a.welcomePage, true
	case flow.RouteScreen1:
		return a.screen1Page, true
	case flow.RouteScreen2:
		return a.screen2Page, true
	case flow.RouteScreen3:
		return a.screen3Page, true
	case flow.RouteScreen4:
		return a.screen4Page, true
	case flow.RouteComplete:
		return a.completePage, true
	case flow.RouteDashboard:
		return a.dashboardPage, true
	case flow.RouteAnalytics:
		return a.analyticsPage, true
	}
	return nil, false
}

// Navigate shows route and follows the pages it leads to. Before each page
// the flow resolver decides whether it may be shown; redirects are followed.
// Navigation ends when a page returns "" or the user types "back".
func (a *App) Navigate(ctx context.Context, route flow.Route) error {
	redirects := 0
	for route != "" {
		st, to, redirect := a.resolver.Enter(ctx, route)
		if redirect {
			redirects++
			if redirects > maxRedirects {
				return fmt.Errorf("too many redirects at %s", route)
			}
			a.logger.Debug(ctx, "redirect", "from", route, "to", to, "state", st.String())
			route = to
			continue
		}
		redirects = 0

		show, ok := a.page(route)
		if !ok {
			return fmt.Errorf("no page for %s", route)
		}

		next, err := show(ctx, st)
		switch {
		case errors.Is(err, errLeave):
			return nil
		case errors.Is(err, errLogout):
			if err := a.logout(ctx); err != nil {
				return err
			}
			next = flow.RouteLogin
		case err != nil:
			return err
		}
		route = next
	}
	return nil
}

func (a *App) logout(ctx context.Context) error {
	if err := a.auth.Logout(ctx); err != nil {
		return err
	}
	fmt.Fprintln(a.out, "You have been signed out.")
	return nil
}
