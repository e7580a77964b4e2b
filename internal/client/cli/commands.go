package cli

import (
	"context"
	"fmt"
	"time"

	"github.com/dmitrijs2005/sleepcoach/internal/client/flow"
)

var _ execIface = (*App)(nil)

func (a *App) Home(ctx context.Context) error      { return a.Navigate(ctx, flow.RouteHome) }
func (a *App) Signup(ctx context.Context) error    { return a.Navigate(ctx, flow.RouteSignup) }
func (a *App) Login(ctx context.Context) error     { return a.Navigate(ctx, flow.RouteLogin) }
func (a *App) Resume(ctx context.Context) error    { return a.Navigate(ctx, flow.RouteOnboarding) }
func (a *App) Dashboard(ctx context.Context) error { return a.Navigate(ctx, flow.RouteDashboard) }
func (a *App) Analytics(ctx context.Context) error { return a.Navigate(ctx, flow.RouteAnalytics) }

// Logout drops the local session. Logging out without a session is not an
// error.
func (a *App) Logout(ctx context.Context) error {
	return a.logout(ctx)
}

// Status prints the local session without contacting the server.
func (a *App) Status(ctx context.Context) error {
	st := a.auth.Status(ctx)
	if !st.LoggedIn {
		fmt.Fprintln(a.out, "Not signed in.")
		return nil
	}

	if st.Profile != nil {
		fmt.Fprintf(a.out, "Signed in as %s (%s)\n", st.Profile.Nickname, st.Profile.UserID)
		fmt.Fprintf(a.out, "Progress: %d%%, screen %q\n", st.Profile.ProgressPercentage, st.Profile.CurrentScreen)
	} else {
		fmt.Fprintln(a.out, "Signed in, no cached profile.")
	}
	fmt.Fprintf(a.out, "Onboarding: %s\n", st.State)
	fmt.Fprintf(a.out, "Token: %s\n", st.Token)
	if st.Token.Expired(time.Now()) {
		fmt.Fprintln(a.out, "The token has expired; sign in again if requests fail.")
	}
	return nil
}

// Health checks that the API is reachable.
func (a *App) Health(ctx context.Context) error {
	h, err := a.auth.Ping(ctx)
	if err != nil {
		return err
	}
	status := h.Status
	if status == "" {
		status = "reachable"
	}
	fmt.Fprintf(a.out, "API: %s\n", status)
	return nil
}
