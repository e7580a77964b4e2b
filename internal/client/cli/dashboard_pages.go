package cli

import (
	"context"
	"fmt"
	"io"
	"strings"
	"text/tabwriter"

	"github.com/dmitrijs2005/sleepcoach/internal/client/flow"
	"github.com/dmitrijs2005/sleepcoach/internal/client/models"
)

// barWidth is the length of the longest funnel bar.
const barWidth = 30

func (a *App) dashboardPage(ctx context.Context, _ flow.State) (flow.Route, error) {
	p, _ := a.auth.CachedProfile(ctx)
	name := ""
	progress := 100
	if p != nil {
		name = p.Nickname
		if p.ProgressPercentage > 0 {
			progress = p.ProgressPercentage
		}
	}

	fmt.Fprintf(a.out, "\nWelcome, %s!\n", name)
	fmt.Fprintln(a.out, "Your personalized sleep journey continues.")
	fmt.Fprintf(a.out, "Onboarding: %d%% complete\n", progress)
	fmt.Fprintln(a.out, "  [x] Sleep assessment")
	fmt.Fprintln(a.out, "  [x] Schedule setup")
	fmt.Fprintln(a.out, "  [x] Goals set")

	s, err := a.ask("Type 'analytics' to view analytics, or press Enter to return")
	if err != nil {
		return "", err
	}
	if strings.EqualFold(s, "analytics") {
		return flow.RouteAnalytics, nil
	}
	return "", nil
}

func (a *App) analyticsPage(ctx context.Context, _ flow.State) (flow.Route, error) {
	data, err := a.analytics.Fetch(ctx)
	if err != nil {
		a.showError(err)
		return "", nil
	}
	renderAnalytics(a.out, data)
	return "", nil
}

func renderAnalytics(w io.Writer, data models.Analytics) {
	s := data.Summary
	fmt.Fprintln(w, "\nOnboarding analytics")
	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)
	fmt.Fprintf(tw, "Total users\t%d\n", s.TotalUsers)
	fmt.Fprintf(tw, "Completed users\t%d\n", s.CompletedUsers)
	fmt.Fprintf(tw, "Dropped off\t%d\n", s.DropOffUsers)
	fmt.Fprintf(tw, "Completion rate\t%s\n", models.FormatRate(s.CompletionRate))
	_ = tw.Flush()

	if len(data.Funnel) > 0 {
		fmt.Fprintln(w, "\nFunnel")
		most := data.MaxFunnelVisits()
		tw = tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)
		for _, f := range data.Funnel {
			fmt.Fprintf(tw, "%s\t%s\t%d visits\t%s completed\t%s of users\n",
				f.Screen, bar(f.Visits, most), f.Visits, models.FormatRate(f.CompletionRate), models.FormatRate(f.ShareOfUsers))
		}
		_ = tw.Flush()
	}

	if len(data.Screens) > 0 {
		fmt.Fprintln(w, "\nScreens")
		tw = tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)
		for _, sc := range data.Screens {
			fmt.Fprintf(tw, "%s\t%d visited\t%s completed\t%s dropped\t%s\n",
				sc.Screen, sc.Visited, models.FormatRate(sc.CompletionRate), models.FormatRate(sc.DropOffRate),
				strings.Join(sc.SampleUsers, ", "))
		}
		_ = tw.Flush()
	}

	fmt.Fprintln(w, "\nCompleted users")
	if len(data.CompletedUsers) == 0 {
		fmt.Fprintln(w, "  No completed users yet")
	}
	for _, u := range data.CompletedUsers {
		fmt.Fprintf(w, "  %s\n", u.Nickname)
	}

	fmt.Fprintln(w, "\nDropped off")
	if len(data.DroppedOffUsers) == 0 {
		fmt.Fprintln(w, "  No dropoffs tracked yet")
	}
	for _, u := range data.DroppedOffUsers {
		fmt.Fprintf(w, "  %s (%d steps)\n", u.Nickname, len(u.Journey))
	}
}

func bar(n, most int) string {
	if most <= 0 || n <= 0 {
		return ""
	}
	return strings.Repeat("#", min(n, most)*barWidth/most)
}
