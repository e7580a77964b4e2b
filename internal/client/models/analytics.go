package models

import (
	"encoding/json"
	"fmt"
	"time"
)

// AnalyticsReport is the analytics payload after the optional data
// envelopes have been removed. Counts absent on the wire decode as zero.
type AnalyticsReport struct {
	Summary         *AnalyticsSummary `json:"summary"`
	CompletedUsers  []CompletedUser   `json:"completedUsers"`
	DroppedOffUsers []DroppedOffUser  `json:"droppedOffUsers"`
	ScreenAnalytics []ScreenAnalytics `json:"screenAnalytics"`
	Funnel          []FunnelStep      `json:"funnel"`
}

// Validate rejects reports without a summary and reports carrying negative
// counts.
func (r *AnalyticsReport) Validate() error {
	if r.Summary == nil {
		return fmt.Errorf("analytics summary is missing")
	}
	if r.Summary.TotalUsersRegistered < 0 || r.Summary.TotalUsersCompletedOnboarding < 0 {
		return fmt.Errorf("analytics summary has a negative user count")
	}
	for i, f := range r.Funnel {
		if f.Visits < 0 || f.Completions < 0 || f.DropOffs < 0 {
			return fmt.Errorf("analytics funnel step %d has a negative count", i)
		}
	}
	return nil
}

type AnalyticsSummary struct {
	TotalUsersRegistered          int      `json:"totalUsersRegistered"`
	TotalUsersCompletedOnboarding int      `json:"totalUsersCompletedOnboarding"`
	OverallCompletionRate         *float64 `json:"overallCompletionRate"`
}

// OnboardingData is the (possibly partial) set of answers of one user.
type OnboardingData struct {
	SleepStruggleDuration SleepStruggleDuration `json:"sleepStruggleDuration,omitempty"`
	BedTime               string                `json:"bedTime,omitempty"`
	WakeUpTime            string                `json:"wakeUpTime,omitempty"`
	SleepHours            *float64              `json:"sleepHours,omitempty"`
	DesiredChanges        []DesiredChange       `json:"desiredChanges,omitempty"`
}

type CompletedUser struct {
	UserID         string          `json:"userId"`
	Nickname       string          `json:"nickname"`
	OnboardingData *OnboardingData `json:"onboardingData"`
	CompletedAt    *time.Time      `json:"completedAt"`
}

type DroppedOffUser struct {
	UserID       string            `json:"userId"`
	Nickname     string            `json:"nickname"`
	Journey      []json.RawMessage `json:"journey"`
	PartialData  *OnboardingData   `json:"partialData"`
	LastActiveAt *time.Time        `json:"lastActiveAt"`
}

// UserRef names a user inside per-screen statistics.
type UserRef struct {
	UserID   string `json:"userId"`
	Nickname string `json:"nickname"`
}

type ScreenAnalytics struct {
	Screen             string    `json:"screen"`
	UsersWhoVisited    []UserRef `json:"usersWhoVisited"`
	UsersWhoCompleted  []UserRef `json:"usersWhoCompleted"`
	UsersWhoDroppedOff []UserRef `json:"usersWhoDroppedOff"`
}

type FunnelStep struct {
	Screen      string `json:"screen"`
	Visits      int    `json:"visits"`
	Completions int    `json:"completions"`
	DropOffs    int    `json:"dropOffs"`
}

// Analytics is the normalized view shown on the analytics page.
type Analytics struct {
	Summary         Summary
	CompletedUsers  []CompletedUser
	DroppedOffUsers []DroppedOffUser
	Screens         []ScreenStats
	Funnel          []FunnelStats
}

type Summary struct {
	TotalUsers     int
	CompletedUsers int
	DropOffUsers   int
	CompletionRate float64
}

type ScreenStats struct {
	Screen         string
	Visited        int
	Completed      int
	DroppedOff     int
	CompletionRate float64
	DropOffRate    float64
	SampleUsers    []string
}

type FunnelStats struct {
	Screen         string
	Visits         int
	Completions    int
	DropOffs       int
	CompletionRate float64
	DropOffRate    float64
	ShareOfUsers   float64
}

// sampleUsersLimit caps the nicknames listed per screen.
const sampleUsersLimit = 5

// NormalizeAnalytics reshapes a report for display: the drop-off count is
// derived from the totals, a missing completion rate becomes 0, missing
// lists become empty and unnamed screens get positional names.
func NormalizeAnalytics(r *AnalyticsReport) Analytics {
	var a Analytics

	if r.Summary != nil {
		a.Summary = Summary{
			TotalUsers:     r.Summary.TotalUsersRegistered,
			CompletedUsers: r.Summary.TotalUsersCompletedOnboarding,
			DropOffUsers:   r.Summary.TotalUsersRegistered - r.Summary.TotalUsersCompletedOnboarding,
		}
		if r.Summary.OverallCompletionRate != nil {
			a.Summary.CompletionRate = *r.Summary.OverallCompletionRate
		}
	}

	a.CompletedUsers = append([]CompletedUser{}, r.CompletedUsers...)
	a.DroppedOffUsers = append([]DroppedOffUser{}, r.DroppedOffUsers...)

	a.Screens = make([]ScreenStats, 0, len(r.ScreenAnalytics))
	for i, s := range r.ScreenAnalytics {
		st := ScreenStats{
			Screen:     s.Screen,
			Visited:    len(s.UsersWhoVisited),
			Completed:  len(s.UsersWhoCompleted),
			DroppedOff: len(s.UsersWhoDroppedOff),
		}
		if st.Screen == "" {
			st.Screen = fmt.Sprintf("Screen %d", i+1)
		}
		st.CompletionRate = Rate(st.Completed, st.Visited)
		st.DropOffRate = Rate(st.DroppedOff, st.Visited)
		for _, u := range s.UsersWhoVisited {
			if len(st.SampleUsers) == sampleUsersLimit {
				break
			}
			st.SampleUsers = append(st.SampleUsers, u.Nickname)
		}
		a.Screens = append(a.Screens, st)
	}

	totalUsers := a.Summary.TotalUsers
	if totalUsers == 0 {
		totalUsers = 1
	}
	a.Funnel = make([]FunnelStats, 0, len(r.Funnel))
	for i, f := range r.Funnel {
		st := FunnelStats{
			Screen:         f.Screen,
			Visits:         f.Visits,
			Completions:    f.Completions,
			DropOffs:       f.DropOffs,
			CompletionRate: Rate(f.Completions, f.Visits),
			DropOffRate:    Rate(f.DropOffs, f.Visits),
			ShareOfUsers:   Rate(f.Visits, totalUsers),
		}
		if st.Screen == "" {
			st.Screen = fmt.Sprintf("Step %d", i+1)
		}
		a.Funnel = append(a.Funnel, st)
	}

	return a
}

// Rate returns part/whole as a percentage, or 0 when whole is not positive.
func Rate(part, whole int) float64 {
	if whole <= 0 {
		return 0
	}
	return float64(part) / float64(whole) * 100
}

// FormatRate renders a percentage with one decimal, e.g. "40.0%".
func FormatRate(rate float64) string {
	return fmt.Sprintf("%.1f%%", rate)
}

// MaxFunnelVisits returns the largest visit count of the funnel, used to
// scale funnel bars.
func (a Analytics) MaxFunnelVisits() int {
	most := 0
	for _, f := range a.Funnel {
		if f.Visits > most {
			most = f.Visits
		}
	}
	return most
}
