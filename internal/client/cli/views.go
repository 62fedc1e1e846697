package cli

import (
	"context"
	"fmt"
	"strings"

	"herbtrack/internal/client/analytics"
)

// ShowTab switches the active view and renders it from the current
// collection. Tabs are freely switchable in any order.
func (a *App) ShowTab(ctx context.Context, tab Tab) error {
	if !a.isLoggedIn() {
		fmt.Println("Please log in first")
		return nil
	}

	a.setTab(tab)

	switch tab {
	case TabDashboard:
		a.renderDashboard()
	case TabAnalytics:
		a.renderAnalytics()
	case TabHistory:
		a.renderHistory()
	case TabInsights:
		a.renderInsights()
	}
	return nil
}

func (a *App) renderDashboard() {
	stats := analytics.HeadlineStats(a.entries.Summary())

	fmt.Println("=== Dashboard ===")
	fmt.Printf("Weekly Total:  %.1fmg THC consumed\n", stats.WeeklyTotal)
	fmt.Printf("Daily Average: %.1fmg per day\n", stats.DailyAvg)
	fmt.Printf("Avg Mood:      %.1f/10 this week\n", stats.AvgMood)
	fmt.Printf("Sessions:      %d in the last 7 days\n", stats.TotalSessions)
}

func (a *App) renderAnalytics() {
	entries := a.entries.Entries()

	fmt.Println("=== 30-Day Consumption ===")
	for _, day := range analytics.DailySeries(entries, a.now()) {
		if day.Sessions == 0 {
			continue
		}
		mood := "-"
		if day.Mood != nil {
			mood = fmt.Sprintf("%.1f", *day.Mood)
		}
		fmt.Printf("%-7s %6.1fmg  mood %-4s %d session(s)\n", day.Label, day.THCMg, mood, day.Sessions)
	}

	fmt.Println("=== Method Distribution ===")
	for _, mc := range analytics.MethodDistribution(entries) {
		fmt.Printf("%-10s %d\n", mc.Name, mc.Count)
	}

	fmt.Println("=== Average Effects ===")
	radar := analytics.EffectsRadar(entries)
	if radar == nil {
		fmt.Println("No data available")
		return
	}
	for _, rv := range radar {
		fmt.Printf("%-10s %.1f/10\n", rv.Effect, rv.Value)
	}
}

func (a *App) renderHistory() {
	entries := a.entries.Entries()

	fmt.Println("=== Recent Entries ===")
	if len(entries) == 0 {
		fmt.Println("No entries yet. Start tracking to see your history!")
		return
	}

	shown := entries
	if len(shown) > 10 {
		shown = shown[:10]
	}
	for _, e := range shown {
		fmt.Printf("#%d  %s %s  %.1fmg THC  %s\n", e.ID, e.Date, e.Time, e.THCMg, e.Method.Label())
		if e.Strain != "" {
			fmt.Printf("    Strain: %s\n", e.Strain)
		}
		fmt.Printf("    Mood: %d/10  Energy: %d/10  Focus: %d/10  Anxiety: %d/10\n",
			e.Mood, e.Energy, e.Focus, e.Anxiety)
		if len(e.Activities) > 0 {
			fmt.Printf("    Activities: %s\n", strings.Join(e.Activities, ", "))
		}
		if e.Notes != "" {
			fmt.Printf("    %q\n", e.Notes)
		}
	}
}

func (a *App) renderInsights() {
	entries := a.entries.Entries()
	stats := analytics.HeadlineStats(a.entries.Summary())

	fmt.Println("=== Insights & Recommendations ===")
	if len(entries) == 0 {
		fmt.Println("Start tracking your consumption to get personalized insights")
		return
	}

	fmt.Printf("You've tracked %d sessions. Your average mood is %.1f/10.\n", len(entries), stats.AvgMood)
	fmt.Printf("You're averaging %.1fmg THC per day over the last week.\n", stats.DailyAvg)
	fmt.Println("Track consistently for at least 2 weeks to identify your optimal dosage and timing patterns.")
}
