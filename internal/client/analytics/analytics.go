// Package analytics derives every dashboard view from the entry collection.
// All functions are pure: they take the collection (and, for the headline
// numbers, the server summary) as explicit arguments, never read ambient
// state, and never mutate their input.
package analytics

import (
	"time"

	"herbtrack/internal/client/models"
)

// Headline holds the four top-line statistics. They come straight from the
// server summary; the engine does not re-derive them from raw entries.
type Headline struct {
	WeeklyTotal   float64
	DailyAvg      float64
	AvgMood       float64
	TotalSessions int
}

// HeadlineStats passes the server summary through, defaulting every field to
// zero when no summary has been loaded.
func HeadlineStats(summary *models.Summary) Headline {
	if summary == nil {
		return Headline{}
	}
	return Headline{
		WeeklyTotal:   summary.WeeklyTotal,
		DailyAvg:      summary.DailyAvg,
		AvgMood:       summary.AvgMood,
		TotalSessions: summary.TotalSessions,
	}
}

// DayBucket is one day of the 30-day series. Mood is nil for days with no
// entries: a day whose only entry has mood 0 must stay distinguishable from
// a day with no consumption at all.
type DayBucket struct {
	Label    string
	Date     string
	THCMg    float64
	Mood     *float64
	Sessions int
}

// DailySeries buckets the collection into the 30 calendar days ending on
// today (inclusive), oldest first. Each bucket carries a short label, the
// summed mg total (missing values count as zero), the mean mood of the
// day's entries or nil, and the entry count. The result always has exactly
// 30 buckets no matter how sparse the collection is.
func DailySeries(entries []models.Entry, today time.Time) []DayBucket {
	series := make([]DayBucket, 0, 30)

	for i := 29; i >= 0; i-- {
		day := today.AddDate(0, 0, -i)
		date := day.Format("2006-01-02")

		bucket := DayBucket{
			Label: day.Format("Jan 2"),
			Date:  date,
		}

		moodSum := 0
		for _, e := range entries {
			if e.Date != date {
				continue
			}
			bucket.THCMg += e.THCMg
			moodSum += e.Mood
			bucket.Sessions++
		}
		if bucket.Sessions > 0 {
			mood := float64(moodSum) / float64(bucket.Sessions)
			bucket.Mood = &mood
		}

		series = append(series, bucket)
	}

	return series
}

// MethodCount is one slice of the method distribution.
type MethodCount struct {
	Name  string
	Count int
}

// MethodDistribution groups entries by method and counts occurrences,
// labeling each group with the method's display name (or the raw string
// when unrecognized). Only observed methods appear. Known methods come out
// in display order, unknown ones in first-seen order after them.
func MethodDistribution(entries []models.Entry) []MethodCount {
	counts := make(map[models.Method]int)
	var unknown []models.Method
	for _, e := range entries {
		if counts[e.Method] == 0 && !e.Method.Known() {
			unknown = append(unknown, e.Method)
		}
		counts[e.Method]++
	}

	dist := make([]MethodCount, 0, len(counts))
	for _, m := range models.Methods {
		if counts[m] > 0 {
			dist = append(dist, MethodCount{Name: m.Label(), Count: counts[m]})
		}
	}
	for _, m := range unknown {
		dist = append(dist, MethodCount{Name: m.Label(), Count: counts[m]})
	}
	return dist
}

// RadarValue is one labeled axis of the effects radar.
type RadarValue struct {
	Effect string
	Value  float64
}

// EffectsRadar returns the mean of each subjective effect across all
// entries as exactly five labeled values: Mood, Energy, Focus, Creativity,
// and Calm, where Calm is derived per entry as 10 − anxiety. An empty
// collection yields nil — there is no radar without data.
func EffectsRadar(entries []models.Entry) []RadarValue {
	if len(entries) == 0 {
		return nil
	}

	var mood, energy, focus, creativity, calm int
	for _, e := range entries {
		mood += e.Mood
		energy += e.Energy
		focus += e.Focus
		creativity += e.Creativity
		calm += 10 - e.Anxiety
	}

	n := float64(len(entries))
	return []RadarValue{
		{Effect: "Mood", Value: float64(mood) / n},
		{Effect: "Energy", Value: float64(energy) / n},
		{Effect: "Focus", Value: float64(focus) / n},
		{Effect: "Creativity", Value: float64(creativity) / n},
		{Effect: "Calm", Value: float64(calm) / n},
	}
}
