package models

import (
	"slices"
	"time"

	"herbtrack/internal/shared"
)

// Activities is the fixed vocabulary of activity tags.
var Activities = []string{
	"Gaming", "Music", "Movies", "Socializing", "Exercise",
	"Creative Work", "Cooking", "Nature", "Reading", "Meditation",
}

// Draft is the uncommitted form state for a not-yet-submitted entry.
// It mirrors Entry's editable fields before an id exists.
type Draft struct {
	Date       string
	Time       string
	Method     Method
	Amount     string
	Puffs      string
	THCPercent float64
	Strain     string
	Mood       int
	Energy     int
	Focus      int
	Creativity int
	Anxiety    int
	Activities []string
	Notes      string
}

// NewDraft returns a draft with the default field values: the given moment's
// date and time, vape at 75% potency, all effect ratings 5 except anxiety 0,
// no activities, no notes.
func NewDraft(now time.Time) Draft {
	return Draft{
		Date:       now.Format("2006-01-02"),
		Time:       now.Format("15:04"),
		Method:     MethodVape,
		THCPercent: 75,
		Mood:       5,
		Energy:     5,
		Focus:      5,
		Creativity: 5,
		Anxiety:    0,
		Activities: []string{},
	}
}

// Validate checks that the dose field required by the draft's method is
// present. It must pass before the draft is submitted anywhere.
func (d *Draft) Validate() error {
	if !d.Method.Known() {
		return shared.ErrorUnknownMethod
	}
	if d.Method.UsesPuffs() {
		if d.Puffs == "" {
			return shared.ErrorMissingPuffs
		}
		return nil
	}
	if d.Amount == "" {
		return shared.ErrorMissingAmount
	}
	return nil
}

// ToggleActivity adds the tag if absent and removes it if present,
// keeping the set free of duplicates.
func (d *Draft) ToggleActivity(name string) {
	if i := slices.Index(d.Activities, name); i >= 0 {
		d.Activities = slices.Delete(d.Activities, i, i+1)
		return
	}
	d.Activities = append(d.Activities, name)
}
