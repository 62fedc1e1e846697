package cli

import (
	"context"
	"fmt"
	"log"
	"os"
	"strconv"
	"strings"

	"herbtrack/internal/client/models"
)

// AddEntry walks the user through the new-entry form. The draft starts from
// its defaults, collects the dose fields relevant to the chosen method, and
// is submitted through the collection store. On success the draft resets to
// defaults; on failure the draft keeps its values so the user can fix and
// resubmit.
func (a *App) AddEntry(ctx context.Context) error {
	if !a.isLoggedIn() {
		fmt.Println("Please log in first")
		return nil
	}

	d := &a.draft

	var err error
	if d.Date, err = GetTextDefault(a.reader, "Date (YYYY-MM-DD)", d.Date, os.Stdout); err != nil {
		return err
	}
	if d.Time, err = GetTextDefault(a.reader, "Time (HH:MM)", d.Time, os.Stdout); err != nil {
		return err
	}

	method, err := GetTextDefault(a.reader, "Method (vape, smoke, edible, tincture)", string(d.Method), os.Stdout)
	if err != nil {
		return err
	}
	d.Method = models.Method(method)

	if d.Method.UsesPuffs() {
		if d.Puffs, err = GetTextDefault(a.reader, "Number of puffs", d.Puffs, os.Stdout); err != nil {
			return err
		}
		percent, err := GetIntInRange(a.reader, "THC %", int(d.THCPercent), 0, 100, os.Stdout)
		if err != nil {
			return err
		}
		d.THCPercent = float64(percent)
	} else {
		if d.Amount, err = GetTextDefault(a.reader, "THC amount (mg)", d.Amount, os.Stdout); err != nil {
			return err
		}
	}

	if d.Strain, err = GetTextDefault(a.reader, "Strain (optional)", d.Strain, os.Stdout); err != nil {
		return err
	}

	if d.Mood, err = GetIntInRange(a.reader, "Mood", d.Mood, 0, 10, os.Stdout); err != nil {
		return err
	}
	if d.Energy, err = GetIntInRange(a.reader, "Energy", d.Energy, 0, 10, os.Stdout); err != nil {
		return err
	}
	if d.Focus, err = GetIntInRange(a.reader, "Focus", d.Focus, 0, 10, os.Stdout); err != nil {
		return err
	}
	if d.Creativity, err = GetIntInRange(a.reader, "Creativity", d.Creativity, 0, 10, os.Stdout); err != nil {
		return err
	}
	if d.Anxiety, err = GetIntInRange(a.reader, "Anxiety", d.Anxiety, 0, 10, os.Stdout); err != nil {
		return err
	}

	if err := a.pickActivities(d); err != nil {
		return err
	}

	if d.Notes, err = GetTextDefault(a.reader, "Notes", d.Notes, os.Stdout); err != nil {
		return err
	}

	if err := a.entries.Create(ctx, d); err != nil {
		log.Printf("Failed to save entry: %s", err.Error())
		return err
	}

	a.draft = models.NewDraft(a.now())
	fmt.Println("Entry saved")
	return nil
}

// pickActivities shows the fixed vocabulary and toggles the numbers the user
// enters, e.g. "2 5" toggles Music and Exercise.
func (a *App) pickActivities(d *models.Draft) error {
	for i, act := range models.Activities {
		marker := " "
		for _, chosen := range d.Activities {
			if chosen == act {
				marker = "x"
			}
		}
		fmt.Printf("  %2d [%s] %s\n", i+1, marker, act)
	}

	line, err := GetSimpleText(a.reader, "Toggle activities by number (space separated, empty to keep)", os.Stdout)
	if err != nil {
		return err
	}
	for _, tok := range strings.Fields(line) {
		n, err := strconv.Atoi(tok)
		if err != nil || n < 1 || n > len(models.Activities) {
			continue
		}
		d.ToggleActivity(models.Activities[n-1])
	}
	return nil
}
