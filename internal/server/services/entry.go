package services

import (
	"context"
	"fmt"
	"math"
	"strconv"
	"time"

	"herbtrack/internal/server/models"
	"herbtrack/internal/server/repositories/entries"
)

// mgPerPuffAt100 is the milligram yield of a single puff at 100% potency,
// assuming roughly 0.3g of material per session.
const mgPerPuffAt100 = 2.5

// Stats is the trailing-7-day summary returned by /entries/stats.
type Stats struct {
	WeeklyTotal   float64 `json:"weekly_total"`
	DailyAvg      float64 `json:"daily_avg"`
	AvgMood       float64 `json:"avg_mood"`
	TotalSessions int     `json:"total_sessions"`
}

// EntryService owns entry creation, listing, deletion, and the summary
// computation.
type EntryService struct {
	repo entries.Repository
	now  func() time.Time
}

// NewEntryService constructs an EntryService over the given repository.
func NewEntryService(repo entries.Repository) *EntryService {
	return &EntryService{repo: repo, now: time.Now}
}

// CalculateTHCMg derives the total milligram dose from the method-specific
// fields: puffs times per-puff yield at the given potency for inhaled
// methods, the absolute amount for ingested ones. Unparseable or missing
// numbers count as zero; a missing potency defaults to 75%.
func CalculateTHCMg(method string, amount, puffs string, thcPercent float64) float64 {
	switch method {
	case "vape", "smoke":
		if thcPercent == 0 {
			thcPercent = 75
		}
		p, _ := strconv.ParseFloat(puffs, 64)
		return p * thcPercent / 100 * mgPerPuffAt100
	case "edible", "tincture":
		a, _ := strconv.ParseFloat(amount, 64)
		return a
	}
	return 0
}

// Create computes the server-owned fields (mg total, timestamp) and stores
// the entry. The entry comes back with its assigned id.
func (s *EntryService) Create(ctx context.Context, entry *models.Entry) (*models.Entry, error) {
	ts, err := time.Parse("2006-01-02 15:04", entry.Date+" "+entry.Time)
	if err != nil {
		return nil, fmt.Errorf("invalid date/time: %w", err)
	}

	entry.Timestamp = ts
	entry.THCMg = CalculateTHCMg(entry.Method, entry.Amount, entry.Puffs, entry.THCPercent)
	if entry.Activities == nil {
		entry.Activities = []string{}
	}

	if err := s.repo.Insert(ctx, entry); err != nil {
		return nil, err
	}
	return entry, nil
}

// List returns the user's entries, newest first.
func (s *EntryService) List(ctx context.Context, userID int64) ([]*models.Entry, error) {
	result, err := s.repo.SelectByUser(ctx, userID)
	if err != nil {
		return nil, err
	}
	if result == nil {
		result = []*models.Entry{}
	}
	return result, nil
}

// Delete removes the entry when it belongs to userID.
func (s *EntryService) Delete(ctx context.Context, id, userID int64) error {
	if err := s.repo.DeleteByID(ctx, id, userID); err != nil {
		return err
	}
	return nil
}

// Stats aggregates the trailing 7 days: total mg, total divided by 7, mean
// mood over the period's entries, and the session count. Values are rounded
// to one decimal; an empty week yields all zeros.
func (s *EntryService) Stats(ctx context.Context, userID int64) (*Stats, error) {
	weekAgo := s.now().AddDate(0, 0, -7)

	recent, err := s.repo.SelectSince(ctx, userID, weekAgo)
	if err != nil {
		return nil, err
	}
	if len(recent) == 0 {
		return &Stats{}, nil
	}

	var totalTHC float64
	var moodSum int
	for _, e := range recent {
		totalTHC += e.THCMg
		moodSum += e.Mood
	}

	return &Stats{
		WeeklyTotal:   round1(totalTHC),
		DailyAvg:      round1(totalTHC / 7),
		AvgMood:       round1(float64(moodSum) / float64(len(recent))),
		TotalSessions: len(recent),
	}, nil
}

func round1(v float64) float64 {
	return math.Round(v*10) / 10
}
