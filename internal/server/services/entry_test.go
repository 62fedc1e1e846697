package services

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"herbtrack/internal/server/models"
	"herbtrack/internal/shared"
)

type fakeEntriesRepo struct {
	inserted  []*models.Entry
	insertErr error

	byUser    []*models.Entry
	since     []*models.Entry
	selectErr error

	deletedID     int64
	deletedUserID int64
	deleteErr     error
}

func (f *fakeEntriesRepo) Insert(ctx context.Context, entry *models.Entry) error {
	if f.insertErr != nil {
		return f.insertErr
	}
	entry.ID = int64(len(f.inserted) + 1)
	f.inserted = append(f.inserted, entry)
	return nil
}

func (f *fakeEntriesRepo) SelectByUser(ctx context.Context, userID int64) ([]*models.Entry, error) {
	if f.selectErr != nil {
		return nil, f.selectErr
	}
	return f.byUser, nil
}

func (f *fakeEntriesRepo) SelectSince(ctx context.Context, userID int64, since time.Time) ([]*models.Entry, error) {
	if f.selectErr != nil {
		return nil, f.selectErr
	}
	return f.since, nil
}

func (f *fakeEntriesRepo) DeleteByID(ctx context.Context, id, userID int64) error {
	if f.deleteErr != nil {
		return f.deleteErr
	}
	f.deletedID = id
	f.deletedUserID = userID
	return nil
}

func TestCalculateTHCMg(t *testing.T) {
	tests := []struct {
		name       string
		method     string
		amount     string
		puffs      string
		thcPercent float64
		want       float64
	}{
		{"vape", "vape", "", "5", 80, 10},
		{"smoke", "smoke", "", "4", 50, 5},
		{"vape default potency", "vape", "", "2", 0, 3.75},
		{"vape empty puffs", "vape", "", "", 80, 0},
		{"edible", "edible", "10", "", 0, 10},
		{"tincture", "tincture", "2.5", "", 0, 2.5},
		{"edible garbage amount", "edible", "lots", "", 0, 0},
		{"unknown method", "dab", "10", "5", 80, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := CalculateTHCMg(tt.method, tt.amount, tt.puffs, tt.thcPercent)
			require.InDelta(t, tt.want, got, 1e-9)
		})
	}
}

func TestCreate_ComputesServerFields(t *testing.T) {
	repo := &fakeEntriesRepo{}
	s := NewEntryService(repo)

	entry := &models.Entry{
		UserID: 7, Date: "2025-06-30", Time: "21:15",
		Method: "vape", Puffs: "5", THCPercent: 80,
	}
	created, err := s.Create(context.Background(), entry)
	require.NoError(t, err)

	require.Equal(t, int64(1), created.ID)
	require.InDelta(t, 10, created.THCMg, 1e-9)
	require.Equal(t, time.Date(2025, 6, 30, 21, 15, 0, 0, time.UTC), created.Timestamp)
	require.NotNil(t, created.Activities)
	require.Empty(t, created.Activities)
}

func TestCreate_InvalidTimestamp(t *testing.T) {
	s := NewEntryService(&fakeEntriesRepo{})

	_, err := s.Create(context.Background(), &models.Entry{Date: "30/06/2025", Time: "9pm"})
	require.Error(t, err)
	require.Contains(t, err.Error(), "invalid date/time")
}

func TestList_NeverNil(t *testing.T) {
	s := NewEntryService(&fakeEntriesRepo{})

	result, err := s.List(context.Background(), 7)
	require.NoError(t, err)
	require.NotNil(t, result)
	require.Empty(t, result)
}

func TestDelete_PassesOwnerScope(t *testing.T) {
	repo := &fakeEntriesRepo{}
	s := NewEntryService(repo)

	require.NoError(t, s.Delete(context.Background(), 42, 7))
	require.Equal(t, int64(42), repo.deletedID)
	require.Equal(t, int64(7), repo.deletedUserID)

	repo.deleteErr = shared.ErrorEntryDoesNotExist
	err := s.Delete(context.Background(), 43, 7)
	require.True(t, errors.Is(err, shared.ErrorEntryDoesNotExist), "got %v", err)
}

func TestStats_EmptyWeek(t *testing.T) {
	s := NewEntryService(&fakeEntriesRepo{})

	stats, err := s.Stats(context.Background(), 7)
	require.NoError(t, err)
	require.Equal(t, &Stats{}, stats)
}

func TestStats_Aggregation(t *testing.T) {
	repo := &fakeEntriesRepo{
		since: []*models.Entry{
			{THCMg: 10, Mood: 7},
			{THCMg: 3.75, Mood: 6},
			{THCMg: 5, Mood: 8},
		},
	}
	s := NewEntryService(repo)
	s.now = func() time.Time { return time.Date(2025, 6, 30, 12, 0, 0, 0, time.UTC) }

	stats, err := s.Stats(context.Background(), 7)
	require.NoError(t, err)

	require.InDelta(t, 18.8, stats.WeeklyTotal, 1e-9)
	require.InDelta(t, 2.7, stats.DailyAvg, 1e-9) // 18.75/7 = 2.678... rounded
	require.InDelta(t, 7.0, stats.AvgMood, 1e-9)
	require.Equal(t, 3, stats.TotalSessions)
}

func TestStats_RepoError(t *testing.T) {
	s := NewEntryService(&fakeEntriesRepo{selectErr: errors.New("db down")})

	_, err := s.Stats(context.Background(), 7)
	require.Error(t, err)
}
