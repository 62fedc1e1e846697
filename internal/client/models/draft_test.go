package models

import (
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"herbtrack/internal/shared"
)

func TestNewDraft_Defaults(t *testing.T) {
	now := time.Date(2025, 6, 30, 21, 15, 0, 0, time.UTC)
	d := NewDraft(now)

	require.Equal(t, "2025-06-30", d.Date)
	require.Equal(t, "21:15", d.Time)
	require.Equal(t, MethodVape, d.Method)
	require.Equal(t, 75.0, d.THCPercent)
	require.Equal(t, 5, d.Mood)
	require.Equal(t, 5, d.Energy)
	require.Equal(t, 5, d.Focus)
	require.Equal(t, 5, d.Creativity)
	require.Equal(t, 0, d.Anxiety)
	require.Empty(t, d.Activities)
	require.Empty(t, d.Notes)
}

func TestDraftValidate(t *testing.T) {
	tests := []struct {
		name    string
		draft   Draft
		wantErr error
	}{
		{"vape with puffs", Draft{Method: MethodVape, Puffs: "5"}, nil},
		{"vape without puffs", Draft{Method: MethodVape}, shared.ErrorMissingPuffs},
		{"smoke without puffs", Draft{Method: MethodSmoke, Amount: "10"}, shared.ErrorMissingPuffs},
		{"edible with amount", Draft{Method: MethodEdible, Amount: "10"}, nil},
		{"edible without amount", Draft{Method: MethodEdible, Puffs: "3"}, shared.ErrorMissingAmount},
		{"tincture without amount", Draft{Method: MethodTincture}, shared.ErrorMissingAmount},
		{"unknown method", Draft{Method: "dab", Puffs: "5", Amount: "10"}, shared.ErrorUnknownMethod},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.draft.Validate()
			if tt.wantErr == nil {
				require.NoError(t, err)
			} else {
				require.True(t, errors.Is(err, tt.wantErr), "got %v", err)
			}
		})
	}
}

func TestToggleActivity(t *testing.T) {
	d := NewDraft(time.Now())

	d.ToggleActivity("Music")
	require.Equal(t, []string{"Music"}, d.Activities)

	d.ToggleActivity("Gaming")
	require.Equal(t, []string{"Music", "Gaming"}, d.Activities)

	// toggling again removes, never duplicates
	d.ToggleActivity("Music")
	require.Equal(t, []string{"Gaming"}, d.Activities)

	d.ToggleActivity("Music")
	require.Equal(t, []string{"Gaming", "Music"}, d.Activities)
}

func TestMethodLabel(t *testing.T) {
	require.Equal(t, "Vape", MethodVape.Label())
	require.Equal(t, "Flower", MethodSmoke.Label())
	require.Equal(t, "Edible", MethodEdible.Label())
	require.Equal(t, "Tincture", MethodTincture.Label())
	require.Equal(t, "dab", Method("dab").Label())
}

func TestMethodUsesPuffs(t *testing.T) {
	require.True(t, MethodVape.UsesPuffs())
	require.True(t, MethodSmoke.UsesPuffs())
	require.False(t, MethodEdible.UsesPuffs())
	require.False(t, MethodTincture.UsesPuffs())
}

func TestEntryDose(t *testing.T) {
	vape := Entry{Method: MethodVape, Puffs: "5", THCPercent: 80, Amount: "10"}
	require.Equal(t, PuffDose{Puffs: "5", THCPercent: 80}, vape.Dose())

	edible := Entry{Method: MethodEdible, Puffs: "5", Amount: "10"}
	require.Equal(t, AmountDose{Milligrams: "10"}, edible.Dose())
}
