// Package api implements the HTTP wrapper around the remote tracking
// service. All requests go through a single entry point that attaches the
// bearer token when a session is active and normalizes every failure —
// transport or application — into a single uniform *Error.
package api

import (
	"context"

	"herbtrack/internal/client/models"
)

// Client defines the remote operations the tracking service exposes.
//
// Contract:
//   - Register: create a new account (no session is adopted).
//   - Login: authenticate and return the issued session.
//   - ListEntries: fetch the full entry list for the current user.
//   - Stats: fetch the server-computed summary statistics.
//   - CreateEntry: submit a new entry; the response carries the
//     server-assigned id and computed mg total.
//   - DeleteEntry: remove an entry by id.
//   - SetToken/ClearToken: adopt or drop the bearer credential attached
//     to authenticated requests.
//
// All methods must honor context cancellation/timeouts.
type Client interface {
	Register(ctx context.Context, username, email, password string) error
	Login(ctx context.Context, username, password string) (*models.Session, error)
	ListEntries(ctx context.Context) ([]models.Entry, error)
	Stats(ctx context.Context) (*models.Summary, error)
	CreateEntry(ctx context.Context, req *CreateEntryRequest) (*models.Entry, error)
	DeleteEntry(ctx context.Context, id int64) error
	SetToken(token string)
	ClearToken()
}

// CreateEntryRequest is the service-shaped payload for entry creation.
// Field names are snake_case on the wire regardless of how the draft
// spells them.
type CreateEntryRequest struct {
	Date       string   `json:"date"`
	Time       string   `json:"time"`
	Method     string   `json:"method"`
	Amount     string   `json:"amount"`
	Puffs      string   `json:"puffs"`
	THCPercent float64  `json:"thc_percent"`
	Strain     string   `json:"strain"`
	Mood       int      `json:"mood"`
	Energy     int      `json:"energy"`
	Focus      int      `json:"focus"`
	Creativity int      `json:"creativity"`
	Anxiety    int      `json:"anxiety"`
	Activities []string `json:"activities"`
	Notes      string   `json:"notes"`
}

// NewCreateEntryRequest maps a draft onto the wire payload, including the
// camel-case potency field onto its snake_case wire name.
func NewCreateEntryRequest(d models.Draft) *CreateEntryRequest {
	return &CreateEntryRequest{
		Date:       d.Date,
		Time:       d.Time,
		Method:     string(d.Method),
		Amount:     d.Amount,
		Puffs:      d.Puffs,
		THCPercent: d.THCPercent,
		Strain:     d.Strain,
		Mood:       d.Mood,
		Energy:     d.Energy,
		Focus:      d.Focus,
		Creativity: d.Creativity,
		Anxiety:    d.Anxiety,
		Activities: d.Activities,
		Notes:      d.Notes,
	}
}
