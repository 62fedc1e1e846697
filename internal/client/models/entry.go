// Package models defines the client-side domain types: committed entries,
// the uncommitted draft, the authenticated session, and the server summary.
package models

// User is the authenticated identity returned by the service.
type User struct {
	ID       int64  `json:"id"`
	Username string `json:"username"`
	Email    string `json:"email"`
}

// Session couples the bearer token with the identity it belongs to.
// The two are always set together or not at all.
type Session struct {
	Token string
	User  User
}

// Entry is one committed consumption event, service-shaped. The ID and
// THCMg fields are assigned by the server and never edited locally.
type Entry struct {
	ID         int64    `json:"id"`
	Date       string   `json:"date"` // YYYY-MM-DD
	Time       string   `json:"time"` // HH:MM
	Method     Method   `json:"method"`
	Amount     string   `json:"amount"`
	Puffs      string   `json:"puffs"`
	THCPercent float64  `json:"thc_percent"`
	THCMg      float64  `json:"thc_mg"`
	Strain     string   `json:"strain"`
	Mood       int      `json:"mood"`
	Energy     int      `json:"energy"`
	Focus      int      `json:"focus"`
	Creativity int      `json:"creativity"`
	Anxiety    int      `json:"anxiety"`
	Activities []string `json:"activities"`
	Notes      string   `json:"notes"`
}

// Dose returns the tagged dose variant active for the entry's method.
func (e *Entry) Dose() Dose {
	if e.Method.UsesPuffs() {
		return PuffDose{Puffs: e.Puffs, THCPercent: e.THCPercent}
	}
	return AmountDose{Milligrams: e.Amount}
}

// Summary is the server-computed aggregate over the trailing week.
// It is passed through, never recomputed client-side.
type Summary struct {
	WeeklyTotal   float64 `json:"weekly_total"`
	DailyAvg      float64 `json:"daily_avg"`
	AvgMood       float64 `json:"avg_mood"`
	TotalSessions int     `json:"total_sessions"`
}
