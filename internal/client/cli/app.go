// Package cli implements the interactive terminal client: a REPL whose
// commands drive the session store, the entry collection, and the derived
// analytics views.
package cli

import (
	"bufio"
	"context"
	"database/sql"
	"os"
	"time"

	"herbtrack/internal/client/api"
	"herbtrack/internal/client/collection"
	"herbtrack/internal/client/config"
	"herbtrack/internal/client/localdb"
	"herbtrack/internal/client/models"
	"herbtrack/internal/client/session"
)

// Tab names the view currently presented. Any tab is reachable from any
// other; switching has no side effects beyond rendering.
type Tab string

const (
	TabDashboard Tab = "dashboard"
	TabAnalytics Tab = "analytics"
	TabHistory   Tab = "history"
	TabInsights  Tab = "insights"
)

// Tabs lists the selectable views in display order.
var Tabs = []Tab{TabDashboard, TabAnalytics, TabHistory, TabInsights}

// App wires the client stores together and owns the transient draft.
type App struct {
	config    *config.Config
	db        *sql.DB
	sessions  *session.Store
	entries   *collection.Store
	draft     models.Draft
	activeTab Tab
	reader    *bufio.Reader
	now       func() time.Time
}

// NewApp opens the local database and constructs the stores around a shared
// API client.
func NewApp(ctx context.Context, c *config.Config) (*App, error) {
	db, err := localdb.InitDatabase(ctx, c.LocalDBPath)
	if err != nil {
		return nil, err
	}

	apiClient := api.NewHTTPClient(c.APIBaseURL)

	a := &App{
		config:    c,
		db:        db,
		sessions:  session.NewStore(apiClient, db),
		entries:   collection.NewStore(apiClient),
		activeTab: TabDashboard,
		reader:    bufio.NewReader(os.Stdin),
		now:       time.Now,
	}
	a.draft = models.NewDraft(a.now())
	return a, nil
}

// Run restores any persisted session, loads the collection when one exists,
// and enters the REPL.
func (a *App) Run(ctx context.Context) {
	defer a.db.Close()

	a.sessions.Restore(ctx)
	if a.sessions.IsAuthenticated() {
		_ = a.loadForSession(ctx)
	}

	a.Root(ctx)
}

func (a *App) isLoggedIn() bool {
	return a.sessions.IsAuthenticated()
}

// loadForSession triggers the once-per-identity collection load for the
// current session.
func (a *App) loadForSession(ctx context.Context) error {
	sess := a.sessions.Current()
	if sess == nil {
		return nil
	}
	return a.entries.EnsureLoaded(ctx, sess.User.Username)
}

func (a *App) setTab(tab Tab) {
	a.activeTab = tab
}
