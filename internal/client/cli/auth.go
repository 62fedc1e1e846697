package cli

import (
	"context"
	"fmt"
	"log"
	"os"

	"herbtrack/internal/client/models"
)

// getSimpleText and getPassword are indirections used to facilitate testing.
// They point to interactive input helpers and can be swapped in tests.
var getSimpleText = GetSimpleText
var getPassword = GetPassword

// Register prompts for a username, email, and password, creates the account,
// and logs straight in with the same credentials. Any failure at either step
// is reported and no session is adopted.
func (a *App) Register(ctx context.Context) error {
	username, err := getSimpleText(a.reader, "Enter username", os.Stdout)
	if err != nil {
		return err
	}

	email, err := getSimpleText(a.reader, "Enter email", os.Stdout)
	if err != nil {
		return err
	}

	password, err := getPassword(os.Stdout)
	if err != nil {
		return err
	}

	if err := a.sessions.Register(ctx, username, email, string(password)); err != nil {
		log.Printf("Registration unsuccessful: %s", err.Error())
		return err
	}

	fmt.Println("Success!")
	return a.loadForSession(ctx)
}

// Login prompts for credentials and authenticates. On success the entry
// collection is loaded for the new session identity; on failure any prior
// session stays as it was.
func (a *App) Login(ctx context.Context) error {
	username, err := getSimpleText(a.reader, "Enter username", os.Stdout)
	if err != nil {
		return err
	}

	password, err := getPassword(os.Stdout)
	if err != nil {
		return err
	}

	if err := a.sessions.Login(ctx, username, string(password)); err != nil {
		log.Printf("Login unsuccessful: %s", err.Error())
		return err
	}

	log.Printf("Login successful")
	return a.loadForSession(ctx)
}

// Logout clears the persisted session and every piece of session-scoped
// state: the in-memory session, the entry collection, and the cached summary.
func (a *App) Logout(ctx context.Context) error {
	if err := a.sessions.Logout(ctx); err != nil {
		log.Printf("Logout error: %s", err.Error())
		return err
	}
	a.entries.Clear()
	a.draft = models.NewDraft(a.now())
	return nil
}
