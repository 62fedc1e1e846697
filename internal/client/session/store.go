// Package session owns the authenticated session: the bearer token and the
// identity it belongs to, persisted together in the local key-value store so
// they survive restarts.
package session

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"

	"herbtrack/internal/client/api"
	"herbtrack/internal/client/models"
	"herbtrack/internal/client/repositories/metadata"
	"herbtrack/internal/dbx"
	"herbtrack/internal/shared"
)

const (
	keyAuthToken   = "auth_token"
	keyCurrentUser = "current_user"
)

// Store holds the current session and keeps the durable copy in sync with
// it. Token and identity are always written and cleared together.
type Store struct {
	client  api.Client
	db      *sql.DB
	current *models.Session
}

// NewStore constructs a session store bound to the given API client and
// local database.
func NewStore(client api.Client, db *sql.DB) *Store {
	return &Store{client: client, db: db}
}

func (s *Store) getMetadataRepo() metadata.Repository {
	return metadata.NewSQLiteRepository(s.db)
}

// Current returns the active session, or nil when unauthenticated.
func (s *Store) Current() *models.Session {
	return s.current
}

// IsAuthenticated reports whether a session is active.
func (s *Store) IsAuthenticated() bool {
	return s.current != nil
}

// Restore reads the persisted token and identity at startup. If both are
// present and the identity parses, the session is re-established. A missing
// pair leaves the store unauthenticated; a corrupt pair is cleared from
// durable storage and likewise leaves the store unauthenticated. Restore
// never fails the caller.
func (s *Store) Restore(ctx context.Context) {
	repo := s.getMetadataRepo()

	token, err := repo.Get(ctx, keyAuthToken)
	if err != nil || len(token) == 0 {
		return
	}
	rawUser, err := repo.Get(ctx, keyCurrentUser)
	if err != nil || len(rawUser) == 0 {
		return
	}

	var user models.User
	if err := json.Unmarshal(rawUser, &user); err != nil {
		// Corrupt persisted identity: discard it and start unauthenticated.
		_ = repo.Delete(ctx, keyAuthToken)
		_ = repo.Delete(ctx, keyCurrentUser)
		return
	}

	s.adopt(&models.Session{Token: string(token), User: user})
}

// Login authenticates against the service and, on success, persists and
// adopts the returned session. On failure the prior session, if any, is
// left untouched.
func (s *Store) Login(ctx context.Context, username, password string) error {
	sess, err := s.client.Login(ctx, username, password)
	if err != nil {
		return err
	}

	if err := s.persist(ctx, sess); err != nil {
		return fmt.Errorf("session saving error: %w", err)
	}

	s.adopt(sess)
	return nil
}

// Register creates an account and then immediately logs in with the same
// credentials. A failure at either step aborts before any session is adopted.
func (s *Store) Register(ctx context.Context, username, email, password string) error {
	if err := s.client.Register(ctx, username, email, password); err != nil {
		return err
	}
	return s.Login(ctx, username, password)
}

// Logout clears the durable storage and the in-memory session. The caller is
// responsible for also clearing any session-scoped data it owns (such as the
// entry collection).
func (s *Store) Logout(ctx context.Context) error {
	if s.current == nil {
		return shared.ErrorNotAuthenticated
	}
	if err := s.getMetadataRepo().Clear(ctx); err != nil {
		return err
	}
	s.current = nil
	s.client.ClearToken()
	return nil
}

// persist writes token and identity in a single transaction so the pair can
// never be half-written.
func (s *Store) persist(ctx context.Context, sess *models.Session) error {
	rawUser, err := json.Marshal(sess.User)
	if err != nil {
		return err
	}

	return dbx.WithTx(ctx, s.db, nil, func(ctx context.Context, tx dbx.DBTX) error {
		repo := metadata.NewSQLiteRepository(tx)
		if err := repo.Set(ctx, keyAuthToken, []byte(sess.Token)); err != nil {
			return err
		}
		return repo.Set(ctx, keyCurrentUser, rawUser)
	})
}

func (s *Store) adopt(sess *models.Session) {
	s.current = sess
	s.client.SetToken(sess.Token)
}
