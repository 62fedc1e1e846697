// Package collection owns the authoritative client-side list of entries and
// the cached server summary, and implements the mutation protocol around
// them: wholesale reloads after every change of session identity or create,
// and optimistic local removal on delete.
package collection

import (
	"context"
	"sync"

	"herbtrack/internal/client/api"
	"herbtrack/internal/client/models"
)

// Remote is the subset of the API client the collection needs.
type Remote interface {
	ListEntries(ctx context.Context) ([]models.Entry, error)
	Stats(ctx context.Context) (*models.Summary, error)
	CreateEntry(ctx context.Context, req *api.CreateEntryRequest) (*models.Entry, error)
	DeleteEntry(ctx context.Context, id int64) error
}

// Store is the in-memory entry collection plus the cached summary.
//
// Reloads are sequenced: every LoadAll takes a sequence number up front and
// applies its result only if no newer load has started since, so a slow
// fetch can never overwrite fresher data. EnsureLoaded triggers exactly one
// load per transition into an authenticated session identity.
type Store struct {
	client Remote

	mu        sync.Mutex
	entries   []models.Entry
	summary   *models.Summary
	loadSeq   uint64
	loadedFor string
}

// NewStore constructs an empty collection bound to the given remote.
func NewStore(client Remote) *Store {
	return &Store{client: client}
}

// Entries returns a copy of the current collection.
func (s *Store) Entries() []models.Entry {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]models.Entry, len(s.entries))
	copy(out, s.entries)
	return out
}

// Summary returns the cached server summary, or nil if none is loaded.
func (s *Store) Summary() *models.Summary {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.summary == nil {
		return nil
	}
	summary := *s.summary
	return &summary
}

// LoadAll fetches the entry list and the summary in parallel and replaces
// both atomically: if either fetch fails, neither is applied and the
// collection keeps its last-known-good state.
func (s *Store) LoadAll(ctx context.Context) error {
	s.mu.Lock()
	s.loadSeq++
	seq := s.loadSeq
	s.mu.Unlock()

	var (
		wg         sync.WaitGroup
		entries    []models.Entry
		summary    *models.Summary
		entriesErr error
		statsErr   error
	)

	wg.Add(2)
	go func() {
		defer wg.Done()
		entries, entriesErr = s.client.ListEntries(ctx)
	}()
	go func() {
		defer wg.Done()
		summary, statsErr = s.client.Stats(ctx)
	}()
	wg.Wait()

	if entriesErr != nil {
		return entriesErr
	}
	if statsErr != nil {
		return statsErr
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	if seq != s.loadSeq {
		// A newer load or a logout started while this fetch was in flight.
		return nil
	}
	s.entries = entries
	s.summary = summary
	return nil
}

// EnsureLoaded performs a LoadAll once per session identity: repeated calls
// with the same identity are no-ops until the identity changes or the
// collection is cleared. On failure the trigger is re-armed so the next call
// retries.
func (s *Store) EnsureLoaded(ctx context.Context, identity string) error {
	s.mu.Lock()
	if s.loadedFor == identity {
		s.mu.Unlock()
		return nil
	}
	s.loadedFor = identity
	s.mu.Unlock()

	if err := s.LoadAll(ctx); err != nil {
		s.mu.Lock()
		if s.loadedFor == identity {
			s.loadedFor = ""
		}
		s.mu.Unlock()
		return err
	}
	return nil
}

// Create validates the draft's dose field, submits it, and on success
// reloads the whole collection so the server-assigned id and computed mg
// become visible. On any failure the collection is left unchanged and the
// draft stays as it was.
func (s *Store) Create(ctx context.Context, draft *models.Draft) error {
	if err := draft.Validate(); err != nil {
		return err
	}

	if _, err := s.client.CreateEntry(ctx, api.NewCreateEntryRequest(*draft)); err != nil {
		return err
	}

	return s.LoadAll(ctx)
}

// Delete removes the entry with the given id on the server and, on success,
// drops it from the local collection without a refetch. Interactive
// confirmation is the caller's responsibility.
func (s *Store) Delete(ctx context.Context, id int64) error {
	if err := s.client.DeleteEntry(ctx, id); err != nil {
		return err
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	kept := s.entries[:0]
	for _, e := range s.entries {
		if e.ID != id {
			kept = append(kept, e)
		}
	}
	s.entries = kept
	return nil
}

// Clear empties the collection and cached summary and invalidates any
// in-flight load, so no authenticated data survives a logout.
func (s *Store) Clear() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.entries = nil
	s.summary = nil
	s.loadedFor = ""
	s.loadSeq++
}
