// Package memstore is an in-memory store.Store implementation, used
// for tests and for runs that don't need persistence across process
// restarts.
package memstore

import (
	"context"
	"sync"

	"github.com/oklog/ulid/v2"

	"github.com/dkbrz/dixgraph/pkg/dixgraph/store"
)

// Store is an in-memory implementation of store.Store.
type Store struct {
	mu        sync.RWMutex
	batches   map[string]store.ProposalBatch
	evalRuns  []store.EvalRun
}

// New creates an empty in-memory store.
func New() *Store {
	return &Store{
		batches: make(map[string]store.ProposalBatch),
	}
}

// Close implements store.Store.
func (s *Store) Close() error { return nil }

// SaveProposalBatch assigns a ULID to b if it doesn't already have an
// ID and stores it.
func (s *Store) SaveProposalBatch(ctx context.Context, b store.ProposalBatch) (string, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if b.ID == "" {
		b.ID = ulid.Make().String()
	}
	s.batches[b.ID] = b
	return b.ID, nil
}

// GetProposalBatch returns a batch by ID.
func (s *Store) GetProposalBatch(ctx context.Context, id string) (store.ProposalBatch, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	b, ok := s.batches[id]
	if !ok {
		return store.ProposalBatch{}, store.ErrNotFound
	}
	return b, nil
}

// SaveEvalRun appends an evaluation run to history.
func (s *Store) SaveEvalRun(ctx context.Context, r store.EvalRun) (string, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if r.ID == "" {
		r.ID = ulid.Make().String()
	}
	s.evalRuns = append(s.evalRuns, r)
	return r.ID, nil
}

// ListEvalRuns returns every recorded run for a language pair, in
// insertion order.
func (s *Store) ListEvalRuns(ctx context.Context, lang1, lang2 string) ([]store.EvalRun, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	var out []store.EvalRun
	for _, r := range s.evalRuns {
		if r.Lang1 == lang1 && r.Lang2 == lang2 {
			out = append(out, r)
		}
	}
	return out, nil
}
