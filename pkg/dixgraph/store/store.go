// Package store persists the artifacts of a dixgraph run: proposed
// translation batches (for human review) and evaluation run history
// (for tracking quality over time), mirroring the read/write surface
// the ambient stack expects of a backing store.
package store

import (
	"context"
	"errors"
	"time"

	"github.com/dkbrz/dixgraph/pkg/dixgraph/dixfile"
	"github.com/dkbrz/dixgraph/pkg/dixgraph/eval"
)

// ErrNotFound is returned when a requested batch or run doesn't exist.
var ErrNotFound = errors.New("not found")

// Store is the persistence interface for dixgraph's two long-lived
// artifacts.
type Store interface {
	Close() error

	SaveProposalBatch(ctx context.Context, b ProposalBatch) (string, error)
	GetProposalBatch(ctx context.Context, id string) (ProposalBatch, error)

	SaveEvalRun(ctx context.Context, r EvalRun) (string, error)
	ListEvalRuns(ctx context.Context, lang1, lang2 string) ([]EvalRun, error)
}

// ProposalBatch is one `propose` run's output: the scored
// candidate pairs proposed for a language pair, pending human review.
type ProposalBatch struct {
	ID        string
	Lang1     string
	Lang2     string
	Rows      []dixfile.PreviewRow
	CreatedAt time.Time
}

// EvalRun is one `eval` run's parameters and resulting metrics.
type EvalRun struct {
	ID        string
	Lang1     string
	Lang2     string
	Cutoff    int
	TopN      int
	NIter     int
	Metrics   eval.Metrics
	CreatedAt time.Time
}
