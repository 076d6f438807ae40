package sqlite

import (
	"context"
	"path/filepath"
	"testing"
	"time"

	"github.com/dkbrz/dixgraph/pkg/dixgraph/dixfile"
	"github.com/dkbrz/dixgraph/pkg/dixgraph/eval"
	"github.com/dkbrz/dixgraph/pkg/dixgraph/store"
	"github.com/dkbrz/dixgraph/pkg/dixgraph/word"
)

func TestSaveProposalBatchGeneratesIDWhenEmpty(t *testing.T) {
	ctx := context.Background()
	dbPath := filepath.Join(t.TempDir(), "test.db")

	st, err := Open(ctx, dbPath)
	if err != nil {
		t.Fatalf("Open: %v", err)
	}
	defer st.Close()

	eng := word.New("eng", "cat", []word.TagGroup{{word.Tags{"n"}}})
	rus := word.New("rus", "kot", []word.TagGroup{{word.Tags{"n", "m"}}})
	batch := store.ProposalBatch{
		Lang1:     "eng",
		Lang2:     "rus",
		Rows:      []dixfile.PreviewRow{{Word1: eng, Word2: rus, ScoreLR: 0.5}},
		CreatedAt: time.Now(),
	}

	id, err := st.SaveProposalBatch(ctx, batch)
	if err != nil {
		t.Fatalf("SaveProposalBatch: %v", err)
	}
	if id == "" {
		t.Fatal("expected a generated ID, got an empty string")
	}

	got, err := st.GetProposalBatch(ctx, id)
	if err != nil {
		t.Fatalf("GetProposalBatch: %v", err)
	}
	if got.Lang1 != "eng" || got.Lang2 != "rus" || len(got.Rows) != 1 {
		t.Fatalf("got = %+v", got)
	}
}

func TestSaveEvalRunGeneratesIDWhenEmpty(t *testing.T) {
	ctx := context.Background()
	dbPath := filepath.Join(t.TempDir(), "test.db")

	st, err := Open(ctx, dbPath)
	if err != nil {
		t.Fatalf("Open: %v", err)
	}
	defer st.Close()

	run := store.EvalRun{
		Lang1:     "eng",
		Lang2:     "rus",
		Cutoff:    4,
		NIter:     1,
		Metrics:   eval.Metrics{N: 10, Precision: 1, Recall: 1, F1: 1},
		CreatedAt: time.Now(),
	}

	id, err := st.SaveEvalRun(ctx, run)
	if err != nil {
		t.Fatalf("SaveEvalRun: %v", err)
	}
	if id == "" {
		t.Fatal("expected a generated ID, got an empty string")
	}

	runs, err := st.ListEvalRuns(ctx, "eng", "rus")
	if err != nil {
		t.Fatalf("ListEvalRuns: %v", err)
	}
	if len(runs) != 1 || runs[0].ID != id {
		t.Fatalf("runs = %+v, want one run with ID %q", runs, id)
	}
}

func TestGetProposalBatchMissingReturnsErrNotFound(t *testing.T) {
	ctx := context.Background()
	dbPath := filepath.Join(t.TempDir(), "test.db")

	st, err := Open(ctx, dbPath)
	if err != nil {
		t.Fatalf("Open: %v", err)
	}
	defer st.Close()

	if _, err := st.GetProposalBatch(ctx, "does-not-exist"); err != store.ErrNotFound {
		t.Fatalf("got %v, want store.ErrNotFound", err)
	}
}
