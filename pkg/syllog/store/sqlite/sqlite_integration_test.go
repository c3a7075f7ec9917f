package sqlite

import (
	"context"
	"errors"
	"path/filepath"
	"testing"
	"time"

	"github.com/cognicore/syllog/pkg/syllog/internalerr"
	"github.com/cognicore/syllog/pkg/syllog/logic"
	"github.com/cognicore/syllog/pkg/syllog/parse"
	"github.com/cognicore/syllog/pkg/syllog/store"
)

func openTestStore(t *testing.T) store.Store {
	t.Helper()
	path := filepath.Join(t.TempDir(), "runs.db")
	s, err := Open(context.Background(), path)
	if err != nil {
		t.Fatalf("Open: %v", err)
	}
	t.Cleanup(func() { s.Close() })
	return s
}

func TestRunRoundTrip(t *testing.T) {
	ctx := context.Background()
	s := openTestStore(t)

	run := store.Run{
		ID:        "01RUN",
		CreatedAt: time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC),
		Input:     "John is the parent of Mary. Mary is the parent of Susan.",
		Logic:     "parent(john, mary).\nparent(mary, susan).\ngrandparent(X,Y) :- parent(X,Z), parent(Z,Y).",
		Refined:   true,
		Issues:    []string{"Line 3: Missing period at end."},
		Facts: []logic.Fact{
			logic.NewFact("parent", "john", "mary"),
			logic.NewFact("parent", "mary", "susan"),
		},
		Rules: []logic.Rule{{
			Head: logic.Atom{Predicate: "grandparent", Args: []logic.Term{"X", "Y"}},
			Body: []logic.Atom{
				{Predicate: "parent", Args: []logic.Term{"X", "Z"}},
				{Predicate: "parent", Args: []logic.Term{"Z", "Y"}},
			},
		}},
		Derived: []logic.Fact{logic.NewFact("grandparent", "john", "susan")},
		Diagnostics: []parse.Diagnostic{
			{Kind: parse.MalformedLine, Line: 4, Text: "nonsense"},
		},
	}

	if err := s.SaveRun(ctx, run); err != nil {
		t.Fatalf("SaveRun: %v", err)
	}

	got, err := s.GetRun(ctx, "01RUN")
	if err != nil {
		t.Fatalf("GetRun: %v", err)
	}

	if !got.CreatedAt.Equal(run.CreatedAt) {
		t.Errorf("created_at = %v, want %v", got.CreatedAt, run.CreatedAt)
	}
	if !got.Refined || len(got.Issues) != 1 {
		t.Errorf("refinement fields lost: %+v", got)
	}
	if len(got.Facts) != 2 || got.Facts[1].String() != "parent(mary, susan)." {
		t.Errorf("facts = %v", got.Facts)
	}
	if len(got.Rules) != 1 || got.Rules[0].String() != run.Rules[0].String() {
		t.Errorf("rules = %v", got.Rules)
	}
	if len(got.Derived) != 1 || got.Derived[0].String() != "grandparent(john, susan)." {
		t.Errorf("derived = %v", got.Derived)
	}
	if len(got.Diagnostics) != 1 || got.Diagnostics[0].Kind != parse.MalformedLine {
		t.Errorf("diagnostics = %v", got.Diagnostics)
	}
}

func TestGetRunMissing(t *testing.T) {
	s := openTestStore(t)
	_, err := s.GetRun(context.Background(), "absent")
	if !errors.Is(err, internalerr.ErrRunNotFound) {
		t.Errorf("expected ErrRunNotFound, got %v", err)
	}
}

func TestSaveRunReplacesExisting(t *testing.T) {
	ctx := context.Background()
	s := openTestStore(t)

	run := store.Run{ID: "01RUN", CreatedAt: time.Now(), Logic: "a(b)."}
	if err := s.SaveRun(ctx, run); err != nil {
		t.Fatalf("SaveRun: %v", err)
	}
	run.Logic = "a(c)."
	if err := s.SaveRun(ctx, run); err != nil {
		t.Fatalf("SaveRun replace: %v", err)
	}

	got, err := s.GetRun(ctx, "01RUN")
	if err != nil {
		t.Fatalf("GetRun: %v", err)
	}
	if got.Logic != "a(c)." {
		t.Errorf("logic = %q", got.Logic)
	}
}

func TestListRunsLimitAndOrder(t *testing.T) {
	ctx := context.Background()
	s := openTestStore(t)

	for _, id := range []string{"01A", "01B", "01C"} {
		if err := s.SaveRun(ctx, store.Run{ID: id, CreatedAt: time.Now()}); err != nil {
			t.Fatalf("SaveRun(%s): %v", id, err)
		}
	}

	runs, err := s.ListRuns(ctx, 2)
	if err != nil {
		t.Fatalf("ListRuns: %v", err)
	}
	if len(runs) != 2 || runs[0].ID != "01C" || runs[1].ID != "01B" {
		t.Errorf("unexpected list: %+v", runs)
	}
}
