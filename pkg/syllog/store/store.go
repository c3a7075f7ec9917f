// Package store persists reasoning runs: the input text, the logic the
// generator produced, what parsed, and what was derived.
package store

import (
	"context"
	"crypto/rand"
	"time"

	"github.com/oklog/ulid/v2"

	"github.com/cognicore/syllog/pkg/syllog/logic"
	"github.com/cognicore/syllog/pkg/syllog/parse"
)

// Store is the interface for persisting and querying runs.
type Store interface {
	Close() error

	SaveRun(ctx context.Context, r Run) error
	GetRun(ctx context.Context, id string) (Run, error)
	ListRuns(ctx context.Context, limit int) ([]Run, error)
}

// Run is one complete pipeline execution.
type Run struct {
	ID        string
	CreatedAt time.Time

	// Input is the natural-language knowledge base.
	Input string

	// Logic is the final logic text handed to the parser, after any
	// refinement round.
	Logic string

	// Refined reports whether a refinement call was made.
	Refined bool

	// Issues are the validator messages that triggered refinement.
	Issues []string

	Facts       []logic.Fact
	Rules       []logic.Rule
	Derived     []logic.Fact
	Diagnostics []parse.Diagnostic
}

// IDSource mints run ids. ULIDs sort by creation time, which keeps
// ListRuns ordering cheap.
type IDSource struct {
	entropy *ulid.MonotonicEntropy
}

// NewIDSource creates an id source backed by monotonic entropy.
func NewIDSource() *IDSource {
	return &IDSource{entropy: ulid.Monotonic(rand.Reader, 0)}
}

// NewRunID returns a fresh run id.
func (s *IDSource) NewRunID() string {
	return ulid.MustNew(ulid.Now(), s.entropy).String()
}
