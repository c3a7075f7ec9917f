// Package syllog wires the reasoning pipeline together: a natural-
// language knowledge base is translated into logic text by an external
// generator, shallow-validated (with one refinement round if needed),
// parsed into facts and rules, and forward-chained into derived facts.
package syllog

import (
	"context"
	"fmt"
	"time"

	"github.com/cognicore/syllog/pkg/syllog/infer"
	"github.com/cognicore/syllog/pkg/syllog/logic"
	"github.com/cognicore/syllog/pkg/syllog/parse"
	"github.com/cognicore/syllog/pkg/syllog/store"
	"github.com/cognicore/syllog/pkg/syllog/validate"
)

// Translator is the external text-generation collaborator. It is
// invoked at most twice per run: one translation call and at most one
// refinement call.
type Translator interface {
	Translate(ctx context.Context, nlText string) (string, error)
	Refine(ctx context.Context, brokenLogic string, issues []string) (string, error)
}

// Options configures a Syllog instance.
type Options struct {
	Translator Translator

	// Store, when set, persists every run. Nil disables persistence.
	Store store.Store

	// Fixpoint switches evaluation from one forward pass to iterating
	// until closure.
	Fixpoint bool

	// MaxFixpointPasses bounds fixpoint iteration; zero uses the
	// engine default.
	MaxFixpointPasses int
}

// Syllog is the reasoning pipeline facade.
type Syllog struct {
	translator Translator
	store      store.Store
	engine     *infer.Engine
	fixpoint   bool
	ids        *store.IDSource
}

// New creates a Syllog instance with the given dependencies.
func New(opts Options) *Syllog {
	return &Syllog{
		translator: opts.Translator,
		store:      opts.Store,
		engine:     &infer.Engine{MaxPasses: opts.MaxFixpointPasses},
		fixpoint:   opts.Fixpoint,
		ids:        store.NewIDSource(),
	}
}

// Close shuts down the underlying store, if any.
func (s *Syllog) Close() error {
	if s.store == nil {
		return nil
	}
	return s.store.Close()
}

// Report is the outcome of one run. Zero facts and zero rules means
// there was nothing to reason over; that is not an error.
type Report struct {
	RunID string

	// Logic is the text that was parsed, after any refinement.
	Logic string

	// Refined reports whether a refinement call was made; Issues are
	// the validator messages that triggered it.
	Refined bool
	Issues  []validate.Issue

	Facts       []logic.Fact
	Rules       []logic.Rule
	Derived     []logic.Fact
	Diagnostics []parse.Diagnostic
}

// Empty reports whether nothing usable came out of the logic text.
func (r *Report) Empty() bool {
	return len(r.Facts) == 0 && len(r.Rules) == 0
}

// Run executes the full pipeline on a natural-language knowledge base.
func (s *Syllog) Run(ctx context.Context, nlText string) (*Report, error) {
	if s.translator == nil {
		return nil, fmt.Errorf("syllog: no translator configured")
	}

	logicText, err := s.translator.Translate(ctx, nlText)
	if err != nil {
		return nil, fmt.Errorf("translate: %w", err)
	}

	issues := validate.Check(logicText)
	refined := false
	if len(issues) > 0 {
		logicText, err = s.translator.Refine(ctx, logicText, validate.Messages(issues))
		if err != nil {
			return nil, fmt.Errorf("refine: %w", err)
		}
		refined = true
	}

	report := s.reason(logicText)
	report.Refined = refined
	report.Issues = issues

	if s.store != nil {
		report.RunID = s.ids.NewRunID()
		if err := s.store.SaveRun(ctx, store.Run{
			ID:          report.RunID,
			CreatedAt:   time.Now().UTC(),
			Input:       nlText,
			Logic:       report.Logic,
			Refined:     report.Refined,
			Issues:      validate.Messages(report.Issues),
			Facts:       report.Facts,
			Rules:       report.Rules,
			Derived:     report.Derived,
			Diagnostics: report.Diagnostics,
		}); err != nil {
			return nil, fmt.Errorf("save run: %w", err)
		}
	}

	return report, nil
}

// Reason parses and evaluates ready-made logic text, skipping the
// translation collaborator entirely.
func (s *Syllog) Reason(logicText string) *Report {
	return s.reason(logicText)
}

func (s *Syllog) reason(logicText string) *Report {
	report := &Report{
		Logic:  logicText,
		Issues: validate.Check(logicText),
	}

	res := parse.Parse(logicText)
	report.Facts = res.Facts
	report.Rules = res.Rules
	report.Diagnostics = res.Diagnostics

	if s.fixpoint {
		report.Derived = s.engine.EvaluateFixpoint(res.Facts, res.Rules)
	} else {
		report.Derived = s.engine.Evaluate(res.Facts, res.Rules)
	}
	return report
}
