// Package infer implements forward-chaining rule evaluation over a
// fixed fact base: for each rule, candidate facts are joined across the
// body atoms under a consistent variable binding, and every successful
// combination instantiates the head into a derived fact.
package infer

import "github.com/cognicore/syllog/pkg/syllog/logic"

// DefaultMaxPasses caps fixpoint iteration. With no negation or
// arithmetic the fact base can only grow, so the cap is a safety net
// for pathological inputs, not a correctness requirement.
const DefaultMaxPasses = 64

// Engine evaluates rules against facts. The zero value is ready to use.
type Engine struct {
	// MaxPasses bounds EvaluateFixpoint; zero means DefaultMaxPasses.
	// Evaluate always performs exactly one pass.
	MaxPasses int
}

// New returns an engine with default settings.
func New() *Engine {
	return &Engine{}
}

// Evaluate performs one forward pass: every rule is matched once
// against the input facts, and derived facts are not fed back as
// inputs. The result is deduplicated by predicate name and argument
// tuple; its order follows derivation order and is deterministic for
// identical inputs.
func (e *Engine) Evaluate(facts []logic.Fact, rules []logic.Rule) []logic.Fact {
	store := NewStore(facts)
	seen := make(map[string]struct{})
	var derived []logic.Fact
	for _, rule := range rules {
		evalRule(rule, store, func(f logic.Fact) {
			key := f.Key()
			if _, dup := seen[key]; dup {
				return
			}
			seen[key] = struct{}{}
			derived = append(derived, f)
		})
	}
	return derived
}

// EvaluateFixpoint repeats forward passes, feeding each pass's
// derivations back into the fact base, until no new fact appears or
// MaxPasses is reached. It extends the single-pass semantics of
// Evaluate and nothing in the standard pipeline uses it implicitly.
func (e *Engine) EvaluateFixpoint(facts []logic.Fact, rules []logic.Rule) []logic.Fact {
	maxPasses := e.MaxPasses
	if maxPasses <= 0 {
		maxPasses = DefaultMaxPasses
	}

	store := NewStore(facts)
	known := make(map[string]struct{})
	for _, f := range facts {
		known[f.Key()] = struct{}{}
	}

	seen := make(map[string]struct{})
	var derived []logic.Fact
	for pass := 0; pass < maxPasses; pass++ {
		var fresh []logic.Fact
		for _, rule := range rules {
			evalRule(rule, store, func(f logic.Fact) {
				key := f.Key()
				if _, dup := seen[key]; dup {
					return
				}
				seen[key] = struct{}{}
				derived = append(derived, f)
				if _, ok := known[key]; !ok {
					known[key] = struct{}{}
					fresh = append(fresh, f)
				}
			})
		}
		if len(fresh) == 0 {
			break
		}
		for _, f := range fresh {
			store.Add(f)
		}
	}
	return derived
}

// evalRule joins candidate facts across the rule's body left to right.
// Bindings accumulated from earlier atoms filter the candidates of
// later ones, so combinations that can never unify are pruned instead
// of enumerated (the full cross product is only the worst case).
func evalRule(rule logic.Rule, store *Store, emit func(logic.Fact)) {
	solve(rule, 0, make(map[logic.Term]logic.Term), store, emit)
}

func solve(rule logic.Rule, idx int, bound map[logic.Term]logic.Term, store *Store, emit func(logic.Fact)) {
	if idx == len(rule.Body) {
		emit(instantiate(rule.Head, bound))
		return
	}
	atom := rule.Body[idx]
	for _, tuple := range store.Candidates(atom.Predicate) {
		next, ok := match(atom.Args, tuple, bound)
		if !ok {
			continue
		}
		solve(rule, idx+1, next, store, emit)
	}
}

// match unifies one body atom's terms against one fact tuple,
// position by position. Constants must equal the fact value; a variable
// binds on first sight and must rebind consistently after that. A
// conflict silently rejects the combination.
func match(args, tuple []logic.Term, bound map[logic.Term]logic.Term) (map[logic.Term]logic.Term, bool) {
	n := len(args)
	if len(tuple) < n {
		n = len(tuple)
	}

	next := bound
	copied := false
	for i := 0; i < n; i++ {
		term, val := args[i], tuple[i]
		if !term.IsVariable() {
			if term != val {
				return nil, false
			}
			continue
		}
		if prev, ok := next[term]; ok {
			if prev != val {
				return nil, false
			}
			continue
		}
		if !copied {
			next = make(map[logic.Term]logic.Term, len(bound)+n)
			for k, v := range bound {
				next[k] = v
			}
			copied = true
		}
		next[term] = val
	}
	return next, true
}

// instantiate builds the derived fact from the head: variables take
// their bound value or the unknown sentinel, constants pass through.
func instantiate(head logic.Atom, bound map[logic.Term]logic.Term) logic.Fact {
	args := make([]logic.Term, len(head.Args))
	for i, term := range head.Args {
		switch {
		case !term.IsVariable():
			args[i] = term
		default:
			val, ok := bound[term]
			if !ok {
				val = logic.Unknown
			}
			args[i] = val
		}
	}
	return logic.Fact{Atom: logic.Atom{Predicate: head.Predicate, Args: args}}
}
