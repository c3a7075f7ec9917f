package infer

import "github.com/cognicore/syllog/pkg/syllog/logic"

// Store indexes fact tuples by predicate name for lookup during rule
// evaluation. It is built once per run from directly parsed facts;
// derived facts are never added back (the default evaluation is a
// single forward pass).
type Store struct {
	tuples map[string][][]logic.Term
}

// NewStore groups the given facts by predicate, preserving insertion
// order. Duplicate facts from the input are kept as separate entries.
func NewStore(facts []logic.Fact) *Store {
	s := &Store{tuples: make(map[string][][]logic.Term)}
	for _, f := range facts {
		s.Add(f)
	}
	return s
}

// Add records one fact's argument tuple.
func (s *Store) Add(f logic.Fact) {
	s.tuples[f.Predicate] = append(s.tuples[f.Predicate], f.Args)
}

// Candidates returns every argument tuple recorded for a predicate, in
// insertion order. An unknown predicate yields an empty sequence, never
// an error.
func (s *Store) Candidates(predicate string) [][]logic.Term {
	return s.tuples[predicate]
}

// Len returns the total number of stored tuples.
func (s *Store) Len() int {
	n := 0
	for _, t := range s.tuples {
		n += len(t)
	}
	return n
}
