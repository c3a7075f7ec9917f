// Package logic defines the value types shared by the parser and the
// inference engine: terms, atoms, facts and rules.
package logic

import (
	"strings"
	"unicode"
	"unicode/utf8"
)

// Unknown is substituted for a head parameter that never received a
// binding while a rule fired.
const Unknown = "?"

// Term is one argument position of an atom. Classification follows the
// usual Prolog convention: an identifier starting with an uppercase
// letter or underscore is a variable, everything else is a constant.
type Term string

// IsVariable reports whether the term is a bindable variable.
func (t Term) IsVariable() bool {
	r, _ := utf8.DecodeRuneInString(string(t))
	return r == '_' || unicode.IsUpper(r)
}

// Atom is a predicate applied to an ordered list of terms. It is the
// shape of a fact, a rule head and each rule-body call.
type Atom struct {
	Predicate string
	Args      []Term
}

// String renders the atom as `name(a, b)`.
func (a Atom) String() string {
	var b strings.Builder
	b.WriteString(a.Predicate)
	b.WriteByte('(')
	for i, arg := range a.Args {
		if i > 0 {
			b.WriteString(", ")
		}
		b.WriteString(string(arg))
	}
	b.WriteByte(')')
	return b.String()
}

// Fact is a ground statement taken directly from input text. Derived
// facts produced by the engine share the same shape.
type Fact struct {
	Atom
}

// NewFact builds a fact from a predicate name and argument values.
func NewFact(predicate string, args ...string) Fact {
	terms := make([]Term, len(args))
	for i, a := range args {
		terms[i] = Term(a)
	}
	return Fact{Atom{Predicate: predicate, Args: terms}}
}

// String renders the fact as a complete statement, `name(a, b).`.
func (f Fact) String() string {
	return f.Atom.String() + "."
}

// Key identifies a fact for deduplication: the predicate name plus the
// ordered argument tuple.
func (f Fact) Key() string {
	parts := make([]string, 0, len(f.Args)+1)
	parts = append(parts, f.Predicate)
	for _, a := range f.Args {
		parts = append(parts, string(a))
	}
	return strings.Join(parts, "\x1f")
}

// Rule is a Horn clause: firing it against facts matching every body
// atom derives a new fact from the head. Body is never empty; the
// parser discards rules whose body fails to parse entirely.
type Rule struct {
	Head Atom
	Body []Atom
}

// String renders the rule as `head(...) :- body1(...), body2(...).`.
func (r Rule) String() string {
	var b strings.Builder
	b.WriteString(r.Head.String())
	b.WriteString(" :- ")
	for i, atom := range r.Body {
		if i > 0 {
			b.WriteString(", ")
		}
		b.WriteString(atom.String())
	}
	b.WriteByte('.')
	return b.String()
}
