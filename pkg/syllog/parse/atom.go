package parse

import (
	"fmt"
	"strings"

	"github.com/cognicore/syllog/pkg/syllog/logic"
)

// SplitCalls splits a rule-body string into individual predicate-call
// substrings. Only commas at parenthesis depth zero separate calls, so
// `p(a,(b,c)), q(d)` yields two segments. Each segment is returned with
// surrounding whitespace trimmed.
func SplitCalls(body string) []string {
	var segments []string
	depth := 0
	start := 0
	for i, r := range body {
		switch r {
		case '(':
			depth++
		case ')':
			if depth > 0 {
				depth--
			}
		case ',':
			if depth == 0 {
				segments = append(segments, strings.TrimSpace(body[start:i]))
				start = i + 1
			}
		}
	}
	if last := strings.TrimSpace(body[start:]); last != "" || len(segments) > 0 {
		segments = append(segments, last)
	}
	return segments
}

// ParseAtom parses one `name(arg1, arg2, ...)` call into an atom. The
// input should already have its statement terminator stripped. Arguments
// are split on top-level commas only; compound terms nested inside an
// argument are kept verbatim, not parsed further.
func ParseAtom(s string) (logic.Atom, error) {
	openParen := strings.Index(s, "(")
	if openParen == -1 {
		return logic.Atom{}, fmt.Errorf("missing '(': %s", s)
	}
	closeParen := strings.LastIndex(s, ")")
	if closeParen == -1 || closeParen < openParen {
		return logic.Atom{}, fmt.Errorf("missing ')': %s", s)
	}

	name := strings.TrimSpace(s[:openParen])
	if name == "" {
		return logic.Atom{}, fmt.Errorf("missing predicate name: %s", s)
	}

	inner := strings.TrimSpace(s[openParen+1 : closeParen])
	if inner == "" {
		return logic.Atom{Predicate: name}, nil
	}

	parts := SplitCalls(inner)
	args := make([]logic.Term, len(parts))
	for i, p := range parts {
		args[i] = logic.Term(p)
	}
	return logic.Atom{Predicate: name, Args: args}, nil
}
