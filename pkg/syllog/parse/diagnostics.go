package parse

import (
	"fmt"

	"github.com/cognicore/syllog/pkg/syllog/logic"
)

// Kind classifies why a piece of input was skipped during parsing.
type Kind string

const (
	// MalformedLine marks a line or body call that matches neither the
	// fact nor the rule shape.
	MalformedLine Kind = "malformed_line"

	// EmptyRuleBody marks a rule discarded because none of its body
	// calls parsed; such a rule can never fire.
	EmptyRuleBody Kind = "empty_rule_body"
)

// Diagnostic records one skipped piece of input. Parsing never fails on
// bad lines; it skips them and keeps going.
type Diagnostic struct {
	Kind Kind
	Line int
	Text string
}

func (d Diagnostic) String() string {
	return fmt.Sprintf("line %d: %s: %s", d.Line, d.Kind, d.Text)
}

// Result holds everything extracted from one logic text. Zero facts and
// zero rules from non-empty input means there is nothing to reason
// over; it is not an error.
type Result struct {
	Facts       []logic.Fact
	Rules       []logic.Rule
	Diagnostics []Diagnostic
}

// Empty reports whether parsing extracted nothing usable.
func (r Result) Empty() bool {
	return len(r.Facts) == 0 && len(r.Rules) == 0
}
