// Package parse turns generated logic text into facts and rules.
//
// The input grammar is deliberately loose, because the text comes from a
// language model: fact statements like `parent(john, mary).`, rule
// statements like `grandparent(X, Y) :- parent(X, Z), parent(Z, Y).`
// possibly spanning several physical lines, `%` line comments, and
// optional Markdown code fences around the whole block. Anything that
// does not parse is skipped with a diagnostic; a single bad statement
// never blanks the rest of a knowledge base.
package parse

import (
	"bufio"
	"strings"

	"github.com/cognicore/syllog/pkg/syllog/logic"
)

const (
	commentMarker = "%"
	ruleOperator  = ":-"
	terminator    = "."
)

// Parse extracts facts and rules from logic text. It never returns an
// error: malformed statements become diagnostics and processing
// continues with the next line.
func Parse(text string) Result {
	text = stripFences(text)

	var res Result
	var acc accumulator

	scanner := bufio.NewScanner(strings.NewReader(text))
	lineNum := 0
	for scanner.Scan() {
		lineNum++
		line := strings.TrimSpace(scanner.Text())
		if line == "" || strings.HasPrefix(line, commentMarker) {
			continue
		}

		if strings.Contains(line, ruleOperator) || acc.collecting() {
			raw, start, done := acc.feed(line, lineNum)
			if !done {
				continue
			}
			rule, diags, ok := parseRule(raw, start)
			res.Diagnostics = append(res.Diagnostics, diags...)
			if ok {
				res.Rules = append(res.Rules, rule)
			}
			continue
		}

		atom, err := ParseAtom(strings.TrimSuffix(line, terminator))
		if err != nil {
			res.Diagnostics = append(res.Diagnostics, Diagnostic{
				Kind: MalformedLine,
				Line: lineNum,
				Text: line,
			})
			continue
		}
		res.Facts = append(res.Facts, logic.Fact{Atom: atom})
	}

	if raw, start, pending := acc.flush(); pending {
		res.Diagnostics = append(res.Diagnostics, Diagnostic{
			Kind: MalformedLine,
			Line: start,
			Text: raw,
		})
	}

	return res
}

// stripFences removes Markdown code-fence markers the generator was
// told not to emit but sometimes does anyway.
func stripFences(text string) string {
	text = strings.ReplaceAll(text, "```prolog", "")
	return strings.ReplaceAll(text, "```", "")
}

// parseRule structures one accumulated rule statement. It reports
// malformed pieces through diagnostics; ok is false when the rule must
// be discarded.
func parseRule(raw string, line int) (logic.Rule, []Diagnostic, bool) {
	text := strings.TrimSpace(strings.TrimRight(strings.TrimSpace(raw), terminator))

	headText, bodyText, found := strings.Cut(text, ruleOperator)
	if !found {
		return logic.Rule{}, []Diagnostic{{Kind: MalformedLine, Line: line, Text: raw}}, false
	}

	head, err := ParseAtom(strings.TrimSpace(headText))
	if err != nil {
		return logic.Rule{}, []Diagnostic{{Kind: MalformedLine, Line: line, Text: raw}}, false
	}

	bodyText = strings.TrimSpace(bodyText)
	if strings.HasPrefix(bodyText, "(") && strings.HasSuffix(bodyText, ")") {
		bodyText = bodyText[1 : len(bodyText)-1]
	}

	var diags []Diagnostic
	var body []logic.Atom
	for _, segment := range SplitCalls(bodyText) {
		atom, err := ParseAtom(segment)
		if err != nil {
			diags = append(diags, Diagnostic{Kind: MalformedLine, Line: line, Text: segment})
			continue
		}
		body = append(body, atom)
	}

	if len(body) == 0 {
		diags = append(diags, Diagnostic{Kind: EmptyRuleBody, Line: line, Text: raw})
		return logic.Rule{}, diags, false
	}

	return logic.Rule{Head: head, Body: body}, diags, true
}

// accumulator collects the physical lines of one rule statement until a
// line ends with the terminator. It is a two-state machine: idle until
// a rule line arrives, collecting until the statement completes.
type accumulator struct {
	parts []string
	start int
}

func (a *accumulator) collecting() bool {
	return len(a.parts) > 0
}

// feed adds one line. When the accumulated statement is complete it
// returns the joined text, the line number it started on, and true.
func (a *accumulator) feed(line string, num int) (string, int, bool) {
	if !a.collecting() {
		a.start = num
	}
	a.parts = append(a.parts, line)
	if !strings.HasSuffix(line, terminator) {
		return "", 0, false
	}
	raw := strings.Join(a.parts, " ")
	start := a.start
	a.parts = nil
	return raw, start, true
}

// flush reports a statement left unterminated at end of input.
func (a *accumulator) flush() (string, int, bool) {
	if !a.collecting() {
		return "", 0, false
	}
	raw := strings.Join(a.parts, " ")
	start := a.start
	a.parts = nil
	return raw, start, true
}
