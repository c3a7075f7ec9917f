// Package validate performs the shallow line-level syntax check applied
// to generated logic text before parsing. It flags lines that are
// missing a statement terminator or a parenthesis pair; the issues are
// sent back to the generator for one refinement round.
package validate

import (
	"fmt"
	"strings"
)

// Issue describes one problem with one line of logic text.
type Issue struct {
	Line    int
	Message string
}

func (i Issue) String() string {
	return fmt.Sprintf("Line %d: %s", i.Line, i.Message)
}

// Check scans logic text line by line. It returns nil when every
// non-empty line looks like a complete statement.
func Check(text string) []Issue {
	var issues []Issue
	for num, line := range strings.Split(strings.TrimSpace(text), "\n") {
		stripped := strings.TrimSpace(line)
		if stripped == "" {
			continue
		}
		if !strings.HasSuffix(stripped, ".") {
			issues = append(issues, Issue{Line: num + 1, Message: "Missing period at end."})
		}
		if !strings.Contains(stripped, "(") || !strings.Contains(stripped, ")") {
			issues = append(issues, Issue{Line: num + 1, Message: "Missing parentheses."})
		}
	}
	return issues
}

// Messages renders issues as the plain strings handed to the
// refinement call.
func Messages(issues []Issue) []string {
	out := make([]string, len(issues))
	for i, issue := range issues {
		out[i] = issue.String()
	}
	return out
}
