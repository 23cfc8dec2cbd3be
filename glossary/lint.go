package glossary

import "fmt"

// IssueKind classifies a Lint finding.
type IssueKind string

const (
	IssueEmptyDefinition IssueKind = "empty-definition"
	IssueDuplicateTerm   IssueKind = "duplicate-term"
	IssueDanglingRef     IssueKind = "dangling-see-also"
)

// Issue is a problem Lint found in a parsed entry list.
type Issue struct {
	Kind   IssueKind `json:"kind"`
	Term   string    `json:"term"`
	Detail string    `json:"detail,omitempty"`
}

func (i Issue) String() string {
	if i.Detail == "" {
		return fmt.Sprintf("%s: %s", i.Kind, i.Term)
	}
	return fmt.Sprintf("%s: %s (%s)", i.Kind, i.Term, i.Detail)
}

// Lint checks entries for the irregularities a best-effort parse can leave
// behind. Parse itself never reports these.
func Lint(entries []Entry) []Issue {
	var issues []Issue
	idx := NewIndex(entries)

	seen := make(map[string]bool, len(entries))
	for _, e := range entries {
		if seen[e.Term] {
			issues = append(issues, Issue{Kind: IssueDuplicateTerm, Term: e.Term})
		}
		seen[e.Term] = true

		if e.Definition == "" {
			issues = append(issues, Issue{Kind: IssueEmptyDefinition, Term: e.Term})
		}

		for _, ref := range e.SeeAlso {
			if _, ok := idx.Resolve(ref); ok {
				continue
			}
			issues = append(issues, Issue{Kind: IssueDanglingRef, Term: e.Term, Detail: ref})
		}
	}
	return issues
}
