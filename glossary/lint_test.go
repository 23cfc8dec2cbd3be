package glossary

import (
	"reflect"
	"testing"
)

func TestLint(t *testing.T) {
	entries := []Entry{
		{Term: "Abyss", Definition: "The deep.", SeeAlso: []string{"Firmament."}},
		{Term: "Firmament", Definition: "", SeeAlso: []string{"Abyss", "Ice Wall"}},
		{Term: "Abyss", Definition: "Again.", SeeAlso: []string{}},
	}

	got := Lint(entries)
	want := []Issue{
		{Kind: IssueEmptyDefinition, Term: "Firmament"},
		{Kind: IssueDanglingRef, Term: "Firmament", Detail: "Ice Wall"},
		{Kind: IssueDuplicateTerm, Term: "Abyss"},
	}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("Lint mismatch\n got: %#v\nwant: %#v", got, want)
	}
}

func TestLintClean(t *testing.T) {
	entries := Parse("Alpha\nBody\nSee also: Beta.\nBeta\nBody\nSee also: Alpha")
	if issues := Lint(entries); len(issues) != 0 {
		t.Errorf("expected no issues, got %v", issues)
	}
}

func TestIssueString(t *testing.T) {
	i := Issue{Kind: IssueDanglingRef, Term: "Abyss", Detail: "Nowhere"}
	if got := i.String(); got != "dangling-see-also: Abyss (Nowhere)" {
		t.Errorf("unexpected String(): %q", got)
	}
	i = Issue{Kind: IssueEmptyDefinition, Term: "Abyss"}
	if got := i.String(); got != "empty-definition: Abyss" {
		t.Errorf("unexpected String(): %q", got)
	}
}

func TestIndex(t *testing.T) {
	idx := NewIndex([]Entry{
		{Term: "Abyss", Definition: "first"},
		{Term: "Firmament", Definition: "dome"},
		{Term: "Abyss", Definition: "second"},
	})
	if idx.Len() != 3 {
		t.Fatalf("expected 3 entries, got %d", idx.Len())
	}
	e, ok := idx.Lookup("Abyss")
	if !ok || e.Definition != "first" {
		t.Errorf("expected first Abyss, got %#v ok=%v", e, ok)
	}
	if i := idx.IndexOf("Firmament"); i != 1 {
		t.Errorf("IndexOf(Firmament) = %d, want 1", i)
	}
	if i := idx.IndexOf("Ice Wall"); i != -1 {
		t.Errorf("IndexOf(Ice Wall) = %d, want -1", i)
	}
	if _, ok := idx.Lookup("abyss"); ok {
		t.Error("lookup must be case sensitive")
	}
	if got := idx.Terms(); !reflect.DeepEqual(got, []string{"Abyss", "Firmament", "Abyss"}) {
		t.Errorf("unexpected terms %v", got)
	}
}

func TestIndexResolve(t *testing.T) {
	idx := NewIndex([]Entry{{Term: "Abyss"}, {Term: "St. Elmo"}})
	tests := []struct {
		ref  string
		want string
		ok   bool
	}{
		{"Abyss", "Abyss", true},
		{"Abyss.", "Abyss", true},
		{"Abyss..", "", false},
		{"St. Elmo", "St. Elmo", true},
		{"Firmament", "", false},
	}
	for _, tt := range tests {
		e, ok := idx.Resolve(tt.ref)
		if ok != tt.ok || e.Term != tt.want {
			t.Errorf("Resolve(%q) = %q, %v; want %q, %v", tt.ref, e.Term, ok, tt.want, tt.ok)
		}
	}
}
