package glossary

import "strings"

// Index resolves terms to entries by exact string match. When a term occurs
// more than once the first occurrence wins.
type Index struct {
	entries []Entry
	byTerm  map[string]int
}

func NewIndex(entries []Entry) *Index {
	idx := &Index{entries: entries, byTerm: make(map[string]int, len(entries))}
	for i, e := range entries {
		if _, ok := idx.byTerm[e.Term]; !ok {
			idx.byTerm[e.Term] = i
		}
	}
	return idx
}

// Lookup returns the entry for term.
func (idx *Index) Lookup(term string) (Entry, bool) {
	i, ok := idx.byTerm[term]
	if !ok {
		return Entry{}, false
	}
	return idx.entries[i], true
}

// IndexOf returns the position of term in the entry list, or -1.
func (idx *Index) IndexOf(term string) int {
	if i, ok := idx.byTerm[term]; ok {
		return i
	}
	return -1
}

// Resolve looks up a see-also reference. A single trailing period is
// ignored, since the last reference in a line usually ends the sentence.
func (idx *Index) Resolve(ref string) (Entry, bool) {
	if e, ok := idx.Lookup(ref); ok {
		return e, true
	}
	return idx.Lookup(strings.TrimSuffix(ref, "."))
}

// Terms returns the term names in source order.
func (idx *Index) Terms() []string {
	terms := make([]string, len(idx.entries))
	for i, e := range idx.entries {
		terms[i] = e.Term
	}
	return terms
}

func (idx *Index) Len() int { return len(idx.entries) }
