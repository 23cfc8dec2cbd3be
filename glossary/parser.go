package glossary

import (
	"strings"
)

// DefaultTitle is the banner printed at the top of the transcript.
const DefaultTitle = "The Unforgettable Chronicle: A-Z Deep-Rooted Glossary"

// Parser parses glossary transcripts. The zero value skips no banner line.
type Parser struct {
	// Title is the document banner skipped before the first term. A line is
	// treated as the banner when it contains Title.
	Title string
}

// Parse parses text with DefaultTitle as the banner.
func Parse(text string) []Entry {
	p := Parser{Title: DefaultTitle}
	return p.Parse(text)
}

// parseState is the scan state of a single Parse call.
type parseState struct {
	entries []Entry

	term       string
	open       bool
	definition []string
	seeAlso    []string
	collecting bool
}

// flush emits the open term, if any, and resets the state.
func (s *parseState) flush() {
	if s.open {
		seeAlso := s.seeAlso
		if seeAlso == nil {
			seeAlso = []string{}
		}
		s.entries = append(s.entries, Entry{
			Term:       s.term,
			Definition: strings.TrimSpace(strings.Join(s.definition, "\n")),
			SeeAlso:    seeAlso,
		})
	}
	s.term = ""
	s.open = false
	s.definition = nil
	s.seeAlso = nil
	s.collecting = false
}

func (s *parseState) preamble() bool {
	return len(s.entries) == 0 && !s.open
}

func (p *Parser) isBanner(line string) bool {
	return p.Title != "" && strings.Contains(line, p.Title)
}

// Parse returns the entries found in text, in heading order. It never fails:
// lines it cannot place are dropped or folded into the open definition.
func (p *Parser) Parse(text string) []Entry {
	s := &parseState{entries: []Entry{}}

	for _, raw := range strings.Split(text, "\n") {
		line := strings.TrimSpace(raw)

		if s.preamble() && (line == "" || p.isBanner(line) || IsSectionLetter(line)) {
			continue
		}

		if IsPageMarker(line) {
			// A term whose see-also line was already read stays open across the
			// page break and is closed by the next heading instead.
			if s.open && s.collecting {
				s.flush()
			}
			continue
		}

		if line == "" {
			if s.open && s.collecting {
				s.definition = append(s.definition, "")
			}
			continue
		}

		switch {
		case !s.collecting && IsHeading(line):
			s.flush()
			s.term = line
			s.open = true
			s.collecting = true
		case strings.HasPrefix(line, SeeAlsoPrefix):
			s.seeAlso = splitSeeAlso(line)
			s.collecting = false
		case s.open && s.collecting:
			s.definition = append(s.definition, line)
		}
	}

	s.flush()
	return s.entries
}
