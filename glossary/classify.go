package glossary

import (
	"strings"
	"unicode"
	"unicode/utf8"
)

// SeeAlsoPrefix starts a cross-reference line.
const SeeAlsoPrefix = "See also:"

// IsHeading reports whether line has the shape of a term heading: an upper-case
// letter or digit followed only by letters, digits, spaces, '&' or '-', and
// longer than one character. Punctuation such as parentheses, slashes, commas
// and apostrophes disqualifies a line.
func IsHeading(line string) bool {
	if utf8.RuneCountInString(line) <= 1 || strings.HasPrefix(line, SeeAlsoPrefix) {
		return false
	}
	for i, r := range line {
		if i == 0 {
			if !unicode.IsUpper(r) && !unicode.IsDigit(r) {
				return false
			}
			continue
		}
		if !isHeadingRune(r) {
			return false
		}
	}
	return true
}

func isHeadingRune(r rune) bool {
	return unicode.IsLetter(r) || unicode.IsDigit(r) || unicode.IsSpace(r) || r == '&' || r == '-'
}

// IsPageMarker reports whether line is a page boundary such as "--- PAGE 12 ---".
func IsPageMarker(line string) bool {
	if !strings.HasPrefix(line, "---") || !strings.HasSuffix(line, "---") || len(line) < 6 {
		return false
	}
	inner := strings.TrimSpace(line[3 : len(line)-3])
	num, ok := strings.CutPrefix(inner, "PAGE")
	if !ok {
		return false
	}
	num = strings.TrimSpace(num)
	if num == "" {
		return false
	}
	for _, r := range num {
		if r < '0' || r > '9' {
			return false
		}
	}
	return true
}

// IsSectionLetter reports whether line is a lone upper-case letter, the
// divider printed at the start of each alphabetical section.
func IsSectionLetter(line string) bool {
	r, size := utf8.DecodeRuneInString(line)
	return size > 0 && size == len(line) && unicode.IsUpper(r)
}

// splitSeeAlso returns the trimmed, non-empty comma-separated references that
// follow the "See also:" prefix.
func splitSeeAlso(line string) []string {
	rest := strings.TrimPrefix(line, SeeAlsoPrefix)
	refs := []string{}
	for _, s := range strings.Split(rest, ",") {
		s = strings.TrimSpace(s)
		if s != "" {
			refs = append(refs, s)
		}
	}
	return refs
}
