// Package glossary turns a page-delimited plaintext glossary transcript into
// an ordered list of entries.
package glossary

// Entry is one glossary headword with its body text and cross references.
type Entry struct {
	Term       string   `json:"term"`
	Definition string   `json:"definition"`
	SeeAlso    []string `json:"seeAlso"`
}
