// Package transcript loads glossary transcripts from files, stdin or the
// bundled sample, and watches transcript files for changes.
package transcript

import (
	_ "embed"
	"io"
	"os"
	"strings"

	"github.com/adrg/frontmatter"
	"github.com/pkg/errors"
)

//go:embed sample.txt
var sample string

// StdinPath selects standard input in Load.
const StdinPath = "-"

// Transcript is the raw text of a glossary document.
type Transcript struct {
	// Title overrides the banner title when the file's front matter sets one.
	Title string
	Body  string
	// Path is empty for the bundled sample.
	Path string
}

type meta struct {
	Title string `yaml:"title"`
}

// Sample returns the transcript bundled with the binary.
func Sample() Transcript {
	return Transcript{Body: sample}
}

// Load reads the transcript at path, or stdin when path is "-". An empty
// path yields the sample.
func Load(path string) (Transcript, error) {
	switch path {
	case "":
		return Sample(), nil
	case StdinPath:
		t, err := Read(os.Stdin)
		if err != nil {
			return Transcript{}, errors.Wrap(err, "failed to read transcript from stdin")
		}
		t.Path = StdinPath
		return t, nil
	}

	f, err := os.Open(path)
	if err != nil {
		return Transcript{}, errors.Wrap(err, "failed to open transcript")
	}
	defer f.Close()

	t, err := Read(f)
	if err != nil {
		return Transcript{}, errors.Wrapf(err, "failed to read transcript %s", path)
	}
	t.Path = path
	return t, nil
}

// Read reads a transcript, splitting off optional YAML front matter.
func Read(r io.Reader) (Transcript, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return Transcript{}, err
	}

	var m meta
	body, err := frontmatter.Parse(strings.NewReader(string(data)), &m)
	if err != nil {
		// Malformed front matter is left in the body for the parser to skip.
		return Transcript{Body: string(data)}, nil
	}
	return Transcript{Title: strings.TrimSpace(m.Title), Body: string(body)}, nil
}
