package main

import (
	"fmt"
	"os"

	log "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"glossary-reader/catalog"
	"glossary-reader/config"
	"glossary-reader/glossary"
	"glossary-reader/transcript"
)

// Version is set at build time via ldflags.
var Version = "dev"

// app carries what every subcommand needs once flags are parsed.
type app struct {
	configPath string
	verbose    bool

	cfg     *config.Config
	catalog *catalog.Catalog
}

func main() {
	a := &app{}
	root := newRootCmd(a)
	if err := root.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func newRootCmd(a *app) *cobra.Command {
	root := &cobra.Command{
		Use:           "glossary",
		Short:         "Parse and browse glossary transcripts",
		Long:          "glossary turns a page-delimited plaintext glossary transcript into structured entries.",
		Version:       Version,
		SilenceUsage:  true,
		SilenceErrors: true,
		CompletionOptions: cobra.CompletionOptions{
			DisableDefaultCmd: true,
		},
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return a.setup()
		},
	}

	root.PersistentFlags().StringVar(&a.configPath, "config", "", "path to config file (default ./"+config.FileName+")")
	root.PersistentFlags().BoolVarP(&a.verbose, "verbose", "v", false, "enable debug logging")

	root.AddCommand(parseCmd(a))
	root.AddCommand(listCmd(a))
	root.AddCommand(showCmd(a))
	root.AddCommand(lintCmd(a))
	root.AddCommand(exportCmd(a))
	root.AddCommand(watchCmd(a))
	root.AddCommand(browseCmd(a))
	return root
}

func (a *app) setup() error {
	log.SetFormatter(&log.TextFormatter{
		FullTimestamp: true,
	})
	log.SetOutput(os.Stderr)

	cfg, err := config.Load(a.configPath)
	if err != nil {
		return err
	}
	a.cfg = cfg

	log.SetLevel(cfg.LogLevel())
	if a.verbose {
		log.SetLevel(log.DebugLevel)
	}

	a.catalog, err = catalog.Load(cfg.Catalog.Path)
	if err != nil {
		return err
	}
	return nil
}

// parser returns a parser for t, preferring a title from the transcript's
// own front matter.
func (a *app) parser(t transcript.Transcript) *glossary.Parser {
	title := a.cfg.Parser.Title
	if t.Title != "" {
		title = t.Title
	}
	return &glossary.Parser{Title: title}
}

// load reads the transcript named by args (the sample when args is empty)
// and parses it.
func (a *app) load(args []string) (transcript.Transcript, []glossary.Entry, error) {
	var path string
	if len(args) > 0 {
		path = args[0]
	}
	t, err := transcript.Load(path)
	if err != nil {
		return transcript.Transcript{}, nil, err
	}
	entries := a.parser(t).Parse(t.Body)

	log.WithFields(log.Fields{
		"path":    displayPath(t),
		"entries": len(entries),
	}).Debug("parsed transcript")
	return t, entries, nil
}

func displayPath(t transcript.Transcript) string {
	if t.Path == "" {
		return "(sample)"
	}
	return t.Path
}
