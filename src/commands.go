package main

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/pkg/errors"
	log "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"glossary-reader/glossary"
	"glossary-reader/store"
	"glossary-reader/transcript"
)

const fileArgHelp = "Reads the bundled sample when no file is given; \"-\" reads stdin."

func parseCmd(a *app) *cobra.Command {
	var compact bool
	cmd := &cobra.Command{
		Use:   "parse [file]",
		Short: "Print parsed entries as JSON",
		Long:  "Parse a transcript and print its entries as a JSON array. " + fileArgHelp,
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			_, entries, err := a.load(args)
			if err != nil {
				return err
			}
			enc := json.NewEncoder(cmd.OutOrStdout())
			if !compact {
				enc.SetIndent("", "  ")
			}
			return enc.Encode(entries)
		},
	}
	cmd.Flags().BoolVar(&compact, "compact", false, "print JSON on a single line")
	return cmd
}

func listCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "list [file]",
		Short: "List the terms of a transcript",
		Long:  "List term headings in source order. " + fileArgHelp,
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			_, entries, err := a.load(args)
			if err != nil {
				return err
			}
			out := cmd.OutOrStdout()
			for i, e := range entries {
				fmt.Fprintf(out, "%4d. %s\n", i+1, e.Term)
			}
			return nil
		},
	}
}

func showCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "show <term> [file]",
		Short: "Show one entry with its related documents",
		Long:  "Show the definition, cross references and related documents of a term. " + fileArgHelp,
		Args:  cobra.RangeArgs(1, 2),
		RunE: func(cmd *cobra.Command, args []string) error {
			_, entries, err := a.load(args[1:])
			if err != nil {
				return err
			}
			e, ok := glossary.NewIndex(entries).Resolve(args[0])
			if !ok {
				return errors.Errorf("no entry for %q", args[0])
			}
			fmt.Fprintln(cmd.OutOrStdout(), renderEntry(e, a.catalog.Related(e.Term), 80))
			return nil
		},
	}
}

func lintCmd(a *app) *cobra.Command {
	var asJSON bool
	cmd := &cobra.Command{
		Use:   "lint [file]",
		Short: "Report empty, duplicate and dangling entries",
		Long:  "Check parsed entries for empty definitions, duplicate terms and see-also references that match no term. Exits non-zero when issues are found. " + fileArgHelp,
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			t, entries, err := a.load(args)
			if err != nil {
				return err
			}
			issues := glossary.Lint(entries)

			out := cmd.OutOrStdout()
			if asJSON {
				if issues == nil {
					issues = []glossary.Issue{}
				}
				if err := json.NewEncoder(out).Encode(issues); err != nil {
					return err
				}
			} else {
				for _, i := range issues {
					fmt.Fprintln(out, i)
				}
			}

			if len(issues) > 0 {
				return errors.Errorf("%s: %d issue(s) in %d entries", displayPath(t), len(issues), len(entries))
			}
			fmt.Fprintf(cmd.ErrOrStderr(), "%s: %d entries, no issues\n", displayPath(t), len(entries))
			return nil
		},
	}
	cmd.Flags().BoolVar(&asJSON, "json", false, "print issues as JSON")
	return cmd
}

func exportCmd(a *app) *cobra.Command {
	var dbPath string
	cmd := &cobra.Command{
		Use:   "export [file]",
		Short: "Write parsed entries to a SQLite database",
		Long:  "Parse a transcript and write its entries to a fresh SQLite database, replacing any existing file. " + fileArgHelp,
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			t, entries, err := a.load(args)
			if err != nil {
				return err
			}
			if dbPath == "" {
				dbPath = a.cfg.Store.Path
			}

			db, err := store.Create(dbPath)
			if err != nil {
				return err
			}
			defer db.Close()

			if err := db.Save(entries); err != nil {
				return err
			}

			log.WithFields(log.Fields{
				"source":  displayPath(t),
				"db":      dbPath,
				"entries": len(entries),
			}).Info("exported glossary")
			return nil
		},
	}
	cmd.Flags().StringVar(&dbPath, "db", "", "output database (default from config)")
	return cmd
}

func watchCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "watch <file>",
		Short: "Re-parse a transcript whenever it changes",
		Long:  "Watch a transcript file and report entry and issue counts after every change. Stop with Ctrl+C.",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
			defer stop()

			report := func(t transcript.Transcript) {
				entries := a.parser(t).Parse(t.Body)
				log.WithFields(log.Fields{
					"path":    displayPath(t),
					"entries": len(entries),
					"issues":  len(glossary.Lint(entries)),
				}).Info("parsed transcript")
			}

			t, err := transcript.Load(args[0])
			if err != nil {
				return err
			}
			report(t)
			return transcript.Watch(ctx, args[0], report)
		},
	}
}
