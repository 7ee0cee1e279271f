// Run command for the patternbook CLI.
package main

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"

	"github.com/dukaforge/patternbook/internal/journal"
	"github.com/dukaforge/patternbook/pkg/catalog"
)

var (
	flagRunAll       bool
	flagRunNoJournal bool
)

var runCmd = &cobra.Command{
	Use:   "run [pattern...]",
	Short: "Execute pattern demos and record them in the journal",
	Long: `Run executes one or more pattern demos, streaming their output to
stdout. Each run is recorded in the journal unless recording is
disabled by --no-journal or the journal config key.

Example:
  patternbook run observer
  patternbook run strategy state memento
  patternbook run --all`,
	RunE: func(cmd *cobra.Command, args []string) error {
		if len(args) == 0 && !flagRunAll {
			return errors.New("specify at least one pattern or --all")
		}
		if len(args) > 0 && flagRunAll {
			return errors.New("--all cannot be combined with pattern names")
		}

		var entries []catalog.Entry
		if flagRunAll {
			entries = registry.List()
		} else {
			for _, name := range args {
				entry, err := registry.Get(name)
				if err != nil {
					fmt.Fprintf(os.Stderr, "pattern %q not found (try: patternbook list)\n", name)
					os.Exit(exitUserError)
				}
				entries = append(entries, entry)
			}
		}

		var store *journal.Store
		if configJournalEnabled && !flagRunNoJournal {
			var err error
			store, err = openJournal()
			if err != nil {
				fmt.Fprintln(os.Stderr, "run:", err)
				os.Exit(exitSysError)
			}
			defer store.Close()
		}

		for i, entry := range entries {
			if i > 0 {
				fmt.Println()
			}
			fmt.Printf("== %s (%s)\n", entry.Name, entry.Category)

			var buf bytes.Buffer
			if err := entry.Demo(io.MultiWriter(os.Stdout, &buf)); err != nil {
				fmt.Fprintf(os.Stderr, "run %s: %v\n", entry.Name, err)
				os.Exit(exitSysError)
			}

			if store == nil {
				continue
			}
			run, err := store.Append(journal.Run{
				Pattern:  entry.Name,
				Category: entry.Category,
				Output:   buf.String(),
			})
			if err != nil {
				fmt.Fprintf(os.Stderr, "record %s: %v\n", entry.Name, err)
				os.Exit(exitSysError)
			}
			log.Debug().
				Str("run_id", run.RunID).
				Str("pattern", run.Pattern).
				Msg("run recorded")
		}
		return nil
	},
}

func init() {
	runCmd.Flags().BoolVar(&flagRunAll, "all", false, "run every pattern in the catalog")
	runCmd.Flags().BoolVar(&flagRunNoJournal, "no-journal", false, "do not record this run")
}
