// History command for the patternbook CLI.
package main

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/dukaforge/patternbook/internal/journal"
)

var flagHistoryLimit int

var historyCmd = &cobra.Command{
	Use:   "history [pattern]",
	Short: "Show recorded demo runs, newest first",
	Long: `History lists recorded demo runs, newest first. With a pattern
argument only that pattern's runs are shown.

Example:
  patternbook history
  patternbook history observer
  patternbook history --limit 5 --json`,
	Args: cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		var pattern string
		if len(args) == 1 {
			pattern = args[0]
		}

		store, err := openJournal()
		if err != nil {
			fmt.Fprintln(os.Stderr, "history:", err)
			os.Exit(exitSysError)
		}
		defer store.Close()

		runs, err := store.List(journal.Filter{
			Pattern: pattern,
			Limit:   flagHistoryLimit,
		})
		if err != nil {
			fmt.Fprintln(os.Stderr, "history:", err)
			os.Exit(exitSysError)
		}

		if flagJSON {
			out, err := json.MarshalIndent(runs, "", "  ")
			if err != nil {
				fmt.Fprintln(os.Stderr, "marshal JSON:", err)
				os.Exit(exitSysError)
			}
			fmt.Println(string(out))
			return nil
		}

		table := newTable(os.Stdout, []string{"Run ID", "Pattern", "Category", "Created"})
		for _, r := range runs {
			table.Append([]string{
				r.RunID,
				r.Pattern,
				r.Category,
				r.CreatedAt.Format("2006-01-02 15:04:05"),
			})
		}
		table.Render()
		return nil
	},
}

func init() {
	historyCmd.Flags().IntVar(&flagHistoryLimit, "limit", 20, "maximum number of runs to show (0 for all)")
}
