// List command for the patternbook CLI.
package main

import (
	"encoding/json"
	"fmt"
	"os"
	"strings"

	"github.com/samber/lo"
	"github.com/spf13/cobra"

	"github.com/dukaforge/patternbook/pkg/catalog"
)

var listCmd = &cobra.Command{
	Use:   "list [category]",
	Short: "List catalog patterns, optionally narrowed to one category",
	Long: `List prints the pattern catalog. With a category argument only
patterns of that category are shown.

Valid categories: creational, structural, behavioral

Example:
  patternbook list
  patternbook list behavioral
  patternbook list --json`,
	Args: cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		var entries []catalog.Entry
		if len(args) == 1 {
			category := args[0]
			byCat, err := registry.ByCategory(category)
			if err != nil {
				fmt.Fprintf(os.Stderr, "unknown category %q (valid: %s)\n",
					category, strings.Join(catalog.Categories(), ", "))
				os.Exit(exitUserError)
			}
			entries = byCat
		} else {
			entries = registry.List()
		}

		if flagJSON {
			views := lo.Map(entries, func(e catalog.Entry, _ int) entryView {
				return viewOf(e)
			})
			out, err := json.MarshalIndent(views, "", "  ")
			if err != nil {
				fmt.Fprintln(os.Stderr, "marshal JSON:", err)
				os.Exit(exitSysError)
			}
			fmt.Println(string(out))
			return nil
		}

		table := newTable(os.Stdout, []string{"Name", "Category", "Title"})
		for _, e := range entries {
			table.Append([]string{e.Name, e.Category, e.Title})
		}
		table.Render()
		return nil
	},
}
