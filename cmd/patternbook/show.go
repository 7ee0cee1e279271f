// Show command for the patternbook CLI.
package main

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/dukaforge/patternbook/pkg/catalog"
)

var showCmd = &cobra.Command{
	Use:   "show <pattern>",
	Short: "Display a pattern with full details",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		name := args[0]

		entry, err := registry.Get(name)
		if err != nil {
			if errors.Is(err, catalog.ErrPatternNotFound) {
				fmt.Fprintf(os.Stderr, "pattern %q not found (try: patternbook list)\n", name)
				os.Exit(exitUserError)
			}
			fmt.Fprintln(os.Stderr, "show:", err)
			os.Exit(exitSysError)
		}

		if flagJSON {
			out, err := json.MarshalIndent(viewOf(entry), "", "  ")
			if err != nil {
				fmt.Fprintln(os.Stderr, "marshal JSON:", err)
				os.Exit(exitSysError)
			}
			fmt.Println(string(out))
			return nil
		}

		fmt.Printf("Name:      %s\n", entry.Name)
		fmt.Printf("Title:     %s\n", entry.Title)
		fmt.Printf("Category:  %s\n", entry.Category)
		fmt.Printf("Summary:   %s\n", entry.Summary)
		return nil
	},
}
