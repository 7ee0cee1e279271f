// Export command for the patternbook CLI.
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var flagExportOutput string

var exportCmd = &cobra.Command{
	Use:   "export",
	Short: "Export the run journal as JSONL",
	Long: `Export writes all recorded runs as JSONL, one run per line, newest
first. Output goes to stdout unless --output names a file, in which
case the file is written atomically.`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		store, err := openJournal()
		if err != nil {
			fmt.Fprintln(os.Stderr, "export:", err)
			os.Exit(exitSysError)
		}
		defer store.Close()

		if flagExportOutput == "" {
			if err := store.ExportJSONL(os.Stdout); err != nil {
				fmt.Fprintln(os.Stderr, "export:", err)
				os.Exit(exitSysError)
			}
			return nil
		}

		if err := store.ExportJSONLFile(flagExportOutput); err != nil {
			fmt.Fprintln(os.Stderr, "export:", err)
			os.Exit(exitSysError)
		}
		fmt.Println("journal exported to", flagExportOutput)
		return nil
	},
}

func init() {
	exportCmd.Flags().StringVarP(&flagExportOutput, "output", "o", "", "write the export to this file instead of stdout")
}
