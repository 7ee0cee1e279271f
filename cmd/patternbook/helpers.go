// Shared helpers for patternbook CLI commands.
package main

import (
	"fmt"
	"io"

	"github.com/olekukonko/tablewriter"

	"github.com/dukaforge/patternbook/internal/journal"
	"github.com/dukaforge/patternbook/pkg/catalog"
	"github.com/dukaforge/patternbook/pkg/patterns"
)

// registry holds the built-in pattern catalog.
var registry = patterns.Builtin()

// entryView is the JSON projection of a catalog entry.
type entryView struct {
	Name     string `json:"name"`
	Category string `json:"category"`
	Title    string `json:"title"`
	Summary  string `json:"summary"`
}

func viewOf(e catalog.Entry) entryView {
	return entryView{
		Name:     e.Name,
		Category: e.Category,
		Title:    e.Title,
		Summary:  e.Summary,
	}
}

// openJournal resolves the journal directory and opens the run
// journal inside it. The caller must close the returned store.
func openJournal() (*journal.Store, error) {
	dir, err := resolveJournalDir()
	if err != nil {
		return nil, fmt.Errorf("resolve journal dir: %w", err)
	}

	store, err := journal.Open(dir)
	if err != nil {
		return nil, fmt.Errorf("open journal: %w", err)
	}
	return store, nil
}

// newTable returns a tablewriter configured for compact, borderless
// output shared by the list and history commands.
func newTable(w io.Writer, header []string) *tablewriter.Table {
	table := tablewriter.NewWriter(w)
	table.SetHeader(header)
	table.SetAutoWrapText(false)
	table.SetAutoFormatHeaders(true)
	table.SetHeaderAlignment(tablewriter.ALIGN_LEFT)
	table.SetAlignment(tablewriter.ALIGN_LEFT)
	table.SetCenterSeparator("")
	table.SetColumnSeparator("")
	table.SetRowSeparator("")
	table.SetHeaderLine(false)
	table.SetBorder(false)
	table.SetTablePadding("  ")
	table.SetNoWhiteSpace(true)
	return table
}
