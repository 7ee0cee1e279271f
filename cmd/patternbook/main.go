// Package main provides the patternbook CLI, a browsable catalog of
// design pattern demonstrations with a run journal.
package main

import (
	"fmt"
	"os"
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(exitUserError)
	}
}
