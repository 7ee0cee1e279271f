// Package prototype demonstrates the Prototype pattern: new strategies
// are produced by deep-copying an existing one instead of rebuilding
// from scratch, and edits to a clone never reach the source.
package prototype

import (
	"fmt"
	"io"
	"sort"
	"strings"
)

// TradingStrategy is the prototype. Allocation is the only reference
// field, so Clone copies it explicitly.
type TradingStrategy struct {
	RiskLevel  string
	Frequency  string
	Allocation map[string]float64
}

// Clone returns a deep copy of the strategy.
func (s TradingStrategy) Clone() TradingStrategy {
	allocation := make(map[string]float64, len(s.Allocation))
	for k, v := range s.Allocation {
		allocation[k] = v
	}
	return TradingStrategy{
		RiskLevel:  s.RiskLevel,
		Frequency:  s.Frequency,
		Allocation: allocation,
	}
}

// String renders the strategy with allocation keys sorted.
func (s TradingStrategy) String() string {
	keys := make([]string, 0, len(s.Allocation))
	for k := range s.Allocation {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	parts := make([]string, 0, len(keys))
	for _, k := range keys {
		parts = append(parts, fmt.Sprintf("%s=%.2f", k, s.Allocation[k]))
	}
	return fmt.Sprintf("TradingStrategy(risk=%s, frequency=%s, allocation={%s})",
		s.RiskLevel, s.Frequency, strings.Join(parts, ", "))
}

// Demo clones a strategy, customizes the clone, and shows the original
// untouched.
func Demo(w io.Writer) error {
	original := TradingStrategy{
		RiskLevel:  "medium",
		Frequency:  "weekly",
		Allocation: map[string]float64{"stocks": 0.5, "bonds": 0.5},
	}
	fmt.Fprintf(w, "original: %s\n", original)

	clone := original.Clone()
	clone.Allocation["real estate"] = 0.1
	fmt.Fprintf(w, "modified clone: %s\n", clone)
	fmt.Fprintf(w, "original after clone edit: %s\n", original)
	return nil
}
