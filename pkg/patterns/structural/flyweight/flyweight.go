// Package flyweight demonstrates the Flyweight pattern: the intrinsic
// state of a trade class (side and symbol) is shared through a factory
// cache, while per-execution state (trade id, timestamp) stays with
// the caller.
package flyweight

import (
	"fmt"
	"io"
	"time"

	"github.com/google/uuid"
)

// TradeSpec is the shared flyweight: every execution of the same side
// and symbol reuses one instance.
type TradeSpec struct {
	Side   string
	Symbol string
}

// Execution is the extrinsic state supplied per call.
type Execution struct {
	TradeID string
	At      time.Time
}

// Execute applies the shared spec to one execution's unique data.
func (s *TradeSpec) Execute(w io.Writer, exec Execution) {
	fmt.Fprintf(w, "executing %s trade for %s\n", s.Side, s.Symbol)
	fmt.Fprintf(w, "  trade %s at %s\n", exec.TradeID, exec.At.Format(time.RFC3339))
}

// SpecFactory caches flyweights by side and symbol.
type SpecFactory struct {
	specs map[string]*TradeSpec
}

// NewSpecFactory returns an empty flyweight cache.
func NewSpecFactory() *SpecFactory {
	return &SpecFactory{specs: make(map[string]*TradeSpec)}
}

// Spec returns the shared TradeSpec for side and symbol, creating it
// on first request.
func (f *SpecFactory) Spec(side, symbol string) *TradeSpec {
	key := side + "|" + symbol
	if spec, ok := f.specs[key]; ok {
		return spec
	}
	spec := &TradeSpec{Side: side, Symbol: symbol}
	f.specs[key] = spec
	return spec
}

// Len returns the number of distinct flyweights created.
func (f *SpecFactory) Len() int { return len(f.specs) }

// NewExecution builds the unique per-trade state with a fresh UUID v7
// trade id.
func NewExecution(at time.Time) Execution {
	return Execution{
		TradeID: uuid.Must(uuid.NewV7()).String(),
		At:      at,
	}
}

// Demo executes three trades through two shared specs and shows the
// sharing explicitly.
func Demo(w io.Writer) error {
	factory := NewSpecFactory()
	start := time.Date(2024, 7, 29, 10, 0, 0, 0, time.UTC)

	first := factory.Spec("buy", "AAPL")
	first.Execute(w, NewExecution(start))

	second := factory.Spec("buy", "AAPL")
	second.Execute(w, NewExecution(start.Add(5*time.Minute)))

	third := factory.Spec("sell", "TSLA")
	third.Execute(w, NewExecution(start.Add(10*time.Minute)))

	fmt.Fprintf(w, "first and second share a spec: %v\n", first == second)
	fmt.Fprintf(w, "first and third share a spec: %v\n", first == third)
	fmt.Fprintf(w, "specs created for 3 trades: %d\n", factory.Len())
	return nil
}
