// Package builder demonstrates the Builder pattern: a trading strategy
// is assembled step by step, and a director encodes the recipes for
// named presets.
package builder

import (
	"fmt"
	"io"
	"sort"
	"strings"
)

// TradingStrategy is the product under construction.
type TradingStrategy struct {
	RiskLevel  string
	Frequency  string
	Allocation map[string]float64
}

// String renders the strategy with allocation keys sorted so output is
// stable across runs.
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

// StrategyBuilder assembles a TradingStrategy part by part.
type StrategyBuilder interface {
	SetRiskLevel(level string)
	SetFrequency(frequency string)
	SetAllocation(allocation map[string]float64)
	// Result returns the assembled strategy and resets the builder.
	Result() TradingStrategy
}

// Builder is the concrete StrategyBuilder.
type Builder struct {
	strategy TradingStrategy
}

// NewBuilder returns a builder holding an empty strategy.
func NewBuilder() *Builder {
	b := &Builder{}
	b.reset()
	return b
}

func (b *Builder) reset() { b.strategy = TradingStrategy{} }

func (b *Builder) SetRiskLevel(level string) { b.strategy.RiskLevel = level }

func (b *Builder) SetFrequency(frequency string) { b.strategy.Frequency = frequency }

func (b *Builder) SetAllocation(allocation map[string]float64) {
	b.strategy.Allocation = allocation
}

func (b *Builder) Result() TradingStrategy {
	strategy := b.strategy
	b.reset()
	return strategy
}

// Director knows the assembly order for named strategy presets.
type Director struct {
	builder StrategyBuilder
}

// NewDirector returns a director driving the given builder.
func NewDirector(builder StrategyBuilder) *Director {
	return &Director{builder: builder}
}

// ConstructBasic assembles a low-risk daily strategy.
func (d *Director) ConstructBasic() TradingStrategy {
	d.builder.SetRiskLevel("low")
	d.builder.SetFrequency("daily")
	d.builder.SetAllocation(map[string]float64{"stocks": 0.6, "bonds": 0.4})
	return d.builder.Result()
}

// ConstructAggressive assembles a high-risk hourly strategy.
func (d *Director) ConstructAggressive() TradingStrategy {
	d.builder.SetRiskLevel("high")
	d.builder.SetFrequency("hourly")
	d.builder.SetAllocation(map[string]float64{"stocks": 0.8, "bonds": 0.1, "commodities": 0.1})
	return d.builder.Result()
}

// Demo builds both presets through one director and builder.
func Demo(w io.Writer) error {
	director := NewDirector(NewBuilder())

	fmt.Fprintf(w, "basic strategy: %s\n", director.ConstructBasic())
	fmt.Fprintf(w, "aggressive strategy: %s\n", director.ConstructAggressive())
	return nil
}
