// Package factorymethod demonstrates the Factory Method pattern with a
// derivatives desk: callers ask a factory for a Derivative and never
// name the concrete product type.
package factorymethod

import (
	"fmt"
	"io"
)

// Market is the snapshot a derivative is priced against.
type Market struct {
	SpotPrice   float64
	FuturePrice float64
}

// Derivative is the product interface all factories return.
type Derivative interface {
	// Price returns the instrument value under the given market.
	Price(m Market) float64
	// Describe returns a short label for console output.
	Describe() string
}

// Option is a call option priced as spot minus strike.
type Option struct {
	Strike float64
	Expiry string
}

func (o Option) Price(m Market) float64 { return m.SpotPrice - o.Strike }

func (o Option) Describe() string {
	return fmt.Sprintf("option (strike %.0f, expiry %s)", o.Strike, o.Expiry)
}

// Future is a futures contract priced at the quoted future level.
type Future struct {
	Expiry string
}

func (f Future) Price(m Market) float64 { return m.FuturePrice }

func (f Future) Describe() string {
	return fmt.Sprintf("future (expiry %s)", f.Expiry)
}

// Factory declares the factory method. Concrete factories decide which
// derivative to build.
type Factory interface {
	NewDerivative() Derivative
}

// OptionFactory builds options with a fixed strike and expiry.
type OptionFactory struct {
	Strike float64
	Expiry string
}

func (f OptionFactory) NewDerivative() Derivative {
	return Option{Strike: f.Strike, Expiry: f.Expiry}
}

// FutureFactory builds futures with a fixed expiry.
type FutureFactory struct {
	Expiry string
}

func (f FutureFactory) NewDerivative() Derivative {
	return Future{Expiry: f.Expiry}
}

// Demo prices one product from each factory through the shared
// Derivative interface.
func Demo(w io.Writer) error {
	market := Market{SpotPrice: 100, FuturePrice: 105}

	factories := []Factory{
		OptionFactory{Strike: 90, Expiry: "2024-12-31"},
		FutureFactory{Expiry: "2024-12-31"},
	}
	for _, factory := range factories {
		d := factory.NewDerivative()
		fmt.Fprintf(w, "%s priced at %.2f\n", d.Describe(), d.Price(market))
	}
	return nil
}
