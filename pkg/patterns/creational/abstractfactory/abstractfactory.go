// Package abstractfactory demonstrates the Abstract Factory pattern:
// one factory produces a matched family of products (a derivative and
// the market feed it is priced from) so the two never mix across
// families.
package abstractfactory

import (
	"fmt"
	"io"
)

// Quote is the market level a feed returns.
type Quote struct {
	Price float64
}

// Derivative is one half of the product family.
type Derivative interface {
	Price(q Quote) float64
}

// Feed is the other half: it produces the quote its sibling derivative
// expects to be priced from.
type Feed interface {
	Fetch() Quote
}

// Option prices as quoted spot minus strike.
type Option struct {
	Strike float64
	Expiry string
}

func (o Option) Price(q Quote) float64 { return q.Price - o.Strike }

// Future prices at the quoted future level.
type Future struct {
	Expiry string
}

func (f Future) Price(q Quote) float64 { return q.Price }

// OptionFeed quotes the spot market options price off.
type OptionFeed struct{}

func (OptionFeed) Fetch() Quote { return Quote{Price: 100} }

// FutureFeed quotes the futures curve.
type FutureFeed struct{}

func (FutureFeed) Fetch() Quote { return Quote{Price: 105} }

// InstrumentFactory creates a compatible derivative/feed pair.
type InstrumentFactory interface {
	NewDerivative() Derivative
	NewFeed() Feed
}

// OptionFactory produces the option family.
type OptionFactory struct {
	Strike float64
	Expiry string
}

func (f OptionFactory) NewDerivative() Derivative {
	return Option{Strike: f.Strike, Expiry: f.Expiry}
}

func (f OptionFactory) NewFeed() Feed { return OptionFeed{} }

// FutureFactory produces the future family.
type FutureFactory struct {
	Expiry string
}

func (f FutureFactory) NewDerivative() Derivative { return Future{Expiry: f.Expiry} }

func (f FutureFactory) NewFeed() Feed { return FutureFeed{} }

// PriceInstrument builds a matched derivative and feed from one factory
// and prices the derivative off its own feed.
func PriceInstrument(factory InstrumentFactory) float64 {
	derivative := factory.NewDerivative()
	quote := factory.NewFeed().Fetch()
	return derivative.Price(quote)
}

// Demo prices one instrument from each family.
func Demo(w io.Writer) error {
	optionPrice := PriceInstrument(OptionFactory{Strike: 90, Expiry: "2024-12-31"})
	fmt.Fprintf(w, "option price: %.2f\n", optionPrice)

	futurePrice := PriceInstrument(FutureFactory{Expiry: "2024-12-31"})
	fmt.Fprintf(w, "future price: %.2f\n", futurePrice)
	return nil
}
