// Package decorator demonstrates the Decorator pattern: pricing
// concerns (risk haircut, commission, tracing) stack around an
// instrument without the instrument knowing about any of them.
package decorator

import (
	"fmt"
	"io"
)

// Market maps tickers to last prices.
type Market map[string]float64

// Instrument is the component interface decorators wrap.
type Instrument interface {
	Price(m Market) float64
	Describe() string
}

// Stock prices at the ticker's market level.
type Stock struct {
	Ticker string
}

func (s Stock) Price(m Market) float64 { return m[s.Ticker] }

func (s Stock) Describe() string { return "stock " + s.Ticker }

// Bond prices at face value plus one coupon.
type Bond struct {
	FaceValue float64
	Rate      float64
}

func (b Bond) Price(m Market) float64 { return b.FaceValue * (1 + b.Rate) }

func (b Bond) Describe() string {
	return fmt.Sprintf("bond (face %.0f, rate %.1f%%)", b.FaceValue, b.Rate*100)
}

// RiskHaircut reduces the wrapped price by a risk factor.
type RiskHaircut struct {
	Instrument
	Factor float64
}

func (d RiskHaircut) Price(m Market) float64 {
	return d.Instrument.Price(m) * (1 - d.Factor)
}

func (d RiskHaircut) Describe() string {
	return fmt.Sprintf("%s with %.0f%% risk haircut", d.Instrument.Describe(), d.Factor*100)
}

// Commission adds a proportional fee on top of the wrapped price.
type Commission struct {
	Instrument
	Rate float64
}

func (d Commission) Price(m Market) float64 {
	price := d.Instrument.Price(m)
	return price + price*d.Rate
}

func (d Commission) Describe() string {
	return fmt.Sprintf("%s with %.0f%% commission", d.Instrument.Describe(), d.Rate*100)
}

// Trace reports every pricing call on the wrapped instrument.
type Trace struct {
	Instrument
	Out io.Writer
}

func (d Trace) Price(m Market) float64 {
	price := d.Instrument.Price(m)
	fmt.Fprintf(d.Out, "trace: priced %s at %.2f\n", d.Instrument.Describe(), price)
	return price
}

// Demo stacks decorators around a stock and shows the wrapped
// instrument is untouched.
func Demo(w io.Writer) error {
	market := Market{"AAPL": 150.0, "TSLA": 650.0}

	apple := Stock{Ticker: "AAPL"}
	fmt.Fprintf(w, "%s priced at %.2f\n", apple.Describe(), apple.Price(market))

	traced := Trace{Instrument: apple, Out: w}
	haircut := RiskHaircut{Instrument: traced, Factor: 0.05}
	charged := Commission{Instrument: haircut, Rate: 0.02}
	fmt.Fprintf(w, "%s priced at %.2f\n", charged.Describe(), charged.Price(market))

	// The wrapped stock still prices as before.
	fmt.Fprintf(w, "undecorated %s still priced at %.2f\n", apple.Describe(), apple.Price(market))
	return nil
}
