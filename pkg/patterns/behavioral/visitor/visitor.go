// Package visitor demonstrates the Visitor pattern: tax calculation
// and report writing are added over stocks and bonds without touching
// the instrument types.
package visitor

import (
	"fmt"
	"io"
)

// Visitor declares one visit method per element type.
type Visitor interface {
	VisitStock(s Stock)
	VisitBond(b Bond)
}

// Instrument is the element interface: it dispatches a visitor to the
// right visit method.
type Instrument interface {
	Accept(v Visitor)
}

// Stock is one concrete element.
type Stock struct {
	Symbol string
	Price  float64
}

func (s Stock) Accept(v Visitor) { v.VisitStock(s) }

// Bond is the other concrete element.
type Bond struct {
	Issuer    string
	FaceValue float64
}

func (b Bond) Accept(v Visitor) { v.VisitBond(b) }

// Tax rates per instrument class.
const (
	stockTaxRate = 0.15
	bondTaxRate  = 0.10
)

// TaxCalculator computes per-instrument tax.
type TaxCalculator struct {
	out io.Writer
}

// NewTaxCalculator returns a tax visitor printing to out.
func NewTaxCalculator(out io.Writer) *TaxCalculator {
	return &TaxCalculator{out: out}
}

// StockTax returns the tax due on a stock position.
func (t *TaxCalculator) StockTax(s Stock) float64 { return s.Price * stockTaxRate }

// BondTax returns the tax due on a bond position.
func (t *TaxCalculator) BondTax(b Bond) float64 { return b.FaceValue * bondTaxRate }

func (t *TaxCalculator) VisitStock(s Stock) {
	fmt.Fprintf(t.out, "tax for stock %s: %.2f\n", s.Symbol, t.StockTax(s))
}

func (t *TaxCalculator) VisitBond(b Bond) {
	fmt.Fprintf(t.out, "tax for bond %s: %.2f\n", b.Issuer, t.BondTax(b))
}

// ReportWriter renders a one-line report per instrument.
type ReportWriter struct {
	out io.Writer
}

// NewReportWriter returns a reporting visitor printing to out.
func NewReportWriter(out io.Writer) *ReportWriter {
	return &ReportWriter{out: out}
}

func (r *ReportWriter) VisitStock(s Stock) {
	fmt.Fprintf(r.out, "report: stock %s priced at %.2f\n", s.Symbol, s.Price)
}

func (r *ReportWriter) VisitBond(b Bond) {
	fmt.Fprintf(r.out, "report: bond %s with face value %.2f\n", b.Issuer, b.FaceValue)
}

// Demo runs both visitors over a stock and a bond.
func Demo(w io.Writer) error {
	instruments := []Instrument{
		Stock{Symbol: "AAPL", Price: 150},
		Bond{Issuer: "US Treasury", FaceValue: 1000},
	}

	taxes := NewTaxCalculator(w)
	reports := NewReportWriter(w)
	for _, instrument := range instruments {
		instrument.Accept(taxes)
	}
	for _, instrument := range instruments {
		instrument.Accept(reports)
	}
	return nil
}
