// Package composite demonstrates the Composite pattern: individual
// holdings and nested portfolios expose the same Value method, so a
// portfolio of portfolios is valued the same way as a single stock.
package composite

import (
	"fmt"
	"io"
)

// Holding is the component interface shared by leaves and composites.
type Holding interface {
	Value() float64
}

// Stock is a leaf holding.
type Stock struct {
	Name  string
	Price float64
}

func (s Stock) Value() float64 { return s.Price }

// Bond is a leaf holding.
type Bond struct {
	Name  string
	Price float64
}

func (b Bond) Value() float64 { return b.Price }

// Portfolio is the composite: it holds other holdings, including
// nested portfolios.
type Portfolio struct {
	Name     string
	holdings []Holding
}

// NewPortfolio returns an empty named portfolio.
func NewPortfolio(name string) *Portfolio {
	return &Portfolio{Name: name}
}

// Add appends a holding to the portfolio.
func (p *Portfolio) Add(h Holding) {
	p.holdings = append(p.holdings, h)
}

// Remove drops the first holding equal to h, if present.
func (p *Portfolio) Remove(h Holding) {
	for i, held := range p.holdings {
		if held == h {
			p.holdings = append(p.holdings[:i], p.holdings[i+1:]...)
			return
		}
	}
}

// Value sums the values of all nested holdings.
func (p *Portfolio) Value() float64 {
	var total float64
	for _, h := range p.holdings {
		total += h.Value()
	}
	return total
}

// Demo values a portfolio that nests another portfolio next to a
// single bond.
func Demo(w io.Writer) error {
	tech := NewPortfolio("tech")
	tech.Add(Stock{Name: "AAPL", Price: 150})
	tech.Add(Stock{Name: "GOOGL", Price: 200})

	main := NewPortfolio("main")
	main.Add(tech)
	main.Add(Bond{Name: "US Treasury", Price: 100})

	fmt.Fprintf(w, "tech portfolio value: %.2f\n", tech.Value())
	fmt.Fprintf(w, "main portfolio value: %.2f\n", main.Value())
	return nil
}
