// Package bridge demonstrates the Bridge pattern: the order-side
// abstraction (buy, sell) varies independently of the venue it
// executes on (stock desk, bond desk).
package bridge

import (
	"fmt"
	"io"
)

// Venue is the implementor side of the bridge.
type Venue interface {
	Execute(side string)
}

// StockDesk executes against the equity market.
type StockDesk struct {
	out io.Writer
}

// NewStockDesk returns a stock venue printing fills to out.
func NewStockDesk(out io.Writer) *StockDesk {
	return &StockDesk{out: out}
}

func (d *StockDesk) Execute(side string) {
	fmt.Fprintf(d.out, "executing %s trade for stocks\n", side)
}

// BondDesk executes against the fixed-income market.
type BondDesk struct {
	out io.Writer
}

// NewBondDesk returns a bond venue printing fills to out.
func NewBondDesk(out io.Writer) *BondDesk {
	return &BondDesk{out: out}
}

func (d *BondDesk) Execute(side string) {
	fmt.Fprintf(d.out, "executing %s trade for bonds\n", side)
}

// Order is the abstraction side of the bridge.
type Order interface {
	Place()
}

// BuyOrder places a buy on whatever venue it bridges to.
type BuyOrder struct {
	venue Venue
}

// NewBuyOrder returns a buy order bound to venue.
func NewBuyOrder(venue Venue) BuyOrder { return BuyOrder{venue: venue} }

func (o BuyOrder) Place() { o.venue.Execute("buy") }

// SellOrder places a sell on whatever venue it bridges to.
type SellOrder struct {
	venue Venue
}

// NewSellOrder returns a sell order bound to venue.
func NewSellOrder(venue Venue) SellOrder { return SellOrder{venue: venue} }

func (o SellOrder) Place() { o.venue.Execute("sell") }

// Demo places every side on every venue through the bridge.
func Demo(w io.Writer) error {
	stocks := NewStockDesk(w)
	bonds := NewBondDesk(w)

	orders := []Order{
		NewBuyOrder(stocks),
		NewSellOrder(stocks),
		NewBuyOrder(bonds),
		NewSellOrder(bonds),
	}
	for _, order := range orders {
		order.Place()
	}
	return nil
}
