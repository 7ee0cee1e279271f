// Package facade demonstrates the Facade pattern: one PlaceTrade call
// hides the market-data, risk, and order-management subsystems a trade
// actually walks through.
package facade

import (
	"fmt"
	"io"
)

// MarketDataService is one of the subsystems behind the facade.
type MarketDataService struct {
	out io.Writer
}

// Snapshot returns the last price and volume for a symbol.
func (s *MarketDataService) Snapshot(symbol string) (price float64, volume int) {
	fmt.Fprintf(s.out, "market data: retrieving snapshot for %s\n", symbol)
	return 100, 1000
}

// RiskManager is the pre-trade risk subsystem.
type RiskManager struct {
	out io.Writer

	// MaxNotional is the largest order value the desk will accept.
	MaxNotional float64
}

// Assess approves the trade when its notional is within the desk limit.
func (r *RiskManager) Assess(symbol string, quantity int, price float64) bool {
	notional := float64(quantity) * price
	fmt.Fprintf(r.out, "risk: assessing %d %s at notional %.2f\n", quantity, symbol, notional)
	return notional <= r.MaxNotional
}

// OrderManager is the execution subsystem.
type OrderManager struct {
	out io.Writer
}

// Place submits the order for execution.
func (o *OrderManager) Place(symbol string, quantity int, side string) {
	fmt.Fprintf(o.out, "orders: placing %s order for %d shares of %s\n", side, quantity, symbol)
}

// TradingFacade exposes the single entry point clients use.
type TradingFacade struct {
	marketData *MarketDataService
	risk       *RiskManager
	orders     *OrderManager
	out        io.Writer
}

// NewTradingFacade wires the subsystems with a shared output and a
// desk notional limit.
func NewTradingFacade(out io.Writer, maxNotional float64) *TradingFacade {
	return &TradingFacade{
		marketData: &MarketDataService{out: out},
		risk:       &RiskManager{out: out, MaxNotional: maxNotional},
		orders:     &OrderManager{out: out},
		out:        out,
	}
}

// PlaceTrade runs the full pre-trade sequence and reports whether the
// order was placed.
func (f *TradingFacade) PlaceTrade(symbol string, quantity int, side string) bool {
	price, _ := f.marketData.Snapshot(symbol)
	if !f.risk.Assess(symbol, quantity, price) {
		fmt.Fprintln(f.out, "trade rejected: notional above desk limit")
		return false
	}
	f.orders.Place(symbol, quantity, side)
	fmt.Fprintln(f.out, "trade placed successfully")
	return true
}

// Demo places one passing trade and one that fails the risk check.
func Demo(w io.Writer) error {
	facade := NewTradingFacade(w, 50_000)
	facade.PlaceTrade("AAPL", 10, "buy")
	facade.PlaceTrade("AAPL", 10_000, "buy")
	return nil
}
