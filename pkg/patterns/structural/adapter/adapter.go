// Package adapter demonstrates the Adapter pattern: a vendor trading
// API with an incompatible surface is wrapped so the rest of the
// system can keep talking to its own TradeExecutor interface.
package adapter

import (
	"fmt"
	"io"
)

// TradeExecutor is the interface the in-house system expects.
type TradeExecutor interface {
	ExecuteTrade(symbol string, quantity int, side string)
}

// VendorAPI is the third-party client. Its vocabulary (instrument,
// amount, order type) does not line up with TradeExecutor.
type VendorAPI struct {
	out io.Writer
}

// NewVendorAPI returns a vendor client printing confirmations to out.
func NewVendorAPI(out io.Writer) *VendorAPI {
	return &VendorAPI{out: out}
}

// PlaceOrder submits an order in the vendor's terms.
func (v *VendorAPI) PlaceOrder(instrument string, amount int, orderType string) {
	fmt.Fprintf(v.out, "vendor: placing %s order for %d %s\n", orderType, amount, instrument)
}

// Adapter translates TradeExecutor calls onto the vendor API.
type Adapter struct {
	vendor *VendorAPI
}

// NewAdapter wraps the given vendor client.
func NewAdapter(vendor *VendorAPI) *Adapter {
	return &Adapter{vendor: vendor}
}

func (a *Adapter) ExecuteTrade(symbol string, quantity int, side string) {
	a.vendor.PlaceOrder(symbol, quantity, side)
}

// Demo drives the vendor API through the in-house interface.
func Demo(w io.Writer) error {
	var executor TradeExecutor = NewAdapter(NewVendorAPI(w))
	executor.ExecuteTrade("AAPL", 100, "buy")
	executor.ExecuteTrade("TSLA", 25, "sell")
	return nil
}
