// Package strategy demonstrates the Strategy pattern: settlement
// methods are interchangeable behind one Pay call and can be swapped
// at runtime.
package strategy

import (
	"fmt"
	"io"
)

// PaymentStrategy settles an amount by some method.
type PaymentStrategy interface {
	Pay(amount float64)
}

// CardPayment settles with a card.
type CardPayment struct {
	Number string
	out    io.Writer
}

// NewCardPayment returns a card strategy printing to out.
func NewCardPayment(number string, out io.Writer) *CardPayment {
	return &CardPayment{Number: number, out: out}
}

func (p *CardPayment) Pay(amount float64) {
	fmt.Fprintf(p.out, "paying %.2f with card %s\n", amount, p.Number)
}

// WirePayment settles by bank transfer.
type WirePayment struct {
	IBAN string
	out  io.Writer
}

// NewWirePayment returns a wire strategy printing to out.
func NewWirePayment(iban string, out io.Writer) *WirePayment {
	return &WirePayment{IBAN: iban, out: out}
}

func (p *WirePayment) Pay(amount float64) {
	fmt.Fprintf(p.out, "paying %.2f by wire to %s\n", amount, p.IBAN)
}

// Checkout is the context holding the current strategy.
type Checkout struct {
	strategy PaymentStrategy
}

// NewCheckout returns a checkout using the given strategy.
func NewCheckout(strategy PaymentStrategy) *Checkout {
	return &Checkout{strategy: strategy}
}

// SetStrategy swaps the settlement method at runtime.
func (c *Checkout) SetStrategy(strategy PaymentStrategy) {
	c.strategy = strategy
}

// Pay settles the amount with the current strategy.
func (c *Checkout) Pay(amount float64) {
	c.strategy.Pay(amount)
}

// Demo settles one amount per strategy, swapping mid-flight.
func Demo(w io.Writer) error {
	checkout := NewCheckout(NewCardPayment("1234-5678-9876-5432", w))
	checkout.Pay(100)

	checkout.SetStrategy(NewWirePayment("DE89370400440532013000", w))
	checkout.Pay(200)
	return nil
}
