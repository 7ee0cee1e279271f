// Package mediator demonstrates the Mediator pattern with a dealing
// desk: traders broadcast quotes through the desk and never hold
// references to each other.
package mediator

import (
	"fmt"
	"io"
)

// Desk relays a message from one trader to every other trader.
type Desk interface {
	Broadcast(message string, from *Trader)
}

// DealingDesk is the concrete mediator.
type DealingDesk struct {
	traders []*Trader
}

// NewDealingDesk returns an empty desk.
func NewDealingDesk() *DealingDesk {
	return &DealingDesk{}
}

// Admit registers a trader with the desk and points the trader back at
// it.
func (d *DealingDesk) Admit(t *Trader) {
	d.traders = append(d.traders, t)
	t.desk = d
}

// Broadcast delivers the message to every trader except the sender.
func (d *DealingDesk) Broadcast(message string, from *Trader) {
	for _, t := range d.traders {
		if t != from {
			t.Receive(message)
		}
	}
}

// Trader is a colleague: it only knows the desk.
type Trader struct {
	name string
	desk Desk
	out  io.Writer
}

// NewTrader returns a named trader printing traffic to out. The trader
// cannot send until a desk admits it.
func NewTrader(name string, out io.Writer) *Trader {
	return &Trader{name: name, out: out}
}

// Send announces a quote to the rest of the desk.
func (t *Trader) Send(message string) {
	fmt.Fprintf(t.out, "%s sends: %s\n", t.name, message)
	if t.desk != nil {
		t.desk.Broadcast(message, t)
	}
}

// Receive handles a quote relayed by the desk.
func (t *Trader) Receive(message string) {
	fmt.Fprintf(t.out, "%s receives: %s\n", t.name, message)
}

// Demo runs three traders through one desk.
func Demo(w io.Writer) error {
	desk := NewDealingDesk()

	alice := NewTrader("alice", w)
	bob := NewTrader("bob", w)
	carol := NewTrader("carol", w)
	desk.Admit(alice)
	desk.Admit(bob)
	desk.Admit(carol)

	alice.Send("bid 101.5 for 10y gilts")
	bob.Send("offer 101.7")
	return nil
}
