// Package command demonstrates the Command pattern: buy and sell
// requests are reified as objects a broker can queue and execute
// without knowing what they do.
package command

import (
	"fmt"
	"io"
)

// Command is a self-contained, executable request.
type Command interface {
	Execute()
}

// Trader is the receiver performing the actual operations.
type Trader struct {
	out io.Writer
}

// NewTrader returns a trader reporting fills to out.
func NewTrader(out io.Writer) *Trader { return &Trader{out: out} }

// Buy purchases the given number of units.
func (t *Trader) Buy(units int) {
	fmt.Fprintf(t.out, "buying %d units\n", units)
}

// Sell disposes of the given number of units.
func (t *Trader) Sell(units int) {
	fmt.Fprintf(t.out, "selling %d units\n", units)
}

// BuyOrder binds a buy to a trader and an amount.
type BuyOrder struct {
	Trader *Trader
	Units  int
}

func (c BuyOrder) Execute() { c.Trader.Buy(c.Units) }

// SellOrder binds a sell to a trader and an amount.
type SellOrder struct {
	Trader *Trader
	Units  int
}

func (c SellOrder) Execute() { c.Trader.Sell(c.Units) }

// Broker is the invoker: it queues commands and executes them in
// order.
type Broker struct {
	queue []Command
}

// Add appends a command to the queue.
func (b *Broker) Add(c Command) {
	b.queue = append(b.queue, c)
}

// Pending returns the number of queued commands.
func (b *Broker) Pending() int { return len(b.queue) }

// ExecuteAll runs every queued command in order and clears the queue.
func (b *Broker) ExecuteAll() {
	for _, c := range b.queue {
		c.Execute()
	}
	b.queue = nil
}

// Demo queues a buy and a sell, then lets the broker drain them.
func Demo(w io.Writer) error {
	trader := NewTrader(w)

	broker := &Broker{}
	broker.Add(BuyOrder{Trader: trader, Units: 100})
	broker.Add(SellOrder{Trader: trader, Units: 50})

	fmt.Fprintf(w, "queued commands: %d\n", broker.Pending())
	broker.ExecuteAll()
	fmt.Fprintf(w, "queued commands after execution: %d\n", broker.Pending())
	return nil
}
