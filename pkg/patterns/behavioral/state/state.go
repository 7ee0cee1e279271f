// Package state demonstrates the State pattern with an order
// lifecycle: processing and cancelling behave differently depending on
// whether the order is new, filled, or cancelled, with no conditionals
// in the order itself.
package state

import (
	"fmt"
	"io"
)

// OrderState encapsulates the behavior of one lifecycle stage.
type OrderState interface {
	Name() string
	Process(o *Order)
	Cancel(o *Order)
}

// Order is the context. It delegates to its current state and lets
// states swap themselves out.
type Order struct {
	state OrderState
	out   io.Writer
}

// NewOrder returns an order in the new state printing to out.
func NewOrder(out io.Writer) *Order {
	return &Order{state: NewState{}, out: out}
}

// State returns the current state's name.
func (o *Order) State() string { return o.state.Name() }

// Process advances the order under its current state's rules.
func (o *Order) Process() { o.state.Process(o) }

// Cancel cancels the order under its current state's rules.
func (o *Order) Cancel() { o.state.Cancel(o) }

func (o *Order) setState(s OrderState) { o.state = s }

// NewState is the initial stage: processing fills the order.
type NewState struct{}

func (NewState) Name() string { return "new" }

func (NewState) Process(o *Order) {
	fmt.Fprintln(o.out, "processing new order")
	o.setState(FilledState{})
}

func (NewState) Cancel(o *Order) {
	fmt.Fprintln(o.out, "cancelling new order")
	o.setState(CancelledState{})
}

// FilledState: the order has executed; it can still be cancelled.
type FilledState struct{}

func (FilledState) Name() string { return "filled" }

func (FilledState) Process(o *Order) {
	fmt.Fprintln(o.out, "order already filled")
}

func (FilledState) Cancel(o *Order) {
	fmt.Fprintln(o.out, "cancelling filled order")
	o.setState(CancelledState{})
}

// CancelledState is terminal: nothing more can happen.
type CancelledState struct{}

func (CancelledState) Name() string { return "cancelled" }

func (CancelledState) Process(o *Order) {
	fmt.Fprintln(o.out, "cannot process a cancelled order")
}

func (CancelledState) Cancel(o *Order) {
	fmt.Fprintln(o.out, "order already cancelled")
}

// Demo drives one order through fill, cancel, and the terminal state.
func Demo(w io.Writer) error {
	order := NewOrder(w)
	order.Process()
	order.Cancel()
	order.Process()
	order.Cancel()
	return nil
}
