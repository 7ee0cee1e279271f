// Package chain demonstrates the Chain of Responsibility pattern with
// a trade-approval pipeline: each approver signs off within its limit
// or escalates to the next level.
package chain

import (
	"fmt"
	"io"
)

// Approver handles an approval request or passes it up the chain.
type Approver interface {
	// SetNext links the next approver and returns it so chains read
	// left to right.
	SetNext(next Approver) Approver
	Approve(amount float64)
}

// Manager approves amounts up to 1,000.
type Manager struct {
	next Approver
	out  io.Writer
}

// NewManager returns a manager reporting decisions to out.
func NewManager(out io.Writer) *Manager { return &Manager{out: out} }

func (a *Manager) SetNext(next Approver) Approver {
	a.next = next
	return next
}

func (a *Manager) Approve(amount float64) {
	switch {
	case amount <= 1000:
		fmt.Fprintln(a.out, "manager approves the trade")
	case a.next != nil:
		a.next.Approve(amount)
	default:
		fmt.Fprintln(a.out, "trade requires higher approval")
	}
}

// SeniorManager approves amounts up to 5,000.
type SeniorManager struct {
	next Approver
	out  io.Writer
}

// NewSeniorManager returns a senior manager reporting decisions to out.
func NewSeniorManager(out io.Writer) *SeniorManager { return &SeniorManager{out: out} }

func (a *SeniorManager) SetNext(next Approver) Approver {
	a.next = next
	return next
}

func (a *SeniorManager) Approve(amount float64) {
	switch {
	case amount <= 5000:
		fmt.Fprintln(a.out, "senior manager approves the trade")
	case a.next != nil:
		a.next.Approve(amount)
	default:
		fmt.Fprintln(a.out, "trade requires higher approval")
	}
}

// Director approves amounts up to 10,000; anything larger needs the
// board.
type Director struct {
	next Approver
	out  io.Writer
}

// NewDirector returns a director reporting decisions to out.
func NewDirector(out io.Writer) *Director { return &Director{out: out} }

func (a *Director) SetNext(next Approver) Approver {
	a.next = next
	return next
}

func (a *Director) Approve(amount float64) {
	switch {
	case amount <= 10000:
		fmt.Fprintln(a.out, "director approves the trade")
	case a.next != nil:
		a.next.Approve(amount)
	default:
		fmt.Fprintln(a.out, "trade requires board approval")
	}
}

// Demo routes four amounts through the manager → senior manager →
// director chain.
func Demo(w io.Writer) error {
	manager := NewManager(w)
	manager.SetNext(NewSeniorManager(w)).SetNext(NewDirector(w))

	for _, amount := range []float64{500, 2000, 7000, 15000} {
		fmt.Fprintf(w, "processing trade for %.0f: ", amount)
		manager.Approve(amount)
	}
	return nil
}
