// Package memento demonstrates the Memento pattern: an account
// snapshots its balance into opaque mementos a caretaker can restore,
// giving transaction rollback without exposing account internals.
package memento

import (
	"errors"
	"fmt"
	"io"
)

// Account errors.
var (
	ErrInsufficientFunds = errors.New("insufficient funds")
	ErrNoHistory         = errors.New("no saved states to restore")
)

// Memento is an opaque balance snapshot. Only Account can read it.
type Memento struct {
	balance float64
}

// Account is the originator.
type Account struct {
	balance float64
}

// Deposit credits the account.
func (a *Account) Deposit(amount float64) {
	a.balance += amount
}

// Withdraw debits the account.
// Returns ErrInsufficientFunds when the balance cannot cover amount.
func (a *Account) Withdraw(amount float64) error {
	if amount > a.balance {
		return ErrInsufficientFunds
	}
	a.balance -= amount
	return nil
}

// Balance returns the current balance.
func (a *Account) Balance() float64 { return a.balance }

// Save captures the current state in a memento.
func (a *Account) Save() Memento {
	return Memento{balance: a.balance}
}

// Restore rewinds the account to a saved state.
func (a *Account) Restore(m Memento) {
	a.balance = m.balance
}

// Caretaker keeps mementos without ever looking inside them.
type Caretaker struct {
	account *Account
	history []Memento
}

// NewCaretaker returns a caretaker for the given account.
func NewCaretaker(account *Account) *Caretaker {
	return &Caretaker{account: account}
}

// Save pushes the account's current state onto the history stack.
func (c *Caretaker) Save() {
	c.history = append(c.history, c.account.Save())
}

// Undo restores the most recently saved state.
// Returns ErrNoHistory when nothing has been saved.
func (c *Caretaker) Undo() error {
	if len(c.history) == 0 {
		return ErrNoHistory
	}
	last := c.history[len(c.history)-1]
	c.history = c.history[:len(c.history)-1]
	c.account.Restore(last)
	return nil
}

// Demo runs deposits and withdrawals with two checkpoints, then unwinds
// both.
func Demo(w io.Writer) error {
	account := &Account{}
	caretaker := NewCaretaker(account)

	account.Deposit(100)
	fmt.Fprintf(w, "balance after deposit: %.2f\n", account.Balance())
	caretaker.Save()

	account.Deposit(50)
	if err := account.Withdraw(30); err != nil {
		return err
	}
	fmt.Fprintf(w, "balance after more activity: %.2f\n", account.Balance())
	caretaker.Save()

	if err := account.Withdraw(100); err != nil {
		return err
	}
	fmt.Fprintf(w, "balance after withdrawal: %.2f\n", account.Balance())

	if err := caretaker.Undo(); err != nil {
		return err
	}
	fmt.Fprintf(w, "balance after undo: %.2f\n", account.Balance())

	if err := caretaker.Undo(); err != nil {
		return err
	}
	fmt.Fprintf(w, "balance after second undo: %.2f\n", account.Balance())
	return nil
}
