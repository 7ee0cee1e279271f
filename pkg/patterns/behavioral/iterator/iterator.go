// Package iterator demonstrates the Iterator pattern: a transaction
// ledger is traversed through a cursor without exposing its backing
// slice.
package iterator

import (
	"errors"
	"fmt"
	"io"
)

// ErrExhausted is returned by Next once the iterator has no more
// transactions.
var ErrExhausted = errors.New("iterator exhausted")

// Transaction is one ledger entry.
type Transaction struct {
	ID     int
	Amount float64
}

// Iterator walks transactions sequentially.
type Iterator interface {
	HasNext() bool
	// Next returns the next transaction, or ErrExhausted past the end.
	Next() (Transaction, error)
}

// Ledger is the aggregate owning the transactions.
type Ledger struct {
	transactions []Transaction
}

// Add appends a transaction to the ledger.
func (l *Ledger) Add(tx Transaction) {
	l.transactions = append(l.transactions, tx)
}

// Iterator returns a fresh cursor positioned before the first
// transaction.
func (l *Ledger) Iterator() Iterator {
	return &cursor{transactions: l.transactions}
}

// cursor is the concrete iterator. It holds its own position, so
// multiple cursors over one ledger are independent.
type cursor struct {
	transactions []Transaction
	index        int
}

func (c *cursor) HasNext() bool {
	return c.index < len(c.transactions)
}

func (c *cursor) Next() (Transaction, error) {
	if !c.HasNext() {
		return Transaction{}, ErrExhausted
	}
	tx := c.transactions[c.index]
	c.index++
	return tx, nil
}

// Demo walks a three-entry ledger with an iterator.
func Demo(w io.Writer) error {
	ledger := &Ledger{}
	ledger.Add(Transaction{ID: 1, Amount: 100})
	ledger.Add(Transaction{ID: 2, Amount: 200})
	ledger.Add(Transaction{ID: 3, Amount: 300})

	it := ledger.Iterator()
	for it.HasNext() {
		tx, err := it.Next()
		if err != nil {
			return err
		}
		fmt.Fprintf(w, "transaction %d: amount %.2f\n", tx.ID, tx.Amount)
	}
	return nil
}
