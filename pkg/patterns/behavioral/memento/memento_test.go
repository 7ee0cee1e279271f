package memento

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestUndoRestoresSavedStates(t *testing.T) {
	account := &Account{}
	caretaker := NewCaretaker(account)

	account.Deposit(100)
	caretaker.Save()

	account.Deposit(50)
	require.NoError(t, account.Withdraw(30))
	caretaker.Save()

	require.NoError(t, account.Withdraw(100))
	assert.Equal(t, 20.0, account.Balance())

	require.NoError(t, caretaker.Undo())
	assert.Equal(t, 120.0, account.Balance())

	require.NoError(t, caretaker.Undo())
	assert.Equal(t, 100.0, account.Balance())
}

func TestUndoWithoutHistory(t *testing.T) {
	caretaker := NewCaretaker(&Account{})
	assert.ErrorIs(t, caretaker.Undo(), ErrNoHistory)
}

func TestWithdrawInsufficientFunds(t *testing.T) {
	account := &Account{}
	account.Deposit(50)

	err := account.Withdraw(100)

	assert.ErrorIs(t, err, ErrInsufficientFunds)
	assert.Equal(t, 50.0, account.Balance(), "failed withdrawal must not change the balance")
}

func TestDemoOutput(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, Demo(&buf))

	want := "balance after deposit: 100.00\n" +
		"balance after more activity: 120.00\n" +
		"balance after withdrawal: 20.00\n" +
		"balance after undo: 120.00\n" +
		"balance after second undo: 100.00\n"
	assert.Equal(t, want, buf.String())
}
