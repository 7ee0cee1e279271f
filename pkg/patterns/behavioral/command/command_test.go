package command

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBrokerExecutesInOrderAndDrains(t *testing.T) {
	var buf bytes.Buffer
	trader := NewTrader(&buf)

	broker := &Broker{}
	broker.Add(BuyOrder{Trader: trader, Units: 100})
	broker.Add(SellOrder{Trader: trader, Units: 50})
	broker.Add(BuyOrder{Trader: trader, Units: 10})
	require.Equal(t, 3, broker.Pending())

	broker.ExecuteAll()

	assert.Equal(t, "buying 100 units\nselling 50 units\nbuying 10 units\n", buf.String())
	assert.Equal(t, 0, broker.Pending())
}

func TestExecuteAllOnEmptyQueue(t *testing.T) {
	broker := &Broker{}
	broker.ExecuteAll()
	assert.Equal(t, 0, broker.Pending())
}

func TestDemoOutput(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, Demo(&buf))

	out := buf.String()
	assert.Contains(t, out, "queued commands: 2")
	assert.Contains(t, out, "buying 100 units")
	assert.Contains(t, out, "selling 50 units")
	assert.Contains(t, out, "queued commands after execution: 0")
}
