package adapter

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAdapterTranslatesCalls(t *testing.T) {
	var buf bytes.Buffer
	var executor TradeExecutor = NewAdapter(NewVendorAPI(&buf))

	executor.ExecuteTrade("AAPL", 100, "buy")

	assert.Equal(t, "vendor: placing buy order for 100 AAPL\n", buf.String())
}

func TestDemoOutput(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, Demo(&buf))

	out := buf.String()
	assert.Contains(t, out, "placing buy order for 100 AAPL")
	assert.Contains(t, out, "placing sell order for 25 TSLA")
}
