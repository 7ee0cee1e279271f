package chain

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func buildChain(buf *bytes.Buffer) Approver {
	manager := NewManager(buf)
	manager.SetNext(NewSeniorManager(buf)).SetNext(NewDirector(buf))
	return manager
}

func TestApprovalRouting(t *testing.T) {
	tests := []struct {
		name   string
		amount float64
		want   string
	}{
		{name: "small trade stays with manager", amount: 500, want: "manager approves the trade\n"},
		{name: "manager limit boundary", amount: 1000, want: "manager approves the trade\n"},
		{name: "mid trade escalates once", amount: 2000, want: "senior manager approves the trade\n"},
		{name: "large trade escalates twice", amount: 7000, want: "director approves the trade\n"},
		{name: "over all limits goes to board", amount: 15000, want: "trade requires board approval\n"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var buf bytes.Buffer
			buildChain(&buf).Approve(tt.amount)
			assert.Equal(t, tt.want, buf.String())
		})
	}
}

func TestUnlinkedApproverRefusesOverLimit(t *testing.T) {
	var buf bytes.Buffer
	NewManager(&buf).Approve(2000)
	assert.Equal(t, "trade requires higher approval\n", buf.String())
}

func TestDemoOutput(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, Demo(&buf))

	out := buf.String()
	assert.Contains(t, out, "processing trade for 500: manager approves the trade")
	assert.Contains(t, out, "processing trade for 2000: senior manager approves the trade")
	assert.Contains(t, out, "processing trade for 7000: director approves the trade")
	assert.Contains(t, out, "processing trade for 15000: trade requires board approval")
}
