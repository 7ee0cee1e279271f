package state

import (
	"bytes"
	"io"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLifecycleTransitions(t *testing.T) {
	tests := []struct {
		name      string
		steps     func(o *Order)
		wantState string
	}{
		{
			name:      "starts new",
			steps:     func(o *Order) {},
			wantState: "new",
		},
		{
			name:      "process fills",
			steps:     func(o *Order) { o.Process() },
			wantState: "filled",
		},
		{
			name:      "cancel from new",
			steps:     func(o *Order) { o.Cancel() },
			wantState: "cancelled",
		},
		{
			name:      "cancel after fill",
			steps:     func(o *Order) { o.Process(); o.Cancel() },
			wantState: "cancelled",
		},
		{
			name:      "cancelled is terminal",
			steps:     func(o *Order) { o.Cancel(); o.Process(); o.Cancel() },
			wantState: "cancelled",
		},
		{
			name:      "filled stays filled on process",
			steps:     func(o *Order) { o.Process(); o.Process() },
			wantState: "filled",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			o := NewOrder(io.Discard)
			tt.steps(o)
			assert.Equal(t, tt.wantState, o.State())
		})
	}
}

func TestDemoOutput(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, Demo(&buf))

	want := "processing new order\n" +
		"cancelling filled order\n" +
		"cannot process a cancelled order\n" +
		"order already cancelled\n"
	assert.Equal(t, want, buf.String())
}
