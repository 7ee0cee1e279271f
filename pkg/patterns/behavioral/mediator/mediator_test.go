package mediator

import (
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBroadcastSkipsSender(t *testing.T) {
	var buf bytes.Buffer
	desk := NewDealingDesk()

	alice := NewTrader("alice", &buf)
	bob := NewTrader("bob", &buf)
	carol := NewTrader("carol", &buf)
	desk.Admit(alice)
	desk.Admit(bob)
	desk.Admit(carol)

	alice.Send("bid 101.5")

	out := buf.String()
	assert.Contains(t, out, "alice sends: bid 101.5")
	assert.Contains(t, out, "bob receives: bid 101.5")
	assert.Contains(t, out, "carol receives: bid 101.5")
	assert.NotContains(t, out, "alice receives")
	assert.Equal(t, 2, strings.Count(out, "receives"))
}

func TestSendWithoutDeskIsLocalOnly(t *testing.T) {
	var buf bytes.Buffer
	loner := NewTrader("loner", &buf)

	loner.Send("anyone there")

	assert.Equal(t, "loner sends: anyone there\n", buf.String())
}

func TestDemoOutput(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, Demo(&buf))

	out := buf.String()
	assert.Contains(t, out, "alice sends: bid 101.5 for 10y gilts")
	assert.Contains(t, out, "bob receives: bid 101.5 for 10y gilts")
	assert.Contains(t, out, "bob sends: offer 101.7")
	assert.Contains(t, out, "alice receives: offer 101.7")
}
