package proxy

import (
	"bytes"
	"io"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestProxyCachesPerSymbol(t *testing.T) {
	feed := NewRemoteFeed(io.Discard)
	p := NewCachingProxy(feed, io.Discard)

	first := p.Get("AAPL")
	second := p.Get("AAPL")
	_ = p.Get("TSLA")

	assert.Equal(t, first, second)
	assert.Equal(t, 2, feed.Fetches, "repeated reads of one symbol must fetch once")
}

func TestProxyReportsHitsAndMisses(t *testing.T) {
	var buf bytes.Buffer
	p := NewCachingProxy(NewRemoteFeed(io.Discard), &buf)

	p.Get("AAPL")
	p.Get("AAPL")

	out := buf.String()
	assert.Contains(t, out, "cache miss for AAPL")
	assert.Contains(t, out, "cache hit for AAPL")
}

func TestDemoOutput(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, Demo(&buf))

	out := buf.String()
	assert.Contains(t, out, "cache miss for AAPL")
	assert.Contains(t, out, "cache hit for AAPL")
	assert.Contains(t, out, "cache miss for TSLA")
	assert.Contains(t, out, "remote fetches for 3 reads: 2")
}
