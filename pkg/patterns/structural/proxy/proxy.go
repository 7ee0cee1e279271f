// Package proxy demonstrates the Proxy pattern: a caching proxy stands
// in for a remote market-data feed and only reaches the feed on a
// cache miss.
package proxy

import (
	"fmt"
	"io"
)

// Quote is the payload returned for a symbol.
type Quote struct {
	Price  float64
	Volume int
}

// MarketData is the subject interface shared by the real feed and the
// proxy.
type MarketData interface {
	Get(symbol string) Quote
}

// RemoteFeed is the real subject. Every Get simulates a remote fetch.
type RemoteFeed struct {
	out io.Writer

	// Fetches counts remote round trips, for demonstration.
	Fetches int
}

// NewRemoteFeed returns a feed reporting fetches to out.
func NewRemoteFeed(out io.Writer) *RemoteFeed {
	return &RemoteFeed{out: out}
}

func (f *RemoteFeed) Get(symbol string) Quote {
	f.Fetches++
	fmt.Fprintf(f.out, "fetching market data for %s from remote feed\n", symbol)
	return Quote{Price: 100, Volume: 1000}
}

// CachingProxy fronts a MarketData source with a per-symbol cache.
type CachingProxy struct {
	source MarketData
	cache  map[string]Quote
	out    io.Writer
}

// NewCachingProxy wraps source with an empty cache.
func NewCachingProxy(source MarketData, out io.Writer) *CachingProxy {
	return &CachingProxy{
		source: source,
		cache:  make(map[string]Quote),
		out:    out,
	}
}

func (p *CachingProxy) Get(symbol string) Quote {
	if quote, ok := p.cache[symbol]; ok {
		fmt.Fprintf(p.out, "cache hit for %s\n", symbol)
		return quote
	}
	fmt.Fprintf(p.out, "cache miss for %s\n", symbol)
	quote := p.source.Get(symbol)
	p.cache[symbol] = quote
	return quote
}

// Demo reads the same symbol twice and a second symbol once; only the
// misses reach the remote feed.
func Demo(w io.Writer) error {
	feed := NewRemoteFeed(w)
	var data MarketData = NewCachingProxy(feed, w)

	first := data.Get("AAPL")
	fmt.Fprintf(w, "AAPL: price %.2f volume %d\n", first.Price, first.Volume)

	second := data.Get("AAPL")
	fmt.Fprintf(w, "AAPL: price %.2f volume %d\n", second.Price, second.Volume)

	third := data.Get("TSLA")
	fmt.Fprintf(w, "TSLA: price %.2f volume %d\n", third.Price, third.Volume)

	fmt.Fprintf(w, "remote fetches for 3 reads: %d\n", feed.Fetches)
	return nil
}
