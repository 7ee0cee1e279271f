// Package observer demonstrates the Observer pattern: a price feed
// notifies every attached display on each tick, and displays come and
// go without the feed changing.
package observer

import (
	"fmt"
	"io"
)

// Observer receives price updates from a feed.
type Observer interface {
	Update(price float64)
}

// PriceFeed is the subject: it owns the last price and the observer
// list.
type PriceFeed struct {
	observers []Observer
	price     float64
}

// Attach subscribes an observer. Attaching the same observer twice is
// a no-op.
func (f *PriceFeed) Attach(o Observer) {
	for _, existing := range f.observers {
		if existing == o {
			return
		}
	}
	f.observers = append(f.observers, o)
}

// Detach unsubscribes an observer if present.
func (f *PriceFeed) Detach(o Observer) {
	for i, existing := range f.observers {
		if existing == o {
			f.observers = append(f.observers[:i], f.observers[i+1:]...)
			return
		}
	}
}

// SetPrice records a new last price and notifies all observers.
func (f *PriceFeed) SetPrice(price float64) {
	f.price = price
	f.notify()
}

func (f *PriceFeed) notify() {
	for _, o := range f.observers {
		o.Update(f.price)
	}
}

// TickerDisplay prints every price it sees.
type TickerDisplay struct {
	out io.Writer
}

// NewTickerDisplay returns a display printing to out.
func NewTickerDisplay(out io.Writer) *TickerDisplay {
	return &TickerDisplay{out: out}
}

func (d *TickerDisplay) Update(price float64) {
	fmt.Fprintf(d.out, "ticker: last price %.2f\n", price)
}

// AlertDisplay prints only when the price crosses its threshold.
type AlertDisplay struct {
	out       io.Writer
	Threshold float64
}

// NewAlertDisplay returns an alerting display with the given
// threshold.
func NewAlertDisplay(out io.Writer, threshold float64) *AlertDisplay {
	return &AlertDisplay{out: out, Threshold: threshold}
}

func (d *AlertDisplay) Update(price float64) {
	if price > d.Threshold {
		fmt.Fprintf(d.out, "alert: price %.2f above threshold %.2f\n", price, d.Threshold)
	}
}

// Demo ticks a feed with two displays attached, then detaches one.
func Demo(w io.Writer) error {
	feed := &PriceFeed{}

	ticker := NewTickerDisplay(w)
	alert := NewAlertDisplay(w, 28)
	feed.Attach(ticker)
	feed.Attach(alert)

	feed.SetPrice(25)
	feed.SetPrice(30)

	feed.Detach(ticker)
	feed.SetPrice(35)
	return nil
}
