package client

import "time"

// Ticker paces the frames. It's an interface so tests can tick by hand.
type Ticker interface {
	C() <-chan time.Time
	Stop()
}

type wrappedTicker struct {
	ticker *time.Ticker
}

func newWrappedTicker(d time.Duration) *wrappedTicker {
	return &wrappedTicker{ticker: time.NewTicker(d)}
}

func (t *wrappedTicker) C() <-chan time.Time { return t.ticker.C }
func (t *wrappedTicker) Stop()               { t.ticker.Stop() }

// clock converts ticker times into whole elapsed milliseconds, carrying the
// sub-millisecond remainder over to the next frame.
type clock struct {
	last time.Time
}

func (c *clock) elapsed(now time.Time) int {
	if c.last.IsZero() || now.Before(c.last) {
		c.last = now
		return 0
	}
	ms := now.Sub(c.last).Milliseconds()
	c.last = c.last.Add(time.Duration(ms) * time.Millisecond)
	return int(ms)
}
