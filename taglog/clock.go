package taglog

import (
	"sync"
	"sync/atomic"
	"time"
)

// Timestamps are milliseconds since process start, carried as uint32 like
// the serial consoles this line format comes from. Wraparound after
// roughly 49.7 days is accepted.
var (
	processStart = time.Now()

	// tickSource switches Timestamp from direct clock reads to the
	// cached counter maintained by the refresher goroutine.
	tickSource atomic.Bool
	tickNow    atomic.Uint32

	tickMu   sync.Mutex
	tickStop chan struct{}

	lastStamp atomic.Uint32
)

func sinceStartMillis() uint32 {
	return uint32(time.Since(processStart) / time.Millisecond)
}

// Timestamp returns the current log timestamp in milliseconds. Values are
// non-decreasing within the process, including across the switch between
// the direct and the tick-backed source.
func Timestamp() uint32 {
	var now uint32
	if tickSource.Load() {
		now = tickNow.Load()
	} else {
		now = sinceStartMillis()
	}
	return clampStamp(now)
}

// clampStamp enforces monotonicity with a CAS-max loop. A backwards jump
// larger than half the counter range is taken as wraparound and accepted.
func clampStamp(now uint32) uint32 {
	for {
		last := lastStamp.Load()
		if now < last && last-now < 1<<31 {
			return last
		}
		if lastStamp.CompareAndSwap(last, now) {
			return now
		}
	}
}

// EnableTickSource switches Timestamp to a cached counter refreshed every
// interval by a background goroutine. Reading the cache is cheaper than a
// clock call but coarsens timestamps to the refresh interval. A
// non-positive interval selects 10ms. Calling it while the tick source is
// already running has no effect.
func EnableTickSource(interval time.Duration) {
	tickMu.Lock()
	defer tickMu.Unlock()
	if tickStop != nil {
		return
	}
	if interval <= 0 {
		interval = 10 * time.Millisecond
	}
	stop := make(chan struct{})
	tickStop = stop
	tickNow.Store(sinceStartMillis())
	tickSource.Store(true)
	go func() {
		t := time.NewTicker(interval)
		defer t.Stop()
		for {
			select {
			case <-t.C:
				tickNow.Store(sinceStartMillis())
			case <-stop:
				return
			}
		}
	}()
}

// DisableTickSource stops the refresher goroutine and reverts Timestamp
// to direct clock reads.
func DisableTickSource() {
	tickMu.Lock()
	defer tickMu.Unlock()
	if tickStop == nil {
		return
	}
	close(tickStop)
	tickStop = nil
	tickSource.Store(false)
}
