package channel

import (
	"sync"
	"sync/atomic"
	"time"
)

// Stats is a snapshot of channel activity since the handle was created.
type Stats struct {
	Dials          int64
	Connects       int64
	Reconnects     int64 // dial attempts scheduled after a failure or close
	FramesIn       int64
	FramesOut      int64
	BytesIn        int64
	BytesOut       int64
	Dropped        int64 // inbound frames that were not valid JSON
	ConnectedSince time.Time
}

type counters struct {
	dials, connects, reconnects            atomic.Int64
	framesIn, framesOut, bytesIn, bytesOut atomic.Int64
	dropped                                atomic.Int64

	mu    sync.Mutex
	since time.Time
}

func (c *counters) connected(at time.Time) {
	c.connects.Add(1)
	c.mu.Lock()
	c.since = at
	c.mu.Unlock()
}

func (c *counters) disconnected() {
	c.mu.Lock()
	c.since = time.Time{}
	c.mu.Unlock()
}

func (c *counters) snapshot() Stats {
	c.mu.Lock()
	since := c.since
	c.mu.Unlock()
	return Stats{
		Dials:          c.dials.Load(),
		Connects:       c.connects.Load(),
		Reconnects:     c.reconnects.Load(),
		FramesIn:       c.framesIn.Load(),
		FramesOut:      c.framesOut.Load(),
		BytesIn:        c.bytesIn.Load(),
		BytesOut:       c.bytesOut.Load(),
		Dropped:        c.dropped.Load(),
		ConnectedSince: since,
	}
}
