package attrail

import "sync/atomic"

// clock is a monotonic logical clock. Every recorded change is stamped with
// a seq from its instance's clock, so write order is explicit in the data
// and never depends on wall-clock time.
//
// The clock itself is safe for concurrent use (atomic operations), but the
// surrounding read-prior/assign/append sequence is not; see the package
// documentation.
type clock struct {
	seq atomic.Int64
}

// next returns the next sequence number and increments the clock.
func (c *clock) next() int64 {
	return c.seq.Add(1)
}

// current returns the current sequence number without incrementing.
func (c *clock) current() int64 {
	return c.seq.Load()
}
