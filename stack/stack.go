// Package stack hands out paint-order priorities for papers
package stack

import "sync/atomic"

// Order issues stacking priorities. Higher values paint in front
type Order interface {
	// Next returns the current value then advances. Never returns the same value twice
	Next() int
}

// Counter is a monotonically increasing Order
type Counter struct {
	next atomic.Int64
}

// NewCounter creates a counter whose first Next returns start
func NewCounter(start int) *Counter {
	c := &Counter{}
	c.next.Store(int64(start))
	return c
}

// Next returns the current value then increments it
func (c *Counter) Next() int {
	return int(c.next.Add(1) - 1)
}

// Peek returns the value the next call to Next will return
func (c *Counter) Peek() int {
	return int(c.next.Load())
}

var shared = NewCounter(1)

// Shared returns the process-wide counter. First value is 1
func Shared() *Counter {
	return shared
}
