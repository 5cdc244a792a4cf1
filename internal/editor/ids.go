package editor

import (
	"fmt"
	"strings"
	"time"
)

// IDGenerator hands out item ids. Ids must be strictly increasing for the lifetime of a generator.
type IDGenerator interface {
	Next() int64
}

// Counter is a deterministic IDGenerator: seed+1, seed+2, ...
type Counter struct {
	last int64
}

func NewCounter(seed int64) *Counter {
	return &Counter{last: seed}
}

func (c *Counter) Next() int64 {
	c.last++
	return c.last
}

// Clock issues wall-clock millisecond ids. Two ids requested within the same millisecond
// (or after the clock stepped backwards) are bumped to last+1 so ids never repeat.
type Clock struct {
	Now  func() time.Time
	last int64
}

func NewClock() *Clock {
	return &Clock{Now: time.Now}
}

func (c *Clock) Next() int64 {
	now := time.Now
	if c.Now != nil {
		now = c.Now
	}
	id := now().UnixMilli()
	if id <= c.last {
		id = c.last + 1
	}
	c.last = id
	return id
}

const (
	GeneratorCounter = "counter"
	GeneratorClock   = "clock"
)

// NewGenerator builds the generator named by kind ("counter" or "clock").
// seed only applies to the counter.
func NewGenerator(kind string, seed int64) (IDGenerator, error) {
	switch strings.ToLower(strings.TrimSpace(kind)) {
	case "", GeneratorCounter:
		return NewCounter(seed), nil
	case GeneratorClock:
		return NewClock(), nil
	default:
		return nil, fmt.Errorf("unknown id generator: %q (want %s|%s)", kind, GeneratorCounter, GeneratorClock)
	}
}
