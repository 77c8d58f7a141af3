package model

import (
	"sync/atomic"
	"time"
)

// ChartKind discriminates the three chart types the engine targets.
type ChartKind string

const (
	ChartRadar    ChartKind = "radar"
	ChartBar      ChartKind = "bar"
	ChartDoughnut ChartKind = "doughnut"
)

// ChartInstance is a rendered chart document bound 1:1 to a named canvas
// slot. The renderer is its exclusive owner: an instance must be destroyed
// before a replacement is bound to the same slot, and no slot may ever hold
// two live instances.
type ChartInstance struct {
	Slot      string    `json:"slot"`
	Kind      ChartKind `json:"kind"`
	Document  []byte    `json:"-"`
	BuiltAt   time.Time `json:"builtAt"`
	destroyed atomic.Bool
}

// Destroy releases the instance. Idempotent: repeated calls are no-ops.
func (c *ChartInstance) Destroy() {
	if c == nil {
		return
	}
	if c.destroyed.CompareAndSwap(false, true) {
		c.Document = nil
	}
}

// Live reports whether the instance has not been destroyed.
func (c *ChartInstance) Live() bool {
	return c != nil && !c.destroyed.Load()
}
