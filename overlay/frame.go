package overlay

import "github.com/plus3/cckdebug/ui"

// Frame is passed to every System once per rendered frame.
type Frame struct {
	// Number counts frames from 1.
	Number int64
	// DeltaTime is the frame duration in seconds.
	DeltaTime float64
	// Time is the accumulated time in seconds, including this frame.
	Time     float64
	Commands *Commands
}

// Commands buffers work that must happen after every system ran this frame:
// widget destruction and deferred render calls.
type Commands struct {
	tree     *ui.Tree
	destroys []*ui.Widget
	defers   []func()
}

// NewCommands creates a buffer that destroys widgets of tree on Flush.
func NewCommands(tree *ui.Tree) *Commands {
	return &Commands{tree: tree}
}

// Destroy queues w for destruction at the end of the frame.
func (c *Commands) Destroy(w *ui.Widget) {
	c.destroys = append(c.destroys, w)
}

// Defer queues fn to run after destructions are applied.
func (c *Commands) Defer(fn func()) {
	c.defers = append(c.defers, fn)
}

// Pending returns the number of queued operations.
func (c *Commands) Pending() int {
	return len(c.destroys) + len(c.defers)
}

// Flush applies queued destructions, then runs deferred functions, and resets
// the buffer. Work queued while flushing runs on the next Flush.
func (c *Commands) Flush() {
	destroys, defers := c.destroys, c.defers
	c.destroys, c.defers = nil, nil

	for _, w := range destroys {
		c.tree.Destroy(w)
	}
	for _, fn := range defers {
		fn()
	}
}
