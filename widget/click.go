package widget

// Click turns mouse button edges into clicks on one target. A click needs the
// press and the release both over the target; dragging onto it does not count.
type Click struct {
	armed bool
}

// Update takes whether the cursor is over the target and whether the button
// was just pressed or just released this frame. It reports a click.
func (c *Click) Update(over, justPressed, justReleased bool) bool {
	if justPressed {
		c.armed = over
	}
	if !justReleased {
		return false
	}
	clicked := c.armed && over
	c.armed = false
	return clicked
}

// Armed reports whether a press started over the target and is still held.
func (c *Click) Armed() bool {
	return c.armed
}
