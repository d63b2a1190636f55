// ABOUTME: Container stacks child Components top to bottom into one frame
// ABOUTME: Children may be pinned to a row count so later rows keep their position

package tui

import "strings"

type slot struct {
	comp Component
	rows int // 0 means as many rows as the child renders
}

// Container is a vertical stack of components. It is not safe for
// concurrent use; hosts build one per frame or guard it themselves.
type Container struct {
	slots []slot
}

// NewContainer stacks the given children, each using its natural height.
func NewContainer(children ...Component) *Container {
	c := &Container{slots: make([]slot, 0, len(children))}
	for _, ch := range children {
		c.Add(ch)
	}
	return c
}

// Add appends a child that uses as many rows as it renders.
func (c *Container) Add(comp Component) {
	c.slots = append(c.slots, slot{comp: comp})
}

// AddRows appends a child that occupies exactly rows rows: extra output is
// dropped and short output is padded with blank rows of the render width.
// rows <= 0 renders nothing.
func (c *Container) AddRows(comp Component, rows int) {
	if rows <= 0 {
		rows = -1
	}
	c.slots = append(c.slots, slot{comp: comp, rows: rows})
}

// Len returns the number of children.
func (c *Container) Len() int {
	return len(c.slots)
}

// Render writes every child into out, in order.
func (c *Container) Render(out *RenderBuffer, width int) {
	for _, s := range c.slots {
		switch {
		case s.rows < 0:
			continue
		case s.rows == 0:
			s.comp.Render(out, width)
			continue
		}

		start := out.Len()
		s.comp.Render(out, width)
		out.Truncate(start + s.rows)
		for out.Len() < start+s.rows {
			out.WriteLine(strings.Repeat(" ", max(width, 0)))
		}
	}
}

// Invalidate invalidates all children.
func (c *Container) Invalidate() {
	for _, s := range c.slots {
		s.comp.Invalidate()
	}
}
