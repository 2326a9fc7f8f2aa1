package generator

import (
	"fmt"
	"io"
	"time"
)

// Console is a Line that prints every level change with the milliseconds
// elapsed since the first one. It stands in for the LED on a host.
type Console struct {
	w     io.Writer
	name  string
	start time.Time
	now   func() time.Time
}

func NewConsole(w io.Writer, name string) *Console {
	return &Console{w: w, name: name, now: time.Now}
}

func (c *Console) High() { c.log("on") }

func (c *Console) Low() { c.log("off") }

func (c *Console) log(state string) {
	t := c.now()
	if c.start.IsZero() {
		c.start = t
	}
	fmt.Fprintf(c.w, "[%7dms] %-6s %s\n", t.Sub(c.start).Milliseconds(), c.name, state)
}
