package generator

import (
	"fmt"
	"strings"
	"time"
)

// Step is one recorded event: a line level change or a wait.
type Step struct {
	High bool
	Wait time.Duration // zero for level changes
}

func (s Step) String() string {
	if s.Wait != 0 {
		return fmt.Sprintf("wait %s", s.Wait)
	}
	if s.High {
		return "high"
	}
	return "low"
}

// Trace records everything a Generator does instead of keying hardware.
// Use it as both the Line and the Waiter.
type Trace struct {
	Steps []Step
	level bool
}

func (t *Trace) High() {
	t.level = true
	t.Steps = append(t.Steps, Step{High: true})
}

func (t *Trace) Low() {
	t.level = false
	t.Steps = append(t.Steps, Step{})
}

func (t *Trace) Wait(d time.Duration) {
	t.Steps = append(t.Steps, Step{High: t.level, Wait: d})
}

func (t *Trace) Reset() {
	t.Steps = t.Steps[:0]
	t.level = false
}

// Pulses counts low-to-high transitions.
func (t *Trace) Pulses() int {
	n := 0
	for _, s := range t.Steps {
		if s.Wait == 0 && s.High {
			n++
		}
	}
	return n
}

// OnTime sums the waits spent with the line high.
func (t *Trace) OnTime() time.Duration {
	var d time.Duration
	for _, s := range t.Steps {
		if s.Wait != 0 && s.High {
			d += s.Wait
		}
	}
	return d
}

// Total sums all waits.
func (t *Trace) Total() time.Duration {
	var d time.Duration
	for _, s := range t.Steps {
		d += s.Wait
	}
	return d
}

// Timeline renders the trace in units of unit: "+1" for a high wait,
// "-1" for a low wait, e.g. "+1 -1 -3 -7" for "E".
func (t *Trace) Timeline(unit time.Duration) string {
	var b strings.Builder
	for _, s := range t.Steps {
		if s.Wait == 0 {
			continue
		}
		if b.Len() > 0 {
			b.WriteByte(' ')
		}
		sign := '-'
		if s.High {
			sign = '+'
		}
		b.WriteRune(sign)
		if unit > 0 && s.Wait%unit == 0 {
			fmt.Fprintf(&b, "%d", s.Wait/unit)
		} else {
			b.WriteString(s.Wait.String())
		}
	}
	return b.String()
}

type multi []Line

// Multi mirrors one signal onto several lines, in order.
func Multi(lines ...Line) Line {
	out := make(multi, 0, len(lines))
	for _, l := range lines {
		if l != nil {
			out = append(out, l)
		}
	}
	return out
}

func (m multi) High() {
	for _, l := range m {
		l.High()
	}
}

func (m multi) Low() {
	for _, l := range m {
		l.Low()
	}
}
