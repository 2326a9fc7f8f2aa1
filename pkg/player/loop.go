// Package player repeats a fixed list of messages on a Generator.
package player

import "github.com/gucio32/morseblink/pkg/generator"

// Loop owns the generator, and through it the line, for as long as it runs.
type Loop struct {
	Messages  []string
	Generator *generator.Generator

	// OnMessage, if set, is called with the index and text before each
	// message starts.
	OnMessage func(i int, msg string)
}

func New(g *generator.Generator, messages ...string) *Loop {
	return &Loop{Messages: messages, Generator: g}
}

// Cycle plays every message once, each followed by the inter-message gap.
func (l *Loop) Cycle() {
	for i, msg := range l.Messages {
		if l.OnMessage != nil {
			l.OnMessage(i, msg)
		}
		l.Generator.Play(msg)
		l.Generator.Pause(generator.InterMessage)
	}
}

// Run cycles forever. It never returns.
func (l *Loop) Run() {
	for {
		l.Cycle()
	}
}
