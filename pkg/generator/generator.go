package generator

import (
	"time"
	"unicode"
	"unicode/utf8"

	"github.com/gucio32/morseblink/pkg/morse"
)

const (
	DefaultUnit  = 200 * time.Millisecond
	DefaultPARIS = 20
)

// Gaps and on-times in units.
const (
	DotUnits       = 1
	DashUnits      = 3
	SymbolGap      = 1
	InterCharacter = 3
	InterWord      = 7
	InterMessage   = 14
)

// Line is a binary output such as an LED. machine.Pin satisfies it.
type Line interface {
	High()
	Low()
}

// Waiter suspends the caller for at least d.
type Waiter interface {
	Wait(d time.Duration)
}

// WaitFunc adapts a function to Waiter.
type WaitFunc func(d time.Duration)

func (f WaitFunc) Wait(d time.Duration) { f(d) }

// Sleep is a Waiter backed by time.Sleep.
var Sleep Waiter = WaitFunc(time.Sleep)

// Generator keys a Line with Morse timing derived from UnitDuration.
// It is not safe for concurrent use; the line belongs to one goroutine.
type Generator struct {
	line         Line
	wait         Waiter
	UnitDuration time.Duration
}

func NewGenerator(line Line, wait Waiter) *Generator {
	if wait == nil {
		wait = Sleep
	}
	return &Generator{
		line:         line,
		wait:         wait,
		UnitDuration: DefaultUnit,
	}
}

func (g *Generator) SetUnit(d time.Duration) *Generator {
	g.UnitDuration = d
	return g
}

func (g *Generator) SetPARIS(paris int) *Generator {
	if paris <= 0 {
		paris = DefaultPARIS
	}
	// "PARIS " = 50 units, unitDuration in seconds is 60/(50*PARIS)
	g.UnitDuration = time.Duration(60*time.Second) / time.Duration(50*paris)
	return g
}

// Pause waits n units with the line untouched.
func (g *Generator) Pause(n int) {
	g.wait.Wait(time.Duration(n) * g.UnitDuration)
}

// Emit keys one symbol: on for its length, then off for one unit.
func (g *Generator) Emit(s morse.Symbol) {
	on := DotUnits
	if s == morse.Dash {
		on = DashUnits
	}
	g.line.High()
	g.Pause(on)
	g.line.Low()
	g.Pause(SymbolGap)
}

func (g *Generator) Dit() { g.Emit(morse.Dot) }

func (g *Generator) Dash() { g.Emit(morse.Dash) }

// PlayMorseSequence keys a whole character followed by the inter-character gap.
func (g *Generator) PlayMorseSequence(sequence morse.Pattern) {
	for _, s := range sequence {
		g.Emit(s)
	}
	g.Pause(InterCharacter)
}

// Play keys text word by word. Characters without a pattern are skipped
// with no gap; every word, even an empty or unplayable one, ends with
// the inter-word gap.
func (g *Generator) Play(text string) {
	for _, word := range splitWords(text) {
		for _, c := range word {
			sequence, ok := morse.Lookup(c)
			if !ok {
				continue
			}
			g.PlayMorseSequence(sequence)
		}
		g.Pause(InterWord)
	}
}

// splitWords splits on every whitespace rune, so consecutive whitespace
// yields empty words. An empty text has no words.
func splitWords(text string) []string {
	if text == "" {
		return nil
	}
	var words []string
	start := 0
	for i, c := range text {
		if unicode.IsSpace(c) {
			words = append(words, text[start:i])
			start = i + utf8.RuneLen(c)
		}
	}
	return append(words, text[start:])
}
