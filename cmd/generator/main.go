package main

import (
	"flag"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/google/shlex"

	"github.com/gucio32/morseblink/pkg/generator"
	"github.com/gucio32/morseblink/pkg/player"
)

func main() {
	text := flag.String("text", "SOS", "Text to play")
	messages := flag.String("messages", "", `Shell-quoted message list, e.g. "'HELLO, WORLD?' SOS"; overrides -text`)
	paris := flag.Int("wpm", 0, "Speed in PARIS words per minute (overrides -unit)")
	unit := flag.Duration("unit", generator.DefaultUnit, "Base time unit")
	loop := flag.Bool("loop", false, "Repeat the messages forever")
	dry := flag.Bool("dry", false, "Print the timeline instead of playing")
	silent := flag.Bool("silent", false, "No sidetone, console only")
	flag.Parse()

	if err := run(*text, *messages, *paris, *unit, *loop, *dry, *silent); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func run(text, messages string, paris int, unit time.Duration, loop, dry, silent bool) error {
	msgs := []string{text}
	if messages != "" {
		var err error
		if msgs, err = shlex.Split(messages); err != nil {
			return fmt.Errorf("parse -messages: %w", err)
		}
	}
	// the table only knows uppercase
	for i := range msgs {
		msgs[i] = strings.ToUpper(msgs[i])
	}

	if dry {
		tr := &generator.Trace{}
		g := newGenerator(tr, tr, paris, unit)
		for _, msg := range msgs {
			tr.Reset()
			g.Play(msg)
			fmt.Printf("%q\n  %s\n  pulses=%d on=%s total=%s\n", msg, tr.Timeline(g.UnitDuration), tr.Pulses(), tr.OnTime(), tr.Total())
		}
		return nil
	}

	line := generator.Line(generator.NewConsole(os.Stdout, "key"))
	if !silent {
		tone, err := generator.NewTone(generator.DefaultFrequency)
		if err != nil {
			return err
		}
		defer tone.Close()
		line = generator.Multi(line, tone)
	}

	l := player.New(newGenerator(line, generator.Sleep, paris, unit), msgs...)
	l.OnMessage = func(i int, msg string) {
		fmt.Fprintf(os.Stderr, "message %d: %s\n", i, msg)
	}
	if loop {
		l.Run()
	}
	l.Cycle()
	return nil
}

func newGenerator(line generator.Line, wait generator.Waiter, paris int, unit time.Duration) *generator.Generator {
	g := generator.NewGenerator(line, wait).SetUnit(unit)
	if paris > 0 {
		g.SetPARIS(paris)
	}
	return g
}
