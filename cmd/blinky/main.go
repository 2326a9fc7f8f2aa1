// Blinky keys a fixed set of messages in Morse code on the board LED, forever.
package main

import (
	"time"

	"github.com/gucio32/morseblink/pkg/board"
	"github.com/gucio32/morseblink/pkg/generator"
	"github.com/gucio32/morseblink/pkg/player"
)

func main() {
	// Allow USB CDC to enumerate before we print.
	time.Sleep(2 * time.Second)

	if err := board.Init(); err != nil {
		board.Log("uart init failed: " + err.Error())
	}

	line := board.LED()
	if useBuzzer {
		if bz, ok := board.Buzzer(); ok {
			line = generator.Multi(line, bz)
		}
	}

	g := generator.NewGenerator(line, generator.Sleep).SetUnit(baseUnit)
	loop := player.New(g, messages...)
	loop.OnMessage = func(_ int, msg string) { board.Log("playing: " + msg) }

	board.Log("boot")
	loop.Run()
}
