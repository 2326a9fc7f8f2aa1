//go:build !(rp2040 || rp2350)

// Package board provides the LED, an optional buzzer and a log sink for the
// target the firmware is built for. Host builds simulate the LED on stdout.
package board

import (
	"fmt"
	"io"
	"os"
	"time"

	"github.com/gucio32/morseblink/pkg/generator"
)

var (
	Stdout io.Writer = os.Stdout
	Stderr io.Writer = os.Stderr
)

func Init() error { return nil }

func LED() generator.Line { return generator.NewConsole(Stdout, "led") }

// Buzzer is not available on a host.
func Buzzer() (generator.Line, bool) { return nil, false }

func Log(msg string) {
	fmt.Fprintf(Stderr, "%s %s\n", time.Now().Format("15:04:05.000"), msg)
}
