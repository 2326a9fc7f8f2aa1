//go:build rp2040 || rp2350

package board

import (
	"machine"

	"github.com/jangala-dev/tinygo-uartx/uartx"
	"tinygo.org/x/drivers/buzzer"

	"github.com/gucio32/morseblink/pkg/generator"
)

const PinSpeaker machine.Pin = machine.GP16

var (
	uart   = uartx.UART1
	uartTX = uartx.UART1_TX_PIN // Pico: GP8
	uartRX = uartx.UART1_RX_PIN // Pico: GP9
	uartOK bool
)

// Init brings up the UART used by Log. Playback works without it.
func Init() error {
	if err := uart.Configure(uartx.UARTConfig{
		BaudRate: 115200,
		TX:       uartTX,
		RX:       uartRX,
	}); err != nil {
		return err
	}
	uartOK = true
	return nil
}

// LED returns the on-board LED configured as an output, initially off.
func LED() generator.Line {
	led := machine.LED
	led.Configure(machine.PinConfig{Mode: machine.PinOutput})
	led.Low()
	return led
}

type buzzerLine struct {
	dev buzzer.Device
}

func (b *buzzerLine) High() { _ = b.dev.On() }
func (b *buzzerLine) Low()  { _ = b.dev.Off() }

// Buzzer returns an active piezo buzzer on PinSpeaker.
func Buzzer() (generator.Line, bool) {
	PinSpeaker.Configure(machine.PinConfig{Mode: machine.PinOutput})
	b := &buzzerLine{dev: buzzer.New(PinSpeaker)}
	b.Low()
	return b, true
}

// Log writes msg and CRLF to UART1, or to the USB console if UART1 is down.
func Log(msg string) {
	if !uartOK {
		println(msg)
		return
	}
	_, _ = uart.Write([]byte(msg))
	_, _ = uart.Write([]byte("\r\n"))
}
