//go:build !(rp2040 || rp2350)

package generator

import (
	"fmt"

	"github.com/ebitengine/oto/v3"
)

// ~10ms of 16-bit stereo at DefaultSampleRate, keeps key-up latency low
const toneBufferSize = DefaultSampleRate / 100 * DefaultChannelCount * 2

// Tone is a Line that sounds a sidetone while high.
type Tone struct {
	ctx    *oto.Context
	player *oto.Player
}

// NewTone opens the audio device. Only one Tone may exist per process.
func NewTone(freq float64) (*Tone, error) {
	op := &oto.NewContextOptions{
		SampleRate:   DefaultSampleRate,
		Format:       oto.FormatSignedInt16LE,
		ChannelCount: DefaultChannelCount,
	}

	ctx, ready, err := oto.NewContext(op)
	if err != nil {
		return nil, fmt.Errorf("open audio: %w", err)
	}

	<-ready

	p := ctx.NewPlayer(NewSineWave(freq, DefaultChannelCount))
	p.SetBufferSize(toneBufferSize)

	return &Tone{ctx: ctx, player: p}, nil
}

func (t *Tone) High() { t.player.Play() }

func (t *Tone) Low() { t.player.Pause() }

func (t *Tone) Close() error {
	t.player.Pause()
	return t.player.Close()
}
