//go:build !(rp2040 || rp2350)

package generator

import (
	"math"
	"sync"
)

const (
	DefaultFrequency    = 784.0 // this is G
	DefaultSampleRate   = 48000
	DefaultChannelCount = 2
)

// SineWave is an endless signed 16-bit little-endian sine source.
type SineWave struct {
	freq float64
	pos  int64

	channelCount int

	remaining []byte

	m *sync.Mutex
}

func NewSineWave(freq float64, channelCount int) *SineWave {
	if channelCount <= 0 {
		channelCount = DefaultChannelCount
	}
	return &SineWave{
		freq:         freq,
		channelCount: channelCount,
		m:            &sync.Mutex{},
	}
}

// samples over which the wave fades in, so the first key-down doesn't click
const stuckReduction = 300

func (s *SineWave) Read(buf []byte) (int, error) {
	s.m.Lock()
	defer s.m.Unlock()
	if len(s.remaining) > 0 {
		n := copy(buf, s.remaining)
		s.remaining = s.remaining[n:]
		return n, nil
	}

	num := formatByteLength() * s.channelCount

	var origBuf []byte
	if len(buf)%num > 0 {
		origBuf = buf
		buf = make([]byte, len(origBuf)+num-len(origBuf)%num)
	}

	length := float64(DefaultSampleRate) / s.freq

	p := s.pos / int64(num)
	for i := 0; i < len(buf)/num; i++ {
		const max = 32767
		v := math.Sin(2*math.Pi*float64(p)/length) * 0.3 * max
		if p < stuckReduction {
			v *= float64(p) / stuckReduction
		}
		b := int16(v)

		for ch := 0; ch < s.channelCount; ch++ {
			buf[num*i+2*ch] = byte(b)
			buf[num*i+1+2*ch] = byte(b >> 8)
		}
		p++
	}

	s.pos += int64(len(buf))

	n := len(buf)
	if origBuf != nil {
		n = copy(origBuf, buf)
		s.remaining = buf[n:]
	}

	return n, nil
}

func formatByteLength() int {
	return 2
}
