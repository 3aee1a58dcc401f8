package audio

import (
	"encoding/binary"
	"math"
	"math/rand/v2"
	"time"
)

// SampleRate of every synthesized effect and of the output context.
const SampleRate = 44100

const channelCount = 2

// Effect is a built-in sound effect.
type Effect int

const (
	Break Effect = iota
	Place
	Select
)

func (e Effect) String() string {
	switch e {
	case Break:
		return "break"
	case Place:
		return "place"
	case Select:
		return "select"
	}
	return "unknown"
}

// Duration is the length of the effect's sample buffer.
func (e Effect) Duration() time.Duration {
	switch e {
	case Break:
		return 140 * time.Millisecond
	case Place:
		return 90 * time.Millisecond
	case Select:
		return 30 * time.Millisecond
	}
	return 0
}

// Synthesize renders an effect as mono samples in [-1, 1]. Output is the
// same on every call.
func Synthesize(e Effect, sampleRate int) []float32 {
	n := int(e.Duration().Seconds() * float64(sampleRate))
	out := make([]float32, n)
	if n == 0 {
		return out
	}

	switch e {
	case Break:
		// Filtered noise burst with a fast decay.
		rng := rand.New(rand.NewPCG(0xb10c, 0x5eed))
		var lp float64
		for i := range out {
			t := float64(i) / float64(sampleRate)
			lp += (rng.Float64()*2 - 1 - lp) * 0.35
			out[i] = float32(lp * math.Exp(-t*28) * 0.9)
		}
	case Place:
		// Low thump sweeping down from 220 Hz.
		var phase float64
		for i := range out {
			t := float64(i) / float64(sampleRate)
			freq := 220 - 120*t/e.Duration().Seconds()
			phase += 2 * math.Pi * freq / float64(sampleRate)
			out[i] = float32(math.Sin(phase) * math.Exp(-t*35) * 0.8)
		}
	case Select:
		for i := range out {
			t := float64(i) / float64(sampleRate)
			out[i] = float32(math.Sin(2*math.Pi*1200*t) * math.Exp(-t*160) * 0.5)
		}
	}

	// Short fade in so the first sample doesn't click.
	fade := min(n, sampleRate/1000)
	for i := 0; i < fade; i++ {
		out[i] *= float32(i) / float32(fade)
	}
	return out
}

// encodeStereo interleaves mono samples into stereo float32 little-endian
// PCM, the format the output context is opened with.
func encodeStereo(samples []float32, volume float32) []byte {
	buf := make([]byte, len(samples)*channelCount*4)
	for i, s := range samples {
		bits := math.Float32bits(clampSample(s * volume))
		off := i * channelCount * 4
		binary.LittleEndian.PutUint32(buf[off:], bits)
		binary.LittleEndian.PutUint32(buf[off+4:], bits)
	}
	return buf
}

func clampSample(s float32) float32 {
	if s > 1 {
		return 1
	}
	if s < -1 {
		return -1
	}
	return s
}
