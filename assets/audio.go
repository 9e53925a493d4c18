// Package assets loads and synthesizes the viewer's sounds.
package assets

import (
	"bytes"
	"encoding/binary"
	"fmt"
	"math"
	"os"
	"path/filepath"
	"strings"
	"sync"

	"github.com/hajimehoshi/ebiten/v2/audio"
	"github.com/hajimehoshi/ebiten/v2/audio/wav"
)

const SampleRate = 44100

// Boing tone parameters: a falling sine with an exponential decay.
const (
	boingStartHz   = 520
	boingEndHz     = 180
	boingSeconds   = 0.25
	boingDecay     = 14
	boingAmplitude = 0.4
)

var (
	audioOnce    sync.Once
	audioContext *audio.Context
)

// Context returns the process-wide audio context, creating it on first use.
func Context() *audio.Context {
	audioOnce.Do(func() {
		audioContext = audio.NewContext(SampleRate)
	})
	return audioContext
}

// LoadAudioPlayer creates a player for a wav file on disk. An empty path
// gives the synthesized collision tone.
func LoadAudioPlayer(path string) (*audio.Player, error) {
	ctx := Context()
	if path == "" {
		return ctx.NewPlayerFromBytes(Boing(ctx.SampleRate())), nil
	}

	b, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	reader := bytes.NewReader(b)
	if strings.EqualFold(filepath.Ext(path), ".wav") {
		stream, err := wav.DecodeWithSampleRate(ctx.SampleRate(), reader)
		if err != nil {
			return nil, fmt.Errorf("decode wav %q: %w", path, err)
		}
		return ctx.NewPlayer(stream)
	}

	// Anything else is taken as PCM in ebiten's native format.
	return ctx.NewPlayerFromBytes(b), nil
}

// Boing returns the collision tone as 16-bit little-endian stereo PCM.
func Boing(sampleRate int) []byte {
	return Sweep(boingStartHz, boingEndHz, boingSeconds, boingDecay, boingAmplitude, sampleRate)
}

// Sweep synthesizes a sine whose frequency moves linearly from startHz to
// endHz, shaped by exp(-decay*t).
func Sweep(startHz, endHz, seconds, decay, amplitude float64, sampleRate int) []byte {
	n := int(seconds * float64(sampleRate))
	if n <= 0 {
		return nil
	}
	out := make([]byte, n*4)
	phase := 0.0
	for i := 0; i < n; i++ {
		t := float64(i) / float64(sampleRate)
		freq := startHz + (endHz-startHz)*float64(i)/float64(n)
		v := amplitude * math.Exp(-decay*t) * math.Sin(phase)
		phase += 2 * math.Pi * freq / float64(sampleRate)

		s := uint16(int16(v * math.MaxInt16))
		binary.LittleEndian.PutUint16(out[i*4:], s)
		binary.LittleEndian.PutUint16(out[i*4+2:], s)
	}
	return out
}
