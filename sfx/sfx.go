// Package sfx synthesizes the boss clips with beep and renders them to the
// 16-bit little-endian stereo PCM that the game's audio players consume.
package sfx

import (
	"encoding/binary"
	"errors"
	"fmt"
	"math"
	"math/rand/v2"
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/effects"
	"github.com/milk9111/slimeboss/boss"
)

const SampleRate beep.SampleRate = 44100

var ErrUnknownClip = errors.New("sfx: unknown clip")

type Wave int

const (
	WaveSine Wave = iota
	WaveSquare
	WaveSaw
	WaveNoise
)

// sweep is an oscillator gliding linearly from one frequency to another.
type sweep struct {
	from, to float64
	wave     Wave
	rate     beep.SampleRate
	n, pos   int
	phase    float64
	rng      *rand.Rand
}

func Sweep(from, to float64, d time.Duration, wave Wave, rate beep.SampleRate) beep.Streamer {
	return &sweep{
		from: from,
		to:   to,
		wave: wave,
		rate: rate,
		n:    rate.N(d),
		rng:  rand.New(rand.NewPCG(1, uint64(from))),
	}
}

func (s *sweep) Stream(samples [][2]float64) (n int, ok bool) {
	for i := range samples {
		if s.pos >= s.n {
			return i, i > 0
		}
		var v float64
		switch s.wave {
		case WaveSine:
			v = math.Sin(2 * math.Pi * s.phase)
		case WaveSquare:
			v = 1
			if s.phase >= 0.5 {
				v = -1
			}
		case WaveSaw:
			v = 2 * (s.phase - 0.5)
		case WaveNoise:
			v = s.rng.Float64()*2 - 1
		}
		samples[i][0] = v
		samples[i][1] = v

		t := float64(s.pos) / float64(s.n)
		freq := s.from + (s.to-s.from)*t
		s.phase += freq / float64(s.rate)
		s.phase -= math.Floor(s.phase)
		s.pos++
	}
	return len(samples), true
}

func (s *sweep) Err() error { return nil }

// envelope fades a stream in over attack and out over release.
type envelope struct {
	streamer beep.Streamer
	pos      int
	attack   int
	release  int
	total    int
}

func Envelope(s beep.Streamer, total, attack, release time.Duration, rate beep.SampleRate) beep.Streamer {
	return &envelope{
		streamer: s,
		attack:   rate.N(attack),
		release:  rate.N(release),
		total:    rate.N(total),
	}
}

func (e *envelope) Stream(samples [][2]float64) (n int, ok bool) {
	n, ok = e.streamer.Stream(samples)
	for i := 0; i < n; i++ {
		if e.pos >= e.total {
			return i, i > 0
		}
		vol := 1.0
		if e.attack > 0 && e.pos < e.attack {
			vol = float64(e.pos) / float64(e.attack)
		}
		if e.release > 0 && e.pos >= e.total-e.release {
			vol = math.Max(float64(e.total-e.pos)/float64(e.release), 0)
		}
		samples[i][0] *= vol
		samples[i][1] *= vol
		e.pos++
	}
	return n, ok
}

func (e *envelope) Err() error { return e.streamer.Err() }

func volume(s beep.Streamer, v float64) beep.Streamer {
	if v <= 0 {
		return &effects.Volume{Streamer: s, Base: 2, Silent: true}
	}
	return &effects.Volume{Streamer: s, Base: 2, Volume: math.Log2(v)}
}

// tone is a shaped sweep.
func tone(from, to float64, d time.Duration, wave Wave, gain float64, rate beep.SampleRate) beep.Streamer {
	return volume(Envelope(Sweep(from, to, d, wave, rate), d, 5*time.Millisecond, d/3, rate), gain)
}

// Streamer builds a fresh stream for clip.
func Streamer(clip boss.Clip, rate beep.SampleRate) (beep.Streamer, error) {
	switch clip {
	case boss.ClipJump:
		return tone(180, 640, 180*time.Millisecond, WaveSquare, 0.35, rate), nil
	case boss.ClipLanding:
		d := 260 * time.Millisecond
		return beep.Mix(
			tone(110, 35, d, WaveSine, 0.8, rate),
			tone(0, 0, d, WaveNoise, 0.25, rate),
		), nil
	case boss.ClipStunned:
		d := 120 * time.Millisecond
		return beep.Seq(
			tone(520, 760, d, WaveSine, 0.4, rate),
			tone(760, 520, d, WaveSine, 0.4, rate),
			tone(520, 760, d, WaveSine, 0.4, rate),
			tone(760, 520, d, WaveSine, 0.4, rate),
		), nil
	case boss.ClipDeath:
		return beep.Seq(
			tone(420, 210, 300*time.Millisecond, WaveSaw, 0.5, rate),
			tone(210, 55, 650*time.Millisecond, WaveSaw, 0.5, rate),
		), nil
	}
	return nil, fmt.Errorf("%w: %q", ErrUnknownClip, clip)
}

// Render drains s into PCM bytes.
func Render(s beep.Streamer) []byte {
	var out []byte
	var buf [512][2]float64
	for {
		n, ok := s.Stream(buf[:])
		for i := 0; i < n; i++ {
			out = binary.LittleEndian.AppendUint16(out, uint16(toInt16(buf[i][0])))
			out = binary.LittleEndian.AppendUint16(out, uint16(toInt16(buf[i][1])))
		}
		if !ok || n == 0 {
			return out
		}
	}
}

func toInt16(v float64) int16 {
	v = math.Max(-1, math.Min(1, v))
	return int16(v * math.MaxInt16)
}

// Clip renders clip at rate.
func Clip(clip boss.Clip, rate beep.SampleRate) ([]byte, error) {
	s, err := Streamer(clip, rate)
	if err != nil {
		return nil, err
	}
	return Render(s), nil
}

// Bank renders every boss clip once.
func Bank(rate beep.SampleRate) (map[boss.Clip][]byte, error) {
	bank := make(map[boss.Clip][]byte, 4)
	for _, c := range []boss.Clip{boss.ClipJump, boss.ClipLanding, boss.ClipStunned, boss.ClipDeath} {
		pcm, err := Clip(c, rate)
		if err != nil {
			return nil, err
		}
		bank[c] = pcm
	}
	return bank, nil
}
