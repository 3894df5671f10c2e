// Package assets owns the shared audio context and turns synthesized PCM
// into ebiten players.
package assets

import (
	"bytes"
	"sync"

	"github.com/hajimehoshi/ebiten/v2/audio"
	"github.com/milk9111/slimeboss/sfx"
)

var (
	audioOnce    sync.Once
	audioContext *audio.Context
)

// AudioContext returns the process-wide context. ebiten allows only one.
func AudioContext() *audio.Context {
	audioOnce.Do(func() {
		audioContext = audio.NewContext(int(sfx.SampleRate))
	})
	return audioContext
}

// NewPlayer plays pcm once.
func NewPlayer(pcm []byte) *audio.Player {
	return AudioContext().NewPlayerFromBytes(pcm)
}

// NewLoopPlayer plays pcm until paused.
func NewLoopPlayer(pcm []byte) (*audio.Player, error) {
	loop := audio.NewInfiniteLoop(bytes.NewReader(pcm), int64(len(pcm)))
	return AudioContext().NewPlayer(loop)
}
