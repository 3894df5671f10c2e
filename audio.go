package main

import (
	"log"

	"github.com/hajimehoshi/ebiten/v2/audio"
	"github.com/milk9111/slimeboss/assets"
	"github.com/milk9111/slimeboss/boss"
	"github.com/milk9111/slimeboss/sfx"
)

// BossAudio is the boss's audio source backed by ebiten players.
type BossAudio struct {
	clips   map[boss.Clip][]byte
	volume  float64
	loop    *audio.Player
	oneShot []*audio.Player
}

func NewBossAudio(volume float64) (*BossAudio, error) {
	clips, err := sfx.Bank(sfx.SampleRate)
	if err != nil {
		return nil, err
	}
	return &BossAudio{clips: clips, volume: volume}, nil
}

func (a *BossAudio) PlayOneShot(clip boss.Clip) {
	pcm, ok := a.clips[clip]
	if !ok {
		return
	}
	a.prune()
	p := assets.NewPlayer(pcm)
	p.SetVolume(a.volume)
	p.Play()
	a.oneShot = append(a.oneShot, p)
}

func (a *BossAudio) PlayLooping(clip boss.Clip) {
	pcm, ok := a.clips[clip]
	if !ok {
		return
	}
	a.stopLoop()
	p, err := assets.NewLoopPlayer(pcm)
	if err != nil {
		log.Printf("audio: loop %s: %v", clip, err)
		return
	}
	p.SetVolume(a.volume)
	p.Play()
	a.loop = p
}

// Stop silences the looping clip and any one-shots still playing.
func (a *BossAudio) Stop() {
	a.stopLoop()
	for _, p := range a.oneShot {
		p.Pause()
	}
	a.oneShot = nil
}

func (a *BossAudio) stopLoop() {
	if a.loop == nil {
		return
	}
	a.loop.Pause()
	a.loop = nil
}

func (a *BossAudio) prune() {
	live := a.oneShot[:0]
	for _, p := range a.oneShot {
		if p.IsPlaying() {
			live = append(live, p)
		}
	}
	a.oneShot = live
}

// silentAudio is used with -mute.
type silentAudio struct{}

func (silentAudio) PlayOneShot(boss.Clip) {}
func (silentAudio) PlayLooping(boss.Clip) {}
func (silentAudio) Stop()                 {}
