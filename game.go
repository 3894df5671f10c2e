package main

import (
	"log"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/milk9111/slimeboss/boss"
	"github.com/milk9111/slimeboss/ecs/system"
	"github.com/milk9111/slimeboss/prefabs"
	"github.com/milk9111/slimeboss/record"
)

const fixedStep = 1.0 / 60

type options struct {
	physics bool
	watch   bool
	mute    bool
	volume  float64
	appName string
}

type Game struct {
	opts     options
	enc      *system.Encounter
	input    *InputSystem
	audio    boss.Audio
	renderer *Renderer
	watcher  *prefabs.Watcher
	records  *record.Store
	tracker  *record.Tracker
	paused   bool
}

func NewGame(opts options) (*Game, error) {
	g := &Game{
		opts:    opts,
		input:   NewInputSystem(),
		audio:   silentAudio{},
		records: record.Open(opts.appName),
	}

	if !opts.mute {
		a, err := NewBossAudio(opts.volume)
		if err != nil {
			log.Printf("audio: %v (muted)", err)
		} else {
			g.audio = a
		}
	}

	if err := g.restart(); err != nil {
		return nil, err
	}
	g.renderer = NewRenderer(g.enc.Arena)

	if opts.watch {
		w, err := prefabs.NewDefaultWatcher()
		if err != nil {
			log.Printf("prefabs: hot reload disabled: %v", err)
		} else {
			g.watcher = w
		}
	}
	return g, nil
}

func (g *Game) restart() error {
	g.audio.Stop()
	enc, err := system.NewEncounter(fixedStep, system.EncounterOptions{Audio: g.audio, Physics: g.opts.physics})
	if err != nil {
		return err
	}
	g.tracker = record.NewTracker(g.records, fixedStep)
	enc.Scheduler.Add(g.tracker)
	g.enc = enc
	g.paused = false
	return nil
}

func (g *Game) Update() error {
	if inpututil.IsKeyJustPressed(ebiten.KeyEscape) {
		return ebiten.Termination
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyP) {
		g.paused = !g.paused
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyR) {
		if err := g.restart(); err != nil {
			log.Printf("restart: %v", err)
		}
	}
	g.drainWatcher()

	if g.paused {
		return nil
	}
	g.input.Update(g.enc.World)
	g.enc.Update()
	return nil
}

func (g *Game) drainWatcher() {
	if g.watcher == nil {
		return
	}
	for {
		select {
		case ch := <-g.watcher.Events:
			if err := g.enc.HandleChange(ch); err != nil {
				log.Printf("prefabs: reload %s: %v", ch.Name, err)
				continue
			}
			log.Printf("prefabs: reloaded %s", ch.Name)
		case err := <-g.watcher.Errors:
			log.Printf("prefabs: watch: %v", err)
		default:
			return
		}
	}
}

func (g *Game) Draw(screen *ebiten.Image) {
	g.renderer.Draw(screen, g.enc, g.records.Summary(), g.paused)
}

func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	a := g.enc.Arena
	if a.ScreenWidth > 0 && a.ScreenHeight > 0 {
		return a.ScreenWidth, a.ScreenHeight
	}
	return outsideWidth, outsideHeight
}

func (g *Game) Close() {
	g.audio.Stop()
	if g.watcher != nil {
		_ = g.watcher.Close()
	}
}
