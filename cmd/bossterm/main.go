// Command bossterm runs the slime encounter in a terminal.
package main

import (
	"flag"
	"fmt"
	"io"
	"log"
	"os"
	"time"

	"github.com/gdamore/tcell/v2"
	"github.com/milk9111/slimeboss/boss"
	"github.com/milk9111/slimeboss/ecs"
	"github.com/milk9111/slimeboss/ecs/component"
	"github.com/milk9111/slimeboss/ecs/system"
)

const (
	fixedStep = 1.0 / 30
	// Terminals only report presses, so a key keeps the stick held this long.
	holdFrames = 6
)

// beepAudio plays every boss clip as a terminal bell.
type beepAudio struct{ screen tcell.Screen }

func (a beepAudio) PlayOneShot(boss.Clip) { _ = a.screen.Beep() }
func (a beepAudio) PlayLooping(boss.Clip) {}
func (a beepAudio) Stop()                 {}

type stick struct {
	x, z   float64
	frames int
	jump   bool
	attack bool
}

func (s *stick) press(x, z float64) {
	s.x, s.z, s.frames = x, z, holdFrames
}

func (s *stick) apply(w *ecs.World, player ecs.Entity) {
	in, ok := ecs.Get(w, player, component.InputComponent.Kind())
	if !ok {
		return
	}
	if s.frames > 0 {
		s.frames--
		in.MoveX, in.MoveZ = s.x, s.z
	} else {
		in.MoveX, in.MoveZ = 0, 0
	}
	in.Jump = s.jump
	in.Attack = s.attack
	s.jump, s.attack = false, false
}

func main() {
	physics := flag.Bool("physics", false, "move actors on the Chipmunk floor")
	bell := flag.Bool("bell", true, "ring the terminal bell on boss sounds")
	flag.Parse()

	screen, err := tcell.NewScreen()
	if err != nil {
		log.Fatal(err)
	}
	if err := screen.Init(); err != nil {
		log.Fatal(err)
	}
	// Library logging would scribble over the screen.
	log.SetOutput(io.Discard)

	var audio boss.Audio
	if *bell {
		audio = beepAudio{screen: screen}
	}
	enc, err := system.NewEncounter(fixedStep, system.EncounterOptions{Audio: audio, Physics: *physics})
	if err != nil {
		screen.Fini()
		log.SetOutput(os.Stderr)
		log.Fatal(err)
	}

	events := make(chan tcell.Event, 32)
	go func() {
		for {
			ev := screen.PollEvent()
			if ev == nil {
				close(events)
				return
			}
			events <- ev
		}
	}()

	ticker := time.NewTicker(time.Second / 30)
	defer ticker.Stop()
	defer screen.Fini()

	var in stick
	paused := false
	for {
		select {
		case ev, ok := <-events:
			if !ok {
				return
			}
			switch ev := ev.(type) {
			case *tcell.EventResize:
				screen.Sync()
			case *tcell.EventKey:
				switch ev.Key() {
				case tcell.KeyEscape, tcell.KeyCtrlC:
					return
				case tcell.KeyUp:
					in.press(0, -1)
				case tcell.KeyDown:
					in.press(0, 1)
				case tcell.KeyLeft:
					in.press(-1, 0)
				case tcell.KeyRight:
					in.press(1, 0)
				}
				switch ev.Rune() {
				case 'w', 'W':
					in.press(0, -1)
				case 's', 'S':
					in.press(0, 1)
				case 'a', 'A':
					in.press(-1, 0)
				case 'd', 'D':
					in.press(1, 0)
				case ' ':
					in.jump = true
				case 'j', 'J':
					in.attack = true
				case 'p', 'P':
					paused = !paused
				case 'q', 'Q':
					return
				}
			}
		case <-ticker.C:
			if !paused {
				in.apply(enc.World, enc.Player)
				enc.Update()
			}
			draw(screen, enc, paused)
		}
	}
}

func draw(screen tcell.Screen, enc *system.Encounter, paused bool) {
	screen.Clear()
	sw, sh := screen.Size()
	hw, hd := enc.Arena.Width/2, enc.Arena.Depth/2

	// One cell is two metres wide and four metres deep, leaving room for the HUD.
	cols := int(enc.Arena.Width/2) + 2
	rows := int(enc.Arena.Depth/4) + 2
	ox, oy := (sw-cols)/2, 2
	if ox < 0 {
		ox = 0
	}

	wall := tcell.StyleDefault.Foreground(tcell.ColorGray)
	for x := 0; x < cols; x++ {
		screen.SetContent(ox+x, oy, '-', nil, wall)
		screen.SetContent(ox+x, oy+rows-1, '-', nil, wall)
	}
	for y := 1; y < rows-1; y++ {
		screen.SetContent(ox, oy+y, '|', nil, wall)
		screen.SetContent(ox+cols-1, oy+y, '|', nil, wall)
	}

	cell := func(x, z float64) (int, int) {
		cx := 1 + int((x+hw)/2)
		cz := 1 + int((z+hd)/4)
		if cx > cols-2 {
			cx = cols - 2
		}
		if cz > rows-2 {
			cz = rows - 2
		}
		return ox + cx, oy + cz
	}

	ecs.ForEach2(enc.World, component.EffectComponent.Kind(), component.TransformComponent.Kind(), func(_ ecs.Entity, fx *component.Effect, tr *component.Transform) {
		x, y := cell(tr.Position.X(), tr.Position.Z())
		r := '*'
		if fx.Kind == component.EffectLanding {
			r = 'o'
		}
		screen.SetContent(x, y, r, nil, tcell.StyleDefault.Foreground(tcell.ColorYellow))
	})

	if enc.Agent != nil {
		p := enc.Agent.Position()
		x, y := cell(p.X(), p.Z())
		style := tcell.StyleDefault.Foreground(tcell.ColorGreen).Bold(true)
		r := 'S'
		switch {
		case enc.Agent.Defeated():
			style = tcell.StyleDefault.Foreground(tcell.ColorGray)
			r = 'x'
		case enc.Agent.Phase() == boss.PhaseVulnerable:
			style = tcell.StyleDefault.Foreground(tcell.ColorAqua).Bold(true)
		case p.Y() > 0.5:
			r = '^'
		}
		screen.SetContent(x, y, r, nil, style)
	}

	if tr, ok := ecs.Get(enc.World, enc.Player, component.TransformComponent.Kind()); ok {
		x, y := cell(tr.Position.X(), tr.Position.Z())
		style := tcell.StyleDefault.Foreground(tcell.ColorRed).Bold(true)
		if pl, ok := ecs.Get(enc.World, enc.Player, component.PlayerComponent.Kind()); ok && pl.Swing > 0 {
			style = style.Reverse(true)
		}
		screen.SetContent(x, y, '@', nil, style)
	}

	putText(screen, 0, 0, hud(enc), tcell.StyleDefault)
	if text, ok := system.CurrentBanner(enc.World); ok {
		putText(screen, (sw-len(text))/2, oy+rows+1, text, tcell.StyleDefault.Bold(true))
	}
	if paused {
		putText(screen, (sw-6)/2, oy+rows/2, "PAUSED", tcell.StyleDefault.Reverse(true))
	}
	if sh > oy+rows+3 {
		putText(screen, 0, oy+rows+3, "wasd/arrows move  space jump  j attack  p pause  q quit", tcell.StyleDefault.Foreground(tcell.ColorGray))
	}
	screen.Show()
}

func hud(enc *system.Encounter) string {
	bossHP, playerHP := 0, 0
	if h, ok := ecs.Get(enc.World, enc.Boss, component.HealthComponent.Kind()); ok {
		bossHP = h.Current()
	}
	if h, ok := ecs.Get(enc.World, enc.Player, component.HealthComponent.Kind()); ok {
		playerHP = h.Current()
	}
	phase := "-"
	if enc.Agent != nil {
		phase = enc.Agent.Phase().String()
	}
	return fmt.Sprintf("slime %2d  [%s]   you %d", bossHP, phase, playerHP)
}

func putText(screen tcell.Screen, x, y int, s string, st tcell.Style) {
	for i, r := range s {
		screen.SetContent(x+i, y, r, nil, st)
	}
}
