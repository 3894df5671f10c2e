package main

import (
	"fmt"
	"image/color"
	"math"

	"github.com/go-gl/mathgl/mgl64"
	"github.com/hajimehoshi/ebiten/v2"
	ebtext "github.com/hajimehoshi/ebiten/v2/text/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"github.com/milk9111/slimeboss/boss"
	"github.com/milk9111/slimeboss/common"
	"github.com/milk9111/slimeboss/ecs"
	"github.com/milk9111/slimeboss/ecs/component"
	"github.com/milk9111/slimeboss/ecs/system"
	"github.com/milk9111/slimeboss/prefabs"
	"github.com/milk9111/slimeboss/record"
	"golang.org/x/image/font/basicfont"
)

// heightLift is how far up the screen one meter of height draws.
const heightLift = 0.5

// Renderer draws the arena top-down with height shown as a lift above the
// entity's shadow.
type Renderer struct {
	arena  *prefabs.ArenaSpec
	face   ebtext.Face
	colors struct {
		floor, wall, boss, player, effect, shadow, text color.Color
	}
}

func NewRenderer(arena *prefabs.ArenaSpec) *Renderer {
	r := &Renderer{arena: arena, face: ebtext.NewGoXFace(basicfont.Face7x13)}
	c := arena.Colors
	r.colors.floor = c.Floor.Or(color.NRGBA{R: 0x2b, G: 0x2f, B: 0x3a, A: 0xff})
	r.colors.wall = c.Wall.Or(color.NRGBA{R: 0x58, G: 0x5f, B: 0x70, A: 0xff})
	r.colors.boss = c.Boss.Or(color.NRGBA{R: 0x6c, G: 0xc2, B: 0x4a, A: 0xff})
	r.colors.player = c.Player.Or(color.NRGBA{R: 0xe8, G: 0xd3, B: 0x6b, A: 0xff})
	r.colors.effect = c.Effect.Or(color.White)
	r.colors.shadow = c.Shadow.Or(color.NRGBA{A: 0x60})
	r.colors.text = c.HUDText.Or(color.White)
	return r
}

func (r *Renderer) toScreen(screen *ebiten.Image, p mgl64.Vec3) (float32, float32) {
	b := screen.Bounds()
	ppm := r.arena.PixelsPerM
	x := float64(b.Dx())/2 + p.X()*ppm
	y := float64(b.Dy())/2 + (p.Z()-p.Y()*heightLift)*ppm
	return float32(x), float32(y)
}

func (r *Renderer) Draw(screen *ebiten.Image, enc *system.Encounter, summary record.Summary, paused bool) {
	screen.Fill(color.Black)
	r.drawFloor(screen)

	w := enc.World
	ppm := float32(r.arena.PixelsPerM)

	ecs.ForEach2(w, component.PlayerComponent.Kind(), component.TransformComponent.Kind(), func(e ecs.Entity, pl *component.Player, tr *component.Transform) {
		r.drawShadow(screen, tr.Position, pl.Radius)
		x, y := r.toScreen(screen, tr.Position)
		clr := r.colors.player
		if h, ok := ecs.Get(w, e, component.HealthComponent.Kind()); ok && h.Recovering() {
			clr = color.NRGBA{R: 0xff, G: 0x60, B: 0x60, A: 0xff}
		}
		vector.FillCircle(screen, x, y, float32(pl.Radius)*ppm, clr, true)
		if pl.Swing > 0 {
			vector.StrokeCircle(screen, x, y, float32(pl.Radius+pl.AttackRange)*ppm, 2, r.colors.effect, true)
		}
	})

	ecs.ForEach2(w, component.BossComponent.Kind(), component.TransformComponent.Kind(), func(_ ecs.Entity, b *component.Boss, tr *component.Transform) {
		r.drawShadow(screen, tr.Position, b.Radius)
		x, y := r.toScreen(screen, tr.Position)
		radius := float32(b.Radius) * ppm
		clr := r.colors.boss
		if b.Agent != nil && b.Agent.Phase() == boss.PhaseVulnerable {
			clr = color.NRGBA{R: 0xa8, G: 0xe0, B: 0x90, A: 0xff}
		}
		if b.Agent != nil && b.Agent.Defeated() {
			clr = color.NRGBA{R: 0x55, G: 0x55, B: 0x55, A: 0xff}
		}
		vector.FillCircle(screen, x, y, radius, clr, true)

		fwd := common.Flatten(boss.Pose{Rotation: tr.Rotation}.Forward())
		vector.StrokeLine(screen, x, y, x+float32(fwd.X())*radius, y+float32(fwd.Z())*radius, 3, color.Black, true)
	})

	ecs.ForEach2(w, component.EffectComponent.Kind(), component.TransformComponent.Kind(), func(_ ecs.Entity, fx *component.Effect, tr *component.Transform) {
		x, y := r.toScreen(screen, tr.Position)
		switch fx.Kind {
		case component.EffectLanding:
			alpha := uint8(255 * (1 - fx.Progress()))
			c := color.NRGBAModel.Convert(r.colors.effect).(color.NRGBA)
			c.A = alpha
			vector.StrokeCircle(screen, x, y, float32(fx.Scale)*ppm, 2, c, true)
		case component.EffectStunned:
			vector.FillCircle(screen, x, y, 0.3*ppm, color.NRGBA{R: 0xff, G: 0xee, B: 0x55, A: 0xff}, true)
		}
	})

	r.drawHUD(screen, enc, summary, paused)
}

func (r *Renderer) drawFloor(screen *ebiten.Image) {
	hw, hd := r.arena.Width/2, r.arena.Depth/2
	x0, y0 := r.toScreen(screen, mgl64.Vec3{-hw, 0, -hd})
	x1, y1 := r.toScreen(screen, mgl64.Vec3{hw, 0, hd})
	vector.FillRect(screen, x0, y0, x1-x0, y1-y0, r.colors.floor, false)
	vector.StrokeRect(screen, x0, y0, x1-x0, y1-y0, 4, r.colors.wall, false)
}

func (r *Renderer) drawShadow(screen *ebiten.Image, p mgl64.Vec3, radius float64) {
	x, y := r.toScreen(screen, mgl64.Vec3{p.X(), 0, p.Z()})
	vector.FillCircle(screen, x, y, float32(radius*r.arena.PixelsPerM), r.colors.shadow, true)
}

func (r *Renderer) drawHUD(screen *ebiten.Image, enc *system.Encounter, summary record.Summary, paused bool) {
	if h, ok := ecs.Get(enc.World, enc.Boss, component.HealthComponent.Kind()); ok {
		r.bar(screen, 20, 20, 300, 12, h.Fraction(), r.colors.boss)
		r.text(screen, 20, 36, fmt.Sprintf("slime  %d/%d  %s", h.Current(), h.MaxHP, phaseLabel(enc.Agent)))
	}

	if h, ok := ecs.Get(enc.World, enc.Player, component.HealthComponent.Kind()); ok {
		y := float64(screen.Bounds().Dy() - 40)
		r.bar(screen, 20, y, 160, 10, h.Fraction(), r.colors.player)
		r.text(screen, 20, y+14, fmt.Sprintf("you  %d/%d", h.Current(), h.MaxHP))
	}

	rec := fmt.Sprintf("wins %d  losses %d", summary.Victories, summary.Defeats)
	if summary.FastestVictory > 0 {
		rec += fmt.Sprintf("  best %.1fs", summary.FastestVictory)
	}
	r.textRight(screen, 20, rec)

	if text, ok := system.CurrentBanner(enc.World); ok {
		r.textCentered(screen, float64(screen.Bounds().Dy())/4, text)
	}
	if paused {
		r.textCentered(screen, float64(screen.Bounds().Dy())/2, "paused  (P to resume, R to restart)")
	}
}

func phaseLabel(a *boss.Agent) string {
	if a.Defeated() {
		return "defeated"
	}
	if a.Phase() == boss.PhaseAttack {
		return fmt.Sprintf("%s %d/%d", a.Phase(), a.JumpCount(), boss.JumpsPerAttack)
	}
	return a.Phase().String()
}

func (r *Renderer) bar(screen *ebiten.Image, x, y, w, h, fraction float64, clr color.Color) {
	fraction = math.Max(0, math.Min(1, fraction))
	vector.FillRect(screen, float32(x), float32(y), float32(w), float32(h), color.NRGBA{A: 0xa0}, false)
	vector.FillRect(screen, float32(x), float32(y), float32(w*fraction), float32(h), clr, false)
	vector.StrokeRect(screen, float32(x), float32(y), float32(w), float32(h), 1, r.colors.text, false)
}

func (r *Renderer) text(screen *ebiten.Image, x, y float64, s string) {
	op := &ebtext.DrawOptions{}
	op.GeoM.Translate(x, y)
	op.ColorScale.ScaleWithColor(r.colors.text)
	ebtext.Draw(screen, s, r.face, op)
}

func (r *Renderer) textCentered(screen *ebiten.Image, y float64, s string) {
	w, _ := ebtext.Measure(s, r.face, 0)
	r.text(screen, (float64(screen.Bounds().Dx())-w)/2, y, s)
}

func (r *Renderer) textRight(screen *ebiten.Image, y float64, s string) {
	w, _ := ebtext.Measure(s, r.face, 0)
	r.text(screen, float64(screen.Bounds().Dx())-w-20, y, s)
}
