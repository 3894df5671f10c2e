package system

import (
	"fmt"

	"github.com/go-gl/mathgl/mgl64"
	"github.com/milk9111/slimeboss/common"
	"github.com/milk9111/slimeboss/ecs"
	"github.com/milk9111/slimeboss/ecs/component"
)

// SwingTime is how long a player attack stays visible.
const SwingTime = 0.2

// PlayerSystem turns Input into player motion and attacks. Jump and Attack
// are consumed each step.
type PlayerSystem struct {
	dt float64
}

func NewPlayerSystem(dt float64) *PlayerSystem { return &PlayerSystem{dt: dt} }

func (s *PlayerSystem) Update(w *ecs.World) {
	if w == nil {
		return
	}
	kinematic := w.PhysicsWorld() == nil

	ecs.ForEach3(w,
		component.PlayerComponent.Kind(),
		component.InputComponent.Kind(),
		component.TransformComponent.Kind(),
		func(e ecs.Entity, pl *component.Player, in *component.Input, tr *component.Transform) {
			defer func() {
				in.Jump = false
				in.Attack = false
			}()

			if h, ok := ecs.Get(w, e, component.HealthComponent.Kind()); ok && h.IsEmpty() {
				pl.Velocity = mgl64.Vec3{}
				return
			}

			dir := mgl64.Vec3{in.MoveX, 0, in.MoveZ}
			if dir.Len() > 1 {
				dir = dir.Normalize()
			}
			planar := common.MoveTowards(common.Flatten(pl.Velocity), dir.Mul(pl.MoveSpeed), pl.Acceleration*s.dt)
			pl.Velocity[0] = planar.X()
			pl.Velocity[2] = planar.Z()
			if dir.Len() > 1e-6 {
				tr.Rotation = common.YawRotation(common.YawOf(dir))
			}

			if in.Jump && pl.Grounded {
				pl.Velocity[1] = pl.JumpSpeed
				pl.Grounded = false
			}
			if !pl.Grounded {
				pl.Velocity[1] -= pl.Gravity * s.dt
			}
			tr.Position[1] += pl.Velocity[1] * s.dt
			if tr.Position[1] <= 0 {
				tr.Position[1] = 0
				pl.Velocity[1] = 0
				pl.Grounded = true
			}
			if kinematic {
				tr.Position[0] += pl.Velocity[0] * s.dt
				tr.Position[2] += pl.Velocity[2] * s.dt
			}

			pl.Cooldown = max(pl.Cooldown-s.dt, 0)
			pl.Swing = max(pl.Swing-s.dt, 0)
			if in.Attack && pl.Cooldown <= 0 {
				pl.Cooldown = pl.AttackCooldown
				pl.Swing = SwingTime
				strike(w, tr.Position, pl)
			}
		})
}

// strike damages every boss within reach of origin.
func strike(w *ecs.World, origin mgl64.Vec3, pl *component.Player) {
	ecs.ForEach(w, component.BossComponent.Kind(), func(_ ecs.Entity, b *component.Boss) {
		if b.Agent == nil {
			return
		}
		if common.HorizontalDistance(origin, b.Agent.Position()) > pl.AttackRange+b.Radius {
			return
		}
		b.Agent.ApplyDamage(pl.AttackDamage, origin)
	})
}

// PlayerSpawn describes a player entity.
type PlayerSpawn struct {
	Player       component.Player
	MaxHP        int
	RecoveryTime float64
	Position     mgl64.Vec3
}

func SpawnPlayer(w *ecs.World, cfg PlayerSpawn) (ecs.Entity, error) {
	if w == nil {
		return 0, fmt.Errorf("spawn player: nil world")
	}
	e := ecs.CreateEntity(w)
	pl := cfg.Player
	pl.Grounded = cfg.Position.Y() <= 0
	if pl.Radius <= 0 {
		pl.Radius = 0.5
	}

	if err := ecs.Add(w, e, component.PlayerComponent.Kind(), &pl); err != nil {
		return 0, err
	}
	if err := ecs.Add(w, e, component.PlayerTagComponent.Kind(), &component.PlayerTag{}); err != nil {
		return 0, err
	}
	if err := ecs.Add(w, e, component.InputComponent.Kind(), &component.Input{}); err != nil {
		return 0, err
	}
	if err := ecs.Add(w, e, component.HealthComponent.Kind(), component.NewHealth(cfg.MaxHP, cfg.RecoveryTime)); err != nil {
		return 0, err
	}
	if err := ecs.Add(w, e, component.TransformComponent.Kind(), &component.Transform{
		Position: cfg.Position,
		Rotation: mgl64.QuatIdent(),
		Scale:    pl.Radius,
	}); err != nil {
		return 0, err
	}
	return e, nil
}
