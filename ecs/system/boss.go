package system

import (
	"fmt"
	"log"

	"github.com/go-gl/mathgl/mgl64"
	"github.com/milk9111/slimeboss/boss"
	"github.com/milk9111/slimeboss/ecs"
	"github.com/milk9111/slimeboss/ecs/component"
)

// BossSystem ticks every boss agent against the players in the world. With
// a physics world attached the planar motion is left to PhysicsSystem.
type BossSystem struct {
	dt float64
}

func NewBossSystem(dt float64) *BossSystem { return &BossSystem{dt: dt} }

func (s *BossSystem) Update(w *ecs.World) {
	if w == nil {
		return
	}

	candidates := PlayerCandidates(w)
	kinematic := w.PhysicsWorld() == nil

	ecs.ForEach2(w, component.BossComponent.Kind(), component.TransformComponent.Kind(), func(e ecs.Entity, b *component.Boss, tr *component.Transform) {
		if b.Agent == nil {
			return
		}
		b.Agent.Tick(s.dt, candidates)
		if kinematic {
			b.Agent.Integrate(s.dt)
		}
		syncBossTransform(tr, b.Agent)
	})
}

func syncBossTransform(tr *component.Transform, a *boss.Agent) {
	p := a.Pose()
	tr.Position = p.Position
	tr.Rotation = p.Rotation
}

// BossSpawn describes a boss entity.
type BossSpawn struct {
	Name         string
	Stats        boss.Stats
	MaxHP        int
	RecoveryTime float64
	Position     mgl64.Vec3
	Radius       float64

	// Audio and Effects default to silence and world-spawned effects.
	Audio   boss.Audio
	Effects boss.Effects
}

// SpawnBoss creates a boss entity and wires its agent's events into the
// world event queue.
func SpawnBoss(w *ecs.World, cfg BossSpawn) (ecs.Entity, *boss.Agent, error) {
	if w == nil {
		return 0, nil, fmt.Errorf("spawn boss: nil world")
	}
	if cfg.Name == "" {
		cfg.Name = "boss"
	}

	e := ecs.CreateEntity(w)
	hp := component.NewHealth(cfg.MaxHP, cfg.RecoveryTime)
	effects := cfg.Effects
	if effects == nil {
		fx := NewEffects(w)
		fx.AttachTo(e)
		effects = fx
	}

	name := cfg.Name
	events := boss.Events{
		OnPhaseChanged: func(from, to boss.Phase) {
			log.Printf("boss: %s phase %s -> %s", name, from, to)
			w.Events().Push(ecs.Event{Type: ecs.EventBossPhase, Data: ecs.PhaseChange{Entity: e, From: from.String(), To: to.String()}})
		},
		OnTargetSpotted: func(boss.Target) {
			log.Printf("boss: %s spotted a target", name)
			w.Events().Push(ecs.Event{Type: ecs.EventBossSpotted, Data: e})
		},
		OnTargetEscaped: func(boss.Target) {
			log.Printf("boss: %s lost its target", name)
			w.Events().Push(ecs.Event{Type: ecs.EventBossEscaped, Data: e})
		},
		OnLanded: func(jump int) {
			w.Events().Push(ecs.Event{Type: ecs.EventBossLanded, Data: jump})
		},
		OnDamage: func(amount int, _ mgl64.Vec3) {
			w.Events().Push(ecs.Event{Type: ecs.EventBossDamaged, Data: amount})
		},
		OnDefeated: func() {
			log.Printf("boss: %s defeated", name)
			w.Events().Push(ecs.Event{Type: ecs.EventBossDefeated, Data: e})
		},
	}

	agent, err := boss.New(boss.Config{
		Stats:   cfg.Stats,
		Health:  hp,
		Pose:    boss.Pose{Position: cfg.Position, Rotation: mgl64.QuatIdent()},
		Effects: effects,
		Audio:   cfg.Audio,
		Events:  events,
	})
	if err != nil {
		ecs.DestroyEntity(w, e)
		return 0, nil, fmt.Errorf("spawn boss %s: %w", name, err)
	}

	radius := cfg.Radius
	if radius <= 0 {
		radius = 1
	}
	if err := ecs.Add(w, e, component.BossComponent.Kind(), &component.Boss{Name: name, Agent: agent, Radius: radius}); err != nil {
		return 0, nil, err
	}
	if err := ecs.Add(w, e, component.BossTagComponent.Kind(), &component.BossTag{}); err != nil {
		return 0, nil, err
	}
	if err := ecs.Add(w, e, component.HealthComponent.Kind(), hp); err != nil {
		return 0, nil, err
	}
	if err := ecs.Add(w, e, component.TransformComponent.Kind(), &component.Transform{
		Position: cfg.Position,
		Rotation: mgl64.QuatIdent(),
		Scale:    radius,
	}); err != nil {
		return 0, nil, err
	}
	return e, agent, nil
}
