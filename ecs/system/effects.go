package system

import (
	"math"

	"github.com/go-gl/mathgl/mgl64"
	"github.com/google/uuid"
	"github.com/milk9111/slimeboss/boss"
	"github.com/milk9111/slimeboss/ecs"
	"github.com/milk9111/slimeboss/ecs/component"
)

const (
	LandingEffectLifetime = 2.0
	LandingEffectScale    = 4.0
	StunOrbitRadius       = 2.0
	StunOrbitSpeed        = 2.0 // radians per second
)

// Effects spawns boss effects as entities in a world. It implements
// boss.Effects.
type Effects struct {
	w       *ecs.World
	handles map[uuid.UUID]ecs.Entity
	owner   ecs.Entity
}

// effectFollow keeps a stunned effect's anchor at a fixed offset from its
// owner.
type effectFollow struct {
	Owner  ecs.Entity
	Offset mgl64.Vec3
}

var effectFollowComponent = component.NewComponent[effectFollow]()

var _ boss.Effects = (*Effects)(nil)

func NewEffects(w *ecs.World) *Effects {
	return &Effects{w: w, handles: make(map[uuid.UUID]ecs.Entity)}
}

// AttachTo makes later stunned effects track owner as it moves.
func (fx *Effects) AttachTo(owner ecs.Entity) {
	if fx != nil {
		fx.owner = owner
	}
}

func (fx *Effects) SpawnLandingEffect(position mgl64.Vec3) {
	if fx == nil || fx.w == nil {
		return
	}
	fx.spawn(component.Effect{
		Handle:   uuid.New(),
		Kind:     component.EffectLanding,
		Anchor:   position,
		Scale:    LandingEffectScale,
		Lifetime: LandingEffectLifetime,
	}, position)
}

// SpawnStunnedEffect starts an effect circling above position. It removes
// itself after duration seconds unless destroyed earlier.
func (fx *Effects) SpawnStunnedEffect(position mgl64.Vec3, duration float64) boss.EffectHandle {
	if fx == nil || fx.w == nil {
		return uuid.Nil
	}
	fx.prune()
	handle := uuid.New()
	e := fx.spawn(component.Effect{
		Handle:   handle,
		Kind:     component.EffectStunned,
		Anchor:   position,
		Scale:    1,
		Lifetime: duration,
	}, position.Add(mgl64.Vec3{StunOrbitRadius, 0, 0}))
	fx.handles[handle] = e
	if at, ok := ownerPosition(fx.w, fx.owner); ok {
		_ = ecs.Add(fx.w, e, effectFollowComponent.Kind(), &effectFollow{Owner: fx.owner, Offset: position.Sub(at)})
	}
	return handle
}

func (fx *Effects) DestroyEffect(handle boss.EffectHandle) {
	if fx == nil || handle == uuid.Nil {
		return
	}
	e, ok := fx.handles[handle]
	if !ok {
		return
	}
	delete(fx.handles, handle)
	ecs.DestroyEntity(fx.w, e)
}

// Live reports whether the effect behind handle still exists.
func (fx *Effects) Live(handle boss.EffectHandle) bool {
	if fx == nil {
		return false
	}
	e, ok := fx.handles[handle]
	if ok && !ecs.IsAlive(fx.w, e) {
		delete(fx.handles, handle)
		return false
	}
	return ok
}

// prune forgets handles whose effects already expired.
func (fx *Effects) prune() {
	for h, e := range fx.handles {
		if !ecs.IsAlive(fx.w, e) {
			delete(fx.handles, h)
		}
	}
}

// Tracked is the number of stunned effects still held by handle.
func (fx *Effects) Tracked() int {
	if fx == nil {
		return 0
	}
	return len(fx.handles)
}

func ownerPosition(w *ecs.World, owner ecs.Entity) (mgl64.Vec3, bool) {
	if !owner.Valid() || !ecs.IsAlive(w, owner) {
		return mgl64.Vec3{}, false
	}
	if b, ok := ecs.Get(w, owner, component.BossComponent.Kind()); ok && b.Agent != nil {
		return b.Agent.Position(), true
	}
	if tr, ok := ecs.Get(w, owner, component.TransformComponent.Kind()); ok {
		return tr.Position, true
	}
	return mgl64.Vec3{}, false
}

func (fx *Effects) spawn(effect component.Effect, at mgl64.Vec3) ecs.Entity {
	e := ecs.CreateEntity(fx.w)
	_ = ecs.Add(fx.w, e, component.TransformComponent.Kind(), &component.Transform{
		Position: at,
		Rotation: mgl64.QuatIdent(),
		Scale:    effect.Scale,
	})
	_ = ecs.Add(fx.w, e, component.EffectComponent.Kind(), &effect)
	if effect.Lifetime > 0 {
		_ = ecs.Add(fx.w, e, component.TTLComponent.Kind(), &component.TTL{Seconds: effect.Lifetime})
	}
	return e
}

// EffectsSystem animates effects: stunned effects orbit an anchor that
// follows their owner.
type EffectsSystem struct {
	dt float64
}

func NewEffectsSystem(dt float64) *EffectsSystem {
	return &EffectsSystem{dt: dt}
}

func (s *EffectsSystem) Update(w *ecs.World) {
	if w == nil {
		return
	}

	ecs.ForEach2(w, component.EffectComponent.Kind(), component.TransformComponent.Kind(), func(e ecs.Entity, fx *component.Effect, tr *component.Transform) {
		fx.Age += s.dt
		switch fx.Kind {
		case component.EffectLanding:
			tr.Scale = fx.Scale
		case component.EffectStunned:
			if f, ok := ecs.Get(w, e, effectFollowComponent.Kind()); ok {
				if at, ok := ownerPosition(w, f.Owner); ok {
					fx.Anchor = at.Add(f.Offset)
				}
			}
			fx.Angle = math.Mod(fx.Angle+StunOrbitSpeed*s.dt, 2*math.Pi)
			tr.Position = fx.Anchor.Add(mgl64.Vec3{
				math.Cos(fx.Angle) * StunOrbitRadius,
				0,
				math.Sin(fx.Angle) * StunOrbitRadius,
			})
		}
	})
}
