package system

import (
	"github.com/milk9111/slimeboss/ecs"
	"github.com/milk9111/slimeboss/ecs/component"
)

// PhysicsSystem hands the floor plane to Chipmunk. Bosses whose core owns
// the pose (movement disabled) are written to their bodies as kinematic
// positions and never read back; everything else is integrated by the space.
// Boss/player overlaps become contact attacks.
type PhysicsSystem struct {
	dt float64
}

func NewPhysicsSystem(dt float64) *PhysicsSystem { return &PhysicsSystem{dt: dt} }

func (s *PhysicsSystem) Update(w *ecs.World) {
	if w == nil {
		return
	}
	pw := w.PhysicsWorld()
	if pw == nil {
		return
	}

	ecs.ForEach(w, component.BossComponent.Kind(), func(e ecs.Entity, b *component.Boss) {
		if b.Agent == nil {
			return
		}
		if !b.Agent.ColliderEnabled() {
			if pw.HasBody(e) {
				pw.RemoveBody(e)
				ecs.Remove(w, e, component.PhysicsBodyComponent.Kind())
			}
			return
		}
		pos := b.Agent.Position()
		s.ensureBody(w, e, pos.X(), pos.Z(), b.Radius, ecs.BodyBoss)
		vx, vz := 0.0, 0.0
		if b.Agent.MovementEnabled() {
			v := b.Agent.Velocity()
			vx, vz = v.X(), v.Z()
		}
		pw.SetState(e, pos.X(), pos.Z(), vx, vz)
	})

	ecs.ForEach2(w, component.PlayerComponent.Kind(), component.TransformComponent.Kind(), func(e ecs.Entity, pl *component.Player, tr *component.Transform) {
		s.ensureBody(w, e, tr.Position.X(), tr.Position.Z(), pl.Radius, ecs.BodyPlayer)
		pw.SetState(e, tr.Position.X(), tr.Position.Z(), pl.Velocity.X(), pl.Velocity.Z())
	})

	pw.Step(s.dt)

	ecs.ForEach2(w, component.BossComponent.Kind(), component.TransformComponent.Kind(), func(e ecs.Entity, b *component.Boss, tr *component.Transform) {
		if b.Agent == nil {
			return
		}
		if x, z, vx, vz, ok := pw.State(e); ok && b.Agent.SyncPhysics(x, z, vx, vz) {
			b.Agent.IntegrateVertical(s.dt)
		}
		syncBossTransform(tr, b.Agent)
	})

	ecs.ForEach2(w, component.PlayerComponent.Kind(), component.TransformComponent.Kind(), func(e ecs.Entity, pl *component.Player, tr *component.Transform) {
		x, z, vx, vz, ok := pw.State(e)
		if !ok {
			return
		}
		tr.Position[0], tr.Position[2] = x, z
		pl.Velocity[0], pl.Velocity[2] = vx, vz
	})

	for _, c := range pw.DrainContacts() {
		b, ok := ecs.Get(w, c.Boss, component.BossComponent.Kind())
		if !ok || b.Agent == nil || !ecs.IsAlive(w, c.Player) {
			continue
		}
		b.Agent.ContactAttack(PlayerTarget(w, c.Player))
	}
}

func (s *PhysicsSystem) ensureBody(w *ecs.World, e ecs.Entity, x, z, radius float64, role ecs.BodyRole) {
	pw := w.PhysicsWorld()
	if pw.HasBody(e) {
		return
	}
	body := pw.EnsureBody(e, x, z, radius, role)
	_ = ecs.Add(w, e, component.PhysicsBodyComponent.Kind(), &component.PhysicsBody{Body: body, Radius: radius})
}
