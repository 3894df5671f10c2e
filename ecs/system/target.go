package system

import (
	"github.com/go-gl/mathgl/mgl64"
	"github.com/milk9111/slimeboss/boss"
	"github.com/milk9111/slimeboss/common"
	"github.com/milk9111/slimeboss/ecs"
	"github.com/milk9111/slimeboss/ecs/component"
)

// PlayerTag is the tag players present to boss perception.
const PlayerTag = "Player"

// hitKnockback is the horizontal speed a player is thrown back with when hurt.
const hitKnockback = 8.0

// playerTarget exposes a player entity to the boss core. It is a value type
// so the same entity compares equal across frames.
type playerTarget struct {
	w *ecs.World
	e ecs.Entity
}

// PlayerTarget returns the boss.Target view of a player entity.
func PlayerTarget(w *ecs.World, e ecs.Entity) boss.Target {
	return playerTarget{w: w, e: e}
}

func (p playerTarget) Tag() string { return PlayerTag }

func (p playerTarget) Position() mgl64.Vec3 {
	tr, ok := ecs.Get(p.w, p.e, component.TransformComponent.Kind())
	if !ok {
		return mgl64.Vec3{}
	}
	return tr.Position
}

func (p playerTarget) Health() boss.Health {
	h, ok := ecs.Get(p.w, p.e, component.HealthComponent.Kind())
	if !ok || h == nil {
		return nil
	}
	return h
}

func (p playerTarget) IsGrounded() bool {
	pl, ok := ecs.Get(p.w, p.e, component.PlayerComponent.Kind())
	return ok && pl.Grounded
}

// ApplyDamage hurts the player and throws them away from origin.
func (p playerTarget) ApplyDamage(amount int, origin mgl64.Vec3) bool {
	h, ok := ecs.Get(p.w, p.e, component.HealthComponent.Kind())
	if !ok || h == nil || h.IsEmpty() || h.Recovering() {
		return false
	}
	h.Damage(amount)

	pos := p.Position()
	if pl, ok := ecs.Get(p.w, p.e, component.PlayerComponent.Kind()); ok {
		away := common.Flatten(pos.Sub(origin))
		if away.Len() < 1e-6 {
			away = mgl64.Vec3{0, 0, 1}
		}
		push := common.SafeNormalize(away).Mul(hitKnockback)
		pl.Velocity[0] = push.X()
		pl.Velocity[2] = push.Z()
	}

	p.w.Events().Push(ecs.Event{Type: ecs.EventPlayerHit, Data: amount})
	if h.IsEmpty() {
		p.w.Events().Push(ecs.Event{Type: ecs.EventPlayerDied, Data: p.e})
	}
	return true
}

// PlayerCandidates lists every player as a perception candidate.
func PlayerCandidates(w *ecs.World) []boss.Candidate {
	var out []boss.Candidate
	ecs.ForEach(w, component.PlayerTagComponent.Kind(), func(e ecs.Entity, _ *component.PlayerTag) {
		out = append(out, playerTarget{w: w, e: e})
	})
	return out
}
