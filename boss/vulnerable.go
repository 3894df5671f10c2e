package boss

import (
	"github.com/go-gl/mathgl/mgl64"
	"github.com/milk9111/slimeboss/common"
)

// vulnerableState pins the stunned boss in place. A hit knocks it back into
// Attack early; otherwise it resumes attacking when the stun wears off.
type vulnerableState struct {
	healthAtEntry int
	floorY        float64

	stunElapsed  float64
	soundPlaying bool
	knockingBack bool
}

func (s *vulnerableState) enter(a *Agent) {
	a.invincible = false
	a.ZeroVelocity()
	a.movementEnabled = false

	s.healthAtEntry = a.health.Current()
	s.floorY = a.pose.Position.Y()
	s.stunElapsed = 0
	s.knockingBack = false

	st := a.stats
	above := a.pose.Position.Add(mgl64.Vec3{0, st.Height + st.StunEffectHeight, 0})
	a.stunEffect = a.effects.SpawnStunnedEffect(above, st.StunDuration)

	s.soundPlaying = st.StunDuration*st.StunSoundFraction > 0
	if s.soundPlaying {
		a.audio.PlayLooping(ClipStunned)
	}
}

func (s *vulnerableState) step(a *Agent, dt float64) {
	if !s.knockingBack {
		a.ZeroVelocity()
	}

	s.stunElapsed += dt
	if s.soundPlaying && s.stunElapsed >= a.stats.StunDuration*a.stats.StunSoundFraction {
		a.audio.Stop()
		s.soundPlaying = false
	}

	if s.knockingBack {
		if a.sequencer.Step(dt) == SequenceFinished {
			a.pose.Position[1] = s.floorY
			a.machine.mustTransition(a, PhaseAttack)
		}
		return
	}

	if a.health.Current() < s.healthAtEntry {
		s.knockback(a)
		return
	}

	if s.stunElapsed >= a.stats.StunDuration {
		a.machine.mustTransition(a, PhaseAttack)
	}
}

func (s *vulnerableState) exit(a *Agent) {
	a.cancelMotion()
	a.invincible = true
	a.movementEnabled = true
	a.audio.Stop()
	s.soundPlaying = false
	s.knockingBack = false
	a.destroyStunEffect()
}

// knockback faces the target and hops directly away from it.
func (s *vulnerableState) knockback(a *Agent) {
	s.knockingBack = true
	if t := a.target(); t != nil {
		if dir := common.Flatten(t.Position().Sub(a.pose.Position)); dir.LenSqr() > 0 {
			a.pose.Rotation = common.LookRotation(dir)
		}
	}

	st := a.stats
	a.sequencer.Start(MotionSequence{
		Name: "knockback",
		Phases: []MotionPhase{{
			Name:     "hop back",
			Kind:     InterpolateKnockback,
			Duration: st.KnockbackDuration,
			Height:   st.KnockbackHeight,
			End: func(start Pose) Pose {
				away := awayFrom(a.target(), start)
				return Pose{
					Position: start.Position.Add(away.Mul(st.KnockbackDistance)),
					Rotation: start.Rotation,
				}
			},
			OnComplete: func(end Pose) { a.effects.SpawnLandingEffect(end.Position) },
		}},
	})
}

// awayFrom is the horizontal unit direction from t to the pose. Without a
// usable target the boss backs off along its own facing.
func awayFrom(t Target, p Pose) mgl64.Vec3 {
	if t != nil {
		if d := common.SafeNormalize(common.Flatten(p.Position.Sub(t.Position()))); d.LenSqr() > 0 {
			return d
		}
	}
	back := common.SafeNormalize(common.Flatten(p.Forward().Mul(-1)))
	if back.LenSqr() == 0 {
		return common.Forward.Mul(-1)
	}
	return back
}
