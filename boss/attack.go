package boss

import (
	"github.com/go-gl/mathgl/mgl64"
	"github.com/milk9111/slimeboss/common"
)

// attackState hops onto the target three times, then exposes the boss.
type attackState struct {
	entryHeight float64
}

func (s *attackState) enter(a *Agent) {
	a.mover.Gravity(a.stats.Gravity)
	a.mover.SnapToGround(a.stats.SnapForce)
	a.movementEnabled = false
	a.invincible = true
	a.jumpCount = 0
	s.entryHeight = a.pose.Position.Y()
	a.sequencer.Start(s.jumpSequence(a))
}

func (s *attackState) step(a *Agent, dt float64) {
	a.sequencer.Step(dt)
	if a.sequencer.Active() {
		return
	}
	if a.jumpCount >= JumpsPerAttack {
		a.machine.mustTransition(a, PhaseVulnerable)
		return
	}
	if a.grounded() {
		a.sequencer.Start(s.jumpSequence(a))
	}
}

func (*attackState) exit(a *Agent) {
	a.cancelMotion()
	a.invincible = false
	a.movementEnabled = true
}

// jumpSequence is wait, turn to the target, hop onto it, wait, settle.
func (s *attackState) jumpSequence(a *Agent) MotionSequence {
	st := a.stats
	return MotionSequence{
		Name: "jump",
		Phases: []MotionPhase{
			{Name: "windup", Kind: InterpolateHold, Duration: st.TimeBeforeJump},
			{
				Name: "face",
				Kind: InterpolateRotation,
				Rate: st.JumpRotationRate,
				End: func(start Pose) Pose {
					t := a.target()
					if t == nil {
						return start
					}
					dir := common.Flatten(t.Position().Sub(start.Position))
					if dir.LenSqr() == 0 {
						return start
					}
					return Pose{Position: start.Position, Rotation: common.LookRotation(dir)}
				},
			},
			{
				Name:     "hop",
				Kind:     InterpolateArc,
				Duration: st.JumpDuration,
				Height:   st.JumpHeight,
				End: func(start Pose) Pose {
					t := a.target()
					if t == nil {
						return start
					}
					p := t.Position()
					return Pose{
						Position: mgl64.Vec3{p.X(), start.Position.Y(), p.Z()},
						Rotation: start.Rotation,
					}
				},
				OnStart:    func(Pose) { a.audio.PlayOneShot(ClipJump) },
				OnComplete: func(Pose) { s.land(a) },
			},
			{Name: "recover", Kind: InterpolateHold, Duration: st.TimeAfterJump},
			{
				Name:     "settle",
				Kind:     InterpolateLinear,
				Duration: st.SettleDuration,
				End: func(start Pose) Pose {
					p := start.Position
					p[1] = s.entryHeight
					return Pose{Position: p, Rotation: start.Rotation}
				},
			},
		},
	}
}

func (*attackState) land(a *Agent) {
	a.audio.PlayOneShot(ClipLanding)
	a.ZeroVelocity()
	a.pose.Rotation = common.YawOnly(a.pose.Rotation)
	a.effects.SpawnLandingEffect(a.pose.Position)
	a.jumpCount++
	a.events.landed(a.jumpCount)
}
