package boss

import (
	"github.com/milk9111/slimeboss/common"
)

// followState walks the boss toward its target until it is in attack range.
type followState struct{}

func (*followState) enter(*Agent) {}

func (*followState) exit(*Agent) {}

func (s *followState) step(a *Agent, dt float64) {
	a.mover.Gravity(a.stats.Gravity)
	a.mover.SnapToGround(a.stats.SnapForce)

	t := a.target()
	if t == nil {
		a.mover.Decelerate(a.stats.Friction)
		return
	}

	if s.inRange(a, t) {
		s.engage(a)
		return
	}

	dir := common.SafeNormalize(common.Flatten(t.Position().Sub(a.pose.Position)))
	if a.movementEnabled {
		a.mover.Accelerate(dir, a.stats.TurningDrag, a.stats.FollowAcceleration, a.stats.FollowTopSpeed)
	} else {
		a.pose.Position = a.pose.Position.Add(dir.Mul(a.stats.FollowAcceleration * dt))
	}
	a.mover.FaceDirectionSmooth(dir, a.stats.RotationSpeed)

	if s.inRange(a, t) {
		s.engage(a)
	}
}

func (*followState) inRange(a *Agent, t Target) bool {
	return common.HorizontalDistance(a.pose.Position, t.Position()) <= a.stats.AttackRange
}

func (*followState) engage(a *Agent) {
	a.ZeroVelocity()
	a.machine.mustTransition(a, PhaseAttack)
}
