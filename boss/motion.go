package boss

import (
	"math"

	"github.com/go-gl/mathgl/mgl64"
	"github.com/milk9111/slimeboss/common"
)

// Pose is a position plus a facing.
type Pose struct {
	Position mgl64.Vec3
	Rotation mgl64.Quat
}

// Forward is the direction the pose faces.
func (p Pose) Forward() mgl64.Vec3 {
	return p.Rotation.Rotate(common.Forward)
}

// Interpolation selects how a motion phase moves the pose.
type Interpolation int

const (
	// InterpolateHold keeps the start pose for the phase duration.
	InterpolateHold Interpolation = iota
	InterpolateLinear
	// InterpolateArc lerps on the ground plane and adds a sin(πt) hop.
	InterpolateArc
	// InterpolateKnockback is an arc that never dips below the
	// pre-sequence height.
	InterpolateKnockback
	// InterpolateRotation slerps the facing, position held.
	InterpolateRotation
)

func (k Interpolation) String() string {
	switch k {
	case InterpolateHold:
		return "hold"
	case InterpolateLinear:
		return "linear"
	case InterpolateArc:
		return "arc"
	case InterpolateKnockback:
		return "knockback"
	case InterpolateRotation:
		return "rotation"
	}
	return "unknown"
}

// MotionPhase is one timed step of a MotionSequence.
type MotionPhase struct {
	Name string
	Kind Interpolation

	// Duration is the phase length in seconds. Ignored when Rate > 0.
	Duration float64
	// Rate, when positive, advances progress by dt*Rate per step instead
	// of elapsed/Duration.
	Rate float64
	// Height is the apex of arc and knockback phases.
	Height float64

	// End resolves the end pose once, when the phase begins. Nil holds the
	// start pose.
	End func(start Pose) Pose

	OnStart    func(start Pose)
	OnComplete func(end Pose)
}

// MotionSequence is an ordered list of phases run by a Sequencer.
type MotionSequence struct {
	Name   string
	Phases []MotionPhase
}

// ArcOffset is the vertical hop of an arc at progress t. It is exactly zero
// at both ends.
func ArcOffset(t, height float64) float64 {
	if t <= 0 || t >= 1 {
		return 0
	}
	return math.Sin(math.Pi*t) * height
}

// evaluate returns the pose of phase kind k at progress t.
func evaluate(k Interpolation, start, end Pose, t, height, floor float64) Pose {
	t = common.Clamp01(t)
	switch k {
	case InterpolateLinear:
		if t >= 1 {
			return end
		}
		return Pose{
			Position: common.LerpVec3(start.Position, end.Position, t),
			Rotation: slerp(start.Rotation, end.Rotation, t),
		}
	case InterpolateArc, InterpolateKnockback:
		pos := common.LerpVec3(start.Position, end.Position, t)
		if t >= 1 {
			pos = end.Position
		}
		pos[1] += ArcOffset(t, height)
		if k == InterpolateKnockback && pos[1] < floor {
			pos[1] = floor
		}
		return Pose{Position: pos, Rotation: start.Rotation}
	case InterpolateRotation:
		if t >= 1 {
			return Pose{Position: start.Position, Rotation: end.Rotation}
		}
		return Pose{Position: start.Position, Rotation: slerp(start.Rotation, end.Rotation, t)}
	}
	return start
}

func slerp(a, b mgl64.Quat, t float64) mgl64.Quat {
	if t <= 0 {
		return a
	}
	if t >= 1 {
		return b
	}
	if a.ApproxEqual(b) {
		return b
	}
	return mgl64.QuatSlerp(a, b, t)
}
