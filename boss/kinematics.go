package boss

import (
	"math"

	"github.com/go-gl/mathgl/mgl64"
	"github.com/milk9111/slimeboss/common"
)

// groundTolerance is how far above the plane the agent may float and still
// count as grounded.
const groundTolerance = 0.1

// KinematicMover is the default Mover. It works on the agent's own velocity
// and rotation and reads the tick's dt from the agent.
type KinematicMover struct {
	agent *Agent
}

// NewKinematicMover binds a mover to a.
func NewKinematicMover(a *Agent) *KinematicMover {
	return &KinematicMover{agent: a}
}

func (m *KinematicMover) lateral() mgl64.Vec3 {
	return common.Flatten(m.agent.velocity)
}

func (m *KinematicMover) setLateral(v mgl64.Vec3) {
	m.agent.velocity[0] = v.X()
	m.agent.velocity[2] = v.Z()
}

// Accelerate speeds up along direction up to topSpeed while bleeding off
// any sideways velocity at turningDrag.
func (m *KinematicMover) Accelerate(direction mgl64.Vec3, turningDrag, acceleration, topSpeed float64) {
	if direction.LenSqr() == 0 {
		return
	}
	dt := m.agent.dt
	lateral := m.lateral()

	speed := direction.Dot(lateral)
	turning := lateral.Sub(direction.Mul(speed))

	if lateral.Len() < topSpeed || speed < 0 {
		rate := acceleration
		if speed < 0 {
			// Reversing brakes harder than it accelerates.
			rate += m.agent.stats.Deceleration
		}
		speed += rate * dt
		speed = math.Max(-topSpeed, math.Min(speed, topSpeed))
	}

	turning = common.MoveTowards(turning, mgl64.Vec3{}, turningDrag*dt)
	m.setLateral(direction.Mul(speed).Add(turning))
}

// Decelerate brings lateral velocity toward zero at rate units/s².
func (m *KinematicMover) Decelerate(rate float64) {
	m.setLateral(common.MoveTowards(m.lateral(), mgl64.Vec3{}, rate*m.agent.dt))
}

// Gravity pulls the agent down while airborne, capped at MaxFallSpeed.
func (m *KinematicMover) Gravity(rate float64) {
	a := m.agent
	maxFall := a.stats.MaxFallSpeed
	if a.grounded() || a.velocity.Y() <= -maxFall {
		return
	}
	vy := a.velocity.Y() - rate*a.dt
	a.velocity[1] = math.Max(vy, -maxFall)
}

// SnapToGround pins a grounded agent to the floor.
func (m *KinematicMover) SnapToGround(force float64) {
	a := m.agent
	if a.grounded() && a.velocity.Y() <= 0 {
		a.velocity[1] = -force
	}
}

// FaceDirectionSmooth turns the heading toward direction at speed degrees
// per second.
func (m *KinematicMover) FaceDirectionSmooth(direction mgl64.Vec3, speed float64) {
	flat := common.Flatten(direction)
	if flat.LenSqr() == 0 {
		return
	}
	a := m.agent
	current := common.YawFromRotation(a.pose.Rotation)
	delta := common.WrapAngle(common.YawOf(flat) - current)
	limit := mgl64.DegToRad(speed) * a.dt
	if math.Abs(delta) > limit {
		delta = math.Copysign(limit, delta)
	}
	a.pose.Rotation = common.YawRotation(current + delta)
}

// planeGrounder treats the agent as grounded when it is within
// groundTolerance of its ground height.
type planeGrounder struct {
	agent *Agent
}

func (g planeGrounder) IsGrounded() bool {
	return g.agent.pose.Position.Y() <= g.agent.ground+groundTolerance
}
