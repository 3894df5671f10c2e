package component

import "github.com/go-gl/mathgl/mgl64"

type Player struct {
	MoveSpeed      float64
	Acceleration   float64
	JumpSpeed      float64
	Gravity        float64
	Radius         float64
	AttackRange    float64
	AttackDamage   int
	AttackCooldown float64

	Velocity mgl64.Vec3
	Grounded bool
	Cooldown float64
	// Swing counts down while the last attack is shown.
	Swing float64
}

var PlayerComponent = NewComponent[Player]()
