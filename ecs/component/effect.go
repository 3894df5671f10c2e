package component

import (
	"github.com/go-gl/mathgl/mgl64"
	"github.com/google/uuid"
)

type EffectKind int

const (
	EffectLanding EffectKind = iota + 1
	EffectStunned
)

func (k EffectKind) String() string {
	switch k {
	case EffectLanding:
		return "landing"
	case EffectStunned:
		return "stunned"
	}
	return "unknown"
}

// Effect is a short-lived visual. Stunned effects orbit Anchor; landing
// effects sit at it at a fixed Scale and fade.
type Effect struct {
	Handle   uuid.UUID
	Kind     EffectKind
	Anchor   mgl64.Vec3
	Scale    float64
	Age      float64
	Lifetime float64
	Angle    float64
}

// Progress is Age/Lifetime in [0,1].
func (e *Effect) Progress() float64 {
	if e == nil || e.Lifetime <= 0 {
		return 1
	}
	p := e.Age / e.Lifetime
	if p > 1 {
		return 1
	}
	return p
}

var EffectComponent = NewComponent[Effect]()
