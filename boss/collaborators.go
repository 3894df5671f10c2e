package boss

import (
	"github.com/go-gl/mathgl/mgl64"
	"github.com/google/uuid"
)

// Health is the external store backing the boss's (and a target's) hit points.
type Health interface {
	Current() int
	IsEmpty() bool
	Damage(amount int)
	ResetHealth()
	// Recovering reports whether the post-damage recovery window is open.
	Recovering() bool
}

// Candidate is anything the perception scan or the contact check can see.
type Candidate interface {
	Tag() string
	Position() mgl64.Vec3
}

// Target is a candidate the boss can chase and hurt.
type Target interface {
	Candidate
	Health() Health
	IsGrounded() bool
	ApplyDamage(amount int, origin mgl64.Vec3) bool
}

// EffectHandle identifies a spawned effect. uuid.Nil means none.
type EffectHandle = uuid.UUID

// Effects spawns and destroys visual effects.
type Effects interface {
	SpawnLandingEffect(position mgl64.Vec3)
	SpawnStunnedEffect(position mgl64.Vec3, duration float64) EffectHandle
	DestroyEffect(handle EffectHandle)
}

// Clip names a sound the boss can play.
type Clip string

const (
	ClipJump    Clip = "jump"
	ClipLanding Clip = "landing"
	ClipStunned Clip = "stunned"
	ClipDeath   Clip = "death"
)

// Audio is the boss's single audio source.
type Audio interface {
	PlayOneShot(clip Clip)
	PlayLooping(clip Clip)
	Stop()
}

// Mover supplies the locomotion primitives used while the boss walks.
type Mover interface {
	Accelerate(direction mgl64.Vec3, turningDrag, acceleration, topSpeed float64)
	Decelerate(rate float64)
	Gravity(rate float64)
	SnapToGround(force float64)
	FaceDirectionSmooth(direction mgl64.Vec3, speed float64)
}

// Grounder answers whether the boss stands on the ground.
type Grounder interface {
	IsGrounded() bool
}

type nopEffects struct{}

func (nopEffects) SpawnLandingEffect(mgl64.Vec3)                        {}
func (nopEffects) SpawnStunnedEffect(mgl64.Vec3, float64) EffectHandle { return uuid.Nil }
func (nopEffects) DestroyEffect(EffectHandle)                           {}

type nopAudio struct{}

func (nopAudio) PlayOneShot(Clip) {}
func (nopAudio) PlayLooping(Clip) {}
func (nopAudio) Stop()            {}
