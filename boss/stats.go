package boss

import "fmt"

// JumpsPerAttack is the number of completed jumps that exhausts the boss.
const JumpsPerAttack = 3

// Stats holds every tunable of the encounter.
type Stats struct {
	TargetTag string

	// Perception
	SpotRange float64
	ViewRange float64

	// Locomotion
	Gravity            float64
	MaxFallSpeed       float64
	SnapForce          float64
	FollowAcceleration float64
	FollowTopSpeed     float64
	TurningDrag        float64
	Deceleration       float64
	Friction           float64
	RotationSpeed      float64 // degrees per second
	AttackRange        float64

	// Attack
	JumpHeight       float64
	JumpDuration     float64
	JumpRotationRate float64
	TimeBeforeJump   float64
	TimeAfterJump    float64
	SettleDuration   float64

	// Vulnerable
	StunDuration      float64
	StunSoundFraction float64
	StunEffectHeight  float64
	KnockbackDuration float64
	KnockbackDistance float64
	KnockbackHeight   float64

	// Contact
	Height                   float64
	ContactDamage            int
	ContactPushback          bool
	ContactPushbackForce     float64
	ContactSteppingTolerance float64
}

// DefaultStats returns the tuning of the slime boss.
func DefaultStats() Stats {
	return Stats{
		TargetTag: "Player",

		SpotRange: 20,
		ViewRange: 30,

		Gravity:            38,
		MaxFallSpeed:       50,
		SnapForce:          15,
		FollowAcceleration: 8,
		FollowTopSpeed:     4,
		TurningDrag:        28,
		Deceleration:       28,
		Friction:           16,
		RotationSpeed:      970,
		AttackRange:        5,

		JumpHeight:       10,
		JumpDuration:     1.2,
		JumpRotationRate: 5,
		TimeBeforeJump:   0.5,
		TimeAfterJump:    0.5,
		SettleDuration:   0.5,

		StunDuration:      5,
		StunSoundFraction: 0.5,
		StunEffectHeight:  4.7,
		KnockbackDuration: 0.5,
		KnockbackDistance: 3,
		KnockbackHeight:   8,

		Height:                   3,
		ContactDamage:            1,
		ContactPushback:          true,
		ContactPushbackForce:     18,
		ContactSteppingTolerance: 0.5,
	}
}

// Validate rejects tunings the phases cannot run with.
func (s Stats) Validate() error {
	switch {
	case s.TargetTag == "":
		return fmt.Errorf("%w: target tag is empty", ErrInvalidStats)
	case s.SpotRange <= 0 || s.ViewRange <= 0:
		return fmt.Errorf("%w: spot range %.2f and view range %.2f must be positive", ErrInvalidStats, s.SpotRange, s.ViewRange)
	case s.ViewRange < s.SpotRange:
		return fmt.Errorf("%w: view range %.2f is smaller than spot range %.2f", ErrInvalidStats, s.ViewRange, s.SpotRange)
	case s.AttackRange <= 0:
		return fmt.Errorf("%w: attack range must be positive, got %.2f", ErrInvalidStats, s.AttackRange)
	case s.JumpDuration <= 0 || s.KnockbackDuration <= 0 || s.StunDuration <= 0:
		return fmt.Errorf("%w: jump, knockback and stun durations must be positive", ErrInvalidStats)
	case s.JumpRotationRate <= 0:
		return fmt.Errorf("%w: jump rotation rate must be positive, got %.2f", ErrInvalidStats, s.JumpRotationRate)
	case s.JumpHeight < 0 || s.KnockbackHeight < 0 || s.KnockbackDistance < 0:
		return fmt.Errorf("%w: heights and distances cannot be negative", ErrInvalidStats)
	case s.TimeBeforeJump < 0 || s.TimeAfterJump < 0 || s.SettleDuration < 0:
		return fmt.Errorf("%w: jump waits cannot be negative", ErrInvalidStats)
	case s.StunSoundFraction < 0 || s.StunSoundFraction > 1:
		return fmt.Errorf("%w: stun sound fraction must be in [0,1], got %.2f", ErrInvalidStats, s.StunSoundFraction)
	case s.ContactDamage < 0:
		return fmt.Errorf("%w: contact damage cannot be negative, got %d", ErrInvalidStats, s.ContactDamage)
	}
	return nil
}
