package boss

import (
	"fmt"

	"github.com/go-gl/mathgl/mgl64"
	"github.com/google/uuid"
	"github.com/milk9111/slimeboss/common"
)

// Config assembles an Agent. Only Health is required.
type Config struct {
	Stats        Stats
	Health       Health
	Pose         Pose
	GroundHeight float64

	Effects  Effects
	Audio    Audio
	Mover    Mover
	Grounder Grounder
	Events   Events
}

// Agent is the boss: its pose, flags, perception, motion sequencer and
// phase machine.
type Agent struct {
	stats  Stats
	health Health

	pose     Pose
	velocity mgl64.Vec3
	ground   float64

	movementEnabled bool
	invincible      bool
	colliderEnabled bool
	defeated        bool
	jumpCount       int

	stunEffect EffectHandle

	perception *Perception
	sequencer  *Sequencer
	machine    *StateMachine

	effects  Effects
	audio    Audio
	mover    Mover
	grounder Grounder
	events   Events

	dt float64
}

// New builds an agent in the Follow phase.
func New(cfg Config) (*Agent, error) {
	if cfg.Health == nil {
		return nil, ErrNoHealth
	}
	if err := cfg.Stats.Validate(); err != nil {
		return nil, err
	}

	a := &Agent{
		stats:           cfg.Stats,
		health:          cfg.Health,
		pose:            cfg.Pose,
		ground:          cfg.GroundHeight,
		movementEnabled: true,
		colliderEnabled: true,
		effects:         cfg.Effects,
		audio:           cfg.Audio,
		mover:           cfg.Mover,
		grounder:        cfg.Grounder,
		events:          cfg.Events,
	}
	if a.pose.Rotation == (mgl64.Quat{}) {
		a.pose.Rotation = mgl64.QuatIdent()
	}
	if a.effects == nil {
		a.effects = nopEffects{}
	}
	if a.audio == nil {
		a.audio = nopAudio{}
	}
	if a.mover == nil {
		a.mover = &KinematicMover{agent: a}
	}
	if a.grounder == nil {
		a.grounder = planeGrounder{agent: a}
	}

	a.perception = NewPerception(a.stats)
	a.sequencer = NewSequencer(a)
	a.machine = newStateMachine(a.events.phaseChanged)
	a.machine.start(a)
	return a, nil
}

// Tick runs one simulation step: defeat check, perception, then the phase.
func (a *Agent) Tick(dt float64, candidates []Candidate) {
	if a == nil || a.defeated {
		return
	}
	if dt < 0 {
		dt = 0
	}
	a.dt = dt

	if a.health.IsEmpty() {
		a.defeat()
		return
	}

	if ev, ok := a.perception.Update(a.pose.Position, candidates); ok {
		a.events.target(ev)
	}
	a.machine.step(a, dt)
}

// Update is Tick followed by Integrate, for hosts without a physics engine.
func (a *Agent) Update(dt float64, candidates []Candidate) {
	a.Tick(dt, candidates)
	a.Integrate(dt)
}

// Integrate moves the agent by its velocity while movement is enabled and
// keeps it on or above the ground plane.
func (a *Agent) Integrate(dt float64) {
	if a == nil || !a.movementEnabled || dt <= 0 {
		return
	}
	a.pose.Position[0] += a.velocity.X() * dt
	a.pose.Position[2] += a.velocity.Z() * dt
	a.IntegrateVertical(dt)
}

// IntegrateVertical applies only the vertical part of Integrate. Physics
// engines that own the ground plane call this after writing X and Z.
func (a *Agent) IntegrateVertical(dt float64) {
	if a == nil || !a.movementEnabled || dt <= 0 {
		return
	}
	a.pose.Position[1] += a.velocity.Y() * dt
	if a.pose.Position[1] < a.ground {
		a.pose.Position[1] = a.ground
	}
}

// SyncPhysics accepts a position and lateral velocity from an external
// physics step. It is refused while the core owns the position.
func (a *Agent) SyncPhysics(x, z, vx, vz float64) bool {
	if a == nil || !a.movementEnabled {
		return false
	}
	a.pose.Position[0] = x
	a.pose.Position[2] = z
	a.velocity[0] = vx
	a.velocity[2] = vz
	return true
}

// ApplyDamage hurts the boss unless it is invincible, already empty or
// still recovering from the previous hit.
func (a *Agent) ApplyDamage(amount int, origin mgl64.Vec3) bool {
	if a == nil || a.invincible || a.health.IsEmpty() || a.health.Recovering() {
		return false
	}
	a.health.Damage(amount)
	a.events.damage(amount, origin)
	if a.health.IsEmpty() {
		a.movementEnabled = false
		a.events.die()
	}
	return true
}

// Revive restores an emptied boss's health and movement. The phase machine
// stays frozen.
func (a *Agent) Revive() bool {
	if a == nil || !a.health.IsEmpty() {
		return false
	}
	a.health.ResetHealth()
	a.movementEnabled = true
	a.events.revive()
	return true
}

// RequestPhase asks for a transition by name. Unknown names and transitions
// outside the table are errors.
func (a *Agent) RequestPhase(name string) error {
	p, err := ParsePhase(name)
	if err != nil {
		return err
	}
	if p == a.machine.Current() {
		return nil
	}
	return a.machine.TransitionTo(a, p)
}

// SetStats swaps the tuning, e.g. after a prefab reload. Running sequences
// keep the values they were built with.
func (a *Agent) SetStats(s Stats) error {
	if err := s.Validate(); err != nil {
		return fmt.Errorf("boss: reject stats: %w", err)
	}
	a.stats = s
	a.perception.Tag = s.TargetTag
	a.perception.SpotRange = s.SpotRange
	a.perception.ViewRange = s.ViewRange
	return nil
}

// defeat is the terminal handling: it freezes the agent for good.
func (a *Agent) defeat() {
	if a.defeated {
		return
	}
	a.defeated = true
	a.invincible = true
	a.movementEnabled = false
	a.colliderEnabled = false
	a.velocity = mgl64.Vec3{}

	a.cancelMotion()

	a.audio.Stop()
	a.audio.PlayOneShot(ClipDeath)
	a.destroyStunEffect()
	a.machine.freeze()
	a.events.defeated()
}

func (a *Agent) destroyStunEffect() {
	if a.stunEffect == uuid.Nil {
		return
	}
	a.effects.DestroyEffect(a.stunEffect)
	a.stunEffect = uuid.Nil
}

// target is the tracked target, or nil.
func (a *Agent) target() Target { return a.perception.Target() }

func (a *Agent) grounded() bool { return a.grounder.IsGrounded() }

// Pose implements PoseTarget.
func (a *Agent) Pose() Pose { return a.pose }

// SetPose implements PoseTarget.
func (a *Agent) SetPose(p Pose) { a.pose = p }

// ZeroVelocity implements PoseTarget.
func (a *Agent) ZeroVelocity() { a.velocity = mgl64.Vec3{} }

// SetVelocity overwrites the velocity.
func (a *Agent) SetVelocity(v mgl64.Vec3) { a.velocity = v }

func (a *Agent) Phase() Phase               { return a.machine.Current() }
func (a *Agent) Invincible() bool           { return a.invincible }
func (a *Agent) JumpCount() int             { return a.jumpCount }
func (a *Agent) MovementEnabled() bool      { return a.movementEnabled }
func (a *Agent) ColliderEnabled() bool      { return a.colliderEnabled }
func (a *Agent) Defeated() bool             { return a.defeated }
func (a *Agent) Velocity() mgl64.Vec3       { return a.velocity }
func (a *Agent) Position() mgl64.Vec3       { return a.pose.Position }
func (a *Agent) Target() Target             { return a.perception.Target() }
func (a *Agent) Health() Health             { return a.health }
func (a *Agent) Stats() Stats               { return a.stats }
func (a *Agent) Sequencer() *Sequencer      { return a.sequencer }
func (a *Agent) StunEffect() EffectHandle   { return a.stunEffect }
func (a *Agent) Machine() *StateMachine     { return a.machine }
func (a *Agent) Perception() *Perception    { return a.perception }
func (a *Agent) Grounded() bool             { return a.grounded() }
func (a *Agent) GroundHeight() float64      { return a.ground }

// cancelMotion stops any in-flight sequence and drops the pose back to the
// height it started from, facing along its heading.
func (a *Agent) cancelMotion() {
	if !a.sequencer.Active() {
		return
	}
	base := a.sequencer.BaseHeight()
	a.sequencer.Cancel()
	a.pose.Position[1] = base
	a.pose.Rotation = common.YawOnly(a.pose.Rotation)
}
