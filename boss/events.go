package boss

import "github.com/go-gl/mathgl/mgl64"

// Events are optional callbacks fired by the Agent. Any field may be nil.
type Events struct {
	OnDamage        func(amount int, origin mgl64.Vec3)
	OnDie           func()
	OnRevive        func()
	OnTargetSpotted func(t Target)
	OnTargetEscaped func(t Target)
	OnTargetContact func(t Target)
	OnPhaseChanged  func(from, to Phase)
	OnLanded        func(jump int)
	OnDefeated      func()
}

func (e *Events) damage(amount int, origin mgl64.Vec3) {
	if e.OnDamage != nil {
		e.OnDamage(amount, origin)
	}
}

func (e *Events) die() {
	if e.OnDie != nil {
		e.OnDie()
	}
}

func (e *Events) revive() {
	if e.OnRevive != nil {
		e.OnRevive()
	}
}

func (e *Events) target(ev TargetEvent) {
	switch ev.Kind {
	case TargetSpotted:
		if e.OnTargetSpotted != nil {
			e.OnTargetSpotted(ev.Target)
		}
	case TargetEscaped:
		if e.OnTargetEscaped != nil {
			e.OnTargetEscaped(ev.Target)
		}
	}
}

func (e *Events) contact(t Target) {
	if e.OnTargetContact != nil {
		e.OnTargetContact(t)
	}
}

func (e *Events) phaseChanged(from, to Phase) {
	if e.OnPhaseChanged != nil {
		e.OnPhaseChanged(from, to)
	}
}

func (e *Events) landed(jump int) {
	if e.OnLanded != nil {
		e.OnLanded(jump)
	}
}

func (e *Events) defeated() {
	if e.OnDefeated != nil {
		e.OnDefeated()
	}
}
