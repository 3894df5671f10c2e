package boss

// ContactAttack handles an overlap with other. It runs in any phase. A
// target standing on top of the boss (airborne, feet above the stepping
// line) is not hurt.
func (a *Agent) ContactAttack(other Candidate) bool {
	if a == nil || other == nil || !a.colliderEnabled {
		return false
	}
	if other.Tag() != a.stats.TargetTag {
		return false
	}
	t, ok := other.(Target)
	if !ok {
		return false
	}

	stepping := a.pose.Position.Y() + a.stats.Height - a.stats.ContactSteppingTolerance
	if !t.IsGrounded() && t.Position().Y() >= stepping {
		return false
	}

	if a.stats.ContactPushback {
		back := a.pose.Forward().Mul(-a.stats.ContactPushbackForce)
		a.velocity[0] = back.X()
		a.velocity[2] = back.Z()
	}
	t.ApplyDamage(a.stats.ContactDamage, a.pose.Position)
	a.events.contact(t)
	return true
}

