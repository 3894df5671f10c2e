package component

// Health is a reusable health component for any entity that can take damage.
// It satisfies boss.Health. A hit opens a recovery window of RecoveryTime
// seconds during which Recovering reports true.
type Health struct {
	MaxHP        int
	HP           int
	RecoveryTime float64

	recovery float64

	OnDamage func(h *Health, amount int)
	OnEmpty  func(h *Health)
}

// NewHealth creates a Health component with max/current initialized.
func NewHealth(max int, recovery float64) *Health {
	if max <= 0 {
		max = 1
	}
	return &Health{MaxHP: max, HP: max, RecoveryTime: recovery}
}

// Current returns the current health value.
func (h *Health) Current() int {
	if h == nil {
		return 0
	}
	return h.HP
}

// IsEmpty reports whether the health has run out.
func (h *Health) IsEmpty() bool {
	return h == nil || h.HP <= 0
}

// Damage removes amount and starts the recovery window.
func (h *Health) Damage(amount int) {
	if h == nil || amount <= 0 || h.HP <= 0 {
		return
	}
	h.HP -= amount
	if h.HP < 0 {
		h.HP = 0
	}
	h.recovery = h.RecoveryTime
	if h.OnDamage != nil {
		h.OnDamage(h, amount)
	}
	if h.HP == 0 && h.OnEmpty != nil {
		h.OnEmpty(h)
	}
}

// ResetHealth restores full health and closes the recovery window.
func (h *Health) ResetHealth() {
	if h == nil {
		return
	}
	h.HP = h.MaxHP
	h.recovery = 0
}

// Recovering reports whether the post-damage window is still open.
func (h *Health) Recovering() bool {
	return h != nil && h.recovery > 0
}

// Tick advances the recovery timer by dt seconds.
func (h *Health) Tick(dt float64) {
	if h == nil || h.recovery <= 0 {
		return
	}
	h.recovery -= dt
	if h.recovery < 0 {
		h.recovery = 0
	}
}

// Fraction is HP/MaxHP in [0,1].
func (h *Health) Fraction() float64 {
	if h == nil || h.MaxHP <= 0 {
		return 0
	}
	return float64(h.HP) / float64(h.MaxHP)
}

var HealthComponent = NewComponent[Health]()
