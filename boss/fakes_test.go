package boss

import (
	"fmt"
	"testing"

	"github.com/go-gl/mathgl/mgl64"
	"github.com/google/uuid"
)

type testHealth struct {
	current    int
	max        int
	recovering bool
}

func newTestHealth(hp int) *testHealth { return &testHealth{current: hp, max: hp} }

func (h *testHealth) Current() int     { return h.current }
func (h *testHealth) IsEmpty() bool    { return h.current <= 0 }
func (h *testHealth) ResetHealth()     { h.current = h.max }
func (h *testHealth) Recovering() bool { return h.recovering }

func (h *testHealth) Damage(amount int) {
	h.current -= amount
	if h.current < 0 {
		h.current = 0
	}
}

type testTarget struct {
	tag      string
	pos      mgl64.Vec3
	health   *testHealth
	grounded bool
	hits     []int
}

func newTestTarget(x, y, z float64) *testTarget {
	return &testTarget{tag: "Player", pos: mgl64.Vec3{x, y, z}, health: newTestHealth(5), grounded: true}
}

func (t *testTarget) Tag() string          { return t.tag }
func (t *testTarget) Position() mgl64.Vec3 { return t.pos }
func (t *testTarget) IsGrounded() bool     { return t.grounded }

func (t *testTarget) Health() Health {
	if t.health == nil {
		return nil
	}
	return t.health
}

func (t *testTarget) ApplyDamage(amount int, _ mgl64.Vec3) bool {
	t.hits = append(t.hits, amount)
	if t.health != nil {
		t.health.Damage(amount)
	}
	return true
}

// prop is a tagged candidate that cannot be targeted.
type prop struct {
	tag string
	pos mgl64.Vec3
}

func (p prop) Tag() string          { return p.tag }
func (p prop) Position() mgl64.Vec3 { return p.pos }

type testAudio struct {
	log []string
}

func (a *testAudio) PlayOneShot(c Clip) { a.log = append(a.log, "oneshot:"+string(c)) }
func (a *testAudio) PlayLooping(c Clip) { a.log = append(a.log, "loop:"+string(c)) }
func (a *testAudio) Stop()              { a.log = append(a.log, "stop") }

func (a *testAudio) count(entry string) int {
	n := 0
	for _, e := range a.log {
		if e == entry {
			n++
		}
	}
	return n
}

type testEffects struct {
	landings []mgl64.Vec3
	stuns    []mgl64.Vec3
	live     map[EffectHandle]bool
}

func (e *testEffects) SpawnLandingEffect(p mgl64.Vec3) { e.landings = append(e.landings, p) }

func (e *testEffects) SpawnStunnedEffect(p mgl64.Vec3, _ float64) EffectHandle {
	if e.live == nil {
		e.live = map[EffectHandle]bool{}
	}
	h := uuid.New()
	e.live[h] = true
	e.stuns = append(e.stuns, p)
	return h
}

func (e *testEffects) DestroyEffect(h EffectHandle) { delete(e.live, h) }

type rig struct {
	agent   *Agent
	health  *testHealth
	target  *testTarget
	audio   *testAudio
	effects *testEffects
	changes []string
}

func newRig(t *testing.T, hp int, target *testTarget) *rig {
	t.Helper()
	r := &rig{
		health:  newTestHealth(hp),
		target:  target,
		audio:   &testAudio{},
		effects: &testEffects{},
	}
	a, err := New(Config{
		Stats:   DefaultStats(),
		Health:  r.health,
		Audio:   r.audio,
		Effects: r.effects,
		Events: Events{
			OnPhaseChanged: func(from, to Phase) {
				r.changes = append(r.changes, fmt.Sprintf("%s->%s", from, to))
			},
		},
	})
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	r.agent = a
	return r
}

func (r *rig) candidates() []Candidate {
	if r.target == nil {
		return nil
	}
	return []Candidate{r.target}
}

func (r *rig) tick(dt float64) { r.agent.Update(dt, r.candidates()) }

// tickUntil steps until cond holds, failing after max ticks.
func (r *rig) tickUntil(t *testing.T, dt float64, limit int, cond func() bool) int {
	t.Helper()
	for i := 1; i <= limit; i++ {
		r.tick(dt)
		if cond() {
			return i
		}
	}
	t.Fatalf("condition not met after %d ticks (phase=%s jumps=%d)", limit, r.agent.Phase(), r.agent.JumpCount())
	return 0
}

// toVulnerable walks the table follow -> attack -> vulnerable by request.
func (r *rig) toVulnerable(t *testing.T) {
	t.Helper()
	for _, name := range []string{"attack", "vulnerable"} {
		if err := r.agent.RequestPhase(name); err != nil {
			t.Fatalf("RequestPhase(%q): %v", name, err)
		}
	}
}

func approx(a, b float64) bool {
	d := a - b
	return d < 1e-9 && d > -1e-9
}

func approxVec(a, b mgl64.Vec3) bool {
	return approx(a.X(), b.X()) && approx(a.Y(), b.Y()) && approx(a.Z(), b.Z())
}
