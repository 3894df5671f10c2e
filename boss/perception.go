package boss

import "github.com/go-gl/mathgl/mgl64"

// TargetEventKind tells whether a target was acquired or lost.
type TargetEventKind int

const (
	TargetSpotted TargetEventKind = iota + 1
	TargetEscaped
)

func (k TargetEventKind) String() string {
	switch k {
	case TargetSpotted:
		return "spotted"
	case TargetEscaped:
		return "escaped"
	}
	return "unknown"
}

// TargetEvent is emitted when the tracked target changes.
type TargetEvent struct {
	Kind   TargetEventKind
	Target Target
}

// Perception acquires one target inside SpotRange and keeps it until it dies
// or leaves ViewRange.
type Perception struct {
	Tag       string
	SpotRange float64
	ViewRange float64

	target Target
}

// NewPerception builds a tracker from the boss stats.
func NewPerception(stats Stats) *Perception {
	return &Perception{
		Tag:       stats.TargetTag,
		SpotRange: stats.SpotRange,
		ViewRange: stats.ViewRange,
	}
}

// Update runs one sight check from origin. Candidates are scanned in order
// and the first qualifying one wins.
func (p *Perception) Update(origin mgl64.Vec3, candidates []Candidate) (TargetEvent, bool) {
	if p == nil {
		return TargetEvent{}, false
	}

	if p.target == nil {
		for _, c := range candidates {
			if c == nil || c.Tag() != p.Tag {
				continue
			}
			t, ok := c.(Target)
			if !ok {
				continue
			}
			if t.Position().Sub(origin).Len() > p.SpotRange {
				continue
			}
			p.target = t
			return TargetEvent{Kind: TargetSpotted, Target: t}, true
		}
		return TargetEvent{}, false
	}

	lost := p.target
	distance := lost.Position().Sub(origin).Len()
	h := lost.Health()
	if h == nil || h.IsEmpty() || h.Current() == 0 || distance > p.ViewRange {
		p.target = nil
		return TargetEvent{Kind: TargetEscaped, Target: lost}, true
	}
	return TargetEvent{}, false
}

// Target is the tracked target, or nil.
func (p *Perception) Target() Target {
	if p == nil {
		return nil
	}
	return p.target
}

// HasTarget reports whether a target is tracked.
func (p *Perception) HasTarget() bool { return p.Target() != nil }

// Clear drops the tracked target without emitting an event.
func (p *Perception) Clear() {
	if p != nil {
		p.target = nil
	}
}
