package boss

import (
	"math"
	"testing"

	"github.com/go-gl/mathgl/mgl64"
	"github.com/milk9111/slimeboss/common"
)

type body struct {
	pose   Pose
	zeroed int
}

func (b *body) Pose() Pose     { return b.pose }
func (b *body) SetPose(p Pose) { b.pose = p }
func (b *body) ZeroVelocity()  { b.zeroed++ }

func newBody(x, y, z float64) *body {
	return &body{pose: Pose{Position: mgl64.Vec3{x, y, z}, Rotation: mgl64.QuatIdent()}}
}

func TestArcEndsAtEndHeight(t *testing.T) {
	start := Pose{Position: mgl64.Vec3{0, 2, 0}, Rotation: mgl64.QuatIdent()}
	end := Pose{Position: mgl64.Vec3{5, 2, -3}, Rotation: mgl64.QuatIdent()}

	for _, h := range []float64{0.5, 1, 8, 10, 1e6} {
		for _, k := range []Interpolation{InterpolateArc, InterpolateKnockback} {
			got := evaluate(k, start, end, 1, h, 2)
			if got.Position != end.Position {
				t.Fatalf("%s h=%v: expected %v at t=1, got %v", k, h, end.Position, got.Position)
			}
		}
	}
}

func TestArcOffset(t *testing.T) {
	cases := []struct {
		name string
		t, h float64
		want float64
	}{
		{"start", 0, 10, 0},
		{"apex", 0.5, 10, 10},
		{"end", 1, 10, 0},
		{"past_end", 1.5, 10, 0},
		{"quarter", 0.25, 4, 4 * math.Sin(math.Pi/4)},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			if got := ArcOffset(c.t, c.h); !approx(got, c.want) {
				t.Fatalf("ArcOffset(%v, %v) = %v, want %v", c.t, c.h, got, c.want)
			}
		})
	}
}

func TestKnockbackNeverDipsBelowFloor(t *testing.T) {
	start := Pose{Position: mgl64.Vec3{0, 1, 0}, Rotation: mgl64.QuatIdent()}
	end := Pose{Position: mgl64.Vec3{3, -4, 0}, Rotation: mgl64.QuatIdent()}
	for i := 0; i <= 20; i++ {
		p := evaluate(InterpolateKnockback, start, end, float64(i)/20, 0.1, 1)
		if p.Position.Y() < 1 {
			t.Fatalf("t=%v: y=%v below floor", float64(i)/20, p.Position.Y())
		}
	}
}

func TestSequencerRunsPhasesInOrder(t *testing.T) {
	b := newBody(0, 0, 0)
	s := NewSequencer(b)

	var completed []string
	s.Start(MotionSequence{Name: "walk", Phases: []MotionPhase{
		{Name: "hold", Kind: InterpolateHold, Duration: 0.5,
			OnComplete: func(Pose) { completed = append(completed, "hold") }},
		{Name: "move", Kind: InterpolateLinear, Duration: 0.5,
			End:        func(p Pose) Pose { return Pose{Position: p.Position.Add(mgl64.Vec3{4, 0, 0}), Rotation: p.Rotation} },
			OnComplete: func(Pose) { completed = append(completed, "move") }},
	}})

	if b.zeroed != 1 {
		t.Fatalf("expected Start to zero velocity once, got %d", b.zeroed)
	}

	want := []SequenceStatus{SequenceRunning, SequencePhaseCompleted, SequenceRunning, SequenceFinished}
	for i, w := range want {
		if got := s.Step(0.25); got != w {
			t.Fatalf("step %d: expected %s, got %s", i, w, got)
		}
		if i == 2 && !approx(b.pose.Position.X(), 2) {
			t.Fatalf("expected halfway x=2, got %v", b.pose.Position.X())
		}
	}
	if s.Active() {
		t.Fatalf("sequence should deactivate when finished")
	}
	if len(completed) != 2 || completed[0] != "hold" || completed[1] != "move" {
		t.Fatalf("unexpected completion order %v", completed)
	}
	if b.pose.Position != (mgl64.Vec3{4, 0, 0}) {
		t.Fatalf("expected exact end position, got %v", b.pose.Position)
	}
	if got := s.Step(0.25); got != SequenceInactive {
		t.Fatalf("expected inactive after finish, got %s", got)
	}
}

func TestSequencerRestartDropsPreviousHooks(t *testing.T) {
	b := newBody(0, 0, 0)
	s := NewSequencer(b)

	oldFired := false
	s.Start(MotionSequence{Name: "old", Phases: []MotionPhase{
		{Kind: InterpolateHold, Duration: 1, OnComplete: func(Pose) { oldFired = true }},
	}})
	s.Step(0.75)

	newFired := 0
	s.Start(MotionSequence{Name: "new", Phases: []MotionPhase{
		{Kind: InterpolateHold, Duration: 1, OnComplete: func(Pose) { newFired++ }},
	}})
	if s.Name() != "new" || s.PhaseIndex() != 0 || s.Elapsed() != 0 {
		t.Fatalf("expected fresh state, got name=%q index=%d elapsed=%v", s.Name(), s.PhaseIndex(), s.Elapsed())
	}

	s.Step(0.5)
	if !approx(s.Elapsed(), 0.5) {
		t.Fatalf("expected elapsed 0.5 after restart, got %v", s.Elapsed())
	}
	for s.Active() {
		s.Step(0.25)
	}
	if oldFired {
		t.Fatalf("replaced sequence's completion hook fired")
	}
	if newFired != 1 {
		t.Fatalf("expected new hook once, got %d", newFired)
	}
}

func TestSequencerCancel(t *testing.T) {
	b := newBody(0, 0, 0)
	s := NewSequencer(b)

	fired := false
	s.Start(MotionSequence{Phases: []MotionPhase{
		{Kind: InterpolateArc, Duration: 1, Height: 4,
			End:        func(p Pose) Pose { return Pose{Position: mgl64.Vec3{2, 0, 0}, Rotation: p.Rotation} },
			OnComplete: func(Pose) { fired = true }},
	}})
	s.Step(0.5)
	mid := b.pose

	s.Cancel()
	if s.Active() {
		t.Fatalf("cancel should deactivate")
	}
	if got := s.Step(1); got != SequenceInactive {
		t.Fatalf("expected inactive, got %s", got)
	}
	if fired {
		t.Fatalf("cancelled phase completion fired")
	}
	if b.pose != mid {
		t.Fatalf("cancel must not move the pose: %v -> %v", mid, b.pose)
	}
	if !approx(s.BaseHeight(), 0) {
		t.Fatalf("base height should survive cancel, got %v", s.BaseHeight())
	}
}

func TestSequencerHookRestart(t *testing.T) {
	b := newBody(0, 0, 0)
	s := NewSequencer(b)

	var second []string
	next := MotionSequence{Name: "second", Phases: []MotionPhase{
		{Kind: InterpolateHold, Duration: 0.5, OnComplete: func(Pose) { second = append(second, "done") }},
	}}
	s.Start(MotionSequence{Name: "first", Phases: []MotionPhase{
		{Kind: InterpolateHold, Duration: 0.5, OnComplete: func(Pose) { s.Start(next) }},
		{Kind: InterpolateHold, Duration: 0.5, OnStart: func(Pose) { t.Fatalf("phase after restart must not begin") }},
	}})

	if got := s.Step(0.5); got != SequenceRunning {
		t.Fatalf("expected running after hook restart, got %s", got)
	}
	if s.Name() != "second" {
		t.Fatalf("expected second sequence, got %q", s.Name())
	}
	if got := s.Step(0.5); got != SequenceFinished {
		t.Fatalf("expected finished, got %s", got)
	}
	if len(second) != 1 {
		t.Fatalf("expected second completion once, got %v", second)
	}
}

func TestSequencerRateBasedRotation(t *testing.T) {
	b := newBody(0, 0, 0)
	s := NewSequencer(b)
	face := common.LookRotation(mgl64.Vec3{1, 0, 0})

	s.Start(MotionSequence{Phases: []MotionPhase{
		{Kind: InterpolateRotation, Rate: 5, Duration: 100,
			End: func(p Pose) Pose { return Pose{Position: p.Position, Rotation: face} }},
	}})

	if got := s.Step(0.1); got != SequenceRunning {
		t.Fatalf("expected running at half progress, got %s", got)
	}
	if got := s.Step(0.1); got != SequenceFinished {
		t.Fatalf("expected rate 5 to finish in 0.2s, got %s", got)
	}
	if !b.pose.Rotation.ApproxEqual(face) {
		t.Fatalf("expected facing +X, got %v", b.pose.Rotation)
	}
	if b.pose.Position != (mgl64.Vec3{}) {
		t.Fatalf("rotation moved the position: %v", b.pose.Position)
	}
}

func TestSequencerIgnoresEmptyAndNegative(t *testing.T) {
	b := newBody(0, 0, 0)
	s := NewSequencer(b)

	s.Start(MotionSequence{Name: "empty"})
	if s.Active() {
		t.Fatalf("empty sequence should not activate")
	}

	s.Start(MotionSequence{Phases: []MotionPhase{{Kind: InterpolateHold, Duration: 1}}})
	s.Step(-5)
	if s.Elapsed() != 0 {
		t.Fatalf("negative dt should not advance, elapsed=%v", s.Elapsed())
	}
}
