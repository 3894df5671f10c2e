package boss

// PoseTarget is what a Sequencer animates.
type PoseTarget interface {
	Pose() Pose
	SetPose(p Pose)
	ZeroVelocity()
}

// SequenceStatus is the result of one Sequencer step.
type SequenceStatus int

const (
	SequenceInactive SequenceStatus = iota
	SequenceRunning
	SequencePhaseCompleted
	SequenceFinished
)

func (s SequenceStatus) String() string {
	switch s {
	case SequenceInactive:
		return "inactive"
	case SequenceRunning:
		return "running"
	case SequencePhaseCompleted:
		return "phase_completed"
	case SequenceFinished:
		return "finished"
	}
	return "unknown"
}

// Sequencer advances at most one MotionSequence per tick. All of its state
// is the phase index and the elapsed time in that phase, so cancelling is a
// plain reset.
type Sequencer struct {
	target PoseTarget

	seq    MotionSequence
	active bool
	index  int

	begun    bool
	elapsed  float64
	progress float64
	start    Pose
	end      Pose

	baseHeight float64
	gen        uint64
}

// NewSequencer binds a sequencer to the pose it animates.
func NewSequencer(target PoseTarget) *Sequencer {
	return &Sequencer{target: target}
}

// Start replaces any running sequence with seq. The replaced sequence's
// hooks never fire. Velocity is zeroed so physics does not fight the motion.
func (s *Sequencer) Start(seq MotionSequence) {
	if s == nil || s.target == nil {
		return
	}
	s.reset()
	if len(seq.Phases) == 0 {
		return
	}
	s.seq = seq
	s.active = true
	s.baseHeight = s.target.Pose().Position.Y()
	s.target.ZeroVelocity()
}

// Cancel stops the running sequence immediately. The pose is left where the
// last step put it; callers that need a safe pose must set it themselves.
func (s *Sequencer) Cancel() {
	if s == nil {
		return
	}
	s.reset()
}

func (s *Sequencer) reset() {
	s.gen++
	s.seq = MotionSequence{}
	s.active = false
	s.index = 0
	s.begun = false
	s.elapsed = 0
	s.progress = 0
}

// Step advances the running sequence by dt seconds and writes the
// interpolated pose.
func (s *Sequencer) Step(dt float64) SequenceStatus {
	if s == nil || !s.active || s.target == nil {
		return SequenceInactive
	}
	if dt < 0 {
		dt = 0
	}

	phase := &s.seq.Phases[s.index]
	gen := s.gen
	if !s.begun {
		s.beginPhase(phase)
		if s.gen != gen {
			return s.statusAfterHook()
		}
	}

	if phase.Rate > 0 {
		s.progress += dt * phase.Rate
		s.elapsed += dt
	} else {
		s.elapsed += dt
		if phase.Duration > 0 {
			s.progress = s.elapsed / phase.Duration
		} else {
			s.progress = 1
		}
	}
	if s.progress > 1 {
		s.progress = 1
	}

	pose := evaluate(phase.Kind, s.start, s.end, s.progress, phase.Height, s.baseHeight)
	s.target.SetPose(pose)

	if s.progress < 1 {
		return SequenceRunning
	}

	if phase.OnComplete != nil {
		phase.OnComplete(pose)
		if s.gen != gen {
			return s.statusAfterHook()
		}
	}

	s.index++
	s.begun = false
	s.elapsed = 0
	s.progress = 0
	if s.index >= len(s.seq.Phases) {
		s.reset()
		return SequenceFinished
	}
	return SequencePhaseCompleted
}

// statusAfterHook reports the outcome when a hook restarted or cancelled
// the sequencer mid-step.
func (s *Sequencer) statusAfterHook() SequenceStatus {
	if s.active {
		return SequenceRunning
	}
	return SequenceInactive
}

func (s *Sequencer) beginPhase(phase *MotionPhase) {
	s.begun = true
	s.elapsed = 0
	s.progress = 0
	s.start = s.target.Pose()
	s.end = s.start
	if phase.End != nil {
		s.end = phase.End(s.start)
	}
	if phase.OnStart != nil {
		phase.OnStart(s.start)
	}
}

// Active reports whether a sequence is running.
func (s *Sequencer) Active() bool { return s != nil && s.active }

// Name is the running sequence's name, or "" when idle.
func (s *Sequencer) Name() string {
	if s == nil || !s.active {
		return ""
	}
	return s.seq.Name
}

// PhaseIndex is the index of the phase being run.
func (s *Sequencer) PhaseIndex() int {
	if s == nil {
		return 0
	}
	return s.index
}

// Elapsed is the time spent in the current phase.
func (s *Sequencer) Elapsed() float64 {
	if s == nil {
		return 0
	}
	return s.elapsed
}

// BaseHeight is the height the pose had when the current sequence started.
func (s *Sequencer) BaseHeight() float64 {
	if s == nil {
		return 0
	}
	return s.baseHeight
}
