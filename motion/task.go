package motion

import (
	"github.com/milk9111/charmotion/common"
	"github.com/milk9111/charmotion/curve"
)

// timeEpsilon absorbs float drift when elapsed time is summed from frame
// deltas, so ten steps of 0.1 finish a 1.0 second task.
const timeEpsilon = 1e-9

// TaskKind identifies what a timed task drives.
type TaskKind int

const (
	TaskJumpAscent TaskKind = iota
	TaskDash
	TaskDashCooldown
)

func (k TaskKind) String() string {
	switch k {
	case TaskJumpAscent:
		return "jump_ascent"
	case TaskDash:
		return "dash"
	case TaskDashCooldown:
		return "dash_cooldown"
	default:
		return "unknown"
	}
}

// Task is a multi-frame process that samples a curve over a fixed duration.
// OnStep receives the curve sample for the step and the frame delta.
// Exactly one of OnComplete or OnCancel runs, once.
type Task struct {
	Kind       TaskKind
	Elapsed    float64
	Duration   float64
	Curve      curve.Curve
	OnStep     func(sample, dt float64)
	OnComplete func()
	OnCancel   func()

	cancelled bool
	done      bool
}

// Progress returns elapsed/duration clamped to [0,1].
func (t *Task) Progress() float64 {
	if t == nil {
		return 0
	}
	if t.Duration <= 0 {
		return 1
	}
	return common.Clamp01(t.Elapsed / t.Duration)
}

// Cancel asks the scheduler to stop the task at the next step boundary.
func (t *Task) Cancel() {
	if t == nil || t.done {
		return
	}
	t.cancelled = true
}

func (t *Task) Done() bool {
	return t == nil || t.done
}

func (t *Task) step(dt float64) {
	if t.done {
		return
	}
	if t.cancelled {
		t.done = true
		if t.OnCancel != nil {
			t.OnCancel()
		}
		return
	}

	t.Elapsed += dt
	if t.OnStep != nil {
		sample := 1.0
		if t.Curve != nil {
			sample = t.Curve.Evaluate(t.Progress())
		}
		t.OnStep(sample, dt)
	}

	if t.Elapsed >= t.Duration-timeEpsilon {
		t.done = true
		if t.OnComplete != nil {
			t.OnComplete()
		}
	}
}

// Scheduler advances timed tasks in start order. Tasks started while a step
// is running (for example a cooldown started from a completion callback)
// take their first step on the next call.
type Scheduler struct {
	tasks []*Task
}

func (s *Scheduler) Start(t *Task) *Task {
	if s == nil || t == nil {
		return t
	}
	s.tasks = append(s.tasks, t)
	return t
}

func (s *Scheduler) Step(dt float64) {
	if s == nil {
		return
	}
	n := len(s.tasks)
	for i := 0; i < n; i++ {
		s.tasks[i].step(dt)
	}

	kept := s.tasks[:0]
	for _, t := range s.tasks {
		if !t.done {
			kept = append(kept, t)
		}
	}
	for i := len(kept); i < len(s.tasks); i++ {
		s.tasks[i] = nil
	}
	s.tasks = kept
}

// Active counts unfinished tasks of a kind.
func (s *Scheduler) Active(kind TaskKind) int {
	if s == nil {
		return 0
	}
	count := 0
	for _, t := range s.tasks {
		if t.Kind == kind && !t.done {
			count++
		}
	}
	return count
}

// CancelKind marks every unfinished task of a kind for cancellation.
func (s *Scheduler) CancelKind(kind TaskKind) {
	if s == nil {
		return
	}
	for _, t := range s.tasks {
		if t.Kind == kind {
			t.Cancel()
		}
	}
}

func (s *Scheduler) Len() int {
	if s == nil {
		return 0
	}
	return len(s.tasks)
}
