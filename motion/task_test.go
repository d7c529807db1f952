package motion

import (
	"testing"

	"github.com/milk9111/charmotion/curve"
)

func TestTaskCompletesOnceAtDuration(t *testing.T) {
	var s Scheduler
	steps, completions := 0, 0
	s.Start(&Task{
		Kind:       TaskDash,
		Duration:   1.0,
		OnStep:     func(float64, float64) { steps++ },
		OnComplete: func() { completions++ },
	})

	for i := 0; i < 15; i++ {
		s.Step(0.1)
	}
	if steps != 10 {
		t.Fatalf("expected 10 steps, got %d", steps)
	}
	if completions != 1 {
		t.Fatalf("expected 1 completion, got %d", completions)
	}
	if s.Len() != 0 {
		t.Fatalf("finished task should be dropped, %d left", s.Len())
	}
}

func TestTaskSamplesCurveAtProgress(t *testing.T) {
	var s Scheduler
	var samples []float64
	s.Start(&Task{
		Duration: 0.4,
		Curve:    curve.Func(func(p float64) float64 { return p }),
		OnStep:   func(sample, _ float64) { samples = append(samples, sample) },
	})
	for i := 0; i < 4; i++ {
		s.Step(0.1)
	}

	want := []float64{0.25, 0.5, 0.75, 1}
	if len(samples) != len(want) {
		t.Fatalf("expected %d samples, got %d", len(want), len(samples))
	}
	for i := range want {
		if diff := samples[i] - want[i]; diff > 1e-9 || diff < -1e-9 {
			t.Fatalf("sample %d = %v, want %v", i, samples[i], want[i])
		}
	}
}

func TestTaskStartedDuringStepWaitsForNextStep(t *testing.T) {
	var s Scheduler
	followSteps := 0
	s.Start(&Task{
		Duration: 0.1,
		OnComplete: func() {
			s.Start(&Task{Duration: 1, OnStep: func(float64, float64) { followSteps++ }})
		},
	})

	s.Step(0.1)
	if followSteps != 0 {
		t.Fatalf("follow-up task stepped in the frame it was started")
	}
	s.Step(0.1)
	if followSteps != 1 {
		t.Fatalf("expected follow-up to step once, got %d", followSteps)
	}
}

func TestTaskCancelRunsOnCancelAtBoundary(t *testing.T) {
	var s Scheduler
	steps, completed, cancelled := 0, 0, 0
	task := s.Start(&Task{
		Kind:       TaskJumpAscent,
		Duration:   1,
		OnStep:     func(float64, float64) { steps++ },
		OnComplete: func() { completed++ },
		OnCancel:   func() { cancelled++ },
	})

	s.Step(0.1)
	task.Cancel()
	if cancelled != 0 {
		t.Fatalf("cancel should wait for the next step")
	}
	s.Step(0.1)
	s.Step(0.1)
	task.Cancel()

	if steps != 1 || completed != 0 || cancelled != 1 {
		t.Fatalf("steps=%d completed=%d cancelled=%d", steps, completed, cancelled)
	}
	if !task.Done() {
		t.Fatalf("cancelled task should be done")
	}
}

func TestSchedulerActiveAndCancelKind(t *testing.T) {
	var s Scheduler
	s.Start(&Task{Kind: TaskJumpAscent, Duration: 1})
	s.Start(&Task{Kind: TaskJumpAscent, Duration: 1})
	s.Start(&Task{Kind: TaskDashCooldown, Duration: 1})

	if got := s.Active(TaskJumpAscent); got != 2 {
		t.Fatalf("expected 2 ascents, got %d", got)
	}
	s.CancelKind(TaskJumpAscent)
	s.Step(0.1)
	if got := s.Active(TaskJumpAscent); got != 0 {
		t.Fatalf("expected ascents cancelled, got %d", got)
	}
	if got := s.Active(TaskDashCooldown); got != 1 {
		t.Fatalf("cooldown should be untouched, got %d", got)
	}
}
