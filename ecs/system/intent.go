package system

import (
	"github.com/milk9111/charmotion/ecs"
	"github.com/milk9111/charmotion/ecs/component"
	"github.com/milk9111/charmotion/motion"
)

// IntentSystem converts per-frame input levels into edge-triggered intents
// and hands them to the entity's controller, followed by any queued
// intents.
type IntentSystem struct{}

func NewIntentSystem() *IntentSystem {
	return &IntentSystem{}
}

func (s *IntentSystem) Update(w *ecs.World) {
	if s == nil || w == nil {
		return
	}

	ecs.ForEach(w, component.MotionComponent.Kind(), func(e ecs.Entity, m *component.Motion) {
		if m.Controller == nil {
			return
		}

		if input, ok := ecs.Get(w, e, component.InputComponent.Kind()); ok {
			edges, ok := ecs.Get(w, e, component.IntentEdgesComponent.Kind())
			if !ok {
				edges = &component.IntentEdges{}
				_ = ecs.Add(w, e, component.IntentEdgesComponent.Kind(), edges)
			}
			for _, in := range inputIntents(input, edges) {
				m.Controller.Handle(in)
			}
		}

		if queue, ok := ecs.Get(w, e, component.IntentQueueComponent.Kind()); ok {
			for _, in := range queue.Pending {
				m.Controller.Handle(in)
			}
			queue.Pending = queue.Pending[:0]
		}
	})
}

// inputIntents diffs input against the previous frame and updates edges.
func inputIntents(input *component.Input, edges *component.IntentEdges) []motion.Intent {
	var out []motion.Intent

	if input.MoveX != edges.MoveX {
		if input.MoveX == 0 {
			out = append(out, motion.Intent{Kind: motion.IntentMoveCanceled})
		} else {
			out = append(out, motion.Intent{Kind: motion.IntentMove, Axis: input.MoveX})
		}
		edges.MoveX = input.MoveX
	}
	if input.JumpPressed {
		out = append(out, motion.Intent{Kind: motion.IntentJump})
	}
	if input.DashPressed {
		out = append(out, motion.Intent{Kind: motion.IntentDash})
	}
	if input.InteractPressed {
		out = append(out, motion.Intent{Kind: motion.IntentInteract})
	}
	if input.Swap != edges.Swap {
		if input.Swap {
			out = append(out, motion.Intent{Kind: motion.IntentSwapPerformed})
		} else {
			out = append(out, motion.Intent{Kind: motion.IntentSwapCanceled})
		}
		edges.Swap = input.Swap
	}

	return out
}
