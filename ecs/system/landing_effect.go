package system

import (
	"github.com/milk9111/charmotion/ecs"
	"github.com/milk9111/charmotion/ecs/component"
)

// DustSpawner builds a landing dust entity at a world position.
type DustSpawner func(w *ecs.World, x, y float64) (ecs.Entity, error)

// LandingEffectSystem consumes landing effect requests and spawns dust.
type LandingEffectSystem struct {
	spawn DustSpawner
}

func NewLandingEffectSystem(spawn DustSpawner) *LandingEffectSystem {
	return &LandingEffectSystem{spawn: spawn}
}

func (s *LandingEffectSystem) Update(w *ecs.World) {
	if s == nil || w == nil {
		return
	}

	for _, e := range w.Query(component.LandingEffectRequestComponent.Kind()) {
		req, ok := ecs.Get(w, e, component.LandingEffectRequestComponent.Kind())
		if ok && s.spawn != nil {
			if _, err := s.spawn(w, req.X, req.Y); err != nil {
				panic("landing effect system: spawn dust: " + err.Error())
			}
		}
		ecs.DestroyEntity(w, e)
	}
}
