package main

import (
	"errors"
	"fmt"
	"sort"
	"strings"

	"github.com/milk9111/charmotion/motion"
	"github.com/milk9111/charmotion/scene"
	"gopkg.in/yaml.v3"
)

var ErrNoFrames = errors.New("replay: scenario has no frames")

// Scenario is a scripted run. Intents fire at the start of their frame.
type Scenario struct {
	Level   string       `yaml:"level"`
	DT      float64      `yaml:"dt"`
	Frames  int          `yaml:"frames"`
	Intents []IntentSpec `yaml:"intents"`
}

type IntentSpec struct {
	Frame int     `yaml:"frame"`
	Kind  string  `yaml:"kind"`
	Axis  float64 `yaml:"axis,omitempty"`
}

// Frame is the player's motion after one step.
type Frame struct {
	Frame   int          `yaml:"frame"`
	X       float64      `yaml:"x"`
	Y       float64      `yaml:"y"`
	VX      float64      `yaml:"vx"`
	VY      float64      `yaml:"vy"`
	Dashing bool         `yaml:"dashing"`
	State   motion.State `yaml:"state"`
	Intents string       `yaml:"intents,omitempty"`
}

func ParseScenario(data []byte) (*Scenario, error) {
	var sc Scenario
	if err := yaml.Unmarshal(data, &sc); err != nil {
		return nil, fmt.Errorf("replay: unmarshal scenario: %w", err)
	}
	if sc.Frames <= 0 {
		return nil, ErrNoFrames
	}
	for i, in := range sc.Intents {
		if _, err := motion.ParseIntentKind(in.Kind); err != nil {
			return nil, fmt.Errorf("replay: intent %d: %w", i, err)
		}
		if in.Frame < 0 || in.Frame >= sc.Frames {
			return nil, fmt.Errorf("replay: intent %d: frame %d outside [0,%d)", i, in.Frame, sc.Frames)
		}
	}
	sort.SliceStable(sc.Intents, func(i, j int) bool {
		return sc.Intents[i].Frame < sc.Intents[j].Frame
	})
	return &sc, nil
}

// Run plays the scenario against a fresh headless scene.
func Run(sc *Scenario) ([]Frame, error) {
	s, err := scene.New(scene.Options{Headless: true, Level: sc.Level, Step: sc.DT})
	if err != nil {
		return nil, err
	}

	frames := make([]Frame, 0, sc.Frames)
	next := 0
	for frame := 0; frame < sc.Frames; frame++ {
		var names []string
		for next < len(sc.Intents) && sc.Intents[next].Frame == frame {
			in := sc.Intents[next]
			kind, _ := motion.ParseIntentKind(in.Kind)
			s.Queue(motion.Intent{Kind: kind, Axis: in.Axis})
			names = append(names, kind.String())
			next++
		}

		s.Step()

		f := Frame{Frame: frame, Intents: strings.Join(names, ",")}
		if t, ok := s.PlayerTransform(); ok {
			f.X, f.Y = t.X, t.Y
		}
		if v, ok := s.PlayerVelocity(); ok {
			f.VX, f.VY = v.X, v.Y
		}
		if ctrl := s.Controller(); ctrl != nil {
			f.State = ctrl.State()
			f.Dashing = ctrl.Dashing()
		}
		frames = append(frames, f)
	}
	return frames, nil
}
