package curve

import (
	"fmt"

	"github.com/d5/tengo/v2"
	"github.com/d5/tengo/v2/stdlib"
	"github.com/milk9111/charmotion/common"
)

// DefaultSamples is the table resolution used for scripted curves.
const DefaultSamples = 64

// Sampled evaluates a precomputed table by linear interpolation.
type Sampled struct {
	values []float64
}

// CompileScript runs a tengo script once per sample with the global `t` set
// to the sample position and reads the global `out`. The script never runs
// again after this returns.
//
//	math := import("math")
//	out := 1 - math.pow(1 - t, 3)
func CompileScript(src []byte, samples int) (*Sampled, error) {
	if samples <= 0 {
		return nil, ErrBadSamples
	}

	script := tengo.NewScript(src)
	script.SetImports(stdlib.GetModuleMap("math"))
	_ = script.Add("t", 0.0)

	compiled, err := script.Compile()
	if err != nil {
		return nil, fmt.Errorf("curve: compile script: %w", err)
	}
	values := make([]float64, samples+1)
	for i := range values {
		t := float64(i) / float64(samples)
		if err := compiled.Set("t", t); err != nil {
			return nil, fmt.Errorf("curve: set t=%g: %w", t, err)
		}
		if err := compiled.Run(); err != nil {
			return nil, fmt.Errorf("curve: run script at t=%g: %w", t, err)
		}
		if !compiled.IsDefined("out") {
			return nil, fmt.Errorf("curve: script does not define out")
		}
		values[i] = compiled.Get("out").Float()
	}

	return NewSampled(values)
}

// NewSampled builds a curve from an existing table evenly spaced over [0,1].
func NewSampled(values []float64) (*Sampled, error) {
	if len(values) == 0 {
		return nil, ErrNoKeys
	}
	return &Sampled{values: append([]float64(nil), values...)}, nil
}

func (s *Sampled) Evaluate(t float64) float64 {
	if s == nil || len(s.values) == 0 {
		return 0
	}
	if len(s.values) == 1 {
		return s.values[0]
	}
	pos := common.Clamp01(t) * float64(len(s.values)-1)
	i := int(pos)
	if i >= len(s.values)-1 {
		return s.values[len(s.values)-1]
	}
	return common.Lerp(s.values[i], s.values[i+1], pos-float64(i))
}
