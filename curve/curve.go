// Package curve provides easing curves that map normalized progress in
// [0,1] to a multiplier. Curves are immutable once built and safe to share
// between controllers.
package curve

import (
	"errors"

	"github.com/milk9111/charmotion/common"
)

var (
	ErrNoKeys       = errors.New("curve: no keys")
	ErrUnsortedKeys = errors.New("curve: key times must be strictly increasing")
	ErrBadSamples   = errors.New("curve: sample count must be positive")
	ErrUnknown      = errors.New("curve: unknown preset")
)

// Curve maps progress t in [0,1] to a multiplier. Values of t outside the
// range are clamped.
type Curve interface {
	Evaluate(t float64) float64
}

// Constant returns the same value for every t.
type Constant float64

func (c Constant) Evaluate(float64) float64 {
	return float64(c)
}

// Func adapts a plain function to Curve.
type Func func(t float64) float64

func (f Func) Evaluate(t float64) float64 {
	return f(common.Clamp01(t))
}
