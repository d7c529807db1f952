package curve

import "fmt"

var presets = map[string]Curve{
	"linear":      Func(func(t float64) float64 { return t }),
	"ease_in":     Func(func(t float64) float64 { return t * t }),
	"ease_out":    Func(func(t float64) float64 { return 1 - (1-t)*(1-t) }),
	"ease_in_out": Func(easeInOut),
	// falloff starts at full strength and decays to zero; the usual shape for
	// a jump boost or a dash impulse.
	"falloff": Func(func(t float64) float64 { return 1 - t }),
}

func easeInOut(t float64) float64 {
	if t < 0.5 {
		return 2 * t * t
	}
	u := -2*t + 2
	return 1 - u*u/2
}

// Preset returns a named built-in curve.
func Preset(name string) (Curve, error) {
	c, ok := presets[name]
	if !ok {
		return nil, fmt.Errorf("curve: preset %q: %w", name, ErrUnknown)
	}
	return c, nil
}
