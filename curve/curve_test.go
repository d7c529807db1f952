package curve

import (
	"errors"
	"math"
	"testing"
)

const eps = 1e-9

func TestKeyframesEvaluate(t *testing.T) {
	k, err := NewKeyframes([]Key{{T: 0, V: 0}, {T: 0.5, V: 2}, {T: 1, V: 1}})
	if err != nil {
		t.Fatalf("NewKeyframes: %v", err)
	}

	cases := []struct {
		name string
		t    float64
		want float64
	}{
		{"start", 0, 0},
		{"quarter", 0.25, 1},
		{"mid_key", 0.5, 2},
		{"three_quarter", 0.75, 1.5},
		{"end", 1, 1},
		{"below_range", -3, 0},
		{"above_range", 7, 1},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			if got := k.Evaluate(c.t); math.Abs(got-c.want) > eps {
				t.Fatalf("Evaluate(%v) = %v, want %v", c.t, got, c.want)
			}
		})
	}
}

func TestKeyframesRejectsBadKeys(t *testing.T) {
	if _, err := NewKeyframes(nil); !errors.Is(err, ErrNoKeys) {
		t.Fatalf("expected ErrNoKeys, got %v", err)
	}
	if _, err := NewKeyframes([]Key{{T: 0.5, V: 1}, {T: 0.5, V: 2}}); !errors.Is(err, ErrUnsortedKeys) {
		t.Fatalf("expected ErrUnsortedKeys, got %v", err)
	}
}

func TestKeyframesHoldsSingleKey(t *testing.T) {
	k, err := NewKeyframes([]Key{{T: 0.3, V: 4}})
	if err != nil {
		t.Fatalf("NewKeyframes: %v", err)
	}
	for _, x := range []float64{0, 0.3, 1} {
		if got := k.Evaluate(x); got != 4 {
			t.Fatalf("Evaluate(%v) = %v, want 4", x, got)
		}
	}
}

func TestConstant(t *testing.T) {
	c := Constant(1.5)
	if c.Evaluate(0) != 1.5 || c.Evaluate(1) != 1.5 {
		t.Fatalf("constant curve should not vary")
	}
}

func TestPresets(t *testing.T) {
	for _, name := range []string{"linear", "ease_in", "ease_out", "ease_in_out"} {
		t.Run(name, func(t *testing.T) {
			c, err := Preset(name)
			if err != nil {
				t.Fatalf("Preset: %v", err)
			}
			if got := c.Evaluate(0); math.Abs(got) > eps {
				t.Fatalf("Evaluate(0) = %v, want 0", got)
			}
			if got := c.Evaluate(1); math.Abs(got-1) > eps {
				t.Fatalf("Evaluate(1) = %v, want 1", got)
			}
			if got := c.Evaluate(2); math.Abs(got-1) > eps {
				t.Fatalf("Evaluate should clamp t, got %v", got)
			}
		})
	}
	if _, err := Preset("bogus"); !errors.Is(err, ErrUnknown) {
		t.Fatalf("expected ErrUnknown, got %v", err)
	}
}

func TestCompileScriptSamplesOnce(t *testing.T) {
	src := []byte(`
math := import("math")
out := math.pow(t, 2)
`)
	s, err := CompileScript(src, 4)
	if err != nil {
		t.Fatalf("CompileScript: %v", err)
	}

	// samples land on 0, .25, .5, .75, 1
	if got := s.Evaluate(0.5); math.Abs(got-0.25) > eps {
		t.Fatalf("Evaluate(0.5) = %v, want 0.25", got)
	}
	// halfway between the .25 and .5 samples: lerp(0.0625, 0.25)
	if got := s.Evaluate(0.375); math.Abs(got-0.15625) > eps {
		t.Fatalf("Evaluate(0.375) = %v, want 0.15625", got)
	}
	if got := s.Evaluate(1); math.Abs(got-1) > eps {
		t.Fatalf("Evaluate(1) = %v, want 1", got)
	}
}

func TestCompileScriptErrors(t *testing.T) {
	cases := []struct {
		name    string
		src     string
		samples int
	}{
		{"syntax", "out := (", 8},
		{"missing_out", "x := t", 8},
		{"zero_samples", "out := t", 0},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			if _, err := CompileScript([]byte(c.src), c.samples); err == nil {
				t.Fatalf("expected error")
			}
		})
	}
}

func TestNewSampledCopiesTable(t *testing.T) {
	if _, err := NewSampled(nil); !errors.Is(err, ErrNoKeys) {
		t.Fatalf("empty table: expected ErrNoKeys, got %v", err)
	}

	table := []float64{0, 1, 0}
	s, err := NewSampled(table)
	if err != nil {
		t.Fatalf("NewSampled: %v", err)
	}
	table[1] = 5
	if got := s.Evaluate(0.5); math.Abs(got-1) > eps {
		t.Fatalf("Evaluate(0.5) = %v, want 1 from the original table", got)
	}
	if got := s.Evaluate(0.25); math.Abs(got-0.5) > eps {
		t.Fatalf("Evaluate(0.25) = %v, want 0.5", got)
	}

	flat, _ := NewSampled([]float64{0.7})
	if got := flat.Evaluate(0.9); got != 0.7 {
		t.Fatalf("single sample = %v, want 0.7", got)
	}
}
