package curve

import (
	"fmt"
	"sort"

	"github.com/milk9111/charmotion/common"
)

// Key is a single curve sample.
type Key struct {
	T float64 `yaml:"t"`
	V float64 `yaml:"v"`
}

// Keyframes interpolates linearly between keys and holds the first and last
// values outside their range.
type Keyframes struct {
	keys []Key
}

func NewKeyframes(keys []Key) (*Keyframes, error) {
	if len(keys) == 0 {
		return nil, ErrNoKeys
	}
	copied := append([]Key(nil), keys...)
	for i := 1; i < len(copied); i++ {
		if copied[i].T <= copied[i-1].T {
			return nil, fmt.Errorf("curve: key %d at t=%g: %w", i, copied[i].T, ErrUnsortedKeys)
		}
	}
	return &Keyframes{keys: copied}, nil
}

func (k *Keyframes) Evaluate(t float64) float64 {
	if k == nil || len(k.keys) == 0 {
		return 0
	}
	t = common.Clamp01(t)
	first := k.keys[0]
	last := k.keys[len(k.keys)-1]
	if t <= first.T {
		return first.V
	}
	if t >= last.T {
		return last.V
	}

	// index of the first key strictly after t
	i := sort.Search(len(k.keys), func(i int) bool { return k.keys[i].T > t })
	a, b := k.keys[i-1], k.keys[i]
	return common.Lerp(a.V, b.V, (t-a.T)/(b.T-a.T))
}

// Keys returns a copy of the curve keys.
func (k *Keyframes) Keys() []Key {
	if k == nil {
		return nil
	}
	return append([]Key(nil), k.keys...)
}
