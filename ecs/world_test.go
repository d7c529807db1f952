package ecs

import (
	"errors"
	"testing"

	"github.com/milk9111/charmotion/ecs/component"
)

func TestWorldEntityLifecycle(t *testing.T) {
	cases := []struct {
		name         string
		create       int
		destroyIndex int // -1 = none
	}{
		{"single", 1, 0},
		{"three_create_destroy_middle", 3, 1},
		{"none_destroy", 2, -1},
	}

	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			w := NewWorld()
			ents := make([]Entity, 0, c.create)
			for i := 0; i < c.create; i++ {
				ents = append(ents, CreateEntity(w))
			}
			if len(Entities(w)) != c.create {
				t.Fatalf("expected %d entities, got %d", c.create, len(Entities(w)))
			}
			if c.destroyIndex >= 0 {
				if !DestroyEntity(w, ents[c.destroyIndex]) {
					t.Fatalf("DestroyEntity should return true for alive entity")
				}
				if IsAlive(w, ents[c.destroyIndex]) {
					t.Fatalf("entity should not be alive after destruction")
				}
				if DestroyEntity(w, ents[c.destroyIndex]) {
					t.Fatalf("second destroy should report false")
				}
				if len(Entities(w)) != c.create-1 {
					t.Fatalf("expected %d entities after destroy, got %d", c.create-1, len(Entities(w)))
				}
			}
		})
	}
}

func TestWorldReusesSlotsWithNewGeneration(t *testing.T) {
	w := NewWorld()
	old := CreateEntity(w)
	DestroyEntity(w, old)
	fresh := CreateEntity(w)

	if fresh.ID() != old.ID() {
		t.Fatalf("expected slot %d to be reused, got %d", old.ID(), fresh.ID())
	}
	if fresh == old {
		t.Fatalf("reused slot must carry a new generation")
	}
	if IsAlive(w, old) {
		t.Fatalf("stale handle should not be alive")
	}
	if !fresh.Valid() {
		t.Fatalf("fresh entity should be valid")
	}
	if Entity(0).Valid() {
		t.Fatalf("zero entity should be invalid")
	}
}

func intPtr(i int) *int {
	return &i
}

func stringPtr(s string) *string {
	return &s
}

func TestWorldComponents(t *testing.T) {
	w := NewWorld()
	ints := component.NewComponent[int]()
	strs := component.NewComponent[string]()

	e1 := CreateEntity(w)
	e2 := CreateEntity(w)

	tests := []struct {
		name  string
		setup func() error
		check func(t *testing.T)
	}{
		{
			name:  "add_int_to_e1",
			setup: func() error { return Add(w, e1, ints.Kind(), intPtr(10)) },
			check: func(t *testing.T) {
				v, ok := Get(w, e1, ints.Kind())
				if !ok || *v != 10 {
					t.Fatalf("expected 10, got %v ok=%v", v, ok)
				}
			},
		},
		{
			name: "add_str_to_both",
			setup: func() error {
				if err := Add(w, e1, strs.Kind(), stringPtr("a")); err != nil {
					return err
				}
				return Add(w, e2, strs.Kind(), stringPtr("b"))
			},
			check: func(t *testing.T) {
				if !Has(w, e1, strs.Kind()) || !Has(w, e2, strs.Kind()) {
					t.Fatalf("expected both entities to have string component")
				}
				if got := w.Query(ints.Kind(), strs.Kind()); len(got) != 1 || got[0] != e1 {
					t.Fatalf("expected query to return only e1, got %v", got)
				}
			},
		},
		{
			name:  "replace_value",
			setup: func() error { return Add(w, e1, ints.Kind(), intPtr(11)) },
			check: func(t *testing.T) {
				if v, _ := Get(w, e1, ints.Kind()); *v != 11 {
					t.Fatalf("expected replaced value 11, got %d", *v)
				}
			},
		},
		{
			name: "remove_string",
			setup: func() error {
				if !Remove(w, e2, strs.Kind()) {
					return errors.New("remove reported missing component")
				}
				return nil
			},
			check: func(t *testing.T) {
				if Has(w, e2, strs.Kind()) {
					t.Fatalf("string component should be gone")
				}
				if Remove(w, e2, strs.Kind()) {
					t.Fatalf("second remove should report false")
				}
			},
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if err := tc.setup(); err != nil {
				t.Fatalf("setup failed: %v", err)
			}
			tc.check(t)
		})
	}
}

func TestWorldRejectsBadWrites(t *testing.T) {
	w := NewWorld()
	h := component.NewComponent[int]()
	e := CreateEntity(w)
	DestroyEntity(w, e)

	if err := Add(w, e, h.Kind(), intPtr(1)); !errors.Is(err, component.ErrEntityNotAlive) {
		t.Fatalf("expected ErrEntityNotAlive, got %v", err)
	}
	live := CreateEntity(w)
	if err := Add(w, live, h.Kind(), nil); !errors.Is(err, component.ErrNilComponent) {
		t.Fatalf("expected ErrNilComponent, got %v", err)
	}
	var zero component.ComponentKind[int]
	if err := Add(w, live, zero, intPtr(1)); !errors.Is(err, component.ErrInvalidComponentKind) {
		t.Fatalf("expected ErrInvalidComponentKind, got %v", err)
	}
}

func TestDestroyDropsComponents(t *testing.T) {
	w := NewWorld()
	h := component.NewComponent[int]()
	e := CreateEntity(w)
	if err := Add(w, e, h.Kind(), intPtr(1)); err != nil {
		t.Fatal(err)
	}
	DestroyEntity(w, e)
	reused := CreateEntity(w)
	if Has(w, reused, h.Kind()) {
		t.Fatalf("reused slot inherited a component")
	}
	if _, ok := w.First(h.Kind()); ok {
		t.Fatalf("query should not see destroyed entities")
	}
}

func TestForEach(t *testing.T) {
	w := NewWorld()
	h := component.NewComponent[int]()

	e1 := CreateEntity(w)
	e2 := CreateEntity(w)
	e3 := CreateEntity(w)

	if err := Add(w, e1, h.Kind(), intPtr(1)); err != nil {
		t.Fatalf("add failed: %v", err)
	}
	if err := Add(w, e3, h.Kind(), intPtr(3)); err != nil {
		t.Fatalf("add failed: %v", err)
	}

	sum := 0
	seen := map[Entity]bool{}
	ForEach(w, h.Kind(), func(e Entity, v *int) {
		seen[e] = true
		sum += *v
		// destroying mid-iteration must be safe
		DestroyEntity(w, e)
	})
	if !seen[e1] || !seen[e3] || seen[e2] || sum != 4 {
		t.Fatalf("unexpected ForEach visit: seen=%v sum=%d", seen, sum)
	}
	if IsAlive(w, e1) || IsAlive(w, e3) || !IsAlive(w, e2) {
		t.Fatalf("destroy inside ForEach did not apply")
	}
}

func TestForEach2(t *testing.T) {
	w := NewWorld()
	ka := component.NewComponentKind[int]()
	kb := component.NewComponentKind[string]()

	e1 := CreateEntity(w)
	e2 := CreateEntity(w)
	if err := Add(w, e1, ka, intPtr(1)); err != nil {
		t.Fatal(err)
	}
	if err := Add(w, e2, ka, intPtr(2)); err != nil {
		t.Fatal(err)
	}
	if err := Add(w, e2, kb, stringPtr("x")); err != nil {
		t.Fatal(err)
	}

	var res []Entity
	ForEach2(w, ka, kb, func(e Entity, _ *int, s *string) {
		if *s != "x" {
			t.Fatalf("unexpected value %q", *s)
		}
		res = append(res, e)
	})
	if len(res) != 1 || res[0] != e2 {
		t.Fatalf("expected only e2, got %v", res)
	}
}

type countingSystem struct {
	calls int
	seen  int
}

func (s *countingSystem) Update(w *World) {
	s.calls++
	s.seen = w.Events().Len()
}

func TestWorldUpdateRunsSystemsAndFlushesEvents(t *testing.T) {
	w := NewWorld()
	first := &countingSystem{}
	w.AddSystem(first)
	w.AddSystem(nil)

	w.Events().Push(Event{Type: EventContact})
	w.Update()
	if first.calls != 1 || first.seen != 1 {
		t.Fatalf("system should run once and see the queued event: %+v", first)
	}
	if w.Events().Len() != 0 {
		t.Fatalf("events should be flushed after Update")
	}
}
