package main

import (
	"errors"
	"os"
	"strings"
	"testing"
)

func TestParseScenario(t *testing.T) {
	tests := []struct {
		name    string
		src     string
		wantErr string
	}{
		{name: "ok", src: "frames: 10\nintents:\n  - {frame: 3, kind: jump}\n  - {frame: 1, kind: move, axis: 1}\n"},
		{name: "no_frames", src: "intents: []\n", wantErr: "no frames"},
		{name: "unknown_intent", src: "frames: 5\nintents:\n  - {frame: 1, kind: teleport}\n", wantErr: "unknown intent"},
		{name: "frame_out_of_range", src: "frames: 5\nintents:\n  - {frame: 5, kind: jump}\n", wantErr: "outside"},
		{name: "bad_yaml", src: "frames: [\n", wantErr: "unmarshal"},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			sc, err := ParseScenario([]byte(tc.src))
			if tc.wantErr != "" {
				if err == nil || !strings.Contains(err.Error(), tc.wantErr) {
					t.Fatalf("expected error containing %q, got %v", tc.wantErr, err)
				}
				return
			}
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if sc.Intents[0].Frame != 1 || sc.Intents[1].Frame != 3 {
				t.Fatalf("intents not sorted by frame: %+v", sc.Intents)
			}
		})
	}

	if _, err := ParseScenario([]byte("frames: 0\n")); !errors.Is(err, ErrNoFrames) {
		t.Fatalf("expected ErrNoFrames, got %v", err)
	}
}

func loadScenario(t *testing.T, path string) *Scenario {
	t.Helper()
	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("read %s: %v", path, err)
	}
	sc, err := ParseScenario(data)
	if err != nil {
		t.Fatalf("parse %s: %v", path, err)
	}
	return sc
}

func TestRunDashCooldown(t *testing.T) {
	frames, err := Run(loadScenario(t, "scenarios/dash_cooldown.yaml"))
	if err != nil {
		t.Fatalf("run: %v", err)
	}
	if len(frames) != 180 {
		t.Fatalf("expected 180 frames, got %d", len(frames))
	}

	landed := frames[40]
	if landed.State.Airborne || landed.State.JumpsRemaining != 2 {
		t.Fatalf("player should have landed with a full jump budget by frame 40: %+v", landed.State)
	}

	checks := []struct {
		frame   int
		dashing bool
		canDash bool
	}{
		{frame: 55, dashing: true, canDash: false},
		{frame: 75, dashing: false, canDash: false},
		{frame: 100, dashing: false, canDash: false},
		{frame: 135, dashing: true, canDash: false},
	}
	for _, c := range checks {
		f := frames[c.frame]
		if f.Dashing != c.dashing || f.State.CanDash != c.canDash {
			t.Fatalf("frame %d: dashing=%v canDash=%v, want %v/%v", c.frame, f.Dashing, f.State.CanDash, c.dashing, c.canDash)
		}
	}
	if frames[55].VX >= 0 {
		t.Fatalf("dash should carry the player left, vx=%g", frames[55].VX)
	}
	if frames[50].Intents != "dash" {
		t.Fatalf("frame 50 should record the dash intent, got %q", frames[50].Intents)
	}
}

func TestRunInterruptAndSwapLock(t *testing.T) {
	frames, err := Run(loadScenario(t, "scenarios/interrupt_swap.yaml"))
	if err != nil {
		t.Fatalf("run: %v", err)
	}

	if !frames[51].Dashing {
		t.Fatalf("frame 51: dash should be running")
	}
	for _, i := range []int{54, 90} {
		if f := frames[i]; f.Dashing || f.State.CanDash {
			t.Fatalf("frame %d: interrupted dash should be over and cooling down: dashing=%v canDash=%v", i, f.Dashing, f.State.CanDash)
		}
	}
	if !frames[125].State.CanDash {
		t.Fatalf("dash gate should reopen after the cooldown")
	}

	if frames[62].State.WantsToSwap {
		t.Fatalf("frame 62: swap should be dropped while locked")
	}
	if !frames[70].State.WantsToSwap {
		t.Fatalf("frame 70: swap should latch after unlock")
	}
}

func TestSample(t *testing.T) {
	frames := make([]Frame, 10)
	for i := range frames {
		frames[i].Frame = i
	}
	got := sample(frames, 4)
	want := []int{0, 4, 8, 9}
	if len(got) != len(want) {
		t.Fatalf("expected %d frames, got %d", len(want), len(got))
	}
	for i, f := range got {
		if f.Frame != want[i] {
			t.Fatalf("sample[%d] = %d, want %d", i, f.Frame, want[i])
		}
	}
}
