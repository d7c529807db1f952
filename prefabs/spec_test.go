package prefabs

import (
	"errors"
	"math"
	"testing"

	"github.com/milk9111/charmotion/motion"
)

func TestEmbeddedPrefabsLoad(t *testing.T) {
	player, err := LoadPlayerSpec()
	if err != nil {
		t.Fatalf("load player: %v", err)
	}
	cfg, err := player.Motion.Build()
	if err != nil {
		t.Fatalf("build player motion: %v", err)
	}
	if cfg.MaxJumps != 2 {
		t.Fatalf("expected 2 jumps from player.yaml, got %d", cfg.MaxJumps)
	}
	if got := cfg.JumpCurve.Evaluate(0); math.Abs(got-1) > 1e-9 {
		t.Fatalf("jump boost script should start at 1, got %g", got)
	}
	if got := cfg.JumpCurve.Evaluate(1); math.Abs(got) > 1e-6 {
		t.Fatalf("jump boost script should end at 0, got %g", got)
	}

	if _, err := LoadCameraSpec(); err != nil {
		t.Fatalf("load camera: %v", err)
	}
	dust, err := LoadDustSpec()
	if err != nil {
		t.Fatalf("load dust: %v", err)
	}
	if dust.Lifetime <= 0 {
		t.Fatalf("dust lifetime should be positive")
	}
	diamond, err := LoadDiamondSpec()
	if err != nil {
		t.Fatalf("load diamond: %v", err)
	}
	if diamond.Shards <= 0 {
		t.Fatalf("diamond should shatter into shards")
	}
	level, err := LoadLevelSpec("level.yaml")
	if err != nil {
		t.Fatalf("load level: %v", err)
	}
	if len(level.Platforms) == 0 {
		t.Fatalf("level should have platforms")
	}
}

func TestParsePlayerSpecKeepsDefaults(t *testing.T) {
	spec, err := ParsePlayerSpec([]byte("motion:\n  max_jumps: 3\n"))
	if err != nil {
		t.Fatalf("parse: %v", err)
	}
	cfg, err := spec.Motion.Build()
	if err != nil {
		t.Fatalf("build: %v", err)
	}
	def := motion.DefaultConfig()
	if cfg.MaxJumps != 3 {
		t.Fatalf("expected override to 3 jumps, got %d", cfg.MaxJumps)
	}
	if cfg.JumpTime != def.JumpTime || cfg.DashForce != def.DashForce {
		t.Fatalf("unset fields should keep defaults: %+v", cfg)
	}
}

func TestCurveSpecBuild(t *testing.T) {
	tests := []struct {
		name    string
		src     string
		at      float64
		want    float64
		wantErr error
	}{
		{name: "scalar_constant", src: "motion:\n  jump_curve: 0.5\n", at: 0.3, want: 0.5},
		{name: "scalar_preset", src: "motion:\n  jump_curve: linear\n", at: 0.3, want: 0.3},
		{name: "preset_replaces_default", src: "motion:\n  jump_curve:\n    preset: falloff\n", at: 0.25, want: 0.75},
		{name: "keys", src: "motion:\n  jump_curve:\n    keys:\n      - {t: 0, v: 0}\n      - {t: 1, v: 2}\n", at: 0.5, want: 1},
		{name: "script", src: "motion:\n  jump_curve:\n    script: ease_out.tengo\n    samples: 128\n", at: 1, want: 1},
		{name: "empty", src: "motion:\n  jump_curve: {}\n", wantErr: ErrNoCurve},
		{name: "ambiguous", src: "motion:\n  jump_curve:\n    preset: linear\n    constant: 1\n", wantErr: ErrAmbiguousCurve},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			spec, err := ParsePlayerSpec([]byte(tc.src))
			if err != nil {
				t.Fatalf("parse: %v", err)
			}
			c, err := spec.Motion.JumpCurve.Build()
			if tc.wantErr != nil {
				if !errors.Is(err, tc.wantErr) {
					t.Fatalf("expected %v, got %v", tc.wantErr, err)
				}
				return
			}
			if err != nil {
				t.Fatalf("build: %v", err)
			}
			if got := c.Evaluate(tc.at); math.Abs(got-tc.want) > 1e-6 {
				t.Fatalf("Evaluate(%g) = %g, want %g", tc.at, got, tc.want)
			}
		})
	}
}

func TestMotionSpecRejectsInvalidTuning(t *testing.T) {
	spec, err := ParsePlayerSpec([]byte("motion:\n  jump_time: 0\n"))
	if err != nil {
		t.Fatalf("parse: %v", err)
	}
	if _, err := spec.Motion.Build(); !errors.Is(err, motion.ErrBadConfig) {
		t.Fatalf("expected ErrBadConfig, got %v", err)
	}
}

func TestCleanPaths(t *testing.T) {
	scripts := map[string]string{
		"ease_out.tengo":                 "scripts/ease_out.tengo",
		"scripts/ease_out.tengo":         "scripts/ease_out.tengo",
		"prefabs/scripts/ease_out.tengo": "scripts/ease_out.tengo",
	}
	for in, want := range scripts {
		if got := cleanScriptPath(in); got != want {
			t.Fatalf("cleanScriptPath(%q) = %q, want %q", in, got, want)
		}
	}
	if got := cleanPrefabPath("prefabs/player.yaml"); got != "player.yaml" {
		t.Fatalf("cleanPrefabPath = %q", got)
	}
}

func TestAffectsPlayer(t *testing.T) {
	cases := map[string]bool{
		"player.yaml":            true,
		"scripts/ease_out.tengo": true,
		"dust.yaml":              false,
	}
	for name, want := range cases {
		if got := AffectsPlayer(name); got != want {
			t.Fatalf("AffectsPlayer(%q) = %v, want %v", name, got, want)
		}
	}
}
