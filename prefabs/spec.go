package prefabs

import (
	"errors"
	"fmt"
	"image/color"
	"strconv"
	"strings"

	"github.com/milk9111/charmotion/curve"
	"github.com/milk9111/charmotion/motion"
	"gopkg.in/yaml.v3"
)

var (
	ErrNoCurve        = errors.New("prefabs: curve has no source")
	ErrAmbiguousCurve = errors.New("prefabs: curve has more than one source")
)

func LoadSpec[T any](filename string) (T, error) {
	var spec T
	if err := loadInto(filename, &spec); err != nil {
		var zero T
		return zero, err
	}
	return spec, nil
}

// loadInto decodes a prefab over dst, so fields the file leaves out keep
// the values dst already holds.
func loadInto(filename string, dst any) error {
	data, err := Load(filename)
	if err != nil {
		return fmt.Errorf("prefabs: load %s: %w", filename, err)
	}
	if err := yaml.Unmarshal(data, dst); err != nil {
		return fmt.Errorf("prefabs: unmarshal %s: %w", filename, err)
	}
	return nil
}

type TransformSpec struct {
	X        float64 `yaml:"x"`
	Y        float64 `yaml:"y"`
	Rotation float64 `yaml:"rotation"`
}

type ColliderSpec struct {
	Width         float64 `yaml:"width"`
	Height        float64 `yaml:"height"`
	Mass          float64 `yaml:"mass"`
	Friction      float64 `yaml:"friction"`
	AirFriction   float64 `yaml:"air_friction"`
	Elasticity    float64 `yaml:"elasticity"`
	Static        bool    `yaml:"static"`
	FixedRotation bool    `yaml:"fixed_rotation"`
}

type RenderSpec struct {
	Width  float64    `yaml:"width"`
	Height float64    `yaml:"height"`
	Color  *YAMLColor `yaml:"color"`
	Layer  int        `yaml:"layer"`
}

// RGBA returns the spec color, or fallback when none is set.
func (r RenderSpec) RGBA(fallback color.RGBA) color.RGBA {
	if r.Color == nil || r.Color.Color == nil {
		return fallback
	}
	return color.RGBAModel.Convert(r.Color.Color).(color.RGBA)
}

// CurveSpec names exactly one curve source: a constant, a preset, a list of
// keyframes or a tengo script under scripts/.
type CurveSpec struct {
	Constant *float64    `yaml:"constant,omitempty"`
	Preset   string      `yaml:"preset,omitempty"`
	Keys     []curve.Key `yaml:"keys,omitempty"`
	Script   string      `yaml:"script,omitempty"`
	Samples  int         `yaml:"samples,omitempty"`
}

// UnmarshalYAML replaces the whole spec, so a file that names a curve never
// inherits a second source from the defaults. A scalar is shorthand for a
// constant or a preset name.
func (s *CurveSpec) UnmarshalYAML(value *yaml.Node) error {
	if value.Kind == yaml.ScalarNode {
		if v, err := strconv.ParseFloat(value.Value, 64); err == nil {
			*s = CurveSpec{Constant: &v}
			return nil
		}
		*s = CurveSpec{Preset: value.Value}
		return nil
	}

	type plain CurveSpec
	var p plain
	if err := value.Decode(&p); err != nil {
		return err
	}
	*s = CurveSpec(p)
	return nil
}

func (s CurveSpec) sources() int {
	n := 0
	if s.Constant != nil {
		n++
	}
	if s.Preset != "" {
		n++
	}
	if len(s.Keys) > 0 {
		n++
	}
	if s.Script != "" {
		n++
	}
	return n
}

func (s CurveSpec) Build() (curve.Curve, error) {
	switch s.sources() {
	case 0:
		return nil, ErrNoCurve
	case 1:
	default:
		return nil, ErrAmbiguousCurve
	}

	switch {
	case s.Constant != nil:
		return curve.Constant(*s.Constant), nil
	case s.Preset != "":
		return curve.Preset(s.Preset)
	case len(s.Keys) > 0:
		return curve.NewKeyframes(s.Keys)
	default:
		src, err := LoadScript(s.Script)
		if err != nil {
			return nil, fmt.Errorf("prefabs: load script %s: %w", s.Script, err)
		}
		samples := s.Samples
		if samples == 0 {
			samples = curve.DefaultSamples
		}
		c, err := curve.CompileScript(src, samples)
		if err != nil {
			return nil, fmt.Errorf("prefabs: script %s: %w", s.Script, err)
		}
		return c, nil
	}
}

func constantCurve(v float64) CurveSpec {
	return CurveSpec{Constant: &v}
}

// MotionSpec is the YAML form of motion.Config. Durations are in seconds.
type MotionSpec struct {
	MovementSpeed         float64   `yaml:"movement_speed"`
	MaxXVelocity          float64   `yaml:"max_x_velocity"`
	JumpForceUpMultiplier float64   `yaml:"jump_force_up_multiplier"`
	JumpCurve             CurveSpec `yaml:"jump_curve"`
	MaxJumps              int       `yaml:"max_jumps"`
	FallSpeedMultiplier   float64   `yaml:"fall_speed_multiplier"`
	JumpTime              float64   `yaml:"jump_time"`
	DashDuration          float64   `yaml:"dash_duration"`
	DashForce             float64   `yaml:"dash_force"`
	DashCurve             CurveSpec `yaml:"dash_curve"`
	DashCooldown          float64   `yaml:"dash_cooldown"`
}

// DefaultMotionSpec mirrors motion.DefaultConfig.
func DefaultMotionSpec() MotionSpec {
	d := motion.DefaultConfig()
	return MotionSpec{
		MovementSpeed:         d.MovementSpeed,
		MaxXVelocity:          d.MaxXVelocity,
		JumpForceUpMultiplier: d.JumpForceUpMultiplier,
		JumpCurve:             constantCurve(1),
		MaxJumps:              d.MaxJumps,
		FallSpeedMultiplier:   d.FallSpeedMultiplier,
		JumpTime:              d.JumpTime,
		DashDuration:          d.DashDuration,
		DashForce:             d.DashForce,
		DashCurve:             constantCurve(1),
		DashCooldown:          d.DashCooldown,
	}
}

// Build resolves the curves and validates the result.
func (s MotionSpec) Build() (motion.Config, error) {
	jump, err := s.JumpCurve.Build()
	if err != nil {
		return motion.Config{}, fmt.Errorf("prefabs: jump curve: %w", err)
	}
	dash, err := s.DashCurve.Build()
	if err != nil {
		return motion.Config{}, fmt.Errorf("prefabs: dash curve: %w", err)
	}

	cfg := motion.Config{
		MovementSpeed:         s.MovementSpeed,
		MaxXVelocity:          s.MaxXVelocity,
		JumpForceUpMultiplier: s.JumpForceUpMultiplier,
		JumpCurve:             jump,
		MaxJumps:              s.MaxJumps,
		FallSpeedMultiplier:   s.FallSpeedMultiplier,
		JumpTime:              s.JumpTime,
		DashDuration:          s.DashDuration,
		DashForce:             s.DashForce,
		DashCurve:             dash,
		DashCooldown:          s.DashCooldown,
	}
	if err := cfg.Validate(); err != nil {
		return motion.Config{}, err
	}
	return cfg, nil
}

type PlayerSpec struct {
	Name      string        `yaml:"name"`
	Transform TransformSpec `yaml:"transform"`
	Collider  ColliderSpec  `yaml:"collider"`
	Render    RenderSpec    `yaml:"render"`
	Motion    MotionSpec    `yaml:"motion"`
}

func LoadPlayerSpec() (*PlayerSpec, error) {
	spec := PlayerSpec{Motion: DefaultMotionSpec()}
	if err := loadInto("player.yaml", &spec); err != nil {
		return nil, err
	}
	return &spec, nil
}

// ParsePlayerSpec decodes a player prefab from raw YAML over the default
// tuning.
func ParsePlayerSpec(data []byte) (*PlayerSpec, error) {
	spec := PlayerSpec{Motion: DefaultMotionSpec()}
	if err := yaml.Unmarshal(data, &spec); err != nil {
		return nil, fmt.Errorf("prefabs: unmarshal player: %w", err)
	}
	return &spec, nil
}

type CameraSpec struct {
	Name       string        `yaml:"name"`
	Transform  TransformSpec `yaml:"transform"`
	Target     string        `yaml:"target"`
	Zoom       float64       `yaml:"zoom"`
	Smoothness float64       `yaml:"smoothness"`
}

func LoadCameraSpec() (*CameraSpec, error) {
	spec, err := LoadSpec[CameraSpec]("camera.yaml")
	if err != nil {
		return nil, err
	}
	return &spec, nil
}

// DustSpec is the landing effect prefab. Lifetime is in seconds.
type DustSpec struct {
	Name     string     `yaml:"name"`
	Render   RenderSpec `yaml:"render"`
	Lifetime float64    `yaml:"lifetime"`
	OffsetY  float64    `yaml:"offset_y"`
}

func LoadDustSpec() (*DustSpec, error) {
	spec, err := LoadSpec[DustSpec]("dust.yaml")
	if err != nil {
		return nil, err
	}
	return &spec, nil
}

// DiamondSpec is the explodable prefab.
type DiamondSpec struct {
	Name     string       `yaml:"name"`
	Collider ColliderSpec `yaml:"collider"`
	Render   RenderSpec   `yaml:"render"`
	Shards   int          `yaml:"shards"`
}

func LoadDiamondSpec() (*DiamondSpec, error) {
	spec, err := LoadSpec[DiamondSpec]("diamond.yaml")
	if err != nil {
		return nil, err
	}
	return &spec, nil
}

type PlatformSpec struct {
	Transform TransformSpec `yaml:"transform"`
	Width     float64       `yaml:"width"`
	Height    float64       `yaml:"height"`
	Friction  float64       `yaml:"friction"`
	Color     *YAMLColor    `yaml:"color"`
}

// LevelSpec lays out static platforms, diamond positions and the player
// spawn point.
type LevelSpec struct {
	Name      string          `yaml:"name"`
	Spawn     TransformSpec   `yaml:"spawn"`
	Platforms []PlatformSpec  `yaml:"platforms"`
	Diamonds  []TransformSpec `yaml:"diamonds"`
}

func LoadLevelSpec(name string) (*LevelSpec, error) {
	spec, err := LoadSpec[LevelSpec](name)
	if err != nil {
		return nil, err
	}
	return &spec, nil
}

type YAMLColor struct {
	color.Color
}

func (c *YAMLColor) UnmarshalYAML(value *yaml.Node) error {
	if value.Kind != yaml.ScalarNode {
		return fmt.Errorf("color must be a string")
	}

	s := strings.TrimPrefix(value.Value, "#")

	if len(s) != 6 && len(s) != 8 {
		return fmt.Errorf("invalid color format: %s", value.Value)
	}

	parse := func(start int) (uint8, error) {
		v, err := strconv.ParseUint(s[start:start+2], 16, 8)
		return uint8(v), err
	}

	r, err := parse(0)
	if err != nil {
		return err
	}
	g, err := parse(2)
	if err != nil {
		return err
	}
	b, err := parse(4)
	if err != nil {
		return err
	}

	a := uint8(255)
	if len(s) == 8 {
		a, err = parse(6)
		if err != nil {
			return err
		}
	}

	c.Color = color.NRGBA{R: r, G: g, B: b, A: a}
	return nil
}
