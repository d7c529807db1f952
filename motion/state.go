package motion

// Facing is the horizontal orientation of the character.
type Facing int

const (
	FacingRight Facing = iota
	FacingLeft
)

func (f Facing) String() string {
	if f == FacingLeft {
		return "left"
	}
	return "right"
}

// State is the motion state of one character.
type State struct {
	HorizontalInput float64 `yaml:"horizontal_input"`
	// DashDirection is the last non-zero horizontal input.
	DashDirection  float64 `yaml:"dash_direction"`
	Facing         Facing  `yaml:"facing"`
	FallFaster     bool    `yaml:"fall_faster"`
	JumpsRemaining int     `yaml:"jumps_remaining"`
	CanJump        bool    `yaml:"can_jump"`
	CanDash        bool    `yaml:"can_dash"`
	WantsToSwap    bool    `yaml:"wants_to_swap"`
	Airborne       bool    `yaml:"airborne"`
}

func newState() State {
	return State{
		Facing:  FacingRight,
		CanJump: true,
		CanDash: true,
	}
}

func (f Facing) MarshalYAML() (any, error) {
	return f.String(), nil
}
