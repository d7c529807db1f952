package component

// Input stores per-frame input state for an entity. The *Pressed fields are
// true only on the frame the button went down.
type Input struct {
	MoveX           float64
	Jump            bool
	JumpPressed     bool
	DashPressed     bool
	InteractPressed bool
	Swap            bool
}

var InputComponent = NewComponent[Input]()

// IntentEdges remembers the last input levels seen by the intent system so
// it can emit edge-triggered intents.
type IntentEdges struct {
	MoveX float64
	Swap  bool
}

var IntentEdgesComponent = NewComponent[IntentEdges]()
