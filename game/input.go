package game

// Input is one tick's worth of control state. Held flags are level
// state sampled by the caller; Pressed and Released flags are edges
// detected by the caller, true for exactly one tick.
type Input struct {
	// MoveX is -1..1, negative left. MoveY is -1..1, negative down.
	MoveX float64
	MoveY float64

	JumpHeld     bool
	JumpPressed  bool
	JumpReleased bool

	AttackPressed bool
	DashPressed   bool
	HealHeld      bool
}
