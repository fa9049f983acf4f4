package models

const (
	// InstructionRolling is shown while the die is spinning
	InstructionRolling = "ROLLING..."

	// InstructionIdle invites the user to roll
	InstructionIdle = "CLICK THE DICE TO ROLL"
)

// RollState is the widget-level state of the current die
type RollState struct {
	// SelectedDie is the die currently on the table
	SelectedDie DieKind

	// Result is the settled value, or 0 while no result exists
	Result int

	// IsRolling is true between a roll request and its settle
	IsRolling bool
}

// HasResult reports whether a settled value is present
func (s RollState) HasResult() bool {
	return s.Result > 0
}

// Instruction returns the hint text matching the state
func (s RollState) Instruction() string {
	if s.IsRolling {
		return InstructionRolling
	}
	return InstructionIdle
}
