package orientation

import (
	"github.com/KirkDiggler/dicetray/internal/common/random"
	"github.com/KirkDiggler/dicetray/internal/models"
)

// State is the animation phase of a die instance
type State int

const (
	// StateIdle leaves the pose alone
	StateIdle State = iota

	// StateSpinning adds the spin vector to the Euler angles every tick
	StateSpinning

	// StateSettling eases the pose toward the face showing the result
	StateSettling
)

func (s State) String() string {
	switch s {
	case StateIdle:
		return "idle"
	case StateSpinning:
		return "spinning"
	case StateSettling:
		return "settling"
	}
	return "unknown"
}

const (
	// DefaultStepFraction is the share of the remaining angle closed per settling tick
	DefaultStepFraction = 0.1

	// SpinMin and SpinMax bound each spin component, in radians per tick
	SpinMin = 0.1
	SpinMax = 0.3
)

// Config holds configuration for a die instance controller
type Config struct {
	// ID identifies the die instance
	ID string

	// Kind is the die being animated
	Kind models.DieKind

	// Faces are the numbered faces of Kind
	Faces []models.Face

	// Random draws the spin vector
	Random random.Source

	// StepFraction overrides DefaultStepFraction when positive
	StepFraction float64
}
