package widget

import (
	"time"

	"github.com/KirkDiggler/dicetray/internal/common/clock"
	"github.com/KirkDiggler/dicetray/internal/common/random"
	"github.com/KirkDiggler/dicetray/internal/common/uuid"
	"github.com/KirkDiggler/dicetray/internal/dice"
	"github.com/KirkDiggler/dicetray/internal/geometry"
	"github.com/KirkDiggler/dicetray/internal/models"
	"github.com/KirkDiggler/dicetray/internal/orientation"
	"github.com/go-gl/mathgl/mgl64"
)

const (
	// DefaultSettleDelay is how long a die spins before the result lands
	DefaultSettleDelay = 800 * time.Millisecond

	// SettledTolerance is the angle, in radians, under which a die counts as at rest
	SettledTolerance = 1e-3
)

// Config holds configuration for the widget service
type Config struct {
	// DefaultDie is the die on the table at mount, D6 when unset
	DefaultDie models.DieKind

	// SettleDelay overrides DefaultSettleDelay when positive
	SettleDelay time.Duration

	// StepFraction overrides the settling step when positive
	StepFraction float64

	// Service dependencies
	Configurator  geometry.Configurator
	DiceRoller    dice.Roller
	Random        random.Source
	Clock         clock.Clock
	UUIDGenerator uuid.UUID

	// Renderer receives every frame when set
	Renderer Renderer
}

// Frame is everything a host needs to draw the die for one tick
type Frame struct {
	// Tick counts frames since the widget was mounted, starting at 1
	Tick uint64

	// Delta is the elapsed time reported by the host for this frame
	Delta time.Duration

	// DieID identifies the die instance
	DieID string

	// Kind is the die on the table
	Kind models.DieKind

	// Mesh is the die surface in its rest frame
	Mesh *models.DieMesh

	// Labels place the face numbers in the rest frame
	Labels []models.LabelTransform

	// Orientation is the pose to draw the mesh and labels with
	Orientation mgl64.Quat

	// Phase is the animation phase this frame was produced in
	Phase orientation.State

	// Roll is the roll state at the time of the frame
	Roll models.RollState

	// Instruction is the hint text for the user
	Instruction string
}

// SelectDieInput contains parameters for switching dice
type SelectDieInput struct {
	// Kind is the die to put on the table
	Kind models.DieKind
}

// SelectDieOutput contains the result of switching dice
type SelectDieOutput struct {
	// DieID identifies the new die instance
	DieID string

	// State is the reset roll state
	State models.RollState

	// Faces are the numbered faces of the new die
	Faces []models.Face

	// CancelledRoll is true when a pending roll was dropped by the switch
	CancelledRoll bool
}

// RollInput contains parameters for rolling
type RollInput struct {
}

// RollOutput contains the result of a roll request
type RollOutput struct {
	// Started is false when the die was already rolling and the request was ignored
	Started bool

	// State is the roll state after the request
	State models.RollState
}

// TickInput contains parameters for advancing a frame
type TickInput struct {
	// Delta is the time since the previous frame
	Delta time.Duration
}

// TickOutput contains the frame produced by a tick
type TickOutput struct {
	Frame *Frame
}

// GetStateInput defines the input for reading the widget state
type GetStateInput struct {
}

// GetStateOutput defines the output for reading the widget state
type GetStateOutput struct {
	// DieID identifies the die instance
	DieID string

	// State is the current roll state
	State models.RollState

	// Instruction is the hint text for the user
	Instruction string

	// Settled is true once the die is at rest on its result
	Settled bool
}
