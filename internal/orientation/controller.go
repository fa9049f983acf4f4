package orientation

import (
	"github.com/KirkDiggler/dicetray/internal/common/random"
	"github.com/KirkDiggler/dicetray/internal/models"
	"github.com/go-gl/mathgl/mgl64"
)

// Controller animates the pose of one die instance.
// It is not safe for concurrent use.
type Controller struct {
	id           string
	kind         models.DieKind
	faces        []models.Face
	spin         mgl64.Vec3
	stepFraction float64

	orientation mgl64.Quat
	euler       mgl64.Vec3
	state       State
}

// New creates a controller at rest with a freshly drawn spin vector
func New(cfg *Config) (*Controller, error) {
	if cfg == nil {
		return nil, ErrNilConfig
	}
	if cfg.Random == nil {
		return nil, ErrNilRandom
	}
	if !cfg.Kind.Valid() {
		return nil, ErrInvalidDieKind
	}
	if len(cfg.Faces) == 0 {
		return nil, ErrNoFaces
	}
	if cfg.StepFraction > 1 {
		return nil, ErrBadStepFraction
	}

	stepFraction := cfg.StepFraction
	if stepFraction <= 0 {
		stepFraction = DefaultStepFraction
	}

	return &Controller{
		id:    cfg.ID,
		kind:  cfg.Kind,
		faces: cfg.Faces,
		spin: mgl64.Vec3{
			random.Between(cfg.Random, SpinMin, SpinMax),
			random.Between(cfg.Random, SpinMin, SpinMax),
			random.Between(cfg.Random, SpinMin, SpinMax),
		},
		stepFraction: stepFraction,
		orientation:  mgl64.QuatIdent(),
		state:        StateIdle,
	}, nil
}

func (c *Controller) ID() string {
	return c.id
}

func (c *Controller) Kind() models.DieKind {
	return c.kind
}

func (c *Controller) Faces() []models.Face {
	return c.faces
}

// Spin returns the per-tick Euler increment fixed at creation
func (c *Controller) Spin() mgl64.Vec3 {
	return c.spin
}

// Orientation returns the current pose
func (c *Controller) Orientation() mgl64.Quat {
	return c.orientation
}

// State returns the phase chosen by the last Step
func (c *Controller) State() State {
	return c.state
}

// Step advances the pose by one animation tick
func (c *Controller) Step(roll models.RollState) State {
	switch {
	case roll.IsRolling:
		c.state = StateSpinning
		c.euler = c.euler.Add(c.spin)
		c.orientation = QuatFromEuler(c.euler)
	case roll.HasResult():
		c.state = StateSettling
		target, _ := TargetRotation(c.faces, roll.Result)
		c.orientation = slerpToward(c.orientation, target, c.stepFraction)
		c.euler = EulerFromQuat(c.orientation)
	default:
		c.state = StateIdle
	}
	return c.state
}

// Settled reports whether the pose is within tolerance radians of the result's face
func (c *Controller) Settled(roll models.RollState, tolerance float64) bool {
	if roll.IsRolling {
		return false
	}
	target, ok := TargetRotation(c.faces, roll.Result)
	if !ok {
		return false
	}
	return AngleBetween(c.orientation, target) <= tolerance
}
