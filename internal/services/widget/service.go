package widget

import (
	"context"
	"fmt"
	"log"
	"sync"
	"time"

	"github.com/KirkDiggler/dicetray/internal/common/clock"
	"github.com/KirkDiggler/dicetray/internal/common/random"
	"github.com/KirkDiggler/dicetray/internal/common/uuid"
	"github.com/KirkDiggler/dicetray/internal/dice"
	"github.com/KirkDiggler/dicetray/internal/geometry"
	"github.com/KirkDiggler/dicetray/internal/models"
	"github.com/KirkDiggler/dicetray/internal/orientation"
)

// service implements the Service interface.
// The frame loop and the settle timer run on different goroutines, so all state sits behind mu.
type service struct {
	configurator  geometry.Configurator
	diceRoller    dice.Roller
	random        random.Source
	clock         clock.Clock
	uuidGenerator uuid.UUID
	renderer      Renderer
	settleDelay   time.Duration
	stepFraction  float64

	mu     sync.Mutex
	state  models.RollState
	die    *orientation.Controller
	mesh   *models.DieMesh
	labels []models.LabelTransform
	ticks  uint64
	closed bool

	// pending is the settle timer of the roll in flight; generation invalidates stale timers
	pending    clock.Timer
	generation uint64
}

// New creates a widget with the default die at rest showing 1
func New(cfg *Config) (*service, error) {
	if cfg == nil {
		return nil, ErrNilConfig
	}
	if cfg.Configurator == nil {
		return nil, ErrNilConfigurator
	}
	if cfg.DiceRoller == nil {
		return nil, ErrNilDiceRoller
	}
	if cfg.Random == nil {
		return nil, ErrNilRandom
	}
	if cfg.Clock == nil {
		return nil, ErrNilClock
	}
	if cfg.UUIDGenerator == nil {
		return nil, ErrNilUUIDGenerator
	}
	if cfg.SettleDelay < 0 {
		return nil, ErrInvalidSettleDelay
	}

	kind := cfg.DefaultDie
	if kind == 0 {
		kind = models.D6
	}
	if !kind.Valid() {
		return nil, fmt.Errorf("%w: %d", ErrInvalidDieKind, int(kind))
	}

	settleDelay := cfg.SettleDelay
	if settleDelay == 0 {
		settleDelay = DefaultSettleDelay
	}

	s := &service{
		configurator:  cfg.Configurator,
		diceRoller:    cfg.DiceRoller,
		random:        cfg.Random,
		clock:         cfg.Clock,
		uuidGenerator: cfg.UUIDGenerator,
		renderer:      cfg.Renderer,
		settleDelay:   settleDelay,
		stepFraction:  cfg.StepFraction,
	}

	if err := s.mountDie(kind); err != nil {
		return nil, err
	}

	return s, nil
}

// mountDie puts a fresh die instance of kind on the table. Callers hold mu.
func (s *service) mountDie(kind models.DieKind) error {
	mesh, faces := s.configurator.Configure(kind)

	die, err := orientation.New(&orientation.Config{
		ID:           s.uuidGenerator.NewUUID(),
		Kind:         kind,
		Faces:        faces,
		Random:       s.random,
		StepFraction: s.stepFraction,
	})
	if err != nil {
		return fmt.Errorf("failed to create die: %w", err)
	}

	s.die = die
	s.mesh = mesh
	s.labels = s.configurator.Labels(kind)
	s.state = models.RollState{
		SelectedDie: kind,
		Result:      1,
	}
	return nil
}

// SelectDie swaps the die on the table and cancels any roll in flight
func (s *service) SelectDie(ctx context.Context, input *SelectDieInput) (*SelectDieOutput, error) {
	if input == nil {
		return nil, ErrNilInput
	}
	if !input.Kind.Valid() {
		return nil, fmt.Errorf("%w: %d", ErrInvalidDieKind, int(input.Kind))
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if s.closed {
		return nil, ErrWidgetClosed
	}

	cancelled := s.cancelPending()
	if cancelled {
		log.Printf("Switching to %s cancelled the roll in flight", input.Kind)
	}

	if err := s.mountDie(input.Kind); err != nil {
		return nil, err
	}

	return &SelectDieOutput{
		DieID:         s.die.ID(),
		State:         s.state,
		Faces:         s.die.Faces(),
		CancelledRoll: cancelled,
	}, nil
}

// Roll starts spinning the die; a request while already rolling is ignored
func (s *service) Roll(ctx context.Context, input *RollInput) (*RollOutput, error) {
	if input == nil {
		return nil, ErrNilInput
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if s.closed {
		return nil, ErrWidgetClosed
	}

	if s.state.IsRolling {
		return &RollOutput{
			Started: false,
			State:   s.state,
		}, nil
	}

	s.state.IsRolling = true
	s.state.Result = 0

	s.generation++
	generation := s.generation
	s.pending = s.clock.AfterFunc(s.settleDelay, func() {
		s.settle(generation)
	})

	log.Printf("Rolling %s", s.state.SelectedDie)

	return &RollOutput{
		Started: true,
		State:   s.state,
	}, nil
}

// settle lands the roll started in generation, unless it has been superseded
func (s *service) settle(generation uint64) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.closed || generation != s.generation || !s.state.IsRolling {
		return
	}

	kind := s.state.SelectedDie
	result := s.diceRoller.Roll(kind.Sides())

	s.pending = nil
	s.state = models.RollState{
		SelectedDie: kind,
		Result:      result,
		IsRolling:   false,
	}

	log.Printf("Rolled %d on %s", result, kind)
}

// cancelPending stops the settle timer of the roll in flight. Callers hold mu.
func (s *service) cancelPending() bool {
	if s.pending == nil {
		return false
	}

	s.pending.Stop()
	s.pending = nil
	// a timer that already fired is waiting on mu; bumping the generation turns it into a no-op
	s.generation++
	return true
}

// Tick advances the animation by one frame and hands it to the renderer
func (s *service) Tick(ctx context.Context, input *TickInput) (*TickOutput, error) {
	if input == nil {
		return nil, ErrNilInput
	}

	s.mu.Lock()
	if s.closed {
		s.mu.Unlock()
		return nil, ErrWidgetClosed
	}

	phase := s.die.Step(s.state)
	s.ticks++

	frame := &Frame{
		Tick:        s.ticks,
		Delta:       input.Delta,
		DieID:       s.die.ID(),
		Kind:        s.state.SelectedDie,
		Mesh:        s.mesh,
		Labels:      s.labels,
		Orientation: s.die.Orientation(),
		Phase:       phase,
		Roll:        s.state,
		Instruction: s.state.Instruction(),
	}
	renderer := s.renderer
	s.mu.Unlock()

	if renderer != nil {
		renderer.RenderFrame(frame)
	}

	return &TickOutput{
		Frame: frame,
	}, nil
}

// GetState returns the current roll state
func (s *service) GetState(ctx context.Context, input *GetStateInput) (*GetStateOutput, error) {
	if input == nil {
		return nil, ErrNilInput
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if s.closed {
		return nil, ErrWidgetClosed
	}

	return &GetStateOutput{
		DieID:       s.die.ID(),
		State:       s.state,
		Instruction: s.state.Instruction(),
		Settled:     s.die.Settled(s.state, SettledTolerance),
	}, nil
}

// Close cancels any pending roll
func (s *service) Close() error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.closed {
		return nil
	}

	s.cancelPending()
	s.closed = true
	return nil
}
