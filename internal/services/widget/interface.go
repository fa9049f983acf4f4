package widget

//go:generate mockgen -package=mocks -destination=mocks/mock_renderer.go github.com/KirkDiggler/dicetray/internal/services/widget Renderer

import "context"

// Service defines the interface for the dice widget
type Service interface {
	// SelectDie swaps the die on the table and cancels any roll in flight
	SelectDie(ctx context.Context, input *SelectDieInput) (*SelectDieOutput, error)

	// Roll starts spinning the die; the result lands after the settle delay
	Roll(ctx context.Context, input *RollInput) (*RollOutput, error)

	// Tick advances the animation by one frame
	Tick(ctx context.Context, input *TickInput) (*TickOutput, error)

	// GetState returns the current roll state
	GetState(ctx context.Context, input *GetStateInput) (*GetStateOutput, error)

	// Close cancels pending work; the widget cannot be used afterwards
	Close() error
}

// Renderer is the host that draws each frame
type Renderer interface {
	RenderFrame(frame *Frame)
}
