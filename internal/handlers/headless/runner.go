package headless

import (
	"context"
	"errors"
	"fmt"
	"log"
	"time"

	"github.com/KirkDiggler/dicetray/internal/common/clock"
	"github.com/KirkDiggler/dicetray/internal/models"
	"github.com/KirkDiggler/dicetray/internal/services/widget"
)

// Config holds the configuration for the headless runner
type Config struct {
	// Widget service to drive
	WidgetService widget.Service

	// Clock supplies frame timestamps
	Clock clock.Clock

	// FrameRate is the number of ticks per second, 60 when unset
	FrameRate int
}

// Runner drives the widget frame loop without a window
type Runner struct {
	widgetService widget.Service
	clock         clock.Clock
	interval      time.Duration
}

// Result describes a finished roll
type Result struct {
	// Kind is the die that was rolled
	Kind models.DieKind

	// Value is the face shown
	Value int

	// Ticks is the number of frames it took to come to rest
	Ticks int

	// Frame is the last frame produced
	Frame *widget.Frame
}

// New creates a new headless runner
func New(cfg *Config) (*Runner, error) {
	if cfg == nil {
		return nil, errors.New("config cannot be nil")
	}

	if cfg.WidgetService == nil {
		return nil, errors.New("widget service cannot be nil")
	}

	if cfg.Clock == nil {
		return nil, errors.New("clock cannot be nil")
	}

	frameRate := cfg.FrameRate
	if frameRate <= 0 {
		frameRate = 60
	}

	return &Runner{
		widgetService: cfg.WidgetService,
		clock:         cfg.Clock,
		interval:      time.Second / time.Duration(frameRate),
	}, nil
}

// RollAndSettle rolls the die and ticks until it rests on its result or ctx ends
func (r *Runner) RollAndSettle(ctx context.Context) (*Result, error) {
	roll, err := r.widgetService.Roll(ctx, &widget.RollInput{})
	if err != nil {
		return nil, fmt.Errorf("failed to roll: %w", err)
	}
	if !roll.Started {
		log.Printf("Die already rolling, waiting for it to land")
	}

	ticker := time.NewTicker(r.interval)
	defer ticker.Stop()

	result := &Result{}
	last := r.clock.Now()
	for {
		if err := ctx.Err(); err != nil {
			return nil, err
		}

		select {
		case <-ctx.Done():
			return nil, ctx.Err()
		case <-ticker.C:
			now := r.clock.Now()
			tick, err := r.widgetService.Tick(ctx, &widget.TickInput{Delta: now.Sub(last)})
			if err != nil {
				return nil, fmt.Errorf("failed to tick: %w", err)
			}
			last = now
			result.Ticks++
			result.Frame = tick.Frame

			state, err := r.widgetService.GetState(ctx, &widget.GetStateInput{})
			if err != nil {
				return nil, fmt.Errorf("failed to read state: %w", err)
			}
			if state.State.IsRolling || !state.Settled {
				continue
			}

			result.Kind = state.State.SelectedDie
			result.Value = state.State.Result
			return result, nil
		}
	}
}
