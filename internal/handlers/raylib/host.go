package raylib

import (
	"context"
	"errors"
	"fmt"
	"log"
	"time"

	rl "github.com/gen2brain/raylib-go/raylib"

	"github.com/KirkDiggler/dicetray/internal/models"
	"github.com/KirkDiggler/dicetray/internal/services/widget"
)

// dieKeys maps number keys onto the die they select
var dieKeys = map[int32]models.DieKind{
	rl.KeyFour:  models.D4,
	rl.KeySix:   models.D6,
	rl.KeyEight: models.D8,
	rl.KeyZero:  models.D10,
}

// Host is the windowed rendering host for the dice widget
type Host struct {
	config *Config
	camera rl.Camera3D
}

// Config holds the configuration for the host
type Config struct {
	// Window title
	Title string

	// Window size in pixels
	Width  int32
	Height int32

	// Frame rate cap
	FPS int32
}

// New creates a new host; the window opens in Run
func New(cfg *Config) (*Host, error) {
	if cfg == nil {
		return nil, errors.New("config cannot be nil")
	}

	if cfg.Width <= 0 || cfg.Height <= 0 {
		return nil, fmt.Errorf("invalid window size %dx%d", cfg.Width, cfg.Height)
	}

	if cfg.FPS <= 0 {
		cfg.FPS = 60
	}

	return &Host{
		config: cfg,
		camera: rl.Camera3D{
			Position:   rl.NewVector3(0, 0, cameraDistance),
			Target:     rl.NewVector3(0, 0, 0),
			Up:         rl.NewVector3(0, 1, 0),
			Fovy:       45,
			Projection: rl.CameraPerspective,
		},
	}, nil
}

// Run opens the window and drives the widget until the window closes or ctx ends.
// It must be called from the main goroutine.
func (h *Host) Run(ctx context.Context, widgetService widget.Service) error {
	rl.InitWindow(h.config.Width, h.config.Height, h.config.Title)
	defer rl.CloseWindow()

	rl.SetTargetFPS(h.config.FPS)

	for !rl.WindowShouldClose() {
		if ctx.Err() != nil {
			return nil
		}

		h.handleInput(ctx, widgetService)

		rl.BeginDrawing()
		rl.ClearBackground(backgroundColor)

		delta := time.Duration(float64(rl.GetFrameTime()) * float64(time.Second))
		out, err := widgetService.Tick(ctx, &widget.TickInput{Delta: delta})
		if err != nil {
			rl.EndDrawing()
			return fmt.Errorf("failed to tick widget: %w", err)
		}

		h.drawOverlay(out.Frame)
		rl.EndDrawing()
	}

	log.Println("Window closed")
	return nil
}

// handleInput rolls on a click over the die and switches dice on number keys
func (h *Host) handleInput(ctx context.Context, widgetService widget.Service) {
	for key, kind := range dieKeys {
		if !rl.IsKeyPressed(key) {
			continue
		}
		out, err := widgetService.SelectDie(ctx, &widget.SelectDieInput{Kind: kind})
		if err != nil {
			log.Printf("Error selecting %s: %v", kind, err)
			continue
		}
		log.Printf("Selected %s (die %s)", kind, out.DieID)
	}

	if rl.IsMouseButtonPressed(rl.MouseButtonLeft) && h.overDie(rl.GetMousePosition()) {
		out, err := widgetService.Roll(ctx, &widget.RollInput{})
		if err != nil {
			log.Printf("Error rolling: %v", err)
			return
		}
		if !out.Started {
			log.Println("Already rolling, click ignored")
		}
	}
}

// overDie reports whether a screen point falls inside the projected die
func (h *Host) overDie(point rl.Vector2) bool {
	centre := rl.GetWorldToScreen(rl.NewVector3(0, 0, 0), h.camera)
	edge := rl.GetWorldToScreen(rl.NewVector3(hitRadius, 0, 0), h.camera)
	return rl.CheckCollisionPointCircle(point, centre, edge.X-centre.X)
}
