package main

import (
	"context"
	"log"
	"os"
	"os/signal"
	"runtime"
	"syscall"

	"github.com/KirkDiggler/dicetray/internal/common/clock"
	"github.com/KirkDiggler/dicetray/internal/common/random"
	"github.com/KirkDiggler/dicetray/internal/common/uuid"
	"github.com/KirkDiggler/dicetray/internal/config"
	"github.com/KirkDiggler/dicetray/internal/dice"
	"github.com/KirkDiggler/dicetray/internal/geometry"
	"github.com/KirkDiggler/dicetray/internal/handlers/raylib"
	"github.com/KirkDiggler/dicetray/internal/services/widget"
)

func init() {
	// raylib requires the OS thread that created the window
	runtime.LockOSThread()
}

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	// Initialize rendering host
	host, err := raylib.New(&raylib.Config{
		Title:  "dicetray",
		Width:  int32(cfg.Width),
		Height: int32(cfg.Height),
		FPS:    int32(cfg.FPS),
	})
	if err != nil {
		log.Fatalf("Failed to create host: %v", err)
	}

	// Initialize widget service
	widgetSvc, err := widget.New(&widget.Config{
		DefaultDie:    cfg.DieKind(),
		SettleDelay:   cfg.SettleDelay,
		StepFraction:  cfg.StepFraction,
		Configurator:  geometry.NewCache(),
		DiceRoller:    dice.New(&dice.Config{Seed: cfg.Seed}),
		Random:        random.New(cfg.Seed),
		Clock:         &clock.DefaultClock{},
		UUIDGenerator: uuid.New(),
		Renderer:      host,
	})
	if err != nil {
		log.Fatalf("Failed to create widget service: %v", err)
	}
	defer widgetSvc.Close()

	// Stop the frame loop on interrupt
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	sc := make(chan os.Signal, 1)
	signal.Notify(sc, syscall.SIGINT, syscall.SIGTERM, os.Interrupt)
	go func() {
		<-sc
		cancel()
	}()

	log.Printf("Starting dicetray with %s", cfg.DieKind())
	if err := host.Run(ctx, widgetSvc); err != nil {
		log.Printf("Error running host: %v", err)
	}

	log.Println("dicetray has been shut down")
}
