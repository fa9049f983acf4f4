package main

import (
	"context"
	"flag"
	"fmt"
	"io"
	"log"
	"os"
	"time"

	"github.com/KirkDiggler/dicetray/internal/common/clock"
	"github.com/KirkDiggler/dicetray/internal/common/random"
	"github.com/KirkDiggler/dicetray/internal/common/uuid"
	"github.com/KirkDiggler/dicetray/internal/config"
	"github.com/KirkDiggler/dicetray/internal/dice"
	"github.com/KirkDiggler/dicetray/internal/export"
	"github.com/KirkDiggler/dicetray/internal/geometry"
	"github.com/KirkDiggler/dicetray/internal/handlers/headless"
	"github.com/KirkDiggler/dicetray/internal/models"
	"github.com/KirkDiggler/dicetray/internal/services/widget"
)

func main() {
	sides := flag.Int("kind", 0, "die to use (4, 6, 8 or 10); export writes every die when 0")
	roll := flag.Bool("roll", false, "roll the die headlessly instead of exporting geometry")
	out := flag.String("out", "", "file to write the geometry to (stdout when empty)")
	timeout := flag.Duration("timeout", 10*time.Second, "give up on a headless roll after this long")
	flag.Parse()

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	var kinds []models.DieKind
	if *sides != 0 {
		kind, err := models.ParseDieKind(*sides)
		if err != nil {
			log.Fatalf("Invalid -kind: %v", err)
		}
		kinds = append(kinds, kind)
	}

	configurator := geometry.NewCache()

	if !*roll {
		if err := writeGeometry(*out, configurator, kinds); err != nil {
			log.Fatalf("Failed to export geometry: %v", err)
		}
		return
	}

	kind := cfg.DieKind()
	if len(kinds) > 0 {
		kind = kinds[0]
	}

	widgetSvc, err := widget.New(&widget.Config{
		DefaultDie:    kind,
		SettleDelay:   cfg.SettleDelay,
		StepFraction:  cfg.StepFraction,
		Configurator:  configurator,
		DiceRoller:    dice.New(&dice.Config{Seed: cfg.Seed}),
		Random:        random.New(cfg.Seed),
		Clock:         &clock.DefaultClock{},
		UUIDGenerator: uuid.New(),
	})
	if err != nil {
		log.Fatalf("Failed to create widget service: %v", err)
	}
	defer widgetSvc.Close()

	runner, err := headless.New(&headless.Config{
		WidgetService: widgetSvc,
		Clock:         &clock.DefaultClock{},
		FrameRate:     cfg.FPS,
	})
	if err != nil {
		log.Fatalf("Failed to create runner: %v", err)
	}

	ctx, cancel := context.WithTimeout(context.Background(), *timeout)
	defer cancel()

	result, err := runner.RollAndSettle(ctx)
	if err != nil {
		log.Fatalf("Failed to roll: %v", err)
	}

	fmt.Printf("%s rolled %d (settled after %d frames)\n", result.Kind, result.Value, result.Ticks)
}

func writeGeometry(path string, configurator geometry.Configurator, kinds []models.DieKind) error {
	var w io.Writer = os.Stdout
	if path != "" {
		f, err := os.Create(path)
		if err != nil {
			return err
		}
		defer f.Close()
		w = f
	}
	return export.Geometry(w, configurator, kinds...)
}
