package dice

import (
	"fmt"
	"math"

	"github.com/KirkDiggler/dicetray/internal/common/random"
)

//go:generate mockgen -package=mocks -destination=mocks/mock_roller.go github.com/KirkDiggler/dicetray/internal/dice Roller

// Roller provides dice rolling functionality
type Roller interface {
	// Roll returns a value uniformly distributed over 1..sides
	Roll(sides int) int
}

// Config for dice roller
type Config struct {
	// Optional seed for testing
	Seed int64

	// Source overrides the seeded source when set
	Source random.Source
}

type roller struct {
	source random.Source
}

// New creates a new dice roller
func New(cfg *Config) Roller {
	var source random.Source
	var seed int64
	if cfg != nil {
		source = cfg.Source
		seed = cfg.Seed
	}
	if source == nil {
		source = random.New(seed)
	}

	return &roller{
		source: source,
	}
}

// Roll maps a uniform draw from [0, 1) onto 1..sides
func (r *roller) Roll(sides int) int {
	if sides < 1 {
		panic(fmt.Sprintf("dice: cannot roll a die with %d sides", sides))
	}
	value := int(math.Floor(r.source.Float64()*float64(sides))) + 1
	// guards sources that hand back exactly 1.0
	if value > sides {
		value = sides
	}
	return value
}
