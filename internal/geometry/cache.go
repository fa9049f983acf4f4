package geometry

import (
	"sync"

	"github.com/KirkDiggler/dicetray/internal/models"
)

// Cache memoizes Build per die kind
type Cache struct {
	mu    sync.Mutex
	build func(models.DieKind) *Set
	sets  map[models.DieKind]*Set
}

// NewCache creates an empty cache that builds each kind on first use
func NewCache() *Cache {
	return newCache(Build)
}

func newCache(build func(models.DieKind) *Set) *Cache {
	return &Cache{
		build: build,
		sets:  make(map[models.DieKind]*Set),
	}
}

// Get returns the set for kind, building it once
func (c *Cache) Get(kind models.DieKind) *Set {
	c.mu.Lock()
	defer c.mu.Unlock()

	if set, ok := c.sets[kind]; ok {
		return set
	}
	set := c.build(kind)
	c.sets[kind] = set
	return set
}

// Configure implements Configurator
func (c *Cache) Configure(kind models.DieKind) (*models.DieMesh, []models.Face) {
	set := c.Get(kind)
	return set.Mesh, set.Faces
}

// Labels implements Configurator
func (c *Cache) Labels(kind models.DieKind) []models.LabelTransform {
	return c.Get(kind).Labels
}
