package export

import (
	"fmt"
	"io"

	"github.com/KirkDiggler/dicetray/internal/geometry"
	"github.com/KirkDiggler/dicetray/internal/models"
	"github.com/go-gl/mathgl/mgl64"
	"gopkg.in/yaml.v3"
)

// Document is the YAML layout of exported dice
type Document struct {
	Dice []Die `yaml:"dice"`
}

// Die is the exported geometry of one die kind
type Die struct {
	Kind      string        `yaml:"kind"`
	Sides     int           `yaml:"sides"`
	Vertices  []mgl64.Vec3  `yaml:"vertices"`
	Normals   []mgl64.Vec3  `yaml:"normals"`
	Triangles [][3]int      `yaml:"triangles"`
	Faces     []models.Face `yaml:"faces"`
	Labels    []Label       `yaml:"labels"`
}

// Label is a label transform with its rotation spelled out as w, x, y, z
type Label struct {
	Value    int        `yaml:"value"`
	Position mgl64.Vec3 `yaml:"position,flow"`
	Rotation [4]float64 `yaml:"rotation,flow"`
}

// Build collects the geometry of kinds, or of every kind when none are given
func Build(configurator geometry.Configurator, kinds ...models.DieKind) (*Document, error) {
	if len(kinds) == 0 {
		kinds = models.Kinds()
	}

	doc := &Document{}
	for _, kind := range kinds {
		if !kind.Valid() {
			return nil, fmt.Errorf("cannot export unsupported die kind %d", int(kind))
		}

		mesh, faces := configurator.Configure(kind)
		die := Die{
			Kind:      kind.String(),
			Sides:     kind.Sides(),
			Vertices:  mesh.Positions,
			Normals:   mesh.Normals,
			Triangles: mesh.Triangles,
			Faces:     faces,
		}
		for _, l := range configurator.Labels(kind) {
			die.Labels = append(die.Labels, Label{
				Value:    l.Value,
				Position: l.Position,
				Rotation: [4]float64{l.Rotation.W, l.Rotation.V.X(), l.Rotation.V.Y(), l.Rotation.V.Z()},
			})
		}
		doc.Dice = append(doc.Dice, die)
	}
	return doc, nil
}

// Geometry writes the geometry of kinds to w as YAML
func Geometry(w io.Writer, configurator geometry.Configurator, kinds ...models.DieKind) error {
	doc, err := Build(configurator, kinds...)
	if err != nil {
		return err
	}

	enc := yaml.NewEncoder(w)
	enc.SetIndent(2)
	if err := enc.Encode(doc); err != nil {
		return fmt.Errorf("failed to encode geometry: %w", err)
	}
	return enc.Close()
}
