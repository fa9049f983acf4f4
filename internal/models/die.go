package models

import (
	"fmt"

	"github.com/go-gl/mathgl/mgl64"
)

// DieKind identifies the shape of a die by its number of faces
type DieKind int

const (
	// D4 is a tetrahedron
	D4 DieKind = 4

	// D6 is a cube
	D6 DieKind = 6

	// D8 is an octahedron
	D8 DieKind = 8

	// D10 is a pentagonal dipyramid
	D10 DieKind = 10
)

// Kinds returns every supported die kind in ascending order
func Kinds() []DieKind {
	return []DieKind{D4, D6, D8, D10}
}

// ParseDieKind converts a face count into a DieKind
func ParseDieKind(sides int) (DieKind, error) {
	kind := DieKind(sides)
	if !kind.Valid() {
		return 0, fmt.Errorf("unsupported die with %d sides", sides)
	}
	return kind, nil
}

// Valid reports whether the kind is one of the supported dice
func (k DieKind) Valid() bool {
	switch k {
	case D4, D6, D8, D10:
		return true
	}
	return false
}

// Sides returns the number of faces on the die
func (k DieKind) Sides() int {
	return int(k)
}

func (k DieKind) String() string {
	return fmt.Sprintf("D%d", int(k))
}

// Face associates a printed value with the direction the face points
type Face struct {
	// Value is the number printed on the face
	Value int `yaml:"value"`

	// Normal is the outward unit vector of the face in the die's rest frame
	Normal mgl64.Vec3 `yaml:"normal,flow"`
}

// LabelTransform places a face label in the die's rest frame
type LabelTransform struct {
	// Value is the number the label shows
	Value int `yaml:"value"`

	// Position is the label centre, offset outward along the face normal
	Position mgl64.Vec3 `yaml:"position,flow"`

	// Rotation turns the label's local +Z onto the face normal
	Rotation mgl64.Quat `yaml:"-"`
}
