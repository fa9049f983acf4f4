package geometry

import "github.com/KirkDiggler/dicetray/internal/models"

const (
	// cubeHalfExtent is the distance from the D6 centre to each face
	cubeHalfExtent = 1.0

	// tetraRadius is the distance from the D4 centre to each vertex
	tetraRadius = 2.4

	// octaRadius is the distance from the D8 centre to each vertex
	octaRadius = 1.75

	// d10ApexHeight is the height of both D10 apexes above and below the equator
	d10ApexHeight = 1.2

	// d10EquatorRadius is the radius of the D10 equatorial ring
	d10EquatorRadius = 1.0

	// d10NormalLift is the vertical component of the analytic D10 numbering normals
	d10NormalLift = 0.5

	// LabelOffset places labels just outside the die surface
	LabelOffset = 1.1

	// TetraLabelOffset is closer in because tetrahedron faces sit nearer the centre
	TetraLabelOffset = 0.9
)

// Set is everything derived from a die kind
type Set struct {
	// Kind is the die the set describes
	Kind models.DieKind

	// Mesh is the triangulated surface
	Mesh *models.DieMesh

	// Faces maps values to outward normals, ordered by value
	Faces []models.Face

	// Labels places each face label, in the same order as Faces
	Labels []models.LabelTransform
}
