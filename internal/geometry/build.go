package geometry

import (
	"fmt"
	"math"

	"github.com/KirkDiggler/dicetray/internal/models"
	"github.com/go-gl/mathgl/mgl64"
)

// Build derives the mesh, faces and labels of a die kind.
// It is a pure function; unsupported kinds are a programming error and panic.
func Build(kind models.DieKind) *Set {
	var mesh *models.DieMesh
	var faces []models.Face

	switch kind {
	case models.D4:
		mesh, faces = buildTetrahedron()
	case models.D6:
		mesh, faces = buildCube()
	case models.D8:
		mesh, faces = buildOctahedron()
	case models.D10:
		mesh, faces = buildPentagonalDipyramid()
	default:
		panic(fmt.Sprintf("geometry: unsupported die kind %d", int(kind)))
	}

	mesh.Kind = kind
	mesh.ComputeNormals()

	return &Set{
		Kind:   kind,
		Mesh:   mesh,
		Faces:  faces,
		Labels: Labels(kind, faces),
	}
}

// d4Normals are the tetrahedron directions whose sign product is positive
var d4Normals = []mgl64.Vec3{
	{1, 1, 1},
	{-1, -1, 1},
	{-1, 1, -1},
	{1, -1, -1},
}

// d6Normals pairs each axis direction with its value; opposite faces sum to 7
var d6Normals = []struct {
	value  int
	normal mgl64.Vec3
}{
	{1, mgl64.Vec3{1, 0, 0}},
	{2, mgl64.Vec3{0, 1, 0}},
	{3, mgl64.Vec3{0, 0, 1}},
	{4, mgl64.Vec3{0, 0, -1}},
	{5, mgl64.Vec3{0, -1, 0}},
	{6, mgl64.Vec3{-1, 0, 0}},
}

// d8Normals lists the four upper octants first, then the four lower ones
var d8Normals = []mgl64.Vec3{
	{1, 1, 1},
	{-1, 1, 1},
	{-1, 1, -1},
	{1, 1, -1},
	{1, -1, 1},
	{-1, -1, 1},
	{-1, -1, -1},
	{1, -1, -1},
}

func buildTetrahedron() (*models.DieMesh, []models.Face) {
	faces := make([]models.Face, len(d4Normals))
	for i, n := range d4Normals {
		faces[i] = models.Face{Value: i + 1, Normal: n.Normalize()}
	}

	// each vertex points away from one face, so face k is the triangle of the other three
	vertices := make([]mgl64.Vec3, len(faces))
	for i, f := range faces {
		vertices[i] = f.Normal.Mul(-tetraRadius)
	}

	mesh := &models.DieMesh{}
	for k := range faces {
		var corners []mgl64.Vec3
		for i, v := range vertices {
			if i != k {
				corners = append(corners, v)
			}
		}
		appendFlatTriangle(mesh, corners[0], corners[1], corners[2])
	}
	return mesh, faces
}

func buildCube() (*models.DieMesh, []models.Face) {
	faces := make([]models.Face, 0, len(d6Normals))
	mesh := &models.DieMesh{}

	for _, d := range d6Normals {
		faces = append(faces, models.Face{Value: d.value, Normal: d.normal})

		n := d.normal
		u := mgl64.Vec3{n.Y(), n.Z(), n.X()}
		v := n.Cross(u)
		centre := n.Mul(cubeHalfExtent)
		u, v = u.Mul(cubeHalfExtent), v.Mul(cubeHalfExtent)

		base := len(mesh.Positions)
		mesh.Positions = append(mesh.Positions,
			centre.Sub(u).Sub(v),
			centre.Add(u).Sub(v),
			centre.Add(u).Add(v),
			centre.Sub(u).Add(v),
		)
		appendOutward(mesh, base, base+1, base+2)
		appendOutward(mesh, base, base+2, base+3)
	}
	return mesh, faces
}

func buildOctahedron() (*models.DieMesh, []models.Face) {
	faces := make([]models.Face, len(d8Normals))
	mesh := &models.DieMesh{}

	for i, n := range d8Normals {
		faces[i] = models.Face{Value: i + 1, Normal: n.Normalize()}
		appendFlatTriangle(mesh,
			mgl64.Vec3{n.X() * octaRadius, 0, 0},
			mgl64.Vec3{0, n.Y() * octaRadius, 0},
			mgl64.Vec3{0, 0, n.Z() * octaRadius},
		)
	}
	return mesh, faces
}

// buildPentagonalDipyramid builds the D10 from two apexes and a five vertex equator.
// Numbering normals are analytic bisectors rather than the triangle normals.
func buildPentagonalDipyramid() (*models.DieMesh, []models.Face) {
	const ring = 5
	const top, bottom = 0, 1
	step := 2 * math.Pi / ring

	mesh := &models.DieMesh{
		Positions: []mgl64.Vec3{
			{0, d10ApexHeight, 0},
			{0, -d10ApexHeight, 0},
		},
	}
	for i := 0; i < ring; i++ {
		a := float64(i) * step
		mesh.Positions = append(mesh.Positions, mgl64.Vec3{
			math.Sin(a) * d10EquatorRadius,
			0,
			math.Cos(a) * d10EquatorRadius,
		})
	}

	equator := func(i int) int { return 2 + i%ring }
	faces := make([]models.Face, 0, 2*ring)
	for i := 0; i < ring; i++ {
		mesh.Triangles = append(mesh.Triangles,
			[3]int{top, equator(i), equator(i + 1)},
			[3]int{bottom, equator(i + 1), equator(i)},
		)

		theta := float64(i)*step + step/2
		faces = append(faces,
			models.Face{
				Value:  2*i + 1,
				Normal: mgl64.Vec3{math.Sin(theta), d10NormalLift, math.Cos(theta)}.Normalize(),
			},
			models.Face{
				Value:  2*i + 2,
				Normal: mgl64.Vec3{math.Sin(theta), -d10NormalLift, math.Cos(theta)}.Normalize(),
			},
		)
	}
	return mesh, faces
}

// appendFlatTriangle adds a triangle with its own vertices so it shades flat
func appendFlatTriangle(mesh *models.DieMesh, a, b, c mgl64.Vec3) {
	base := len(mesh.Positions)
	mesh.Positions = append(mesh.Positions, a, b, c)
	appendOutward(mesh, base, base+1, base+2)
}

// appendOutward adds the triangle, flipping its winding if it would face the centre.
// Only valid for convex solids centred on the origin.
func appendOutward(mesh *models.DieMesh, a, b, c int) {
	pa, pb, pc := mesh.Positions[a], mesh.Positions[b], mesh.Positions[c]
	normal := pb.Sub(pa).Cross(pc.Sub(pa))
	if normal.Dot(pa.Add(pb).Add(pc)) < 0 {
		b, c = c, b
	}
	mesh.Triangles = append(mesh.Triangles, [3]int{a, b, c})
}
