package models

import "github.com/go-gl/mathgl/mgl64"

// DieMesh is an immutable triangulated die surface.
// Triangles are wound counter-clockwise when seen from outside the die.
type DieMesh struct {
	// Kind is the die this mesh was built for
	Kind DieKind

	// Positions holds the vertex positions
	Positions []mgl64.Vec3

	// Triangles indexes into Positions
	Triangles [][3]int

	// Normals holds one vertex normal per position
	Normals []mgl64.Vec3
}

// TriangleNormal returns the unit normal of triangle i derived from its winding
func (m *DieMesh) TriangleNormal(i int) mgl64.Vec3 {
	return m.triangleCross(i).Normalize()
}

// TriangleCentroid returns the average of the triangle's three corners
func (m *DieMesh) TriangleCentroid(i int) mgl64.Vec3 {
	t := m.Triangles[i]
	return m.Positions[t[0]].Add(m.Positions[t[1]]).Add(m.Positions[t[2]]).Mul(1.0 / 3.0)
}

func (m *DieMesh) triangleCross(i int) mgl64.Vec3 {
	t := m.Triangles[i]
	a, b, c := m.Positions[t[0]], m.Positions[t[1]], m.Positions[t[2]]
	return b.Sub(a).Cross(c.Sub(a))
}

// ComputeNormals fills Normals with area-weighted vertex normals.
// Vertices shared between triangles get a smoothed normal.
func (m *DieMesh) ComputeNormals() {
	normals := make([]mgl64.Vec3, len(m.Positions))
	for i, t := range m.Triangles {
		n := m.triangleCross(i)
		for _, idx := range t {
			normals[idx] = normals[idx].Add(n)
		}
	}
	for i := range normals {
		if normals[i].Len() > 0 {
			normals[i] = normals[i].Normalize()
		}
	}
	m.Normals = normals
}
