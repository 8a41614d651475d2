package geometry

// Triangle represents a triangular facet in 3D space.
// Vertex order carries the winding of the ring it was cut from.
type Triangle struct {
	V1, V2, V3 Vector3
}

// NewTriangle creates a new triangle
func NewTriangle(v1, v2, v3 Vector3) Triangle {
	return Triangle{V1: v1, V2: v2, V3: v3}
}

// Normal computes the unit normal implied by the vertex winding
func (t Triangle) Normal() Vector3 {
	edge1 := t.V2.Sub(t.V1)
	edge2 := t.V3.Sub(t.V1)
	n := edge1.Cross(edge2)
	length := n.Length()
	if length == 0 {
		return Vector3{}
	}
	return n.Mul(1.0 / length)
}

// Area returns the surface area of the triangle
func (t Triangle) Area() float64 {
	edge1 := t.V2.Sub(t.V1)
	edge2 := t.V3.Sub(t.V1)
	return edge1.Cross(edge2).Length() / 2.0
}

// Perimeter returns the total length of all edges
func (t Triangle) Perimeter() float64 {
	return t.V1.Distance(t.V2) + t.V2.Distance(t.V3) + t.V3.Distance(t.V1)
}

// Center returns the centroid of the triangle
func (t Triangle) Center() Vector3 {
	return Vector3{
		X: (t.V1.X + t.V2.X + t.V3.X) / 3.0,
		Y: (t.V1.Y + t.V2.Y + t.V3.Y) / 3.0,
		Z: (t.V1.Z + t.V2.Z + t.V3.Z) / 3.0,
	}
}

// Flat returns the triangle as 9 consecutive coordinates
// (x1,y1,z1,x2,y2,z2,x3,y3,z3), the wire form of the mesh document.
func (t Triangle) Flat() [9]float64 {
	return [9]float64{
		t.V1.X, t.V1.Y, t.V1.Z,
		t.V2.X, t.V2.Y, t.V2.Z,
		t.V3.X, t.V3.Y, t.V3.Z,
	}
}
