package geometry

import "math"

// Default tolerances for ring validation. Vertices closer than
// VertexTolerance collapse into one; rings whose projected area is below
// MinRingArea are rejected as degenerate.
const (
	VertexTolerance = 1e-9
	MinRingArea     = 1e-9
)

// Ring is a validated polygon boundary: an open sequence of at least 3
// distinct vertices in source order, with the closing edge implied.
type Ring []Vector3

// NormalizeRing validates and cleans a raw ring using the default
// tolerances. It returns nil when the ring is degenerate.
func NormalizeRing(raw []Vector3) Ring {
	return NormalizeRingTol(raw, VertexTolerance, MinRingArea)
}

// NormalizeRingTol validates and cleans a raw ring. It removes a duplicate
// closing vertex, collapses consecutive vertices closer than vertexTol, and
// rejects rings with fewer than 3 distinct vertices or a projected planar
// area below areaEps. Vertex order is preserved; a fan triangulation
// depends on it. Returns nil when the ring is rejected.
func NormalizeRingTol(raw []Vector3, vertexTol, areaEps float64) Ring {
	if len(raw) < 3 {
		return nil
	}

	verts := make([]Vector3, 0, len(raw))
	verts = append(verts, raw...)

	// Drop the explicit closing vertex; the closing edge is implied.
	if len(verts) > 1 && verts[0] == verts[len(verts)-1] {
		verts = verts[:len(verts)-1]
	}

	// Collapse zero-length edges, including the implied closing edge.
	cleaned := verts[:0]
	for _, v := range verts {
		if len(cleaned) > 0 && cleaned[len(cleaned)-1].Distance(v) <= vertexTol {
			continue
		}
		cleaned = append(cleaned, v)
	}
	if len(cleaned) > 1 && cleaned[0].Distance(cleaned[len(cleaned)-1]) <= vertexTol {
		cleaned = cleaned[:len(cleaned)-1]
	}

	if len(cleaned) < 3 {
		return nil
	}

	r := Ring(cleaned)
	if math.Abs(r.signedProjectedArea()) < areaEps {
		return nil
	}
	return r
}

// Triangulate decomposes the ring into exactly len(r)-2 triangles using a
// fan anchored at the first vertex. LoD1 footprints and wall faces are
// near-convex, so no ear clipping is attempted; a sliver from a concave
// ring is emitted as-is.
func (r Ring) Triangulate() []Triangle {
	triangles := make([]Triangle, 0, len(r)-2)
	for i := 1; i < len(r)-1; i++ {
		triangles = append(triangles, NewTriangle(r[0], r[i], r[i+1]))
	}
	return triangles
}

// PlanarArea returns the area of the ring's polygon, half the magnitude of
// its Newell normal. For a planar ring this equals the sum of the areas of
// its fan triangles.
func (r Ring) PlanarArea() float64 {
	return r.newellNormal().Length() / 2.0
}

// newellNormal computes the area-weighted normal of the (possibly tilted
// or vertical) polygon using Newell's method.
func (r Ring) newellNormal() Vector3 {
	var n Vector3
	for i, v := range r {
		next := r[(i+1)%len(r)]
		n.X += (v.Y - next.Y) * (v.Z + next.Z)
		n.Y += (v.Z - next.Z) * (v.X + next.X)
		n.Z += (v.X - next.X) * (v.Y + next.Y)
	}
	return n
}

// signedProjectedArea computes the shoelace area of the ring after
// projecting out the dominant axis of its Newell normal. Wall and roof
// rings may be vertical or tilted, so the projection plane is chosen per
// ring rather than assumed horizontal.
func (r Ring) signedProjectedArea() float64 {
	n := r.newellNormal()
	drop := dominantAxis(n)
	u, v := otherAxes(drop)

	area := 0.0
	for i, p := range r {
		next := r[(i+1)%len(r)]
		area += p.Component(u)*next.Component(v) - next.Component(u)*p.Component(v)
	}
	return area / 2.0
}

// dominantAxis returns the axis with the largest absolute component
func dominantAxis(n Vector3) int {
	ax, ay, az := math.Abs(n.X), math.Abs(n.Y), math.Abs(n.Z)
	switch {
	case ax >= ay && ax >= az:
		return 0
	case ay >= az:
		return 1
	default:
		return 2
	}
}

// otherAxes returns the two axes remaining after dropping one
func otherAxes(drop int) (int, int) {
	switch drop {
	case 0:
		return 1, 2
	case 1:
		return 0, 2
	default:
		return 0, 1
	}
}
