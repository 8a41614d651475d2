// Package mesh defines the renderer-ready mesh document and its
// serialization. The document is the terminal artifact of a conversion run
// and the only contract shared with the viewer.
package mesh

import (
	"github.com/citymesh/citymesh/pkg/geometry"
)

// Bounds is the axis-aligned bounding box of every triangle vertex in the
// document. The viewer requires min[i] <= max[i] componentwise.
type Bounds struct {
	Min [3]float64 `json:"min"`
	Max [3]float64 `json:"max"`
}

// Origin is the geographic reference point of a projected document.
type Origin struct {
	Lat float64 `json:"lat"`
	Lon float64 `json:"lon"`
}

// Metadata records how a projected document was produced.
type Metadata struct {
	SourceFiles []string `json:"source_files"`
	LatScale    float64  `json:"lat_scale_m_per_deg,omitempty"`
	LonScale    float64  `json:"lon_scale_m_per_deg,omitempty"`
}

// Document is the complete mesh: an ordered triangle sequence (file
// discovery order, then ring order, then fan order) plus final bounds.
// Origin and Metadata are only present for projected conversions.
type Document struct {
	Origin    *Origin      `json:"origin,omitempty"`
	Triangles [][9]float64 `json:"triangles"`
	Bounds    *Bounds      `json:"bounds,omitempty"`
	Metadata  *Metadata    `json:"metadata,omitempty"`
}

// NewDocument creates an empty document. Triangles is non-nil so an empty
// document still serializes with a "triangles" array, which the viewer
// requires.
func NewDocument() *Document {
	return &Document{
		Triangles: make([][9]float64, 0),
	}
}

// AddTriangle appends a triangle to the document
func (d *Document) AddTriangle(t geometry.Triangle) {
	d.Triangles = append(d.Triangles, t.Flat())
}

// SetBounds records the final bounding box. An empty box leaves Bounds
// absent; the viewer falls back to its default camera position.
func (d *Document) SetBounds(bbox geometry.BoundingBox) {
	if bbox.IsEmpty() {
		d.Bounds = nil
		return
	}
	d.Bounds = &Bounds{
		Min: [3]float64{bbox.Min.X, bbox.Min.Y, bbox.Min.Z},
		Max: [3]float64{bbox.Max.X, bbox.Max.Y, bbox.Max.Z},
	}
}

// TriangleCount returns the number of triangles in the document
func (d *Document) TriangleCount() int {
	return len(d.Triangles)
}

// Triangle reconstructs the i-th triangle from its wire form
func (d *Document) Triangle(i int) geometry.Triangle {
	f := d.Triangles[i]
	return geometry.NewTriangle(
		geometry.NewVector3(f[0], f[1], f[2]),
		geometry.NewVector3(f[3], f[4], f[5]),
		geometry.NewVector3(f[6], f[7], f[8]),
	)
}

// BoundingBox recomputes the bounding box from the triangle data
func (d *Document) BoundingBox() geometry.BoundingBox {
	bbox := geometry.NewBoundingBox()
	for i := range d.Triangles {
		bbox.ExtendTriangle(d.Triangle(i))
	}
	return bbox
}

// SurfaceArea is the total area of all triangles in the document
func (d *Document) SurfaceArea() float64 {
	total := 0.0
	for i := range d.Triangles {
		total += d.Triangle(i).Area()
	}
	return total
}
