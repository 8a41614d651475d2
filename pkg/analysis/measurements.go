// Package analysis computes summary measurements over mesh documents.
package analysis

import (
	"fmt"
	"math"

	"github.com/citymesh/citymesh/pkg/geometry"
	"github.com/citymesh/citymesh/pkg/mesh"
)

// Result contains various measurements of a mesh document
type Result struct {
	BoundingBox   geometry.BoundingBox
	Dimensions    geometry.Vector3
	SurfaceArea   float64
	TriangleCount int
	EdgeCount     int
	MinEdgeLength float64
	MaxEdgeLength float64
	AvgEdgeLength float64
}

// Analyze measures a mesh document
func Analyze(doc *mesh.Document) *Result {
	result := &Result{
		BoundingBox:   doc.BoundingBox(),
		SurfaceArea:   doc.SurfaceArea(),
		TriangleCount: doc.TriangleCount(),
	}
	result.Dimensions = result.BoundingBox.Size()

	minLength := math.MaxFloat64
	maxLength := 0.0
	totalLength := 0.0

	for i := 0; i < doc.TriangleCount(); i++ {
		tri := doc.Triangle(i)
		edges := [3]struct{ start, end geometry.Vector3 }{
			{tri.V1, tri.V2},
			{tri.V2, tri.V3},
			{tri.V3, tri.V1},
		}

		for _, edge := range edges {
			length := edge.start.Distance(edge.end)
			totalLength += length
			if length < minLength {
				minLength = length
			}
			if length > maxLength {
				maxLength = length
			}
		}
		result.EdgeCount += 3
	}

	if result.EdgeCount > 0 {
		result.MinEdgeLength = minLength
		result.MaxEdgeLength = maxLength
		result.AvgEdgeLength = totalLength / float64(result.EdgeCount)
	}

	return result
}

// FormatVector formats a vector for display
func FormatVector(v geometry.Vector3) string {
	return fmt.Sprintf("(%.6f, %.6f, %.6f)", v.X, v.Y, v.Z)
}
