// Package geodetic implements a flat-earth local tangent projection:
// degrees to meters around a fixed origin, using per-latitude scale
// factors. It deliberately stops short of full geodetic reprojection;
// LoD1 city extracts are small enough that a local plane is accurate.
package geodetic

import (
	"math"

	"github.com/citymesh/citymesh/pkg/geometry"
)

// MetersPerDegree returns the length of one degree of latitude and
// longitude, in meters, at the given latitude. Series approximation of the
// WGS84 ellipsoid arc lengths.
func MetersPerDegree(latDeg float64) (latScale, lonScale float64) {
	latRad := latDeg * math.Pi / 180.0
	latScale = 111132.92 - 559.82*math.Cos(2*latRad) + 1.175*math.Cos(4*latRad)
	lonScale = 111412.84*math.Cos(latRad) - 93.5*math.Cos(3*latRad)
	return latScale, lonScale
}

// Projection converts geographic coordinates to local meters around an
// origin point.
type Projection struct {
	Lat0     float64
	Lon0     float64
	LatScale float64
	LonScale float64
}

// NewProjection creates a projection centered on the given origin
func NewProjection(lat0, lon0 float64) Projection {
	latScale, lonScale := MetersPerDegree(lat0)
	return Projection{
		Lat0:     lat0,
		Lon0:     lon0,
		LatScale: latScale,
		LonScale: lonScale,
	}
}

// Forward maps (latitude, longitude, height) to local meters. East is +X,
// up is +Y, and latitude grows toward -Z, so the result is right-handed
// with Y up.
func (p Projection) Forward(lat, lon, height float64) geometry.Vector3 {
	return geometry.Vector3{
		X: (lon - p.Lon0) * p.LonScale,
		Y: height,
		Z: -(lat - p.Lat0) * p.LatScale,
	}
}

// ForwardVector maps a vector that already uses the extractor's
// lat-lon-height remap convention (X=lon, Y=height, Z=-lat).
func (p Projection) ForwardVector(v geometry.Vector3) geometry.Vector3 {
	return p.Forward(-v.Z, v.X, v.Y)
}
