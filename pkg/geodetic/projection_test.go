package geodetic

import (
	"math"
	"testing"

	"github.com/citymesh/citymesh/pkg/geometry"
)

func TestMetersPerDegreeAtEquator(t *testing.T) {
	latScale, lonScale := MetersPerDegree(0)

	// One degree of latitude at the equator is about 110.574 km,
	// one degree of longitude about 111.320 km.
	if math.Abs(latScale-110574) > 10 {
		t.Errorf("latitude scale at equator: expected ~110574, got %v", latScale)
	}
	if math.Abs(lonScale-111320) > 10 {
		t.Errorf("longitude scale at equator: expected ~111320, got %v", lonScale)
	}
}

func TestMetersPerDegreeShrinksWithLatitude(t *testing.T) {
	_, lonEquator := MetersPerDegree(0)
	_, lonTokyo := MetersPerDegree(35.7)

	if lonTokyo >= lonEquator {
		t.Errorf("longitude scale should shrink toward the poles: %v >= %v", lonTokyo, lonEquator)
	}
}

func TestForwardOriginIsZero(t *testing.T) {
	p := NewProjection(35.7, 139.7)
	v := p.Forward(35.7, 139.7, 0)

	if v.X != 0 || v.Y != 0 || v.Z != 0 {
		t.Errorf("origin should project to zero, got %v", v)
	}
}

func TestForwardDirections(t *testing.T) {
	p := NewProjection(35.7, 139.7)

	east := p.Forward(35.7, 139.8, 0)
	if east.X <= 0 {
		t.Errorf("east should be +X, got %v", east)
	}

	north := p.Forward(35.8, 139.7, 0)
	if north.Z >= 0 {
		t.Errorf("north should be -Z, got %v", north)
	}

	up := p.Forward(35.7, 139.7, 25)
	if up.Y != 25 {
		t.Errorf("height should pass through as Y, got %v", up)
	}
}

func TestForwardVectorMatchesForward(t *testing.T) {
	p := NewProjection(35.7, 139.7)

	direct := p.Forward(35.71, 139.72, 8)
	// Extractor convention: X=lon, Y=height, Z=-lat
	viaVector := p.ForwardVector(geometry.NewVector3(139.72, 8, -35.71))

	if math.Abs(direct.X-viaVector.X) > 1e-9 ||
		math.Abs(direct.Y-viaVector.Y) > 1e-9 ||
		math.Abs(direct.Z-viaVector.Z) > 1e-9 {
		t.Errorf("ForwardVector mismatch: %v vs %v", viaVector, direct)
	}
}
