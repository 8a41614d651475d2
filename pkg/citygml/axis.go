package citygml

import (
	"fmt"

	"github.com/citymesh/citymesh/pkg/geometry"
)

// AxisOrder describes the coordinate order used by posList values in the
// source documents. Every ring is remapped to a fixed (x, y, z) convention
// before it leaves the extractor, so downstream triangulation and bounds
// never have to care about the source convention.
type AxisOrder int

const (
	// AxisXYZ takes posList triples as (x, y, z) unchanged.
	AxisXYZ AxisOrder = iota
	// AxisLatLonHeight takes posList triples as (latitude, longitude,
	// height) and remaps them to x=lon, y=height, z=-lat, the right-handed
	// Y-up convention the mesh document uses.
	AxisLatLonHeight
)

// ParseAxisOrder parses a CLI/config axis order name
func ParseAxisOrder(s string) (AxisOrder, error) {
	switch s {
	case "", "xyz":
		return AxisXYZ, nil
	case "lat-lon-height", "latlonh":
		return AxisLatLonHeight, nil
	default:
		return AxisXYZ, fmt.Errorf("unknown axis order %q (want xyz or lat-lon-height)", s)
	}
}

// String returns the canonical flag spelling
func (o AxisOrder) String() string {
	if o == AxisLatLonHeight {
		return "lat-lon-height"
	}
	return "xyz"
}

// remap converts one source triple into the fixed output convention
func (o AxisOrder) remap(a, b, c float64) geometry.Vector3 {
	if o == AxisLatLonHeight {
		return geometry.NewVector3(b, c, -a)
	}
	return geometry.NewVector3(a, b, c)
}
