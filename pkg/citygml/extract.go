// Package citygml extracts LoD1 building surface rings from CityGML
// documents. It is the only package that touches raw markup; everything
// downstream works on typed rings and triangles.
package citygml

import (
	"encoding/xml"
	"fmt"
	"io"
	"math"
	"os"
	"strconv"
	"strings"

	"github.com/citymesh/citymesh/pkg/geometry"
)

// ExtractFile parses a CityGML document and returns its raw surface rings.
// See Extract for the extraction policy.
func ExtractFile(filename string, order AxisOrder) ([][]geometry.Vector3, error) {
	file, err := os.Open(filename)
	if err != nil {
		return nil, fmt.Errorf("failed to open file: %w", err)
	}
	defer file.Close()

	rings, err := Extract(file, order)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", filename, err)
	}
	return rings, nil
}

// Extract streams a CityGML document and collects the exterior rings of
// every gml:LinearRing inside a bldg:lod1Solid. Documents without any LoD1
// solid fall back to every LinearRing found anywhere, so metadata-light
// exports still contribute geometry. Rings come back raw, in document
// order, already remapped to the fixed (x, y, z) convention; validation is
// the ring normalizer's job. A malformed document returns an error and no
// rings.
func Extract(r io.Reader, order AxisOrder) ([][]geometry.Vector3, error) {
	decoder := xml.NewDecoder(r)

	var solidRings [][]geometry.Vector3
	var anyRings [][]geometry.Vector3
	solidDepth := 0
	inRing := false

	for {
		token, err := decoder.Token()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("malformed document: %w", err)
		}

		switch el := token.(type) {
		case xml.StartElement:
			switch {
			case isElement(el.Name, "lod1Solid"):
				solidDepth++
			case isElement(el.Name, "LinearRing"):
				inRing = true
			case inRing && isElement(el.Name, "posList"):
				ring, err := readPosList(decoder, order)
				if err != nil {
					return nil, err
				}
				if ring == nil {
					continue
				}
				anyRings = append(anyRings, ring)
				if solidDepth > 0 {
					solidRings = append(solidRings, ring)
				}
			}

		case xml.EndElement:
			switch {
			case isElement(el.Name, "lod1Solid"):
				solidDepth--
			case isElement(el.Name, "LinearRing"):
				inRing = false
			}
		}
	}

	if len(solidRings) > 0 {
		return solidRings, nil
	}
	return anyRings, nil
}

// readPosList consumes the character data of a posList element and decodes
// it into coordinate triples. Incomplete trailing values are an error; a
// whitespace-only posList yields no ring.
func readPosList(decoder *xml.Decoder, order AxisOrder) ([]geometry.Vector3, error) {
	var text strings.Builder
	for {
		token, err := decoder.Token()
		if err != nil {
			return nil, fmt.Errorf("malformed document: %w", err)
		}
		if char, ok := token.(xml.CharData); ok {
			text.Write(char)
			continue
		}
		if _, ok := token.(xml.EndElement); ok {
			break
		}
	}

	fields := strings.Fields(text.String())
	if len(fields) == 0 {
		return nil, nil
	}
	if len(fields)%3 != 0 {
		return nil, fmt.Errorf("posList has %d values, not a multiple of 3", len(fields))
	}

	values := make([]float64, len(fields))
	for i, f := range fields {
		v, err := strconv.ParseFloat(f, 64)
		if err != nil {
			return nil, fmt.Errorf("posList value %q: %w", f, err)
		}
		// ParseFloat accepts NaN and Inf spellings; a non-finite vertex
		// would slip through every epsilon check downstream and poison
		// the bounding box, so reject the document here.
		if math.IsNaN(v) || math.IsInf(v, 0) {
			return nil, fmt.Errorf("posList value %q is not finite", f)
		}
		values[i] = v
	}

	ring := make([]geometry.Vector3, 0, len(values)/3)
	for i := 0; i < len(values); i += 3 {
		ring = append(ring, order.remap(values[i], values[i+1], values[i+2]))
	}
	return ring, nil
}

// isElement matches an element by local name regardless of namespace
// prefix. Real-world CityGML exports disagree on prefixes and some omit
// namespaces entirely, so matching on the local name is the robust choice.
func isElement(name xml.Name, local string) bool {
	return name.Local == local
}
