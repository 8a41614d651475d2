package mesh

import (
	"bytes"
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/citymesh/citymesh/pkg/geometry"
)

func squareDocument() *Document {
	doc := NewDocument()
	ring := geometry.Ring{
		geometry.NewVector3(0, 0, 0),
		geometry.NewVector3(4, 0, 0),
		geometry.NewVector3(4, 0, 4),
		geometry.NewVector3(0, 0, 4),
	}
	bbox := geometry.NewBoundingBox()
	for _, tri := range ring.Triangulate() {
		doc.AddTriangle(tri)
		bbox.ExtendTriangle(tri)
	}
	doc.SetBounds(bbox)
	return doc
}

func TestWriteReadRoundTrip(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "mesh.json")

	doc := squareDocument()
	if err := Write(doc, path); err != nil {
		t.Fatalf("Write failed: %v", err)
	}

	loaded, err := Read(path)
	if err != nil {
		t.Fatalf("Read failed: %v", err)
	}

	if loaded.TriangleCount() != 2 {
		t.Errorf("expected 2 triangles, got %d", loaded.TriangleCount())
	}
	if loaded.Bounds == nil {
		t.Fatal("expected bounds to survive the round trip")
	}
	if loaded.Bounds.Min != [3]float64{0, 0, 0} {
		t.Errorf("unexpected min: %v", loaded.Bounds.Min)
	}
	if loaded.Bounds.Max != [3]float64{4, 0, 4} {
		t.Errorf("unexpected max: %v", loaded.Bounds.Max)
	}
}

func TestWriteCreatesParentDirectory(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "nested", "deep", "mesh.json")

	if err := Write(squareDocument(), path); err != nil {
		t.Fatalf("Write failed: %v", err)
	}
	if _, err := os.Stat(path); err != nil {
		t.Errorf("expected output file to exist: %v", err)
	}
}

func TestWriteLeavesNoTempFiles(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "mesh.json")

	if err := Write(squareDocument(), path); err != nil {
		t.Fatalf("Write failed: %v", err)
	}

	entries, err := os.ReadDir(dir)
	if err != nil {
		t.Fatalf("failed to read dir: %v", err)
	}
	for _, e := range entries {
		if strings.HasPrefix(e.Name(), ".mesh-") {
			t.Errorf("temporary file left behind: %s", e.Name())
		}
	}
}

func TestWriteOutputIsWorldReadable(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "mesh.json")

	if err := Write(squareDocument(), path); err != nil {
		t.Fatalf("Write failed: %v", err)
	}

	info, err := os.Stat(path)
	if err != nil {
		t.Fatalf("stat failed: %v", err)
	}
	if perm := info.Mode().Perm(); perm&0o044 != 0o044 {
		t.Errorf("expected world-readable output, got %v", perm)
	}
}

func TestWriteIsDeterministic(t *testing.T) {
	dir := t.TempDir()
	first := filepath.Join(dir, "a.json")
	second := filepath.Join(dir, "b.json")

	if err := Write(squareDocument(), first); err != nil {
		t.Fatalf("Write failed: %v", err)
	}
	if err := Write(squareDocument(), second); err != nil {
		t.Fatalf("Write failed: %v", err)
	}

	a, _ := os.ReadFile(first)
	b, _ := os.ReadFile(second)
	if !bytes.Equal(a, b) {
		t.Error("identical documents produced different bytes")
	}
}

func TestEmptyDocumentKeepsTrianglesArray(t *testing.T) {
	doc := NewDocument()
	doc.SetBounds(geometry.NewBoundingBox())

	data, err := json.Marshal(doc)
	if err != nil {
		t.Fatalf("marshal failed: %v", err)
	}

	var decoded map[string]json.RawMessage
	if err := json.Unmarshal(data, &decoded); err != nil {
		t.Fatalf("unmarshal failed: %v", err)
	}
	if raw, ok := decoded["triangles"]; !ok || string(raw) != "[]" {
		t.Errorf(`expected "triangles": [], got %s`, data)
	}
	if _, ok := decoded["bounds"]; ok {
		t.Error("expected bounds to be omitted for an empty document")
	}
}

func TestDocumentSurfaceArea(t *testing.T) {
	doc := squareDocument()
	if area := doc.SurfaceArea(); area != 16.0 {
		t.Errorf("expected surface area 16, got %v", area)
	}
}
