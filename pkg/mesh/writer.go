package mesh

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
)

// Write serializes the document and moves it into place atomically: the
// JSON is built fully in memory, written to a temporary file next to the
// target, then renamed. A crash mid-write never leaves a truncated
// document for the viewer to misread.
func Write(doc *Document, filename string) error {
	data, err := json.MarshalIndent(doc, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to encode mesh document: %w", err)
	}
	data = append(data, '\n')

	dir := filepath.Dir(filename)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("failed to create output directory: %w", err)
	}

	tmp, err := os.CreateTemp(dir, ".mesh-*.json")
	if err != nil {
		return fmt.Errorf("failed to create temporary file: %w", err)
	}

	if _, err := tmp.Write(data); err != nil {
		tmp.Close()
		os.Remove(tmp.Name())
		return fmt.Errorf("failed to write mesh document: %w", err)
	}
	if err := tmp.Close(); err != nil {
		os.Remove(tmp.Name())
		return fmt.Errorf("failed to write mesh document: %w", err)
	}

	// CreateTemp uses 0600; the document is served to a viewer, often by
	// a web server running as another user.
	if err := os.Chmod(tmp.Name(), 0o644); err != nil {
		os.Remove(tmp.Name())
		return fmt.Errorf("failed to set mesh document permissions: %w", err)
	}

	if err := os.Rename(tmp.Name(), filename); err != nil {
		os.Remove(tmp.Name())
		return fmt.Errorf("failed to move mesh document into place: %w", err)
	}
	return nil
}

// Read loads a mesh document written by Write
func Read(filename string) (*Document, error) {
	data, err := os.ReadFile(filename)
	if err != nil {
		return nil, fmt.Errorf("failed to read mesh document: %w", err)
	}

	doc := NewDocument()
	if err := json.Unmarshal(data, doc); err != nil {
		return nil, fmt.Errorf("failed to decode mesh document: %w", err)
	}
	return doc, nil
}
