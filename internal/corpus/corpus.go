// Package corpus drives the conversion pipeline over a directory of
// CityGML documents: discovery, per-file extraction, normalization and
// triangulation, and the fold into one mesh document.
package corpus

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"sync"

	"go.uber.org/zap"

	"github.com/citymesh/citymesh/internal/logger"
	"github.com/citymesh/citymesh/pkg/citygml"
	"github.com/citymesh/citymesh/pkg/geodetic"
	"github.com/citymesh/citymesh/pkg/geometry"
	"github.com/citymesh/citymesh/pkg/mesh"
)

// ErrInputNotFound reports a missing input directory. Fatal to the run.
var ErrInputNotFound = errors.New("input directory not found")

// ErrEmptyCorpus reports a directory with no eligible source documents.
// Fatal to the run.
var ErrEmptyCorpus = errors.New("no eligible source documents")

// Options configures a conversion run.
type Options struct {
	InputDir        string
	Extension       string // source extension including the dot
	Limit           int    // max files to process, 0 = all
	Workers         int    // parallel file workers, <=1 = sequential
	AxisOrder       citygml.AxisOrder
	Project         bool // apply local tangent projection around the corpus mean
	VertexTolerance float64
	MinRingArea     float64
}

// Stats summarizes a conversion run for the end-of-run report.
type Stats struct {
	FilesProcessed int
	FilesSkipped   int
	RingsKept      int
	RingsSkipped   int
	Triangles      int
}

// Result is a finished conversion: the mesh document plus run statistics.
type Result struct {
	Document *mesh.Document
	Stats    Stats
}

// fileResult is one file's contribution, produced independently per file
// so the parallel path needs no locking until the merge.
type fileResult struct {
	triangles    []geometry.Triangle
	ringsKept    int
	ringsSkipped int
	err          error
}

// Convert runs the full pipeline. Per-file parse failures are logged and
// skipped; only a missing directory, an empty corpus, or (upstream) a
// failed write abort the run.
func Convert(opts Options) (*Result, error) {
	if opts.Extension == "" {
		opts.Extension = ".gml"
	}
	if opts.VertexTolerance == 0 {
		opts.VertexTolerance = geometry.VertexTolerance
	}
	if opts.MinRingArea == 0 {
		opts.MinRingArea = geometry.MinRingArea
	}

	files, err := discover(opts.InputDir, opts.Extension, opts.Limit)
	if err != nil {
		return nil, err
	}

	results := make([]fileResult, len(files))
	if opts.Workers > 1 {
		var wg sync.WaitGroup
		sem := make(chan struct{}, opts.Workers)
		for i, path := range files {
			wg.Add(1)
			go func(i int, path string) {
				defer wg.Done()
				sem <- struct{}{}
				defer func() { <-sem }()
				results[i] = processFile(path, opts)
			}(i, path)
		}
		wg.Wait()
	} else {
		for i, path := range files {
			results[i] = processFile(path, opts)
		}
	}

	// Merge strictly in discovery order so runs are byte-identical
	// regardless of worker completion order.
	doc := mesh.NewDocument()
	bbox := geometry.NewBoundingBox()
	var stats Stats
	for i, res := range results {
		if res.err != nil {
			logger.Log.Warn("skipping file",
				zap.String("file", files[i]),
				zap.Error(res.err))
			stats.FilesSkipped++
			continue
		}
		stats.FilesProcessed++
		stats.RingsKept += res.ringsKept
		stats.RingsSkipped += res.ringsSkipped
		for _, tri := range res.triangles {
			doc.AddTriangle(tri)
			bbox.ExtendTriangle(tri)
		}
	}
	stats.Triangles = doc.TriangleCount()

	if opts.Project {
		bbox = project(doc, files)
	}
	doc.SetBounds(bbox)

	return &Result{Document: doc, Stats: stats}, nil
}

// discover lists eligible documents in lexicographic filename order,
// capped at limit when limit is positive.
func discover(dir, ext string, limit int) ([]string, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, fmt.Errorf("%w: %s", ErrInputNotFound, dir)
		}
		return nil, fmt.Errorf("failed to read input directory: %w", err)
	}

	var files []string
	for _, entry := range entries {
		if entry.IsDir() || !strings.HasSuffix(entry.Name(), ext) {
			continue
		}
		files = append(files, filepath.Join(dir, entry.Name()))
	}
	if len(files) == 0 {
		return nil, fmt.Errorf("%w: %s", ErrEmptyCorpus, dir)
	}

	if limit > 0 && limit < len(files) {
		files = files[:limit]
	}
	return files, nil
}

// processFile runs extract → normalize → triangulate for one document.
// Purely functional over its input; safe to run concurrently per file.
func processFile(path string, opts Options) fileResult {
	rings, err := citygml.ExtractFile(path, opts.AxisOrder)
	if err != nil {
		return fileResult{err: err}
	}

	var res fileResult
	for _, raw := range rings {
		ring := geometry.NormalizeRingTol(raw, opts.VertexTolerance, opts.MinRingArea)
		if ring == nil {
			res.ringsSkipped++
			logger.Log.Debug("rejected degenerate ring",
				zap.String("file", path),
				zap.Int("vertices", len(raw)))
			continue
		}
		res.ringsKept++
		res.triangles = append(res.triangles, ring.Triangulate()...)
	}
	return res
}

// project applies the local tangent projection around the corpus-mean
// origin and rewrites the document's triangles in place. Returns the
// bounding box of the projected vertices.
func project(doc *mesh.Document, files []string) geometry.BoundingBox {
	bbox := geometry.NewBoundingBox()
	if doc.TriangleCount() == 0 {
		return bbox
	}

	// Origin: mean latitude/longitude over every vertex, as extracted
	// (X=lon, Z=-lat under the lat-lon-height remap).
	var latSum, lonSum float64
	count := 0
	for i := 0; i < doc.TriangleCount(); i++ {
		tri := doc.Triangle(i)
		for _, v := range []geometry.Vector3{tri.V1, tri.V2, tri.V3} {
			latSum += -v.Z
			lonSum += v.X
			count++
		}
	}
	proj := geodetic.NewProjection(latSum/float64(count), lonSum/float64(count))

	for i := 0; i < doc.TriangleCount(); i++ {
		tri := doc.Triangle(i)
		projected := geometry.NewTriangle(
			proj.ForwardVector(tri.V1),
			proj.ForwardVector(tri.V2),
			proj.ForwardVector(tri.V3),
		)
		doc.Triangles[i] = projected.Flat()
		bbox.ExtendTriangle(projected)
	}

	names := make([]string, len(files))
	for i, f := range files {
		names[i] = filepath.Base(f)
	}
	doc.Origin = &mesh.Origin{Lat: proj.Lat0, Lon: proj.Lon0}
	doc.Metadata = &mesh.Metadata{
		SourceFiles: names,
		LatScale:    proj.LatScale,
		LonScale:    proj.LonScale,
	}
	return bbox
}
