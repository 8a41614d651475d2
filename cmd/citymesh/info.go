package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/citymesh/citymesh/pkg/analysis"
	"github.com/citymesh/citymesh/pkg/mesh"
)

var infoCmd = &cobra.Command{
	Use:   "info <mesh.json>",
	Short: "Display information about a converted mesh document",
	Long:  "Show triangle count, bounding box, dimensions, surface area, and edge statistics of a mesh document produced by convert.",
	Args:  cobra.ExactArgs(1),
	Run:   runInfo,
}

func init() {
	rootCmd.AddCommand(infoCmd)
}

func runInfo(cmd *cobra.Command, args []string) {
	filename := args[0]

	doc, err := mesh.Read(filename)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error reading mesh document: %v\n", err)
		os.Exit(exitInput)
	}

	result := analysis.Analyze(doc)

	fmt.Println("Mesh Document Information")
	fmt.Println("=========================")
	fmt.Printf("File: %s\n\n", filename)

	fmt.Println("Mesh Statistics:")
	fmt.Printf("  Triangles: %d\n", result.TriangleCount)
	fmt.Printf("  Edges: %d\n", result.EdgeCount)
	fmt.Printf("  Surface Area: %.6f square units\n\n", result.SurfaceArea)

	if doc.Origin != nil {
		fmt.Printf("Origin: lat %.6f, lon %.6f\n\n", doc.Origin.Lat, doc.Origin.Lon)
	}

	if !result.BoundingBox.IsEmpty() {
		fmt.Println("Bounding Box:")
		fmt.Printf("  Min: %s\n", analysis.FormatVector(result.BoundingBox.Min))
		fmt.Printf("  Max: %s\n", analysis.FormatVector(result.BoundingBox.Max))
		fmt.Printf("  Center: %s\n\n", analysis.FormatVector(result.BoundingBox.Center()))

		fmt.Println("Dimensions:")
		fmt.Printf("  Width (X):  %.6f units\n", result.Dimensions.X)
		fmt.Printf("  Height (Y): %.6f units\n", result.Dimensions.Y)
		fmt.Printf("  Depth (Z):  %.6f units\n", result.Dimensions.Z)
		fmt.Printf("  Diagonal:   %.6f units\n\n", result.BoundingBox.Diagonal())

		fmt.Println("Edge Lengths:")
		fmt.Printf("  Minimum: %.6f units\n", result.MinEdgeLength)
		fmt.Printf("  Maximum: %.6f units\n", result.MaxEdgeLength)
		fmt.Printf("  Average: %.6f units\n", result.AvgEdgeLength)
	}

	if doc.Metadata != nil && len(doc.Metadata.SourceFiles) > 0 {
		fmt.Printf("\nSource files (%d):\n", len(doc.Metadata.SourceFiles))
		for _, name := range doc.Metadata.SourceFiles {
			fmt.Printf("  %s\n", name)
		}
	}
}
