package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/citymesh/citymesh/version"
)

// Exit codes shared by the subcommands. Per-file parse failures are
// warnings and never affect the exit code.
const (
	exitInput  = 1  // input directory missing or empty of eligible files
	exitOutput = 2  // mesh document could not be written
	exitUsage  = 64 // bad flags or arguments
)

var rootCmd = &cobra.Command{
	Use:   "citymesh",
	Short: "Convert CityGML LoD1 building models into a renderer-ready mesh",
	Long: `citymesh converts a directory of CityGML LoD1 documents into a single
flat triangle mesh with a bounding box, serialized as one JSON document
for consumption by a viewer.`,
	Version: version.GetVersion(),
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(exitUsage)
	}
}
