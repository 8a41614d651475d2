package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/citymesh/citymesh/internal/config"
	"github.com/citymesh/citymesh/internal/corpus"
	"github.com/citymesh/citymesh/internal/logger"
	"github.com/citymesh/citymesh/pkg/citygml"
	"github.com/citymesh/citymesh/pkg/mesh"
)

var (
	convertLimit     int
	convertWorkers   int
	convertAxisOrder string
	convertProject   bool
	convertConfig    string
)

var convertCmd = &cobra.Command{
	Use:   "convert <input_dir> <output_path>",
	Short: "Convert a directory of CityGML documents into a mesh document",
	Long: `Convert discovers CityGML files in the input directory (lexicographic
order), extracts LoD1 building surface rings, triangulates them, and
writes a single JSON mesh document with the aggregate bounding box.

Unparsable files and degenerate rings are skipped with a warning; the run
succeeds as long as the input directory holds at least one eligible file
and the output can be written.`,
	Args: cobra.ExactArgs(2),
	Run:  runConvert,
}

func init() {
	rootCmd.AddCommand(convertCmd)

	convertCmd.Flags().IntVar(&convertLimit, "limit", 0, "maximum number of documents to process (default: all)")
	convertCmd.Flags().IntVar(&convertWorkers, "workers", 0, "parallel file workers (default: from config, 1 = sequential)")
	convertCmd.Flags().StringVar(&convertAxisOrder, "axis-order", "", "source coordinate order: xyz or lat-lon-height")
	convertCmd.Flags().BoolVar(&convertProject, "project", false, "project lat-lon-height sources to local meters around the corpus mean")
	convertCmd.Flags().StringVar(&convertConfig, "config", "", "path to config file")
}

func runConvert(cmd *cobra.Command, args []string) {
	opts, err := convertOptions(cmd, args[0])
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(exitUsage)
	}
	defer logger.Sync()

	result, err := corpus.Convert(opts)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(exitInput)
	}

	if err := mesh.Write(result.Document, args[1]); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(exitOutput)
	}

	printSummary(args[1], result.Stats)
}

// convertOptions merges config-file defaults with CLI flags (flags win)
// and initializes logging. Returns a usage error for invalid flag values.
func convertOptions(cmd *cobra.Command, inputDir string) (corpus.Options, error) {
	if cmd.Flags().Changed("limit") && convertLimit <= 0 {
		return corpus.Options{}, fmt.Errorf("--limit must be a positive integer, got %d", convertLimit)
	}
	if cmd.Flags().Changed("workers") && convertWorkers <= 0 {
		return corpus.Options{}, fmt.Errorf("--workers must be a positive integer, got %d", convertWorkers)
	}

	cfg, err := config.Load(convertConfig)
	if err != nil {
		return corpus.Options{}, err
	}
	logger.Init(cfg.Logging.Level, cfg.Logging.LogFile)

	orderName := cfg.Convert.AxisOrder
	if cmd.Flags().Changed("axis-order") {
		orderName = convertAxisOrder
	} else if convertProject {
		// Projection only makes sense for geographic sources.
		orderName = citygml.AxisLatLonHeight.String()
	}
	order, err := citygml.ParseAxisOrder(orderName)
	if err != nil {
		return corpus.Options{}, err
	}

	workers := cfg.Convert.Workers
	if cmd.Flags().Changed("workers") {
		workers = convertWorkers
	}

	return corpus.Options{
		InputDir:        inputDir,
		Extension:       cfg.Convert.Extension,
		Limit:           convertLimit,
		Workers:         workers,
		AxisOrder:       order,
		Project:         convertProject,
		VertexTolerance: cfg.Convert.VertexTolerance,
		MinRingArea:     cfg.Convert.MinRingArea,
	}, nil
}

// printSummary reports data quality at the end of a run so skipped input
// is visible without reading logs line by line.
func printSummary(output string, stats corpus.Stats) {
	fmt.Printf("Wrote %s\n", output)
	fmt.Printf("  Files processed: %d\n", stats.FilesProcessed)
	fmt.Printf("  Files skipped:   %d\n", stats.FilesSkipped)
	fmt.Printf("  Rings kept:      %d\n", stats.RingsKept)
	fmt.Printf("  Rings skipped:   %d\n", stats.RingsSkipped)
	fmt.Printf("  Triangles:       %d\n", stats.Triangles)
}
