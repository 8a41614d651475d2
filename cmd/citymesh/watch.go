package main

import (
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/citymesh/citymesh/internal/corpus"
	"github.com/citymesh/citymesh/internal/logger"
	"github.com/citymesh/citymesh/pkg/mesh"
	"github.com/citymesh/citymesh/pkg/watcher"
)

var watchDebounce time.Duration

var watchCmd = &cobra.Command{
	Use:   "watch <input_dir> <output_path>",
	Short: "Reconvert whenever the input directory changes",
	Long: `Watch performs an initial conversion and then reruns it whenever a
source file in the input directory is added, changed, or removed. Useful
while iterating on a source corpus with the viewer open.`,
	Args: cobra.ExactArgs(2),
	Run:  runWatch,
}

func init() {
	rootCmd.AddCommand(watchCmd)

	watchCmd.Flags().DurationVar(&watchDebounce, "debounce", 500*time.Millisecond, "delay before rebuilding after a change")
	watchCmd.Flags().IntVar(&convertLimit, "limit", 0, "maximum number of documents to process (default: all)")
	watchCmd.Flags().IntVar(&convertWorkers, "workers", 0, "parallel file workers (default: from config, 1 = sequential)")
	watchCmd.Flags().StringVar(&convertAxisOrder, "axis-order", "", "source coordinate order: xyz or lat-lon-height")
	watchCmd.Flags().BoolVar(&convertProject, "project", false, "project lat-lon-height sources to local meters around the corpus mean")
	watchCmd.Flags().StringVar(&convertConfig, "config", "", "path to config file")
}

func runWatch(cmd *cobra.Command, args []string) {
	inputDir, outputPath := args[0], args[1]

	opts, err := convertOptions(cmd, inputDir)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(exitUsage)
	}
	defer logger.Sync()

	rebuild := func() {
		result, err := corpus.Convert(opts)
		if err != nil {
			logger.Log.Error("conversion failed", zap.Error(err))
			return
		}
		if err := mesh.Write(result.Document, outputPath); err != nil {
			logger.Log.Error("write failed", zap.Error(err))
			return
		}
		logger.Log.Info("mesh rebuilt",
			zap.String("output", outputPath),
			zap.Int("triangles", result.Stats.Triangles),
			zap.Int("files_skipped", result.Stats.FilesSkipped))
	}

	// The initial build keeps the strict exit codes; later rebuilds only
	// log failures and keep watching.
	result, err := corpus.Convert(opts)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(exitInput)
	}
	if err := mesh.Write(result.Document, outputPath); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(exitOutput)
	}
	printSummary(outputPath, result.Stats)

	dw, err := watcher.NewDirWatcher(watchDebounce)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(exitInput)
	}
	defer dw.Close()

	if err := dw.Watch(inputDir, opts.Extension, rebuild); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(exitInput)
	}
	dw.Start(func(err error) {
		logger.Log.Warn("watcher error", zap.Error(err))
	})

	fmt.Printf("Watching %s (Ctrl-C to stop)\n", inputDir)

	sig := make(chan os.Signal, 1)
	signal.Notify(sig, os.Interrupt, syscall.SIGTERM)
	<-sig
}
