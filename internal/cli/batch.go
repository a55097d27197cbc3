package cli

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"runtime"
	"strings"
	"time"

	"github.com/mkoval/clausewise/internal/worker"
	"github.com/spf13/cobra"
)

var (
	concurrency  int
	outputDir    string
	batchTimeout time.Duration
)

// batchCmd represents the batch command
var batchCmd = &cobra.Command{
	Use:   "batch <dir|list-file>",
	Short: "Analyze every contract document in a directory in parallel",
	Long: `Batch analyzes all supported documents (.txt, .pdf, .html) in a
directory concurrently and writes one JSON export and one text report
per document into the output directory. The argument may also be a
text file listing one document path per line.

Analysis runs share the same immutable rule set, so documents are
processed fully in parallel.

Example:
  clausewise batch ./contracts
  clausewise batch ./contracts --concurrency 8 --output-dir ./reports`,
	Args: cobra.ExactArgs(1),
	RunE: runBatch,
}

func init() {
	rootCmd.AddCommand(batchCmd)

	batchCmd.Flags().IntVar(&concurrency, "concurrency", runtime.NumCPU(), "number of concurrent workers")
	batchCmd.Flags().StringVar(&outputDir, "output-dir", "./clausewise-reports", "output directory for reports")
	batchCmd.Flags().DurationVar(&batchTimeout, "timeout", 10*time.Minute, "total timeout for batch processing")

	batchCmd.Flags().StringVar(&rulesPath, "rules", "", "YAML rule-set file (default: builtin rules)")
	batchCmd.Flags().BoolVar(&noCache, "no-cache", false, "disable result cache")
	batchCmd.Flags().BoolVar(&noFooter, "no-footer", false, "disable footer in text reports")
	batchCmd.Flags().IntVar(&minClauseLen, "min-clause-length", 0, "minimum clause length in bytes (default 50)")
}

func runBatch(cmd *cobra.Command, args []string) error {
	dir := args[0]
	ctx, cancel := context.WithTimeout(context.Background(), batchTimeout)
	defer cancel()

	paths, err := collectDocuments(dir)
	if err != nil {
		return err
	}
	if len(paths) == 0 {
		return fmt.Errorf("no supported documents found in %s", dir)
	}

	fmt.Fprintf(os.Stderr, "Analyzing %d documents with %d workers\n", len(paths), concurrency)

	cfg := buildConfig()
	cfg.Concurrency.Workers = concurrency

	p, err := newPipeline(cfg)
	if err != nil {
		return err
	}

	if err := os.MkdirAll(outputDir, 0755); err != nil {
		return fmt.Errorf("create output directory: %w", err)
	}

	processor := worker.NewBatchProcessor(p, concurrency)
	results := processor.ProcessFiles(ctx, paths)

	failed := 0
	for _, r := range results {
		if r.Error != nil {
			failed++
			fmt.Fprintf(os.Stderr, "FAIL %s: %v\n", r.Path, r.Error)
			continue
		}

		base := strings.TrimSuffix(filepath.Base(r.Path), filepath.Ext(r.Path))
		jsonPath := filepath.Join(outputDir, base+".json")
		textPath := filepath.Join(outputDir, base+".txt")
		if err := p.RenderReport(r.Result, jsonPath, textPath, verbose); err != nil {
			failed++
			fmt.Fprintf(os.Stderr, "FAIL %s: %v\n", r.Path, err)
		}
	}

	fmt.Fprintf(os.Stderr, "Done: %d analyzed, %d failed\n", len(results)-failed, failed)
	if failed > 0 {
		return fmt.Errorf("%d of %d documents failed", failed, len(results))
	}
	return nil
}

// collectDocuments lists supported document files directly inside dir, or
// reads document paths line by line when dir is a regular file
func collectDocuments(dir string) ([]string, error) {
	info, err := os.Stat(dir)
	if err != nil {
		return nil, fmt.Errorf("stat input: %w", err)
	}
	if !info.IsDir() {
		return readDocumentList(dir)
	}

	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, fmt.Errorf("read directory: %w", err)
	}

	var paths []string
	for _, entry := range entries {
		if entry.IsDir() {
			continue
		}
		switch strings.ToLower(filepath.Ext(entry.Name())) {
		case ".txt", ".text", ".md", ".pdf", ".html", ".htm":
			paths = append(paths, filepath.Join(dir, entry.Name()))
		}
	}
	return paths, nil
}

// readDocumentList parses a manifest file with one document path per line.
// Blank lines and #-comments are skipped.
func readDocumentList(path string) ([]string, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read document list: %w", err)
	}

	var paths []string
	for _, line := range strings.Split(string(data), "\n") {
		line = strings.TrimSpace(line)
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		paths = append(paths, line)
	}
	return paths, nil
}
