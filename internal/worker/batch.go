package worker

import (
	"context"
	"sort"

	"github.com/mkoval/clausewise/internal/model"
)

// Analyzer analyzes one document file. Implemented by pipeline.Pipeline.
type Analyzer interface {
	AnalyzeFile(path string) (*model.AnalysisResult, error)
}

// AnalyzeJob analyzes a single document
type AnalyzeJob struct {
	Path     string
	Analyzer Analyzer
}

// Execute runs the analysis unless the batch was already cancelled
func (j *AnalyzeJob) Execute(ctx context.Context) Result {
	if err := ctx.Err(); err != nil {
		return &AnalyzeResult{Path: j.Path, Error: err}
	}
	result, err := j.Analyzer.AnalyzeFile(j.Path)
	return &AnalyzeResult{Path: j.Path, Result: result, Error: err}
}

// AnalyzeResult pairs a document path with its analysis outcome
type AnalyzeResult struct {
	Path   string
	Result *model.AnalysisResult
	Error  error
}

// GetError returns the analysis error, if any
func (r *AnalyzeResult) GetError() error {
	return r.Error
}

// BatchProcessor analyzes many documents concurrently
type BatchProcessor struct {
	analyzer    Analyzer
	concurrency int
}

// NewBatchProcessor creates a batch processor
func NewBatchProcessor(analyzer Analyzer, concurrency int) *BatchProcessor {
	return &BatchProcessor{analyzer: analyzer, concurrency: concurrency}
}

// ProcessFiles analyzes the given document paths in parallel and returns the
// results sorted by path, so batch output order is deterministic regardless
// of scheduling
func (b *BatchProcessor) ProcessFiles(ctx context.Context, paths []string) []*AnalyzeResult {
	if len(paths) == 0 {
		return []*AnalyzeResult{}
	}

	pool := NewPool(b.concurrency)
	pool.Start()

	go func() {
		defer pool.Close()
		for _, path := range paths {
			if ctx.Err() != nil {
				return
			}
			pool.Submit(&AnalyzeJob{Path: path, Analyzer: b.analyzer})
		}
	}()

	raw := pool.Wait()

	results := make([]*AnalyzeResult, 0, len(raw))
	for _, r := range raw {
		if ar, ok := r.(*AnalyzeResult); ok {
			results = append(results, ar)
		}
	}
	sort.Slice(results, func(i, j int) bool { return results[i].Path < results[j].Path })
	return results
}
