package pipeline

import (
	"encoding/json"
	"fmt"
	"log/slog"

	"github.com/mkoval/clausewise/internal/cache"
	"github.com/mkoval/clausewise/internal/extract"
	"github.com/mkoval/clausewise/internal/model"
	"github.com/mkoval/clausewise/internal/redline"
	"github.com/mkoval/clausewise/internal/rules"
	"github.com/mkoval/clausewise/internal/score"
	"github.com/mkoval/clausewise/internal/segment"
)

// Pipeline wires segmenter, scorer and redline generator into one analysis
// run. The rule set is compiled once at construction; each Analyze call is
// independent, so one Pipeline may serve concurrent documents.
type Pipeline struct {
	ruleSet   *rules.RuleSet
	segmenter *segment.Segmenter
	scorer    *score.Scorer
	redliner  *redline.Generator
	renderer  *Renderer
	cache     cache.Cache // nil when caching is disabled
	logger    *slog.Logger
}

// New creates a pipeline for the given configuration and validated rule set.
// resultCache may be nil to disable caching.
func New(cfg *model.Config, rs *rules.RuleSet, resultCache cache.Cache, logger *slog.Logger) *Pipeline {
	if logger == nil {
		logger = slog.Default()
	}
	return &Pipeline{
		ruleSet:   rs,
		segmenter: segment.New(cfg.Segment.MinClauseLength),
		scorer:    score.NewScorer(rs),
		redliner:  redline.NewGenerator(rs),
		renderer:  NewRenderer(cfg.Output.IncludeFooter),
		cache:     resultCache,
		logger:    logger,
	}
}

// Analyze runs segmentation, scoring and redline generation over raw text.
// Zero surviving clauses is not an error: the result comes back with
// NoClausesFound set and empty clause/finding lists.
func (p *Pipeline) Analyze(raw string) (*model.AnalysisResult, error) {
	clauses := p.segmenter.Segment(raw)

	result := &model.AnalysisResult{
		RulesVersion: p.ruleSet.Version,
		Clauses:      clauses,
		Findings:     []model.Finding{},
	}
	if len(clauses) == 0 {
		result.Clauses = []model.Clause{}
		result.NoClausesFound = true
		return result, nil
	}

	for _, clause := range clauses {
		findings := p.scorer.Score(clause)
		for i := range findings {
			suggestion, err := p.redliner.Suggest(findings[i])
			if err != nil {
				// Unreachable with a validated rule set; a hit here means the
				// scorer and template table disagree about the category set
				return nil, fmt.Errorf("redline for clause %d: %w", clause.ID, err)
			}
			findings[i].SuggestedRedline = suggestion
		}
		result.Findings = append(result.Findings, findings...)
	}

	p.logger.Debug("analysis complete",
		"clauses", len(result.Clauses),
		"findings", len(result.Findings))

	return result, nil
}

// AnalyzeFile extracts text from a document file and analyzes it, consulting
// the result cache when one is configured
func (p *Pipeline) AnalyzeFile(path string) (*model.AnalysisResult, error) {
	extractor, err := extract.ForFile(path)
	if err != nil {
		return nil, err
	}

	raw, err := extractor.Extract(path)
	if err != nil {
		return nil, err
	}
	p.logger.Debug("extracted document", "path", path, "extractor", extractor.Name(), "bytes", len(raw))

	key := cache.Key(p.ruleSet.Version, raw)
	if p.cache != nil {
		if data, found := p.cache.Get(key); found {
			var cached model.AnalysisResult
			if err := json.Unmarshal(data, &cached); err == nil {
				cached.Source = path
				p.logger.Debug("cache hit", "path", path)
				return &cached, nil
			}
			// Corrupt entry: fall through and overwrite it
			_ = p.cache.Delete(key)
		}
	}

	result, err := p.Analyze(raw)
	if err != nil {
		return nil, err
	}
	result.Source = path

	if p.cache != nil {
		// Cache without Source so renames and moves still hit
		stored := *result
		stored.Source = ""
		if data, err := json.Marshal(&stored); err == nil {
			if err := p.cache.Set(key, data, 0); err != nil {
				p.logger.Warn("cache write failed", "path", path, "error", err)
			}
		}
	}

	return result, nil
}
