package cli

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/mkoval/clausewise/internal/cache"
	"github.com/mkoval/clausewise/internal/logging"
	"github.com/mkoval/clausewise/internal/model"
	"github.com/mkoval/clausewise/internal/pipeline"
	"github.com/mkoval/clausewise/internal/rules"
	"github.com/spf13/cobra"
)

var (
	outJSON      string
	outText      string
	rulesPath    string
	noCache      bool
	noFooter     bool
	minClauseLen int
)

// analyzeCmd represents the analyze command
var analyzeCmd = &cobra.Command{
	Use:   "analyze <file>",
	Short: "Analyze a single contract document for risky clauses",
	Long: `Analyze segments a contract into clauses, scores each clause against
the risk rule set, and writes a JSON export plus an optional
plain-text report grouped by severity tier.

Supported inputs: plain text, PDF, HTML.

Example:
  clausewise analyze contract.txt
  clausewise analyze contract.pdf --json report.json --report report.txt
  clausewise analyze contract.txt --rules custom-rules.yaml`,
	Args: cobra.ExactArgs(1),
	RunE: runAnalyze,
}

func init() {
	rootCmd.AddCommand(analyzeCmd)

	analyzeCmd.Flags().StringVar(&outJSON, "json", "analysis.json", "output JSON path")
	analyzeCmd.Flags().StringVar(&outText, "report", "", "output plain-text report path (optional)")
	analyzeCmd.Flags().StringVar(&rulesPath, "rules", "", "YAML rule-set file (default: builtin rules)")
	analyzeCmd.Flags().BoolVar(&noCache, "no-cache", false, "disable result cache (force fresh analysis)")
	analyzeCmd.Flags().BoolVar(&noFooter, "no-footer", false, "disable footer in text reports")
	analyzeCmd.Flags().IntVar(&minClauseLen, "min-clause-length", 0, "minimum clause length in bytes (default 50)")
}

func runAnalyze(cmd *cobra.Command, args []string) error {
	file := args[0]

	cfg := buildConfig()

	p, err := newPipeline(cfg)
	if err != nil {
		return err
	}

	result, err := p.AnalyzeFile(file)
	if err != nil {
		return fmt.Errorf("analyze failed: %w", err)
	}

	if verbose {
		fmt.Fprintf(os.Stderr, "Segmented %d clauses, flagged %d findings\n",
			len(result.Clauses), len(result.Findings))
	}

	if err := p.RenderReport(result, outJSON, outText, verbose); err != nil {
		return fmt.Errorf("render failed: %w", err)
	}
	return nil
}

// buildConfig applies CLI flags on top of the defaults
func buildConfig() *model.Config {
	cfg := model.DefaultConfig()
	cfg.Rules.Path = rulesPath
	cfg.Cache.Enabled = !noCache
	cfg.Output.Verbose = verbose
	cfg.Output.IncludeFooter = !noFooter
	if minClauseLen > 0 {
		cfg.Segment.MinClauseLength = minClauseLen
	}
	if verbose {
		cfg.Log.Level = "debug"
	}
	return cfg
}

// newPipeline loads and validates the rule set, then assembles the pipeline
// with its cache and logger
func newPipeline(cfg *model.Config) (*pipeline.Pipeline, error) {
	rs, err := rules.Load(cfg.Rules.Path)
	if err != nil {
		return nil, err
	}

	var resultCache cache.Cache
	if cfg.Cache.Enabled {
		dir := cfg.Cache.Dir
		if dir == "" {
			if home, err := os.UserHomeDir(); err == nil {
				dir = filepath.Join(home, ".clausewise", "cache")
			}
		}
		if dir != "" {
			resultCache = cache.NewLayeredCache(cfg.Cache.MemoryTTL, dir, cfg.Cache.DiskTTL)
		}
	}

	logger := logging.New(os.Stderr, cfg.Log.Level)

	return pipeline.New(cfg, rs, resultCache, logger), nil
}
