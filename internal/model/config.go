package model

import "time"

// Config holds the complete runtime configuration.
// Hierarchy (highest to lowest priority): CLI flags, CLAUSEWISE_* environment
// variables, ~/.clausewise/config.yaml, the defaults below.
type Config struct {
	Rules       RulesConfig       `yaml:"rules" mapstructure:"rules"`
	Segment     SegmentConfig     `yaml:"segment" mapstructure:"segment"`
	Cache       CacheConfig       `yaml:"cache" mapstructure:"cache"`
	Concurrency ConcurrencyConfig `yaml:"concurrency" mapstructure:"concurrency"`
	Output      OutputConfig      `yaml:"output" mapstructure:"output"`
	Log         LogConfig         `yaml:"log" mapstructure:"log"`
}

// RulesConfig selects and tunes the rule set
type RulesConfig struct {
	// Path to a YAML rule-set file. Empty means the builtin default rule set.
	Path string `yaml:"path" mapstructure:"path"`
}

// SegmentConfig tunes the clause segmenter
type SegmentConfig struct {
	// MinClauseLength is the floor below which fragments are discarded
	MinClauseLength int `yaml:"min_clause_length" mapstructure:"min_clause_length"`
}

// CacheConfig controls the analysis result cache
type CacheConfig struct {
	Enabled   bool          `yaml:"enabled" mapstructure:"enabled"`
	Dir       string        `yaml:"dir" mapstructure:"dir"`
	MemoryTTL time.Duration `yaml:"memory_ttl" mapstructure:"memory_ttl"`
	DiskTTL   time.Duration `yaml:"disk_ttl" mapstructure:"disk_ttl"`
}

// ConcurrencyConfig controls batch processing
type ConcurrencyConfig struct {
	Workers int `yaml:"workers" mapstructure:"workers"`
}

// OutputConfig controls report rendering
type OutputConfig struct {
	Verbose       bool `yaml:"verbose" mapstructure:"verbose"`
	IncludeFooter bool `yaml:"include_footer" mapstructure:"include_footer"`
}

// LogConfig controls structured logging
type LogConfig struct {
	Level string `yaml:"level" mapstructure:"level"`
}

// DefaultConfig returns the built-in defaults
func DefaultConfig() *Config {
	return &Config{
		Rules: RulesConfig{
			Path: "",
		},
		Segment: SegmentConfig{
			MinClauseLength: 50,
		},
		Cache: CacheConfig{
			Enabled:   true,
			Dir:       "", // Resolved to ~/.clausewise/cache by the CLI
			MemoryTTL: 30 * time.Minute,
			DiskTTL:   24 * time.Hour,
		},
		Concurrency: ConcurrencyConfig{
			Workers: 4,
		},
		Output: OutputConfig{
			Verbose:       false,
			IncludeFooter: true,
		},
		Log: LogConfig{
			Level: "info",
		},
	}
}
