package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/filescope/filescope/domain"
	"github.com/spf13/viper"
)

// Config represents the main configuration structure. Everything that used
// to be an implicit module-level default is an explicit value here so tests
// can inject reduced tables without global state.
type Config struct {
	// Input holds file acceptance configuration
	Input InputConfig `mapstructure:"input" toml:"input" yaml:"input"`

	// Analysis holds analyzer tuning
	Analysis AnalysisConfig `mapstructure:"analysis" toml:"analysis" yaml:"analysis"`

	// Output holds output formatting configuration
	Output OutputConfig `mapstructure:"output" toml:"output" yaml:"output"`
}

// InputConfig holds file acceptance configuration
type InputConfig struct {
	// MaxFileSize is the upper bound, in bytes, for analyzable files
	MaxFileSize int64 `mapstructure:"max_file_size" toml:"max_file_size" yaml:"max_file_size"`

	// SupportedTypes maps category names to the extensions classified
	// under them
	SupportedTypes map[string][]string `mapstructure:"supported_types" toml:"supported_types" yaml:"supported_types"`

	// IncludePatterns and ExcludePatterns filter files collected from
	// directories
	IncludePatterns []string `mapstructure:"include_patterns" toml:"include_patterns" yaml:"include_patterns"`
	ExcludePatterns []string `mapstructure:"exclude_patterns" toml:"exclude_patterns" yaml:"exclude_patterns"`
}

// AnalysisConfig holds analyzer tuning
type AnalysisConfig struct {
	// CommonWordCount is the length of the common-word ranking
	CommonWordCount int `mapstructure:"common_word_count" toml:"common_word_count" yaml:"common_word_count"`

	// MinWordLength is the minimum token length counted as a common word
	MinWordLength int `mapstructure:"min_word_length" toml:"min_word_length" yaml:"min_word_length"`

	// StopWords are tokens excluded from the common-word ranking
	StopWords []string `mapstructure:"stop_words" toml:"stop_words" yaml:"stop_words"`

	// SniffSampleSize is the number of characters used for delimiter
	// sniffing
	SniffSampleSize int `mapstructure:"sniff_sample_size" toml:"sniff_sample_size" yaml:"sniff_sample_size"`

	// SampleValueCount is the number of raw sample values kept per column
	SampleValueCount int `mapstructure:"sample_value_count" toml:"sample_value_count" yaml:"sample_value_count"`

	// SampleKeyCount is the number of root keys or item type tags kept in
	// a structural summary
	SampleKeyCount int `mapstructure:"sample_key_count" toml:"sample_key_count" yaml:"sample_key_count"`
}

// OutputConfig holds output formatting configuration
type OutputConfig struct {
	// Format specifies the output format: text, quick, json, yaml
	Format string `mapstructure:"format" toml:"format" yaml:"format"`

	// Directory receives saved reports; empty means next to the analyzed
	// file
	Directory string `mapstructure:"directory" toml:"directory" yaml:"directory"`
}

// DefaultConfig returns a configuration with default values
func DefaultConfig() *Config {
	supported := make(map[string][]string)
	for category, extensions := range domain.DefaultSupportedTypes() {
		supported[string(category)] = extensions
	}
	return &Config{
		Input: InputConfig{
			MaxFileSize:    domain.DefaultMaxFileSize,
			SupportedTypes: supported,
		},
		Analysis: AnalysisConfig{
			CommonWordCount:  domain.DefaultCommonWordCount,
			MinWordLength:    domain.DefaultMinWordLength,
			SniffSampleSize:  domain.DefaultSniffSampleSize,
			SampleValueCount: domain.DefaultSampleValueCount,
			SampleKeyCount:   domain.DefaultSampleKeyCount,
		},
		Output: OutputConfig{
			Format: string(domain.DefaultOutputFormat),
		},
	}
}

// SupportedTypes converts the configured table to domain categories
func (c *Config) SupportedTypes() map[domain.FileCategory][]string {
	table := make(map[domain.FileCategory][]string, len(c.Input.SupportedTypes))
	for category, extensions := range c.Input.SupportedTypes {
		table[domain.FileCategory(category)] = extensions
	}
	return table
}

// Validate checks the configuration for consistency
func (c *Config) Validate() error {
	if c.Input.MaxFileSize <= 0 {
		return fmt.Errorf("input.max_file_size must be positive, got %d", c.Input.MaxFileSize)
	}
	if c.Analysis.CommonWordCount <= 0 {
		return fmt.Errorf("analysis.common_word_count must be positive, got %d", c.Analysis.CommonWordCount)
	}
	if c.Analysis.MinWordLength <= 0 {
		return fmt.Errorf("analysis.min_word_length must be positive, got %d", c.Analysis.MinWordLength)
	}
	if c.Analysis.SniffSampleSize <= 0 {
		return fmt.Errorf("analysis.sniff_sample_size must be positive, got %d", c.Analysis.SniffSampleSize)
	}
	if _, err := domain.ParseOutputFormat(c.Output.Format); err != nil {
		return fmt.Errorf("output.format: %w", err)
	}
	for category := range c.Input.SupportedTypes {
		switch domain.FileCategory(category) {
		case domain.CategoryText, domain.CategoryImage, domain.CategoryDocument, domain.CategoryArchive:
		default:
			return fmt.Errorf("input.supported_types: unknown category %q", category)
		}
	}
	return nil
}

// LoadConfig loads configuration from a file, falling back to defaults.
// TOML files go through the dedicated loader; YAML and JSON through viper.
func LoadConfig(configPath string) (*Config, error) {
	config := DefaultConfig()

	if configPath == "" {
		configPath = findDefaultConfig()
	}
	if configPath == "" {
		return config, nil
	}

	if strings.HasSuffix(configPath, ".toml") {
		if err := loadTOML(configPath, config); err != nil {
			return nil, err
		}
	} else {
		v := viper.New()
		v.SetConfigFile(configPath)
		if err := v.ReadInConfig(); err != nil {
			return nil, fmt.Errorf("failed to read config file %s: %w", configPath, err)
		}
		if err := v.Unmarshal(config); err != nil {
			return nil, fmt.Errorf("failed to unmarshal config: %w", err)
		}
	}

	if err := config.Validate(); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}

	return config, nil
}

// findDefaultConfig looks for default configuration files in the working
// directory
func findDefaultConfig() string {
	candidates := []string{
		".filescope.toml",
		"filescope.toml",
		"filescope.yaml",
		"filescope.yml",
		".filescope.yaml",
		".filescope.yml",
		"filescope.json",
	}

	cwd, err := os.Getwd()
	if err != nil {
		return ""
	}
	for _, candidate := range candidates {
		path := filepath.Join(cwd, candidate)
		if _, err := os.Stat(path); err == nil {
			return path
		}
	}
	return ""
}
