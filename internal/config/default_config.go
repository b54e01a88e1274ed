package config

import (
	"bytes"
	_ "embed"
	"fmt"
	"strings"
	"text/template"

	"github.com/filescope/filescope/domain"
)

// defaultConfigTmpl contains the embedded default configuration template
//
//go:embed default_config.toml.tmpl
var defaultConfigTmpl string

// DefaultConfigValues holds all values used to render the default config
// template. Everything is sourced from the domain package so the template
// and the runtime defaults cannot drift apart.
type DefaultConfigValues struct {
	MaxFileSize        int64
	TextExtensions     []string
	ImageExtensions    []string
	DocumentExtensions []string
	ArchiveExtensions  []string
	CommonWordCount    int
	MinWordLength      int
	SniffSampleSize    int
	SampleValueCount   int
	SampleKeyCount     int
	Format             string
}

// NewDefaultConfigValues builds the template values from domain defaults
func NewDefaultConfigValues() DefaultConfigValues {
	types := domain.DefaultSupportedTypes()
	return DefaultConfigValues{
		MaxFileSize:        domain.DefaultMaxFileSize,
		TextExtensions:     types[domain.CategoryText],
		ImageExtensions:    types[domain.CategoryImage],
		DocumentExtensions: types[domain.CategoryDocument],
		ArchiveExtensions:  types[domain.CategoryArchive],
		CommonWordCount:    domain.DefaultCommonWordCount,
		MinWordLength:      domain.DefaultMinWordLength,
		SniffSampleSize:    domain.DefaultSniffSampleSize,
		SampleValueCount:   domain.DefaultSampleValueCount,
		SampleKeyCount:     domain.DefaultSampleKeyCount,
		Format:             string(domain.DefaultOutputFormat),
	}
}

// GenerateDefaultConfig renders the default .filescope.toml content
func GenerateDefaultConfig() (string, error) {
	tmpl, err := template.New("config").Funcs(template.FuncMap{
		"join": strings.Join,
	}).Parse(defaultConfigTmpl)
	if err != nil {
		return "", fmt.Errorf("failed to parse default config template: %w", err)
	}

	var buf bytes.Buffer
	if err := tmpl.Execute(&buf, NewDefaultConfigValues()); err != nil {
		return "", fmt.Errorf("failed to render default config: %w", err)
	}
	return buf.String(), nil
}
