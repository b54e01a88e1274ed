package main

import (
	"fmt"

	"github.com/filescope/filescope/app"
	"github.com/filescope/filescope/domain"
	"github.com/filescope/filescope/internal/analyzer"
	"github.com/filescope/filescope/internal/config"
	"github.com/filescope/filescope/service"
	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"
)

// AnalyzeCommand represents the analyze command
type AnalyzeCommand struct {
	format          string
	save            bool
	outputPath      string
	recursive       bool
	includePatterns []string
	excludePatterns []string
	configFile      string
}

// NewAnalyzeCommand creates a new analyze command
func NewAnalyzeCommand() *AnalyzeCommand {
	return &AnalyzeCommand{
		format: string(domain.DefaultOutputFormat),
	}
}

// CreateCobraCommand creates the cobra command for file analysis
func (c *AnalyzeCommand) CreateCobraCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "analyze [files...]",
		Short: "Analyze files and print or save reports",
		Long: `Analyze one or more files and render a report for each.

Each file is dispatched to a type-specific analyzer based on its category
and extension: Python sources get structure counts, CSV files get delimiter
sniffing and per-column statistics, JSON files get a structural summary,
and any other text file gets lexical statistics. Binary categories are
reported as unsupported rather than failing.

Examples:
  # Detailed text report on stdout
  filescope analyze notes.txt

  # Quick one-line summary
  filescope analyze --format quick main.py

  # Machine-readable report
  filescope analyze --format json data.csv

  # Save the report as data_analysis.json
  filescope analyze --format json --save data.csv

  # Analyze every supported file under a directory
  filescope analyze --recursive src/`,
		Args: cobra.MinimumNArgs(1),
		RunE: c.runAnalyze,
	}

	cmd.Flags().StringVarP(&c.format, "format", "f", string(domain.DefaultOutputFormat),
		"Output format: text, quick, json, yaml")
	cmd.Flags().BoolVarP(&c.save, "save", "s", false, "Save the report to a file")
	cmd.Flags().StringVarP(&c.outputPath, "output", "o", "", "Write the report to this path")
	cmd.Flags().BoolVarP(&c.recursive, "recursive", "r", false, "Recurse into directories")
	cmd.Flags().StringSliceVar(&c.includePatterns, "include", nil, "Glob patterns of files to include")
	cmd.Flags().StringSliceVar(&c.excludePatterns, "exclude", nil, "Glob patterns of files to exclude")
	cmd.Flags().StringVarP(&c.configFile, "config", "c", "", "Configuration file path")

	return cmd
}

// runAnalyze executes the analyze command
func (c *AnalyzeCommand) runAnalyze(cmd *cobra.Command, args []string) error {
	cfg, err := config.LoadConfig(c.configFile)
	if err != nil {
		return c.reportFatal(cmd, err)
	}

	// Config supplies defaults for flags the user did not pass
	tracker := config.NewFlagTrackerFromFlagSet(cmd.Flags())
	if !tracker.WasSet("format") && cfg.Output.Format != "" {
		c.format = cfg.Output.Format
	}
	format, err := domain.ParseOutputFormat(c.format)
	if err != nil {
		return c.reportFatal(cmd, err)
	}

	include := c.includePatterns
	if !tracker.WasSet("include") {
		include = cfg.Input.IncludePatterns
	}
	exclude := c.excludePatterns
	if !tracker.WasSet("exclude") {
		exclude = cfg.Input.ExcludePatterns
	}

	collector := service.NewFileCollector(cfg.SupportedTypes())
	files, err := collector.CollectFiles(args, c.recursive, include, exclude)
	if err != nil {
		return c.reportFatal(cmd, err)
	}
	if len(files) == 0 {
		return c.reportFatal(cmd, domain.NewInvalidInputError("no files found in the specified paths", nil))
	}
	log.Debug().Int("files", len(files)).Str("format", string(format)).Msg("starting analysis")

	useCase := app.NewAnalyzeUseCase(
		service.NewMetadataProvider(cfg.SupportedTypes()),
		analyzer.NewContentAnalyzer(analyzer.Options{
			CommonWordCount:  cfg.Analysis.CommonWordCount,
			MinWordLength:    cfg.Analysis.MinWordLength,
			StopWords:        cfg.Analysis.StopWords,
			SniffSampleSize:  cfg.Analysis.SniffSampleSize,
			SampleValueCount: cfg.Analysis.SampleValueCount,
			SampleKeyCount:   cfg.Analysis.SampleKeyCount,
		}),
		service.NewReportFormatter(),
		service.NewFileOutputWriter(cmd.ErrOrStderr()),
	)

	progress := service.NewProgressManager()
	defer progress.Close()
	showProgress := len(files) > 1 && progress.IsInteractive() && format == domain.OutputFormatText
	if showProgress {
		progress.Initialize(len(files))
		progress.Start()
	}

	failures := 0
	for i, file := range files {
		req := domain.AnalyzeRequest{
			Path:         file,
			OutputFormat: format,
			OutputWriter: cmd.OutOrStdout(),
			Save:         c.save,
			MaxFileSize:  cfg.Input.MaxFileSize,
		}
		if c.outputPath != "" && len(files) == 1 {
			req.OutputPath = c.outputPath
		} else if c.save {
			req.OutputPath = savedReportPath(cfg, file, format)
		}

		if err := useCase.Execute(cmd.Context(), req); err != nil {
			failures++
			c.printCategorized(cmd, file, err)
		} else if format == domain.OutputFormatQuick {
			fmt.Fprintln(cmd.OutOrStdout())
		}
		if showProgress {
			progress.Update(i+1, len(files))
		}
	}
	if showProgress {
		progress.Complete(failures == 0)
	}

	if failures > 0 {
		return fmt.Errorf("analysis failed for %d of %d files", failures, len(files))
	}
	return nil
}

// reportFatal prints a categorized error with recovery suggestions
func (c *AnalyzeCommand) reportFatal(cmd *cobra.Command, err error) error {
	categorizer := service.NewErrorCategorizer()
	categorized := categorizer.Categorize(err)
	fmt.Fprintf(cmd.ErrOrStderr(), "%s: %s\n", categorized.Category, categorized.Message)
	for _, suggestion := range categorizer.GetRecoverySuggestions(categorized.Category) {
		fmt.Fprintf(cmd.ErrOrStderr(), "  - %s\n", suggestion)
	}
	cmd.SilenceUsage = true
	return err
}

// printCategorized reports a per-file failure without aborting the batch
func (c *AnalyzeCommand) printCategorized(cmd *cobra.Command, file string, err error) {
	categorizer := service.NewErrorCategorizer()
	categorized := categorizer.Categorize(err)
	log.Debug().Err(err).Str("file", file).Msg("analysis failed")
	fmt.Fprintf(cmd.ErrOrStderr(), "%s: %s: %s\n", file, categorized.Category, categorized.Message)
}

// NewAnalyzeCmd creates and returns the analyze cobra command
func NewAnalyzeCmd() *cobra.Command {
	return NewAnalyzeCommand().CreateCobraCommand()
}
