package main

import (
	"os"

	"github.com/filescope/filescope/internal/logging"
	"github.com/filescope/filescope/internal/version"
	"github.com/spf13/cobra"
)

var (
	flagVerbose bool
	flagQuiet   bool
	flagLogFile string
)

var rootCmd = &cobra.Command{
	Use:   "filescope",
	Short: "Analyze files and generate detailed summaries",
	Long: `filescope analyzes a single file's content and renders the findings
into multiple report representations.

Supported content analyzers:
  • Text statistics (lines, words, characters, common words)
  • Python source structure (imports, functions, classes, complexity)
  • CSV structure with delimiter sniffing and per-column statistics
  • JSON structural summaries

Reports are available as detailed text, a one-line quick summary, or a
serialized JSON/YAML document.`,
	Version: version.Short(),
	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		logging.Setup(logging.Options{
			Verbose: flagVerbose,
			Quiet:   flagQuiet,
			File:    flagLogFile,
		})
	},
}

func init() {
	rootCmd.PersistentFlags().BoolVarP(&flagVerbose, "verbose", "v", false, "Enable verbose output")
	rootCmd.PersistentFlags().BoolVarP(&flagQuiet, "quiet", "q", false, "Suppress all output except errors")
	rootCmd.PersistentFlags().StringVar(&flagLogFile, "log-file", "", "Duplicate log output to a rotating file")

	rootCmd.AddCommand(NewAnalyzeCmd())
	rootCmd.AddCommand(NewInitCmd())
	rootCmd.AddCommand(NewVersionCmd())
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
