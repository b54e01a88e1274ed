package main

import (
	"path/filepath"

	"github.com/filescope/filescope/domain"
	"github.com/filescope/filescope/internal/config"
	"github.com/filescope/filescope/service"
)

// savedReportPath resolves where a saved report goes: the configured output
// directory when set, otherwise next to the analyzed file.
func savedReportPath(cfg *config.Config, analyzedPath string, format domain.OutputFormat) string {
	name := service.ReportFileName(analyzedPath, format)
	if cfg.Output.Directory != "" {
		return filepath.Join(cfg.Output.Directory, name)
	}
	return filepath.Join(filepath.Dir(analyzedPath), name)
}
