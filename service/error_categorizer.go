package service

import (
	"strings"

	"github.com/filescope/filescope/domain"
)

// ErrorCategorizerImpl implements the ErrorCategorizer interface
type ErrorCategorizerImpl struct {
	patterns map[domain.ErrorCategory][]string
}

// NewErrorCategorizer creates a new error categorizer
func NewErrorCategorizer() domain.ErrorCategorizer {
	return &ErrorCategorizerImpl{
		patterns: initializeErrorPatterns(),
	}
}

// initializeErrorPatterns initializes error pattern mappings
func initializeErrorPatterns() map[domain.ErrorCategory][]string {
	return map[domain.ErrorCategory][]string{
		domain.ErrorCategoryInput: {
			"invalid input",
			"no files found",
			"file not found",
			"cannot access",
			"permission denied",
			"too large",
			"is a directory",
		},
		domain.ErrorCategoryConfig: {
			"config",
			"configuration",
			"invalid format",
			"invalid settings",
			"toml",
			"yaml",
		},
		domain.ErrorCategoryOutput: {
			"write",
			"output",
			"cannot create",
			"failed to generate",
		},
		domain.ErrorCategoryProcessing: {
			"decode",
			"encoding",
			"parse",
			"syntax",
			"analysis",
			"empty",
			"unsupported",
		},
	}
}

// Categorize determines the category of an error
func (ec *ErrorCategorizerImpl) Categorize(err error) *domain.CategorizedError {
	if err == nil {
		return nil
	}

	errMsg := strings.ToLower(err.Error())

	for category, patterns := range ec.patterns {
		for _, pattern := range patterns {
			if strings.Contains(errMsg, pattern) {
				return &domain.CategorizedError{
					Category: category,
					Message:  err.Error(),
					Original: err,
				}
			}
		}
	}

	return &domain.CategorizedError{
		Category: domain.ErrorCategoryUnknown,
		Message:  err.Error(),
		Original: err,
	}
}

// GetRecoverySuggestions returns recovery suggestions for an error category
func (ec *ErrorCategorizerImpl) GetRecoverySuggestions(category domain.ErrorCategory) []string {
	switch category {
	case domain.ErrorCategoryInput:
		return []string{
			"Check that the file path exists and is readable",
			"Verify the file is under the configured size limit",
		}
	case domain.ErrorCategoryConfig:
		return []string{
			"Validate the configuration file syntax",
			"Run 'filescope init' to generate a fresh configuration",
		}
	case domain.ErrorCategoryProcessing:
		return []string{
			"Verify the file content matches its extension",
			"Try re-saving the file with UTF-8 encoding",
		}
	case domain.ErrorCategoryOutput:
		return []string{
			"Check write permissions for the output location",
			"Try a different output path with --output",
		}
	default:
		return []string{
			"Re-run with --verbose for more detail",
		}
	}
}
