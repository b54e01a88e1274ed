package service

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/bmatcuk/doublestar/v4"
	"github.com/filescope/filescope/domain"
)

// FileCollectorImpl implements the domain.FileCollector interface
type FileCollectorImpl struct {
	supportedTypes map[domain.FileCategory][]string
}

// NewFileCollector creates a file collector. The extension table decides
// which files inside directories are picked up; explicit file arguments are
// always accepted.
func NewFileCollector(supportedTypes map[domain.FileCategory][]string) *FileCollectorImpl {
	if supportedTypes == nil {
		supportedTypes = domain.DefaultSupportedTypes()
	}
	return &FileCollectorImpl{supportedTypes: supportedTypes}
}

// CollectFiles expands files and directories into the list of files to analyze
func (f *FileCollectorImpl) CollectFiles(paths []string, recursive bool, includePatterns, excludePatterns []string) ([]string, error) {
	var files []string

	for _, path := range paths {
		info, err := os.Stat(path)
		if err != nil {
			return nil, domain.NewFileNotFoundError(path, err)
		}

		if info.IsDir() {
			dirFiles, err := f.collectFromDirectory(path, recursive, includePatterns, excludePatterns)
			if err != nil {
				return nil, err
			}
			files = append(files, dirFiles...)
		} else if f.shouldIncludeFile(path, includePatterns, excludePatterns) {
			files = append(files, path)
		}
	}

	return files, nil
}

// FileExists checks if a path names an existing regular file
func (f *FileCollectorImpl) FileExists(path string) (bool, error) {
	info, err := os.Stat(path)
	if os.IsNotExist(err) {
		return false, nil
	}
	if err != nil {
		return false, err
	}
	return !info.IsDir(), nil
}

// isKnownExtension reports whether the extension appears in any category of
// the table
func (f *FileCollectorImpl) isKnownExtension(path string) bool {
	ext := strings.ToLower(filepath.Ext(path))
	for _, extensions := range f.supportedTypes {
		for _, e := range extensions {
			if e == ext {
				return true
			}
		}
	}
	return false
}

// collectFromDirectory collects supported files from a directory
func (f *FileCollectorImpl) collectFromDirectory(dirPath string, recursive bool, includePatterns, excludePatterns []string) ([]string, error) {
	var files []string

	walkFunc := func(path string, info os.FileInfo, err error) error {
		if err != nil {
			// Skip unreadable entries, keep walking
			return nil
		}

		if info.IsDir() && !recursive && path != dirPath {
			return filepath.SkipDir
		}

		// Skip hidden directories and files
		if strings.HasPrefix(info.Name(), ".") && path != dirPath {
			if info.IsDir() {
				return filepath.SkipDir
			}
			return nil
		}

		if !info.IsDir() && f.isKnownExtension(path) {
			if f.shouldIncludeFile(path, includePatterns, excludePatterns) {
				files = append(files, path)
			}
		}

		return nil
	}

	if err := filepath.Walk(dirPath, walkFunc); err != nil {
		return nil, fmt.Errorf("failed to walk directory %s: %w", dirPath, err)
	}

	return files, nil
}

// shouldIncludeFile checks if a file should be included based on patterns
func (f *FileCollectorImpl) shouldIncludeFile(path string, includePatterns, excludePatterns []string) bool {
	// Exclude patterns win over include patterns
	for _, pattern := range excludePatterns {
		if matched, _ := doublestar.Match(pattern, filepath.Base(path)); matched {
			return false
		}
		if matched, _ := doublestar.Match(pattern, filepath.ToSlash(path)); matched {
			return false
		}
	}

	if len(includePatterns) == 0 {
		return true
	}
	for _, pattern := range includePatterns {
		if matched, _ := doublestar.Match(pattern, filepath.Base(path)); matched {
			return true
		}
		if matched, _ := doublestar.Match(pattern, filepath.ToSlash(path)); matched {
			return true
		}
	}
	return false
}
