package service

import (
	"mime"
	"os"
	"path/filepath"
	"strings"

	"github.com/filescope/filescope/domain"
)

// mimeOverrides covers extensions the platform MIME database commonly lacks
var mimeOverrides = map[string]string{
	".py":  "text/x-python",
	".csv": "text/csv",
	".md":  "text/markdown",
}

// MetadataProviderImpl captures immutable FileMetadata snapshots
type MetadataProviderImpl struct {
	supportedTypes map[domain.FileCategory][]string
}

// NewMetadataProvider creates a metadata provider using the given
// extension-to-category table. A nil table selects the defaults.
func NewMetadataProvider(supportedTypes map[domain.FileCategory][]string) *MetadataProviderImpl {
	if supportedTypes == nil {
		supportedTypes = domain.DefaultSupportedTypes()
	}
	return &MetadataProviderImpl{supportedTypes: supportedTypes}
}

// Snapshot captures the file's metadata once. The returned value is read-only
// for the rest of the request.
func (p *MetadataProviderImpl) Snapshot(path string) (domain.FileMetadata, error) {
	absPath, err := filepath.Abs(path)
	if err != nil {
		return domain.FileMetadata{}, domain.NewInvalidInputError("failed to resolve path", err)
	}

	info, err := os.Stat(absPath)
	if err != nil {
		return domain.FileMetadata{}, domain.NewFileNotFoundError(absPath, err)
	}
	if info.IsDir() {
		return domain.FileMetadata{}, domain.NewValidationError("path is a directory: " + absPath)
	}

	ext := strings.ToLower(filepath.Ext(absPath))
	return domain.FileMetadata{
		Name:          filepath.Base(absPath),
		Path:          absPath,
		Size:          info.Size(),
		SizeFormatted: FormatFileSize(info.Size()),
		Extension:     ext,
		Category:      p.categoryOf(ext),
		MIMEType:      mimeType(ext),
		ModifiedAt:    info.ModTime(),
		CreatedAt:     creationTime(info),
	}, nil
}

// categoryOf classifies an extension using the configured table
func (p *MetadataProviderImpl) categoryOf(ext string) domain.FileCategory {
	for category, extensions := range p.supportedTypes {
		for _, e := range extensions {
			if e == ext {
				return category
			}
		}
	}
	return domain.CategoryUnknown
}

// mimeType resolves the MIME type of an extension, without parameters such
// as charset. Unresolvable extensions report "unknown".
func mimeType(ext string) string {
	if mt, ok := mimeOverrides[ext]; ok {
		return mt
	}
	mt := mime.TypeByExtension(ext)
	if mt == "" {
		return "unknown"
	}
	if idx := strings.Index(mt, ";"); idx >= 0 {
		mt = strings.TrimSpace(mt[:idx])
	}
	return mt
}
