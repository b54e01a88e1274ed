package analyzer

import (
	"context"
	"testing"

	"github.com/filescope/filescope/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func metaFor(path, ext string, category domain.FileCategory) domain.FileMetadata {
	return domain.FileMetadata{
		Name:      path,
		Path:      path,
		Extension: ext,
		Category:  category,
	}
}

func TestAnalyzeDispatchByExtension(t *testing.T) {
	tests := []struct {
		name     string
		fileName string
		ext      string
		content  string
		wantKind domain.ResultKind
	}{
		{"python goes to code", "a.py", ".py", "def f():\n    pass\n", domain.ResultKindCode},
		{"csv goes to tabular", "a.csv", ".csv", "h\n1\n", domain.ResultKindTabular},
		{"json goes to structured", "a.json", ".json", "{}", domain.ResultKindStructured},
		{"txt goes to text", "a.txt", ".txt", "hello\n", domain.ResultKindText},
		{"markdown goes to text", "a.md", ".md", "# title\n", domain.ResultKindText},
		{"extension match is case-insensitive", "a.PY", ".PY", "def f():\n    pass\n", domain.ResultKindCode},
	}

	a := NewContentAnalyzer(DefaultOptions())
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			path := writeTempFile(t, tt.fileName, []byte(tt.content))
			result := a.Analyze(context.Background(), path, metaFor(path, tt.ext, domain.CategoryText))
			assert.Equal(t, tt.wantKind, result.Kind)
			assert.NoError(t, result.Validate())
		})
	}
}

func TestAnalyzeNonTextCategories(t *testing.T) {
	a := NewContentAnalyzer(DefaultOptions())
	path := writeTempFile(t, "photo.jpg", []byte{0xff, 0xd8})

	result := a.Analyze(context.Background(), path, metaFor(path, ".jpg", domain.CategoryImage))
	require.Equal(t, domain.ResultKindUnsupported, result.Kind)
	assert.Equal(t, domain.CategoryImage, result.Unsupported.Category)
	assert.Equal(t, "binary image file - content analysis not available", result.Unsupported.Message)
	assert.NotEmpty(t, result.Unsupported.Suggestion)
}

func TestAnalyzeUnknownCategory(t *testing.T) {
	a := NewContentAnalyzer(DefaultOptions())
	path := writeTempFile(t, "blob.xyz", []byte("?"))

	result := a.Analyze(context.Background(), path, metaFor(path, ".xyz", domain.CategoryUnknown))
	require.Equal(t, domain.ResultKindUnsupported, result.Kind)
	assert.Equal(t, "file type not supported for content analysis", result.Unsupported.Message)
	assert.Empty(t, result.Unsupported.Suggestion)
}

func TestAnalyzeCanceledContext(t *testing.T) {
	a := NewContentAnalyzer(DefaultOptions())
	path := writeTempFile(t, "a.txt", []byte("hello"))

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	result := a.Analyze(ctx, path, metaFor(path, ".txt", domain.CategoryText))
	require.True(t, result.IsError())
	assert.Contains(t, result.Failure.Message, "analysis canceled")
}

func TestAnalyzeNeverReturnsEmptyResult(t *testing.T) {
	// Missing files, unreadable content, and unsupported categories all
	// still produce a populated result
	a := NewContentAnalyzer(DefaultOptions())

	result := a.Analyze(context.Background(), "/does/not/exist.txt",
		metaFor("/does/not/exist.txt", ".txt", domain.CategoryText))
	require.True(t, result.IsError())
	assert.NoError(t, result.Validate())
}
