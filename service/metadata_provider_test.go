package service

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/filescope/filescope/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSnapshotRegularFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "script.py")
	require.NoError(t, os.WriteFile(path, []byte("print('hi')\n"), 0o644))

	p := NewMetadataProvider(nil)
	meta, err := p.Snapshot(path)
	require.NoError(t, err)

	assert.Equal(t, "script.py", meta.Name)
	assert.True(t, filepath.IsAbs(meta.Path))
	assert.Equal(t, int64(12), meta.Size)
	assert.Equal(t, "12.00 B", meta.SizeFormatted)
	assert.Equal(t, ".py", meta.Extension)
	assert.Equal(t, domain.CategoryText, meta.Category)
	assert.Equal(t, "text/x-python", meta.MIMEType)
	assert.WithinDuration(t, time.Now(), meta.ModifiedAt, time.Minute)
	assert.False(t, meta.CreatedAt.IsZero())
}

func TestSnapshotLowercasesExtension(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "README.TXT")
	require.NoError(t, os.WriteFile(path, []byte("x"), 0o644))

	p := NewMetadataProvider(nil)
	meta, err := p.Snapshot(path)
	require.NoError(t, err)
	assert.Equal(t, ".txt", meta.Extension)
	assert.Equal(t, domain.CategoryText, meta.Category)
}

func TestSnapshotCategories(t *testing.T) {
	tests := []struct {
		fileName string
		want     domain.FileCategory
	}{
		{"a.txt", domain.CategoryText},
		{"a.md", domain.CategoryText},
		{"a.json", domain.CategoryText},
		{"a.csv", domain.CategoryText},
		{"a.jpg", domain.CategoryImage},
		{"a.png", domain.CategoryImage},
		{"a.pdf", domain.CategoryDocument},
		{"a.zip", domain.CategoryArchive},
		{"a.xyz", domain.CategoryUnknown},
		{"noext", domain.CategoryUnknown},
	}

	p := NewMetadataProvider(nil)
	dir := t.TempDir()
	for _, tt := range tests {
		t.Run(tt.fileName, func(t *testing.T) {
			path := filepath.Join(dir, tt.fileName)
			require.NoError(t, os.WriteFile(path, []byte("x"), 0o644))

			meta, err := p.Snapshot(path)
			require.NoError(t, err)
			assert.Equal(t, tt.want, meta.Category)
		})
	}
}

func TestSnapshotMissingFile(t *testing.T) {
	p := NewMetadataProvider(nil)
	_, err := p.Snapshot(filepath.Join(t.TempDir(), "gone.txt"))
	require.Error(t, err)

	var domainErr domain.DomainError
	require.ErrorAs(t, err, &domainErr)
	assert.Equal(t, domain.ErrCodeFileNotFound, domainErr.Code)
}

func TestSnapshotRejectsDirectory(t *testing.T) {
	p := NewMetadataProvider(nil)
	_, err := p.Snapshot(t.TempDir())
	assert.Error(t, err)
}

func TestSnapshotCustomTypeTable(t *testing.T) {
	table := map[domain.FileCategory][]string{
		domain.CategoryText: {".log"},
	}
	dir := t.TempDir()
	path := filepath.Join(dir, "server.log")
	require.NoError(t, os.WriteFile(path, []byte("x"), 0o644))

	p := NewMetadataProvider(table)
	meta, err := p.Snapshot(path)
	require.NoError(t, err)
	assert.Equal(t, domain.CategoryText, meta.Category)

	// .txt is not in the custom table
	otherPath := filepath.Join(dir, "notes.txt")
	require.NoError(t, os.WriteFile(otherPath, []byte("x"), 0o644))
	meta, err = p.Snapshot(otherPath)
	require.NoError(t, err)
	assert.Equal(t, domain.CategoryUnknown, meta.Category)
}

func TestMimeTypeResolution(t *testing.T) {
	tests := []struct {
		ext  string
		want string
	}{
		{".py", "text/x-python"},
		{".csv", "text/csv"},
		{".md", "text/markdown"},
		{".xyzabc", "unknown"},
	}

	for _, tt := range tests {
		t.Run(tt.ext, func(t *testing.T) {
			assert.Equal(t, tt.want, mimeType(tt.ext))
		})
	}

	// Platform-resolved types never carry parameters
	assert.NotContains(t, mimeType(".html"), ";")
}
