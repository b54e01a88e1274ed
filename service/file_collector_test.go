package service

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func makeTree(t *testing.T, files map[string]string) string {
	t.Helper()
	root := t.TempDir()
	for rel, content := range files {
		path := filepath.Join(root, filepath.FromSlash(rel))
		require.NoError(t, os.MkdirAll(filepath.Dir(path), 0o755))
		require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	}
	return root
}

func relPaths(t *testing.T, root string, paths []string) []string {
	t.Helper()
	var rels []string
	for _, p := range paths {
		rel, err := filepath.Rel(root, p)
		require.NoError(t, err)
		rels = append(rels, filepath.ToSlash(rel))
	}
	return rels
}

func TestCollectFilesDirectory(t *testing.T) {
	root := makeTree(t, map[string]string{
		"a.txt":          "x",
		"b.py":           "x",
		"data.bin":       "x",
		"sub/nested.csv": "x",
	})

	c := NewFileCollector(nil)

	files, err := c.CollectFiles([]string{root}, false, nil, nil)
	require.NoError(t, err)
	assert.ElementsMatch(t, []string{"a.txt", "b.py"}, relPaths(t, root, files),
		"non-recursive walk stops at the top level and skips unknown extensions")

	files, err = c.CollectFiles([]string{root}, true, nil, nil)
	require.NoError(t, err)
	assert.ElementsMatch(t, []string{"a.txt", "b.py", "sub/nested.csv"}, relPaths(t, root, files))
}

func TestCollectFilesSkipsHidden(t *testing.T) {
	root := makeTree(t, map[string]string{
		"visible.txt":      "x",
		".hidden.txt":      "x",
		".git/config.txt":  "x",
		"sub/.secrets.csv": "x",
	})

	c := NewFileCollector(nil)
	files, err := c.CollectFiles([]string{root}, true, nil, nil)
	require.NoError(t, err)
	assert.ElementsMatch(t, []string{"visible.txt"}, relPaths(t, root, files))
}

func TestCollectFilesExplicitFileBypassesExtensionCheck(t *testing.T) {
	root := makeTree(t, map[string]string{"raw.bin": "x"})

	c := NewFileCollector(nil)
	files, err := c.CollectFiles([]string{filepath.Join(root, "raw.bin")}, false, nil, nil)
	require.NoError(t, err)
	assert.Len(t, files, 1)
}

func TestCollectFilesPatterns(t *testing.T) {
	root := makeTree(t, map[string]string{
		"keep.py":    "x",
		"skip.py":    "x",
		"notes.txt":  "x",
		"sub/app.py": "x",
	})

	c := NewFileCollector(nil)

	files, err := c.CollectFiles([]string{root}, true, []string{"*.py"}, nil)
	require.NoError(t, err)
	assert.ElementsMatch(t, []string{"keep.py", "skip.py", "sub/app.py"}, relPaths(t, root, files))

	files, err = c.CollectFiles([]string{root}, true, []string{"*.py"}, []string{"skip*"})
	require.NoError(t, err)
	assert.ElementsMatch(t, []string{"keep.py", "sub/app.py"}, relPaths(t, root, files))

	// Exclusion wins even when the include pattern also matches
	files, err = c.CollectFiles([]string{root}, true, []string{"keep.py"}, []string{"keep.py"})
	require.NoError(t, err)
	assert.Empty(t, files)
}

func TestCollectFilesDoublestarPattern(t *testing.T) {
	root := makeTree(t, map[string]string{
		"src/app.py":       "x",
		"src/deep/util.py": "x",
		"readme.md":        "x",
	})

	c := NewFileCollector(nil)
	files, err := c.CollectFiles([]string{root}, true, []string{"**/src/**/*.py"}, nil)
	require.NoError(t, err)
	assert.ElementsMatch(t, []string{"src/app.py", "src/deep/util.py"}, relPaths(t, root, files))
}

func TestCollectFilesMissingPath(t *testing.T) {
	c := NewFileCollector(nil)
	_, err := c.CollectFiles([]string{filepath.Join(t.TempDir(), "nope")}, false, nil, nil)
	assert.Error(t, err)
}

func TestFileExists(t *testing.T) {
	root := makeTree(t, map[string]string{"here.txt": "x"})
	c := NewFileCollector(nil)

	ok, err := c.FileExists(filepath.Join(root, "here.txt"))
	require.NoError(t, err)
	assert.True(t, ok)

	ok, err = c.FileExists(filepath.Join(root, "gone.txt"))
	require.NoError(t, err)
	assert.False(t, ok)

	ok, err = c.FileExists(root)
	require.NoError(t, err)
	assert.False(t, ok, "directories are not files")
}
