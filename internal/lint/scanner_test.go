package lint

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeFile(t *testing.T, path, content string) {
	t.Helper()
	require.NoError(t, os.MkdirAll(filepath.Dir(path), 0o755))
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
}

func TestScanner_Recursive(t *testing.T) {
	root := t.TempDir()
	writeFile(t, filepath.Join(root, "a.go"), "package a\n")
	writeFile(t, filepath.Join(root, "sub", "b.go"), "package b\n")
	writeFile(t, filepath.Join(root, "sub", "deep", "c.go"), "package c\n")
	writeFile(t, filepath.Join(root, "_skip", "d.go"), "package d\n")
	writeFile(t, filepath.Join(root, ".hidden", "e.go"), "package e\n")
	writeFile(t, filepath.Join(root, "vendor", "f.go"), "package f\n")
	writeFile(t, filepath.Join(root, "testdata", "g.go"), "package g\n")
	writeFile(t, filepath.Join(root, "nogo", "readme.txt"), "hi\n")

	dirs, err := NewScanner().Scan([]string{root + "/..."})
	require.NoError(t, err)

	assert.Equal(t, []string{
		root,
		filepath.Join(root, "sub"),
		filepath.Join(root, "sub", "deep"),
	}, dirs)
}

func TestScanner_NonRecursive(t *testing.T) {
	root := t.TempDir()
	writeFile(t, filepath.Join(root, "a.go"), "package a\n")
	writeFile(t, filepath.Join(root, "sub", "b.go"), "package b\n")

	dirs, err := NewScanner().Scan([]string{root})
	require.NoError(t, err)

	assert.Equal(t, []string{root}, dirs)
}

func TestScanner_DeduplicatesPatterns(t *testing.T) {
	root := t.TempDir()
	writeFile(t, filepath.Join(root, "a.go"), "package a\n")

	dirs, err := NewScanner().Scan([]string{root, root, root + "/..."})
	require.NoError(t, err)

	assert.Equal(t, []string{root}, dirs)
}

func TestScanner_GoFiles(t *testing.T) {
	root := t.TempDir()
	writeFile(t, filepath.Join(root, "b.go"), "package x\n")
	writeFile(t, filepath.Join(root, "a.go"), "package x\n")
	writeFile(t, filepath.Join(root, "notes.md"), "hi\n")
	writeFile(t, filepath.Join(root, ".ignored.go"), "package x\n")
	writeFile(t, filepath.Join(root, "sub", "c.go"), "package y\n")

	files, err := NewScanner().GoFiles(root)
	require.NoError(t, err)

	assert.Equal(t, []string{
		filepath.Join(root, "a.go"),
		filepath.Join(root, "b.go"),
	}, files)
}
