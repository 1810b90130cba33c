package walker_test

import (
	"os"
	"path/filepath"
	"sort"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Br3nda/polyloc/internal/entity"
	"github.com/Br3nda/polyloc/internal/walker"
)

func writeFile(t *testing.T, path, content string) {
	t.Helper()
	require.NoError(t, os.MkdirAll(filepath.Dir(path), 0o755))
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
}

func TestWalkSkipsDotfilesAndCollectsSiblings(t *testing.T) {
	root := t.TempDir()
	writeFile(t, filepath.Join(root, "main.go"), "package main\n")
	writeFile(t, filepath.Join(root, "main_test.go"), "package main\n")
	writeFile(t, filepath.Join(root, ".hidden.go"), "package main\n")
	writeFile(t, filepath.Join(root, ".git", "config"), "ignored\n")

	var visited []string
	var siblingsSeen []string
	err := walker.Walk([]string{root}, walker.DefaultOptions(), func(fc *entity.FileContext) error {
		visited = append(visited, filepath.Base(fc.Path))
		if filepath.Base(fc.Path) == "main.go" {
			names := []string{"main.go", "main_test.go"}
			for _, n := range names {
				if fc.Siblings.Has(n) {
					siblingsSeen = append(siblingsSeen, n)
				}
			}
		}
		return nil
	})
	require.NoError(t, err)

	sort.Strings(visited)
	assert.Equal(t, []string{"main.go", "main_test.go"}, visited)
	sort.Strings(siblingsSeen)
	assert.Equal(t, []string{"main.go", "main_test.go"}, siblingsSeen)
}

func TestWalkHonorsExclusions(t *testing.T) {
	root := t.TempDir()
	writeFile(t, filepath.Join(root, "keep.go"), "package main\n")
	writeFile(t, filepath.Join(root, "vendor", "dep.go"), "package dep\n")

	var visited []string
	opts := walker.Options{Exclusions: []string{filepath.Join(root, "vendor")}, SkipDotfiles: true}
	err := walker.Walk([]string{root}, opts, func(fc *entity.FileContext) error {
		visited = append(visited, filepath.Base(fc.Path))
		return nil
	})
	require.NoError(t, err)
	assert.Equal(t, []string{"keep.go"}, visited)
}

func TestWalkLoaderReadsContent(t *testing.T) {
	root := t.TempDir()
	writeFile(t, filepath.Join(root, "a.txt"), "hello\n")

	var content []byte
	err := walker.Walk([]string{root}, walker.DefaultOptions(), func(fc *entity.FileContext) error {
		var err error
		content, err = fc.Content()
		return err
	})
	require.NoError(t, err)
	assert.Equal(t, "hello\n", string(content))
}
