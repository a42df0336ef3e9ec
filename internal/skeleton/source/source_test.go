package source

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBuiltinNames(t *testing.T) {
	names := BuiltinNames()
	assert.Contains(t, names, "default")
	assert.Contains(t, names, "minimal")
	assert.IsIncreasing(t, names)
}

func TestResolveBuiltin(t *testing.T) {
	src, err := Resolve("default")
	require.NoError(t, err)
	assert.Equal(t, BuiltIn, src.Kind)
	assert.Equal(t, "default", src.Name)
	assert.Equal(t, "builtin:default", src.String())
}

func TestResolveEmptySpecUsesDefault(t *testing.T) {
	src, err := Resolve("")
	require.NoError(t, err)
	assert.Equal(t, BuiltIn, src.Kind)
	assert.Equal(t, DefaultTemplate, src.Name)
}

func TestResolvePath(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "README.md"), []byte("x"), 0644))

	src, err := Resolve(dir)
	require.NoError(t, err)
	assert.Equal(t, Path, src.Kind)
	assert.Equal(t, dir, src.Dir)
	assert.Equal(t, dir, src.String())
}

func TestResolveUnknownName(t *testing.T) {
	_, err := Resolve("no-such-template")
	require.Error(t, err)

	var notFound *NotFoundError
	require.True(t, errors.As(err, &notFound))
	assert.Equal(t, "no-such-template", notFound.Spec)
	assert.Contains(t, notFound.Builtins, "default")
}

func TestResolveMissingPath(t *testing.T) {
	_, err := Resolve(filepath.Join(t.TempDir(), "missing"))

	var notFound *NotFoundError
	require.True(t, errors.As(err, &notFound))
}

func TestReadBuiltinDefault(t *testing.T) {
	src, err := Resolve("default")
	require.NoError(t, err)

	tmpl, err := src.Read()
	require.NoError(t, err)

	paths := tmpl.Paths()
	assert.Contains(t, paths, "Project.toml")
	assert.Contains(t, paths, "README.md")
	assert.Contains(t, paths, "LICENSE")
	assert.Contains(t, paths, ".gitignore")
	assert.Contains(t, paths, "src/{PKGNAME}.jl")
	assert.Contains(t, paths, "test/runtests.jl")

	for _, entry := range tmpl.Entries {
		if entry.Path == "Project.toml" {
			assert.Contains(t, string(entry.Content), `name = "{PKGNAME}"`)
			assert.Contains(t, string(entry.Content), `uuid = "{UUID}"`)
		}
	}
}

func TestReadBuiltinMinimal(t *testing.T) {
	src, err := Resolve("minimal")
	require.NoError(t, err)

	tmpl, err := src.Read()
	require.NoError(t, err)
	assert.Equal(t, []string{"Project.toml", "src/{PKGNAME}.jl"}, tmpl.Paths())
}

func TestReadPathSource(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "a.txt"), []byte("hi {PKGNAME}"), 0644))

	src, err := Resolve(dir)
	require.NoError(t, err)

	tmpl, err := src.Read()
	require.NoError(t, err)
	require.Len(t, tmpl.Entries, 1)
	assert.Equal(t, "a.txt", tmpl.Entries[0].Path)
}
