package reader

import (
	"errors"
	"os"
	"path/filepath"
	"testing"
	"testing/fstest"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestReadTemplate(t *testing.T) {
	fsys := fstest.MapFS{
		"README.md":         {Data: []byte("# {PKGNAME}")},
		"src/{PKGNAME}.jl":  {Data: []byte("module {PKGNAME}\nend\n")},
		"test/runtests.jl":  {Data: []byte("using Test")},
		".gitignore":        {Data: []byte("*.cov")},
		"docs/src/index.md": {Data: []byte("docs")},
		"assets/logo.bin":   {Data: []byte{0x00, 0xff, 0x7f}},
	}

	tmpl, err := ReadTemplate(fsys, "test")
	require.NoError(t, err)

	assert.Equal(t, "test", tmpl.Source)
	assert.Equal(t, []string{
		".gitignore",
		"README.md",
		"assets/logo.bin",
		"docs/src/index.md",
		"src/{PKGNAME}.jl",
		"test/runtests.jl",
	}, tmpl.Paths())

	// Raw bytes survive the read untouched, including binary content.
	for _, entry := range tmpl.Entries {
		if entry.Path == "assets/logo.bin" {
			assert.Equal(t, []byte{0x00, 0xff, 0x7f}, entry.Content)
		}
	}
}

func TestReadTemplateDeterministicOrder(t *testing.T) {
	fsys := fstest.MapFS{
		"b.txt":   {Data: []byte("b")},
		"a/c.txt": {Data: []byte("c")},
		"a.txt":   {Data: []byte("a")},
	}

	first, err := ReadTemplate(fsys, "test")
	require.NoError(t, err)
	second, err := ReadTemplate(fsys, "test")
	require.NoError(t, err)

	assert.Equal(t, first.Paths(), second.Paths())
	assert.Equal(t, []string{"a.txt", "a/c.txt", "b.txt"}, first.Paths())
}

func TestReadTemplateDir(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.MkdirAll(filepath.Join(dir, "src"), 0755))
	require.NoError(t, os.WriteFile(filepath.Join(dir, "README.md"), []byte("# {PKGNAME}"), 0644))
	require.NoError(t, os.WriteFile(filepath.Join(dir, "src", "main.jl"), []byte("module"), 0644))

	tmpl, err := ReadTemplateDir(dir)
	require.NoError(t, err)

	assert.Equal(t, []string{"README.md", "src/main.jl"}, tmpl.Paths())
	assert.Equal(t, "# {PKGNAME}", string(tmpl.Entries[0].Content))
}

func TestReadTemplateDirMissing(t *testing.T) {
	_, err := ReadTemplateDir(filepath.Join(t.TempDir(), "nope"))
	require.Error(t, err)

	var readErr *ReadError
	require.True(t, errors.As(err, &readErr))
	assert.Equal(t, ReadSourceMissing, readErr.Type)
}

func TestReadTemplateDirNotADirectory(t *testing.T) {
	dir := t.TempDir()
	file := filepath.Join(dir, "file.txt")
	require.NoError(t, os.WriteFile(file, []byte("x"), 0644))

	_, err := ReadTemplateDir(file)
	require.Error(t, err)

	var readErr *ReadError
	require.True(t, errors.As(err, &readErr))
	assert.Equal(t, ReadSourceMissing, readErr.Type)
}

func TestReadTemplateEmptyDir(t *testing.T) {
	tmpl, err := ReadTemplateDir(t.TempDir())
	require.NoError(t, err)
	assert.Empty(t, tmpl.Entries)
}
