package resolve

import (
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tacogips/skel/internal/skeleton/model"
)

// mapLookup is a ConfigLookup backed by a map, recording the keys asked for.
type mapLookup struct {
	values map[string]string
	asked  []string
}

func (m *mapLookup) Lookup(key string) string {
	m.asked = append(m.asked, key)
	return m.values[key]
}

func newTestResolver(values map[string]string) (*Resolver, *mapLookup) {
	lookup := &mapLookup{values: values}
	return &Resolver{
		Lookup:  lookup,
		Clock:   func() time.Time { return time.Date(2026, 8, 30, 0, 0, 0, 0, time.UTC) },
		NewUUID: func() string { return "fixed-uuid" },
	}, lookup
}

func fullGitConfig() map[string]string {
	return map[string]string{
		"user.name":   "Ada Lovelace",
		"user.email":  "ada@example.com",
		"github.user": "ada",
	}
}

func TestResolveDefaults(t *testing.T) {
	r, _ := newTestResolver(fullGitConfig())

	table, err := r.Resolve("Foo", nil)
	require.NoError(t, err)

	assert.Equal(t, model.PlaceholderTable{
		"PKGNAME": "Foo",
		"UUID":    "fixed-uuid",
		"YEAR":    "2026",
		"AUTHOR":  "Ada Lovelace",
		"EMAIL":   "ada@example.com",
		"GHUSER":  "ada",
	}, table)
}

func TestResolveOverridesWinAndSkipLookup(t *testing.T) {
	r, lookup := newTestResolver(fullGitConfig())

	table, err := r.Resolve("Foo", map[string]string{
		"AUTHOR": "Someone Else",
		"EMAIL":  "else@example.com",
		"GHUSER": "else",
	})
	require.NoError(t, err)

	assert.Equal(t, "Someone Else", table["AUTHOR"])
	assert.Equal(t, "else@example.com", table["EMAIL"])
	assert.Equal(t, "else", table["GHUSER"])
	// Overridden keys must not hit git config at all.
	assert.Empty(t, lookup.asked)
}

func TestResolveOverridesDerivedValues(t *testing.T) {
	r, _ := newTestResolver(fullGitConfig())

	table, err := r.Resolve("Foo", map[string]string{
		"PKGNAME": "Renamed",
		"UUID":    "11111111-2222-3333-4444-555555555555",
		"YEAR":    "1999",
	})
	require.NoError(t, err)

	assert.Equal(t, "Renamed", table["PKGNAME"])
	assert.Equal(t, "11111111-2222-3333-4444-555555555555", table["UUID"])
	assert.Equal(t, "1999", table["YEAR"])
}

func TestResolveCustomKeys(t *testing.T) {
	r, _ := newTestResolver(fullGitConfig())

	table, err := r.Resolve("Foo", map[string]string{"LICENSE_NAME": "MIT"})
	require.NoError(t, err)
	assert.Equal(t, "MIT", table["LICENSE_NAME"])
}

func TestResolveMissingAuthor(t *testing.T) {
	values := fullGitConfig()
	delete(values, "user.name")
	r, _ := newTestResolver(values)

	_, err := r.Resolve("Foo", nil)
	require.Error(t, err)

	var missing *MissingValueError
	require.True(t, errors.As(err, &missing))
	assert.Equal(t, "AUTHOR", missing.Key)
	assert.Equal(t, "user.name", missing.ConfigKey)

	// The message must be actionable: which key, and both ways to supply it.
	assert.Contains(t, err.Error(), "user.name")
	assert.Contains(t, err.Error(), "--var AUTHOR=")
	assert.Contains(t, err.Error(), "git config --global")
}

func TestResolveMissingGHUser(t *testing.T) {
	values := fullGitConfig()
	delete(values, "github.user")
	r, _ := newTestResolver(values)

	_, err := r.Resolve("Foo", nil)

	var missing *MissingValueError
	require.True(t, errors.As(err, &missing))
	assert.Equal(t, "GHUSER", missing.Key)
	assert.Equal(t, "github.user", missing.ConfigKey)
}

func TestResolveMissingValueCoveredByOverride(t *testing.T) {
	r, _ := newTestResolver(map[string]string{})

	table, err := r.Resolve("Foo", map[string]string{
		"AUTHOR": "A",
		"EMAIL":  "a@b.c",
		"GHUSER": "a",
	})
	require.NoError(t, err)
	assert.Equal(t, "A", table["AUTHOR"])
}

func TestResolveGeneratedUUIDDefaults(t *testing.T) {
	lookup := &mapLookup{values: fullGitConfig()}
	r := &Resolver{Lookup: lookup}

	table, err := r.Resolve("Foo", nil)
	require.NoError(t, err)

	// Default generator produces a well-formed random UUID.
	assert.Len(t, table["UUID"], 36)
	assert.Regexp(t, `^[0-9a-f-]{36}$`, table["UUID"])
}
