package model

import "sort"

// Entry is a single template file: a slash-separated path relative to the
// template root and its raw content.
type Entry struct {
	// Path is the file path relative to the template root.
	// Always uses forward slashes, regardless of host OS.
	Path string
	// Content is the raw file content.
	Content []byte
}

// Template is an ordered collection of entries read from a template source.
// Entries are sorted lexicographically by path and paths are unique.
type Template struct {
	// Source describes where the template came from (builtin name or path).
	Source string
	// Entries are the template files, sorted ascending by Path.
	Entries []Entry
}

// PlaceholderTable maps placeholder keys (e.g. "PKGNAME") to their values.
// Keys are case-sensitive.
type PlaceholderTable map[string]string

// Well-known placeholder keys.
const (
	KeyPkgName = "PKGNAME"
	KeyUUID    = "UUID"
	KeyAuthor  = "AUTHOR"
	KeyEmail   = "EMAIL"
	KeyGHUser  = "GHUSER"
	KeyYear    = "YEAR"
)

// Keys returns the table's keys in sorted order.
// Substitution pair order is derived from this so results are deterministic.
func (t PlaceholderTable) Keys() []string {
	keys := make([]string, 0, len(t))
	for k := range t {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}

// Sort orders entries lexicographically by path.
func (t *Template) Sort() {
	sort.Slice(t.Entries, func(i, j int) bool {
		return t.Entries[i].Path < t.Entries[j].Path
	})
}

// Paths returns the entry paths in template order.
func (t *Template) Paths() []string {
	paths := make([]string, len(t.Entries))
	for i, e := range t.Entries {
		paths[i] = e.Path
	}
	return paths
}
