// Package subst implements placeholder substitution over template entries.
//
// Placeholders appear in template paths and contents as "{KEY}". Substitution
// is plain substring replacement applied pair by pair in a deterministic
// order; replacement values are never re-scanned for further placeholders.
package subst

import (
	"fmt"
	"strings"

	"github.com/tacogips/skel/internal/skeleton/model"
)

// Pair is a single literal replacement: every occurrence of Needle becomes
// Replacement.
type Pair struct {
	Needle      string
	Replacement string
}

// Needle wraps a placeholder key in the delimiter pair used in templates.
func Needle(key string) string {
	return "{" + key + "}"
}

// Pairs builds the ordered substitution sequence for a placeholder table.
// Pairs are ordered by sorted key so substitution is deterministic; needles
// are disjoint by construction (each is a distinct wrapped key), so the
// order does not affect the result for well-formed tables.
func Pairs(table model.PlaceholderTable) []Pair {
	keys := table.Keys()
	pairs := make([]Pair, 0, len(keys))
	for _, k := range keys {
		pairs = append(pairs, Pair{Needle: Needle(k), Replacement: table[k]})
	}
	return pairs
}

// Substitute applies each pair to text in sequence. Each pass operates on
// the output of the previous pass. All occurrences of a needle are replaced.
func Substitute(text string, pairs []Pair) string {
	for _, p := range pairs {
		text = strings.ReplaceAll(text, p.Needle, p.Replacement)
	}
	return text
}

// CollisionError indicates that two distinct template paths mapped to the
// same path after substitution.
type CollisionError struct {
	// Path is the colliding post-substitution path.
	Path string
	// Sources are the template paths that produced it.
	Sources []string
}

// Error implements the error interface.
func (e *CollisionError) Error() string {
	return fmt.Sprintf("substituted path %q produced by multiple template entries: %s",
		e.Path, strings.Join(e.Sources, ", "))
}

// Apply substitutes the placeholder table over both the path and the content
// of every entry, returning a new template. The input is not modified.
//
// If two entries collide on the same post-substitution path the whole
// application fails with *CollisionError rather than silently letting the
// last writer win.
func Apply(tmpl *model.Template, table model.PlaceholderTable) (*model.Template, error) {
	pairs := Pairs(table)

	applied := &model.Template{
		Source:  tmpl.Source,
		Entries: make([]model.Entry, 0, len(tmpl.Entries)),
	}
	seen := make(map[string]string, len(tmpl.Entries))

	for _, entry := range tmpl.Entries {
		path := Substitute(entry.Path, pairs)
		if prev, ok := seen[path]; ok {
			return nil, &CollisionError{Path: path, Sources: []string{prev, entry.Path}}
		}
		seen[path] = entry.Path

		applied.Entries = append(applied.Entries, model.Entry{
			Path:    path,
			Content: []byte(Substitute(string(entry.Content), pairs)),
		})
	}

	applied.Sort()
	return applied, nil
}
