// Package source resolves a template source to a readable file tree.
//
// A source is either the name of a built-in template (embedded in the
// binary) or a path to a directory on the host filesystem. Names are tried
// first; anything containing a path separator, or not matching a built-in,
// is treated as a path.
package source

import (
	"embed"
	"fmt"
	"io/fs"
	"os"
	"sort"
	"strings"

	"github.com/tacogips/skel/internal/logging"
	"github.com/tacogips/skel/internal/skeleton/model"
	"github.com/tacogips/skel/internal/skeleton/reader"
)

//go:embed all:builtin
var builtinFS embed.FS

// Kind discriminates the two template source variants.
type Kind int

const (
	// BuiltIn is a template embedded in the binary, selected by name.
	BuiltIn Kind = iota
	// Path is a template directory on the host filesystem.
	Path
)

// Source is a resolved template source.
type Source struct {
	// Kind is the source variant.
	Kind Kind
	// Name is the built-in template name (Kind == BuiltIn).
	Name string
	// Dir is the template directory path (Kind == Path).
	Dir string
}

// NotFoundError indicates that a template name or path did not resolve to
// an existing template.
type NotFoundError struct {
	// Spec is the template name or path as given.
	Spec string
	// Builtins lists the available built-in template names.
	Builtins []string
}

// Error implements the error interface.
func (e *NotFoundError) Error() string {
	return fmt.Sprintf("template %q not found (built-in templates: %s; anything else is treated as a directory path)",
		e.Spec, strings.Join(e.Builtins, ", "))
}

// BuiltinNames returns the names of all built-in templates, sorted.
func BuiltinNames() []string {
	entries, err := builtinFS.ReadDir("builtin")
	if err != nil {
		// The embedded tree always contains the builtin directory.
		return nil
	}

	var names []string
	for _, entry := range entries {
		if entry.IsDir() {
			names = append(names, entry.Name())
		}
	}
	sort.Strings(names)
	return names
}

// Resolve maps a template spec to a Source. A spec without path separators
// that matches a built-in template name resolves to that built-in;
// otherwise the spec is taken as a directory path, which must exist.
func Resolve(spec string) (Source, error) {
	log := logging.GetLogger("source")

	if spec == "" {
		spec = DefaultTemplate
	}

	if !strings.ContainsAny(spec, `/\`) {
		for _, name := range BuiltinNames() {
			if spec == name {
				log.Debug().Str("name", name).Msg("resolved built-in template")
				return Source{Kind: BuiltIn, Name: name}, nil
			}
		}
	}

	info, err := os.Stat(spec)
	if err != nil || !info.IsDir() {
		return Source{}, &NotFoundError{Spec: spec, Builtins: BuiltinNames()}
	}

	log.Debug().Str("dir", spec).Msg("resolved template directory")
	return Source{Kind: Path, Dir: spec}, nil
}

// DefaultTemplate is the built-in template used when no spec is given.
const DefaultTemplate = "default"

// Read loads the source's file tree into a template.
func (s Source) Read() (*model.Template, error) {
	switch s.Kind {
	case BuiltIn:
		sub, err := fs.Sub(builtinFS, "builtin/"+s.Name)
		if err != nil {
			return nil, &NotFoundError{Spec: s.Name, Builtins: BuiltinNames()}
		}
		return reader.ReadTemplate(sub, s.Name)
	default:
		return reader.ReadTemplateDir(s.Dir)
	}
}

// String describes the source for logs and error messages.
func (s Source) String() string {
	if s.Kind == BuiltIn {
		return "builtin:" + s.Name
	}
	return s.Dir
}
