// Package resolve builds the placeholder table for a run.
//
// Values come from three layers, strongest first: caller-supplied overrides,
// derived values (project name, a fresh UUID, the current year), and git
// configuration (author identity). The rest of the pipeline only ever sees
// the finished table; it never consults git config itself.
package resolve

import (
	"fmt"
	"strconv"
	"time"

	"github.com/google/uuid"
	"github.com/gopasspw/gitconfig"

	"github.com/tacogips/skel/internal/logging"
	"github.com/tacogips/skel/internal/skeleton/model"
)

// ConfigLookup resolves a configuration key to a value. Implementations
// return an empty string when the key is not set.
type ConfigLookup interface {
	// Lookup returns the value for key, or "" if unset.
	Lookup(key string) string
}

// GitConfigLookup reads keys from git configuration, respecting the usual
// scope precedence (worktree, local, global, system).
type GitConfigLookup struct {
	cfg *gitconfig.Configs
}

// NewGitConfigLookup loads git configuration for the given working
// directory. An empty dir loads only the global and system scopes.
func NewGitConfigLookup(dir string) *GitConfigLookup {
	cfg := gitconfig.New()
	cfg.LoadAll(dir)
	return &GitConfigLookup{cfg: cfg}
}

// Lookup returns the configured value for key, or "" if unset.
func (g *GitConfigLookup) Lookup(key string) string {
	return g.cfg.Get(key)
}

// MissingValueError indicates a required placeholder default could not be
// resolved and no override was supplied.
type MissingValueError struct {
	// Key is the placeholder key (e.g. "AUTHOR").
	Key string
	// ConfigKey is the git config key consulted (e.g. "user.name").
	ConfigKey string
}

// Error implements the error interface.
func (e *MissingValueError) Error() string {
	return fmt.Sprintf("no value for placeholder {%s}: git config %q is not set; "+
		"set it with 'git config --global %s <value>' or pass --var %s=<value>",
		e.Key, e.ConfigKey, e.ConfigKey, e.Key)
}

// gitConfigKeys maps placeholder keys to the git config keys that supply
// their defaults.
var gitConfigKeys = map[string]string{
	model.KeyAuthor: "user.name",
	model.KeyEmail:  "user.email",
	model.KeyGHUser: "github.user",
}

// Resolver builds placeholder tables. The zero value is not usable; use
// NewResolver. Clock and NewUUID exist so tests can pin generated values.
type Resolver struct {
	// Lookup supplies git configuration values.
	Lookup ConfigLookup
	// Clock returns the current time. Defaults to time.Now.
	Clock func() time.Time
	// NewUUID returns a fresh identifier. Defaults to a random UUID v4.
	NewUUID func() string
}

// NewResolver creates a resolver backed by git configuration loaded from
// dir.
func NewResolver(dir string) *Resolver {
	return &Resolver{
		Lookup:  NewGitConfigLookup(dir),
		Clock:   time.Now,
		NewUUID: uuid.NewString,
	}
}

// Resolve builds the placeholder table for a project. Keys present in
// overrides are used verbatim and skip default resolution entirely;
// override keys outside the well-known set become custom placeholders.
func (r *Resolver) Resolve(projectName string, overrides map[string]string) (model.PlaceholderTable, error) {
	log := logging.GetLogger("resolve")

	table := model.PlaceholderTable{}
	for k, v := range overrides {
		table[k] = v
	}

	if _, ok := table[model.KeyPkgName]; !ok {
		table[model.KeyPkgName] = projectName
	}
	if _, ok := table[model.KeyUUID]; !ok {
		newUUID := r.NewUUID
		if newUUID == nil {
			newUUID = uuid.NewString
		}
		table[model.KeyUUID] = newUUID()
	}
	if _, ok := table[model.KeyYear]; !ok {
		clock := r.Clock
		if clock == nil {
			clock = time.Now
		}
		table[model.KeyYear] = strconv.Itoa(clock().Year())
	}

	for _, key := range []string{model.KeyAuthor, model.KeyEmail, model.KeyGHUser} {
		if _, ok := table[key]; ok {
			continue
		}
		configKey := gitConfigKeys[key]
		value := r.Lookup.Lookup(configKey)
		if value == "" {
			return nil, &MissingValueError{Key: key, ConfigKey: configKey}
		}
		table[key] = value
	}

	log.Debug().Str("project", projectName).Int("placeholders", len(table)).Msg("placeholder table resolved")
	return table, nil
}
